// README: JSON extraction and staged repair for raw LLM output.
package ai

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSON is returned when the raw text contains no JSON boundaries at all.
var ErrNoJSON = errors.New("no JSON found in response")

// NormalizationError wraps the last parser error after every repair stage
// has failed. A malformed itinerary must never be rendered, so this is a
// hard failure for the caller, not something to swallow.
type NormalizationError struct {
	Err error
}

func (e *NormalizationError) Error() string {
	return "could not recover JSON from response: " + e.Err.Error()
}

func (e *NormalizationError) Unwrap() error { return e.Err }

var (
	fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
	// openFenceRe matches a fence the model never closed (truncated output).
	openFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*)$")

	trailingCommaRe = regexp.MustCompile(`,\s*([\]}])`)
	// missingCommaRe finds a value-terminating token and a value-opening
	// token separated only by a newline, the classic dropped comma between
	// array or object entries.
	missingCommaRe = regexp.MustCompile(`(["}\]0-9]|true|false|null)[ \t]*\n(\s*)(["{\[])`)
)

// Extract recovers a JSON value from raw LLM text. The stages are ordered
// and each runs only if the previous one failed: fence stripping, boundary
// slicing, direct parse, syntactic repair, truncation recovery. The repairs
// target observed failure modes only; this is not a lenient parser.
func Extract(raw string) (json.RawMessage, error) {
	span, err := sliceJSONSpan(stripFences(raw))
	if err != nil {
		return nil, &NormalizationError{Err: err}
	}

	if parsed, ok := tryParse(span); ok {
		return parsed, nil
	}

	repaired := repairSyntax(span)
	if parsed, ok := tryParse(repaired); ok {
		return parsed, nil
	}

	closed := repairTruncation(repaired)
	parsed, perr := parseStrict(closed)
	if perr != nil {
		return nil, &NormalizationError{Err: perr}
	}
	return parsed, nil
}

// stripFences returns the interior of the first fenced code block, or the
// whole text when no fence is present. An unclosed fence is treated as
// running to the end of the text.
func stripFences(s string) string {
	if m := fenceRe.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	if strings.Contains(s, "```") {
		if m := openFenceRe.FindStringSubmatch(s); m != nil {
			return m[1]
		}
	}
	return s
}

// sliceJSONSpan cuts the text down to the outermost JSON boundaries: the
// first '[' or '{' through the last ']' or '}', whichever closes later.
func sliceJSONSpan(s string) (string, error) {
	open := strings.IndexAny(s, "[{")
	if open < 0 {
		return "", ErrNoJSON
	}
	closeBracket := strings.LastIndexByte(s, ']')
	closeBrace := strings.LastIndexByte(s, '}')
	end := closeBracket
	if closeBrace > end {
		end = closeBrace
	}
	if end < open {
		// No closer at all: hand the open-ended span to the later stages,
		// truncation recovery may still save it.
		return s[open:], nil
	}
	return s[open : end+1], nil
}

// repairSyntax applies the deterministic fix-ups for the failure modes LLMs
// actually produce: trailing commas before a closer, commas dropped between
// newline-separated entries, and literal tabs inside the payload.
func repairSyntax(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	s = trailingCommaRe.ReplaceAllString(s, "$1")
	s = missingCommaRe.ReplaceAllString(s, "$1,\n$2$3")
	return s
}

// repairTruncation closes off output that was cut mid-structure. It keeps
// everything up to the last syntactically complete object and appends the
// closer matching the opening character.
func repairTruncation(s string) string {
	t := strings.TrimRight(s, " \t\r\n")
	if t == "" {
		return s
	}
	closer := "}"
	if t[0] == '[' {
		closer = "]"
	}
	if strings.HasSuffix(t, "}") || strings.HasSuffix(t, "]") {
		return t + closer
	}
	cut := strings.LastIndex(t, "},")
	if i := strings.LastIndex(t, "}\n"); i > cut {
		cut = i
	}
	if cut < 0 {
		return s
	}
	return t[:cut+1] + closer
}

func tryParse(s string) (json.RawMessage, bool) {
	parsed, err := parseStrict(s)
	return parsed, err == nil
}

func parseStrict(s string) (json.RawMessage, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, err
	}
	return json.RawMessage(s), nil
}
