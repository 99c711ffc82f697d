// README: GenerateContent-family adapter backed by Google's official SDK.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// callGenerateContent sends a single-turn prompt to a Gemini model and
// returns the first candidate's text. The client is created per call so the
// per-attempt context governs the whole exchange, connection setup included.
func callGenerateContent(ctx context.Context, apiKey, modelID, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(modelID)
	model.SetTemperature(0.7)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", errors.New(generateContentErrMsg(err))
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty candidates in response")
	}

	var parts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		txt, ok := part.(genai.Text)
		if !ok || strings.TrimSpace(string(txt)) == "" {
			continue
		}
		parts = append(parts, string(txt))
	}
	if len(parts) == 0 {
		return "", errors.New("empty text parts in response")
	}
	return strings.Join(parts, "\n"), nil
}

// generateContentErrMsg pulls the server-side message out of an API error,
// falling back to "HTTP <status>" and finally to the raw error text.
func generateContentErrMsg(err error) string {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fmt.Sprintf("HTTP %d", apiErr.Code)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "request timed out"
	}
	return err.Error()
}
