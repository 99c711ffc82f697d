// README: Sequential provider fallback chain ("smart call").
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// attemptTimeout bounds each provider attempt. Typical LLM responses arrive
// in 1-10s; worst-case total latency is len(registry) * attemptTimeout.
const attemptTimeout = 45 * time.Second

// AdapterFunc is the protocol-specific translation for one provider family.
type AdapterFunc func(ctx context.Context, credential, modelID, prompt string) (string, error)

// Result is the outcome of a successful orchestration. ProviderUsed is a
// per-call value so concurrent orchestrations never race over attribution.
type Result struct {
	Text         string
	ProviderUsed string
}

// Attempt records one failed provider attempt.
type Attempt struct {
	Provider string
	Reason   string
}

// AggregateError is returned only when every registry entry was skipped or
// failed. Its message is one provider-attributed line per failure, in
// attempt order, ready for direct display.
type AggregateError struct {
	Attempts []Attempt
}

func (e *AggregateError) Error() string {
	if len(e.Attempts) == 0 {
		return "no AI provider available (missing API keys)"
	}
	lines := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		lines = append(lines, a.Provider+": "+a.Reason)
	}
	return strings.Join(lines, "\n")
}

// Recorder receives the outcome of every provider attempt. Implementations
// must not fail the call path; errors are theirs to swallow.
type Recorder interface {
	RecordAttempt(ctx context.Context, provider, modelID string, success bool, latency time.Duration)
}

// Orchestrator tries providers strictly in registry order and returns the
// first successful raw text. Attempts are sequential, never raced, so a
// single billable call is in flight at any time.
type Orchestrator struct {
	registry []ProviderSpec
	creds    Credentials
	adapters map[Family]AdapterFunc
	timeout  time.Duration
	recorder Recorder
}

// NewOrchestrator builds an orchestrator over the default registry.
// recorder may be nil.
func NewOrchestrator(creds Credentials, recorder Recorder) *Orchestrator {
	return &Orchestrator{
		registry: DefaultRegistry(),
		creds:    creds,
		adapters: map[Family]AdapterFunc{
			FamilyGenerateContent: callGenerateContent,
			FamilyChatCompletion:  callChatCompletion,
		},
		timeout:  attemptTimeout,
		recorder: recorder,
	}
}

// Call runs the fallback chain for prompt. onAttempt, when non-nil, fires
// with each provider's display name before its network call so callers can
// surface "Trying provider X" feedback.
func (o *Orchestrator) Call(ctx context.Context, prompt string, onAttempt func(providerName string)) (Result, error) {
	if strings.TrimSpace(prompt) == "" {
		return Result{}, errors.New("empty prompt")
	}

	agg := &AggregateError{}
	for _, spec := range o.registry {
		if !isAvailable(spec, o.creds) {
			continue
		}
		adapter, ok := o.adapters[spec.Family]
		if !ok {
			agg.Attempts = append(agg.Attempts, Attempt{Provider: spec.DisplayName, Reason: "no adapter for family " + string(spec.Family)})
			continue
		}

		if onAttempt != nil {
			onAttempt(spec.DisplayName)
		}
		log.Debug().Str("provider", spec.DisplayName).Str("model", spec.ModelID).Msg("trying provider")

		text, latency, err := o.attempt(ctx, spec, adapter, prompt)
		if o.recorder != nil {
			o.recorder.RecordAttempt(ctx, spec.DisplayName, spec.ModelID, err == nil, latency)
		}
		if err == nil {
			log.Info().Str("provider", spec.DisplayName).Dur("latency", latency).Msg("provider succeeded")
			return Result{Text: text, ProviderUsed: spec.DisplayName}, nil
		}

		reason := err.Error()
		log.Warn().Str("provider", spec.DisplayName).Str("reason", reason).Msg("provider failed, falling back")
		agg.Attempts = append(agg.Attempts, Attempt{Provider: spec.DisplayName, Reason: reason})
	}

	return Result{}, agg
}

// attempt runs one adapter under the per-attempt deadline.
func (o *Orchestrator) attempt(ctx context.Context, spec ProviderSpec, adapter AdapterFunc, prompt string) (string, time.Duration, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	start := time.Now()
	text, err := adapter(attemptCtx, o.creds[spec.CredentialKey], spec.ModelID, prompt)
	latency := time.Since(start)

	// The parent context hitting its own deadline also shows up as
	// DeadlineExceeded on attemptCtx; only the per-attempt deadline gets
	// the "timed out after" label.
	if err != nil && errors.Is(attemptCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		return "", latency, fmt.Errorf("timed out after %s", o.timeout)
	}
	return text, latency, err
}
