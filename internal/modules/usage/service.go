// README: Usage service; records provider attempt outcomes off the hot path.
package usage

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Service implements the orchestrator's Recorder. A Service with a nil
// store is a no-op, so the pipeline runs without postgres configured.
type Service struct {
	store *Store
}

// NewService creates a Service backed by store (may be nil).
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// RecordAttempt persists one attempt outcome. Accounting must never fail a
// user request, so errors are logged and swallowed.
func (s *Service) RecordAttempt(ctx context.Context, provider, modelID string, success bool, latency time.Duration) {
	if s == nil || s.store == nil {
		return
	}
	rec := CallRecord{
		Provider:  provider,
		ModelID:   modelID,
		Success:   success,
		LatencyMs: latency.Milliseconds(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.InsertCall(ctx, rec); err != nil {
		log.Warn().Err(err).Str("provider", provider).Msg("usage record failed")
	}
}

// ProviderStats returns attempt counts per provider since the cutoff. With
// no store configured there is nothing recorded, so the result is empty.
func (s *Service) ProviderStats(ctx context.Context, since time.Time) (map[string]int64, error) {
	if s == nil || s.store == nil {
		return map[string]int64{}, nil
	}
	return s.store.ProviderStats(ctx, since)
}
