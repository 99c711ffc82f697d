// README: Redis-backed discovery cache (TTL session cache, not persistence).
package trip

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// DefaultCacheTTL bounds how long discovery results stay warm.
const DefaultCacheTTL = 24 * time.Hour

// Store caches discovery results in redis. A nil *Store is a valid no-op
// cache so the pipeline runs without redis in tests and the demo binary.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore returns a Store with the given TTL (DefaultCacheTTL when <= 0).
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Store{rdb: rdb, ttl: ttl}
}

func discoverKey(destination string) string {
	return "tripgen:discover:" + strings.ToLower(strings.TrimSpace(destination))
}

// GetPlaces returns the cached discovery result for destination, if any.
// Cache errors count as misses.
func (s *Store) GetPlaces(ctx context.Context, destination string) ([]Place, bool) {
	if s == nil || s.rdb == nil {
		return nil, false
	}
	data, err := s.rdb.Get(ctx, discoverKey(destination)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Msg("discovery cache read failed")
		}
		return nil, false
	}
	var places []Place
	if err := json.Unmarshal(data, &places); err != nil {
		log.Warn().Err(err).Msg("discovery cache entry corrupt, ignoring")
		return nil, false
	}
	return places, true
}

// SetPlaces stores a discovery result. Failures are logged, never surfaced;
// the cache is an optimization, not a dependency.
func (s *Store) SetPlaces(ctx context.Context, destination string, places []Place) {
	if s == nil || s.rdb == nil {
		return
	}
	data, err := json.Marshal(places)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, discoverKey(destination), data, s.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("discovery cache write failed")
	}
}
