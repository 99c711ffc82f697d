// README: Usage store backed by PostgreSQL.
package usage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles ai_calls persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// InsertCall appends one attempt outcome.
func (s *Store) InsertCall(ctx context.Context, rec CallRecord) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO ai_calls (provider, model_id, success, latency_ms, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, rec.Provider, rec.ModelID, rec.Success, rec.LatencyMs, rec.CreatedAt)
	return err
}

// ProviderStats summarizes attempts per provider since a cutoff.
func (s *Store) ProviderStats(ctx context.Context, since time.Time) (map[string]int64, error) {
	rows, err := s.db.Query(ctx, `
		SELECT provider, COUNT(*) FROM ai_calls WHERE created_at >= $1 GROUP BY provider
	`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make(map[string]int64)
	for rows.Next() {
		var provider string
		var n int64
		if err := rows.Scan(&provider, &n); err != nil {
			return nil, err
		}
		stats[provider] = n
	}
	return stats, rows.Err()
}
