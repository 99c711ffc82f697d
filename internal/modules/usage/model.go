// README: Provider-call accounting records.
package usage

import "time"

// CallRecord is one provider attempt outcome, kept for cost and reliability
// analysis. This is operational bookkeeping; no trip data is stored.
type CallRecord struct {
	Provider  string
	ModelID   string
	Success   bool
	LatencyMs int64
	CreatedAt time.Time
}
