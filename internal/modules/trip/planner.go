// README: Itinerary chunker; splits long trips into ≤7-day windows and
// stitches the results back into one contiguous timeline.
package trip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"tripgen/internal/ai"
)

// maxChunkDays bounds each generation request so a single model response
// stays inside provider output and time limits.
const maxChunkDays = 7

// Caller runs one prompt through the provider fallback chain.
// *ai.Orchestrator satisfies it.
type Caller interface {
	Call(ctx context.Context, prompt string, onAttempt func(providerName string)) (ai.Result, error)
}

// PlanRequest are the caller-supplied trip parameters.
type PlanRequest struct {
	Locations []string
	StartDate time.Time
	EndDate   time.Time
	// Places constrains planning to a pre-selected pool; ignored when
	// AutoMode is set.
	Places   []Place
	AutoMode bool
}

// Planner generates complete itineraries through the AI pipeline.
type Planner struct {
	caller Caller
}

// NewPlanner creates a Planner on top of the given caller.
func NewPlanner(caller Caller) *Planner {
	return &Planner{caller: caller}
}

// chunkResult is the JSON shape one chunk prompt asks the model for.
// provider is filled in after decoding, not by the model.
type chunkResult struct {
	Summary string `json:"summary"`
	Days    []Day  `json:"days"`

	provider string
}

// Generate produces the full itinerary for req. Trips over maxChunkDays are
// generated window by window, in chronological order, each window carrying a
// continuity hint from the previous one. Any chunk failure aborts the whole
// generation; partial itineraries are never returned.
func (p *Planner) Generate(ctx context.Context, req PlanRequest, onAttempt func(providerName string)) (*Itinerary, error) {
	if len(req.Locations) == 0 {
		return nil, fmt.Errorf("%w: at least one location is required", ErrBadRequest)
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: end date before start date", ErrBadRequest)
	}
	totalDays := int(req.EndDate.Sub(req.StartDate).Hours()/24) + 1

	itin := &Itinerary{}
	var lastDay *Day

	for startDay := 1; startDay <= totalDays; startDay += maxChunkDays {
		windowDays := totalDays - startDay + 1
		if windowDays > maxChunkDays {
			windowDays = maxChunkDays
		}

		params := ChunkParams{
			Locations: req.Locations,
			StartDate: req.StartDate.AddDate(0, 0, startDay-1),
			Days:      windowDays,
			StartDay:  startDay,
			Places:    req.Places,
			AutoMode:  req.AutoMode,
		}
		if lastDay != nil {
			params.ContinuityHint = continuityHint(*lastDay)
		}

		chunk, err := p.generateChunk(ctx, params, onAttempt)
		if err != nil {
			return nil, fmt.Errorf("itinerary days %d-%d: %w", startDay, startDay+windowDays-1, err)
		}

		// Renumbering is authoritative: the model is told the starting day
		// number but routinely mis-numbers internally. Dates follow the day
		// number so the timeline covers the requested range exactly.
		for i := range chunk.Days {
			n := len(itin.Days) + i + 1
			chunk.Days[i].Day = n
			chunk.Days[i].Date = req.StartDate.AddDate(0, 0, n-1).Format("2006-01-02")
			chunk.Days[i].Places = sanitizePlaces(chunk.Days[i].Places)
		}

		if itin.Summary == "" && strings.TrimSpace(chunk.Summary) != "" {
			itin.Summary = strings.TrimSpace(chunk.Summary)
		}
		itin.Days = append(itin.Days, chunk.Days...)
		itin.ProviderUsed = chunk.provider
		if n := len(itin.Days); n > 0 {
			lastDay = &itin.Days[n-1]
		}
	}

	if itin.Summary == "" {
		itin.Summary = fmt.Sprintf("%d-day trip across %s", totalDays, strings.Join(req.Locations, ", "))
	}
	return itin, nil
}

// generateChunk runs one window through the orchestrator and normalizer.
func (p *Planner) generateChunk(ctx context.Context, params ChunkParams, onAttempt func(string)) (*chunkResult, error) {
	res, err := p.caller.Call(ctx, BuildChunkPrompt(params), onAttempt)
	if err != nil {
		return nil, err
	}

	raw, err := ai.Extract(res.Text)
	if err != nil {
		return nil, err
	}

	var chunk chunkResult
	if err := json.Unmarshal(raw, &chunk); err != nil {
		return nil, fmt.Errorf("decode itinerary chunk: %w", err)
	}
	if len(chunk.Days) == 0 {
		return nil, errors.New("chunk contains no days")
	}
	if len(chunk.Days) != params.Days {
		log.Warn().Int("want", params.Days).Int("got", len(chunk.Days)).
			Str("provider", res.ProviderUsed).Msg("chunk day count mismatch")
	}
	if len(chunk.Days) > params.Days {
		// Extra days would push the stitched timeline past the requested
		// end date. A short chunk is tolerated; it only shrinks coverage.
		chunk.Days = chunk.Days[:params.Days]
	}

	log.Info().Str("provider", res.ProviderUsed).Int("days", len(chunk.Days)).Msg("itinerary chunk generated")
	chunk.provider = res.ProviderUsed
	return &chunk, nil
}
