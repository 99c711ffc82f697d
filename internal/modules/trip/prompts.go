// README: Prompt builders; pure functions whose output contracts the
// normalizer depends on.
package trip

import (
	"fmt"
	"strings"
	"time"
)

// placeJSONContract is the per-place shape every builder asks for. Keys must
// stay in sync with the Place struct tags.
const placeJSONContract = `{"name": "...", "location": "...", "shortDesc": "one line", "desc": "2-3 sentences", "category": "Heritage|Nature|Religious|Market|Museum|Entertainment|Food", "openingHours": "...", "entryFee": "...", "bestTime": "...", "lat": 0.0, "lng": 0.0}`

// visitDurationGuide encodes the per-category pacing heuristics. These are
// soft constraints; the model may violate them and nothing downstream
// enforces them.
const visitDurationGuide = `Typical visit durations: Heritage/Museum 2-3 hours, Religious 1 hour, Nature 2 hours, Market 1-2 hours, Entertainment 2-3 hours, Food 1-1.5 hours.`

// BuildDiscoverPrompt asks for the top visitable places in a destination.
func BuildDiscoverPrompt(destination string, count int) string {
	if count <= 0 {
		count = 12
	}
	var b strings.Builder
	fmt.Fprintf(&b, "List the %d best places to visit in %s for a tourist.\n", count, destination)
	b.WriteString("For each place give its name, the area it is in, a one-line description, a 2-3 sentence description, its category, opening hours, entry fee, the best time of day to visit, and WGS84 decimal coordinates.\n")
	b.WriteString("If a place is closed on specific weekdays, say so in openingHours.\n")
	b.WriteString("Respond with ONLY a JSON array of objects, no markdown, no explanation. Each object:\n")
	b.WriteString(placeJSONContract)
	return b.String()
}

// BuildEnrichPrompt asks for full details of one already-known place.
func BuildEnrichPrompt(name, destination string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Give detailed visitor information for \"%s\" in %s.\n", name, destination)
	b.WriteString("Include opening hours (with weekday exceptions), entry fee, the best time of day to visit, a realistic visit duration, and WGS84 decimal coordinates.\n")
	b.WriteString(visitDurationGuide + "\n")
	b.WriteString("Respond with ONLY a single JSON object, no markdown, no explanation:\n")
	b.WriteString(placeJSONContract)
	return b.String()
}

// BuildNearbyPrompt asks for attractions close to a reference point.
// Clustering radius mirrors the day-planning policy (~5 km).
func BuildNearbyPrompt(name string, lat, lng float64) string {
	var b strings.Builder
	if lat != 0 || lng != 0 {
		fmt.Fprintf(&b, "List tourist attractions within about 5 km of %s (lat %.5f, lng %.5f).\n", name, lat, lng)
	} else {
		fmt.Fprintf(&b, "List tourist attractions within about 5 km of %s.\n", name)
	}
	b.WriteString("Order them by distance, nearest first. Skip hotels and generic shopping malls.\n")
	b.WriteString("Respond with ONLY a JSON array of objects, no markdown, no explanation. Each object:\n")
	b.WriteString(placeJSONContract)
	return b.String()
}

// ChunkParams describes one bounded itinerary-generation sub-request.
type ChunkParams struct {
	Locations []string
	StartDate time.Time
	Days      int
	StartDay  int
	// ContinuityHint summarizes where the previous chunk left off; empty for
	// the first chunk. Advisory text only, the model may still break
	// continuity across the boundary.
	ContinuityHint string
	// Places constrains planning to a pre-selected pool; empty means the
	// model picks freely (auto mode).
	Places   []Place
	AutoMode bool
}

// BuildChunkPrompt produces the generation request for one ≤7-day window.
func BuildChunkPrompt(p ChunkParams) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a %d-day travel itinerary for %s starting on %s.\n",
		p.Days, strings.Join(p.Locations, ", "), p.StartDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "Number the days starting at day %d.\n", p.StartDay)
	if p.ContinuityHint != "" {
		b.WriteString(p.ContinuityHint + "\n")
	}
	if !p.AutoMode && len(p.Places) > 0 {
		b.WriteString("Plan using ONLY these places:\n")
		for _, pl := range p.Places {
			fmt.Fprintf(&b, "- %s (%s)\n", pl.Name, pl.Location)
		}
	}
	b.WriteString("Rules: start each day around 10:00; schedule 4-6 places per day; keep each day's places within roughly a 5 km cluster to minimize commuting; respect opening hours and weekday closures; give each place an arrivalTime, a visitDuration and the commute from the previous place.\n")
	b.WriteString(visitDurationGuide + "\n")
	b.WriteString("Respond with ONLY a JSON object, no markdown, no explanation, shaped as:\n")
	b.WriteString(`{"summary": "one paragraph trip summary", "days": [{"day": 1, "date": "YYYY-MM-DD", "theme": "...", "location": "...", "places": [`)
	b.WriteString(placeJSONContract)
	b.WriteString(` plus "arrivalTime": "HH:MM", "visitDuration": "...", "commute": {"walk": "... or N/A", "cab": "... or N/A", "metro": "... or N/A"}]}]}`)
	return b.String()
}

// continuityHint renders the advisory hand-off text between chunk windows.
func continuityHint(last Day) string {
	loc := last.Location
	if loc == "" && len(last.Places) > 0 {
		loc = last.Places[len(last.Places)-1].Name
	}
	if loc == "" {
		return fmt.Sprintf("This continues an ongoing trip; the previous day was day %d.", last.Day)
	}
	return fmt.Sprintf("This continues an ongoing trip; day %d ended in %s, so continue from there without restarting the theme.", last.Day, loc)
}
