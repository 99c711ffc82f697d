// README: Travel data model produced by the AI pipeline.
package trip

import "strings"

// Category is the closed set of place categories the prompts ask for.
type Category string

const (
	CategoryHeritage      Category = "Heritage"
	CategoryNature        Category = "Nature"
	CategoryReligious     Category = "Religious"
	CategoryMarket        Category = "Market"
	CategoryMuseum        Category = "Museum"
	CategoryEntertainment Category = "Entertainment"
	CategoryFood          Category = "Food"
)

var knownCategories = map[Category]bool{
	CategoryHeritage:      true,
	CategoryNature:        true,
	CategoryReligious:     true,
	CategoryMarket:        true,
	CategoryMuseum:        true,
	CategoryEntertainment: true,
	CategoryFood:          true,
}

// ValidCategory reports whether c is one of the closed enum values.
func ValidCategory(c Category) bool {
	return knownCategories[c]
}

// Commute holds per-mode travel hints between consecutive places.
// A mode that does not apply carries the literal "N/A".
type Commute struct {
	Walk  string `json:"walk"`
	Cab   string `json:"cab"`
	Metro string `json:"metro"`
}

// Place is one visitable location. Field names mirror the JSON contract the
// prompt builders instruct the model to emit.
type Place struct {
	Name          string   `json:"name"`
	Location      string   `json:"location,omitempty"`
	ShortDesc     string   `json:"shortDesc,omitempty"`
	Desc          string   `json:"desc,omitempty"`
	Category      Category `json:"category,omitempty"`
	OpeningHours  string   `json:"openingHours,omitempty"`
	EntryFee      string   `json:"entryFee,omitempty"`
	ArrivalTime   string   `json:"arrivalTime,omitempty"`
	VisitDuration string   `json:"visitDuration,omitempty"`
	BestTime      string   `json:"bestTime,omitempty"`
	ClosedNote    string   `json:"closedNote,omitempty"`
	Lat           float64  `json:"lat,omitempty"`
	Lng           float64  `json:"lng,omitempty"`
	PhotoURL      string   `json:"photoUrl,omitempty"`
	Commute       *Commute `json:"commute,omitempty"`
}

// Day is one itinerary day; Places are in visit order.
type Day struct {
	Day      int     `json:"day"`
	Date     string  `json:"date"`
	Theme    string  `json:"theme,omitempty"`
	Location string  `json:"location,omitempty"`
	Places   []Place `json:"places"`
}

// Itinerary is the final stitched result, days ordered by number.
// ProviderUsed attributes the generation to the provider that produced the
// final chunk, so callers can show which model answered.
type Itinerary struct {
	Summary      string `json:"summary"`
	Days         []Day  `json:"days"`
	ProviderUsed string `json:"provider_used,omitempty"`
}

// sanitizePlaces enforces the structural invariants on model output: a place
// without a name is dropped, an unknown category is cleared, and coordinates
// outside WGS84 range are zeroed. Content quality is not policed here.
func sanitizePlaces(places []Place) []Place {
	out := places[:0]
	for _, p := range places {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			continue
		}
		if p.Category != "" && !ValidCategory(p.Category) {
			p.Category = ""
		}
		if p.Lat < -90 || p.Lat > 90 || p.Lng < -180 || p.Lng > 180 {
			p.Lat, p.Lng = 0, 0
		}
		out = append(out, p)
	}
	return out
}
