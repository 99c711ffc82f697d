package trip

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeLocator struct {
	calls int
}

func (f *fakeLocator) Locate(ctx context.Context, name, region string) (float64, float64, string, error) {
	f.calls++
	return 26.9855, 75.8513, "https://img.example/" + name, nil
}

func TestDiscoverParsesAndEnriches(t *testing.T) {
	fc := &fakeCaller{responses: []string{
		"```json\n[{\"name\": \"Amber Fort\", \"category\": \"Heritage\"}, {\"name\": \"\", \"category\": \"Nature\"}, {\"name\": \"Hawa Mahal\", \"category\": \"Palace\"}]\n```",
	}}
	loc := &fakeLocator{}
	svc := NewService(fc, nil, loc)

	places, err := svc.Discover(context.Background(), "Jaipur", nil)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	// Nameless entry dropped, unknown category cleared.
	if len(places) != 2 {
		t.Fatalf("places = %d, want 2", len(places))
	}
	if places[1].Name != "Hawa Mahal" || places[1].Category != "" {
		t.Errorf("places[1] = %+v, want cleared unknown category", places[1])
	}
	if places[0].Lat == 0 || places[0].PhotoURL == "" {
		t.Errorf("places[0] = %+v, want coordinates and photo backfilled", places[0])
	}
	if loc.calls != 2 {
		t.Errorf("locator calls = %d, want 2", loc.calls)
	}
}

func TestDiscoverNilLocatorAndCache(t *testing.T) {
	fc := &fakeCaller{responses: []string{`[{"name": "City Palace"}]`}}
	svc := NewService(fc, nil, nil)

	places, err := svc.Discover(context.Background(), "Udaipur", nil)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(places) != 1 || places[0].Lat != 0 {
		t.Errorf("places = %+v, want single unenriched place", places)
	}
}

func TestDiscoverAllEntriesInvalid(t *testing.T) {
	fc := &fakeCaller{responses: []string{`[{"name": "  "}, {"category": "Food"}]`}}
	svc := NewService(fc, nil, nil)

	_, err := svc.Discover(context.Background(), "Jaipur", nil)
	if !errors.Is(err, ErrNoPlaces) {
		t.Errorf("Discover() error = %v, want ErrNoPlaces", err)
	}
}

func TestDiscoverEmptyDestination(t *testing.T) {
	svc := NewService(&fakeCaller{}, nil, nil)
	if _, err := svc.Discover(context.Background(), "  ", nil); !errors.Is(err, ErrBadRequest) {
		t.Errorf("Discover() error = %v, want ErrBadRequest", err)
	}
}

func TestDiscoverPropagatesProviderFailure(t *testing.T) {
	fc := &fakeCaller{err: errors.New("Gemini: HTTP 500\nGPT: HTTP 503")}
	svc := NewService(fc, nil, nil)

	_, err := svc.Discover(context.Background(), "Jaipur", nil)
	if err == nil || !strings.Contains(err.Error(), "HTTP 503") {
		t.Errorf("Discover() error = %v, want provider failure passed through", err)
	}
}

func TestEnrichKeepsRequestedName(t *testing.T) {
	fc := &fakeCaller{responses: []string{
		`{"openingHours": "9:00-17:00, closed Mondays", "entryFee": "₹500", "category": "Heritage"}`,
	}}
	svc := NewService(fc, nil, nil)

	p, err := svc.Enrich(context.Background(), "Amber Fort", "Jaipur", nil)
	if err != nil {
		t.Fatalf("Enrich() error = %v", err)
	}
	if p.Name != "Amber Fort" {
		t.Errorf("Name = %q, want requested name kept when model omits it", p.Name)
	}
	if p.OpeningHours == "" || p.Category != CategoryHeritage {
		t.Errorf("place = %+v, want enriched details", p)
	}
}

func TestEnrichBackfillsLocation(t *testing.T) {
	fc := &fakeCaller{responses: []string{
		`{"name": "Amber Fort", "category": "Heritage", "openingHours": "8:00-17:30"}`,
	}}
	loc := &fakeLocator{}
	svc := NewService(fc, nil, loc)

	p, err := svc.Enrich(context.Background(), "Amber Fort", "Jaipur", nil)
	if err != nil {
		t.Fatalf("Enrich() error = %v", err)
	}
	if loc.calls != 1 {
		t.Fatalf("locator calls = %d, want 1", loc.calls)
	}
	if p.Lat != 26.9855 || p.Lng != 75.8513 {
		t.Errorf("coordinates = (%v, %v), want locator backfill", p.Lat, p.Lng)
	}
	if p.PhotoURL == "" {
		t.Errorf("PhotoURL empty, want locator backfill")
	}
}

func TestNearbyRequiresReference(t *testing.T) {
	svc := NewService(&fakeCaller{}, nil, nil)
	if _, err := svc.Nearby(context.Background(), "", 0, 0, nil); !errors.Is(err, ErrBadRequest) {
		t.Errorf("Nearby() error = %v, want ErrBadRequest", err)
	}
}

func TestNearbyParsesArray(t *testing.T) {
	fc := &fakeCaller{responses: []string{`[{"name": "Jal Mahal", "category": "Heritage"}]`}}
	svc := NewService(fc, nil, nil)

	places, err := svc.Nearby(context.Background(), "Amber Fort", 26.9855, 75.8513, nil)
	if err != nil {
		t.Fatalf("Nearby() error = %v", err)
	}
	if len(places) != 1 || places[0].Name != "Jal Mahal" {
		t.Errorf("places = %+v", places)
	}
	if !strings.Contains(fc.prompts[0], "5 km") {
		t.Errorf("nearby prompt lacks clustering radius:\n%s", fc.prompts[0])
	}
}
