// README: Place discovery/enrichment/nearby pipeline over the AI core.
package trip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"tripgen/internal/ai"
)

// ErrBadRequest marks caller input the pipeline refuses to run.
var ErrBadRequest = errors.New("bad request")

// ErrNoPlaces is returned when the model answered but every entry failed
// structural validation.
var ErrNoPlaces = errors.New("no valid places in response")

// Locator supplies coordinates and imagery for a named place. It is
// best-effort supporting data; failures never fail the pipeline.
type Locator interface {
	Locate(ctx context.Context, name, region string) (lat, lng float64, photoURL string, err error)
}

// Service exposes the place operations. cache and locator may be nil.
type Service struct {
	caller  Caller
	cache   *Store
	locator Locator
}

// NewService wires the place pipeline.
func NewService(caller Caller, cache *Store, locator Locator) *Service {
	return &Service{caller: caller, cache: cache, locator: locator}
}

// Discover returns the top places for a destination, consulting the cache
// first. Fresh results are enriched with coordinates/imagery and cached.
func (s *Service) Discover(ctx context.Context, destination string, onAttempt func(string)) ([]Place, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return nil, ErrBadRequest
	}

	if cached, ok := s.cache.GetPlaces(ctx, destination); ok {
		log.Debug().Str("destination", destination).Int("places", len(cached)).Msg("discovery cache hit")
		return cached, nil
	}

	places, err := s.placesFromPrompt(ctx, BuildDiscoverPrompt(destination, 12), onAttempt)
	if err != nil {
		return nil, err
	}
	s.enrichLocations(ctx, places, destination)
	s.cache.SetPlaces(ctx, destination, places)
	return places, nil
}

// Enrich fills in visitor details for one named place.
func (s *Service) Enrich(ctx context.Context, name, destination string, onAttempt func(string)) (*Place, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBadRequest
	}

	res, err := s.caller.Call(ctx, BuildEnrichPrompt(name, destination), onAttempt)
	if err != nil {
		return nil, err
	}
	raw, err := ai.Extract(res.Text)
	if err != nil {
		return nil, err
	}

	var p Place
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode place: %w", err)
	}
	valid := sanitizePlaces([]Place{p})
	if len(valid) == 0 {
		// Model dropped the name; keep the caller's.
		p.Name = name
		valid = sanitizePlaces([]Place{p})
	}
	enriched := valid[:1]
	s.enrichLocations(ctx, enriched, destination)
	return &enriched[0], nil
}

// Nearby returns attractions around a reference place or coordinate pair.
func (s *Service) Nearby(ctx context.Context, name string, lat, lng float64, onAttempt func(string)) ([]Place, error) {
	name = strings.TrimSpace(name)
	if name == "" && lat == 0 && lng == 0 {
		return nil, ErrBadRequest
	}
	return s.placesFromPrompt(ctx, BuildNearbyPrompt(name, lat, lng), onAttempt)
}

// placesFromPrompt runs a prompt expecting a JSON array of places.
func (s *Service) placesFromPrompt(ctx context.Context, prompt string, onAttempt func(string)) ([]Place, error) {
	res, err := s.caller.Call(ctx, prompt, onAttempt)
	if err != nil {
		return nil, err
	}
	raw, err := ai.Extract(res.Text)
	if err != nil {
		return nil, err
	}

	var places []Place
	if err := json.Unmarshal(raw, &places); err != nil {
		return nil, fmt.Errorf("decode places: %w", err)
	}
	places = sanitizePlaces(places)
	if len(places) == 0 {
		return nil, ErrNoPlaces
	}
	log.Info().Str("provider", res.ProviderUsed).Int("places", len(places)).Msg("places generated")
	return places, nil
}

// enrichLocations backfills missing coordinates and photo URLs in place.
func (s *Service) enrichLocations(ctx context.Context, places []Place, region string) {
	if s.locator == nil {
		return
	}
	for i := range places {
		if places[i].Lat != 0 && places[i].Lng != 0 && places[i].PhotoURL != "" {
			continue
		}
		lat, lng, photo, err := s.locator.Locate(ctx, places[i].Name, region)
		if err != nil {
			log.Debug().Err(err).Str("place", places[i].Name).Msg("location enrichment failed")
			continue
		}
		if places[i].Lat == 0 && places[i].Lng == 0 {
			places[i].Lat, places[i].Lng = lat, lng
		}
		if places[i].PhotoURL == "" {
			places[i].PhotoURL = photo
		}
	}
}
