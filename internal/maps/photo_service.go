// README: Google Places lookup for coordinates and supporting imagery.
package maps

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"googlemaps.github.io/maps"
)

const photoMaxWidth = 800

// ErrPlaceNotFound is returned when the Places API has no match for a name.
var ErrPlaceNotFound = errors.New("place not found")

// PhotoService resolves place names to coordinates and a photo URL via the
// Google Places API. Results are supporting data for the AI pipeline; the
// pipeline treats every failure here as non-fatal.
type PhotoService struct {
	client *maps.Client
	apiKey string
}

// NewPhotoService creates a PhotoService with the given API key.
func NewPhotoService(apiKey string) (*PhotoService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}
	return &PhotoService{client: client, apiKey: apiKey}, nil
}

// Locate returns WGS84 coordinates and a photo URL for a named place,
// biased by the surrounding region. The photo URL may be empty when the
// first match carries no imagery.
func (s *PhotoService) Locate(ctx context.Context, name, region string) (lat, lng float64, photoURL string, err error) {
	query := name
	if region != "" {
		query = name + " " + region
	}

	resp, err := s.client.TextSearch(ctx, &maps.TextSearchRequest{Query: query})
	if err != nil {
		return 0, 0, "", fmt.Errorf("places api error: %w", err)
	}
	if len(resp.Results) == 0 {
		return 0, 0, "", ErrPlaceNotFound
	}

	result := resp.Results[0]
	lat = result.Geometry.Location.Lat
	lng = result.Geometry.Location.Lng
	if len(result.Photos) > 0 {
		photoURL = s.photoURL(result.Photos[0].PhotoReference)
	}
	return lat, lng, photoURL, nil
}

// photoURL builds the Place Photo request URL for a photo reference.
func (s *PhotoService) photoURL(ref string) string {
	q := url.Values{}
	q.Set("maxwidth", fmt.Sprint(photoMaxWidth))
	q.Set("photo_reference", ref)
	q.Set("key", s.apiKey)
	return "https://maps.googleapis.com/maps/api/place/photo?" + q.Encode()
}
