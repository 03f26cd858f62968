package geocode

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// GoogleProvider resolves place names through the Google Maps Geocoding API.
type GoogleProvider struct {
	client *maps.Client
}

// NewGoogleProvider creates a provider from an API key.
func NewGoogleProvider(apiKey string) (*GoogleProvider, error) {
	c, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleProvider{client: c}, nil
}

// ReverseGeocode returns the locality-level formatted address for a
// coordinate, or an empty string when the API has no result there.
func (g *GoogleProvider) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	req := &maps.GeocodingRequest{
		LatLng:     &maps.LatLng{Lat: lat, Lng: lon},
		ResultType: []string{"locality", "political"},
	}

	results, err := g.client.ReverseGeocode(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to reverse geocode: %w", err)
	}
	if len(results) == 0 {
		return "", nil
	}

	return results[0].FormattedAddress, nil
}
