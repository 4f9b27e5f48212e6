package geocode

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// GoogleProvider serves suggestions from the Google Places text search.
// It is the alternate backend for deployments without a Mapbox token.
type GoogleProvider struct {
	client *maps.Client
}

// NewGoogleProvider creates a provider with the given API key.
func NewGoogleProvider(apiKey string) (*GoogleProvider, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleProvider{client: client}, nil
}

// Suggest runs a text search and maps the results onto suggestions. Google
// has no direct equivalent of the place/address type restriction, so results
// without a geometry are skipped instead.
func (p *GoogleProvider) Suggest(ctx context.Context, query string) ([]Suggestion, error) {
	resp, err := p.client.TextSearch(ctx, &maps.TextSearchRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	var out []Suggestion
	for _, r := range resp.Results {
		name := r.FormattedAddress
		if name == "" {
			name = r.Name
		}
		out = append(out, Suggestion{
			ID:        r.PlaceID,
			PlaceName: name,
			Center: coordFromPair([2]float64{
				r.Geometry.Location.Lng,
				r.Geometry.Location.Lat,
			}),
		})
		if len(out) >= MaxSuggestions {
			break
		}
	}
	return out, nil
}
