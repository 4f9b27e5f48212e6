// README: Mapbox places provider over plain net/http.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const mapboxBaseURL = "https://api.mapbox.com"

// MapboxProvider queries the Mapbox forward-geocoding API.
type MapboxProvider struct {
	token   string
	baseURL string
	http    *http.Client
}

// NewMapboxProvider creates a provider using the given access token.
func NewMapboxProvider(token string) *MapboxProvider {
	return &MapboxProvider{
		token:   token,
		baseURL: mapboxBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type mapboxFeature struct {
	ID        string     `json:"id"`
	PlaceName string     `json:"place_name"`
	Center    [2]float64 `json:"center"`
}

type mapboxResponse struct {
	Features []mapboxFeature `json:"features"`
}

// Suggest runs a forward geocode restricted to places and addresses, with
// autocomplete enabled and at most MaxSuggestions results.
func (p *MapboxProvider) Suggest(ctx context.Context, query string) ([]Suggestion, error) {
	params := url.Values{}
	params.Set("access_token", p.token)
	params.Set("autocomplete", "true")
	params.Set("limit", fmt.Sprintf("%d", MaxSuggestions))
	params.Set("types", "place,address")

	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?%s",
		p.baseURL, url.PathEscape(query), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mapbox request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrProvider, resp.StatusCode)
	}

	var body mapboxResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	out := make([]Suggestion, 0, len(body.Features))
	for _, f := range body.Features {
		out = append(out, Suggestion{
			ID:        f.ID,
			PlaceName: f.PlaceName,
			Center:    coordFromPair(f.Center),
		})
		if len(out) >= MaxSuggestions {
			break
		}
	}
	return out, nil
}
