// README: Geocoding suggestion types and provider contract.
package geocode

import (
	"context"
	"errors"

	"eldrouter/internal/types"
)

// MaxSuggestions caps every suggestion list regardless of provider.
const MaxSuggestions = 5

// ErrProvider is a non-2xx answer from the geocoding provider.
var ErrProvider = errors.New("geocoding provider error")

// Suggestion is one ranked location candidate for a free-text query.
type Suggestion struct {
	ID        string           `json:"id"`
	PlaceName string           `json:"place_name"`
	Center    types.Coordinate `json:"center"`
}

// Provider returns ranked suggestions for a query, upstream relevance order
// preserved. Implementations must not be called for queries under two runes;
// the Service enforces that.
type Provider interface {
	Suggest(ctx context.Context, query string) ([]Suggestion, error)
}

func coordFromPair(p [2]float64) types.Coordinate {
	return types.Coordinate{Lon: p[0], Lat: p[1]}
}
