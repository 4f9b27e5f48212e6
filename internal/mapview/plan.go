// README: Map composition; turns ordered stops into markers, route waypoints, and viewport bounds.
package mapview

import (
	"strings"
	"unicode"

	"eldrouter/internal/trip"
	"eldrouter/internal/types"
)

// Marker colors per stop type. Anything unrecognized gets the neutral gray.
const (
	colorCurrentLocation = "#4F46E5"
	colorPickup          = "#F59E0B"
	colorDropoff         = "#EF4444"
	colorRestBreak       = "#10B981"
	colorFuel            = "#8B5CF6"
	colorNeutral         = "#6B7280"
)

// BoundsPadding is the fixed viewport padding in pixels.
const BoundsPadding = 100

// defaultStops is the fallback trio shown before any trip is planned.
var defaultStops = []trip.Stop{
	{Coordinates: [2]float64{-87.6392, 41.8786}, Timestamp: trip.Timestamp{Origin: true}, StopType: "current location"},
	{Coordinates: [2]float64{-83.7462, 32.2600}, StopType: "pickup"},
	{Coordinates: [2]float64{-80.1951, 25.7746}, StopType: "dropoff"},
}

// Popup carries the marker popup content. The timestamp stays ISO-8601; the
// page formats it in the user's locale.
type Popup struct {
	Title         string  `json:"title"`
	Timestamp     string  `json:"timestamp,omitempty"`
	DurationHours float64 `json:"duration_hours,omitempty"`
	// Coordinates is pre-formatted lat-first for display, inverting the
	// internal lon/lat order back to the human convention.
	Coordinates string `json:"coordinates"`
}

type Marker struct {
	Color       string           `json:"color"`
	Coordinates types.Coordinate `json:"coordinates"`
	Popup       Popup            `json:"popup"`
}

// Waypoint is an intermediate routing point. Index is the 0-based position
// in the intermediate list, not the overall stop index.
type Waypoint struct {
	Index       int              `json:"index"`
	Coordinates types.Coordinate `json:"coordinates"`
}

type Route struct {
	Origin      types.Coordinate `json:"origin"`
	Destination types.Coordinate `json:"destination"`
	Waypoints   []Waypoint       `json:"waypoints"`
}

type Bounds struct {
	SW types.Coordinate `json:"sw"`
	NE types.Coordinate `json:"ne"`
}

// Plan is everything the page needs to rebuild the map for a set of stops.
type Plan struct {
	Center  types.Coordinate `json:"center"`
	Zoom    int              `json:"zoom"`
	Markers []Marker         `json:"markers"`
	Route   Route            `json:"route"`
	Bounds  Bounds           `json:"bounds"`
	Padding int              `json:"padding"`
}

// MarkerColor maps a stop type onto its marker color. Matching is
// case-insensitive; unrecognized types get the neutral gray.
func MarkerColor(stopType string) string {
	switch strings.ToLower(stopType) {
	case "current location":
		return colorCurrentLocation
	case "pickup":
		return colorPickup
	case "dropoff":
		return colorDropoff
	case "rest break":
		return colorRestBreak
	case "fuel":
		return colorFuel
	default:
		return colorNeutral
	}
}

// BuildPlan composes the map plan for the given ordered stops. An empty slice
// falls back to the default trio so the page always has a map to draw.
func BuildPlan(stops []trip.Stop) Plan {
	if len(stops) == 0 {
		stops = defaultStops
	}

	plan := Plan{
		Zoom:    4,
		Padding: BoundsPadding,
		Markers: make([]Marker, 0, len(stops)),
	}

	var sumLon, sumLat float64
	bounds := Bounds{SW: stops[0].Coordinate(), NE: stops[0].Coordinate()}

	for i, stop := range stops {
		coord := stop.Coordinate()
		sumLon += coord.Lon
		sumLat += coord.Lat
		bounds = extend(bounds, coord)

		plan.Markers = append(plan.Markers, Marker{
			Color:       MarkerColor(stop.StopType),
			Coordinates: coord,
			Popup: Popup{
				Title:         capitalize(stop.StopType),
				Timestamp:     stop.Timestamp.Value,
				DurationHours: stop.Duration,
				Coordinates:   coord.String(),
			},
		})

		switch {
		case i == 0:
			plan.Route.Origin = coord
		case i == len(stops)-1:
			plan.Route.Destination = coord
		default:
			// The directions overlay indexes waypoints within the
			// intermediate list, hence the -1 shift.
			plan.Route.Waypoints = append(plan.Route.Waypoints, Waypoint{
				Index:       i - 1,
				Coordinates: coord,
			})
		}
	}

	n := float64(len(stops))
	plan.Center = types.Coordinate{Lon: sumLon / n, Lat: sumLat / n}
	plan.Bounds = bounds
	return plan
}

func extend(b Bounds, c types.Coordinate) Bounds {
	if c.Lon < b.SW.Lon {
		b.SW.Lon = c.Lon
	}
	if c.Lat < b.SW.Lat {
		b.SW.Lat = c.Lat
	}
	if c.Lon > b.NE.Lon {
		b.NE.Lon = c.Lon
	}
	if c.Lat > b.NE.Lat {
		b.NE.Lat = c.Lat
	}
	return b
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
