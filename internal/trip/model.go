// README: Trip service wire types and form state.
package trip

import (
	"bytes"
	"encoding/json"
	"fmt"

	"eldrouter/internal/types"
)

// LocationField mirrors one location input on the planner form. Only fields
// whose Coordinates are set are eligible for submission.
type LocationField struct {
	Text        string            `json:"text"`
	Coordinates *types.Coordinate `json:"coordinates,omitempty"`
	PlaceName   string            `json:"place_name"`
}

// Form is the planner form state submitted for route generation.
type Form struct {
	Current    LocationField `json:"current_location"`
	Pickup     LocationField `json:"pickup_location"`
	Dropoff    LocationField `json:"dropoff_location"`
	CycleHours float64       `json:"current_cycle_hours"`
}

// WireLocation is a named location as the trip service expects it: the
// coordinate pair is [lat, lon] serialized as decimal strings, the inverse
// of the internal lon/lat order.
type WireLocation struct {
	Name        string    `json:"name"`
	Coordinates [2]string `json:"coordinates"`
}

// Request is the trip service request body.
type Request struct {
	CurrentLocation WireLocation `json:"current_location"`
	PickupLocation  WireLocation `json:"pickup_location"`
	DropoffLocation WireLocation `json:"dropoff_location"`
	CycleHours      float64      `json:"current_cycle_hours"`
}

// Timestamp is a stop time that arrives either as the JSON number 0 (trip
// origin) or as an ISO-8601 string. Anything else decodes to the zero value,
// which renders as "N/A".
type Timestamp struct {
	Value  string
	Origin bool
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Origin {
		return []byte("0"), nil
	}
	if t.Value == "" {
		return []byte("null"), nil
	}
	return json.Marshal(t.Value)
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("0")) {
		*t = Timestamp{Origin: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Timestamp{Value: s}
		return nil
	}
	// Unexpected shape (null, other numbers); keep the zero value.
	*t = Timestamp{}
	return nil
}

// Stop is one point along the planned route. Coordinates are [lon, lat].
type Stop struct {
	Coordinates [2]float64 `json:"coordinates"`
	Timestamp   Timestamp  `json:"timestamp"`
	Duration    float64    `json:"duration"`
	StopType    string     `json:"stop_type"`
}

// Coordinate returns the stop position in the internal lon/lat order.
func (s Stop) Coordinate() types.Coordinate {
	return types.Coordinate{Lon: s.Coordinates[0], Lat: s.Coordinates[1]}
}

// EldLog is one generated daily log sheet.
type EldLog struct {
	Date       string  `json:"date"`
	TotalMiles float64 `json:"total_miles"`
	ImgBase64  string  `json:"img_base64"`
	PdfBase64  string  `json:"pdf_base64"`
}

// HOS carries the hours-of-service envelope computed upstream.
type HOS struct {
	Warning          string `json:"warning"`
	HoursLeftIn8Days string `json:"hours_left_in_8_days"`
}

// Response is the trip service response. Two upstream variants exist; this is
// the superset, with the fields only one variant carries left optional.
type Response struct {
	ID              string   `json:"id"`
	TotalDistance   float64  `json:"total_distance"`
	TotalDuration   float64  `json:"total_duration"`
	DrivingDuration *float64 `json:"driving_duration,omitempty"`
	RestStops       *int     `json:"rest_stops,omitempty"`
	Stops           []Stop   `json:"stops"`
	EldLogs         []EldLog `json:"eld_logs"`
	HOS             HOS      `json:"hos"`
}

// BuildRequest converts form state into the wire request. It fails with
// ErrIncompleteForm when any location has no coordinates and with
// ErrBadCoordinates when a pair is outside WGS84 bounds.
func BuildRequest(form Form) (Request, error) {
	locs := [3]LocationField{form.Current, form.Pickup, form.Dropoff}
	var wire [3]WireLocation
	for i, loc := range locs {
		if loc.Coordinates == nil {
			return Request{}, ErrIncompleteForm
		}
		if !loc.Coordinates.Valid() {
			return Request{}, fmt.Errorf("%w: %v", ErrBadCoordinates, *loc.Coordinates)
		}
		name := loc.PlaceName
		if name == "" {
			name = loc.Text
		}
		wire[i] = WireLocation{Name: name, Coordinates: loc.Coordinates.Wire()}
	}
	return Request{
		CurrentLocation: wire[0],
		PickupLocation:  wire[1],
		DropoffLocation: wire[2],
		CycleHours:      form.CycleHours,
	}, nil
}
