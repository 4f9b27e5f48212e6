// README: Common coordinate value object used across modules.
package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Coordinate is a longitude/latitude pair, in that order. This matches the
// map provider convention; the trip service wire format inverts it (see Wire).
type Coordinate struct {
	Lon float64
	Lat float64
}

// Valid reports whether both axes are finite and inside WGS84 bounds.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Lon) || math.IsInf(c.Lon, 0) || math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) {
		return false
	}
	return c.Lon >= -180 && c.Lon <= 180 && c.Lat >= -90 && c.Lat <= 90
}

// Wire returns the [lat, lon] decimal-string pair the trip service expects.
// The axis inversion is a hard invariant of the upstream schema.
func (c Coordinate) Wire() [2]string {
	return [2]string{
		strconv.FormatFloat(c.Lat, 'f', -1, 64),
		strconv.FormatFloat(c.Lon, 'f', -1, 64),
	}
}

// MarshalJSON writes the pair as a [lon, lat] array, the form the map layer
// and the page exchange.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{c.Lon, c.Lat})
}

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	c.Lon, c.Lat = pair[0], pair[1]
	return nil
}

// String formats as "lat, lon" with six decimals, the display convention
// used by popups and the stops table.
func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f, %.6f", c.Lat, c.Lon)
}
