package types

import (
	"math"
	"testing"
)

func TestCoordinate_Valid(t *testing.T) {
	tests := []struct {
		name string
		c    Coordinate
		want bool
	}{
		{"chicago", Coordinate{Lon: -87.6324, Lat: 41.8781}, true},
		{"antimeridian", Coordinate{Lon: 180, Lat: 0}, true},
		{"pole", Coordinate{Lon: 0, Lat: -90}, true},
		{"lon out of range", Coordinate{Lon: -180.01, Lat: 0}, false},
		{"lat out of range", Coordinate{Lon: 0, Lat: 90.5}, false},
		{"nan", Coordinate{Lon: math.NaN(), Lat: 0}, false},
		{"inf", Coordinate{Lon: 0, Lat: math.Inf(1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCoordinate_Wire(t *testing.T) {
	// The wire pair is [lat, lon] as strings, the inverse of the internal order.
	c := Coordinate{Lon: -87.6324, Lat: 41.8781}
	got := c.Wire()
	if got[0] != "41.8781" || got[1] != "-87.6324" {
		t.Errorf("Wire() = %v, want [41.8781 -87.6324]", got)
	}
}

func TestCoordinate_String(t *testing.T) {
	c := Coordinate{Lon: -80.1918, Lat: 25.7617}
	if got := c.String(); got != "25.761700, -80.191800" {
		t.Errorf("String() = %q", got)
	}
}
