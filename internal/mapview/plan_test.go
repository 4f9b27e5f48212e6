package mapview

import (
	"testing"

	"eldrouter/internal/trip"
)

func stop(lon, lat float64, stopType string) trip.Stop {
	return trip.Stop{Coordinates: [2]float64{lon, lat}, StopType: stopType}
}

func TestMarkerColor(t *testing.T) {
	tests := []struct {
		stopType string
		want     string
	}{
		{"current location", colorCurrentLocation},
		{"Current Location", colorCurrentLocation},
		{"PICKUP", colorPickup},
		{"dropoff", colorDropoff},
		{"rest break", colorRestBreak},
		{"fuel", colorFuel},
		{"mandatory 70 hour rest break", colorNeutral},
		{"", colorNeutral},
	}
	for _, tt := range tests {
		if got := MarkerColor(tt.stopType); got != tt.want {
			t.Errorf("MarkerColor(%q) = %s, want %s", tt.stopType, got, tt.want)
		}
	}
}

func TestBuildPlan_EmptyFallsBackToDefaults(t *testing.T) {
	plan := BuildPlan(nil)
	if len(plan.Markers) != 3 {
		t.Fatalf("markers = %d, want default trio", len(plan.Markers))
	}
	if len(plan.Route.Waypoints) != 1 || plan.Route.Waypoints[0].Index != 0 {
		t.Errorf("waypoints = %+v, want single index-0 pickup", plan.Route.Waypoints)
	}
	if plan.Padding != BoundsPadding {
		t.Errorf("padding = %d", plan.Padding)
	}
}

func TestBuildPlan_TwoStops(t *testing.T) {
	stops := []trip.Stop{
		stop(-87.6324, 41.8781, "current location"),
		stop(-80.1918, 25.7617, "dropoff"),
	}
	plan := BuildPlan(stops)

	if plan.Route.Origin != stops[0].Coordinate() {
		t.Errorf("origin = %+v", plan.Route.Origin)
	}
	if plan.Route.Destination != stops[1].Coordinate() {
		t.Errorf("destination = %+v", plan.Route.Destination)
	}
	if len(plan.Route.Waypoints) != 0 {
		t.Errorf("waypoints = %+v, want none", plan.Route.Waypoints)
	}
}

func TestBuildPlan_WaypointIndexShift(t *testing.T) {
	// Four stops: the second and third overall become intermediates 0 and 1.
	stops := []trip.Stop{
		stop(-87.6324, 41.8781, "current location"),
		stop(-83.746, 32.8407, "pickup"),
		stop(-82.0, 29.0, "fuel"),
		stop(-80.1918, 25.7617, "dropoff"),
	}
	plan := BuildPlan(stops)

	if len(plan.Markers) != 4 {
		t.Fatalf("markers = %d, want 4", len(plan.Markers))
	}
	if len(plan.Route.Waypoints) != 2 {
		t.Fatalf("waypoints = %d, want 2", len(plan.Route.Waypoints))
	}
	for i, wp := range plan.Route.Waypoints {
		if wp.Index != i {
			t.Errorf("waypoint %d has index %d", i, wp.Index)
		}
		if wp.Coordinates != stops[i+1].Coordinate() {
			t.Errorf("waypoint %d coordinates = %+v", i, wp.Coordinates)
		}
	}
}

func TestBuildPlan_BoundsAndCenter(t *testing.T) {
	stops := []trip.Stop{
		stop(-90, 40, "current location"),
		stop(-80, 30, "dropoff"),
	}
	plan := BuildPlan(stops)

	if plan.Bounds.SW.Lon != -90 || plan.Bounds.SW.Lat != 30 {
		t.Errorf("SW = %+v", plan.Bounds.SW)
	}
	if plan.Bounds.NE.Lon != -80 || plan.Bounds.NE.Lat != 40 {
		t.Errorf("NE = %+v", plan.Bounds.NE)
	}
	if plan.Center.Lon != -85 || plan.Center.Lat != 35 {
		t.Errorf("center = %+v", plan.Center)
	}
	if plan.Zoom < 3 || plan.Zoom > 5 {
		t.Errorf("zoom = %d, want 3..5", plan.Zoom)
	}
}

func TestBuildPlan_PopupContent(t *testing.T) {
	stops := []trip.Stop{
		{Coordinates: [2]float64{-87.6324, 41.8781}, Timestamp: trip.Timestamp{Origin: true}, StopType: "current location"},
		{Coordinates: [2]float64{-82.0, 29.0}, Timestamp: trip.Timestamp{Value: "2025-03-23T04:08:08Z"}, Duration: 0.5, StopType: "rest break"},
		{Coordinates: [2]float64{-80.1918, 25.7617}, Timestamp: trip.Timestamp{Value: "2025-03-23T19:27:38Z"}, Duration: 1, StopType: "dropoff"},
	}
	plan := BuildPlan(stops)

	origin := plan.Markers[0].Popup
	if origin.Title != "Current location" {
		t.Errorf("title = %q", origin.Title)
	}
	if origin.Timestamp != "" {
		t.Errorf("origin timestamp = %q, want empty for wire 0", origin.Timestamp)
	}
	// Popup coordinates invert back to lat-first display order.
	if origin.Coordinates != "41.878100, -87.632400" {
		t.Errorf("coordinates = %q", origin.Coordinates)
	}

	rest := plan.Markers[1].Popup
	if rest.Title != "Rest break" || rest.Timestamp != "2025-03-23T04:08:08Z" || rest.DurationHours != 0.5 {
		t.Errorf("rest popup = %+v", rest)
	}
}
