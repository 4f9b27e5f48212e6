// README: Planner view models for the results section.
package planner

import (
	"eldrouter/internal/eldlog"
	"eldrouter/internal/mapview"
	"eldrouter/internal/trip"
)

// StopRow is one line of the trip stops table. Timestamp stays ISO-8601 so
// the page can format it in the user's locale; TimeLabel carries the two
// fixed cases ("Start" for the trip origin, "N/A" for anything unreadable).
type StopRow struct {
	StopType      string  `json:"stop_type"`
	TimeLabel     string  `json:"time_label,omitempty"`
	Timestamp     string  `json:"timestamp,omitempty"`
	DurationHours float64 `json:"duration_hours"`
	Coordinates   string  `json:"coordinates"`
}

// View is the full payload the page renders after a successful plan.
type View struct {
	Trip  *trip.Response   `json:"trip"`
	Map   mapview.Plan     `json:"map"`
	Stops []StopRow        `json:"stops"`
	Logs  []eldlog.Preview `json:"eld_logs"`
}
