// README: Orchestrates trip planning and assembles the results view.
package planner

import (
	"context"

	"eldrouter/internal/eldlog"
	"eldrouter/internal/mapview"
	"eldrouter/internal/trip"
)

// TripClient is the slice of the trip client the planner needs.
type TripClient interface {
	Plan(ctx context.Context, form trip.Form) (*trip.Response, error)
}

// Service turns a submitted form into everything the results section shows:
// the raw trip, the map plan, the stops table, and the log previews.
type Service struct {
	trips TripClient
}

func NewService(trips TripClient) *Service {
	return &Service{trips: trips}
}

// Plan validates and submits the form, then assembles the view. Stateless:
// identical inputs produce identical requests and views.
func (s *Service) Plan(ctx context.Context, form trip.Form) (*View, error) {
	resp, err := s.trips.Plan(ctx, form)
	if err != nil {
		return nil, err
	}

	return &View{
		Trip:  resp,
		Map:   mapview.BuildPlan(resp.Stops),
		Stops: BuildStopRows(resp.Stops),
		Logs:  eldlog.BuildPreviews(resp.EldLogs),
	}, nil
}

// BuildStopRows maps stops onto table rows. The trip origin (wire timestamp
// 0) renders "Start"; an ISO timestamp is passed through for locale
// formatting; anything else renders "N/A".
func BuildStopRows(stops []trip.Stop) []StopRow {
	rows := make([]StopRow, 0, len(stops))
	for _, stop := range stops {
		row := StopRow{
			StopType:      stop.StopType,
			DurationHours: stop.Duration,
			Coordinates:   stop.Coordinate().String(),
		}
		switch {
		case stop.Timestamp.Origin:
			row.TimeLabel = "Start"
		case stop.Timestamp.Value != "":
			row.Timestamp = stop.Timestamp.Value
		default:
			row.TimeLabel = "N/A"
		}
		rows = append(rows, row)
	}
	return rows
}
