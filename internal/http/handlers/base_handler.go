// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"eldrouter/internal/trip"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeTripError maps trip-planning failures onto user-safe responses.
// Stack traces and upstream bodies never reach the page.
func writeTripError(c *gin.Context, err error) {
	var ue *trip.UpstreamError
	switch {
	case errors.Is(err, trip.ErrIncompleteForm), errors.Is(err, trip.ErrBadCoordinates):
		writeError(c, http.StatusBadRequest, "Please ensure all locations have valid coordinates")
	case errors.As(err, &ue):
		writeError(c, http.StatusBadGateway, fmt.Sprintf("Route generation failed with status %d", ue.Status))
	case errors.Is(err, trip.ErrInvalidResponse):
		log.Printf("trip service response rejected: %v", err)
		writeError(c, http.StatusBadGateway, "Failed to generate route. Please try again.")
	default:
		log.Printf("trip plan failed: %v", err)
		writeError(c, http.StatusBadGateway, "Failed to generate route. Please try again.")
	}
}
