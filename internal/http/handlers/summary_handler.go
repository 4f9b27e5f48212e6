// README: Summary proxy handler; shields the upstream URL from the page.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"eldrouter/internal/summary"
	"eldrouter/internal/trip"
)

type SummaryHandler struct {
	summary *summary.Service
}

func NewSummaryHandler(svc *summary.Service) *SummaryHandler {
	return &SummaryHandler{summary: svc}
}

type proxyRequest struct {
	TripID string          `json:"tripId"`
	Data   json.RawMessage `json:"data"`
}

// Proxy handles POST /api/proxy. The upstream response is relayed verbatim
// on success; on upstream failure only the status travels back.
func (h *SummaryHandler) Proxy(c *gin.Context) {
	var req proxyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	result, err := h.summary.Summarize(c.Request.Context(), req.TripID, req.Data)
	if err != nil {
		var ue *trip.UpstreamError
		switch {
		case errors.Is(err, summary.ErrMissingTripID):
			writeError(c, http.StatusBadRequest, "Trip ID is required")
		case errors.As(err, &ue):
			writeError(c, ue.Status, fmt.Sprintf("API request failed with status %d", ue.Status))
		default:
			log.Printf("summary for trip %q failed: %v", req.TripID, err)
			writeError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.Data(http.StatusOK, "application/json", result)
}
