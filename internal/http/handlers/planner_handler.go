// README: Planner submit handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eldrouter/internal/planner"
	"eldrouter/internal/trip"
)

type PlannerHandler struct {
	planner *planner.Service
}

func NewPlannerHandler(svc *planner.Service) *PlannerHandler {
	return &PlannerHandler{planner: svc}
}

// Plan handles POST /api/trips/plan. The handler is stateless; submission
// serialization (disabled submit while loading) lives in the page.
func (h *PlannerHandler) Plan(c *gin.Context) {
	var form trip.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	view, err := h.planner.Plan(c.Request.Context(), form)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, view)
}
