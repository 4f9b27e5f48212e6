// README: Geocoding suggestion handler.
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"eldrouter/internal/geocode"
)

type GeocodeHandler struct {
	geocode *geocode.Service
}

func NewGeocodeHandler(svc *geocode.Service) *GeocodeHandler {
	return &GeocodeHandler{geocode: svc}
}

type suggestResponse struct {
	Suggestions []geocode.Suggestion `json:"suggestions"`
}

// Suggest handles GET /api/geocode?q=. Provider failures degrade to an empty
// list; the dropdown just shows nothing.
func (h *GeocodeHandler) Suggest(c *gin.Context) {
	query := c.Query("q")

	suggestions, err := h.geocode.Suggest(c.Request.Context(), query)
	if err != nil {
		log.Printf("geocode %q failed: %v", query, err)
		suggestions = nil
	}
	if suggestions == nil {
		suggestions = []geocode.Suggestion{}
	}
	writeJSON(c, http.StatusOK, suggestResponse{Suggestions: suggestions})
}
