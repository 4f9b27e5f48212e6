// README: Page bootstrap config handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ConfigHandler hands the page its bootstrap settings. Only the map tile
// token crosses this boundary; it is public per provider policy. Geocoding
// and trip-service credentials never leave the server.
type ConfigHandler struct {
	mapToken string
}

func NewConfigHandler(mapToken string) *ConfigHandler {
	return &ConfigHandler{mapToken: mapToken}
}

func (h *ConfigHandler) Get(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"map_token": h.mapToken})
}
