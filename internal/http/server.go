// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"eldrouter/internal/geocode"
	"eldrouter/internal/http/handlers"
	"eldrouter/internal/http/middleware"
	"eldrouter/internal/planner"
	"eldrouter/internal/summary"
	"eldrouter/web"
)

type ServerDeps struct {
	Planner  *planner.Service
	Geocode  *geocode.Service
	Summary  *summary.Service
	MapToken string
}

type Server struct {
	planner  *planner.Service
	geocode  *geocode.Service
	summary  *summary.Service
	mapToken string
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		planner:  deps.Planner,
		geocode:  deps.Geocode,
		summary:  deps.Summary,
		mapToken: deps.MapToken,
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging())
	r.Use(cors.Default())

	plannerHandler := handlers.NewPlannerHandler(s.planner)
	r.POST("/api/trips/plan", plannerHandler.Plan)

	geocodeHandler := handlers.NewGeocodeHandler(s.geocode)
	r.GET("/api/geocode", geocodeHandler.Suggest)

	summaryHandler := handlers.NewSummaryHandler(s.summary)
	r.POST("/api/proxy", summaryHandler.Proxy)

	eldLogHandler := handlers.NewEldLogHandler()
	r.POST("/api/logs/pdf", eldLogHandler.Download)

	configHandler := handlers.NewConfigHandler(s.mapToken)
	r.GET("/api/config", configHandler.Get)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	web.Register(r)
	return r
}
