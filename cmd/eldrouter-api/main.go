// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"eldrouter/internal/config"
	"eldrouter/internal/geocode"
	httptransport "eldrouter/internal/http"
	"eldrouter/internal/infra"
	"eldrouter/internal/planner"
	"eldrouter/internal/summary"
	"eldrouter/internal/trip"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cache *geocode.Store
	if cfg.Redis.Addr != "" {
		cache = geocode.NewStore(infra.NewRedis(cfg.Redis.Addr), cfg.Geocode.CacheTTL)
	}

	var provider geocode.Provider
	switch cfg.Geocode.Provider {
	case "google":
		provider, err = geocode.NewGoogleProvider(cfg.Geocode.GoogleKey)
		if err != nil {
			log.Fatalf("google geocode init: %v", err)
		}
	default:
		provider = geocode.NewMapboxProvider(cfg.Map.Token)
	}
	geocodeSvc := geocode.NewService(provider, cache)

	tripClient := trip.NewClient(cfg.Trip.Endpoint)
	plannerSvc := planner.NewService(tripClient)

	var summaryBackend summary.Provider
	switch {
	case cfg.Summary.UpstreamBase != "":
		summaryBackend = summary.NewUpstream(cfg.Summary.UpstreamBase)
	case cfg.Summary.GeminiKey != "":
		gemini, err := summary.NewGeminiProvider(ctx, cfg.Summary.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gemini.Close()
		summaryBackend = gemini
	default:
		log.Fatal("either SUMMARY_UPSTREAM_BASE or GEMINI_API_KEY is required")
	}
	summarySvc := summary.NewService(summaryBackend)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Planner:  plannerSvc,
		Geocode:  geocodeSvc,
		Summary:  summarySvc,
		MapToken: cfg.Map.Token,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
