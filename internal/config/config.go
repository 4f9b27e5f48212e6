// README: Config loader with env defaults for HTTP, upstreams, geocoding, and cache settings.
package config

import (
	"os"
	"strconv"
	"time"
)

type GeocodeConfig struct {
	// Provider selects the suggestion backend: "mapbox" (default) or "google".
	Provider string
	// GoogleKey is only consulted when Provider is "google".
	GoogleKey string
	// CacheTTL bounds how long identical queries are served from cache.
	CacheTTL time.Duration
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Trip struct {
		// Endpoint is the trip-planning service base URL. Never exposed to the browser.
		Endpoint string
	}
	Summary struct {
		// UpstreamBase is the summary service base URL; the trip id is appended as a
		// path segment. When empty and GeminiKey is set, summaries are generated locally.
		UpstreamBase string
		GeminiKey    string
	}
	Map struct {
		// Token is the map provider access token. It is public per provider policy
		// and is the only credential the page ever receives.
		Token string
	}
	Redis struct {
		// Addr enables the geocode suggestion cache when non-empty.
		Addr string
	}
	Geocode GeocodeConfig
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("ELD_HTTP_ADDR", ":8080")
	cfg.Trip.Endpoint = envOrError("TRIP_API_ENDPOINT")
	cfg.Summary.UpstreamBase = envOrDefault("SUMMARY_UPSTREAM_BASE", "")
	cfg.Summary.GeminiKey = envOrDefault("GEMINI_API_KEY", "")
	cfg.Map.Token = envOrError("MAP_PROVIDER_TOKEN")
	cfg.Redis.Addr = envOrDefault("ELD_REDIS_ADDR", "")
	cfg.Geocode.Provider = envOrDefault("ELD_GEOCODE_PROVIDER", "mapbox")
	cfg.Geocode.GoogleKey = envOrDefault("GOOGLE_MAPS_API_KEY", "")
	cfg.Geocode.CacheTTL = time.Duration(envOrDefaultInt("ELD_GEOCODE_CACHE_TTL", 60)) * time.Second
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
