// README: Suggestion cache backed by Redis.
package geocode

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store caches suggestion lists per normalized query so identical consecutive
// lookups skip the provider. A nil Store is a valid no-op cache.
type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStore(redisClient *redis.Client, ttl time.Duration) *Store {
	return &Store{redis: redisClient, ttl: ttl}
}

func cacheKey(query string) string {
	return "geocode:suggest:" + strings.ToLower(strings.TrimSpace(query))
}

// Get returns the cached suggestions for query and whether there was a hit.
func (s *Store) Get(ctx context.Context, query string) ([]Suggestion, bool) {
	if s == nil || s.redis == nil {
		return nil, false
	}
	raw, err := s.redis.Get(ctx, cacheKey(query)).Bytes()
	if err != nil {
		return nil, false
	}
	var out []Suggestion
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}

// Set stores the suggestions for query. Failures are ignored; the cache is
// purely an optimization.
func (s *Store) Set(ctx context.Context, query string, suggestions []Suggestion) {
	if s == nil || s.redis == nil {
		return
	}
	raw, err := json.Marshal(suggestions)
	if err != nil {
		return
	}
	s.redis.Set(ctx, cacheKey(query), raw, s.ttl)
}
