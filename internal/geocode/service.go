package geocode

import (
	"context"
	"strings"
	"unicode/utf8"
)

// MinQueryLen is the shortest query that may reach a provider.
const MinQueryLen = 2

// Service fronts a Provider with the query-length gate, the result cap, and
// an optional cache.
type Service struct {
	provider Provider
	cache    *Store
}

func NewService(provider Provider, cache *Store) *Service {
	return &Service{provider: provider, cache: cache}
}

// Suggest returns ranked suggestions for query. Queries shorter than
// MinQueryLen return an empty list without touching the provider.
func (s *Service) Suggest(ctx context.Context, query string) ([]Suggestion, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLen {
		return nil, nil
	}

	if cached, ok := s.cache.Get(ctx, query); ok {
		return cached, nil
	}

	suggestions, err := s.provider.Suggest(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}

	s.cache.Set(ctx, query, suggestions)
	return suggestions, nil
}
