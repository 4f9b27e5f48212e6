// README: Summary backend contract and payload scrubbing.
package summary

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrMissingTripID means the proxy request carried no trip id.
var ErrMissingTripID = errors.New("Trip ID is required")

// Provider produces a natural-language trip summary. The returned message is
// relayed to the page verbatim.
type Provider interface {
	Summarize(ctx context.Context, tripID string, payload json.RawMessage) (json.RawMessage, error)
}

// Service fronts a Provider with the trip-id check and payload scrubbing.
type Service struct {
	provider Provider
}

func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// Summarize scrubs the base64 log payloads out of data and dispatches to the
// configured backend.
func (s *Service) Summarize(ctx context.Context, tripID string, data json.RawMessage) (json.RawMessage, error) {
	if tripID == "" {
		return nil, ErrMissingTripID
	}
	return s.provider.Summarize(ctx, tripID, ScrubPayload(data))
}

// ScrubPayload empties eld_logs[i].img_base64 and .pdf_base64 inside an
// arbitrary trip payload, leaving every other field untouched. Payloads that
// are not JSON objects pass through unchanged.
func ScrubPayload(data json.RawMessage) json.RawMessage {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return data
	}

	logs, ok := doc["eld_logs"].([]any)
	if !ok {
		return data
	}
	for _, entry := range logs {
		log, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if _, present := log["img_base64"]; present {
			log["img_base64"] = ""
		}
		if _, present := log["pdf_base64"]; present {
			log["pdf_base64"] = ""
		}
	}

	scrubbed, err := json.Marshal(doc)
	if err != nil {
		return data
	}
	return scrubbed
}
