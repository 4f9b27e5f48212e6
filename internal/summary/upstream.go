// README: Summary provider that forwards to the configured upstream service.
package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"eldrouter/internal/trip"
)

// Upstream forwards summary requests to ${base}/${tripId}. The base URL and
// any future auth headers stay inside this process; the page only ever talks
// to the proxy endpoint.
type Upstream struct {
	base string
	http *http.Client
}

func NewUpstream(base string) *Upstream {
	return &Upstream{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 60 * time.Second},
	}
}

// Summarize posts the scrubbed payload and relays the upstream JSON body.
// Non-2xx answers surface as UpstreamError carrying only the status; upstream
// error bodies are never relayed.
func (u *Upstream) Summarize(ctx context.Context, tripID string, payload json.RawMessage) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/%s", u.base, url.PathEscape(tripID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := u.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("summary upstream request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
		return nil, &trip.UpstreamError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("summary upstream body: %w", err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: summary upstream", trip.ErrInvalidResponse)
	}
	return body, nil
}
