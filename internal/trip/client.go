// README: HTTP client for the trip-planning service.
package trip

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	// ErrIncompleteForm means at least one location has no coordinates.
	// No network call is made in this case.
	ErrIncompleteForm = errors.New("all locations need valid coordinates")
	// ErrBadCoordinates means a coordinate pair is outside WGS84 bounds.
	ErrBadCoordinates = errors.New("coordinates out of range")
	// ErrInvalidResponse means the upstream body did not parse as a trip response.
	ErrInvalidResponse = errors.New("invalid trip service response")
)

// UpstreamError is a non-2xx answer from the trip or summary service.
type UpstreamError struct {
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream request failed with status %d", e.Status)
}

// Client talks to the trip-planning service.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a Client for the given endpoint URL.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 60 * time.Second},
	}
}

// Plan validates the form, posts the wire request, and decodes the response.
// No retries; the caller surfaces failures to the user.
func (c *Client) Plan(ctx context.Context, form Form) (*Response, error) {
	reqBody, err := BuildRequest(form)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("trip service request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused; the body is never relayed.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
		return nil, &UpstreamError{Status: resp.StatusCode}
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if len(out.Stops) < 2 {
		return nil, fmt.Errorf("%w: got %d stops, need at least origin and destination", ErrInvalidResponse, len(out.Stops))
	}
	return &out, nil
}
