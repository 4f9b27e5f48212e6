package summary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eldrouter/internal/trip"
)

type stubBackend struct {
	gotTripID  string
	gotPayload json.RawMessage
	result     json.RawMessage
	err        error
}

func (s *stubBackend) Summarize(_ context.Context, tripID string, payload json.RawMessage) (json.RawMessage, error) {
	s.gotTripID = tripID
	s.gotPayload = payload
	return s.result, s.err
}

func TestService_MissingTripID(t *testing.T) {
	svc := NewService(&stubBackend{})
	if _, err := svc.Summarize(context.Background(), "", json.RawMessage(`{}`)); !errors.Is(err, ErrMissingTripID) {
		t.Fatalf("err = %v, want ErrMissingTripID", err)
	}
}

func TestService_ScrubsLogPayloads(t *testing.T) {
	backend := &stubBackend{result: json.RawMessage(`{"summary":"ok"}`)}
	svc := NewService(backend)

	data := json.RawMessage(`{
		"id": "trip-1",
		"total_distance": 1414.13,
		"eld_logs": [
			{"date": "2025-03-22", "total_miles": 207.72, "img_base64": "aW1nZGF0YQ==", "pdf_base64": "cGRmZGF0YQ=="},
			{"date": "2025-03-23", "total_miles": 964.8, "img_base64": "bW9yZQ==", "pdf_base64": "ZXZlbg=="}
		]
	}`)

	if _, err := svc.Summarize(context.Background(), "trip-1", data); err != nil {
		t.Fatal(err)
	}

	var forwarded struct {
		ID      string `json:"id"`
		EldLogs []struct {
			Date       string  `json:"date"`
			TotalMiles float64 `json:"total_miles"`
			ImgBase64  string  `json:"img_base64"`
			PdfBase64  string  `json:"pdf_base64"`
		} `json:"eld_logs"`
	}
	if err := json.Unmarshal(backend.gotPayload, &forwarded); err != nil {
		t.Fatalf("forwarded payload not JSON: %v", err)
	}
	if forwarded.ID != "trip-1" {
		t.Errorf("id = %q", forwarded.ID)
	}
	for i, l := range forwarded.EldLogs {
		if l.ImgBase64 != "" || l.PdfBase64 != "" {
			t.Errorf("log %d still carries base64: %+v", i, l)
		}
		if l.Date == "" || l.TotalMiles == 0 {
			t.Errorf("log %d lost metadata: %+v", i, l)
		}
	}
}

func TestScrubPayload_NonObjectPassesThrough(t *testing.T) {
	for _, raw := range []string{`[1,2,3]`, `"text"`, `not json`} {
		got := ScrubPayload(json.RawMessage(raw))
		if string(got) != raw {
			t.Errorf("ScrubPayload(%q) = %q, want unchanged", raw, got)
		}
	}
}

func TestUpstream_ForwardsAndRelays(t *testing.T) {
	var gotPath, gotCT string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCT = r.Header.Get("Content-Type")
		gotBody, _ = json.Marshal(decodeJSON(t, r))
		_, _ = w.Write([]byte(`{"summary":"This trip covered 1414.13 miles."}`))
	}))
	defer srv.Close()

	u := NewUpstream(srv.URL + "/") // trailing slash must not double up
	out, err := u.Summarize(context.Background(), "trip-9", json.RawMessage(`{"id":"trip-9"}`))
	if err != nil {
		t.Fatal(err)
	}
	if gotPath != "/trip-9" {
		t.Errorf("path = %q", gotPath)
	}
	if gotCT != "application/json" {
		t.Errorf("content type = %q", gotCT)
	}
	if string(gotBody) != `{"id":"trip-9"}` {
		t.Errorf("forwarded body = %s", gotBody)
	}
	var result struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal(out, &result); err != nil || result.Summary == "" {
		t.Errorf("relayed body = %s (%v)", out, err)
	}
}

func TestUpstream_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"secret internals"}`, http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewUpstream(srv.URL).Summarize(context.Background(), "trip-9", json.RawMessage(`{}`))
	var ue *trip.UpstreamError
	if !errors.As(err, &ue) || ue.Status != http.StatusBadGateway {
		t.Fatalf("err = %v, want UpstreamError 502", err)
	}
	// The error must not carry the upstream body.
	if got := err.Error(); got != "upstream request failed with status 502" {
		t.Errorf("error text leaks detail: %q", got)
	}
}

func decodeJSON(t *testing.T, r *http.Request) any {
	t.Helper()
	var v any
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return v
}
