// README: ELD log sheet preview models and PDF download helpers.
package eldlog

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"eldrouter/internal/trip"
)

// ErrNoPDF means a log carries no PDF payload; the preview shows a
// placeholder and download stays disabled.
var ErrNoPDF = errors.New("no pdf data for this log")

// Preview is one daily log sheet as the page displays it.
type Preview struct {
	Day          int     `json:"day"`
	Date         string  `json:"date"`
	TotalMiles   float64 `json:"total_miles"`
	ImgBase64    string  `json:"img_base64"`
	Downloadable bool    `json:"downloadable"`
}

// BuildPreviews converts logs into display entries, day indexes starting at 1.
func BuildPreviews(logs []trip.EldLog) []Preview {
	out := make([]Preview, 0, len(logs))
	for i, l := range logs {
		out = append(out, Preview{
			Day:          i + 1,
			Date:         l.Date,
			TotalMiles:   l.TotalMiles,
			ImgBase64:    l.ImgBase64,
			Downloadable: l.PdfBase64 != "",
		})
	}
	return out
}

// Filename names the downloaded PDF after the log date, falling back to the
// day index when the date is missing.
func Filename(date string, day int) string {
	if date == "" {
		return fmt.Sprintf("ELD_Log_Day_%d.pdf", day)
	}
	// Dates come from the trip service; strip anything path-hostile anyway.
	date = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '"':
			return '-'
		}
		return r
	}, date)
	return fmt.Sprintf("ELD_Log_%s.pdf", date)
}

// DecodePDF turns the base64 payload into PDF bytes for the download endpoint.
func DecodePDF(b64 string) ([]byte, error) {
	if b64 == "" {
		return nil, ErrNoPDF
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("decode pdf: %w", err)
	}
	return data, nil
}

// Scrub returns a copy of logs with both base64 payloads emptied. Used to
// shrink the summary payload before it leaves the process.
func Scrub(logs []trip.EldLog) []trip.EldLog {
	out := make([]trip.EldLog, len(logs))
	for i, l := range logs {
		l.ImgBase64 = ""
		l.PdfBase64 = ""
		out[i] = l
	}
	return out
}
