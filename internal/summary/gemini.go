package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider generates summaries locally instead of forwarding to an
// upstream. Used when no SUMMARY_UPSTREAM_BASE is configured.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Flash keeps latency and cost down; summaries are short prose.
	model := client.GenerativeModel("gemini-2.0-flash")
	model.SetTemperature(0.4)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

const summaryPromptHeader = `Summarize the key events of the following trip. Include the total distance,
total duration, the pickup location and time, the dropoff location and time, and any significant
stops like rest breaks or fuel stops. Mention the daily mileage from the ELD logs when present.
Format all dates to be readable, like "March 23, 2025, 19:27:38 UTC". The data is in JSON format:

`

// Summarize prompts the model with the scrubbed trip payload and wraps the
// generated prose in the {"summary": ...} shape the page expects.
func (p *GeminiProvider) Summarize(ctx context.Context, tripID string, payload json.RawMessage) (json.RawMessage, error) {
	prompt := fmt.Sprintf("%sTrip %s:\n%s", summaryPromptHeader, tripID, payload)

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}

	return json.Marshal(map[string]string{"summary": strings.TrimSpace(text.String())})
}
