package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL   = "https://api.anthropic.com"
	anthropicVersion = "2023-06-01"

	systemPrompt = "You are a FASTQ analysis report agent. Your role is to: " +
		"1. Analyze FASTQ quality metrics and generate insights " +
		"2. Identify quality issues and provide specific recommendations " +
		"3. Create clear, actionable summaries for bioinformatics users " +
		"4. Suggest appropriate preprocessing steps based on data quality. " +
		"Focus on practical, actionable advice that helps users improve " +
		"their downstream analysis results."
)

// Anthropic generates narratives through the Anthropic Messages API.
type Anthropic struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64

	// BaseURL overrides the API endpoint, for tests.
	BaseURL string
	// HTTPClient defaults to a client with a 60s timeout.
	HTTPClient *http.Client
}

type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	System      string    `json:"system"`
	Messages    []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate asks the model for a JSON narrative. Network errors, API errors,
// and deadline expiry all surface as errors for the caller to degrade on.
func (a *Anthropic) Generate(ctx context.Context, in Input) (Narrative, error) {
	text, err := a.query(ctx, buildPrompt(in))
	if err != nil {
		return Narrative{}, err
	}
	return parseNarrative(text), nil
}

func buildPrompt(in Input) string {
	m := in.Metrics
	return fmt.Sprintf(`Analyze FASTQ data (be concise):

File: %s
Reads: %d | Quality: %.1f
GC: %.1f%% | Length: %.0fbp
Assessment: %s

Provide JSON with:
- "summary": 1-2 sentences on data quality
- "insights": array of 2-3 key observations
- "suitability": brief downstream analysis assessment

JSON only, no markdown:`,
		in.FileName, m.TotalReads, m.AverageQuality, m.GCContent, m.AverageReadLength, in.Tier)
}

func (a *Anthropic) query(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(messagesRequest{
		Model:       a.Model,
		MaxTokens:   a.MaxTokens,
		Temperature: a.Temperature,
		System:      systemPrompt,
		Messages:    []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	baseURL := a.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", a.APIKey)
	req.Header.Set("Anthropic-Version", anthropicVersion)

	client := a.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling messages API: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var parsed messagesResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("messages API: %s: %s", parsed.Error.Type, parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("messages API: unexpected status %d", resp.StatusCode)
	}
	for _, block := range parsed.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("messages API: no text content in response")
}

// parseNarrative interprets the model output. Models sometimes wrap JSON in
// markdown fences despite instructions; strip those before decoding. If the
// payload still is not the expected JSON contract, the raw text becomes the
// summary.
func parseNarrative(text string) Narrative {
	cleaned := stripFences(text)

	var n Narrative
	if err := json.Unmarshal([]byte(cleaned), &n); err != nil || n.Summary == "" {
		return Narrative{
			Summary:     cleaned,
			Suitability: "Analysis available in summary",
		}
	}
	return n
}

func stripFences(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
