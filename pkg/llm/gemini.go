package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	defaultGeminiModel   = "gemini-2.5-flash"

	// Each individual attempt gets its own bound; exceeding it is a
	// transport failure and eligible for retry.
	attemptTimeout = 30 * time.Second
)

// GeminiClient talks to the generateContent REST endpoint directly.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

type GeminiOption func(*GeminiClient)

// WithGeminiBaseURL points the client at a different host, used by tests.
func WithGeminiBaseURL(baseURL string) GeminiOption {
	return func(c *GeminiClient) { c.baseURL = baseURL }
}

func WithGeminiModel(model string) GeminiOption {
	return func(c *GeminiClient) { c.model = model }
}

func NewGeminiClient(apiKey string, opts ...GeminiOption) *GeminiClient {
	c := &GeminiClient{
		apiKey:     apiKey,
		model:      defaultGeminiModel,
		baseURL:    defaultGeminiBaseURL,
		httpClient: &http.Client{Timeout: attemptTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *GeminiClient) Name() string {
	return c.model
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Analyze performs one generateContent call and classifies the outcome.
func (c *GeminiClient) Analyze(ctx context.Context, prompt string) (string, error) {
	payload := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("gemini marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &APIError{Kind: KindTransport, Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", &APIError{
			Kind:   KindUpstreamRateLimited,
			Status: resp.StatusCode,
			Detail: readBodySnippet(resp.Body),
		}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &APIError{
			Kind:   KindUpstreamHTTP,
			Status: resp.StatusCode,
			Detail: readBodySnippet(resp.Body),
		}
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &APIError{Kind: KindResponseParse, Detail: err.Error()}
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", &APIError{Kind: KindResponseParse, Detail: "response missing candidates content"}
	}

	text := parsed.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", &APIError{Kind: KindResponseParse, Detail: "response candidate has empty text"}
	}
	return text, nil
}

func readBodySnippet(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, 2048))
	if err != nil {
		return ""
	}
	return string(b)
}
