package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Default endpoint of the Gemini generateContent API.
const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Client calls the hosted text-generation API. It only moves structured
// payloads in and generated text out; the prompt templates live in
// prompt.go.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a generator client. Model defaults to
// gemini-2.5-flash when empty.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// SetBaseURL overrides the API endpoint, used by tests.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

// generateContent request/response shapes (only the fields we use).

type contentPart struct {
	Text string `json:"text"`
}

type content struct {
	Parts []contentPart `json:"parts"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateQuote produces the quotation email text for a quote payload.
func (c *Client) GenerateQuote(ctx context.Context, payload *QuotePayload) (string, error) {
	text, err := c.generate(ctx, quotePrompt(payload), false)
	if err != nil {
		return "", fmt.Errorf("generate quote: %w", err)
	}
	return text, nil
}

// GenerateReport produces the service report email and the SMS
// notification for a completed repair.
func (c *Client) GenerateReport(ctx context.Context, payload *ReportPayload) (*ReportText, error) {
	text, err := c.generate(ctx, reportPrompt(payload), true)
	if err != nil {
		return nil, fmt.Errorf("generate report: %w", err)
	}

	var report ReportText
	if err := json.Unmarshal([]byte(text), &report); err != nil {
		return nil, fmt.Errorf("decode report response: %w", err)
	}
	if report.Email == "" {
		return nil, fmt.Errorf("report response missing email body")
	}
	return &report, nil
}

// generate performs one generateContent call and returns the first
// candidate text. jsonMode asks the model for a strict JSON response.
func (c *Client) generate(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []contentPart{{Text: prompt}}}},
	}
	if jsonMode {
		reqBody.GenerationConfig = &generationConfig{ResponseMIMEType: "application/json"}
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request generator: %w", err)
	}
	defer resp.Body.Close()

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("generator error[%d]: %s", result.Error.Code, result.Error.Message)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generator returned no candidates")
	}

	text := result.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("generator returned empty text")
	}
	return text, nil
}
