package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/freelancenexus/nexus-go/src/config"
)

// GeminiClient produces a JSON document for a prompt. Implementations
// must enforce their own timeout.
type GeminiClient interface {
	GenerateJSON(ctx context.Context, prompt string) (json.RawMessage, error)
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig geminiConfig    `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type HTTPGeminiClient struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewGeminiClient() *HTTPGeminiClient {
	return &HTTPGeminiClient{
		APIKey:  config.GeminiAPIKey,
		BaseURL: config.GeminiBaseURL,
		HTTPClient: &http.Client{
			Timeout: time.Duration(config.GeminiTimeoutSeconds) * time.Second,
		},
	}
}

// GenerateJSON asks the model for a pure-JSON answer and returns the
// first candidate's text as raw JSON.
func (c *HTTPGeminiClient) GenerateJSON(ctx context.Context, prompt string) (json.RawMessage, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: prompt}},
			},
		},
		GenerationConfig: geminiConfig{
			Temperature:     0.2,
			MaxOutputTokens: 2048,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"?key="+c.APIKey, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("gemini returned %d: %s", resp.StatusCode, string(body))
	}

	var gr geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, err
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	text := stripCodeFence(gr.Candidates[0].Content.Parts[0].Text)
	if !json.Valid([]byte(text)) {
		return nil, fmt.Errorf("gemini response is not valid JSON")
	}
	return json.RawMessage(text), nil
}

// stripCodeFence unwraps ```json ... ``` blocks the model likes to emit.
func stripCodeFence(s string) string {
	trimmed := bytes.TrimSpace([]byte(s))
	if !bytes.HasPrefix(trimmed, []byte("```")) {
		return string(trimmed)
	}
	if idx := bytes.IndexByte(trimmed, '\n'); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	trimmed = bytes.TrimSuffix(bytes.TrimSpace(trimmed), []byte("```"))
	return string(bytes.TrimSpace(trimmed))
}
