// Package ollama provides a client for the inference server's generate API.
package ollama

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

// Client talks to an Ollama-style inference server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new inference client. The timeout should be generous;
// large-model inference can take minutes.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GenerateRequest is the request body for /api/generate.
type GenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
	System string `json:"system,omitempty"`
}

// GenerateResponse is the response body from /api/generate.
type GenerateResponse struct {
	Response string `json:"response"`
}

// Outcome is the result of a generate call. Upstream failures do not
// surface as Go errors: they produce a degraded Outcome whose Text carries
// a human-readable description, so the chat pipeline always completes.
type Outcome struct {
	Text     string
	Degraded bool
	Reason   string
}

func degraded(reason string) Outcome {
	return Outcome{
		Text:     fmt.Sprintf("[model error: %s]", reason),
		Degraded: true,
		Reason:   reason,
	}
}

// Generate sends a single non-streaming generation request. The context is
// plumbed into the outbound call, so a cancelled caller cancels the
// upstream request.
func (c *Client) Generate(ctx context.Context, model, prompt, system string) Outcome {
	body, err := json.Marshal(GenerateRequest{
		Model:  model,
		Prompt: prompt,
		Stream: false,
		System: system,
	})
	if err != nil {
		return degraded(fmt.Sprintf("failed to marshal request: %v", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return degraded(fmt.Sprintf("failed to create request: %v", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return degraded(fmt.Sprintf("inference server unreachable: %v", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return degraded(fmt.Sprintf("failed to read response: %v", err))
	}

	if resp.StatusCode != http.StatusOK {
		return degraded(fmt.Sprintf("inference server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody))))
	}

	var result GenerateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return degraded(fmt.Sprintf("malformed response: %v", err))
	}

	return Outcome{Text: result.Response}
}

// StripEcho removes the first case-insensitive verbatim occurrence of the
// user prompt from the model output and trims surrounding whitespace. Models
// occasionally repeat the prompt before answering; this is a cheap heuristic
// and does not catch partially reformatted echoes.
func StripEcho(prompt, text string) string {
	if prompt == "" {
		return strings.TrimSpace(text)
	}
	idx := strings.Index(strings.ToLower(text), strings.ToLower(prompt))
	if idx < 0 {
		return text
	}
	return strings.TrimSpace(text[:idx] + text[idx+len(prompt):])
}
