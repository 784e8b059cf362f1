package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"promptlens/internal/config"
)

// GeminiClient implements Generator against the Gemini REST API.
// Requests are self-paced to stay inside free-tier rate limits.
type GeminiClient struct {
	config *config.AIConfig
	client *http.Client

	mu          sync.Mutex
	lastRequest time.Time
}

// NewGeminiClient creates a Gemini-backed generator
func NewGeminiClient(cfg *config.AIConfig) *GeminiClient {
	return &GeminiClient{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// Generate sends the prompt to Gemini and returns the raw response text
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if !g.config.IsEnabled() {
		return "", &ServiceError{Op: "generate", Err: errors.New("api key not configured")}
	}

	if err := g.waitForInterval(ctx); err != nil {
		return "", &ServiceError{Op: "generate", Err: err}
	}

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
			"temperature":      g.config.Temperature,
			"topP":             g.config.TopP,
			"topK":             g.config.TopK,
			"maxOutputTokens":  g.config.MaxOutputTokens,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", &ServiceError{Op: "encode request", Err: err}
	}

	url := fmt.Sprintf("%s?key=%s", g.config.ModelEndpoint(), g.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", &ServiceError{Op: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", &ServiceError{Op: "call gemini", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ServiceError{Op: "read response", Err: err}
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", &ServiceError{Op: "call gemini", Err: errors.New("quota exceeded")}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &ServiceError{Op: "call gemini", Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", &ServiceError{Op: "decode response", Err: err}
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		return geminiResp.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", &ServiceError{Op: "decode response", Err: errors.New("empty response")}
}

// waitForInterval blocks until the minimum request spacing has elapsed,
// or the context is cancelled. The interval is re-checked after every
// sleep: concurrent callers wake up, see that another caller claimed
// the slot in the meantime, and queue up behind it for a full interval.
func (g *GeminiClient) waitForInterval(ctx context.Context) error {
	interval := time.Duration(g.config.MinIntervalMS) * time.Millisecond

	g.mu.Lock()
	for !g.lastRequest.IsZero() {
		wait := interval - time.Since(g.lastRequest)
		if wait <= 0 {
			break
		}
		g.mu.Unlock()
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
		g.mu.Lock()
	}
	g.lastRequest = time.Now()
	g.mu.Unlock()
	return nil
}
