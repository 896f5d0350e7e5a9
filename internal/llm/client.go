// Package llm talks to chat-completion style model endpoints. Response
// envelopes differ across vendors, so replies are normalized through an
// ordered extractor list before any JSON payload is pulled out.
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
	defaultTemperature = 0.7
	defaultMaxTokens   = 4000
	testTimeout        = 10 * time.Second
)

// fullSupportProviders accept the optional sampling parameters
// (top_p, presence/frequency penalties) in addition to the basics.
var fullSupportProviders = map[string]bool{
	"openai":   true,
	"moonshot": true,
	"azure":    true,
	"anyscale": true,
	"deepseek": true,
	"zhipu":    true,
	"baichuan": true,
	"minimax":  true,
	"spark":    true,
	"qwen":     true,
}

// Config carries the credentials and generation parameters for one
// provider endpoint
type Config struct {
	Provider         string
	BaseURL          string
	APIKey           string
	Model            string
	Temperature      *float64
	MaxTokens        *int
	TopP             *float64
	PresencePenalty  *float64
	FrequencyPenalty *float64
	Rules            string // extra system-prompt rules supplied by the user
}

// Client is a chat-completion HTTP client for a single configured provider
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a client for the given provider configuration
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// Rules returns the user-supplied system-prompt additions
func (c *Client) Rules() string {
	return c.cfg.Rules
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// Chat sends a system+user message pair and returns the model's reply
// text, normalized across vendor response shapes.
func (c *Client) Chat(ctx context.Context, system, user string, maxTokens int) (string, error) {
	if c.cfg.APIKey == "" {
		return "", fmt.Errorf("no API key configured for provider %s", c.cfg.Provider)
	}

	body := map[string]any{
		"model": c.cfg.Model,
		"messages": []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	temperature := defaultTemperature
	if c.cfg.Temperature != nil {
		temperature = *c.cfg.Temperature
	}
	body["temperature"] = temperature
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	if c.cfg.MaxTokens != nil {
		maxTokens = *c.cfg.MaxTokens
	}
	body["max_tokens"] = maxTokens

	if fullSupportProviders[c.cfg.Provider] {
		if c.cfg.TopP != nil {
			body["top_p"] = *c.cfg.TopP
		}
		if c.cfg.PresencePenalty != nil {
			body["presence_penalty"] = *c.cfg.PresencePenalty
		}
		if c.cfg.FrequencyPenalty != nil {
			body["frequency_penalty"] = *c.cfg.FrequencyPenalty
		}
	}

	respBody, status, err := c.post(ctx, "/chat/completions", body)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		var ae apiError
		if json.Unmarshal(respBody, &ae) == nil && ae.Error.Message != "" {
			return "", fmt.Errorf("model API error (%d): %s", status, ae.Error.Message)
		}
		return "", fmt.Errorf("model API error (%d)", status)
	}

	text, ok := NormalizeResponse(respBody)
	if !ok {
		return "", fmt.Errorf("unrecognized response envelope from provider %s", c.cfg.Provider)
	}
	return text, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, int, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, resp.StatusCode, nil
}

// TestConnection probes the provider: first /models, then a minimal
// one-token chat call when the model listing is unavailable.
func (c *Client) TestConnection(ctx context.Context) (bool, string) {
	ctx, cancel := context.WithTimeout(ctx, testTimeout)
	defer cancel()

	if ok, msg, done := c.probeModels(ctx); done {
		return ok, msg
	}

	body := map[string]any{
		"model":      c.cfg.Model,
		"messages":   []chatMessage{{Role: "user", Content: "test"}},
		"max_tokens": 1,
	}
	respBody, status, err := c.post(ctx, "/chat/completions", body)
	_ = respBody
	switch {
	case err != nil:
		if ctx.Err() == context.DeadlineExceeded {
			return false, "connection timed out, check network or base URL"
		}
		return false, fmt.Sprintf("connection failed: %v", err)
	case status == http.StatusOK:
		return true, fmt.Sprintf("connected, model %s is available", c.cfg.Model)
	case status == http.StatusUnauthorized:
		return false, "invalid API key"
	case status == http.StatusNotFound:
		return false, fmt.Sprintf("model %s does not exist or is unavailable", c.cfg.Model)
	default:
		return false, fmt.Sprintf("HTTP %d from provider", status)
	}
}

// probeModels returns done=false when the /models listing could not be
// fetched and the caller should fall through to the chat probe.
func (c *Client) probeModels(ctx context.Context) (ok bool, msg string, done bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/models", nil)
	if err != nil {
		return false, "", false
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, "", false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false, "", false
	}

	var listing struct {
		Data []struct {
			ID    string `json:"id"`
			Model string `json:"model"`
		} `json:"data"`
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, "", false
	}
	if err := json.Unmarshal(body, &listing); err != nil || listing.Data == nil {
		return true, "connected", true
	}
	for _, m := range listing.Data {
		if m.ID == c.cfg.Model || m.Model == c.cfg.Model {
			return true, fmt.Sprintf("connected, model %s is available", c.cfg.Model), true
		}
	}
	return false, fmt.Sprintf("connected, but model %s is unavailable", c.cfg.Model), true
}
