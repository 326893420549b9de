// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// cloudProvider implements the Provider interface using the Anthropic
// Messages API (POST /v1/messages).
type cloudProvider struct {
	config ProviderConfig
	client *http.Client
}

// NewCloud creates the secondary-tier provider for the hosted endpoint.
func NewCloud(cfg ProviderConfig) Provider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.anthropic.com"
	}
	if cfg.Model == "" {
		cfg.Model = "claude-sonnet-4-5"
	}
	return &cloudProvider{
		config: cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (p *cloudProvider) Name() string { return "cloud" }

// Generate sends a message to the Messages API and returns the text of
// the first content block.
func (p *cloudProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	body := messagesRequest{
		Model:     p.config.Model,
		MaxTokens: maxTokens,
		System:    systemPrompt,
		Messages: []messagesMessage{
			{Role: "user", Content: userPrompt},
		},
		Temperature: temperature,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("cloud marshal: %w", err)
	}

	url := p.config.BaseURL + "/v1/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("cloud request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.config.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("cloud http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("cloud read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cloud API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result messagesResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("cloud unmarshal: %w", err)
	}

	for _, block := range result.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}

	return "", fmt.Errorf("cloud: no text content in response")
}

// --- Messages API types ---

type messagesMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model       string            `json:"model"`
	MaxTokens   int               `json:"max_tokens"`
	System      string            `json:"system,omitempty"`
	Messages    []messagesMessage `json:"messages"`
	Temperature float64           `json:"temperature,omitempty"`
}

type messagesResponse struct {
	Content []messagesContentBlock `json:"content"`
}

type messagesContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
