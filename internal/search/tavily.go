package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type TavilyConfig struct {
	APIKey  string
	BaseURL string
}

type TavilyProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewTavilyProvider(cfg TavilyConfig) (*TavilyProvider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("TAVILY_API_KEY not set")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.tavily.com"
	}
	return &TavilyProvider{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 35 * time.Second},
	}, nil
}

func (p *TavilyProvider) Search(ctx context.Context, query string, opts Options) ([]Result, error) {
	payload := map[string]any{
		"query": query,
	}
	if opts.MaxResults > 0 {
		payload["max_results"] = opts.MaxResults
	}
	if opts.Topic != "" {
		payload["topic"] = opts.Topic
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("search request failed: %s", resp.Status)
	}

	var parsed struct {
		Results []Result `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	return parsed.Results, nil
}
