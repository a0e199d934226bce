package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// SentimentClient classifies review text through the sentiment model's
// /predict endpoint. The model answers {"text": ..., "label": ...}.
type SentimentClient struct {
	client *Client
	url    string
}

func NewSentimentClient(client *Client, url string) *SentimentClient {
	return &SentimentClient{client: client, url: url}
}

func (s *SentimentClient) Classify(ctx context.Context, text string) (string, error) {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return "", fmt.Errorf("marshal sentiment payload: %w", err)
	}

	raw, status, err := s.client.Relay(ctx, s.url, payload)
	if err != nil {
		return "", fmt.Errorf("classify review: %w", err)
	}
	if status >= 400 {
		return "", fmt.Errorf("sentiment service returned status %d", status)
	}

	var out struct {
		Label string `json:"label"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode sentiment response: %w", err)
	}
	if out.Label == "" {
		return "", fmt.Errorf("sentiment service returned no label")
	}

	return strings.ToLower(out.Label), nil
}
