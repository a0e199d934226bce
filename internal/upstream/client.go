// Package upstream holds the HTTP clients for the external services this app
// proxies: the chatbot webhook, the sentiment model, and the product
// recommendation model. All three speak plain JSON over POST.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type Client struct {
	hc  *http.Client
	log *zap.Logger
}

// NewClient builds a client with a bounded timeout so a hung upstream aborts
// instead of pinning the request forever.
func NewClient(timeout time.Duration, log *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		hc:  &http.Client{Timeout: timeout},
		log: log.With(zap.String("client", "upstream")),
	}
}

// Relay posts body verbatim to url and returns the raw response body together
// with the upstream status code. A nil RawMessage with a nil error means the
// upstream answered with an empty body.
func (c *Client) Relay(ctx context.Context, url string, body []byte) (json.RawMessage, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("call upstream %s: %w", url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read upstream response: %w", err)
	}

	if len(data) == 0 {
		return nil, resp.StatusCode, nil
	}

	if !json.Valid(data) {
		c.log.Warn("Upstream returned non-JSON body",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
		)
		return nil, 0, fmt.Errorf("upstream %s returned non-JSON body", url)
	}

	return data, resp.StatusCode, nil
}
