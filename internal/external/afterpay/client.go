package afterpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client posts JSON requests to the provider API. TLS verification stays on;
// the default transport is used on purpose. The default redirect policy
// (stop after 10) matches the provider's documented limit.
type Client struct {
	HTTP *http.Client
}

func New(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{HTTP: httpClient}
}

// Post sends the body and decodes whatever comes back. The provider answers
// rejections with 4xx statuses carrying JSON bodies the caller interprets,
// so a non-2xx status is not an error here; only transport and decode
// failures are.
func (c *Client) Post(ctx context.Context, url string, headers map[string]string, body any) (any, error) {
	j, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(j))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode response (%s): %w", resp.Status, err)
	}
	return decoded, nil
}
