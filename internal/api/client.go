package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/revulabs/revu/internal/collect"
)

// ReviewComment is one inline comment returned by the review service.
type ReviewComment struct {
	Path     string `json:"path"`
	Line     int    `json:"line,omitempty"`
	Severity string `json:"severity,omitempty"`
	Message  string `json:"message"`
}

// ReviewResult is the service response. Beyond summary and comments the body
// is treated as opaque and kept verbatim in Raw.
type ReviewResult struct {
	Summary  string          `json:"summary"`
	Comments []ReviewComment `json:"comments"`
	Raw      json.RawMessage `json:"-"`
}

// ParseResult decodes a stored service response, e.g. a cache hit.
func ParseResult(body []byte) (*ReviewResult, error) {
	var r ReviewResult
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("parsing cached response: %w", err)
	}
	r.Raw = json.RawMessage(body)
	return &r, nil
}

// Client submits review payloads to the review service.
type Client struct {
	endpoint string
	apiKey   string
	httpCli  *http.Client
}

// NewClient creates a Client. The API key is required; endpoint falls back to
// nothing here — callers pass the configured value.
func NewClient(endpoint, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, &authError{message: "no API key configured; run `revu config set apiKey <key>` or set REVU_API_KEY"}
	}
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpCli:  &http.Client{Timeout: 120 * time.Second},
	}, nil
}

// Submit posts the payload and decodes the result. Rate limiting is retried
// with backoff; auth failures are surfaced as typed errors so the CLI can
// exit with the auth code.
func (c *Client) Submit(ctx context.Context, payload *collect.ReviewPayload) (*ReviewResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling payload: %w", err)
	}

	var result *ReviewResult
	err = retryWithBackoff(ctx, 3, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.httpCli.Do(req)
		if err != nil {
			return fmt.Errorf("sending request: %w", err)
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading response: %w", err)
		}

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			return &rateLimitError{}
		case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
			return &authError{message: string(respBody)}
		case resp.StatusCode != http.StatusOK:
			return fmt.Errorf("review API error (status %d): %s", resp.StatusCode, string(respBody))
		}

		var r ReviewResult
		if err := json.Unmarshal(respBody, &r); err != nil {
			return fmt.Errorf("parsing response: %w", err)
		}
		r.Raw = json.RawMessage(respBody)
		result = &r
		return nil
	})
	return result, err
}
