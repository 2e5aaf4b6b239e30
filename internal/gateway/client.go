package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	pkgLog "discord-calendar-bot/pkg/log"
)

// excerptLimit bounds how much of an upstream error body is carried into
// the outcome (and eventually into a user-visible reply).
const excerptLimit = 200

// Client is the HTTP client for the scheduling gateway. It issues a single
// request shape — POST {"mode": ..., ...payload} with the API key as a query
// parameter — and classifies the result. It performs no retries; retry
// policy, if any, belongs to the caller.
//
// Client holds no per-call mutable state and is safe for concurrent use.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	l          pkgLog.Logger
}

// NewClient creates a gateway client for the given endpoint and static key.
func NewClient(l pkgLog.Logger, endpoint, apiKey string) *Client {
	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{},
		l:          l,
	}
}

// SetEndpoint overrides the endpoint URL for testing purposes.
func (c *Client) SetEndpoint(endpoint string) {
	c.endpoint = endpoint
}

// Call sends one request with the given mode and payload fields, waiting at
// most timeout, and decodes a successful JSON body into out (which may be
// nil to discard the body). The returned Outcome is the only error channel:
// Call never panics and never returns a Go error.
func (c *Client) Call(ctx context.Context, mode string, payload map[string]any, timeout time.Duration, out any) Outcome {
	body := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		body[k] = v
	}
	body["mode"] = mode

	raw, err := json.Marshal(body)
	if err != nil {
		return transportOutcome(fmt.Sprintf("failed to marshal request: %v", err))
	}

	callURL := fmt.Sprintf("%s?key=%s", c.endpoint, url.QueryEscape(c.apiKey))

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, callURL, bytes.NewBuffer(raw))
	if err != nil {
		return transportOutcome(fmt.Sprintf("failed to build request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	c.l.Infof(ctx, "gateway: calling mode=%s request_id=%s timeout=%s", mode, requestID, timeout)
	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.l.Warnf(ctx, "gateway: mode=%s request_id=%s timed out after %s", mode, requestID, timeout)
			return timeoutOutcome()
		}
		c.l.Errorf(ctx, "gateway: mode=%s request_id=%s transport failure: %v", mode, requestID, err)
		return transportOutcome(truncate(err.Error(), excerptLimit))
	}
	defer resp.Body.Close()

	c.l.Infof(ctx, "gateway: mode=%s request_id=%s status=%d elapsed=%s",
		mode, requestID, resp.StatusCode, time.Since(started).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, excerptLimit+1))
		return upstreamOutcome(resp.StatusCode, truncate(string(raw), excerptLimit))
	}

	if out == nil {
		return successOutcome()
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		// The deadline can also fire mid-body.
		if errors.Is(err, context.DeadlineExceeded) {
			return timeoutOutcome()
		}
		c.l.Errorf(ctx, "gateway: mode=%s request_id=%s malformed response body: %v", mode, requestID, err)
		return transportOutcome(fmt.Sprintf("malformed response body: %v", truncate(err.Error(), excerptLimit)))
	}

	return successOutcome()
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
