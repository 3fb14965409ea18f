// Package upstream provides the HTTP client for the RFP analysis backend.
// The backend supplies role requirements derived from RFP analysis; this
// package fetches them and converts them into optimizer inputs.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jonathan/staffing-optimizer/internal/types"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// recommendationsPath is the backend endpoint serving recruitment recommendations.
const recommendationsPath = "/api/recruitment/recommendations"

// healthPath is the backend liveness endpoint.
const healthPath = "/api/health"

// Error represents an error talking to the analysis backend.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("backend error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("backend error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the backend client.
type Options struct {
	Timeout time.Duration
	Headers map[string]string
}

// DefaultOptions returns sensible defaults for the client.
func DefaultOptions() *Options {
	return &Options{
		Timeout: DefaultTimeout,
	}
}

// Client talks to the RFP analysis backend.
type Client struct {
	baseURL string
	http    *http.Client
	headers map[string]string
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, opts *Options) (*Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{
			URL:     baseURL,
			Message: "invalid base URL",
			Cause:   err,
		}
	}

	return &Client{
		baseURL: parsed.Scheme + "://" + parsed.Host,
		http:    &http.Client{Timeout: opts.Timeout},
		headers: opts.Headers,
	}, nil
}

// FetchRecommendations retrieves the recruitment recommendations for an
// analysis. An empty analysisID fetches the latest analysis.
func (c *Client) FetchRecommendations(ctx context.Context, analysisID string) (*types.RecommendationsResponse, error) {
	endpoint := c.baseURL + recommendationsPath
	if analysisID != "" {
		endpoint += "?analysis_id=" + url.QueryEscape(analysisID)
	}

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var response types.RecommendationsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, &Error{
			URL:     endpoint,
			Message: "failed to decode recommendations response",
			Cause:   err,
		}
	}

	return &response, nil
}

// Healthy reports whether the backend answers its health endpoint.
func (c *Client) Healthy(ctx context.Context) bool {
	_, err := c.get(ctx, c.baseURL+healthPath)
	return err == nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &Error{
			URL:     endpoint,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	req.Header.Set("Accept", "application/json")
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{
			URL:     endpoint,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			URL:     endpoint,
			Message: "failed to read response body",
			Cause:   err,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{
			URL:     endpoint,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	return body, nil
}
