// Package http provides an HTTP client for the remote analysis service.
// It implements callscore.Analyzer, callscore.SampleService and
// callscore.HealthChecker.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/callscore"
	"github.com/google/uuid"
)

// DefaultEndpoint is where the analysis service listens by default.
const DefaultEndpoint = "http://localhost:8001"

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// Ensure Client implements the service interfaces at compile time.
var (
	_ callscore.Analyzer      = (*Client)(nil)
	_ callscore.SampleService = (*Client)(nil)
	_ callscore.HealthChecker = (*Client)(nil)
)

// Client talks to the analysis service. Each call is a single attempt;
// nothing is retried.
type Client struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
	checker  callscore.ShapeChecker
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds each request. The default is no timeout beyond the
// transport's own.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithShapeChecker attaches shape problems found in analysis responses to
// AnalysisResult.Problems.
func WithShapeChecker(checker callscore.ShapeChecker) Option {
	return func(c *Client) {
		c.checker = checker
	}
}

// NewClient creates a new Client for the service at endpoint.
// An empty endpoint selects DefaultEndpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	endpoint = strings.TrimRight(endpoint, "/")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{endpoint: endpoint}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

// Endpoint returns the service base URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Analyze posts the text to /api/analyze and parses the response.
func (c *Client) Analyze(ctx context.Context, text string) (*callscore.AnalysisResult, error) {
	body, err := json.Marshal(callscore.AnalysisRequest{Text: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/api/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	data, err := c.do(req)
	if err != nil {
		return nil, err
	}

	result, err := callscore.ParseAnalysisResult(data)
	if err != nil {
		return nil, err
	}
	result.RequestID = requestID
	if c.checker != nil {
		result.Problems = c.checker.Check(data)
	}
	return result, nil
}

// Health fetches /api/health.
func (c *Client) Health(ctx context.Context) (*callscore.Health, error) {
	var health callscore.Health
	if err := c.getJSON(ctx, "/api/health", &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// Samples fetches /api/samples.
func (c *Client) Samples(ctx context.Context) ([]*callscore.SampleSummary, error) {
	var out struct {
		Count   int                        `json:"count"`
		Samples []*callscore.SampleSummary `json:"samples"`
	}
	if err := c.getJSON(ctx, "/api/samples", &out); err != nil {
		return nil, err
	}
	return out.Samples, nil
}

// Sample fetches /api/sample/{key}.
func (c *Client) Sample(ctx context.Context, key string) (*callscore.AnalysisResult, error) {
	if key == "" {
		return nil, callscore.Errorf(callscore.EINVALID, "sample key required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/api/sample/"+url.PathEscape(key), nil)
	if err != nil {
		return nil, err
	}

	data, err := c.do(req)
	var serr *callscore.ServerError
	if errors.As(err, &serr) && serr.Status == http.StatusNotFound {
		return nil, callscore.Errorf(callscore.ENOTFOUND, "sample %q not found", key)
	} else if err != nil {
		return nil, err
	}
	return callscore.ParseAnalysisResult(data)
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+path, nil)
	if err != nil {
		return err
	}

	data, err := c.do(req)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return &callscore.Error{Code: callscore.EMALFORMED, Message: "malformed response from " + path, Err: err}
	}
	return nil
}

// do sends the request and returns the body of a 2xx response.
// Non-2xx responses become *callscore.ServerError carrying the body text.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, callscore.Wrap(callscore.ETRANSPORT, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, callscore.Wrap(callscore.ETRANSPORT, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &callscore.ServerError{Status: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
