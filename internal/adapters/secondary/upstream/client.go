// Package upstream provides the JSON-over-HTTP client shared by the
// collection provider adapters.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"artwork-search-service/internal/core/domain"
)

// secretParams are stripped from logged URLs.
var secretParams = []string{"api_key", "apikey"}

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client issues GET requests against one provider and decodes JSON bodies.
type Client struct {
	name       string
	baseURL    string
	httpClient HTTPDoer
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// NewClient creates a client for one provider. Every call is bounded by timeout.
func NewClient(name, baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name identifies the provider in logs and errors.
func (c *Client) Name() string {
	return c.name
}

// GetJSON issues a GET to baseURL+path with params and decodes the body into target.
func (c *Client) GetJSON(ctx context.Context, path string, params url.Values, target any) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: create %s request: %v", domain.ErrUpstreamRequest, c.name, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) {
			uerr.URL = c.baseURL + redact(path, params)
		}
		return fmt.Errorf("%w: %s: %w", domain.ErrUpstreamRequest, c.name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	log.WithFields(log.Fields{
		"source":     c.name,
		"url":        redact(path, params),
		"status":     resp.StatusCode,
		"latency_ms": time.Since(start).Milliseconds(),
	}).Debug("upstream request completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s: status %d: %s",
			domain.ErrUpstreamStatus, c.name, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: %s: decode: %v", domain.ErrUpstreamResponse, c.name, err)
	}
	return nil
}

func redact(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	safe := url.Values{}
	for k, v := range params {
		safe[k] = v
	}
	for _, k := range secretParams {
		if safe.Has(k) {
			safe.Set(k, "REDACTED")
		}
	}
	return path + "?" + safe.Encode()
}
