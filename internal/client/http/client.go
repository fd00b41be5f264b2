package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RequestOption represents a function that can modify an HTTP request
type RequestOption func(*http.Request)

// ClientOption represents a function that can modify the HTTP client
type ClientOption func(*HTTPClient)

// HTTPError represents an error returned from an HTTP request
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
	Method     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d %s: %s", e.Method, e.URL, e.StatusCode, e.Status, e.Body)
}

// HTTPClient is a small HTTP client with a base URL, default headers and
// bounded exponential-backoff retries on transient status codes.
type HTTPClient struct {
	httpClient     *http.Client
	baseURL        string
	defaultHeaders map[string]string
	retryConfig    *RetryConfig
}

// RetryConfig configures the retry behavior
type RetryConfig struct {
	MaxRetries           int
	InitialInterval      time.Duration
	MaxInterval          time.Duration
	Multiplier           float64
	MaxElapsedTime       time.Duration
	RetryableStatusCodes []int
}

// DefaultRetryConfig provides sensible defaults for retries
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:           3,
		InitialInterval:      100 * time.Millisecond,
		MaxInterval:          5 * time.Second,
		Multiplier:           2.0,
		MaxElapsedTime:       15 * time.Second,
		RetryableStatusCodes: []int{408, 429, 500, 502, 503, 504},
	}
}

// NewHTTPClient creates a new HTTPClient with the given options
func NewHTTPClient(options ...ClientOption) *HTTPClient {
	client := &HTTPClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		defaultHeaders: map[string]string{
			"Accept": "application/json",
		},
		retryConfig: DefaultRetryConfig(),
	}
	for _, option := range options {
		option(client)
	}
	return client
}

// WithBaseURL sets the base URL for all requests
func WithBaseURL(baseURL string) ClientOption {
	return func(c *HTTPClient) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the timeout for all requests
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetryConfig sets the retry configuration; nil disables retries
func WithRetryConfig(config *RetryConfig) ClientOption {
	return func(c *HTTPClient) {
		c.retryConfig = config
	}
}

// WithQueryParam adds a query parameter to the request
func WithQueryParam(key, value string) RequestOption {
	return func(req *http.Request) {
		q := req.URL.Query()
		q.Add(key, value)
		req.URL.RawQuery = q.Encode()
	}
}

// Get performs an HTTP GET request against the configured base URL.
func (c *HTTPClient) Get(ctx context.Context, path string, options ...RequestOption) (*http.Response, error) {
	fullURL := path
	if c.baseURL != "" {
		trimmedPath := path
		if !strings.HasPrefix(trimmedPath, "/") {
			trimmedPath = "/" + trimmedPath
		}
		fullURL = strings.TrimSuffix(c.baseURL, "/") + trimmedPath
	} else if _, err := url.ParseRequestURI(path); err != nil {
		return nil, fmt.Errorf("invalid path used without base URL: %s, error: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range c.defaultHeaders {
		req.Header.Set(key, value)
	}
	for _, option := range options {
		option(req)
	}

	var resp *http.Response
	var requestErr error

	if c.retryConfig != nil && c.retryConfig.MaxRetries > 0 {
		operation := func() error {
			resp, requestErr = c.httpClient.Do(req)
			if requestErr == nil && resp != nil {
				for _, code := range c.retryConfig.RetryableStatusCodes {
					if resp.StatusCode == code {
						// Drain and close so the connection can be reused.
						if resp.Body != nil {
							_, _ = io.Copy(io.Discard, resp.Body)
							_ = resp.Body.Close()
						}
						return fmt.Errorf("retryable status code: %d", resp.StatusCode)
					}
				}
			}
			return requestErr
		}

		expBackoff := backoff.NewExponentialBackOff()
		expBackoff.InitialInterval = c.retryConfig.InitialInterval
		expBackoff.MaxInterval = c.retryConfig.MaxInterval
		expBackoff.Multiplier = c.retryConfig.Multiplier
		expBackoff.MaxElapsedTime = c.retryConfig.MaxElapsedTime

		requestErr = backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(expBackoff, uint64(c.retryConfig.MaxRetries)), ctx))
	} else {
		resp, requestErr = c.httpClient.Do(req)
	}

	if requestErr != nil {
		return nil, fmt.Errorf("http request failed: %w", requestErr)
	}
	return resp, nil
}

// CheckResponse converts a non-2xx response into an HTTPError, consuming
// and closing the body.
func CheckResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &HTTPError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		URL:        resp.Request.URL.String(),
		Method:     resp.Request.Method,
		Body:       strings.TrimSpace(string(body)),
	}
}
