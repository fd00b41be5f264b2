package simpleswap

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	httpClient "github.com/blinds123/simpleswap-realtime-test-sub001/internal/client/http"
	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "https://api.simpleswap.io"
	defaultTimeout = 10 * time.Second
)

// Client talks to the exchange's public API. It is strictly best-effort:
// link construction never depends on it, and callers are expected to
// treat failures as a missing estimate rather than an error state.
type Client struct {
	apiKey     string
	httpClient *httpClient.HTTPClient
}

// NewClient creates a client for the exchange API. An empty baseURL
// selects the public endpoint.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey: apiKey,
		httpClient: httpClient.NewHTTPClient(
			httpClient.WithBaseURL(baseURL),
			httpClient.WithTimeout(defaultTimeout),
		),
	}
}

// EstimateParams identifies one exchange pair to estimate.
type EstimateParams struct {
	CurrencyFrom string
	CurrencyTo   string
	Amount       string
	Fixed        bool
}

// GetEstimated returns the indicative receive amount for the pair, as
// the API reports it (a decimal string).
func (c *Client) GetEstimated(ctx context.Context, params EstimateParams) (string, error) {
	resp, err := c.httpClient.Get(ctx, "/get_estimated",
		httpClient.WithQueryParam("api_key", c.apiKey),
		httpClient.WithQueryParam("fixed", strconv.FormatBool(params.Fixed)),
		httpClient.WithQueryParam("currency_from", params.CurrencyFrom),
		httpClient.WithQueryParam("currency_to", params.CurrencyTo),
		httpClient.WithQueryParam("amount", params.Amount),
	)
	if err != nil {
		return "", errors.Wrap(err, "estimate request failed")
	}
	if err := httpClient.CheckResponse(resp); err != nil {
		return "", errors.Wrap(err, "estimate request rejected")
	}
	defer resp.Body.Close()

	// The endpoint returns a bare JSON string, e.g. "21.42".
	var estimate string
	if err := json.NewDecoder(resp.Body).Decode(&estimate); err != nil {
		return "", errors.Wrap(err, "failed to decode estimate response")
	}
	if estimate == "" {
		return "", errors.New("empty estimate response")
	}
	return estimate, nil
}
