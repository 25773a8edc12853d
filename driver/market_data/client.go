// Package market_data is the HTTP driver for the third-party quote provider.
// The provider's response shapes are inconsistent, so this layer only moves
// bytes and decodes payloads; defaulting happens in the gateway.
package market_data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"marketbrief/config"
	"marketbrief/domain"
	"marketbrief/driver/models"
	"marketbrief/utils/logger"
	"marketbrief/utils/rate_limiter"
)

// Client calls the quote provider. One instance is shared per process; the
// embedded rate limiter throttles calls per provider host.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate_limiter.HostRateLimiter
}

func NewClient(cfg config.MarketConfig) *Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.RequestTimeout})
}

// NewClientWithHTTP injects the HTTP client, used by tests to point at a
// stub server.
func NewClientWithHTTP(cfg config.MarketConfig, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.ProviderURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		limiter:    rate_limiter.NewHostRateLimiter(cfg.RateLimitInterval),
	}
}

// FetchQuotes retrieves quotes for the given symbols in one provider call.
func (c *Client) FetchQuotes(ctx context.Context, symbols []string) ([]models.QuotePayload, error) {
	endpoint, err := buildQuoteURL(c.baseURL, symbols)
	if err != nil {
		return nil, err
	}

	var decoded models.QuoteResponse
	if err := c.get(ctx, endpoint, &decoded); err != nil {
		return nil, err
	}

	if decoded.Error != nil {
		logger.Logger.ErrorContext(ctx, "provider returned error payload", "error", *decoded.Error)
		return nil, domain.ErrMarketDataUnavailable
	}

	return decoded.Quotes, nil
}

// FetchQuote retrieves a single symbol's quote. An empty result maps to
// domain.ErrSymbolNotFound.
func (c *Client) FetchQuote(ctx context.Context, symbol string) (*models.QuotePayload, error) {
	quotes, err := c.FetchQuotes(ctx, []string{symbol})
	if err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, domain.ErrSymbolNotFound
	}
	return &quotes[0], nil
}

// FetchTrending retrieves the provider's trending symbol list.
func (c *Client) FetchTrending(ctx context.Context) ([]string, error) {
	var decoded models.TrendingResponse
	if err := c.get(ctx, c.baseURL+"/v1/trending", &decoded); err != nil {
		return nil, err
	}
	return decoded.Symbols, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	if err := c.limiter.WaitForHost(ctx, endpoint); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to create provider request", "error", err)
		return errors.New("failed to create provider request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "marketbrief/1.0")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "provider request failed", "error", err)
		if isTimeoutError(err) {
			return domain.ErrMarketDataTimeout
		}
		return domain.ErrMarketDataUnavailable
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Logger.DebugContext(ctx, "failed to close provider response body", "error", closeErr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to read provider response", "error", err)
		return domain.ErrMarketDataUnavailable
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrSymbolNotFound
	case resp.StatusCode != http.StatusOK:
		logger.Logger.ErrorContext(ctx, "provider request failed", "status", resp.StatusCode, "body", string(body))
		return domain.ErrMarketDataUnavailable
	}

	if err := json.Unmarshal(body, out); err != nil {
		logger.Logger.ErrorContext(ctx, "failed to decode provider response", "error", err)
		return domain.ErrMarketDataUnavailable
	}

	return nil
}

func buildQuoteURL(baseURL string, symbols []string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid provider base URL: %w", err)
	}

	u.Path = "/v1/quote"

	vals := url.Values{}
	vals.Add("symbols", strings.Join(symbols, ","))
	u.RawQuery = vals.Encode()

	return u.String(), nil
}

// isTimeoutError checks if the error is a timeout error
func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "Timeout") ||
		strings.Contains(errStr, "deadline exceeded")
}
