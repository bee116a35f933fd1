package dexscreener

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"
)

const (
	defaultAPIURL = "https://api.dexscreener.com/latest/dex"

	// DefaultRequestsPerMinute matches the public API's documented
	// rate limit for the search endpoints.
	DefaultRequestsPerMinute = 60
)

// Client is the DexScreener API client. Requests are throttled through
// a shared limiter so burst traffic from a busy chat never trips the
// upstream rate limit.
type Client struct {
	apiURL     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new DexScreener client throttled to the given
// requests per minute. Zero or negative falls back to the default.
func NewClient(requestsPerMinute int) *Client {
	if requestsPerMinute <= 0 {
		requestsPerMinute = DefaultRequestsPerMinute
	}
	return &Client{
		apiURL:     defaultAPIURL,
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), requestsPerMinute),
	}
}

// SetAPIURL overrides the default DexScreener API URL for testing purposes.
func (c *Client) SetAPIURL(u string) {
	c.apiURL = u
}

// SearchPairs searches trading pairs by ticker, name or address.
func (c *Client) SearchPairs(ctx context.Context, query string) (*PairsResponse, error) {
	reqURL := fmt.Sprintf("%s/search?q=%s", c.apiURL, url.QueryEscape(query))
	return c.getPairs(ctx, reqURL)
}

// TokenPairs fetches all pairs for a token mint address.
func (c *Client) TokenPairs(ctx context.Context, tokenAddress string) (*PairsResponse, error) {
	reqURL := fmt.Sprintf("%s/tokens/%s", c.apiURL, url.PathEscape(tokenAddress))
	return c.getPairs(ctx, reqURL)
}

func (c *Client) getPairs(ctx context.Context, reqURL string) (*PairsResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call dexscreener API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("dexscreener API error %d: %s", resp.StatusCode, string(raw))
	}

	var result PairsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode dexscreener response: %w", err)
	}
	return &result, nil
}
