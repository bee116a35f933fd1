package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

const (
	defaultAPIURL = "https://api.weatherapi.com/v1"

	// MaxForecastDays is the largest forecast window the API accepts.
	MaxForecastDays = 14

	// DateLayout is the date format the API expects in "dt" parameters.
	DateLayout = "2006-01-02"
)

// Client is the WeatherAPI.com client.
type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a new WeatherAPI client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     defaultAPIURL,
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the default WeatherAPI URL for testing purposes.
func (c *Client) SetAPIURL(u string) {
	c.apiURL = u
}

// Current fetches current conditions for a location. The query accepts
// city names, "City, ST" pairs, and postal codes.
func (c *Client) Current(ctx context.Context, location string, withAQI bool) (*CurrentResponse, error) {
	q := url.Values{}
	q.Set("q", location)
	if withAQI {
		q.Set("aqi", "yes")
	}

	var result CurrentResponse
	if err := c.get(ctx, "/current.json", q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Forecast fetches a multi-day forecast. Days outside [1, MaxForecastDays]
// are clamped, not rejected.
func (c *Client) Forecast(ctx context.Context, location string, days int, withAQI bool) (*ForecastResponse, error) {
	if days < 1 {
		days = 1
	}
	if days > MaxForecastDays {
		days = MaxForecastDays
	}

	q := url.Values{}
	q.Set("q", location)
	q.Set("days", strconv.Itoa(days))
	if withAQI {
		q.Set("aqi", "yes")
	}

	var result ForecastResponse
	if err := c.get(ctx, "/forecast.json", q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Astronomy fetches sunrise, sunset and moon data for a location on a
// date given as YYYY-MM-DD.
func (c *Client) Astronomy(ctx context.Context, location, date string) (*AstronomyResponse, error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("dt", date)

	var result AstronomyResponse
	if err := c.get(ctx, "/astronomy.json", q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	q.Set("key", c.apiKey)
	reqURL := fmt.Sprintf("%s%s?%s", c.apiURL, path, q.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call weather API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		var apiErr ErrorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("weather API error %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return fmt.Errorf("weather API error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode weather response: %w", err)
	}
	return nil
}
