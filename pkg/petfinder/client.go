package petfinder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/oauth2/clientcredentials"
)

const (
	defaultAPIURL   = "https://api.petfinder.com/v2"
	defaultTokenURL = "https://api.petfinder.com/v2/oauth2/token"

	// DefaultLimit is how many animals a search returns when the caller
	// does not say otherwise.
	DefaultLimit = 5

	// DefaultDistanceMiles is the search radius applied when a location
	// is given without one.
	DefaultDistanceMiles = 100
)

// Client is the Petfinder API client. Authentication uses the OAuth2
// client-credentials flow; the underlying transport refreshes the
// bearer token as it expires.
type Client struct {
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a new Petfinder client with the given API
// credentials.
func NewClient(clientID, clientSecret string) *Client {
	cfg := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     defaultTokenURL,
	}
	return &Client{
		apiURL:     defaultAPIURL,
		httpClient: cfg.Client(context.Background()),
	}
}

// SetAPIURL overrides the default Petfinder API URL for testing purposes.
func (c *Client) SetAPIURL(u string) {
	c.apiURL = u
}

// SetHTTPClient swaps the underlying HTTP client. Tests use this to
// bypass the OAuth2 transport.
func (c *Client) SetHTTPClient(h *http.Client) {
	c.httpClient = h
}

// SearchAnimals queries adoptable animals. Only adoptable status is
// ever requested; zero-value params fall back to the defaults above.
func (c *Client) SearchAnimals(ctx context.Context, params SearchParams) (*SearchResponse, error) {
	q := url.Values{}
	q.Set("status", "adoptable")

	limit := params.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	q.Set("limit", strconv.Itoa(limit))

	if params.Type != "" {
		q.Set("type", params.Type)
	}
	if params.Location != "" {
		q.Set("location", params.Location)
		distance := params.DistanceMiles
		if distance <= 0 {
			distance = DefaultDistanceMiles
		}
		q.Set("distance", strconv.Itoa(distance))
	}
	if params.Size != "" {
		q.Set("size", params.Size)
	}
	if params.Age != "" {
		q.Set("age", params.Age)
	}
	if params.Gender != "" {
		q.Set("gender", params.Gender)
	}
	if params.GoodWithChildren {
		q.Set("good_with_children", "true")
	}
	if params.GoodWithDogs {
		q.Set("good_with_dogs", "true")
	}
	if params.GoodWithCats {
		q.Set("good_with_cats", "true")
	}

	reqURL := fmt.Sprintf("%s/animals?%s", c.apiURL, q.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call petfinder API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("petfinder API error %d: %s", resp.StatusCode, string(raw))
	}

	var result SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode petfinder response: %w", err)
	}
	return &result, nil
}
