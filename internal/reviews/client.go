// Package reviews proxies the Google Places reviews of a shop. The adapter
// is the storefront's only remote data dependency; everything else it
// serves is bundled configuration.
package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// MaxReviews is the upstream cap on returned reviews, not a choice made
// here.
const MaxReviews = 5

// ErrMissingAPIKey marks the distinct configuration failure: the proxy is
// deployed without an upstream API key.
var ErrMissingAPIKey = errors.New("places api key not configured")

// Review is one customer review as returned upstream.
type Review struct {
	AuthorName      string `json:"author_name"`
	AuthorURL       string `json:"author_url,omitempty"`
	ProfilePhotoURL string `json:"profile_photo_url,omitempty"`
	Rating          int    `json:"rating"`
	RelativeTime    string `json:"relative_time_description"`
	Text            string `json:"text"`
	Time            int64  `json:"time"`
}

// Data is the reshaped response the storefront serves.
type Data struct {
	Rating       float64  `json:"rating"`
	TotalReviews int      `json:"totalReviews"`
	Reviews      []Review `json:"reviews"`
	GoogleURL    string   `json:"googleUrl,omitempty"`
}

// StatusError carries a non-OK upstream status. Its message is the
// human-readable mapping surfaced to the client; statuses are never
// silently swallowed.
type StatusError struct {
	Status string
}

func (e *StatusError) Error() string {
	return "Google Places API error: " + e.Status
}

// Message maps the upstream status to guidance a site owner can act on.
func (e *StatusError) Message() string {
	switch e.Status {
	case "NOT_FOUND":
		return "Place ID not found. Please verify the Place ID is correct."
	case "REQUEST_DENIED":
		return "API request denied. Please check your API key permissions."
	default:
		return fmt.Sprintf("API returned status: %s", e.Status)
	}
}

// Client fetches reviews for a place.
type Client interface {
	Fetch(ctx context.Context, placeID string) (*Data, error)
}

// HTTPClient implements Client against the Google Places details endpoint.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPClient creates a Places-backed client. An empty API key is allowed
// at construction; Fetch reports it as ErrMissingAPIKey so the handler can
// surface the configuration problem distinctly.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	if baseURL == "" {
		baseURL = "https://maps.googleapis.com"
	}
	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// placesResponse is the wire shape of the upstream details call.
type placesResponse struct {
	Result struct {
		Name             string   `json:"name"`
		Rating           float64  `json:"rating"`
		UserRatingsTotal int      `json:"user_ratings_total"`
		Reviews          []Review `json:"reviews"`
		URL              string   `json:"url"`
	} `json:"result"`
	Status string `json:"status"`
}

// Fetch loads rating, total count and up to MaxReviews reviews for a place.
// The request carries the caller's context so an abandoned page view aborts
// the upstream call.
func (c *HTTPClient) Fetch(ctx context.Context, placeID string) (*Data, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", "name,rating,user_ratings_total,reviews,url")
	q.Set("key", c.apiKey)
	endpoint := c.baseURL + "/maps/api/place/details/json?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places returned status %d", resp.StatusCode)
	}

	var body placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}

	if body.Status != "OK" {
		return nil, &StatusError{Status: body.Status}
	}

	reviews := body.Result.Reviews
	if len(reviews) > MaxReviews {
		reviews = reviews[:MaxReviews]
	}
	if reviews == nil {
		reviews = []Review{}
	}

	return &Data{
		Rating:       body.Result.Rating,
		TotalReviews: body.Result.UserRatingsTotal,
		Reviews:      reviews,
		GoogleURL:    body.Result.URL,
	}, nil
}

// NoopClient returns empty review data; used in tests and when reviews are
// disabled.
type NoopClient struct{}

// NewNoopClient creates a no-op reviews client.
func NewNoopClient() *NoopClient {
	return &NoopClient{}
}

func (c *NoopClient) Fetch(ctx context.Context, placeID string) (*Data, error) {
	return &Data{Reviews: []Review{}}, nil
}
