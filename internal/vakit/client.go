package vakit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// ErrNotConfigured is returned when no feed URL is set.
var ErrNotConfigured = errors.New("prayer time feed URL not configured")

// Client is an HTTP client for the prayer-time feed.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient creates a new feed client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// Endpoint returns the request URL for city.
func (c *Client) Endpoint(city string) (string, error) {
	if c.BaseURL == "" {
		return "", ErrNotConfigured
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid feed URL: %w", err)
	}
	q := u.Query()
	q.Set("city", NormalizeCity(city))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// FetchTimes fetches today's prayer times for city. It makes a single
// attempt; entries that are not one of the five prayers are dropped.
func (c *Client) FetchTimes(ctx context.Context, city string) ([]Time, error) {
	endpoint, err := c.Endpoint(city)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "apikey "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed: %d - %s", resp.StatusCode, string(body))
	}

	var parsed Response
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return ToTimes(parsed.Result), nil
}
