// Package client provides the HTTP client for the Google Directions API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"tripbuddy_backend/internal/directions/transport"
	"tripbuddy_backend/platform/logger"
)

const baseURL = "https://maps.googleapis.com/maps/api/directions/json"

// Client is the HTTP client for the Google Directions API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	log        *logger.Logger
}

// New creates a new Google Directions API client.
func New(apiKey string, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     apiKey,
		log:        log,
	}
}

// Directions fetches a driving route between two place names.
func (c *Client) Directions(ctx context.Context, origin, destination string) (*transport.DirectionsResult, error) {
	values := url.Values{}
	values.Set("origin", origin)
	values.Set("destination", destination)
	values.Set("mode", "driving")
	values.Set("key", c.apiKey)

	reqURL := fmt.Sprintf("%s?%s", baseURL, values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.UpstreamError("google_directions", "directions", err)
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.UpstreamError("google_directions", "directions", fmt.Errorf("status %d", resp.StatusCode))
		return nil, fmt.Errorf("upstream error: status %d", resp.StatusCode)
	}

	var result transport.DirectionsResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &result, nil
}
