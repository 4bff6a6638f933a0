// Package client provides the HTTP client for the TripAdvisor content API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tripbuddy_backend/internal/poi/transport"
	"tripbuddy_backend/platform/logger"
)

const baseURL = "https://api.content.tripadvisor.com/api/v1"

// Client is the HTTP client for the TripAdvisor content API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	log        *logger.Logger
}

// New creates a new TripAdvisor API client.
func New(apiKey string, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     apiKey,
		log:        log,
	}
}

// SearchLocation searches locations by free text with optional filters.
func (c *Client) SearchLocation(ctx context.Context, params transport.SearchParams) ([]transport.Location, error) {
	values := url.Values{}
	values.Set("key", c.apiKey)
	values.Set("searchQuery", params.SearchQuery)
	if params.Category != "" {
		values.Set("category", params.Category)
	}
	if params.LatLong != "" {
		values.Set("latLong", params.LatLong)
	}
	addRadius(values, params)
	values.Set("language", params.Language)

	reqURL := fmt.Sprintf("%s/location/search?%s", baseURL, values.Encode())
	return c.doList(ctx, reqURL)
}

// NearbySearch searches locations around a latitude/longitude pair.
func (c *Client) NearbySearch(ctx context.Context, params transport.SearchParams) ([]transport.Location, error) {
	values := url.Values{}
	values.Set("key", c.apiKey)
	values.Set("latLong", params.LatLong)
	if params.Category != "" {
		values.Set("category", params.Category)
	}
	addRadius(values, params)
	values.Set("language", params.Language)

	reqURL := fmt.Sprintf("%s/location/nearby_search?%s", baseURL, values.Encode())
	return c.doList(ctx, reqURL)
}

// LocationDetails fetches detailed information about a single location.
func (c *Client) LocationDetails(ctx context.Context, locationID, language, currency string) (*transport.LocationDetails, error) {
	if language == "" {
		language = "en"
	}
	if currency == "" {
		currency = "USD"
	}

	values := url.Values{}
	values.Set("key", c.apiKey)
	values.Set("language", language)
	values.Set("currency", currency)

	reqURL := fmt.Sprintf("%s/location/%s/details?%s", baseURL, url.PathEscape(locationID), values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.UpstreamError("tripadvisor", "location_details", err)
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// Unknown location is not an upstream failure.
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		c.log.UpstreamError("tripadvisor", "location_details", fmt.Errorf("status %d", resp.StatusCode))
		return nil, fmt.Errorf("upstream error: status %d", resp.StatusCode)
	}

	var details transport.LocationDetails
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &details, nil
}

func (c *Client) doList(ctx context.Context, reqURL string) ([]transport.Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.UpstreamError("tripadvisor", "location_search", err)
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Success - continue to decode
	case http.StatusUnauthorized, http.StatusForbidden:
		c.log.UpstreamError("tripadvisor", "location_search", fmt.Errorf("status %d", resp.StatusCode))
		return nil, fmt.Errorf("unauthorized: invalid API key")
	case http.StatusNotFound:
		// No matches is not an error
		return nil, nil
	default:
		c.log.UpstreamError("tripadvisor", "location_search", fmt.Errorf("status %d", resp.StatusCode))
		return nil, fmt.Errorf("upstream error: status %d", resp.StatusCode)
	}

	var parsed struct {
		Data []transport.Location `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return parsed.Data, nil
}

func addRadius(values url.Values, params transport.SearchParams) {
	if params.Radius == nil {
		return
	}
	values.Set("radius", strconv.Itoa(*params.Radius))
	if params.RadiusUnit != "" {
		values.Set("radiusUnit", params.RadiusUnit)
	}
}
