// Package client provides the HTTP client for the OpenWeatherMap API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"tripbuddy_backend/internal/weather/transport"
	"tripbuddy_backend/platform/logger"
)

const baseURL = "https://api.openweathermap.org/data/2.5"

// Client is the HTTP client for the OpenWeatherMap API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	log        *logger.Logger
}

// New creates a new OpenWeatherMap API client.
func New(apiKey string, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     apiKey,
		log:        log,
	}
}

// CurrentWeather fetches current conditions by location name, metric units.
func (c *Client) CurrentWeather(ctx context.Context, location string) (*transport.Current, error) {
	values := url.Values{}
	values.Set("q", location)
	values.Set("appid", c.apiKey)
	values.Set("units", "metric")

	reqURL := fmt.Sprintf("%s/weather?%s", baseURL, values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.UpstreamError("openweathermap", "current_weather", err)
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Success - continue to decode
	case http.StatusUnauthorized:
		c.log.UpstreamError("openweathermap", "current_weather", fmt.Errorf("status %d", resp.StatusCode))
		return nil, fmt.Errorf("unauthorized: invalid API key")
	case http.StatusNotFound:
		return nil, nil
	default:
		c.log.UpstreamError("openweathermap", "current_weather", fmt.Errorf("status %d", resp.StatusCode))
		return nil, fmt.Errorf("upstream error: status %d", resp.StatusCode)
	}

	var current transport.Current
	if err := json.NewDecoder(resp.Body).Decode(&current); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &current, nil
}
