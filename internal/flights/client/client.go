// Package client provides the HTTP client for the Amadeus self-service API,
// including OAuth2 client-credentials token management.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"tripbuddy_backend/internal/flights/transport"
	"tripbuddy_backend/platform/logger"
)

const baseURL = "https://test.api.amadeus.com"

// Client is the HTTP client for the Amadeus API.
type Client struct {
	httpClient   *http.Client
	clientID     string
	clientSecret string
	log          *logger.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// New creates a new Amadeus API client.
func New(clientID, clientSecret string, log *logger.Logger) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		clientID:     clientID,
		clientSecret: clientSecret,
		log:          log,
	}
}

// SearchOffers searches flight offers for the given parameters.
func (c *Client) SearchOffers(ctx context.Context, params transport.SearchParams) ([]transport.Offer, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	adults := params.Adults
	if adults < 1 {
		adults = 1
	}
	max := params.Max
	if max < 1 {
		max = 5
	}

	values := url.Values{}
	values.Set("originLocationCode", strings.ToUpper(params.Origin))
	values.Set("destinationLocationCode", strings.ToUpper(params.Destination))
	values.Set("departureDate", params.DepartureDate)
	values.Set("adults", strconv.Itoa(adults))
	values.Set("max", strconv.Itoa(max))

	reqURL := fmt.Sprintf("%s/v2/shopping/flight-offers?%s", baseURL, values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.UpstreamError("amadeus", "flight_offers", err)
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Success - continue to decode
	case http.StatusUnauthorized:
		// Token may have been revoked before its advertised expiry.
		c.invalidateToken()
		c.log.UpstreamError("amadeus", "flight_offers", fmt.Errorf("status %d", resp.StatusCode))
		return nil, fmt.Errorf("unauthorized: token rejected")
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.log.UpstreamError("amadeus", "flight_offers", fmt.Errorf("status %d: %s", resp.StatusCode, body))
		return nil, fmt.Errorf("upstream error: status %d", resp.StatusCode)
	}

	var result transport.OffersResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return result.Data, nil
}

// token returns a valid access token, refreshing it when within a minute of
// expiry.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry.Add(-time.Minute)) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		baseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.UpstreamError("amadeus", "oauth_token", err)
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.UpstreamError("amadeus", "oauth_token", fmt.Errorf("status %d", resp.StatusCode))
		return "", fmt.Errorf("token request failed: status %d", resp.StatusCode)
	}

	var token struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("token response missing access_token")
	}

	c.accessToken = token.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	return c.accessToken, nil
}

func (c *Client) invalidateToken() {
	c.mu.Lock()
	c.accessToken = ""
	c.mu.Unlock()
}
