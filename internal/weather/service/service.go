// Package service implements current-weather lookups over OpenWeatherMap.
package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"tripbuddy_backend/internal/weather/transport"
	"tripbuddy_backend/platform/apperr"
	"tripbuddy_backend/platform/cache"
	"tripbuddy_backend/platform/logger"
)

// WeatherFetcher is the subset of the OpenWeatherMap client the service uses.
type WeatherFetcher interface {
	CurrentWeather(ctx context.Context, location string) (*transport.Current, error)
}

// Service handles weather queries.
type Service struct {
	client WeatherFetcher
	cache  *cache.Cache
	log    *logger.Logger
}

// New creates a new weather service. c may be nil when caching is disabled.
func New(client WeatherFetcher, c *cache.Cache, log *logger.Logger) *Service {
	return &Service{client: client, cache: c, log: log}
}

var locationPattern = regexp.MustCompile(`(?i)(?:weather|temperature|forecast|rain|snow)[\w\s']*?\b(?:in|at|for)\s+(.+?)(?:\?|$)`)

var weatherWords = map[string]bool{
	"weather": true, "temperature": true, "forecast": true,
	"rain": true, "snow": true, "what's": true, "whats": true,
	"what": true, "is": true, "the": true, "like": true, "today": true,
	"tomorrow": true, "current": true, "now": true, "how": true,
}

// ExtractLocation pulls the place name out of a freeform weather query.
// Falls back to the query stripped of weather vocabulary, then to the
// whole query.
func ExtractLocation(query string) string {
	trimmed := strings.TrimSpace(query)

	if m := locationPattern.FindStringSubmatch(trimmed); m != nil {
		return strings.TrimSpace(m[1])
	}

	var kept []string
	for _, token := range strings.Fields(trimmed) {
		if weatherWords[strings.ToLower(strings.Trim(token, "?.,!"))] {
			continue
		}
		kept = append(kept, strings.Trim(token, "?.,!"))
	}
	if len(kept) > 0 {
		return strings.Join(kept, " ")
	}
	return trimmed
}

// Lookup fetches current weather for a location name.
func (s *Service) Lookup(ctx context.Context, location string) (transport.Response, error) {
	current, err := s.fetchCached(ctx, location)
	if err != nil {
		return transport.Response{}, apperr.Upstream("weather lookup failed", err).WithOp("weather.Lookup")
	}
	if current == nil {
		return transport.Response{
			Location: location,
			Answer:   fmt.Sprintf("No weather data found for %q.", location),
		}, nil
	}

	return transport.Response{
		Location: location,
		Current:  *current,
		Answer:   FormatAnswer(location, current),
	}, nil
}

// Answer returns the text answer for a freeform weather query.
func (s *Service) Answer(ctx context.Context, query string) (string, error) {
	resp, err := s.Lookup(ctx, ExtractLocation(query))
	if err != nil {
		return "", err
	}
	return resp.Answer, nil
}

func (s *Service) fetchCached(ctx context.Context, location string) (*transport.Current, error) {
	key := "weather:" + strings.ToLower(location)

	if s.cache != nil {
		var cached transport.Current
		err := s.cache.Get(ctx, key, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			s.log.WithContext(ctx).Warn("weather cache read failed", "error", err)
		}
	}

	current, err := s.client.CurrentWeather(ctx, location)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && current != nil {
		if err := s.cache.Set(ctx, key, current); err != nil {
			s.log.WithContext(ctx).Warn("weather cache write failed", "error", err)
		}
	}
	return current, nil
}

// FormatAnswer renders current conditions as a single readable sentence block.
func FormatAnswer(location string, current *transport.Current) string {
	name := current.Name
	if name == "" {
		name = location
	}

	condition := "unknown conditions"
	if len(current.Weather) > 0 {
		condition = current.Weather[0].Description
		if condition == "" {
			condition = current.Weather[0].Main
		}
	}

	return fmt.Sprintf("Current weather in %s: %s, %.1f°C (feels like %.1f°C), humidity %d%%, wind %.1f m/s.",
		name, condition, current.Main.Temp, current.Main.FeelsLike, current.Main.Humidity, current.Wind.Speed)
}
