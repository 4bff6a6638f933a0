// Package service implements POI search over the TripAdvisor content API.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tripbuddy_backend/internal/poi/transport"
	"tripbuddy_backend/platform/apperr"
	"tripbuddy_backend/platform/cache"
	"tripbuddy_backend/platform/logger"
)

// LocationSearcher is the subset of the TripAdvisor client the service uses.
type LocationSearcher interface {
	SearchLocation(ctx context.Context, params transport.SearchParams) ([]transport.Location, error)
	NearbySearch(ctx context.Context, params transport.SearchParams) ([]transport.Location, error)
	LocationDetails(ctx context.Context, locationID, language, currency string) (*transport.LocationDetails, error)
}

// Service handles POI queries.
type Service struct {
	client LocationSearcher
	cache  *cache.Cache
	log    *logger.Logger
}

// New creates a new POI service. cache may be nil when caching is disabled.
func New(client LocationSearcher, c *cache.Cache, log *logger.Logger) *Service {
	return &Service{client: client, cache: c, log: log}
}

// Search parses a freeform query, dispatches the matching search endpoint and
// returns the structured response including a readable answer.
func (s *Service) Search(ctx context.Context, query string) (transport.SearchResponse, error) {
	params := ParseQuery(query)

	results, err := s.searchCached(ctx, params)
	if err != nil {
		return transport.SearchResponse{}, apperr.Upstream("place search failed", err).WithOp("poi.Search")
	}

	return transport.SearchResponse{
		Query:   query,
		Params:  params,
		Results: results,
		Answer:  FormatAnswer(params, results),
	}, nil
}

// Answer returns the text answer for a freeform POI query.
func (s *Service) Answer(ctx context.Context, query string) (string, error) {
	resp, err := s.Search(ctx, query)
	if err != nil {
		return "", err
	}
	return resp.Answer, nil
}

// Details returns detailed information for a single location.
func (s *Service) Details(ctx context.Context, locationID, language, currency string) (*transport.LocationDetails, error) {
	details, err := s.client.LocationDetails(ctx, locationID, language, currency)
	if err != nil {
		return nil, apperr.Upstream("place details failed", err).WithOp("poi.Details")
	}
	if details == nil {
		return nil, apperr.NotFound("location not found")
	}
	return details, nil
}

func (s *Service) searchCached(ctx context.Context, params transport.SearchParams) ([]transport.Location, error) {
	key := cacheKey(params)

	if s.cache != nil {
		var cached []transport.Location
		err := s.cache.Get(ctx, key, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			s.log.WithContext(ctx).Warn("poi cache read failed", "error", err)
		}
	}

	var results []transport.Location
	var err error
	if params.LatLong != "" && params.SearchQuery == "" {
		results, err = s.client.NearbySearch(ctx, params)
	} else {
		results, err = s.client.SearchLocation(ctx, params)
	}
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, results); err != nil {
			s.log.WithContext(ctx).Warn("poi cache write failed", "error", err)
		}
	}
	return results, nil
}

// FormatAnswer renders search results as a numbered readable list.
func FormatAnswer(params transport.SearchParams, results []transport.Location) string {
	if len(results) == 0 {
		return fmt.Sprintf("No places found for %q.", params.SearchQuery)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d places for %q:\n", len(results), params.SearchQuery)
	for i, loc := range results {
		fmt.Fprintf(&b, "%d. %s", i+1, loc.Name)
		if addr := loc.AddressObj.AddressString; addr != "" {
			fmt.Fprintf(&b, " - %s", addr)
		}
		if loc.Rating != "" {
			fmt.Fprintf(&b, " (rating %s)", loc.Rating)
		}
		if i < len(results)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func cacheKey(params transport.SearchParams) string {
	radius := ""
	if params.Radius != nil {
		radius = fmt.Sprintf("%d%s", *params.Radius, params.RadiusUnit)
	}
	return fmt.Sprintf("poi:%s|%s|%s|%s|%s",
		strings.ToLower(params.SearchQuery), params.Category, params.LatLong, radius, params.Language)
}
