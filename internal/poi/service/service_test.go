package service

import (
	"context"
	"errors"
	"testing"

	"tripbuddy_backend/internal/poi/transport"
	"tripbuddy_backend/platform/apperr"
	"tripbuddy_backend/platform/logger"
)

type stubSearcher struct {
	locations []transport.Location
	details   *transport.LocationDetails
	err       error

	searchCalls int
	nearbyCalls int
	detailsID   string
	language    string
	currency    string
}

func (s *stubSearcher) SearchLocation(ctx context.Context, params transport.SearchParams) ([]transport.Location, error) {
	s.searchCalls++
	return s.locations, s.err
}

func (s *stubSearcher) NearbySearch(ctx context.Context, params transport.SearchParams) ([]transport.Location, error) {
	s.nearbyCalls++
	return s.locations, s.err
}

func (s *stubSearcher) LocationDetails(ctx context.Context, locationID, language, currency string) (*transport.LocationDetails, error) {
	s.detailsID = locationID
	s.language = language
	s.currency = currency
	return s.details, s.err
}

func TestSearchDispatchesTextSearch(t *testing.T) {
	client := &stubSearcher{locations: []transport.Location{{LocationID: "42", Name: "Rijksmuseum"}}}
	svc := New(client, nil, logger.New("development"))

	resp, err := svc.Search(context.Background(), "museums in Amsterdam")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if client.searchCalls != 1 || client.nearbyCalls != 0 {
		t.Fatalf("expected one text search, got %d/%d", client.searchCalls, client.nearbyCalls)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("expected one result, got %d", len(resp.Results))
	}
}

func TestSearchUpstreamError(t *testing.T) {
	client := &stubSearcher{err: errors.New("boom")}
	svc := New(client, nil, logger.New("development"))

	_, err := svc.Search(context.Background(), "museums in Amsterdam")
	if !apperr.Is(err, apperr.KindUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestDetails(t *testing.T) {
	client := &stubSearcher{details: &transport.LocationDetails{
		LocationID: "42",
		Name:       "Rijksmuseum",
		Rating:     "4.5",
	}}
	svc := New(client, nil, logger.New("development"))

	details, err := svc.Details(context.Background(), "42", "en", "EUR")
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if client.detailsID != "42" || client.language != "en" || client.currency != "EUR" {
		t.Fatalf("unexpected client call %q %q %q", client.detailsID, client.language, client.currency)
	}
	if details.Name != "Rijksmuseum" {
		t.Fatalf("unexpected details %+v", details)
	}
}

func TestDetailsNotFound(t *testing.T) {
	client := &stubSearcher{}
	svc := New(client, nil, logger.New("development"))

	_, err := svc.Details(context.Background(), "missing", "", "")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDetailsUpstreamError(t *testing.T) {
	client := &stubSearcher{err: errors.New("boom")}
	svc := New(client, nil, logger.New("development"))

	_, err := svc.Details(context.Background(), "42", "", "")
	if !apperr.Is(err, apperr.KindUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}
