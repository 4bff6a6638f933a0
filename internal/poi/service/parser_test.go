package service

import (
	"testing"

	"tripbuddy_backend/internal/poi/transport"
)

func TestParseQueryPhrasePattern(t *testing.T) {
	params := ParseQuery("Top attractions in Lisbon")

	if params.Category != transport.CategoryAttractions {
		t.Fatalf("expected category attractions, got %q", params.Category)
	}
	if params.SearchQuery != "Lisbon" {
		t.Fatalf("expected search query Lisbon, got %q", params.SearchQuery)
	}
	if params.Language != "en" {
		t.Fatalf("expected default language en, got %q", params.Language)
	}
}

func TestParseQueryAudiencePhrase(t *testing.T) {
	params := ParseQuery("best things to do in Kyoto for families")

	if params.Category != transport.CategoryAttractions {
		t.Fatalf("expected category attractions, got %q", params.Category)
	}
	if params.SearchQuery != "Kyoto" {
		t.Fatalf("expected search query Kyoto, got %q", params.SearchQuery)
	}
}

func TestParseQueryTokenScan(t *testing.T) {
	params := ParseQuery("hotels near Amsterdam Centraal within 5 km")

	if params.Category != transport.CategoryHotels {
		t.Fatalf("expected category hotels, got %q", params.Category)
	}
	if params.SearchQuery != "amsterdam centraal within 5 km" {
		t.Fatalf("unexpected search query %q", params.SearchQuery)
	}
	if params.Radius == nil || *params.Radius != 5 {
		t.Fatalf("expected radius 5, got %v", params.Radius)
	}
	if params.RadiusUnit != "km" {
		t.Fatalf("expected radius unit km, got %q", params.RadiusUnit)
	}
}

func TestParseQueryFallbackToWholeQuery(t *testing.T) {
	params := ParseQuery("romantic sunset spots")

	if params.SearchQuery != "romantic sunset spots" {
		t.Fatalf("expected whole query as search text, got %q", params.SearchQuery)
	}
	if params.Category != "" {
		t.Fatalf("expected no category, got %q", params.Category)
	}
}

func TestParseQueryStructuredInput(t *testing.T) {
	params := ParseQuery(`{"location":"Rome","type":"restaurants","radius":2,"radiusUnit":"mi"}`)

	if params.SearchQuery != "Rome" {
		t.Fatalf("expected search query Rome, got %q", params.SearchQuery)
	}
	if params.Category != transport.CategoryRestaurants {
		t.Fatalf("expected category restaurants, got %q", params.Category)
	}
	if params.Radius == nil || *params.Radius != 2 || params.RadiusUnit != "mi" {
		t.Fatalf("unexpected radius %v %q", params.Radius, params.RadiusUnit)
	}
}

func TestFormatAnswerEmpty(t *testing.T) {
	answer := FormatAnswer(transport.SearchParams{SearchQuery: "Atlantis"}, nil)

	if answer != `No places found for "Atlantis".` {
		t.Fatalf("unexpected answer %q", answer)
	}
}
