package service

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"tripbuddy_backend/internal/poi/transport"
)

// phrasePattern maps a recognizable travel phrase to the POI category it implies.
type phrasePattern struct {
	re       *regexp.Regexp
	category string
}

// Ordered: first match wins.
var phrasePatterns = []phrasePattern{
	{regexp.MustCompile(`(?i)top attractions in (.+)`), transport.CategoryAttractions},
	{regexp.MustCompile(`(?i)must-visit places in (.+)`), transport.CategoryAttractions},
	{regexp.MustCompile(`(?i)best things to do in (.+?) for (?:families|couples|solo travelers)`), transport.CategoryAttractions},
	{regexp.MustCompile(`(?i)free or budget-friendly attractions in (.+)`), transport.CategoryAttractions},
	{regexp.MustCompile(`(?i)hidden gems in (.+)`), transport.CategoryAttractions},
	{regexp.MustCompile(`(?i)cultural or historical landmarks in (.+)`), transport.CategoryAttractions},
	{regexp.MustCompile(`(?i)outdoor activities or natural attractions in (.+)`), transport.CategoryAttractions},
	{regexp.MustCompile(`(?i)best time to visit (.+)`), transport.CategoryAttractions},
	{regexp.MustCompile(`(?i)best season to visit (.+)`), transport.CategoryAttractions},
}

var categories = map[string]bool{
	transport.CategoryHotels:      true,
	transport.CategoryAttractions: true,
	transport.CategoryRestaurants: true,
}

// structuredQuery is the JSON form some clients (and agent tools) send instead
// of natural language.
type structuredQuery struct {
	Location   string `json:"location"`
	Type       string `json:"type"`
	LatLong    string `json:"latLong"`
	Radius     *int   `json:"radius"`
	RadiusUnit string `json:"radiusUnit"`
	Language   string `json:"language"`
}

// ParseQuery converts a freeform POI query into structured search parameters.
// The search text always falls back to the full query so that no input is
// rejected at this stage.
func ParseQuery(query string) transport.SearchParams {
	params := transport.SearchParams{Language: "en"}
	trimmed := strings.TrimSpace(query)

	if structured, ok := parseStructured(trimmed); ok {
		return structured
	}

	for _, pattern := range phrasePatterns {
		m := pattern.re.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		params.Category = pattern.category
		params.SearchQuery = strings.TrimSpace(m[1])
		return params
	}

	tokens := strings.Fields(strings.ToLower(trimmed))

	for _, token := range tokens {
		if categories[token] {
			params.Category = token
			break
		}
	}

	for i, token := range tokens {
		if token == "near" && i+1 < len(tokens) {
			params.SearchQuery = strings.Join(tokens[i+1:], " ")
			break
		}
	}

	if radius, unit, ok := parseRadius(tokens); ok {
		params.Radius = &radius
		params.RadiusUnit = unit
	}

	if params.SearchQuery == "" {
		params.SearchQuery = trimmed
	}
	return params
}

func parseStructured(query string) (transport.SearchParams, bool) {
	if !strings.HasPrefix(query, "{") {
		return transport.SearchParams{}, false
	}

	var structured structuredQuery
	if err := json.Unmarshal([]byte(query), &structured); err != nil {
		return transport.SearchParams{}, false
	}

	params := transport.SearchParams{
		SearchQuery: structured.Location,
		LatLong:     structured.LatLong,
		Radius:      structured.Radius,
		RadiusUnit:  structured.RadiusUnit,
		Language:    structured.Language,
	}
	if categories[structured.Type] {
		params.Category = structured.Type
	}
	if params.Language == "" {
		params.Language = "en"
	}
	return params, true
}

// parseRadius picks up "within N km" / "within N mi" mentions. The radius is
// dropped entirely when the number cannot be parsed.
func parseRadius(tokens []string) (int, string, bool) {
	for i, token := range tokens {
		if token != "within" || i+1 >= len(tokens) {
			continue
		}
		radius, err := strconv.Atoi(tokens[i+1])
		if err != nil {
			return 0, "", false
		}
		unit := ""
		if i+2 < len(tokens) && (tokens[i+2] == "km" || tokens[i+2] == "mi") {
			unit = tokens[i+2]
		}
		return radius, unit, true
	}
	return 0, "", false
}
