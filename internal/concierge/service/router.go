package service

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Branch identifies which adapter answers a query.
type Branch string

const (
	BranchFlights   Branch = "flights"
	BranchWeather   Branch = "weather"
	BranchRoute     Branch = "route"
	BranchPOI       Branch = "poi"
	BranchKnowledge Branch = "knowledge"
)

// defaultRules are the built-in keyword sets, checked in priority order.
var defaultRules = RouterRules{
	Flights: []string{"flight", "flights", "fare", "airline", "ticket", "itinerary"},
	Weather: []string{"weather", "temperature", "forecast", "rain", "snow"},
	Route:   []string{"route", "directions", "drive", "driving"},
	POI: []string{
		"hotel", "hotels", "attraction", "attractions", "restaurant", "restaurants",
		"things to do", "places to visit", "nearby", "top attractions", "must-visit",
	},
}

// RouterRules are the keyword sets per branch, overridable from a YAML file.
type RouterRules struct {
	Flights []string `yaml:"flights"`
	Weather []string `yaml:"weather"`
	Route   []string `yaml:"route"`
	POI     []string `yaml:"poi"`
}

// Router classifies a query into a branch using keyword membership.
type Router struct {
	rules          RouterRules
	flightsEnabled bool
}

// NewRouter creates a keyword router. rulesPath may be empty to use the
// built-in keyword sets.
func NewRouter(rulesPath string, flightsEnabled bool) (*Router, error) {
	rules := defaultRules
	if rulesPath != "" {
		loaded, err := loadRules(rulesPath)
		if err != nil {
			return nil, err
		}
		rules = merge(rules, loaded)
	}
	return &Router{rules: rules, flightsEnabled: flightsEnabled}, nil
}

// Endpoint patterns that make a query a route query even without route
// vocabulary.
var (
	routeFromToPattern  = regexp.MustCompile(`(?i)\bfrom\s+\S.*\s+to\s+\S`)
	routeBetweenPattern = regexp.MustCompile(`(?i)\bbetween\s+\S.*\s+and\s+\S`)
)

// Classify picks the branch for a query. First matching keyword set wins;
// anything unmatched falls through to knowledge retrieval.
func (r *Router) Classify(query string) Branch {
	lower := strings.ToLower(query)

	if r.flightsEnabled && containsAny(lower, r.rules.Flights) {
		return BranchFlights
	}
	if containsAny(lower, r.rules.Weather) {
		return BranchWeather
	}
	if containsAny(lower, r.rules.Route) ||
		routeFromToPattern.MatchString(lower) || routeBetweenPattern.MatchString(lower) {
		return BranchRoute
	}
	if containsAny(lower, r.rules.POI) {
		return BranchPOI
	}
	return BranchKnowledge
}

// containsAny reports whether any keyword occurs in the query. Single-word
// keywords match on word boundaries so "rain" does not fire on "train".
func containsAny(lower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(keyword, " ") {
			if strings.Contains(lower, keyword) {
				return true
			}
			continue
		}
		for field := range strings.FieldsSeq(lower) {
			if strings.Trim(field, "?.,!'\"") == keyword {
				return true
			}
		}
	}
	return false
}

func loadRules(path string) (RouterRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RouterRules{}, fmt.Errorf("read router rules: %w", err)
	}
	var rules RouterRules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return RouterRules{}, fmt.Errorf("parse router rules: %w", err)
	}
	return rules, nil
}

// merge overrides only the sets the file provides.
func merge(base, override RouterRules) RouterRules {
	if len(override.Flights) > 0 {
		base.Flights = override.Flights
	}
	if len(override.Weather) > 0 {
		base.Weather = override.Weather
	}
	if len(override.Route) > 0 {
		base.Route = override.Route
	}
	if len(override.POI) > 0 {
		base.POI = override.POI
	}
	return base
}
