// Package service implements driving-route answers over the Google
// Directions API.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"tripbuddy_backend/internal/directions/transport"
	"tripbuddy_backend/platform/apperr"
	"tripbuddy_backend/platform/logger"
)

// UsageHint is returned when a route query carries no parsable endpoints.
const UsageHint = `Please phrase your route request as "from ORIGIN to DESTINATION".`

// RouteFetcher is the subset of the Google Directions client the service uses.
type RouteFetcher interface {
	Directions(ctx context.Context, origin, destination string) (*transport.DirectionsResult, error)
}

// Completer is an optional LLM used to extract endpoints when the regex
// patterns fail.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Service handles route queries.
type Service struct {
	client RouteFetcher
	llm    Completer
	log    *logger.Logger
}

// New creates a new directions service. llm may be nil.
func New(client RouteFetcher, llm Completer, log *logger.Logger) *Service {
	return &Service{client: client, llm: llm, log: log}
}

// Route fetches driving directions between two place names and renders them
// as step-by-step text.
func (s *Service) Route(ctx context.Context, origin, destination string) (transport.Response, error) {
	result, err := s.client.Directions(ctx, origin, destination)
	if err != nil {
		return transport.Response{}, apperr.Upstream("directions lookup failed", err).WithOp("directions.Route")
	}

	return transport.Response{
		Origin:      origin,
		Destination: destination,
		Answer:      FormatAnswer(result),
	}, nil
}

// Answer extracts endpoints from a freeform route query and returns the text
// answer. A query with no parsable endpoints gets the usage hint, not an
// error.
func (s *Service) Answer(ctx context.Context, query string) (string, error) {
	origin, destination, ok := ExtractEndpoints(query)
	if !ok && s.llm != nil {
		origin, destination, ok = s.extractWithLLM(ctx, query)
	}
	if !ok {
		return UsageHint, nil
	}

	resp, err := s.Route(ctx, origin, destination)
	if err != nil {
		return "", err
	}
	return resp.Answer, nil
}

const extractPrompt = `Extract the origin and destination from the route request. ` +
	`Respond with JSON only: {"origin": "...", "destination": "..."}. ` +
	`Use empty strings when a value is missing.`

func (s *Service) extractWithLLM(ctx context.Context, query string) (string, string, bool) {
	raw, err := s.llm.Complete(ctx, extractPrompt, query)
	if err != nil {
		s.log.WithContext(ctx).Warn("llm endpoint extraction failed", "error", err)
		return "", "", false
	}

	var parsed struct {
		Origin      string `json:"origin"`
		Destination string `json:"destination"`
	}
	if err := json.Unmarshal([]byte(extractJSON(raw)), &parsed); err != nil {
		return "", "", false
	}
	if parsed.Origin == "" || parsed.Destination == "" {
		return "", "", false
	}
	return parsed.Origin, parsed.Destination, true
}

// extractJSON trims chatter around a JSON object in an LLM reply.
func extractJSON(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return raw
	}
	return raw[start : end+1]
}

var htmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// FormatAnswer renders the first leg of the first route as
// "{instruction} for {distance}" lines.
func FormatAnswer(result *transport.DirectionsResult) string {
	if result == nil || len(result.Routes) == 0 || len(result.Routes[0].Legs) == 0 {
		return "No route found."
	}

	leg := result.Routes[0].Legs[0]
	if len(leg.Steps) == 0 {
		return "No route found."
	}

	lines := make([]string, 0, len(leg.Steps))
	for _, step := range leg.Steps {
		instruction := stripHTML(step.HTMLInstructions)
		lines = append(lines, fmt.Sprintf("%s for %s", instruction, step.Distance.Text))
	}
	return strings.Join(lines, "\n")
}

func stripHTML(s string) string {
	return strings.Join(strings.Fields(htmlTagPattern.ReplaceAllString(s, " ")), " ")
}
