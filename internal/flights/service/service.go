// Package service implements flight-offer answers over the Amadeus API.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"tripbuddy_backend/internal/flights/transport"
	"tripbuddy_backend/platform/apperr"
	"tripbuddy_backend/platform/logger"
)

// UsageHint is returned when a flight query carries no parsable parameters.
const UsageHint = `Please include airport codes and a date, e.g. "flights from AMS to CDG on 2026-09-12".`

// OfferSearcher is the subset of the Amadeus client the service uses.
type OfferSearcher interface {
	SearchOffers(ctx context.Context, params transport.SearchParams) ([]transport.Offer, error)
}

// Completer is an optional LLM used to extract search parameters when the
// regex patterns fail.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Service handles flight queries.
type Service struct {
	client OfferSearcher
	llm    Completer
	log    *logger.Logger
}

// New creates a new flights service. llm may be nil.
func New(client OfferSearcher, llm Completer, log *logger.Logger) *Service {
	return &Service{client: client, llm: llm, log: log}
}

var (
	iataPairPattern = regexp.MustCompile(`(?i)\bfrom\s+([A-Za-z]{3})\s+to\s+([A-Za-z]{3})\b`)
	datePattern     = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
)

// ExtractParams pulls flight search parameters out of a freeform query.
// ok is false when no origin/destination/date triple can be parsed.
func ExtractParams(query string) (transport.SearchParams, bool) {
	pair := iataPairPattern.FindStringSubmatch(query)
	date := datePattern.FindStringSubmatch(query)
	if pair == nil || date == nil {
		return transport.SearchParams{}, false
	}
	return transport.SearchParams{
		Origin:        strings.ToUpper(pair[1]),
		Destination:   strings.ToUpper(pair[2]),
		DepartureDate: date[1],
		Adults:        1,
	}, true
}

// Search fetches flight offers for structured parameters.
func (s *Service) Search(ctx context.Context, params transport.SearchParams) (transport.Response, error) {
	offers, err := s.client.SearchOffers(ctx, params)
	if err != nil {
		return transport.Response{}, apperr.Upstream("flight search failed", err).WithOp("flights.Search")
	}
	return transport.Response{
		Offers: offers,
		Answer: FormatAnswer(params, offers),
	}, nil
}

// Answer extracts parameters from a freeform flight query and returns the
// text answer. A query with no parsable parameters gets the usage hint, not
// an error.
func (s *Service) Answer(ctx context.Context, query string) (string, error) {
	params, ok := ExtractParams(query)
	if !ok && s.llm != nil {
		params, ok = s.extractWithLLM(ctx, query)
	}
	if !ok {
		return UsageHint, nil
	}

	resp, err := s.Search(ctx, params)
	if err != nil {
		return "", err
	}
	return resp.Answer, nil
}

const extractPrompt = `Extract flight search parameters from the request. ` +
	`Respond with JSON only: {"origin": "IATA", "destination": "IATA", "departureDate": "YYYY-MM-DD"}. ` +
	`Use empty strings when a value is missing.`

func (s *Service) extractWithLLM(ctx context.Context, query string) (transport.SearchParams, bool) {
	raw, err := s.llm.Complete(ctx, extractPrompt, query)
	if err != nil {
		s.log.WithContext(ctx).Warn("llm flight extraction failed", "error", err)
		return transport.SearchParams{}, false
	}

	var parsed struct {
		Origin        string `json:"origin"`
		Destination   string `json:"destination"`
		DepartureDate string `json:"departureDate"`
	}
	if err := json.Unmarshal([]byte(extractJSON(raw)), &parsed); err != nil {
		return transport.SearchParams{}, false
	}
	if len(parsed.Origin) != 3 || len(parsed.Destination) != 3 || !datePattern.MatchString(parsed.DepartureDate) {
		return transport.SearchParams{}, false
	}
	return transport.SearchParams{
		Origin:        strings.ToUpper(parsed.Origin),
		Destination:   strings.ToUpper(parsed.Destination),
		DepartureDate: parsed.DepartureDate,
		Adults:        1,
	}, true
}

func extractJSON(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return raw
	}
	return raw[start : end+1]
}

// FormatAnswer renders flight offers as a numbered readable list.
func FormatAnswer(params transport.SearchParams, offers []transport.Offer) string {
	if len(offers) == 0 {
		return fmt.Sprintf("No flight offers found from %s to %s on %s.",
			params.Origin, params.Destination, params.DepartureDate)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d flight offers from %s to %s on %s:\n",
		len(offers), params.Origin, params.Destination, params.DepartureDate)
	for i, offer := range offers {
		fmt.Fprintf(&b, "%d.", i+1)
		if len(offer.Itineraries) > 0 {
			it := offer.Itineraries[0]
			if len(it.Segments) > 0 {
				first := it.Segments[0]
				last := it.Segments[len(it.Segments)-1]
				fmt.Fprintf(&b, " %s %s departs %s, arrives %s %s",
					first.CarrierCode+first.Number, first.Departure.IataCode,
					first.Departure.At, last.Arrival.IataCode, last.Arrival.At)
				if stops := len(it.Segments) - 1; stops > 0 {
					fmt.Fprintf(&b, " (%d stops)", stops)
				}
			}
		}
		fmt.Fprintf(&b, ", %s %s", offer.Price.Total, offer.Price.Currency)
		if i < len(offers)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
