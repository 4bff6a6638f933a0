package service

import (
	"context"
	"errors"
	"testing"

	"tripbuddy_backend/internal/flights/transport"
	"tripbuddy_backend/platform/logger"
)

func TestExtractParams(t *testing.T) {
	params, ok := ExtractParams("flights from ams to cdg on 2026-09-12")
	if !ok {
		t.Fatal("expected parameters to parse")
	}
	if params.Origin != "AMS" || params.Destination != "CDG" {
		t.Fatalf("got %q -> %q", params.Origin, params.Destination)
	}
	if params.DepartureDate != "2026-09-12" {
		t.Fatalf("got departure date %q", params.DepartureDate)
	}
	if params.Adults != 1 {
		t.Fatalf("expected one adult, got %d", params.Adults)
	}
}

func TestExtractParamsMissingDate(t *testing.T) {
	if _, ok := ExtractParams("flights from AMS to CDG"); ok {
		t.Fatal("expected no parameters without a date")
	}
}

type stubSearcher struct {
	params transport.SearchParams
	offers []transport.Offer
	err    error
}

func (s *stubSearcher) SearchOffers(ctx context.Context, params transport.SearchParams) ([]transport.Offer, error) {
	s.params = params
	return s.offers, s.err
}

type stubCompleter struct {
	reply string
	err   error
	calls int
}

func (s *stubCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func TestAnswerRegexParamsSkipLLM(t *testing.T) {
	searcher := &stubSearcher{}
	llm := &stubCompleter{}
	svc := New(searcher, llm, logger.New("development"))

	if _, err := svc.Answer(context.Background(), "flights from AMS to CDG on 2026-09-12"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if llm.calls != 0 {
		t.Fatalf("expected no completions, got %d", llm.calls)
	}
	if searcher.params.Origin != "AMS" || searcher.params.Destination != "CDG" {
		t.Fatalf("got %q -> %q", searcher.params.Origin, searcher.params.Destination)
	}
}

func TestAnswerUsesLLMWhenRegexFails(t *testing.T) {
	searcher := &stubSearcher{}
	llm := &stubCompleter{reply: `{"origin": "ams", "destination": "cdg", "departureDate": "2026-09-12"}`}
	svc := New(searcher, llm, logger.New("development"))

	if _, err := svc.Answer(context.Background(), "cheap flights Amsterdam Paris mid September"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if llm.calls != 1 {
		t.Fatalf("expected one completion, got %d", llm.calls)
	}
	if searcher.params.Origin != "AMS" || searcher.params.Destination != "CDG" {
		t.Fatalf("got %q -> %q", searcher.params.Origin, searcher.params.Destination)
	}
	if searcher.params.DepartureDate != "2026-09-12" {
		t.Fatalf("got departure date %q", searcher.params.DepartureDate)
	}
	if searcher.params.Adults != 1 {
		t.Fatalf("expected one adult, got %d", searcher.params.Adults)
	}
}

func TestAnswerLLMFailureYieldsUsageHint(t *testing.T) {
	searcher := &stubSearcher{}
	llm := &stubCompleter{err: errors.New("completion timed out")}
	svc := New(searcher, llm, logger.New("development"))

	answer, err := svc.Answer(context.Background(), "cheap flights Amsterdam Paris mid September")
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if answer != UsageHint {
		t.Fatalf("expected usage hint, got %q", answer)
	}
}

func TestAnswerLLMInvalidParamsYieldUsageHint(t *testing.T) {
	searcher := &stubSearcher{}
	llm := &stubCompleter{reply: `{"origin": "Amsterdam", "destination": "cdg", "departureDate": "2026-09-12"}`}
	svc := New(searcher, llm, logger.New("development"))

	answer, err := svc.Answer(context.Background(), "cheap flights Amsterdam Paris mid September")
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if answer != UsageHint {
		t.Fatalf("expected usage hint, got %q", answer)
	}
}

func TestFormatAnswer(t *testing.T) {
	params := transport.SearchParams{Origin: "AMS", Destination: "CDG", DepartureDate: "2026-09-12"}
	offers := []transport.Offer{{
		Price: transport.Price{Total: "123.45", Currency: "EUR"},
		Itineraries: []transport.Itinerary{{
			Segments: []transport.Segment{{
				Departure:   transport.Endpoint{IataCode: "AMS", At: "2026-09-12T08:00"},
				Arrival:     transport.Endpoint{IataCode: "CDG", At: "2026-09-12T09:20"},
				CarrierCode: "AF",
				Number:      "1141",
			}},
		}},
	}}

	got := FormatAnswer(params, offers)
	want := "Found 1 flight offers from AMS to CDG on 2026-09-12:\n" +
		"1. AF1141 AMS departs 2026-09-12T08:00, arrives CDG 2026-09-12T09:20, 123.45 EUR"
	if got != want {
		t.Fatalf("unexpected answer:\n got %q\nwant %q", got, want)
	}
}

func TestFormatAnswerEmpty(t *testing.T) {
	params := transport.SearchParams{Origin: "AMS", Destination: "CDG", DepartureDate: "2026-09-12"}
	if got := FormatAnswer(params, nil); got != "No flight offers found from AMS to CDG on 2026-09-12." {
		t.Fatalf("unexpected answer %q", got)
	}
}
