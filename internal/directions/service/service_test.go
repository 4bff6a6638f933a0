package service

import (
	"context"
	"errors"
	"testing"

	"tripbuddy_backend/internal/directions/transport"
	"tripbuddy_backend/platform/logger"
)

type stubFetcher struct {
	origin      string
	destination string
	result      *transport.DirectionsResult
	err         error
}

func (s *stubFetcher) Directions(ctx context.Context, origin, destination string) (*transport.DirectionsResult, error) {
	s.origin = origin
	s.destination = destination
	return s.result, s.err
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

func singleStepResult() *transport.DirectionsResult {
	return &transport.DirectionsResult{Routes: []transport.Route{{
		Legs: []transport.Leg{{
			Steps: []transport.Step{{
				HTMLInstructions: "Head <b>north</b>",
				Distance:         transport.TextValue{Text: "1.2 km"},
			}},
		}},
	}}}
}

func TestAnswerRegexEndpointsSkipLLM(t *testing.T) {
	fetcher := &stubFetcher{result: singleStepResult()}
	llm := &stubCompleter{}
	svc := New(fetcher, llm, logger.New("development"))

	answer, err := svc.Answer(context.Background(), "route from Amsterdam to Paris")
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if llm.calls != 0 {
		t.Fatalf("expected no completions, got %d", llm.calls)
	}
	if fetcher.origin != "Amsterdam" || fetcher.destination != "Paris" {
		t.Fatalf("got %q -> %q", fetcher.origin, fetcher.destination)
	}
	if answer != "Head north for 1.2 km" {
		t.Fatalf("unexpected answer %q", answer)
	}
}

func TestAnswerUsesLLMWhenRegexFails(t *testing.T) {
	fetcher := &stubFetcher{result: singleStepResult()}
	llm := &stubCompleter{reply: `{"origin": "the Louvre", "destination": "Versailles"}`}
	svc := New(fetcher, llm, logger.New("development"))

	if _, err := svc.Answer(context.Background(), "how do I reach Versailles starting at the Louvre"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if llm.calls != 1 {
		t.Fatalf("expected one completion, got %d", llm.calls)
	}
	if fetcher.origin != "the Louvre" || fetcher.destination != "Versailles" {
		t.Fatalf("got %q -> %q", fetcher.origin, fetcher.destination)
	}
}

func TestAnswerLLMFailureYieldsUsageHint(t *testing.T) {
	fetcher := &stubFetcher{result: singleStepResult()}
	llm := &stubCompleter{err: errors.New("completion timed out")}
	svc := New(fetcher, llm, logger.New("development"))

	answer, err := svc.Answer(context.Background(), "how do I reach Versailles starting at the Louvre")
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if answer != UsageHint {
		t.Fatalf("expected usage hint, got %q", answer)
	}
}

func TestAnswerLLMMalformedReplyYieldsUsageHint(t *testing.T) {
	fetcher := &stubFetcher{result: singleStepResult()}
	llm := &stubCompleter{reply: "sorry, I cannot tell"}
	svc := New(fetcher, llm, logger.New("development"))

	answer, err := svc.Answer(context.Background(), "how do I reach Versailles starting at the Louvre")
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if answer != UsageHint {
		t.Fatalf("expected usage hint, got %q", answer)
	}
}

func TestAnswerWithoutLLMYieldsUsageHint(t *testing.T) {
	fetcher := &stubFetcher{result: singleStepResult()}
	svc := New(fetcher, nil, logger.New("development"))

	answer, err := svc.Answer(context.Background(), "how do I reach Versailles starting at the Louvre")
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if answer != UsageHint {
		t.Fatalf("expected usage hint, got %q", answer)
	}
}
