package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"tripbuddy_backend/internal/concierge/transport"
	"tripbuddy_backend/platform/apperr"
	"tripbuddy_backend/platform/logger"
)

type stubAnswerer struct {
	answer string
	err    error
}

func (s stubAnswerer) Answer(ctx context.Context, query string) (string, error) {
	return s.answer, s.err
}

func newTestService(t *testing.T, adapters map[Branch]Answerer) *Service {
	t.Helper()
	router, err := NewRouter("", true)
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	return New(router, nil, nil, adapters, nil, logger.New("development"))
}

func TestQueryDispatchesToBranch(t *testing.T) {
	svc := newTestService(t, map[Branch]Answerer{
		BranchWeather:   stubAnswerer{answer: "sunny"},
		BranchKnowledge: stubAnswerer{answer: "from documents"},
	})

	resp, err := svc.Query(context.Background(), uuid.New(), transport.QueryRequest{Query: "weather in Oslo"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if resp.Branch != string(BranchWeather) {
		t.Fatalf("expected weather branch, got %s", resp.Branch)
	}
	if resp.Answer != "sunny" {
		t.Fatalf("unexpected answer %q", resp.Answer)
	}
	if resp.Mode != transport.ModeRules {
		t.Fatalf("expected rules mode, got %s", resp.Mode)
	}
	if resp.QueryID == uuid.Nil {
		t.Fatal("expected a query id")
	}
}

func TestQueryAdapterErrorBecomesAnswer(t *testing.T) {
	svc := newTestService(t, map[Branch]Answerer{
		BranchWeather: stubAnswerer{err: apperr.Upstream("weather lookup failed", errors.New("boom"))},
	})

	resp, err := svc.Query(context.Background(), uuid.New(), transport.QueryRequest{Query: "weather in Oslo"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if !strings.Contains(resp.Answer, "weather lookup failed") {
		t.Fatalf("expected stringified failure, got %q", resp.Answer)
	}
}

func TestQueryDisabledBranchFallsBackToKnowledge(t *testing.T) {
	svc := newTestService(t, map[Branch]Answerer{
		BranchKnowledge: stubAnswerer{answer: "from documents"},
	})

	resp, err := svc.Query(context.Background(), uuid.New(), transport.QueryRequest{Query: "weather in Oslo"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if resp.Answer != "from documents" {
		t.Fatalf("unexpected answer %q", resp.Answer)
	}
}

type stubAgent struct {
	answer string
	err    error
	runs   int
}

func (s *stubAgent) Run(ctx context.Context, userID, query string) (string, error) {
	s.runs++
	return s.answer, s.err
}

func TestQueryAgentMode(t *testing.T) {
	router, err := NewRouter("", true)
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	agent := &stubAgent{answer: "a three day itinerary"}
	svc := New(router, nil, agent, nil, nil, logger.New("development"))

	resp, err := svc.Query(context.Background(), uuid.New(), transport.QueryRequest{
		Query: "plan a trip to Lisbon",
		Mode:  transport.ModeAgent,
	})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if agent.runs != 1 {
		t.Fatalf("expected one agent run, got %d", agent.runs)
	}
	if resp.Branch != "agent" {
		t.Fatalf("expected agent branch, got %s", resp.Branch)
	}
	if resp.Answer != "a three day itinerary" {
		t.Fatalf("unexpected answer %q", resp.Answer)
	}
	if resp.Mode != transport.ModeAgent {
		t.Fatalf("expected agent mode, got %s", resp.Mode)
	}
}

func TestQueryAgentErrorBecomesAnswer(t *testing.T) {
	router, err := NewRouter("", true)
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	agent := &stubAgent{err: errors.New("model unreachable")}
	svc := New(router, nil, agent, nil, nil, logger.New("development"))

	resp, err := svc.Query(context.Background(), uuid.New(), transport.QueryRequest{
		Query: "plan a trip to Lisbon",
		Mode:  transport.ModeAgent,
	})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if !strings.Contains(resp.Answer, "model unreachable") {
		t.Fatalf("expected stringified failure, got %q", resp.Answer)
	}
}

func TestQueryAgentModeUnavailableFallsBackToRules(t *testing.T) {
	svc := newTestService(t, map[Branch]Answerer{
		BranchWeather: stubAnswerer{answer: "sunny"},
	})

	resp, err := svc.Query(context.Background(), uuid.New(), transport.QueryRequest{
		Query: "weather in Oslo",
		Mode:  transport.ModeAgent,
	})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if resp.Mode != transport.ModeRules {
		t.Fatalf("expected rules mode, got %s", resp.Mode)
	}
	if resp.Branch != string(BranchWeather) {
		t.Fatalf("expected weather branch, got %s", resp.Branch)
	}
}

func TestQueryLLMMode(t *testing.T) {
	router, err := NewRouter("", true)
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	llmRouter := NewLLMRouter(stubCompleter{reply: `{"datasource": "poi"}`}, router, logger.New("development"))
	svc := New(router, llmRouter, nil, map[Branch]Answerer{
		BranchPOI: stubAnswerer{answer: "the Colosseum"},
	}, nil, logger.New("development"))

	resp, err := svc.Query(context.Background(), uuid.New(), transport.QueryRequest{
		Query: "what is worth seeing",
		Mode:  transport.ModeLLM,
	})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if resp.Branch != string(BranchPOI) {
		t.Fatalf("expected poi branch, got %s", resp.Branch)
	}
	if resp.Answer != "the Colosseum" {
		t.Fatalf("unexpected answer %q", resp.Answer)
	}
	if resp.Mode != transport.ModeLLM {
		t.Fatalf("expected llm mode, got %s", resp.Mode)
	}
}

func TestQueryRefusalWhenNothingAvailable(t *testing.T) {
	svc := newTestService(t, map[Branch]Answerer{})

	resp, err := svc.Query(context.Background(), uuid.New(), transport.QueryRequest{Query: "weather in Oslo"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if resp.Answer != RefusalAnswer {
		t.Fatalf("unexpected answer %q", resp.Answer)
	}
}
