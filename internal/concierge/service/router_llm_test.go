package service

import (
	"context"
	"errors"
	"testing"

	"tripbuddy_backend/platform/logger"
)

type stubCompleter struct {
	reply string
	err   error
}

func (s stubCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return s.reply, s.err
}

func newLLMRouter(t *testing.T, llm Completer) *LLMRouter {
	t.Helper()
	fallback, err := NewRouter("", true)
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	return NewLLMRouter(llm, fallback, logger.New("development"))
}

func TestLLMRouterClassifyParsesJSON(t *testing.T) {
	r := newLLMRouter(t, stubCompleter{reply: `Sure! {"datasource": "weather"}`})

	if got := r.Classify(context.Background(), "what should I pack for Oslo"); got != BranchWeather {
		t.Fatalf("expected weather branch, got %s", got)
	}
}

func TestLLMRouterClassifyUnknownDatasource(t *testing.T) {
	r := newLLMRouter(t, stubCompleter{reply: `{"datasource": "horoscope"}`})

	if got := r.Classify(context.Background(), "what is my lucky number"); got != BranchKnowledge {
		t.Fatalf("expected knowledge branch, got %s", got)
	}
}

func TestLLMRouterClassifyMalformedJSONScansText(t *testing.T) {
	r := newLLMRouter(t, stubCompleter{reply: "I think route fits best here"})

	if got := r.Classify(context.Background(), "how do I get around"); got != BranchRoute {
		t.Fatalf("expected route branch, got %s", got)
	}
}

func TestLLMRouterClassifyErrorFallsBackToKeywords(t *testing.T) {
	r := newLLMRouter(t, stubCompleter{err: errors.New("completion timed out")})

	if got := r.Classify(context.Background(), "weather in Oslo"); got != BranchWeather {
		t.Fatalf("expected keyword fallback to weather, got %s", got)
	}
	if got := r.Classify(context.Background(), "best time to visit Kyoto"); got != BranchKnowledge {
		t.Fatalf("expected keyword fallback to knowledge, got %s", got)
	}
}
