package service

import (
	"context"
	"testing"

	"tripbuddy_backend/platform/logger"
	"tripbuddy_backend/platform/qdrant"
)

type stubEmbedder struct{}

func (stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return []float32{0.1, 0.2}, nil
}

type stubSearcher struct {
	results []qdrant.SearchResult
}

func (s stubSearcher) Search(ctx context.Context, vector []float32, limit int) ([]qdrant.SearchResult, error) {
	return s.results, nil
}

func TestSearchJoinsSnippets(t *testing.T) {
	svc := New(stubEmbedder{}, stubSearcher{results: []qdrant.SearchResult{
		{Score: 0.9, Payload: map[string]interface{}{"text": "First snippet.", "source": "https://a"}},
		{Score: 0.8, Payload: map[string]interface{}{"text": "Second snippet."}},
	}}, logger.New("development"))

	resp, err := svc.Search(context.Background(), "visa rules", 0)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(resp.Snippets) != 2 {
		t.Fatalf("expected 2 snippets, got %d", len(resp.Snippets))
	}
	if resp.Answer != "First snippet.\n\nSecond snippet." {
		t.Fatalf("unexpected answer %q", resp.Answer)
	}
}

func TestSearchEmpty(t *testing.T) {
	svc := New(stubEmbedder{}, stubSearcher{}, logger.New("development"))

	resp, err := svc.Search(context.Background(), "anything", 4)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if resp.Answer != NoResultsAnswer {
		t.Fatalf("unexpected answer %q", resp.Answer)
	}
}

func TestFormatAnswerSkipsEmptyPayloadText(t *testing.T) {
	snippets := toSnippets([]qdrant.SearchResult{
		{Payload: map[string]interface{}{"text": ""}},
		{Payload: map[string]interface{}{"text": "kept"}},
	})
	if len(snippets) != 1 || snippets[0].Text != "kept" {
		t.Fatalf("unexpected snippets %+v", snippets)
	}
}
