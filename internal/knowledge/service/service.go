// Package service implements document retrieval over the embedded vector
// store.
package service

import (
	"context"
	"strings"

	"tripbuddy_backend/internal/knowledge/transport"
	"tripbuddy_backend/platform/apperr"
	"tripbuddy_backend/platform/logger"
	"tripbuddy_backend/platform/qdrant"
)

// NoResultsAnswer is returned when retrieval finds nothing.
const NoResultsAnswer = "No relevant documents found."

// DefaultTopK is the number of snippets retrieved per query.
const DefaultTopK = 4

// Embedder turns text into a vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// VectorSearcher is the subset of the Qdrant client the service uses.
type VectorSearcher interface {
	Search(ctx context.Context, vector []float32, limit int) ([]qdrant.SearchResult, error)
}

// Service handles knowledge retrieval queries.
type Service struct {
	embedder Embedder
	store    VectorSearcher
	log      *logger.Logger
}

// New creates a new knowledge service.
func New(embedder Embedder, store VectorSearcher, log *logger.Logger) *Service {
	return &Service{embedder: embedder, store: store, log: log}
}

// Search embeds the query, retrieves the top-k snippets and joins them into
// an answer.
func (s *Service) Search(ctx context.Context, query string, k int) (transport.SearchResponse, error) {
	if k <= 0 {
		k = DefaultTopK
	}

	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return transport.SearchResponse{}, apperr.Upstream("query embedding failed", err).WithOp("knowledge.Search")
	}

	results, err := s.store.Search(ctx, vector, k)
	if err != nil {
		return transport.SearchResponse{}, apperr.Upstream("vector search failed", err).WithOp("knowledge.Search")
	}

	snippets := toSnippets(results)
	return transport.SearchResponse{
		Query:    query,
		Snippets: snippets,
		Answer:   FormatAnswer(snippets),
	}, nil
}

// Answer returns the text answer for a freeform knowledge query.
func (s *Service) Answer(ctx context.Context, query string) (string, error) {
	resp, err := s.Search(ctx, query, DefaultTopK)
	if err != nil {
		return "", err
	}
	return resp.Answer, nil
}

func toSnippets(results []qdrant.SearchResult) []transport.Snippet {
	snippets := make([]transport.Snippet, 0, len(results))
	for _, r := range results {
		text, _ := r.Payload["text"].(string)
		if text == "" {
			continue
		}
		source, _ := r.Payload["source"].(string)
		snippets = append(snippets, transport.Snippet{Text: text, Source: source, Score: r.Score})
	}
	return snippets
}

// FormatAnswer joins snippet texts with a blank line.
func FormatAnswer(snippets []transport.Snippet) string {
	if len(snippets) == 0 {
		return NoResultsAnswer
	}
	texts := make([]string, 0, len(snippets))
	for _, s := range snippets {
		texts = append(texts, s.Text)
	}
	return strings.Join(texts, "\n\n")
}
