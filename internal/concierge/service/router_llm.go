package service

import (
	"context"
	"encoding/json"
	"strings"

	"tripbuddy_backend/platform/logger"
)

// Completer is the one-shot LLM call the router and extractors use.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

const routePrompt = `You are a router for a travel assistant. Classify the user query into ` +
	`exactly one datasource: "flights", "weather", "route", "poi" or "vector". ` +
	`Use "vector" for general travel knowledge questions. ` +
	`Respond with JSON only: {"datasource": "..."}.`

// LLMRouter classifies queries with a chat completion, falling back to
// keyword heuristics over the raw reply when the JSON is malformed.
type LLMRouter struct {
	llm      Completer
	fallback *Router
	log      *logger.Logger
}

// NewLLMRouter creates an LLM-backed router.
func NewLLMRouter(llm Completer, fallback *Router, log *logger.Logger) *LLMRouter {
	return &LLMRouter{llm: llm, fallback: fallback, log: log}
}

// Classify asks the model for a datasource. Any failure degrades to the
// keyword router.
func (r *LLMRouter) Classify(ctx context.Context, query string) Branch {
	raw, err := r.llm.Complete(ctx, routePrompt, query)
	if err != nil {
		r.log.WithContext(ctx).Warn("llm routing failed", "error", err)
		return r.fallback.Classify(query)
	}

	var parsed struct {
		Datasource string `json:"datasource"`
	}
	if err := json.Unmarshal([]byte(extractJSON(raw)), &parsed); err == nil && parsed.Datasource != "" {
		return branchFromDatasource(parsed.Datasource)
	}

	// Malformed JSON: scan the reply text for a datasource mention.
	return branchFromText(raw)
}

// branchFromDatasource maps a datasource value to a branch. Unknown values
// fall through to knowledge retrieval.
func branchFromDatasource(datasource string) Branch {
	switch strings.ToLower(strings.TrimSpace(datasource)) {
	case "flights", "flight":
		return BranchFlights
	case "weather":
		return BranchWeather
	case "route", "directions":
		return BranchRoute
	case "poi", "places":
		return BranchPOI
	default:
		return BranchKnowledge
	}
}

func branchFromText(raw string) Branch {
	lower := strings.ToLower(raw)
	for _, candidate := range []struct {
		word   string
		branch Branch
	}{
		{"flights", BranchFlights},
		{"flight", BranchFlights},
		{"weather", BranchWeather},
		{"route", BranchRoute},
		{"poi", BranchPOI},
	} {
		if strings.Contains(lower, candidate.word) {
			return candidate.branch
		}
	}
	return BranchKnowledge
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
