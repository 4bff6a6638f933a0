// Package service implements the concierge: it classifies free-text travel
// queries and dispatches them to the matching adapter.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tripbuddy_backend/internal/concierge/transport"
	"tripbuddy_backend/internal/events"
	"tripbuddy_backend/platform/apperr"
	"tripbuddy_backend/platform/logger"
)

// RefusalAnswer is returned when no adapter can serve the query.
const RefusalAnswer = "No suitable tool is available for this request. Please refine your request."

// Answerer produces a text answer for a freeform query. Every branch adapter
// implements this.
type Answerer interface {
	Answer(ctx context.Context, query string) (string, error)
}

// AgentRunner answers a query through the tool-calling agent.
type AgentRunner interface {
	Run(ctx context.Context, userID, query string) (string, error)
}

// Service routes and answers concierge queries.
type Service struct {
	router    *Router
	llmRouter *LLMRouter
	agent     AgentRunner
	adapters  map[Branch]Answerer
	bus       events.Bus
	log       *logger.Logger
}

// New creates the concierge service. llmRouter, agent and individual
// adapters may be nil when their backing configuration is absent.
func New(router *Router, llmRouter *LLMRouter, agent AgentRunner, adapters map[Branch]Answerer, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		router:    router,
		llmRouter: llmRouter,
		agent:     agent,
		adapters:  adapters,
		bus:       bus,
		log:       log,
	}
}

// Query answers a free-text travel query. Adapter failures become part of
// the answer text rather than an error: a query always gets a reply.
func (s *Service) Query(ctx context.Context, userID uuid.UUID, req transport.QueryRequest) (transport.QueryResponse, error) {
	queryID := uuid.New()
	ctx = context.WithValue(ctx, logger.QueryIDKey, queryID.String())
	start := time.Now()

	mode := req.Mode
	if mode == "" {
		mode = transport.ModeRules
	}

	var branch Branch
	var answer string

	switch {
	case mode == transport.ModeAgent && s.agent != nil:
		branch = "agent"
		result, err := s.agent.Run(ctx, userID.String(), req.Query)
		if err != nil {
			s.log.WithContext(ctx).Error("agent run failed", "error", err)
			answer = stringifyError(err)
		} else {
			answer = result
		}
	case mode == transport.ModeLLM && s.llmRouter != nil:
		branch = s.llmRouter.Classify(ctx, req.Query)
		answer = s.dispatch(ctx, branch, req.Query)
	default:
		mode = transport.ModeRules
		branch = s.router.Classify(req.Query)
		answer = s.dispatch(ctx, branch, req.Query)
	}

	latency := time.Since(start)
	s.log.WithContext(ctx).Info("query answered",
		"branch", string(branch), "mode", mode, "latency_ms", latency.Milliseconds())

	if s.bus != nil {
		s.bus.Publish(ctx, events.QueryAnswered{
			BaseEvent: events.NewBaseEvent(),
			QueryID:   queryID,
			UserID:    userID,
			Query:     req.Query,
			Branch:    string(branch),
			Answer:    answer,
			Mode:      mode,
			LatencyMs: latency.Milliseconds(),
		})
	}

	return transport.QueryResponse{
		QueryID: queryID,
		Branch:  string(branch),
		Answer:  answer,
		Mode:    mode,
	}, nil
}

// dispatch runs the branch adapter and converts any failure into answer
// text.
func (s *Service) dispatch(ctx context.Context, branch Branch, query string) string {
	adapter := s.adapters[branch]
	if adapter == nil {
		// A disabled branch falls through to knowledge retrieval first.
		if branch != BranchKnowledge {
			if fallback := s.adapters[BranchKnowledge]; fallback != nil {
				branch = BranchKnowledge
				adapter = fallback
			}
		}
		if adapter == nil {
			return RefusalAnswer
		}
	}

	answer, err := adapter.Answer(ctx, query)
	if err != nil {
		s.log.WithContext(ctx).Error("adapter failed", "branch", string(branch), "error", err)
		return stringifyError(err)
	}
	return answer
}

// stringifyError renders an adapter failure as a readable answer line.
func stringifyError(err error) string {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return fmt.Sprintf("Sorry, I could not complete that request: %s.", appErr.Message)
	}
	return fmt.Sprintf("Sorry, I could not complete that request: %v.", err)
}
