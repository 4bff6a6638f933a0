// Package agent runs concierge queries through a tool-calling ADK agent
// instead of the keyword router, letting the model pick and combine
// adapters per request.
package agent

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"

	"tripbuddy_backend/platform/ai/openaichat"
	"tripbuddy_backend/platform/logger"
)

const appName = "travel_concierge"

const systemPrompt = `You are a travel concierge. Answer the traveler's request by calling the ` +
	`most suitable tool. Prefer a single tool call; combine tools only when the request clearly ` +
	`spans several topics. Relay tool answers faithfully and keep replies short. If no tool fits, ` +
	`say so and ask the traveler to refine the request.`

// Concierge is the tool-calling agent behind agent mode.
type Concierge struct {
	agent          agent.Agent
	runner         *runner.Runner
	sessionService session.Service
	log            *logger.Logger
}

// New builds the concierge agent over an OpenAI-compatible model.
func New(model *openaichat.ChatModel, deps *ToolDependencies, log *logger.Logger) (*Concierge, error) {
	tools, err := buildTools(deps)
	if err != nil {
		return nil, err
	}

	adkAgent, err := llmagent.New(llmagent.Config{
		Name:        "TravelConcierge",
		Model:       model,
		Description: "Travel concierge that answers questions about places, weather, routes, flights and general travel knowledge using dedicated tools.",
		Instruction: systemPrompt,
		Tools:       tools,
	})
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}

	sessionService := session.InMemoryService()

	r, err := runner.New(runner.Config{
		AppName:        appName,
		Agent:          adkAgent,
		SessionService: sessionService,
	})
	if err != nil {
		return nil, fmt.Errorf("create runner: %w", err)
	}

	return &Concierge{
		agent:          adkAgent,
		runner:         r,
		sessionService: sessionService,
		log:            log,
	}, nil
}

// Run answers a single query in a throwaway session.
func (c *Concierge) Run(ctx context.Context, userID, query string) (string, error) {
	sessionID := uuid.New().String()

	if _, err := c.sessionService.Create(ctx, &session.CreateRequest{
		AppName:   appName,
		UserID:    userID,
		SessionID: sessionID,
	}); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	defer func() {
		deleteReq := &session.DeleteRequest{
			AppName:   appName,
			UserID:    userID,
			SessionID: sessionID,
		}
		if err := c.sessionService.Delete(ctx, deleteReq); err != nil {
			c.log.Warn("failed to delete agent session", "session_id", sessionID, "error", err)
		}
	}()

	userMessage := &genai.Content{
		Role:  "user",
		Parts: []*genai.Part{{Text: query}},
	}
	runConfig := agent.RunConfig{
		StreamingMode: agent.StreamingModeNone,
	}

	var output string
	for event, err := range c.runner.Run(ctx, userID, sessionID, userMessage, runConfig) {
		if err != nil {
			return "", fmt.Errorf("agent run failed: %w", err)
		}
		if event.Content != nil {
			for _, part := range event.Content.Parts {
				output += part.Text
			}
		}
	}
	return output, nil
}
