package transport

import "github.com/google/uuid"

// Query modes.
const (
	ModeRules = "rules"
	ModeLLM   = "llm"
	ModeAgent = "agent"
)

// QueryRequest is the body of the concierge query endpoint.
type QueryRequest struct {
	Query string `json:"query" validate:"required,min=2,max=500"`
	Mode  string `json:"mode" validate:"omitempty,oneof=rules llm agent"`
}

// QueryResponse is the response of the concierge query endpoint.
type QueryResponse struct {
	QueryID uuid.UUID `json:"queryId"`
	Branch  string    `json:"branch"`
	Answer  string    `json:"answer"`
	Mode    string    `json:"mode"`
}

// ShareRequest is the body of the share-answer endpoint.
type ShareRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Answer  string `json:"answer" validate:"required,max=10000"`
}

// ShareResponse acknowledges a shared answer.
type ShareResponse struct {
	Sent bool `json:"sent"`
}
