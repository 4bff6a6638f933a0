package transport

import (
	"time"

	"github.com/google/uuid"
)

// Entry is an answered query as returned to clients.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	Query     string    `json:"query"`
	Branch    string    `json:"branch"`
	Answer    string    `json:"answer"`
	Mode      string    `json:"mode"`
	LatencyMs int64     `json:"latencyMs"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListRequest is the query-string form of the history endpoint.
type ListRequest struct {
	Limit  int `form:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `form:"offset" validate:"omitempty,min=0"`
}

// ListResponse is the response of the history endpoint.
type ListResponse struct {
	Entries []Entry `json:"entries"`
}
