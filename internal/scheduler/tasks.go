// Package scheduler defines background task types and the asynq client and
// worker that process them.
package scheduler

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// TaskIndexDocuments ingests source URLs into the vector store.
const TaskIndexDocuments = "knowledge:index_documents"

// IndexDocumentsPayload is the payload of TaskIndexDocuments.
type IndexDocumentsPayload struct {
	URLs []string `json:"urls"`
}

// NewIndexDocumentsTask builds the asynq task for a set of URLs.
func NewIndexDocumentsTask(urls []string) (*asynq.Task, error) {
	payload, err := json.Marshal(IndexDocumentsPayload{URLs: urls})
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return asynq.NewTask(TaskIndexDocuments, payload, asynq.MaxRetry(3)), nil
}
