package domain

import (
	"time"

	"github.com/google/uuid"

	"cv-builder/internal/model"
)

const (
	StatusPending   = "pending"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// CVJob tracks one request through validation, content generation and
// rendering. It only lives for the duration of the request.
type CVJob struct {
	ID         uuid.UUID              `json:"id"`
	Candidate  model.CandidateInput   `json:"candidate"`
	Backend    string                 `json:"backend"`
	Model      string                 `json:"model,omitempty"`
	APIKey     string                 `json:"-"`
	Theme      string                 `json:"theme"`
	Status     string                 `json:"status"`
	Content    *model.StructuredCV    `json:"content,omitempty"`
	OutputPath string                 `json:"output_path,omitempty"`
	Message    string                 `json:"message,omitempty"`
	Metadata   map[string]interface{} `json:"metadata"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

func NewCVJob(candidate model.CandidateInput, backend, modelID, apiKey, theme string) *CVJob {
	now := time.Now()
	return &CVJob{
		ID:        uuid.New(),
		Candidate: candidate,
		Backend:   backend,
		Model:     modelID,
		APIKey:    apiKey,
		Theme:     theme,
		Status:    StatusPending,
		Metadata:  map[string]interface{}{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (j *CVJob) SetStatus(status string) {
	j.Status = status
	j.UpdatedAt = time.Now()
}
