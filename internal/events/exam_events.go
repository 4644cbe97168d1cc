package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the kinds of exam events the service emits
type EventType string

const (
	EventExamDeleted EventType = "exam.deleted"
)

const (
	eventSource  = "practice-exam-service"
	eventVersion = "1.0"
)

// ExamEvent is the envelope for every published event
type ExamEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// DeletionRoute tells consumers which endpoint removed the exam
type DeletionRoute string

const (
	DeletedByOwner DeletionRoute = "owner"
	DeletedByAdmin DeletionRoute = "admin"
)

type ExamDeletedEvent struct {
	ExamID    string        `json:"exam_id"`
	ExamName  string        `json:"exam_name"`
	OwnerID   string        `json:"owner_id"`
	WasSample bool          `json:"was_sample"`
	DeletedBy string        `json:"deleted_by"`
	Route     DeletionRoute `json:"route"`
}

// NewExamEvent wraps data in an envelope with a fresh id and timestamp
func NewExamEvent(eventType EventType, data interface{}) *ExamEvent {
	return &ExamEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    eventSource,
		Version:   eventVersion,
		Data:      data,
	}
}
