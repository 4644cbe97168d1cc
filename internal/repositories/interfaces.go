package repositories

import (
	"context"

	"github.com/SAP-F-2025/practice-exam-service/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

// Viewer scopes a query to the rows the caller may read.
type Viewer struct {
	UserID  string
	IsAdmin bool
}

type QuestionFilters struct {
	Viewer      Viewer
	ExamIDs     []string
	QuestionIDs []string
	Limit       int
}

// ===== REPOSITORY INTERFACES =====

// ExamRepository interface for exam-specific operations
type ExamRepository interface {
	GetByID(ctx context.Context, id string) (*models.Exam, error)
	// ListVisible returns the user's own exams plus every sample exam with
	// question_count populated. Ordering is left to the caller.
	ListVisible(ctx context.Context, userID string) ([]*models.Exam, error)
	IDsByOwner(ctx context.Context, userID string) ([]string, error)
	// Delete removes the exam and every dependent row in one transaction.
	Delete(ctx context.Context, id string) error
}

type QuestionRepository interface {
	List(ctx context.Context, filters QuestionFilters) ([]*models.Question, error)
	CountByExams(ctx context.Context, examIDs []string) (int64, error)
}

type AIAnalysisRepository interface {
	CountByExams(ctx context.Context, examIDs []string) (int64, error)
}

type AISettingsRepository interface {
	GetByUser(ctx context.Context, userID string) (*models.AISettings, error)
}

type SessionRepository interface {
	ListByUser(ctx context.Context, userID string, completedOnly bool) ([]*models.ExamSession, error)
}

type ShareRepository interface {
	ListSharedBy(ctx context.Context, userID string) ([]*models.ExamShare, error)
	ListSharedWith(ctx context.Context, userID string) ([]*models.ExamShare, error)
}

type CourseRepository interface {
	GetByExamID(ctx context.Context, examID string) (*models.Course, error)
}

// Repository groups the per-table repositories behind one handle.
type Repository interface {
	Exam() ExamRepository
	Question() QuestionRepository
	AIAnalysis() AIAnalysisRepository
	AISettings() AISettingsRepository
	Session() SessionRepository
	Share() ShareRepository
	Course() CourseRepository
}
