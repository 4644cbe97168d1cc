package services

import (
	"context"

	"github.com/SAP-F-2025/practice-exam-service/internal/auth"
	"github.com/SAP-F-2025/practice-exam-service/internal/models"
)

type ExamService interface {
	// List returns the caller's exams plus all samples, samples first
	List(ctx context.Context, user *auth.User) ([]*models.Exam, error)
	Get(ctx context.Context, user *auth.User, id string) (*models.Exam, error)
	// DeleteOwned is the owner route: owner only, never a sample exam
	DeleteOwned(ctx context.Context, user *auth.User, id string) error
	// DeleteAsAdmin is the admin route: any exam, admin only; returns the
	// deleted exam
	DeleteAsAdmin(ctx context.Context, user *auth.User, id string) (*models.Exam, error)
}

type QuestionService interface {
	List(ctx context.Context, user *auth.User, query QuestionQuery) ([]*QuestionResponse, error)
}

type SessionService interface {
	Stats(ctx context.Context, user *auth.User) (*SessionStatsResponse, error)
}

type ShareService interface {
	List(ctx context.Context, user *auth.User) (*ShareListResponse, error)
}

type CourseService interface {
	GetByExam(ctx context.Context, user *auth.User, examID string) (*models.Course, error)
}

type DiagnosticsService interface {
	CheckAIData(ctx context.Context, user *auth.User, examID string) (*AIDataReport, error)
}

type ExportService interface {
	ExportSessions(ctx context.Context, user *auth.User) ([]byte, error)
}

// ServiceManager hands out every service to the handler layer
type ServiceManager interface {
	Exam() ExamService
	Question() QuestionService
	Session() SessionService
	Share() ShareService
	Course() CourseService
	Diagnostics() DiagnosticsService
	Export() ExportService
}
