package services

import (
	"log/slog"
	"time"

	"github.com/SAP-F-2025/practice-exam-service/internal/cache"
	"github.com/SAP-F-2025/practice-exam-service/internal/events"
	"github.com/SAP-F-2025/practice-exam-service/internal/policy"
	"github.com/SAP-F-2025/practice-exam-service/internal/repositories"
)

// Dependencies carries everything the services are built from
type Dependencies struct {
	Repo      repositories.Repository
	Policy    *policy.Policy
	Cache     cache.CacheService
	Publisher events.EventPublisher
	CacheTTL  time.Duration
	Logger    *slog.Logger
}

type serviceManager struct {
	exam        ExamService
	question    QuestionService
	session     SessionService
	share       ShareService
	course      CourseService
	diagnostics DiagnosticsService
	export      ExportService
}

func NewServiceManager(deps Dependencies) ServiceManager {
	if deps.Cache == nil {
		deps.Cache = cache.NewNoopCache()
	}
	if deps.Publisher == nil {
		deps.Publisher = events.NewMockEventPublisher(deps.Logger)
	}

	return &serviceManager{
		exam:        NewExamService(deps.Repo, deps.Policy, deps.Cache, deps.Publisher, deps.CacheTTL, deps.Logger.With("service", "exam")),
		question:    NewQuestionService(deps.Repo, deps.Policy, deps.Logger.With("service", "question")),
		session:     NewSessionService(deps.Repo, deps.Logger.With("service", "session")),
		share:       NewShareService(deps.Repo, deps.Logger.With("service", "share")),
		course:      NewCourseService(deps.Repo, deps.Policy, deps.Logger.With("service", "course")),
		diagnostics: NewDiagnosticsService(deps.Repo, deps.Policy, deps.Logger.With("service", "diagnostics")),
		export:      NewExportService(deps.Repo, deps.Logger.With("service", "export")),
	}
}

func (m *serviceManager) Exam() ExamService               { return m.exam }
func (m *serviceManager) Question() QuestionService       { return m.question }
func (m *serviceManager) Session() SessionService         { return m.session }
func (m *serviceManager) Share() ShareService             { return m.share }
func (m *serviceManager) Course() CourseService           { return m.course }
func (m *serviceManager) Diagnostics() DiagnosticsService { return m.diagnostics }
func (m *serviceManager) Export() ExportService           { return m.export }
