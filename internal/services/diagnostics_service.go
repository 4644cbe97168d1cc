package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SAP-F-2025/practice-exam-service/internal/auth"
	"github.com/SAP-F-2025/practice-exam-service/internal/policy"
	"github.com/SAP-F-2025/practice-exam-service/internal/repositories"
)

const diagnosticSampleSize = 5

type diagnosticsService struct {
	repo   repositories.Repository
	policy *policy.Policy
	logger *slog.Logger
}

func NewDiagnosticsService(repo repositories.Repository, policy *policy.Policy, logger *slog.Logger) DiagnosticsService {
	return &diagnosticsService{
		repo:   repo,
		policy: policy,
		logger: logger,
	}
}

// CheckAIData reports how much AI analysis exists for one readable exam, or
// for every exam the caller owns when examID is empty.
func (s *diagnosticsService) CheckAIData(ctx context.Context, user *auth.User, examID string) (*AIDataReport, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}

	report := &AIDataReport{
		SampleQuestions: []*QuestionResponse{},
	}

	var examIDs []string
	if examID = strings.TrimSpace(examID); examID != "" {
		exam, err := s.repo.Exam().GetByID(ctx, examID)
		if err != nil {
			if repositories.IsNotFoundError(err) {
				return nil, ErrExamNotFound
			}
			return nil, fmt.Errorf("failed to get exam: %w", err)
		}
		if !s.policy.CanReadExam(user, exam) {
			return nil, NewPermissionError(user.ID, exam.ID, "exam", "inspect", policy.ReasonNotOwner)
		}
		examIDs = []string{exam.ID}
		report.ExamID = exam.ID
		report.Scope = ScopeExam
	} else {
		ids, err := s.repo.Exam().IDsByOwner(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list owned exams: %w", err)
		}
		examIDs = ids
		report.Scope = ScopeOwnedExams
	}
	report.ExamCount = len(examIDs)

	settings, err := s.repo.AISettings().GetByUser(ctx, user.ID)
	switch {
	case err == nil:
		report.AISettingsConfigured = true
		report.AIProvider = settings.Provider
	case !repositories.IsNotFoundError(err):
		return nil, fmt.Errorf("failed to get ai settings: %w", err)
	}

	if len(examIDs) == 0 {
		return report, nil
	}

	if report.QuestionCount, err = s.repo.Question().CountByExams(ctx, examIDs); err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}
	if report.AnalyzedQuestionCount, err = s.repo.AIAnalysis().CountByExams(ctx, examIDs); err != nil {
		return nil, fmt.Errorf("failed to count ai analyses: %w", err)
	}
	report.CoveragePercent = coveragePercent(report.AnalyzedQuestionCount, report.QuestionCount)

	// Access was checked above; the viewer is passed unscoped so the sample
	// reflects exactly the exams counted.
	questions, err := s.repo.Question().List(ctx, repositories.QuestionFilters{
		Viewer:  repositories.Viewer{UserID: user.ID, IsAdmin: true},
		ExamIDs: examIDs,
		Limit:   diagnosticSampleSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sample questions: %w", err)
	}
	report.SampleQuestions = toQuestionResponses(questions)

	s.logger.Debug("AI data diagnostics",
		"user_id", user.ID,
		"scope", report.Scope,
		"questions", report.QuestionCount,
		"analyzed", report.AnalyzedQuestionCount)

	return report, nil
}
