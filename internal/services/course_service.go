package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SAP-F-2025/practice-exam-service/internal/auth"
	"github.com/SAP-F-2025/practice-exam-service/internal/models"
	"github.com/SAP-F-2025/practice-exam-service/internal/policy"
	"github.com/SAP-F-2025/practice-exam-service/internal/repositories"
)

type courseService struct {
	repo   repositories.Repository
	policy *policy.Policy
	logger *slog.Logger
}

func NewCourseService(repo repositories.Repository, policy *policy.Policy, logger *slog.Logger) CourseService {
	return &courseService{
		repo:   repo,
		policy: policy,
		logger: logger,
	}
}

func (s *courseService) GetByExam(ctx context.Context, user *auth.User, examID string) (*models.Course, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}
	if strings.TrimSpace(examID) == "" {
		return nil, ErrExamIDRequired
	}

	exam, err := s.repo.Exam().GetByID(ctx, examID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrExamNotFound
		}
		return nil, fmt.Errorf("failed to get exam: %w", err)
	}

	if !s.policy.CanReadExam(user, exam) {
		return nil, NewPermissionError(user.ID, exam.ID, "course", "read", policy.ReasonNotOwner)
	}

	course, err := s.repo.Course().GetByExamID(ctx, exam.ID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	return course, nil
}
