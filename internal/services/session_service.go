package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/practice-exam-service/internal/auth"
	"github.com/SAP-F-2025/practice-exam-service/internal/models"
	"github.com/SAP-F-2025/practice-exam-service/internal/repositories"
)

type sessionService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewSessionService(repo repositories.Repository, logger *slog.Logger) SessionService {
	return &sessionService{
		repo:   repo,
		logger: logger,
	}
}

func (s *sessionService) Stats(ctx context.Context, user *auth.User) (*SessionStatsResponse, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}

	sessions, err := s.repo.Session().ListByUser(ctx, user.ID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	// The query already filters, but the aggregate must never count an
	// incomplete session.
	completed := CompletedSessions(sessions)
	if completed == nil {
		completed = []*models.ExamSession{}
	}

	return &SessionStatsResponse{
		Sessions: completed,
		Stats:    ComputeSessionStats(completed),
	}, nil
}
