package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/practice-exam-service/internal/auth"
	"github.com/SAP-F-2025/practice-exam-service/internal/models"
	"github.com/SAP-F-2025/practice-exam-service/internal/repositories"
)

type shareService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewShareService(repo repositories.Repository, logger *slog.Logger) ShareService {
	return &shareService{
		repo:   repo,
		logger: logger,
	}
}

func (s *shareService) List(ctx context.Context, user *auth.User) (*ShareListResponse, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}

	given, err := s.repo.Share().ListSharedBy(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shares given: %w", err)
	}

	received, err := s.repo.Share().ListSharedWith(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shares received: %w", err)
	}

	return &ShareListResponse{
		SharesGiven:    toShareResponses(given, false),
		SharesReceived: toShareResponses(received, true),
	}, nil
}

// toShareResponses exposes the exam owner only on received shares.
func toShareResponses(shares []*models.ExamShare, withOwner bool) []*ShareResponse {
	out := make([]*ShareResponse, 0, len(shares))
	for _, sh := range shares {
		resp := &ShareResponse{
			ID:         sh.ID,
			ExamID:     sh.ExamID,
			SharedBy:   sh.SharedBy,
			SharedWith: sh.SharedWith,
			CreatedAt:  sh.CreatedAt,
		}
		if sh.Exam != nil {
			resp.Exam = &ExamSummary{
				ID:          sh.Exam.ID,
				Name:        sh.Exam.Name,
				Description: sh.Exam.Description,
			}
			if withOwner {
				resp.Exam.UserID = sh.Exam.UserID
			}
		}
		out = append(out, resp)
	}
	return out
}
