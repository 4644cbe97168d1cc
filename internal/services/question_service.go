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

type questionService struct {
	repo   repositories.Repository
	policy *policy.Policy
	logger *slog.Logger
}

func NewQuestionService(repo repositories.Repository, policy *policy.Policy, logger *slog.Logger) QuestionService {
	return &questionService{
		repo:   repo,
		policy: policy,
		logger: logger,
	}
}

// ParseIDList splits a comma separated id list, dropping blanks. The result
// is never nil, so a list of blanks filters to nothing.
func ParseIDList(raw string) []string {
	ids := []string{}
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func (s *questionService) List(ctx context.Context, user *auth.User, query QuestionQuery) ([]*QuestionResponse, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}
	if query.QuestionIDs != nil && len(query.QuestionIDs) == 0 {
		return []*QuestionResponse{}, nil
	}

	filters := repositories.QuestionFilters{
		Viewer: repositories.Viewer{
			UserID:  user.ID,
			IsAdmin: s.policy.IsAdmin(user),
		},
		QuestionIDs: query.QuestionIDs,
	}
	if query.ExamID != "" {
		filters.ExamIDs = []string{query.ExamID}
	}

	questions, err := s.repo.Question().List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	return toQuestionResponses(questions), nil
}

func toQuestionResponses(questions []*models.Question) []*QuestionResponse {
	responses := make([]*QuestionResponse, 0, len(questions))
	for _, q := range questions {
		responses = append(responses, toQuestionResponse(q))
	}
	return responses
}

// toQuestionResponse collapses the analysis relation to its first row or nil.
func toQuestionResponse(q *models.Question) *QuestionResponse {
	resp := &QuestionResponse{
		ID:             q.ID,
		ExamID:         q.ExamID,
		QuestionNumber: q.QuestionNumber,
		QuestionText:   q.QuestionText,
		Options:        q.Options,
		CorrectAnswer:  q.CorrectAnswer,
		Explanation:    q.Explanation,
		CreatedAt:      q.CreatedAt,
	}
	if len(q.AIAnalysis) > 0 {
		analysis := q.AIAnalysis[0]
		resp.AIAnalysis = &analysis
	}
	return resp
}
