package postgres

import (
	"context"

	"github.com/SAP-F-2025/practice-exam-service/internal/models"
	"github.com/SAP-F-2025/practice-exam-service/internal/repositories"
	"gorm.io/gorm"
)

type SessionPostgreSQL struct {
	db *gorm.DB
}

func NewSessionPostgreSQL(db *gorm.DB) repositories.SessionRepository {
	return &SessionPostgreSQL{db: db}
}

// ListByUser retrieves a user's sessions, newest first
func (s *SessionPostgreSQL) ListByUser(ctx context.Context, userID string, completedOnly bool) ([]*models.ExamSession, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if completedOnly {
		query = query.Where("is_completed = ?", true)
	}

	var sessions []*models.ExamSession
	if err := query.Order("created_at DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}
