package postgres

import (
	"context"

	"github.com/SAP-F-2025/practice-exam-service/internal/models"
	"github.com/SAP-F-2025/practice-exam-service/internal/repositories"
	"gorm.io/gorm"
)

type SharePostgreSQL struct {
	db *gorm.DB
}

func NewSharePostgreSQL(db *gorm.DB) repositories.ShareRepository {
	return &SharePostgreSQL{db: db}
}

// ListSharedBy retrieves shares the user created with a summary of each exam
func (s *SharePostgreSQL) ListSharedBy(ctx context.Context, userID string) ([]*models.ExamShare, error) {
	return s.list(ctx, "shared_by = ?", userID, "id", "name", "description")
}

// ListSharedWith retrieves shares addressed to the user; the exam summary
// also carries the owner id
func (s *SharePostgreSQL) ListSharedWith(ctx context.Context, userID string) ([]*models.ExamShare, error) {
	return s.list(ctx, "shared_with = ?", userID, "id", "name", "description", "user_id")
}

func (s *SharePostgreSQL) list(ctx context.Context, cond string, userID string, examColumns ...string) ([]*models.ExamShare, error) {
	var shares []*models.ExamShare
	err := s.db.WithContext(ctx).
		Where(cond, userID).
		Preload("Exam", func(db *gorm.DB) *gorm.DB {
			return db.Select(examColumns)
		}).
		Order("created_at DESC").
		Find(&shares).Error
	if err != nil {
		return nil, err
	}
	return shares, nil
}
