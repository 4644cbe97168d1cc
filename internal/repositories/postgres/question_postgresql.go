package postgres

import (
	"context"

	"github.com/SAP-F-2025/practice-exam-service/internal/models"
	"github.com/SAP-F-2025/practice-exam-service/internal/repositories"
	"gorm.io/gorm"
)

type QuestionPostgreSQL struct {
	db *gorm.DB
}

func NewQuestionPostgreSQL(db *gorm.DB) repositories.QuestionRepository {
	return &QuestionPostgreSQL{db: db}
}

// List retrieves questions ordered by question number, restricted to exams
// the viewer can read.
func (q *QuestionPostgreSQL) List(ctx context.Context, filters repositories.QuestionFilters) ([]*models.Question, error) {
	query := q.db.WithContext(ctx).
		Model(&models.Question{}).
		Select("questions.*").
		Preload("AIAnalysis")

	query = applyViewerScope(query, filters.Viewer)

	if len(filters.ExamIDs) > 0 {
		query = query.Where("questions.exam_id IN ?", filters.ExamIDs)
	}
	if len(filters.QuestionIDs) > 0 {
		query = query.Where("questions.id IN ?", filters.QuestionIDs)
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	var questions []*models.Question
	if err := query.Order("questions.question_number ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (q *QuestionPostgreSQL) CountByExams(ctx context.Context, examIDs []string) (int64, error) {
	if len(examIDs) == 0 {
		return 0, nil
	}

	var count int64
	err := q.db.WithContext(ctx).
		Model(&models.Question{}).
		Where("exam_id IN ?", examIDs).
		Count(&count).Error
	return count, err
}

// applyViewerScope joins the parent exam and keeps rows the viewer owns or
// that belong to sample exams. Admins are not scoped.
func applyViewerScope(query *gorm.DB, viewer repositories.Viewer) *gorm.DB {
	if viewer.IsAdmin {
		return query
	}
	return query.
		Joins("JOIN exams ON exams.id = questions.exam_id").
		Where("(exams.user_id = ? OR exams.is_sample = ?)", viewer.UserID, true)
}
