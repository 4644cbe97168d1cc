package postgres

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/practice-exam-service/internal/models"
	"github.com/SAP-F-2025/practice-exam-service/internal/repositories"
	"gorm.io/gorm"
)

const questionCountSelect = "exams.*, (SELECT COUNT(*) FROM questions WHERE questions.exam_id = exams.id) AS question_count"

type ExamPostgreSQL struct {
	db *gorm.DB
}

func NewExamPostgreSQL(db *gorm.DB) repositories.ExamRepository {
	return &ExamPostgreSQL{db: db}
}

// GetByID retrieves an exam by ID
func (e *ExamPostgreSQL) GetByID(ctx context.Context, id string) (*models.Exam, error) {
	var exam models.Exam
	if err := e.db.WithContext(ctx).Where("id = ?", id).First(&exam).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

// ListVisible retrieves the user's exams and all sample exams
func (e *ExamPostgreSQL) ListVisible(ctx context.Context, userID string) ([]*models.Exam, error) {
	var exams []*models.Exam
	err := e.db.WithContext(ctx).
		Model(&models.Exam{}).
		Select(questionCountSelect).
		Where("exams.user_id = ? OR exams.is_sample = ?", userID, true).
		Find(&exams).Error
	if err != nil {
		return nil, err
	}
	return exams, nil
}

func (e *ExamPostgreSQL) IDsByOwner(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := e.db.WithContext(ctx).
		Model(&models.Exam{}).
		Where("user_id = ?", userID).
		Pluck("id", &ids).Error
	return ids, err
}

// Delete removes the exam together with its questions, AI analyses,
// sessions, shares and courses.
func (e *ExamPostgreSQL) Delete(ctx context.Context, id string) error {
	return e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		questionIDs := tx.Model(&models.Question{}).Select("id").Where("exam_id = ?", id)

		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&models.QuestionAIAnalysis{}).Error; err != nil {
			return fmt.Errorf("failed to delete question analyses: %w", err)
		}

		dependents := []struct {
			name  string
			model interface{}
		}{
			{"questions", &models.Question{}},
			{"sessions", &models.ExamSession{}},
			{"shares", &models.ExamShare{}},
			{"courses", &models.Course{}},
		}
		for _, d := range dependents {
			if err := tx.Where("exam_id = ?", id).Delete(d.model).Error; err != nil {
				return fmt.Errorf("failed to delete exam %s: %w", d.name, err)
			}
		}

		result := tx.Where("id = ?", id).Delete(&models.Exam{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete exam: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}
