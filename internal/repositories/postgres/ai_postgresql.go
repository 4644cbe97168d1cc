package postgres

import (
	"context"

	"github.com/SAP-F-2025/practice-exam-service/internal/models"
	"github.com/SAP-F-2025/practice-exam-service/internal/repositories"
	"gorm.io/gorm"
)

type AIAnalysisPostgreSQL struct {
	db *gorm.DB
}

func NewAIAnalysisPostgreSQL(db *gorm.DB) repositories.AIAnalysisRepository {
	return &AIAnalysisPostgreSQL{db: db}
}

// CountByExams counts analysis rows attached to questions of the given exams
func (a *AIAnalysisPostgreSQL) CountByExams(ctx context.Context, examIDs []string) (int64, error) {
	if len(examIDs) == 0 {
		return 0, nil
	}

	var count int64
	err := a.db.WithContext(ctx).
		Model(&models.QuestionAIAnalysis{}).
		Joins("JOIN questions ON questions.id = question_ai_analysis.question_id").
		Where("questions.exam_id IN ?", examIDs).
		Count(&count).Error
	return count, err
}

type AISettingsPostgreSQL struct {
	db *gorm.DB
}

func NewAISettingsPostgreSQL(db *gorm.DB) repositories.AISettingsRepository {
	return &AISettingsPostgreSQL{db: db}
}

func (a *AISettingsPostgreSQL) GetByUser(ctx context.Context, userID string) (*models.AISettings, error) {
	var settings models.AISettings
	err := a.db.WithContext(ctx).
		Select("id", "user_id", "provider", "model", "created_at", "updated_at").
		Where("user_id = ?", userID).
		First(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}
