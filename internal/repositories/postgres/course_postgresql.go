package postgres

import (
	"context"

	"github.com/SAP-F-2025/practice-exam-service/internal/models"
	"github.com/SAP-F-2025/practice-exam-service/internal/repositories"
	"gorm.io/gorm"
)

type CoursePostgreSQL struct {
	db *gorm.DB
}

func NewCoursePostgreSQL(db *gorm.DB) repositories.CourseRepository {
	return &CoursePostgreSQL{db: db}
}

// GetByExamID retrieves the most recently generated course for an exam
func (c *CoursePostgreSQL) GetByExamID(ctx context.Context, examID string) (*models.Course, error) {
	var course models.Course
	err := c.db.WithContext(ctx).
		Where("exam_id = ?", examID).
		Order("created_at DESC").
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}
