package models

import (
	"time"

	"gorm.io/datatypes"
)

// Course is the study guide generated for an exam.
type Course struct {
	ID        string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ExamID    string         `json:"exam_id" gorm:"type:uuid;not null;index"`
	UserID    string         `json:"user_id" gorm:"type:uuid;not null"`
	Title     string         `json:"title"`
	Content   datatypes.JSON `json:"content" gorm:"type:jsonb"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (Course) TableName() string {
	return "exam_courses"
}
