package models

import (
	"time"

	"gorm.io/datatypes"
)

type Question struct {
	ID             string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ExamID         string         `json:"exam_id" gorm:"type:uuid;not null;index"`
	QuestionNumber int            `json:"question_number" gorm:"not null"`
	QuestionText   string         `json:"question_text" gorm:"type:text;not null"`
	Options        datatypes.JSON `json:"options" gorm:"type:jsonb"`
	CorrectAnswer  *string        `json:"correct_answer"`
	Explanation    *string        `json:"explanation" gorm:"type:text"`
	CreatedAt      time.Time      `json:"created_at"`

	// Zero or one row; the relation is loaded as a slice and collapsed by the service layer.
	AIAnalysis []QuestionAIAnalysis `json:"-" gorm:"foreignKey:QuestionID"`
}

func (Question) TableName() string {
	return "questions"
}

type QuestionAIAnalysis struct {
	ID         string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	QuestionID string         `json:"question_id" gorm:"type:uuid;uniqueIndex;not null"`
	Analysis   datatypes.JSON `json:"analysis" gorm:"type:jsonb"`
	Model      *string        `json:"model"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func (QuestionAIAnalysis) TableName() string {
	return "question_ai_analysis"
}

// AISettings is a user's AI provider selection. Credentials stored alongside
// it are never mapped.
type AISettings struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID    string    `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	Provider  string    `json:"provider"`
	Model     *string   `json:"model"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AISettings) TableName() string {
	return "ai_settings"
}
