package models

import "time"

type ExamSession struct {
	ID             string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID         string     `json:"user_id" gorm:"type:uuid;not null;index"`
	ExamID         string     `json:"exam_id" gorm:"type:uuid;not null;index"`
	IsCompleted    bool       `json:"is_completed" gorm:"default:false"`
	Score          int        `json:"score" gorm:"default:0"`
	TotalQuestions int        `json:"total_questions" gorm:"default:0"`
	CorrectAnswers int        `json:"correct_answers" gorm:"default:0"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at"`
}

func (ExamSession) TableName() string {
	return "exam_sessions"
}
