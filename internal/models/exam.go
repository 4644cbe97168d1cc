package models

import "time"

type Exam struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID      string    `json:"user_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null"`
	Description *string   `json:"description" gorm:"type:text"`
	IsSample    bool      `json:"is_sample" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Computed on listing (not stored)
	QuestionCount int `json:"question_count" gorm:"->;-:migration"`
}

func (Exam) TableName() string {
	return "exams"
}

// IsOwnedBy reports whether userID is the exam's owner.
func (e *Exam) IsOwnedBy(userID string) bool {
	return userID != "" && e.UserID == userID
}
