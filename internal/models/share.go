package models

import "time"

type ExamShare struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ExamID     string    `json:"exam_id" gorm:"type:uuid;not null;index"`
	SharedBy   string    `json:"shared_by" gorm:"type:uuid;not null;index"`
	SharedWith string    `json:"shared_with" gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time `json:"created_at"`

	Exam *Exam `json:"exam,omitempty" gorm:"foreignKey:ExamID"`
}

func (ExamShare) TableName() string {
	return "exam_shares"
}
