package services

import (
	"time"

	"github.com/SAP-F-2025/practice-exam-service/internal/models"
	"gorm.io/datatypes"
)

// ===== QUESTIONS =====

// QuestionQuery filters a question listing. A nil QuestionIDs means no id
// filter; an empty non-nil slice matches nothing.
type QuestionQuery struct {
	ExamID      string
	QuestionIDs []string
}

// QuestionResponse presents the AI analysis relation as a single object or
// null, never as a list.
type QuestionResponse struct {
	ID             string                     `json:"id"`
	ExamID         string                     `json:"exam_id"`
	QuestionNumber int                        `json:"question_number"`
	QuestionText   string                     `json:"question_text"`
	Options        datatypes.JSON             `json:"options"`
	CorrectAnswer  *string                    `json:"correct_answer"`
	Explanation    *string                    `json:"explanation"`
	CreatedAt      time.Time                  `json:"created_at"`
	AIAnalysis     *models.QuestionAIAnalysis `json:"ai_analysis"`
}

// ===== SESSIONS =====

type SessionStats struct {
	TotalSessions  int `json:"totalSessions"`
	AverageScore   int `json:"averageScore"`
	BestScore      int `json:"bestScore"`
	TotalQuestions int `json:"totalQuestions"`
	TotalCorrect   int `json:"totalCorrect"`
}

type SessionStatsResponse struct {
	Sessions []*models.ExamSession `json:"sessions"`
	Stats    SessionStats          `json:"stats"`
}

// ===== SHARES =====

type ExamSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	UserID      string  `json:"user_id,omitempty"`
}

type ShareResponse struct {
	ID         string       `json:"id"`
	ExamID     string       `json:"exam_id"`
	SharedBy   string       `json:"shared_by"`
	SharedWith string       `json:"shared_with"`
	CreatedAt  time.Time    `json:"created_at"`
	Exam       *ExamSummary `json:"exam"`
}

type ShareListResponse struct {
	SharesGiven    []*ShareResponse `json:"sharesGiven"`
	SharesReceived []*ShareResponse `json:"sharesReceived"`
}

// ===== DIAGNOSTICS =====

type DiagnosticScope string

const (
	ScopeExam       DiagnosticScope = "exam"
	ScopeOwnedExams DiagnosticScope = "owned_exams"
)

type AIDataReport struct {
	ExamID                string              `json:"exam_id,omitempty"`
	Scope                 DiagnosticScope     `json:"scope"`
	ExamCount             int                 `json:"exam_count"`
	QuestionCount         int64               `json:"question_count"`
	AnalyzedQuestionCount int64               `json:"analyzed_question_count"`
	CoveragePercent       float64             `json:"coverage_percent"`
	AISettingsConfigured  bool                `json:"ai_settings_configured"`
	AIProvider            string              `json:"ai_provider,omitempty"`
	SampleQuestions       []*QuestionResponse `json:"sample_questions"`
}
