package postgres

import (
	"github.com/SAP-F-2025/practice-exam-service/internal/repositories"
	"gorm.io/gorm"
)

type repository struct {
	exam       repositories.ExamRepository
	question   repositories.QuestionRepository
	aiAnalysis repositories.AIAnalysisRepository
	aiSettings repositories.AISettingsRepository
	session    repositories.SessionRepository
	share      repositories.ShareRepository
	course     repositories.CourseRepository
}

// NewRepository builds every table repository over one gorm handle
func NewRepository(db *gorm.DB) repositories.Repository {
	return &repository{
		exam:       NewExamPostgreSQL(db),
		question:   NewQuestionPostgreSQL(db),
		aiAnalysis: NewAIAnalysisPostgreSQL(db),
		aiSettings: NewAISettingsPostgreSQL(db),
		session:    NewSessionPostgreSQL(db),
		share:      NewSharePostgreSQL(db),
		course:     NewCoursePostgreSQL(db),
	}
}

func (r *repository) Exam() repositories.ExamRepository             { return r.exam }
func (r *repository) Question() repositories.QuestionRepository     { return r.question }
func (r *repository) AIAnalysis() repositories.AIAnalysisRepository { return r.aiAnalysis }
func (r *repository) AISettings() repositories.AISettingsRepository { return r.aiSettings }
func (r *repository) Session() repositories.SessionRepository       { return r.session }
func (r *repository) Share() repositories.ShareRepository           { return r.share }
func (r *repository) Course() repositories.CourseRepository         { return r.course }
