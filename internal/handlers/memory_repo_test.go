package handlers

import (
	"context"
	"slices"
	"sync"

	"github.com/SAP-F-2025/practice-exam-service/internal/models"
	"github.com/SAP-F-2025/practice-exam-service/internal/repositories"
	"gorm.io/gorm"
)

// memoryRepo is an in-memory repositories.Repository for router tests
type memoryRepo struct {
	mu        sync.Mutex
	exams     map[string]*models.Exam
	questions []*models.Question
	sessions  []*models.ExamSession
	shares    []*models.ExamShare
	courses   []*models.Course
	settings  map[string]*models.AISettings
	failWith  error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		exams:    make(map[string]*models.Exam),
		settings: make(map[string]*models.AISettings),
	}
}

func (r *memoryRepo) Exam() repositories.ExamRepository             { return memoryExams{r} }
func (r *memoryRepo) Question() repositories.QuestionRepository     { return memoryQuestions{r} }
func (r *memoryRepo) AIAnalysis() repositories.AIAnalysisRepository { return memoryAnalyses{r} }
func (r *memoryRepo) AISettings() repositories.AISettingsRepository { return memorySettings{r} }
func (r *memoryRepo) Session() repositories.SessionRepository       { return memorySessions{r} }
func (r *memoryRepo) Share() repositories.ShareRepository           { return memoryShares{r} }
func (r *memoryRepo) Course() repositories.CourseRepository         { return memoryCourses{r} }

func (r *memoryRepo) questionCount(examID string) int {
	n := 0
	for _, q := range r.questions {
		if q.ExamID == examID {
			n++
		}
	}
	return n
}

type memoryExams struct{ r *memoryRepo }

func (m memoryExams) GetByID(_ context.Context, id string) (*models.Exam, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	if m.r.failWith != nil {
		return nil, m.r.failWith
	}
	exam, ok := m.r.exams[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *exam
	return &cp, nil
}

func (m memoryExams) ListVisible(_ context.Context, userID string) ([]*models.Exam, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	if m.r.failWith != nil {
		return nil, m.r.failWith
	}
	var out []*models.Exam
	for _, e := range m.r.exams {
		if e.UserID == userID || e.IsSample {
			cp := *e
			cp.QuestionCount = m.r.questionCount(e.ID)
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m memoryExams) IDsByOwner(_ context.Context, userID string) ([]string, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	var ids []string
	for _, e := range m.r.exams {
		if e.UserID == userID {
			ids = append(ids, e.ID)
		}
	}
	return ids, nil
}

func (m memoryExams) Delete(_ context.Context, id string) error {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	if _, ok := m.r.exams[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.r.exams, id)
	m.r.questions = slices.DeleteFunc(m.r.questions, func(q *models.Question) bool { return q.ExamID == id })
	m.r.sessions = slices.DeleteFunc(m.r.sessions, func(s *models.ExamSession) bool { return s.ExamID == id })
	m.r.shares = slices.DeleteFunc(m.r.shares, func(s *models.ExamShare) bool { return s.ExamID == id })
	m.r.courses = slices.DeleteFunc(m.r.courses, func(c *models.Course) bool { return c.ExamID == id })
	return nil
}

type memoryQuestions struct{ r *memoryRepo }

func (m memoryQuestions) List(_ context.Context, filters repositories.QuestionFilters) ([]*models.Question, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	var out []*models.Question
	for _, q := range m.r.questions {
		exam, ok := m.r.exams[q.ExamID]
		if !ok {
			continue
		}
		if !filters.Viewer.IsAdmin && exam.UserID != filters.Viewer.UserID && !exam.IsSample {
			continue
		}
		if len(filters.ExamIDs) > 0 && !slices.Contains(filters.ExamIDs, q.ExamID) {
			continue
		}
		if len(filters.QuestionIDs) > 0 && !slices.Contains(filters.QuestionIDs, q.ID) {
			continue
		}
		out = append(out, q)
	}
	slices.SortFunc(out, func(a, b *models.Question) int { return a.QuestionNumber - b.QuestionNumber })
	if filters.Limit > 0 && len(out) > filters.Limit {
		out = out[:filters.Limit]
	}
	return out, nil
}

func (m memoryQuestions) CountByExams(_ context.Context, examIDs []string) (int64, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	var n int64
	for _, q := range m.r.questions {
		if slices.Contains(examIDs, q.ExamID) {
			n++
		}
	}
	return n, nil
}

type memoryAnalyses struct{ r *memoryRepo }

func (m memoryAnalyses) CountByExams(_ context.Context, examIDs []string) (int64, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	var n int64
	for _, q := range m.r.questions {
		if slices.Contains(examIDs, q.ExamID) && len(q.AIAnalysis) > 0 {
			n++
		}
	}
	return n, nil
}

type memorySettings struct{ r *memoryRepo }

func (m memorySettings) GetByUser(_ context.Context, userID string) (*models.AISettings, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	if s, ok := m.r.settings[userID]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type memorySessions struct{ r *memoryRepo }

func (m memorySessions) ListByUser(_ context.Context, userID string, completedOnly bool) ([]*models.ExamSession, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	if m.r.failWith != nil {
		return nil, m.r.failWith
	}
	var out []*models.ExamSession
	for _, s := range m.r.sessions {
		if s.UserID == userID && (!completedOnly || s.IsCompleted) {
			out = append(out, s)
		}
	}
	return out, nil
}

type memoryShares struct{ r *memoryRepo }

func (m memoryShares) list(match func(*models.ExamShare) bool) []*models.ExamShare {
	var out []*models.ExamShare
	for _, s := range m.r.shares {
		if match(s) {
			cp := *s
			if exam, ok := m.r.exams[s.ExamID]; ok {
				e := *exam
				cp.Exam = &e
			}
			out = append(out, &cp)
		}
	}
	return out
}

func (m memoryShares) ListSharedBy(_ context.Context, userID string) ([]*models.ExamShare, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	return m.list(func(s *models.ExamShare) bool { return s.SharedBy == userID }), nil
}

func (m memoryShares) ListSharedWith(_ context.Context, userID string) ([]*models.ExamShare, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	if m.r.failWith != nil {
		return nil, m.r.failWith
	}
	return m.list(func(s *models.ExamShare) bool { return s.SharedWith == userID }), nil
}

type memoryCourses struct{ r *memoryRepo }

func (m memoryCourses) GetByExamID(_ context.Context, examID string) (*models.Course, error) {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	for _, c := range m.r.courses {
		if c.ExamID == examID {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
