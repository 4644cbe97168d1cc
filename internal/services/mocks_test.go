package services

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/SAP-F-2025/practice-exam-service/internal/cache"
	"github.com/SAP-F-2025/practice-exam-service/internal/models"
	"github.com/SAP-F-2025/practice-exam-service/internal/repositories"
	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockRepository aggregates the per-table mocks
type MockRepository struct {
	exams     *MockExamRepository
	questions *MockQuestionRepository
	analyses  *MockAIAnalysisRepository
	settings  *MockAISettingsRepository
	sessions  *MockSessionRepository
	shares    *MockShareRepository
	courses   *MockCourseRepository
}

func newMockRepository() *MockRepository {
	return &MockRepository{
		exams:     new(MockExamRepository),
		questions: new(MockQuestionRepository),
		analyses:  new(MockAIAnalysisRepository),
		settings:  new(MockAISettingsRepository),
		sessions:  new(MockSessionRepository),
		shares:    new(MockShareRepository),
		courses:   new(MockCourseRepository),
	}
}

func (m *MockRepository) Exam() repositories.ExamRepository             { return m.exams }
func (m *MockRepository) Question() repositories.QuestionRepository     { return m.questions }
func (m *MockRepository) AIAnalysis() repositories.AIAnalysisRepository { return m.analyses }
func (m *MockRepository) AISettings() repositories.AISettingsRepository { return m.settings }
func (m *MockRepository) Session() repositories.SessionRepository       { return m.sessions }
func (m *MockRepository) Share() repositories.ShareRepository           { return m.shares }
func (m *MockRepository) Course() repositories.CourseRepository         { return m.courses }

type MockExamRepository struct {
	mock.Mock
}

func (m *MockExamRepository) GetByID(ctx context.Context, id string) (*models.Exam, error) {
	args := m.Called(ctx, id)
	exam, _ := args.Get(0).(*models.Exam)
	return exam, args.Error(1)
}

func (m *MockExamRepository) ListVisible(ctx context.Context, userID string) ([]*models.Exam, error) {
	args := m.Called(ctx, userID)
	exams, _ := args.Get(0).([]*models.Exam)
	return exams, args.Error(1)
}

func (m *MockExamRepository) IDsByOwner(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *MockExamRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) List(ctx context.Context, filters repositories.QuestionFilters) ([]*models.Question, error) {
	args := m.Called(ctx, filters)
	questions, _ := args.Get(0).([]*models.Question)
	return questions, args.Error(1)
}

func (m *MockQuestionRepository) CountByExams(ctx context.Context, examIDs []string) (int64, error) {
	args := m.Called(ctx, examIDs)
	return args.Get(0).(int64), args.Error(1)
}

type MockAIAnalysisRepository struct {
	mock.Mock
}

func (m *MockAIAnalysisRepository) CountByExams(ctx context.Context, examIDs []string) (int64, error) {
	args := m.Called(ctx, examIDs)
	return args.Get(0).(int64), args.Error(1)
}

type MockAISettingsRepository struct {
	mock.Mock
}

func (m *MockAISettingsRepository) GetByUser(ctx context.Context, userID string) (*models.AISettings, error) {
	args := m.Called(ctx, userID)
	settings, _ := args.Get(0).(*models.AISettings)
	return settings, args.Error(1)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) ListByUser(ctx context.Context, userID string, completedOnly bool) ([]*models.ExamSession, error) {
	args := m.Called(ctx, userID, completedOnly)
	sessions, _ := args.Get(0).([]*models.ExamSession)
	return sessions, args.Error(1)
}

type MockShareRepository struct {
	mock.Mock
}

func (m *MockShareRepository) ListSharedBy(ctx context.Context, userID string) ([]*models.ExamShare, error) {
	args := m.Called(ctx, userID)
	shares, _ := args.Get(0).([]*models.ExamShare)
	return shares, args.Error(1)
}

func (m *MockShareRepository) ListSharedWith(ctx context.Context, userID string) ([]*models.ExamShare, error) {
	args := m.Called(ctx, userID)
	shares, _ := args.Get(0).([]*models.ExamShare)
	return shares, args.Error(1)
}

type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) GetByExamID(ctx context.Context, examID string) (*models.Course, error) {
	args := m.Called(ctx, examID)
	course, _ := args.Get(0).(*models.Course)
	return course, args.Error(1)
}

// recordingCache is an in-memory cache that remembers deleted keys
type recordingCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	deleted []string
}

func newRecordingCache() *recordingCache {
	return &recordingCache{entries: make(map[string][]byte)}
}

func (c *recordingCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = data
	return nil
}

func (c *recordingCache) Get(_ context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (c *recordingCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, key)
	delete(c.entries, key)
	return nil
}

func (c *recordingCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}
