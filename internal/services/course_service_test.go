package services

import (
	"context"
	"testing"

	"github.com/SAP-F-2025/practice-exam-service/internal/models"
	"github.com/SAP-F-2025/practice-exam-service/internal/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCourseService_GetByExam(t *testing.T) {
	ctx := context.Background()
	exam := &models.Exam{ID: "e1", UserID: owner.ID}

	newService := func() (*MockRepository, CourseService) {
		repo := newMockRepository()
		return repo, NewCourseService(repo, policy.New(testAdminEmail), testLogger())
	}

	t.Run("missing id", func(t *testing.T) {
		_, service := newService()
		_, err := service.GetByExam(ctx, owner, "")
		assert.True(t, IsBadRequest(err))
	})

	t.Run("missing exam", func(t *testing.T) {
		repo, service := newService()
		repo.exams.On("GetByID", mock.Anything, "e1").Return(nil, gorm.ErrRecordNotFound)
		_, err := service.GetByExam(ctx, owner, "e1")
		assert.ErrorIs(t, err, ErrExamNotFound)
	})

	t.Run("not readable", func(t *testing.T) {
		repo, service := newService()
		repo.exams.On("GetByID", mock.Anything, "e1").Return(exam, nil)
		_, err := service.GetByExam(ctx, stranger, "e1")
		assert.True(t, IsForbidden(err))
		repo.courses.AssertNotCalled(t, "GetByExamID", mock.Anything, mock.Anything)
	})

	t.Run("no course generated", func(t *testing.T) {
		repo, service := newService()
		repo.exams.On("GetByID", mock.Anything, "e1").Return(exam, nil)
		repo.courses.On("GetByExamID", mock.Anything, "e1").Return(nil, gorm.ErrRecordNotFound)
		_, err := service.GetByExam(ctx, owner, "e1")
		assert.ErrorIs(t, err, ErrCourseNotFound)
		assert.True(t, IsNotFound(err))
	})

	t.Run("found", func(t *testing.T) {
		repo, service := newService()
		repo.exams.On("GetByID", mock.Anything, "e1").Return(exam, nil)
		repo.courses.On("GetByExamID", mock.Anything, "e1").Return(&models.Course{ID: "c1", ExamID: "e1"}, nil)
		course, err := service.GetByExam(ctx, owner, "e1")
		require.NoError(t, err)
		assert.Equal(t, "c1", course.ID)
	})
}
