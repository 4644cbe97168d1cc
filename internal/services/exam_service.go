package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SAP-F-2025/practice-exam-service/internal/auth"
	"github.com/SAP-F-2025/practice-exam-service/internal/cache"
	"github.com/SAP-F-2025/practice-exam-service/internal/events"
	"github.com/SAP-F-2025/practice-exam-service/internal/models"
	"github.com/SAP-F-2025/practice-exam-service/internal/policy"
	"github.com/SAP-F-2025/practice-exam-service/internal/repositories"
)

const examCachePrefix = "exams:id:"

type examService struct {
	repo      repositories.Repository
	policy    *policy.Policy
	cache     cache.CacheService
	publisher events.EventPublisher
	cacheTTL  time.Duration
	logger    *slog.Logger
	audit     *ServiceLogger
}

func NewExamService(
	repo repositories.Repository,
	policy *policy.Policy,
	cache cache.CacheService,
	publisher events.EventPublisher,
	cacheTTL time.Duration,
	logger *slog.Logger,
) ExamService {
	return &examService{
		repo:      repo,
		policy:    policy,
		cache:     cache,
		publisher: publisher,
		cacheTTL:  cacheTTL,
		logger:    logger,
		audit:     NewServiceLogger(logger, "exam"),
	}
}

func examCacheKey(examID string) string {
	return examCachePrefix + examID
}

// SortExamsForListing orders samples first, then newest first. The sort is
// stable so equal timestamps keep their repository order.
func SortExamsForListing(exams []*models.Exam) {
	slices.SortStableFunc(exams, func(a, b *models.Exam) int {
		if a.IsSample != b.IsSample {
			if a.IsSample {
				return -1
			}
			return 1
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

func (s *examService) List(ctx context.Context, user *auth.User) ([]*models.Exam, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}

	// Exams are created outside this service, so the listing always hits
	// the repository.
	exams, err := s.repo.Exam().ListVisible(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exams: %w", err)
	}
	if exams == nil {
		exams = []*models.Exam{}
	}
	SortExamsForListing(exams)
	return exams, nil
}

func (s *examService) Get(ctx context.Context, user *auth.User, id string) (*models.Exam, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}

	exam, err := s.loadCachedExam(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.policy.CanReadExam(user, exam) {
		return nil, NewPermissionError(user.ID, exam.ID, "exam", "read", policy.ReasonNotOwner)
	}
	return exam, nil
}

func (s *examService) DeleteOwned(ctx context.Context, user *auth.User, id string) (err error) {
	if user == nil {
		return ErrUnauthorized
	}
	defer func(start time.Time) {
		s.audit.LogOperation(ctx, "delete_exam", user.ID, id, "exam", time.Since(start), err)
	}(time.Now())

	exam, err := s.loadExam(ctx, id)
	if err != nil {
		return err
	}

	if ok, reason := s.policy.CanDeleteOwnedExam(user, exam); !ok {
		return NewPermissionError(user.ID, exam.ID, "exam", "delete", reason)
	}

	if err := s.deleteExam(ctx, exam.ID); err != nil {
		return err
	}

	s.afterDelete(ctx, user, exam, events.DeletedByOwner)
	return nil
}

func (s *examService) DeleteAsAdmin(ctx context.Context, user *auth.User, id string) (_ *models.Exam, err error) {
	if user == nil {
		return nil, ErrUnauthorized
	}
	defer func(start time.Time) {
		s.audit.LogOperation(ctx, "admin_delete_exam", user.ID, id, "exam", time.Since(start), err)
	}(time.Now())

	if ok, reason := s.policy.CanDeleteAnyExam(user); !ok {
		return nil, NewPermissionError(user.ID, id, "exam", "delete", reason)
	}

	if strings.TrimSpace(id) == "" {
		return nil, ErrExamIDRequired
	}

	exam, err := s.loadExam(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.deleteExam(ctx, exam.ID); err != nil {
		return nil, err
	}

	s.logger.Info("Exam deleted by admin",
		"exam_id", exam.ID,
		"owner_id", exam.UserID,
		"is_sample", exam.IsSample)
	s.afterDelete(ctx, user, exam, events.DeletedByAdmin)
	return exam, nil
}

func (s *examService) loadExam(ctx context.Context, id string) (*models.Exam, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrExamIDRequired
	}

	exam, err := s.repo.Exam().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrExamNotFound
		}
		return nil, fmt.Errorf("failed to get exam: %w", err)
	}
	return exam, nil
}

// loadCachedExam serves reads of a single exam. Deletes go through loadExam
// so their checks always see the stored row.
func (s *examService) loadCachedExam(ctx context.Context, id string) (*models.Exam, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrExamIDRequired
	}

	key := examCacheKey(id)
	var cached models.Exam
	err := s.cache.Get(ctx, key, &cached)
	switch {
	case err == nil:
		return &cached, nil
	case !errors.Is(err, cache.ErrCacheMiss):
		s.logger.Warn("Exam cache read failed", "exam_id", id, "error", err)
	}

	exam, err := s.loadExam(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, exam, s.cacheTTL); err != nil {
		s.logger.Warn("Exam cache write failed", "exam_id", id, "error", err)
	}
	return exam, nil
}

func (s *examService) deleteExam(ctx context.Context, id string) error {
	if err := s.repo.Exam().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrExamNotFound
		}
		return fmt.Errorf("failed to delete exam: %w", err)
	}
	return nil
}

// afterDelete drops the cached exam and announces the deletion. The exam is
// already gone at this point, so failures are only logged.
func (s *examService) afterDelete(ctx context.Context, user *auth.User, exam *models.Exam, route events.DeletionRoute) {
	if err := s.cache.Delete(ctx, examCacheKey(exam.ID)); err != nil {
		s.logger.Warn("Failed to invalidate exam cache", "exam_id", exam.ID, "error", err)
	}

	event := events.NewExamEvent(events.EventExamDeleted, events.ExamDeletedEvent{
		ExamID:    exam.ID,
		ExamName:  exam.Name,
		OwnerID:   exam.UserID,
		WasSample: exam.IsSample,
		DeletedBy: cmp.Or(user.Email, user.ID),
		Route:     route,
	})
	if err := s.publisher.PublishExamEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish exam deleted event", "exam_id", exam.ID, "error", err)
	}
}
