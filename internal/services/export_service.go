package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/practice-exam-service/internal/auth"
	"github.com/SAP-F-2025/practice-exam-service/internal/models"
	"github.com/SAP-F-2025/practice-exam-service/internal/repositories"
	"github.com/SAP-F-2025/practice-exam-service/internal/widgets"
	"github.com/xuri/excelize/v2"
)

const (
	sessionsSheetName = "Sessions"
	summarySheetName  = "Summary"
)

var sessionExportHeaders = []string{
	"Session ID", "Exam ID", "Completed", "Score", "Total Questions", "Correct Answers", "Started At", "Completed At", "Duration",
}

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		logger: logger,
	}
}

// ExportSessions writes every session of the caller, completed or not, to an
// xlsx workbook with a summary sheet over the completed ones.
func (s *exportService) ExportSessions(ctx context.Context, user *auth.User) ([]byte, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}

	sessions, err := s.repo.Session().ListByUser(ctx, user.ID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sessionsSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	for i, header := range sessionExportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sessionsSheetName, cell, header)
	}

	for rowIndex, session := range sessions {
		for colIndex, value := range sessionToRow(session) {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+2)
			f.SetCellValue(sessionsSheetName, cell, value)
		}
	}

	if err := writeSummarySheet(f, ComputeSessionStats(sessions)); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.Info("Exported sessions", "user_id", user.ID, "rows", len(sessions))
	return buf.Bytes(), nil
}

func sessionToRow(session *models.ExamSession) []interface{} {
	completedAt, duration := "", ""
	if session.CompletedAt != nil {
		completedAt = session.CompletedAt.UTC().Format(time.RFC3339)
		duration = widgets.FormatElapsed(int(session.CompletedAt.Sub(session.CreatedAt).Seconds()))
	}
	return []interface{}{
		session.ID,
		session.ExamID,
		session.IsCompleted,
		session.Score,
		session.TotalQuestions,
		session.CorrectAnswers,
		session.CreatedAt.UTC().Format(time.RFC3339),
		completedAt,
		duration,
	}
}

func writeSummarySheet(f *excelize.File, stats SessionStats) error {
	if _, err := f.NewSheet(summarySheetName); err != nil {
		return fmt.Errorf("failed to create Excel sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Total Sessions", stats.TotalSessions},
		{"Average Score", stats.AverageScore},
		{"Best Score", stats.BestScore},
		{"Total Questions", stats.TotalQuestions},
		{"Total Correct", stats.TotalCorrect},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}
	return nil
}
