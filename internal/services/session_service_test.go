package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/SAP-F-2025/practice-exam-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSessionService_Stats(t *testing.T) {
	repo := newMockRepository()
	service := NewSessionService(repo, testLogger())

	repo.sessions.On("ListByUser", mock.Anything, owner.ID, true).Return([]*models.ExamSession{
		{ID: "s1", IsCompleted: true, Score: 80},
		{ID: "s2", IsCompleted: true, Score: 90},
		{ID: "s3", IsCompleted: true, Score: 100},
	}, nil)

	resp, err := service.Stats(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, resp.Sessions, 3)
	assert.Equal(t, 90, resp.Stats.AverageScore)
	assert.Equal(t, 100, resp.Stats.BestScore)
}

func TestSessionService_Stats_Empty(t *testing.T) {
	repo := newMockRepository()
	service := NewSessionService(repo, testLogger())
	repo.sessions.On("ListByUser", mock.Anything, owner.ID, true).Return(nil, nil)

	resp, err := service.Stats(context.Background(), owner)
	require.NoError(t, err)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"sessions":[],"stats":{"totalSessions":0,"averageScore":0,"bestScore":0,"totalQuestions":0,"totalCorrect":0}}`, string(raw))
}

func TestSessionService_Stats_Error(t *testing.T) {
	repo := newMockRepository()
	service := NewSessionService(repo, testLogger())
	repo.sessions.On("ListByUser", mock.Anything, owner.ID, true).Return(nil, errors.New("boom"))

	_, err := service.Stats(context.Background(), owner)
	assert.Error(t, err)
}

func TestExportService_ExportSessions(t *testing.T) {
	repo := newMockRepository()
	service := NewExportService(repo, testLogger())

	completedAt := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	repo.sessions.On("ListByUser", mock.Anything, owner.ID, false).Return([]*models.ExamSession{
		{ID: "s1", ExamID: "e1", IsCompleted: true, Score: 80, TotalQuestions: 10, CorrectAnswers: 8, CreatedAt: completedAt.Add(-75 * time.Second), CompletedAt: &completedAt},
		{ID: "s2", ExamID: "e1", Score: 0, TotalQuestions: 10},
	}, nil)

	data, err := service.ExportSessions(context.Background(), owner)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sessionsSheetName, summarySheetName}, f.GetSheetList())

	rows, err := f.GetRows(sessionsSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, sessionExportHeaders, rows[0])
	assert.Equal(t, "s1", rows[1][0])
	assert.Equal(t, "2025-03-01T10:30:00Z", rows[1][7])
	assert.Equal(t, "1:15", rows[1][8])

	best, err := f.GetCellValue(summarySheetName, "B3")
	require.NoError(t, err)
	assert.Equal(t, "80", best)
}
