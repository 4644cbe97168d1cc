package services

import (
	"math"

	"github.com/SAP-F-2025/practice-exam-service/internal/models"
)

// CompletedSessions keeps only sessions with the completion flag set
func CompletedSessions(sessions []*models.ExamSession) []*models.ExamSession {
	completed := make([]*models.ExamSession, 0, len(sessions))
	for _, s := range sessions {
		if s != nil && s.IsCompleted {
			completed = append(completed, s)
		}
	}
	return completed
}

// ComputeSessionStats folds the completed sessions into summary figures.
// Every figure is 0 when there is no completed session.
func ComputeSessionStats(sessions []*models.ExamSession) SessionStats {
	completed := CompletedSessions(sessions)

	stats := SessionStats{TotalSessions: len(completed)}
	if len(completed) == 0 {
		return stats
	}

	sum := 0
	stats.BestScore = completed[0].Score
	for _, s := range completed {
		sum += s.Score
		if s.Score > stats.BestScore {
			stats.BestScore = s.Score
		}
		stats.TotalQuestions += s.TotalQuestions
		stats.TotalCorrect += s.CorrectAnswers
	}
	stats.AverageScore = int(math.Round(float64(sum) / float64(len(completed))))

	return stats
}

// coveragePercent is part/total as a percentage with one decimal, 0 when total is 0
func coveragePercent(part, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}
