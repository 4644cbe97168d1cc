package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/practice-exam-service/internal/services"
	"github.com/SAP-F-2025/practice-exam-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type ExamHandler struct {
	BaseHandler
	examService services.ExamService
}

func NewExamHandler(examService services.ExamService, logger utils.Logger) *ExamHandler {
	return &ExamHandler{
		BaseHandler: NewBaseHandler(logger),
		examService: examService,
	}
}

// ListExams lists the caller's exams and every sample exam
// @Summary List exams
// @Tags exams
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /exams [get]
func (h *ExamHandler) ListExams(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}

	exams, err := h.examService.List(c.Request.Context(), user)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"exams":   exams,
	})
}

// GetExam returns one exam the caller may read
// @Summary Get exam
// @Tags exams
// @Produce json
// @Param id path string true "Exam ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /exams/{id} [get]
func (h *ExamHandler) GetExam(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}
	id, ok := h.ParseStringIDParam(c, "id")
	if !ok {
		return
	}

	exam, err := h.examService.Get(c.Request.Context(), user, id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"exam":    exam,
	})
}

// DeleteExam deletes one of the caller's own, non-sample exams
// @Summary Delete exam
// @Tags exams
// @Produce json
// @Param id path string true "Exam ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /exams/{id} [delete]
func (h *ExamHandler) DeleteExam(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}
	id, ok := h.ParseStringIDParam(c, "id")
	if !ok {
		return
	}

	h.LogRequest(c, "Deleting exam", "exam_id", id)

	if err := h.examService.DeleteOwned(c.Request.Context(), user, id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Exam deleted successfully",
	})
}
