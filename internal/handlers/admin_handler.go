package handlers

import (
	"fmt"
	"net/http"

	"github.com/SAP-F-2025/practice-exam-service/internal/services"
	"github.com/SAP-F-2025/practice-exam-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	BaseHandler
	examService services.ExamService
}

func NewAdminHandler(examService services.ExamService, logger utils.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler: NewBaseHandler(logger),
		examService: examService,
	}
}

// DeleteExam removes any exam, sample or not. The admin check runs before
// the id is validated.
// @Summary Delete any exam
// @Tags admin
// @Produce json
// @Param exam_id path string true "Exam ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/exams/{exam_id} [delete]
func (h *AdminHandler) DeleteExam(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}

	examID := c.Param("exam_id")
	h.LogRequest(c, "Admin deleting exam", "exam_id", examID)

	exam, err := h.examService.DeleteAsAdmin(c.Request.Context(), user, examID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Exam %q deleted successfully", exam.Name),
		"exam_id": exam.ID,
	})
}
