package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/practice-exam-service/internal/services"
	"github.com/SAP-F-2025/practice-exam-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	BaseHandler
	courseService services.CourseService
}

func NewCourseHandler(courseService services.CourseService, logger utils.Logger) *CourseHandler {
	return &CourseHandler{
		BaseHandler:   NewBaseHandler(logger),
		courseService: courseService,
	}
}

// GetCourse returns the course generated for a readable exam
// @Summary Get course
// @Tags courses
// @Produce json
// @Param exam_id path string true "Exam ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /courses/{exam_id} [get]
func (h *CourseHandler) GetCourse(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}
	examID, ok := h.ParseStringIDParam(c, "exam_id")
	if !ok {
		return
	}

	course, err := h.courseService.GetByExam(c.Request.Context(), user, examID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"course":  course,
	})
}
