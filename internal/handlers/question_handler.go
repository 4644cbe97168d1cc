package handlers

import (
	"net/http"
	"strings"

	"github.com/SAP-F-2025/practice-exam-service/internal/services"
	"github.com/SAP-F-2025/practice-exam-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	BaseHandler
	questionService services.QuestionService
}

func NewQuestionHandler(questionService services.QuestionService, logger utils.Logger) *QuestionHandler {
	return &QuestionHandler{
		BaseHandler:     NewBaseHandler(logger),
		questionService: questionService,
	}
}

// ListQuestions lists questions of readable exams
// @Summary List questions
// @Tags questions
// @Produce json
// @Param exam_id query string false "Exam ID"
// @Param ids query string false "Comma separated question IDs"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}

	query := services.QuestionQuery{
		ExamID: strings.TrimSpace(c.Query("exam_id")),
	}
	if raw, present := c.GetQuery("ids"); present {
		query.QuestionIDs = services.ParseIDList(raw)
	}

	questions, err := h.questionService.List(c.Request.Context(), user, query)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"questions": questions,
		"count":     len(questions),
	})
}
