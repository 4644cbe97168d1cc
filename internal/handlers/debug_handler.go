package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/practice-exam-service/internal/services"
	"github.com/SAP-F-2025/practice-exam-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type DebugHandler struct {
	BaseHandler
	diagnosticsService services.DiagnosticsService
}

func NewDebugHandler(diagnosticsService services.DiagnosticsService, logger utils.Logger) *DebugHandler {
	return &DebugHandler{
		BaseHandler:        NewBaseHandler(logger),
		diagnosticsService: diagnosticsService,
	}
}

// CheckAIData reports AI analysis coverage for one exam or the caller's exams
func (h *DebugHandler) CheckAIData(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}

	report, err := h.diagnosticsService.CheckAIData(c.Request.Context(), user, c.Query("exam_id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"diagnostics": report,
	})
}
