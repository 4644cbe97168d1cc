package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/practice-exam-service/internal/services"
	"github.com/SAP-F-2025/practice-exam-service/internal/utils"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type SessionHandler struct {
	BaseHandler
	sessionService services.SessionService
	exportService  services.ExportService
}

func NewSessionHandler(sessionService services.SessionService, exportService services.ExportService, logger utils.Logger) *SessionHandler {
	return &SessionHandler{
		BaseHandler:    NewBaseHandler(logger),
		sessionService: sessionService,
		exportService:  exportService,
	}
}

// GetStats returns completed sessions and their aggregate
// @Summary Session statistics
// @Tags sessions
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /session/stats [get]
func (h *SessionHandler) GetStats(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}

	resp, err := h.sessionService.Stats(c.Request.Context(), user)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"sessions": resp.Sessions,
		"stats":    resp.Stats,
	})
}

// ExportSessions streams the caller's session history as an Excel workbook
func (h *SessionHandler) ExportSessions(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}

	data, err := h.exportService.ExportSessions(c.Request.Context(), user)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="exam-sessions.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}
