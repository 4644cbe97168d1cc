package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/SAP-F-2025/practice-exam-service/internal/auth"
	"github.com/SAP-F-2025/practice-exam-service/internal/policy"
	"github.com/SAP-F-2025/practice-exam-service/internal/services"
	"github.com/SAP-F-2025/practice-exam-service/internal/utils"
	"github.com/gin-gonic/gin"
)

// ===== COMMON RESPONSE STRUCTURES =====

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// ===== BASE HANDLER STRUCT =====

// BaseHandler provides common logging functionality for all handlers
type BaseHandler struct {
	logger utils.Logger
}

// NewBaseHandler creates a new base handler with logging capability
func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{
		logger: logger,
	}
}

// LogRequest logs incoming HTTP requests with context information
func (h *BaseHandler) LogRequest(c *gin.Context, message string, additionalFields ...interface{}) {
	fields := []interface{}{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"remote_addr", c.ClientIP(),
		"request_id", c.GetHeader(utils.RequestIDHeader),
		"user_id", h.extractUserID(c),
		"timestamp", time.Now().Format(time.RFC3339),
	}
	fields = append(fields, additionalFields...)

	h.logger.Info(message, fields...)
}

// LogError logs error details with context information
func (h *BaseHandler) LogError(c *gin.Context, err error, message string, additionalFields ...interface{}) {
	h.logger.LogError(err, message, append(h.contextFields(c), additionalFields...)...)
}

// LogWarn logs warning messages with context
func (h *BaseHandler) LogWarn(c *gin.Context, message string, additionalFields ...interface{}) {
	h.logger.Warn(message, append(h.contextFields(c), additionalFields...)...)
}

func (h *BaseHandler) contextFields(c *gin.Context) []interface{} {
	return []interface{}{
		"request_id", c.GetHeader(utils.RequestIDHeader),
		"user_id", h.extractUserID(c),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	}
}

// Helper method to extract user ID from context
func (h *BaseHandler) extractUserID(c *gin.Context) interface{} {
	if userID, exists := c.Get(auth.UserIDContextKey); exists {
		return userID
	}
	return nil
}

// requireUser returns the authenticated caller or answers 401
func (h *BaseHandler) requireUser(c *gin.Context) (*auth.User, bool) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		h.RespondWithError(c, http.StatusUnauthorized, "Authentication required", nil)
		return nil, false
	}
	return user, true
}

// RespondWithError sends a consistent error response and logs it
func (h *BaseHandler) RespondWithError(c *gin.Context, statusCode int, message string, err error, details ...interface{}) {
	errorResp := ErrorResponse{
		Success: false,
		Error:   message,
	}

	if len(details) > 0 {
		errorResp.Details = details[0]
	}

	if err != nil {
		h.LogError(c, err, message, "status_code", statusCode)
	} else {
		h.LogWarn(c, message, "status_code", statusCode)
	}

	c.JSON(statusCode, errorResp)
}

// handleServiceError maps service errors onto HTTP statuses
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var permissionError *services.PermissionError
	if errors.As(err, &permissionError) {
		h.RespondWithError(c, http.StatusForbidden, forbiddenMessage(permissionError.Reason), nil, map[string]interface{}{
			"resource": permissionError.Resource,
			"action":   permissionError.Action,
			"reason":   permissionError.Reason,
		})
		return
	}

	switch {
	case services.IsUnauthorized(err):
		h.RespondWithError(c, http.StatusUnauthorized, "Authentication required", nil)
	case errors.Is(err, services.ErrExamNotFound):
		h.RespondWithError(c, http.StatusNotFound, "Exam not found", nil)
	case errors.Is(err, services.ErrCourseNotFound):
		h.RespondWithError(c, http.StatusNotFound, "No course has been generated for this exam", nil)
	case services.IsNotFound(err):
		h.RespondWithError(c, http.StatusNotFound, "Resource not found", nil)
	case services.IsForbidden(err):
		h.RespondWithError(c, http.StatusForbidden, "Access denied", nil)
	case services.IsBadRequest(err):
		h.RespondWithError(c, http.StatusBadRequest, err.Error(), nil)
	default:
		h.RespondWithError(c, http.StatusInternalServerError, "Internal server error", err, err.Error())
	}
}

func forbiddenMessage(reason string) string {
	switch reason {
	case policy.ReasonSampleExam:
		return "Sample exams cannot be deleted"
	case policy.ReasonNotAdmin:
		return "Admin access required"
	case policy.ReasonNotOwner:
		return "You do not have permission to access this exam"
	default:
		return "Access denied"
	}
}
