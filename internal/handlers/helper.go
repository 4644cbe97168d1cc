package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ParseStringIDParam reads a path id, answering 400 when it is blank
func (h *BaseHandler) ParseStringIDParam(c *gin.Context, param string) (string, bool) {
	idStr := strings.TrimSpace(c.Param(param))
	if idStr == "" {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid "+param, nil, "ID cannot be empty")
		return "", false
	}
	return idStr, true
}
