package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/practice-exam-service/internal/services"
	"github.com/SAP-F-2025/practice-exam-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type ShareHandler struct {
	BaseHandler
	shareService services.ShareService
}

func NewShareHandler(shareService services.ShareService, logger utils.Logger) *ShareHandler {
	return &ShareHandler{
		BaseHandler:  NewBaseHandler(logger),
		shareService: shareService,
	}
}

func (h *ShareHandler) ListShares(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}

	resp, err := h.shareService.List(c.Request.Context(), user)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"sharesGiven":    resp.SharesGiven,
		"sharesReceived": resp.SharesReceived,
	})
}
