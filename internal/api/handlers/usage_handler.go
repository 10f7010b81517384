package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/services"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/utils"
	"github.com/gin-gonic/gin"
)

type UsageHandler struct {
	svc services.UsageService
}

func NewUsageHandler(svc services.UsageService) *UsageHandler {
	return &UsageHandler{svc: svc}
}

// Recent handles GET /api/admin/usage?limit=50.
func (h *UsageHandler) Recent(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "UsageHandler.Recent", "limit must be a number", err))
		return
	}

	out, err := h.svc.ListRecent(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": out})
}

// Summary handles GET /api/admin/usage/summary?window=24h.
func (h *UsageHandler) Summary(c *gin.Context) {
	window, err := time.ParseDuration(c.DefaultQuery("window", "24h"))
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "UsageHandler.Summary", "window must be a duration like 24h", err))
		return
	}

	out, err := h.svc.Summary(c.Request.Context(), window)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"window": window.String(), "summary": out})
}
