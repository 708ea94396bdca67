package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	streak "github.com/sukoonsphere/backend/internal/modules/streak/service"
	"github.com/sukoonsphere/backend/pkg/response"
)

type StreakHandler struct {
	service streak.StreakService
}

func NewStreakHandler(service streak.StreakService) *StreakHandler {
	return &StreakHandler{service: service}
}

// RecordVisit advances the caller's daily streak. Clients call this once per
// app open; repeat calls on the same day are harmless.
func (h *StreakHandler) RecordVisit(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	status, err := h.service.RecordVisit(c.Request.Context(), userID, time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": status})
}

func (h *StreakHandler) GetStreak(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	status, err := h.service.Current(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": status})
}
