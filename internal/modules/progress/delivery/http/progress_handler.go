package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	badge "github.com/sukoonsphere/backend/internal/modules/badge/service"
	points "github.com/sukoonsphere/backend/internal/modules/points/service"
	streak "github.com/sukoonsphere/backend/internal/modules/streak/service"
	"github.com/sukoonsphere/backend/pkg/response"
)

// ProgressHandler composes the caller's full gamification state out of the
// three engine services sharing the progress aggregate.
type ProgressHandler struct {
	points  points.PointsService
	badges  badge.BadgeService
	streaks streak.StreakService
}

func NewProgressHandler(pointsSvc points.PointsService, badges badge.BadgeService, streaks streak.StreakService) *ProgressHandler {
	return &ProgressHandler{
		points:  pointsSvc,
		badges:  badges,
		streaks: streaks,
	}
}

func (h *ProgressHandler) GetMyProgress(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	ctx := c.Request.Context()

	balance, err := h.points.GetBalance(ctx, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	snapshot, err := h.badges.GetProgressSnapshot(ctx, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	streakStatus, err := h.streaks.Current(ctx, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"points": balance,
		"badges": snapshot,
		"streak": streakStatus,
	}})
}
