package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sukoonsphere/backend/internal/entity"
	engagement "github.com/sukoonsphere/backend/internal/modules/engagement/service"
	reactionDto "github.com/sukoonsphere/backend/internal/modules/reaction/dto"
	reaction "github.com/sukoonsphere/backend/internal/modules/reaction/service"
	"github.com/sukoonsphere/backend/pkg/response"
	"github.com/sukoonsphere/backend/pkg/validator"
)

// ReactionHandler reads through the reaction service and writes through the
// engagement dispatcher, so every write also triggers notifications and
// scoring.
type ReactionHandler struct {
	service    reaction.ReactionService
	engagement engagement.EngagementService
}

func NewReactionHandler(service reaction.ReactionService, engagementSvc engagement.EngagementService) *ReactionHandler {
	return &ReactionHandler{service: service, engagement: engagementSvc}
}

func (h *ReactionHandler) SetReaction(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req reactionDto.ReactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	contentID, err := uuid.Parse(req.ContentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid content id"})
		return
	}

	resp, err := h.engagement.React(c.Request.Context(), userID, entity.ContentType(req.ContentType), contentID, entity.ReactionType(req.Type))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (h *ReactionHandler) GetReactions(c *gin.Context) {
	contentType := entity.ContentType(c.Param("contentType"))
	contentID, err := uuid.Parse(c.Param("contentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid content id"})
		return
	}

	userID := response.GetOptionalUserID(c)

	resp, err := h.service.GetReactions(c.Request.Context(), userID, contentType, contentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (h *ReactionHandler) ListReactingUsers(c *gin.Context) {
	contentType := entity.ContentType(c.Param("contentType"))
	contentID, err := uuid.Parse(c.Param("contentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid content id"})
		return
	}

	users, err := h.service.ListReactingUsers(c.Request.Context(), contentType, contentID, c.Query("type"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": users})
}
