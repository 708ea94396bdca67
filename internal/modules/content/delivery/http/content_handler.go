package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sukoonsphere/backend/internal/entity"
	contentDto "github.com/sukoonsphere/backend/internal/modules/content/dto"
	content "github.com/sukoonsphere/backend/internal/modules/content/service"
	"github.com/sukoonsphere/backend/pkg/response"
	"github.com/sukoonsphere/backend/pkg/validator"
)

type ContentHandler struct {
	service content.ContentService
}

func NewContentHandler(service content.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

func (h *ContentHandler) CreateContent(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req contentDto.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	resp, err := h.service.CreateContent(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (h *ContentHandler) DeleteContent(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	contentType := entity.ContentType(c.Param("contentType"))
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid content id"})
		return
	}

	if err := h.service.DeleteContent(c.Request.Context(), userID, contentType, id); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "content deleted"})
}
