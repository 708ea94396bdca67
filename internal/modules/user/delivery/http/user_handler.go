package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	userDto "github.com/sukoonsphere/backend/internal/modules/user/dto"
	user "github.com/sukoonsphere/backend/internal/modules/user/service"
	"github.com/sukoonsphere/backend/pkg/response"
	"github.com/sukoonsphere/backend/pkg/validator"
)

type UserHandler struct {
	service user.AuthService
}

func NewUserHandler(service user.AuthService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req userDto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req userDto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
