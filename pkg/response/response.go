package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sukoonsphere/backend/pkg/apperror"
	"github.com/sukoonsphere/backend/pkg/logger"
)

// GetUserID retrieves the authenticated user ID from the context
func GetUserID(c *gin.Context) (uuid.UUID, error) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, apperror.ErrUnauthenticated
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		return uuid.Nil, apperror.ErrUnauthenticated
	}

	return userID, nil
}

// GetOptionalUserID returns the caller's user ID when authenticated, nil
// otherwise. Read paths tolerate anonymous callers.
func GetOptionalUserID(c *gin.Context) *uuid.UUID {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		return nil
	}
	return &userID
}

// Error writes a standardized error response
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	if code == http.StatusInternalServerError {
		logger.Get().Error().Err(err).Str("path", c.FullPath()).Msg("internal error")
	}

	c.JSON(code, gin.H{"error": err.Error()})
}
