package dto

import "github.com/google/uuid"

type ReactRequest struct {
	ContentType string `json:"content_type" binding:"required"`
	ContentID   string `json:"content_id" binding:"required,uuid"`
	Type        string `json:"type" binding:"required"`
}

// ReactionsResponse carries per-type counts, the derived total, and the
// caller's own reaction (nil for anonymous callers or no reaction).
type ReactionsResponse struct {
	Counts       map[string]int64 `json:"counts"`
	Total        int64            `json:"total"`
	UserReaction *string          `json:"user_reaction"`
}

type ReactingUser struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Type      string    `json:"type"`
}
