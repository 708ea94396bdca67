package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateContentRequest struct {
	ContentType string     `json:"content_type" binding:"required"`
	ParentID    *uuid.UUID `json:"parent_id"`
	Title       string     `json:"title"`
	Body        string     `json:"body" binding:"required"`
	URL         string     `json:"url"`
}

type ContentResponse struct {
	ID          uuid.UUID `json:"id"`
	ContentType string    `json:"content_type"`
	AuthorID    uuid.UUID `json:"author_id"`
	Title       string    `json:"title,omitempty"`
	Body        string    `json:"body"`
	URL         string    `json:"url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
