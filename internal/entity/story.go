package entity

import (
	"time"

	"github.com/google/uuid"
)

type PersonalStory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type PersonalStoryComment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	StoryID   uuid.UUID `gorm:"type:uuid;not null;index" json:"story_id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type PersonalStoryReply struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	CommentID uuid.UUID `gorm:"type:uuid;not null;index" json:"comment_id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PersonalStory) TableName() string        { return "personal_stories" }
func (PersonalStoryComment) TableName() string { return "personal_story_comments" }
func (PersonalStoryReply) TableName() string   { return "personal_story_replies" }
