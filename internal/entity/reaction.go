package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReactionType is the closed set of reaction tags.
type ReactionType string

const (
	ReactionLike       ReactionType = "like"
	ReactionHeart      ReactionType = "heart"
	ReactionHaha       ReactionType = "haha"
	ReactionWow        ReactionType = "wow"
	ReactionSupport    ReactionType = "support"
	ReactionRelate     ReactionType = "relate"
	ReactionAgree      ReactionType = "agree"
	ReactionSad        ReactionType = "sad"
	ReactionAngry      ReactionType = "angry"
	ReactionInsightful ReactionType = "insightful"
)

var reactionTypes = map[ReactionType]struct{}{
	ReactionLike:       {},
	ReactionHeart:      {},
	ReactionHaha:       {},
	ReactionWow:        {},
	ReactionSupport:    {},
	ReactionRelate:     {},
	ReactionAgree:      {},
	ReactionSad:        {},
	ReactionAngry:      {},
	ReactionInsightful: {},
}

func (t ReactionType) Valid() bool {
	_, ok := reactionTypes[t]
	return ok
}

// Reaction holds at most one row per (content_type, content_id, user_id).
// Reacting again with a different type replaces the row in place; reacting
// with the same type removes it.
type Reaction struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_reactions_unique,priority:3" json:"user_id"`
	User        User         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ContentType ContentType  `gorm:"size:30;not null;uniqueIndex:idx_reactions_unique,priority:1;index:idx_reactions_lookup,priority:1" json:"content_type"`
	ContentID   uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_reactions_unique,priority:2;index:idx_reactions_lookup,priority:2" json:"content_id"`
	Type        ReactionType `gorm:"size:20;not null" json:"type"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"created_at"`
}

func (r *Reaction) TableName() string {
	return "reactions"
}

func (r *Reaction) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID, err = uuid.NewV7()
	}
	return
}
