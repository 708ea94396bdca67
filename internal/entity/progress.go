package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserProgress is the per-user gamification aggregate: point balances, badge
// counters and the visit streak. All counter and balance mutations go through
// atomic column increments at the store layer, never read-then-save.
type UserProgress struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`

	// Point balances, both independently floored at zero.
	CurrentPoints int `gorm:"not null;default:0" json:"current_points"`
	TotalPoints   int `gorm:"not null;default:0" json:"total_points"`

	// Badge counters. Monotonically incremented, including on delete actions.
	PostCount     int `gorm:"not null;default:0" json:"post_count"`
	AnswerCount   int `gorm:"not null;default:0" json:"answer_count"`
	QuestionCount int `gorm:"not null;default:0" json:"question_count"`
	CommentCount  int `gorm:"not null;default:0" json:"comment_count"`
	LikeCount     int `gorm:"not null;default:0" json:"like_count"`

	// Visit streak. LastVisitDate carries a calendar date, time stripped.
	StreakCount   int        `gorm:"not null;default:0" json:"streak_count"`
	LongestStreak int        `gorm:"not null;default:0" json:"longest_streak"`
	LastVisitDate *time.Time `json:"last_visit_date,omitempty"`

	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// UserBadge rows are append-only; the unique index makes awards idempotent.
type UserBadge struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_badge,priority:1" json:"user_id"`
	User     User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Badge    string    `gorm:"size:100;not null;uniqueIndex:idx_user_badge,priority:2" json:"badge"`
	EarnedAt time.Time `gorm:"autoCreateTime" json:"earned_at"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}

// PointLog records every applied point delta for audit and leaderboards.
type PointLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_point_logs_user_date,priority:1" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	ActionKey   string    `gorm:"size:50;not null" json:"action_key"`
	Points      int       `gorm:"not null" json:"points"`
	ContentType string    `gorm:"size:30" json:"content_type"`
	ContentID   string    `gorm:"size:36" json:"content_id"`
	CreatedAt   time.Time `gorm:"index:idx_point_logs_user_date,priority:2" json:"created_at"`
}

func (PointLog) TableName() string {
	return "point_logs"
}
