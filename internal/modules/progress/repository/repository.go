package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sukoonsphere/backend/internal/entity"
	"github.com/sukoonsphere/backend/pkg/apperror"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Counter columns keyed by badge action. Closed set; anything else is a
// caller programming error.
var counterColumns = map[string]string{
	"post":     "post_count",
	"answer":   "answer_count",
	"question": "question_count",
	"comment":  "comment_count",
	"like":     "like_count",
}

type ProgressRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (*entity.UserProgress, error)
	AddPoints(ctx context.Context, userID uuid.UUID, delta int) (*entity.UserProgress, error)
	IncrementCounter(ctx context.Context, userID uuid.UUID, action string) (int, error)
	SetStreak(ctx context.Context, userID uuid.UUID, streak, longest int, lastVisit time.Time) error
	HasBadge(ctx context.Context, userID uuid.UUID, badge string) (bool, error)
	AwardBadge(ctx context.Context, userID uuid.UUID, badge string) (bool, error)
	ListBadges(ctx context.Context, userID uuid.UUID) ([]string, error)
	CreatePointLog(ctx context.Context, log *entity.PointLog) error
	TopByTotalPoints(ctx context.Context, limit int) ([]entity.UserProgress, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

// Get returns the user's aggregate, or a zero-valued one when no row exists
// yet. Callers never distinguish "no row" from "fresh user".
func (r *progressRepository) Get(ctx context.Context, userID uuid.UUID) (*entity.UserProgress, error) {
	var progress entity.UserProgress
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.UserProgress{UserID: userID}, nil
		}
		return nil, err
	}
	return &progress, nil
}

// ensureRow inserts the aggregate row if missing so column increments always
// have a target. Conflicts are ignored.
func (r *progressRepository) ensureRow(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(&entity.UserProgress{UserID: userID}).Error
}

// AddPoints applies the signed delta to both balances as atomic increments,
// then clamps each at zero. The clamp is a separate statement so the
// increment itself stays a plain column expression on every dialect.
func (r *progressRepository) AddPoints(ctx context.Context, userID uuid.UUID, delta int) (*entity.UserProgress, error) {
	if err := r.ensureRow(ctx, userID); err != nil {
		return nil, err
	}

	err := r.db.WithContext(ctx).Model(&entity.UserProgress{}).
		Where("user_id = ?", userID).
		UpdateColumns(map[string]interface{}{
			"current_points": gorm.Expr("current_points + ?", delta),
			"total_points":   gorm.Expr("total_points + ?", delta),
		}).Error
	if err != nil {
		return nil, err
	}

	if delta < 0 {
		if err := r.db.WithContext(ctx).Model(&entity.UserProgress{}).
			Where("user_id = ? AND current_points < 0", userID).
			UpdateColumn("current_points", 0).Error; err != nil {
			return nil, err
		}
		if err := r.db.WithContext(ctx).Model(&entity.UserProgress{}).
			Where("user_id = ? AND total_points < 0", userID).
			UpdateColumn("total_points", 0).Error; err != nil {
			return nil, err
		}
	}

	return r.Get(ctx, userID)
}

// IncrementCounter bumps the action counter by exactly 1 and returns the new
// value. This is the only place badge counters change.
func (r *progressRepository) IncrementCounter(ctx context.Context, userID uuid.UUID, action string) (int, error) {
	column, ok := counterColumns[action]
	if !ok {
		return 0, apperror.ErrInvalidAction
	}

	if err := r.ensureRow(ctx, userID); err != nil {
		return 0, err
	}

	if err := r.db.WithContext(ctx).Model(&entity.UserProgress{}).
		Where("user_id = ?", userID).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1)).Error; err != nil {
		return 0, err
	}

	var value int
	err := r.db.WithContext(ctx).Model(&entity.UserProgress{}).
		Where("user_id = ?", userID).
		Select(column).
		Scan(&value).Error
	return value, err
}

func (r *progressRepository) SetStreak(ctx context.Context, userID uuid.UUID, streak, longest int, lastVisit time.Time) error {
	if err := r.ensureRow(ctx, userID); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&entity.UserProgress{}).
		Where("user_id = ?", userID).
		UpdateColumns(map[string]interface{}{
			"streak_count":    streak,
			"longest_streak":  longest,
			"last_visit_date": lastVisit,
		}).Error
}

func (r *progressRepository) HasBadge(ctx context.Context, userID uuid.UUID, badge string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.UserBadge{}).
		Where("user_id = ? AND badge = ?", userID, badge).
		Count(&count).Error
	return count > 0, err
}

// AwardBadge inserts the badge row, reporting false when it was already
// held. The unique (user, badge) index makes the award idempotent even under
// concurrent evaluation.
func (r *progressRepository) AwardBadge(ctx context.Context, userID uuid.UUID, badge string) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(&entity.UserBadge{UserID: userID, Badge: badge})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *progressRepository) ListBadges(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var badges []string
	err := r.db.WithContext(ctx).Model(&entity.UserBadge{}).
		Where("user_id = ?", userID).
		Order("earned_at ASC, id ASC").
		Pluck("badge", &badges).Error
	return badges, err
}

func (r *progressRepository) CreatePointLog(ctx context.Context, log *entity.PointLog) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(log).Error
}

func (r *progressRepository) TopByTotalPoints(ctx context.Context, limit int) ([]entity.UserProgress, error) {
	var stats []entity.UserProgress
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("total_points DESC").
		Limit(limit).
		Find(&stats).Error
	return stats, err
}
