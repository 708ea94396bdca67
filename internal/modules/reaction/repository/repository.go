package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sukoonsphere/backend/internal/entity"
	"gorm.io/gorm"
)

type ReactionRepository interface {
	// Toggle applies the one-record-per-user invariant: create when absent,
	// delete on same type, replace in place on different type. Returns the
	// previous and resulting types, empty string meaning none.
	Toggle(ctx context.Context, reaction *entity.Reaction) (entity.ReactionType, entity.ReactionType, error)
	GetUserReaction(ctx context.Context, userID uuid.UUID, contentType entity.ContentType, contentID uuid.UUID) (entity.ReactionType, error)
	CountByType(ctx context.Context, contentType entity.ContentType, contentID uuid.UUID) (map[entity.ReactionType]int64, error)
	ListUsers(ctx context.Context, contentType entity.ContentType, contentID uuid.UUID, typeFilter *entity.ReactionType) ([]entity.Reaction, error)
}

type reactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

func (r *reactionRepository) Toggle(ctx context.Context, reaction *entity.Reaction) (entity.ReactionType, entity.ReactionType, error) {
	// Find with a slice avoids "record not found" log noise from First()
	var existing []entity.Reaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND content_type = ? AND content_id = ?",
			reaction.UserID, reaction.ContentType, reaction.ContentID).
		Limit(1).
		Find(&existing).Error
	if err != nil {
		return "", "", err
	}

	if len(existing) == 0 {
		if err := r.db.WithContext(ctx).Create(reaction).Error; err != nil {
			return "", "", err
		}
		return "", reaction.Type, nil
	}

	record := existing[0]
	oldType := record.Type

	if record.Type == reaction.Type {
		// Same type clicked again: toggle off.
		if err := r.db.WithContext(ctx).Delete(&record).Error; err != nil {
			return "", "", err
		}
		return oldType, "", nil
	}

	// Different type: replace the row in place. A single-column update keeps
	// the swap atomic, no transient double-count.
	err = r.db.WithContext(ctx).Model(&record).
		UpdateColumn("type", reaction.Type).Error
	if err != nil {
		return "", "", err
	}
	return oldType, reaction.Type, nil
}

func (r *reactionRepository) GetUserReaction(ctx context.Context, userID uuid.UUID, contentType entity.ContentType, contentID uuid.UUID) (entity.ReactionType, error) {
	var types []entity.ReactionType
	err := r.db.WithContext(ctx).
		Model(&entity.Reaction{}).
		Where("user_id = ? AND content_type = ? AND content_id = ?", userID, contentType, contentID).
		Limit(1).
		Pluck("type", &types).Error
	if err != nil || len(types) == 0 {
		return "", err
	}
	return types[0], nil
}

func (r *reactionRepository) CountByType(ctx context.Context, contentType entity.ContentType, contentID uuid.UUID) (map[entity.ReactionType]int64, error) {
	type result struct {
		Type  entity.ReactionType
		Count int64
	}
	var results []result

	err := r.db.WithContext(ctx).
		Model(&entity.Reaction{}).
		Select("type, count(*) as count").
		Where("content_type = ? AND content_id = ?", contentType, contentID).
		Group("type").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[entity.ReactionType]int64)
	for _, res := range results {
		counts[res.Type] = res.Count
	}
	return counts, nil
}

func (r *reactionRepository) ListUsers(ctx context.Context, contentType entity.ContentType, contentID uuid.UUID, typeFilter *entity.ReactionType) ([]entity.Reaction, error) {
	query := r.db.WithContext(ctx).
		Preload("User").
		Where("content_type = ? AND content_id = ?", contentType, contentID)

	if typeFilter != nil {
		query = query.Where("type = ?", *typeFilter)
	}

	var reactions []entity.Reaction
	err := query.Order("created_at ASC").Find(&reactions).Error
	return reactions, err
}
