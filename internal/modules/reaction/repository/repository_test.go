package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sukoonsphere/backend/internal/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Post{}, &entity.Reaction{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) uuid.UUID {
	t.Helper()

	user := &entity.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(user).Error)
	return user.ID
}

func TestToggleCreatesReaction(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "alice")
	contentID := uuid.New()

	oldType, newType, err := repo.Toggle(ctx, &entity.Reaction{
		UserID:      userID,
		ContentType: entity.ContentPost,
		ContentID:   contentID,
		Type:        entity.ReactionLike,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReactionType(""), oldType)
	assert.Equal(t, entity.ReactionLike, newType)

	var count int64
	db.Model(&entity.Reaction{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestToggleSameTypeRemoves(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "alice")
	contentID := uuid.New()
	reaction := func() *entity.Reaction {
		return &entity.Reaction{
			UserID:      userID,
			ContentType: entity.ContentPost,
			ContentID:   contentID,
			Type:        entity.ReactionHeart,
		}
	}

	_, _, err := repo.Toggle(ctx, reaction())
	require.NoError(t, err)

	oldType, newType, err := repo.Toggle(ctx, reaction())
	require.NoError(t, err)
	assert.Equal(t, entity.ReactionHeart, oldType)
	assert.Equal(t, entity.ReactionType(""), newType)

	var count int64
	db.Model(&entity.Reaction{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestToggleDifferentTypeReplacesInPlace(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "alice")
	contentID := uuid.New()

	_, _, err := repo.Toggle(ctx, &entity.Reaction{
		UserID:      userID,
		ContentType: entity.ContentPost,
		ContentID:   contentID,
		Type:        entity.ReactionLike,
	})
	require.NoError(t, err)

	oldType, newType, err := repo.Toggle(ctx, &entity.Reaction{
		UserID:      userID,
		ContentType: entity.ContentPost,
		ContentID:   contentID,
		Type:        entity.ReactionInsightful,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReactionLike, oldType)
	assert.Equal(t, entity.ReactionInsightful, newType)

	// Still exactly one record for this user on this content.
	var reactions []entity.Reaction
	require.NoError(t, db.Find(&reactions).Error)
	require.Len(t, reactions, 1)
	assert.Equal(t, entity.ReactionInsightful, reactions[0].Type)
}

func TestGetUserReaction(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)
	ctx := context.Background()

	userID := createTestUser(t, db, "alice")
	contentID := uuid.New()

	got, err := repo.GetUserReaction(ctx, userID, entity.ContentPost, contentID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReactionType(""), got)

	_, _, err = repo.Toggle(ctx, &entity.Reaction{
		UserID:      userID,
		ContentType: entity.ContentPost,
		ContentID:   contentID,
		Type:        entity.ReactionSupport,
	})
	require.NoError(t, err)

	got, err = repo.GetUserReaction(ctx, userID, entity.ContentPost, contentID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReactionSupport, got)
}

func TestCountByType(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)
	ctx := context.Background()

	contentID := uuid.New()
	for i, rtype := range []entity.ReactionType{
		entity.ReactionLike, entity.ReactionLike, entity.ReactionHeart,
	} {
		userID := createTestUser(t, db, "user"+string(rune('a'+i)))
		_, _, err := repo.Toggle(ctx, &entity.Reaction{
			UserID:      userID,
			ContentType: entity.ContentPost,
			ContentID:   contentID,
			Type:        rtype,
		})
		require.NoError(t, err)
	}

	counts, err := repo.CountByType(ctx, entity.ContentPost, contentID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[entity.ReactionLike])
	assert.Equal(t, int64(1), counts[entity.ReactionHeart])

	// Same content id under another content type counts separately.
	other, err := repo.CountByType(ctx, entity.ContentQuestion, contentID)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestListUsersFilterAndOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)
	ctx := context.Background()

	contentID := uuid.New()
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	for _, tc := range []struct {
		userID uuid.UUID
		rtype  entity.ReactionType
	}{
		{alice, entity.ReactionLike},
		{bob, entity.ReactionHeart},
	} {
		_, _, err := repo.Toggle(ctx, &entity.Reaction{
			UserID:      tc.userID,
			ContentType: entity.ContentPost,
			ContentID:   contentID,
			Type:        tc.rtype,
		})
		require.NoError(t, err)
	}

	all, err := repo.ListUsers(ctx, entity.ContentPost, contentID, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "alice", all[0].User.Username)
	assert.Equal(t, "bob", all[1].User.Username)

	hearts := entity.ReactionHeart
	filtered, err := repo.ListUsers(ctx, entity.ContentPost, contentID, &hearts)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "bob", filtered[0].User.Username)
}
