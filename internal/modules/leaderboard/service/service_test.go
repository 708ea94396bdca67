package leaderboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sukoonsphere/backend/internal/entity"
	progressRepo "github.com/sukoonsphere/backend/internal/modules/progress/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestRankForBoundaries(t *testing.T) {
	cases := []struct {
		points   int
		rank     string
		nextRank string
	}{
		{0, "Newcomer", "Contributor"},
		{99, "Newcomer", "Contributor"},
		{100, "Contributor", "Advocate"},
		{599, "Contributor", "Advocate"},
		{600, "Advocate", "Luminary"},
		{3000, "Luminary", "Veteran"},
		{8000, "Veteran", "Legend"},
		{19999, "Veteran", "Legend"},
		{20000, "Legend", "Max Level"},
		{50000, "Legend", "Max Level"},
	}

	for _, tc := range cases {
		status := RankFor(tc.points)
		assert.Equal(t, tc.rank, status.RankName, "points=%d", tc.points)
		assert.Equal(t, tc.nextRank, status.NextRank, "points=%d", tc.points)
		assert.Equal(t, tc.points, status.CurrentPoints)
	}
}

func TestRankForProgress(t *testing.T) {
	status := RankFor(300)
	assert.Equal(t, PointsAdvocate, status.TargetPoints)
	assert.Equal(t, 50.0, status.Progress)

	assert.Equal(t, 100.0, RankFor(20000).Progress)
	assert.Equal(t, 0.0, RankFor(0).Progress)
}

func TestGetLeaderboardOrdersByTotalPoints(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.UserProgress{}))

	for _, tc := range []struct {
		username string
		total    int
	}{
		{"carol", 150},
		{"alice", 700},
		{"bob", 20},
	} {
		user := &entity.User{Username: tc.username, Email: tc.username + "@example.com", PasswordHash: "x"}
		require.NoError(t, db.Create(user).Error)
		require.NoError(t, db.Omit("User").Create(&entity.UserProgress{
			UserID:        user.ID,
			TotalPoints:   tc.total,
			CurrentPoints: tc.total,
		}).Error)
	}

	svc := NewLeaderboardService(progressRepo.NewProgressRepository(db))

	entries, err := svc.GetLeaderboard(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "alice", entries[0].Username)
	assert.Equal(t, 1, entries[0].Position)
	assert.Equal(t, "Advocate", entries[0].RankStatus.RankName)

	assert.Equal(t, "carol", entries[1].Username)
	assert.Equal(t, "Contributor", entries[1].RankStatus.RankName)

	assert.Equal(t, "bob", entries[2].Username)
	assert.Equal(t, "Newcomer", entries[2].RankStatus.RankName)
}

func TestGetLeaderboardLimit(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.UserProgress{}))

	for _, username := range []string{"a", "b", "c"} {
		user := &entity.User{Username: username, Email: username + "@example.com", PasswordHash: "x"}
		require.NoError(t, db.Create(user).Error)
		require.NoError(t, db.Omit("User").Create(&entity.UserProgress{UserID: user.ID, TotalPoints: 10}).Error)
	}

	svc := NewLeaderboardService(progressRepo.NewProgressRepository(db))

	entries, err := svc.GetLeaderboard(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
