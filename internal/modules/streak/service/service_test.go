package streak

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sukoonsphere/backend/internal/entity"
	progressRepo "github.com/sukoonsphere/backend/internal/modules/progress/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupService(t *testing.T) StreakService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.UserProgress{}))

	return NewStreakService(progressRepo.NewProgressRepository(db))
}

func day(yyyy int, mm time.Month, dd int) time.Time {
	return time.Date(yyyy, mm, dd, 15, 30, 0, 0, time.UTC)
}

func TestFirstVisitStartsStreak(t *testing.T) {
	svc := setupService(t)
	userID := uuid.New()

	status, err := svc.RecordVisit(context.Background(), userID, day(2026, time.March, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, status.StreakCount)
	assert.Equal(t, 1, status.LongestStreak)
	assert.Equal(t, 3, status.NextMilestone)
}

func TestSameDayVisitIsNoOp(t *testing.T) {
	svc := setupService(t)
	userID := uuid.New()
	ctx := context.Background()

	_, err := svc.RecordVisit(ctx, userID, day(2026, time.March, 1))
	require.NoError(t, err)

	// Later the same day, streak unchanged.
	status, err := svc.RecordVisit(ctx, userID, time.Date(2026, time.March, 1, 23, 59, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, status.StreakCount)
}

func TestConsecutiveDaysIncrement(t *testing.T) {
	svc := setupService(t)
	userID := uuid.New()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.RecordVisit(ctx, userID, day(2026, time.March, 1+i))
		require.NoError(t, err)
	}

	status, err := svc.Current(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, status.StreakCount)
	assert.Equal(t, 3, status.LongestStreak)
	assert.Equal(t, 7, status.NextMilestone)
}

func TestGapBreaksStreakButKeepsLongest(t *testing.T) {
	svc := setupService(t)
	userID := uuid.New()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := svc.RecordVisit(ctx, userID, day(2026, time.March, 1+i))
		require.NoError(t, err)
	}

	// Two-day gap resets the running streak to 1.
	status, err := svc.RecordVisit(ctx, userID, day(2026, time.March, 7))
	require.NoError(t, err)
	assert.Equal(t, 1, status.StreakCount)
	assert.Equal(t, 4, status.LongestStreak)
}

func TestBackdatedClockIsNoOp(t *testing.T) {
	svc := setupService(t)
	userID := uuid.New()
	ctx := context.Background()

	_, err := svc.RecordVisit(ctx, userID, day(2026, time.March, 10))
	require.NoError(t, err)

	status, err := svc.RecordVisit(ctx, userID, day(2026, time.March, 8))
	require.NoError(t, err)
	assert.Equal(t, 1, status.StreakCount)

	current, err := svc.Current(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, current.LastVisitDate)
	assert.Equal(t, 10, current.LastVisitDate.Day())
}

func TestNextMilestone(t *testing.T) {
	assert.Equal(t, 3, NextMilestone(0))
	assert.Equal(t, 7, NextMilestone(3))
	assert.Equal(t, 30, NextMilestone(14))
	assert.Equal(t, 365, NextMilestone(200))
	// Beyond the last milestone it stays pinned.
	assert.Equal(t, 365, NextMilestone(400))
}

func TestCurrentFreshUser(t *testing.T) {
	svc := setupService(t)

	status, err := svc.Current(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, status.StreakCount)
	assert.Nil(t, status.LastVisitDate)
}
