package engagement

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sukoonsphere/backend/internal/entity"
	badge "github.com/sukoonsphere/backend/internal/modules/badge/service"
	contentRepo "github.com/sukoonsphere/backend/internal/modules/content/repository"
	points "github.com/sukoonsphere/backend/internal/modules/points/service"
	progressRepo "github.com/sukoonsphere/backend/internal/modules/progress/repository"
	reactionRepo "github.com/sukoonsphere/backend/internal/modules/reaction/repository"
	reaction "github.com/sukoonsphere/backend/internal/modules/reaction/service"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type captureNotifier struct {
	notifications []*entity.Notification
}

func (c *captureNotifier) CreateNotification(ctx context.Context, n *entity.Notification) error {
	c.notifications = append(c.notifications, n)
	return nil
}

func (c *captureNotifier) byType(notificationType string) []*entity.Notification {
	var out []*entity.Notification
	for _, n := range c.notifications {
		if n.Type == notificationType {
			out = append(out, n)
		}
	}
	return out
}

type fixture struct {
	db        *gorm.DB
	svc       EngagementService
	pointsSvc points.PointsService
	progress  progressRepo.ProgressRepository
	notifier  *captureNotifier
	reactorID uuid.UUID
	ownerID   uuid.UUID
	postID    uuid.UUID
}

func setup(t *testing.T, countDeletes bool) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Post{}, &entity.Reaction{},
		&entity.UserProgress{}, &entity.UserBadge{}, &entity.PointLog{},
	))

	progress := progressRepo.NewProgressRepository(db)
	pointsSvc := points.NewPointsService(progress)
	badgeSvc := badge.NewBadgeService(progress)
	reactionSvc := reaction.NewReactionService(reactionRepo.NewReactionRepository(db), nil)
	contents := contentRepo.NewContentRepository(db)
	notifier := &captureNotifier{}

	reactor := &entity.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(reactor).Error)
	owner := &entity.User{Username: "bob", Email: "bob@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(owner).Error)

	post := &entity.Post{ID: uuid.New(), AuthorID: owner.ID, Body: "hello"}
	require.NoError(t, db.Create(post).Error)

	return &fixture{
		db:        db,
		svc:       NewEngagementService(reactionSvc, pointsSvc, badgeSvc, notifier, contents, countDeletes),
		pointsSvc: pointsSvc,
		progress:  progress,
		notifier:  notifier,
		reactorID: reactor.ID,
		ownerID:   owner.ID,
		postID:    post.ID,
	}
}

func TestReactScoresReactorAndNotifiesOwner(t *testing.T) {
	f := setup(t, true)
	ctx := context.Background()

	resp, err := f.svc.React(ctx, f.reactorID, entity.ContentPost, f.postID, entity.ReactionHeart)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)

	// The reactor earns the like delta and the Supporter first-like badge.
	balance, err := f.pointsSvc.GetBalance(ctx, f.reactorID)
	require.NoError(t, err)
	assert.Equal(t, 2, balance.CurrentPoints)

	badges, err := f.progress.ListBadges(ctx, f.reactorID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Supporter"}, badges)

	// The owner gets exactly one reaction notification.
	reactionNotifs := f.notifier.byType("reaction")
	require.Len(t, reactionNotifs, 1)
	assert.Equal(t, f.ownerID, reactionNotifs[0].UserID)
	assert.Equal(t, f.reactorID, reactionNotifs[0].ActorID)
	assert.Equal(t, f.postID, reactionNotifs[0].EntityID)

	// The badge lands as a notification to the reactor.
	badgeNotifs := f.notifier.byType("badge")
	require.Len(t, badgeNotifs, 1)
	assert.Equal(t, f.reactorID, badgeNotifs[0].UserID)
	assert.Contains(t, badgeNotifs[0].Message, "Supporter")
}

func TestReactToggleOffReversesNothing(t *testing.T) {
	f := setup(t, true)
	ctx := context.Background()

	_, err := f.svc.React(ctx, f.reactorID, entity.ContentPost, f.postID, entity.ReactionLike)
	require.NoError(t, err)
	notifsAfterOn := len(f.notifier.notifications)

	resp, err := f.svc.React(ctx, f.reactorID, entity.ContentPost, f.postID, entity.ReactionLike)
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Total)

	// Points and counters keep their value; no new notifications fire.
	balance, err := f.pointsSvc.GetBalance(ctx, f.reactorID)
	require.NoError(t, err)
	assert.Equal(t, 2, balance.CurrentPoints)
	assert.Len(t, f.notifier.notifications, notifsAfterOn)
}

func TestReactTypeChangeScoresAgain(t *testing.T) {
	f := setup(t, true)
	ctx := context.Background()

	_, err := f.svc.React(ctx, f.reactorID, entity.ContentPost, f.postID, entity.ReactionLike)
	require.NoError(t, err)
	_, err = f.svc.React(ctx, f.reactorID, entity.ContentPost, f.postID, entity.ReactionWow)
	require.NoError(t, err)

	balance, err := f.pointsSvc.GetBalance(ctx, f.reactorID)
	require.NoError(t, err)
	assert.Equal(t, 4, balance.CurrentPoints)

	assert.Len(t, f.notifier.byType("reaction"), 2)
}

func TestReactOwnContentSkipsNotification(t *testing.T) {
	f := setup(t, true)
	ctx := context.Background()

	_, err := f.svc.React(ctx, f.ownerID, entity.ContentPost, f.postID, entity.ReactionLike)
	require.NoError(t, err)

	assert.Empty(t, f.notifier.byType("reaction"))

	// Scoring still applies to the reacting owner.
	balance, err := f.pointsSvc.GetBalance(ctx, f.ownerID)
	require.NoError(t, err)
	assert.Equal(t, 2, balance.CurrentPoints)
}

func TestRecordContentActionAwardsAndCounts(t *testing.T) {
	f := setup(t, true)
	ctx := context.Background()

	err := f.svc.RecordContentAction(ctx, f.reactorID, points.ActionPost, entity.ContentPost, uuid.New())
	require.NoError(t, err)

	balance, err := f.pointsSvc.GetBalance(ctx, f.reactorID)
	require.NoError(t, err)
	assert.Equal(t, 10, balance.CurrentPoints)

	badges, err := f.progress.ListBadges(ctx, f.reactorID)
	require.NoError(t, err)
	assert.Equal(t, []string{"First Post"}, badges)
}

func TestRecordContentActionDeleteCountsWhenEnabled(t *testing.T) {
	f := setup(t, true)
	ctx := context.Background()

	require.NoError(t, f.svc.RecordContentAction(ctx, f.reactorID, points.ActionPost, entity.ContentPost, uuid.New()))
	require.NoError(t, f.svc.RecordContentAction(ctx, f.reactorID, points.ActionDeletePost, entity.ContentPost, uuid.New()))

	progress, err := f.progress.Get(ctx, f.reactorID)
	require.NoError(t, err)
	// Points reversed, but the counter advanced on the delete too.
	assert.Equal(t, 0, progress.CurrentPoints)
	assert.Equal(t, 2, progress.PostCount)
}

func TestRecordContentActionDeleteSkipsCounterWhenDisabled(t *testing.T) {
	f := setup(t, false)
	ctx := context.Background()

	require.NoError(t, f.svc.RecordContentAction(ctx, f.reactorID, points.ActionPost, entity.ContentPost, uuid.New()))
	require.NoError(t, f.svc.RecordContentAction(ctx, f.reactorID, points.ActionDeletePost, entity.ContentPost, uuid.New()))

	progress, err := f.progress.Get(ctx, f.reactorID)
	require.NoError(t, err)
	assert.Equal(t, 0, progress.CurrentPoints)
	assert.Equal(t, 1, progress.PostCount)
}

func TestRecordContentActionInvalidKey(t *testing.T) {
	f := setup(t, true)

	err := f.svc.RecordContentAction(context.Background(), f.reactorID, "promote", entity.ContentPost, uuid.New())
	assert.Error(t, err)
}
