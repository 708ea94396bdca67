package notification

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sukoonsphere/backend/internal/entity"
	notifRepo "github.com/sukoonsphere/backend/internal/modules/notification/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (NotificationService, *redis.Client) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Notification{}))

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return NewNotificationService(notifRepo.NewNotificationRepository(db), redisClient), redisClient
}

func TestCreateNotificationPersistsAndPublishes(t *testing.T) {
	svc, redisClient := setupService(t)
	ctx := context.Background()

	recipient := uuid.New()
	pubsub := redisClient.Subscribe(ctx, Channel(recipient.String()))
	defer pubsub.Close()
	_, err := pubsub.Receive(ctx)
	require.NoError(t, err)

	notification := &entity.Notification{
		UserID:  recipient,
		ActorID: uuid.New(),
		Type:    "reaction",
		Message: "Someone reacted with like to your post",
	}
	require.NoError(t, svc.CreateNotification(ctx, notification))

	select {
	case msg := <-pubsub.Channel():
		var got entity.Notification
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, recipient, got.UserID)
		assert.Equal(t, "reaction", got.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a published notification")
	}

	stored, err := svc.GetNotifications(ctx, recipient, 10, 0)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.False(t, stored[0].IsRead)
}

func TestMarkAsReadAndUnreadCount(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	recipient := uuid.New()

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.CreateNotification(ctx, &entity.Notification{
			UserID:  recipient,
			ActorID: uuid.New(),
			Type:    "badge",
			Message: "You earned a badge",
		}))
	}

	count, err := svc.UnreadCount(ctx, recipient)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	stored, err := svc.GetNotifications(ctx, recipient, 10, 0)
	require.NoError(t, err)
	require.NoError(t, svc.MarkAsRead(ctx, stored[0].ID))

	count, err = svc.UnreadCount(ctx, recipient)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, svc.MarkAllAsRead(ctx, recipient))
	count, err = svc.UnreadCount(ctx, recipient)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestNotificationsScopedToRecipient(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()

	require.NoError(t, svc.CreateNotification(ctx, &entity.Notification{
		UserID: alice, ActorID: bob, Type: "reaction", Message: "hi",
	}))

	stored, err := svc.GetNotifications(ctx, bob, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, stored)
}
