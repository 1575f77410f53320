package storage

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayZedTech/vibestream-backend/internal/domain/model"
)

type flakyNotifications struct {
	NotificationRepository
	fail  bool
	saved int
}

func (f *flakyNotifications) Save(_ context.Context, _ *model.Notification) error {
	if f.fail {
		return errors.New("disk full")
	}
	f.saved++
	return nil
}

type flakyChats struct {
	ChatRepository
	fail  bool
	saved int
}

func (f *flakyChats) Save(_ context.Context, _ *model.ChatMessage) error {
	if f.fail {
		return errors.New("disk full")
	}
	f.saved++
	return nil
}

func TestRecorderWritesBothRecordKinds(t *testing.T) {
	notifications := &flakyNotifications{}
	chats := &flakyChats{}
	rec := NewRecorder(slog.Default(), notifications, chats)
	ctx := context.Background()

	require.NoError(t, rec.SaveNotification(ctx, &model.Notification{ID: "n1"}))
	require.NoError(t, rec.SaveChatMessage(ctx, &model.ChatMessage{ID: "m1"}))
	assert.Equal(t, 1, notifications.saved)
	assert.Equal(t, 1, chats.saved)
}

func TestRecorderBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	notifications := &flakyNotifications{fail: true}
	chats := &flakyChats{}
	rec := NewRecorder(slog.Default(), notifications, chats)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		assert.Error(t, rec.SaveNotification(ctx, &model.Notification{ID: "n"}))
	}

	// Breaker is shared: chat writes now fail fast without reaching the store.
	err := rec.SaveChatMessage(ctx, &model.ChatMessage{ID: "m"})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Zero(t, chats.saved)
}
