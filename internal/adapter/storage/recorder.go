package storage

import (
	"context"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/hayZedTech/vibestream-backend/internal/domain/model"
)

// Recorder is the durable record writer the fan-out engine depends on. Both
// operations may fail independently of live delivery; callers treat failures
// as advisory.
type Recorder interface {
	SaveNotification(ctx context.Context, n *model.Notification) error
	SaveChatMessage(ctx context.Context, m *model.ChatMessage) error
}

// Interface guard
var _ Recorder = (*recorder)(nil)

// recorder funnels every durable write through one circuit breaker so a dead
// store degrades to fast failures instead of stalling event handlers.
type recorder struct {
	log           *slog.Logger
	notifications NotificationRepository
	chats         ChatRepository
	breaker       *gobreaker.CircuitBreaker
}

func NewRecorder(log *slog.Logger, notifications NotificationRepository, chats ChatRepository) Recorder {
	r := &recorder{
		log:           log,
		notifications: notifications,
		chats:         chats,
	}
	r.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "durable-records",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			r.log.Warn("RECORD_BREAKER_STATE", "name", name, "from", from.String(), "to", to.String())
		},
	})
	return r
}

func (r *recorder) SaveNotification(ctx context.Context, n *model.Notification) error {
	_, err := r.breaker.Execute(func() (interface{}, error) {
		return nil, r.notifications.Save(ctx, n)
	})
	return err
}

func (r *recorder) SaveChatMessage(ctx context.Context, m *model.ChatMessage) error {
	_, err := r.breaker.Execute(func() (interface{}, error) {
		return nil, r.chats.Save(ctx, m)
	})
	return err
}
