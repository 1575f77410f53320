package feed

import (
	"encoding/json"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	"github.com/hayZedTech/vibestream-backend/internal/adapter/pubsub"
	"github.com/hayZedTech/vibestream-backend/internal/domain/event"
	"github.com/hayZedTech/vibestream-backend/internal/domain/registry"
)

// Listener consumes the feed topic and relays each public event to every
// connection except the originator, via the hub's exclusion-set broadcast.
type Listener struct {
	hub    registry.Presencer
	logger *slog.Logger
}

func NewListener(hub registry.Presencer, logger *slog.Logger) *Listener {
	return &Listener{hub: hub, logger: logger}
}

// RegisterHandlers wires the consumer onto the router with the standard
// middleware chain.
func (l *Listener) RegisterHandlers(router *message.Router, sub message.Subscriber) {
	router.AddConsumerHandler("ON_FEED_EVENT", pubsub.FeedTopic, sub, l.onFeedEvent).AddMiddleware(
		LoggingMiddleware(l.logger),
		NewRetryMiddleware().Middleware,
		middleware.Timeout(time.Second*5),
	)
	l.logger.Info("FEED_PIPELINE_READY", "topic", pubsub.FeedTopic)
}

// onFeedEvent decodes the envelope and broadcasts it. Decode failures are
// acked: a malformed frame is a terminal state, not worth a retry.
func (l *Listener) onFeedEvent(msg *message.Message) error {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("PANIC_RECOVERED", "err", r, "stack", string(debug.Stack()), "msg_id", msg.UUID)
		}
	}()

	var ev event.Envelope
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		l.logger.Error("FEED_DECODE_FAILED", "err", err, "msg_id", msg.UUID)
		return nil
	}

	exclude := pubsub.ParseExclude(msg.Metadata.Get(pubsub.ExcludeMetadataKey))
	l.hub.Broadcast(ev, exclude...)
	return nil
}
