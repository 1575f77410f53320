package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hayZedTech/vibestream-backend/internal/adapter/pubsub"
	"github.com/hayZedTech/vibestream-backend/internal/adapter/storage"
	"github.com/hayZedTech/vibestream-backend/internal/domain/event"
	"github.com/hayZedTech/vibestream-backend/internal/domain/model"
	"github.com/hayZedTech/vibestream-backend/internal/domain/registry"
)

// Engine is the event fan-out core. It is stateless apart from references to
// the presence directory, the durable record writer and the feed dispatcher.
//
// Every handler follows the same shape: validate and silently drop invalid
// input, persist a durable record best-effort, deliver the live notification
// to the target's connection if present, and for public events publish a
// reduced payload to the feed topic excluding the originator. A persistence
// failure is logged and never aborts delivery: durability is advisory,
// delivery is primary.
type Engine struct {
	log      *slog.Logger
	presence registry.Presencer
	records  storage.Recorder
	feed     pubsub.Dispatcher
}

func NewEngine(log *slog.Logger, presence registry.Presencer, records storage.Recorder, feed pubsub.Dispatcher) *Engine {
	return &Engine{log: log, presence: presence, records: records, feed: feed}
}

// Join transitions a connection from anonymous to identified. Invalid input
// is a silent no-op; the hub broadcasts the refreshed online set itself.
func (e *Engine) Join(ev *event.Join, conn registry.Connector) {
	if err := ev.Validate(); err != nil {
		e.dropped(event.InJoin, conn.ID())
		return
	}
	e.presence.Join(ev.Identity, conn)
}

// NewPost is pure broadcast: no durable record, reduced payload relayed to
// every connection except the originator.
func (e *Engine) NewPost(ctx context.Context, origin uuid.UUID, ev *event.NewPost) {
	if err := ev.Validate(); err != nil {
		e.dropped(event.InNewPost, origin)
		return
	}
	e.publishFeed(ctx, event.Envelope{Event: event.OutNewPost, Payload: ev.Payload}, origin)
}

// Like persists a like notification for the post author, delivers it if the
// author is online, and broadcasts the public newLike event to everyone else.
func (e *Engine) Like(ctx context.Context, origin uuid.UUID, ev *event.Like) {
	if err := ev.Validate(); err != nil {
		e.dropped(event.InNewLike, origin)
		return
	}

	n := &model.Notification{
		ID:        uuid.New().String(),
		Recipient: ev.To,
		Kind:      model.NotificationLike,
		Sender:    ev.From,
		PostID:    ev.PostID,
		CreatedAt: time.Now(),
	}
	e.persistNotification(ctx, n)
	e.deliverNotification(n)

	e.publishFeed(ctx, event.Envelope{
		Event:   event.OutNewLike,
		Payload: event.LikePayload{PostID: ev.PostID, From: ev.From},
	}, origin)
}

// Comment mirrors Like with the comment text carried on both channels.
func (e *Engine) Comment(ctx context.Context, origin uuid.UUID, ev *event.Comment) {
	if err := ev.Validate(); err != nil {
		e.dropped(event.InNewComment, origin)
		return
	}

	n := &model.Notification{
		ID:        uuid.New().String(),
		Recipient: ev.To,
		Kind:      model.NotificationComment,
		Sender:    ev.From,
		PostID:    ev.PostID,
		Message:   ev.Text,
		CreatedAt: time.Now(),
	}
	e.persistNotification(ctx, n)
	e.deliverNotification(n)

	e.publishFeed(ctx, event.Envelope{
		Event:   event.OutNewComment,
		Payload: event.CommentPayload{PostID: ev.PostID, From: ev.From, Text: ev.Text},
	}, origin)
}

// Follow produces only a targeted notification; there is no public channel
// for follows.
func (e *Engine) Follow(ctx context.Context, origin uuid.UUID, ev *event.Follow) {
	if err := ev.Validate(); err != nil {
		e.dropped(event.InFollow, origin)
		return
	}

	n := &model.Notification{
		ID:        uuid.New().String(),
		Recipient: ev.To,
		Kind:      model.NotificationFollow,
		Sender:    ev.From,
		CreatedAt: time.Now(),
	}
	e.persistNotification(ctx, n)
	e.deliverNotification(n)
}

// Chat persists the message, delivers the resulting record to the recipient
// if online and always echoes it back to the sender, whose connection is by
// definition reachable. A synthesized "message" notification for the
// recipient follows the usual persist-then-deliver sequence.
func (e *Engine) Chat(ctx context.Context, sender registry.Connector, ev *event.Chat) {
	if err := ev.Validate(); err != nil {
		e.dropped(event.InChatMessage, sender.ID())
		return
	}

	now := time.Now()
	rec := &model.ChatMessage{
		ID:        uuid.New().String(),
		From:      ev.From,
		To:        ev.To,
		Text:      ev.Text,
		CreatedAt: now,
	}
	// The delivered copy below is this locally constructed record either
	// way; a failed write only means the stored copy never materializes.
	if err := e.records.SaveChatMessage(ctx, rec); err != nil {
		e.log.Error("PERSIST_FAILED", "record", "chat_message", "from", ev.From, "to", ev.To, "err", err)
	}

	frame := event.Envelope{Event: event.OutChatMessage, Payload: event.ChatPayload{
		ID:        rec.ID,
		From:      rec.From,
		To:        rec.To,
		Text:      rec.Text,
		Read:      rec.Read,
		CreatedAt: rec.CreatedAt,
	}}
	if conn, ok := e.presence.Lookup(ev.To); ok {
		conn.Send(frame)
	}
	sender.Send(frame) // echo, regardless of persistence outcome

	n := &model.Notification{
		ID:        uuid.New().String(),
		Recipient: ev.To,
		Kind:      model.NotificationMessage,
		Sender:    ev.From,
		Message:   ev.Text,
		CreatedAt: now,
	}
	e.persistNotification(ctx, n)
	e.deliverNotification(n)
}

func (e *Engine) persistNotification(ctx context.Context, n *model.Notification) {
	if err := e.records.SaveNotification(ctx, n); err != nil {
		e.log.Error("PERSIST_FAILED", "record", "notification", "kind", n.Kind, "recipient", n.Recipient, "err", err)
	}
}

// deliverNotification sends the targeted payload to exactly one connection.
// An offline recipient is not an error; the send is simply skipped.
func (e *Engine) deliverNotification(n *model.Notification) {
	conn, ok := e.presence.Lookup(n.Recipient)
	if !ok {
		return
	}
	conn.Send(event.Envelope{Event: event.OutNotification, Payload: event.NotificationPayload{
		Type:      n.Kind,
		To:        n.Recipient,
		From:      n.Sender,
		PostID:    n.PostID,
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
	}})
}

func (e *Engine) publishFeed(ctx context.Context, ev event.Envelope, origin uuid.UUID) {
	if err := e.feed.PublishFeed(ctx, ev, origin); err != nil {
		e.log.Error("FEED_PUBLISH_FAILED", "event", ev.Event, "err", err)
	}
}

// dropped records a validation failure. By contract the sender gets no
// feedback for malformed events.
func (e *Engine) dropped(kind string, origin uuid.UUID) {
	e.log.Debug("EVENT_DROPPED", "event", kind, "conn_id", origin)
}
