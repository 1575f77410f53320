package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/hayZedTech/vibestream-backend/internal/domain/event"
)

// FeedTopic carries the reduced public events (newPost/newLike/newComment)
// that update live feeds on every connection except the originator.
const FeedTopic = "feed.events"

// ExcludeMetadataKey holds the originating connection IDs a feed consumer
// must skip when broadcasting.
const ExcludeMetadataKey = "exclude_conn"

// Dispatcher is the high-level contract for outgoing feed events. The engine
// stays agnostic of the transport implementation.
type Dispatcher interface {
	PublishFeed(ctx context.Context, ev event.Envelope, exclude ...uuid.UUID) error
}

// feedDispatcher is the concrete implementation (private).
type feedDispatcher struct {
	publisher message.Publisher
}

// NewDispatcher returns the interface instead of a pointer to the struct.
func NewDispatcher(pub message.Publisher) Dispatcher {
	return &feedDispatcher{publisher: pub}
}

func (d *feedDispatcher) PublishFeed(ctx context.Context, ev event.Envelope, exclude ...uuid.UUID) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("feed dispatcher: marshal failure: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	if len(exclude) > 0 {
		msg.Metadata.Set(ExcludeMetadataKey, joinIDs(exclude))
	}

	if err := d.publisher.Publish(FeedTopic, msg); err != nil {
		return fmt.Errorf("feed dispatcher: publish %s: %w", FeedTopic, err)
	}
	return nil
}

func joinIDs(ids []uuid.UUID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ",")
}

// ParseExclude recovers the exclusion set on the consumer side. Unparseable
// entries are skipped; an empty value means broadcast to everyone.
func ParseExclude(meta string) []uuid.UUID {
	if meta == "" {
		return nil
	}
	var out []uuid.UUID
	for part := range strings.SplitSeq(meta, ",") {
		if id, err := uuid.Parse(part); err == nil {
			out = append(out, id)
		}
	}
	return out
}
