package pubsub

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayZedTech/vibestream-backend/internal/domain/event"
)

type capturePublisher struct {
	mu       sync.Mutex
	topic    string
	messages []*message.Message
}

func (p *capturePublisher) Publish(topic string, msgs ...*message.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topic = topic
	p.messages = append(p.messages, msgs...)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

func TestPublishFeedCarriesExclusionMetadata(t *testing.T) {
	pub := &capturePublisher{}
	d := NewDispatcher(pub)
	origin := uuid.New()

	err := d.PublishFeed(context.Background(), event.Envelope{
		Event:   event.OutNewLike,
		Payload: event.LikePayload{PostID: "p1", From: "alice"},
	}, origin)
	require.NoError(t, err)

	require.Len(t, pub.messages, 1)
	assert.Equal(t, FeedTopic, pub.topic)
	msg := pub.messages[0]
	assert.Equal(t, origin.String(), msg.Metadata.Get(ExcludeMetadataKey))

	var ev event.Envelope
	require.NoError(t, json.Unmarshal(msg.Payload, &ev))
	assert.Equal(t, event.OutNewLike, ev.Event)
}

func TestPublishFeedWithoutExclusion(t *testing.T) {
	pub := &capturePublisher{}
	d := NewDispatcher(pub)

	err := d.PublishFeed(context.Background(), event.Envelope{Event: event.OutNewPost})
	require.NoError(t, err)
	require.Len(t, pub.messages, 1)
	assert.Empty(t, pub.messages[0].Metadata.Get(ExcludeMetadataKey))
}

func TestParseExclude(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	assert.Nil(t, ParseExclude(""))
	assert.Equal(t, []uuid.UUID{a}, ParseExclude(a.String()))
	assert.Equal(t, []uuid.UUID{a, b}, ParseExclude(joinIDs([]uuid.UUID{a, b})))

	// Garbage entries are skipped, valid ones survive.
	assert.Equal(t, []uuid.UUID{b}, ParseExclude("not-a-uuid,"+b.String()))
}
