package pubsub

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// NewGoChannelPubSub builds the in-process transport behind the feed topic.
// Events originate from client websockets on this node, so no external
// broker sits between the engine and the hub.
func NewGoChannelPubSub(logger watermill.LoggerAdapter) *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 256,
	}, logger)
}

// Interface guards: GoChannel serves both sides of the topic.
var (
	_ message.Publisher  = (*gochannel.GoChannel)(nil)
	_ message.Subscriber = (*gochannel.GoChannel)(nil)
)
