package event

import (
	"encoding/json"
	"errors"
)

// Inbound wire event names (connection -> engine).
const (
	InJoin        = "join"
	InNewPost     = "newPost"
	InNewLike     = "newLike"
	InNewComment  = "newComment"
	InFollow      = "follow"
	InChatMessage = "chatMessage"
)

// Outbound wire event names (engine -> connection).
const (
	OutOnlineUsers  = "onlineUsers"
	OutNewPost      = "newPost"
	OutNewLike      = "newLike"
	OutNewComment   = "newComment"
	OutNotification = "notification"
	OutChatMessage  = "chatMessage"
)

// ErrValidation marks an inbound event with missing or empty required fields.
// The fan-out engine drops such events silently; no feedback reaches the sender.
var ErrValidation = errors.New("event: invalid payload")

// Inbound is the raw wire frame read from a connection. Payload stays opaque
// until the named event is decoded into its typed variant.
type Inbound struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// Validator is implemented by every inbound event variant. Required-field
// checks happen here, at the boundary, before an event enters the engine.
type Validator interface {
	Validate() error
}

// Interface guards
var (
	_ Validator = (*Join)(nil)
	_ Validator = (*Like)(nil)
	_ Validator = (*Comment)(nil)
	_ Validator = (*Follow)(nil)
	_ Validator = (*Chat)(nil)
	_ Validator = (*NewPost)(nil)
)

// Join identifies the connection that sent it.
type Join struct {
	Identity string `json:"identity"`
}

func (e *Join) Validate() error {
	if e.Identity == "" {
		return ErrValidation
	}
	return nil
}

// Like is fired when a post gets liked. To is the post author.
type Like struct {
	PostID string `json:"postId"`
	From   string `json:"fromUsername"`
	To     string `json:"toUsername"`
}

func (e *Like) Validate() error {
	if e.PostID == "" || e.From == "" || e.To == "" {
		return ErrValidation
	}
	return nil
}

// Comment is fired when a post gets commented. To is the post author.
type Comment struct {
	PostID string `json:"postId"`
	From   string `json:"fromUsername"`
	To     string `json:"toUsername"`
	Text   string `json:"text"`
}

func (e *Comment) Validate() error {
	if e.PostID == "" || e.From == "" || e.To == "" || e.Text == "" {
		return ErrValidation
	}
	return nil
}

// Follow is fired when From starts following To.
type Follow struct {
	From string `json:"fromUsername"`
	To   string `json:"toUsername"`
}

func (e *Follow) Validate() error {
	if e.From == "" || e.To == "" {
		return ErrValidation
	}
	return nil
}

// Chat carries one direct message.
type Chat struct {
	From string `json:"fromUsername"`
	To   string `json:"toUsername"`
	Text string `json:"text"`
}

func (e *Chat) Validate() error {
	if e.From == "" || e.To == "" || e.Text == "" {
		return ErrValidation
	}
	return nil
}

// NewPost is broadcast-only: the payload is relayed to every other connection
// as-is and never produces a durable record.
type NewPost struct {
	Payload json.RawMessage `json:"payload"`
}

func (e *NewPost) Validate() error {
	if len(e.Payload) == 0 {
		return ErrValidation
	}
	return nil
}
