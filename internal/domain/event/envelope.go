package event

import "time"

// Envelope is the generic wrapper for outbound frames. It keeps the wire
// structure consistent across every event the engine emits.
type Envelope struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// NotificationPayload is the targeted notification shape delivered to exactly
// one connection, looked up by recipient identity.
type NotificationPayload struct {
	Type      string    `json:"type"`
	To        string    `json:"toUsername"`
	From      string    `json:"fromUsername"`
	PostID    string    `json:"postId,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// LikePayload is the reduced public shape broadcast to all connections except
// the originator so feeds can update live. It carries no durable-record fields.
type LikePayload struct {
	PostID string `json:"postId"`
	From   string `json:"fromUsername"`
}

// CommentPayload is the reduced public broadcast shape for a new comment.
type CommentPayload struct {
	PostID string `json:"postId"`
	From   string `json:"fromUsername"`
	Text   string `json:"text"`
}

// ChatPayload is the delivered representation of a chat message. When the
// durable write fails it is built from the locally constructed record, so the
// delivered and stored copies may diverge.
type ChatPayload struct {
	ID        string    `json:"id"`
	From      string    `json:"fromUsername"`
	To        string    `json:"toUsername"`
	Text      string    `json:"text"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
