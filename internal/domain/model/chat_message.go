package model

import "time"

// ChatMessage is one durable direct message between two users.
// The delivered copy and this stored copy may diverge when the durable write
// fails; callers tolerate eventual, not atomic, consistency between them.
type ChatMessage struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	From      string `gorm:"column:from_user;type:varchar(64);index:idx_chat_from;not null"`
	To        string `gorm:"column:to_user;type:varchar(64);index:idx_chat_to;not null"`
	Text      string `gorm:"type:text;not null"`
	Read      bool   `gorm:"not null;default:false;index"`
	CreatedAt time.Time
}

func (ChatMessage) TableName() string { return "chat_messages" }
