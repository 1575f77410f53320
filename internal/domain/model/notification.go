package model

import "time"

// Notification kinds produced by the fan-out engine.
const (
	NotificationLike    = "like"
	NotificationComment = "comment"
	NotificationFollow  = "follow"
	NotificationMessage = "message"
)

// Notification is the durable record derived from a non-broadcast domain
// event. It is mutated only to flip Read; this service never deletes it.
type Notification struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Recipient string `gorm:"type:varchar(64);index:idx_notification_recipient;not null"`
	Kind      string `gorm:"type:varchar(16);not null"`
	Sender    string `gorm:"type:varchar(64);not null"`
	PostID    string `gorm:"type:varchar(36)"`
	Message   string `gorm:"type:text"`
	Read      bool   `gorm:"not null;default:false;index"`
	CreatedAt time.Time
}

func (Notification) TableName() string { return "notifications" }
