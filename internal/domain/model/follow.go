package model

import "time"

// Follow is the relation "Follower follows Followee", both by username.
// Composite unique key prevents duplicate follows.
// idx_follow_pair = (follower, followee)
type Follow struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Follower  string `gorm:"type:varchar(64);index:idx_follow_follower;index:idx_follow_pair,unique;not null"`
	Followee  string `gorm:"type:varchar(64);index:idx_follow_followee;not null;index:idx_follow_pair,unique"`
	CreatedAt time.Time
}

func (Follow) TableName() string { return "follows" }
