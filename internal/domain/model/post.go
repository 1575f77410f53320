package model

import "time"

// Post is a feed entry authored by a user.
type Post struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Author    string `gorm:"type:varchar(64);index:idx_post_author;not null"`
	Text      string `gorm:"type:text"`
	ImageURL  string `gorm:"type:varchar(512)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Post) TableName() string { return "posts" }

// Like marks that a user liked a post once.
// Composite unique key prevents double likes.
// idx_like_pair = (post_id, username)
type Like struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	PostID    string `gorm:"type:varchar(36);index:idx_like_post;index:idx_like_pair,unique;not null"`
	Username  string `gorm:"type:varchar(64);not null;index:idx_like_pair,unique"`
	CreatedAt time.Time
}

func (Like) TableName() string { return "likes" }

// Comment is a reply attached to a post.
type Comment struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	PostID    string `gorm:"type:varchar(36);index:idx_comment_post;not null"`
	Author    string `gorm:"type:varchar(64);not null"`
	Text      string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (Comment) TableName() string { return "comments" }
