package storage

import (
	"context"

	"gorm.io/gorm"

	"github.com/hayZedTech/vibestream-backend/internal/domain/model"
)

type ChatRepository interface {
	Save(ctx context.Context, m *model.ChatMessage) error
	Conversation(ctx context.Context, a, b string, offset, limit int) ([]*model.ChatMessage, error)
	MarkRead(ctx context.Context, from, to string) error
	CountUnread(ctx context.Context, to string) (int64, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository { return &chatRepository{db: db} }

func (r *chatRepository) Save(ctx context.Context, m *model.ChatMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// Conversation returns the message history between two users, oldest first.
func (r *chatRepository) Conversation(ctx context.Context, a, b string, offset, limit int) ([]*model.ChatMessage, error) {
	var res []*model.ChatMessage
	err := r.db.WithContext(ctx).
		Where("(from_user = ? AND to_user = ?) OR (from_user = ? AND to_user = ?)", a, b, b, a).
		Order("created_at ASC").Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

// MarkRead flags everything `from` sent to `to` as read.
func (r *chatRepository) MarkRead(ctx context.Context, from, to string) error {
	return r.db.WithContext(ctx).
		Model(&model.ChatMessage{}).
		Where("from_user = ? AND to_user = ? AND read = ?", from, to, false).
		Update("read", true).Error
}

func (r *chatRepository) CountUnread(ctx context.Context, to string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.ChatMessage{}).
		Where("to_user = ? AND read = ?", to, false).
		Count(&cnt).Error
	return cnt, err
}
