package storage

import (
	"context"

	"gorm.io/gorm"

	"github.com/hayZedTech/vibestream-backend/internal/domain/model"
)

type NotificationRepository interface {
	Save(ctx context.Context, n *model.Notification) error
	ListByRecipient(ctx context.Context, recipient string, offset, limit int) ([]*model.Notification, error)
	CountUnread(ctx context.Context, recipient string) (int64, error)
	MarkAllRead(ctx context.Context, recipient string) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Save(ctx context.Context, n *model.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepository) ListByRecipient(ctx context.Context, recipient string, offset, limit int) ([]*model.Notification, error) {
	var res []*model.Notification
	err := r.db.WithContext(ctx).
		Where("recipient = ?", recipient).
		Order("created_at DESC").Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (r *notificationRepository) CountUnread(ctx context.Context, recipient string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("recipient = ? AND read = ?", recipient, false).
		Count(&cnt).Error
	return cnt, err
}

// MarkAllRead flips the read flag, the only mutation a notification ever sees.
func (r *notificationRepository) MarkAllRead(ctx context.Context, recipient string) error {
	return r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("recipient = ? AND read = ?", recipient, false).
		Update("read", true).Error
}
