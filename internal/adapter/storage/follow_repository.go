package storage

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hayZedTech/vibestream-backend/internal/domain/model"
)

type FollowRepository interface {
	Create(ctx context.Context, follower, followee string) error
	Delete(ctx context.Context, follower, followee string) error
	Exists(ctx context.Context, follower, followee string) (bool, error)
	ListFollowing(ctx context.Context, follower string, offset, limit int) ([]string, error)
	ListFollowers(ctx context.Context, followee string, offset, limit int) ([]string, error)
	CountFollowers(ctx context.Context, followee string) (int64, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository { return &followRepository{db: db} }

// Create is idempotent: a duplicate follow does not error.
func (r *followRepository) Create(ctx context.Context, follower, followee string) error {
	f := &model.Follow{ID: uuid.New().String(), Follower: follower, Followee: followee}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(f).Error
}

func (r *followRepository) Delete(ctx context.Context, follower, followee string) error {
	return r.db.WithContext(ctx).
		Where("follower = ? AND followee = ?", follower, followee).
		Delete(&model.Follow{}).Error
}

func (r *followRepository) Exists(ctx context.Context, follower, followee string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower = ? AND followee = ?", follower, followee).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *followRepository) ListFollowing(ctx context.Context, follower string, offset, limit int) ([]string, error) {
	var res []string
	err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower = ?", follower).
		Order("created_at DESC").Offset(offset).Limit(limit).
		Pluck("followee", &res).Error
	return res, err
}

func (r *followRepository) ListFollowers(ctx context.Context, followee string, offset, limit int) ([]string, error) {
	var res []string
	err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("followee = ?", followee).
		Order("created_at DESC").Offset(offset).Limit(limit).
		Pluck("follower", &res).Error
	return res, err
}

func (r *followRepository) CountFollowers(ctx context.Context, followee string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("followee = ?", followee).
		Count(&cnt).Error
	return cnt, err
}
