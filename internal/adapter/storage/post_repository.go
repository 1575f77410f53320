package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hayZedTech/vibestream-backend/internal/domain/model"
)

type PostRepository interface {
	Create(ctx context.Context, p *model.Post) error
	FindByID(ctx context.Context, id string) (*model.Post, error)
	List(ctx context.Context, offset, limit int) ([]*model.Post, error)
	ListByAuthor(ctx context.Context, author string, offset, limit int) ([]*model.Post, error)
	AddLike(ctx context.Context, postID, username string) error
	RemoveLike(ctx context.Context, postID, username string) error
	CountLikes(ctx context.Context, postID string) (int64, error)
	AddComment(ctx context.Context, c *model.Comment) error
	ListComments(ctx context.Context, postID string, offset, limit int) ([]*model.Comment, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, p *model.Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *postRepository) FindByID(ctx context.Context, id string) (*model.Post, error) {
	var p model.Post
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postRepository) List(ctx context.Context, offset, limit int) ([]*model.Post, error) {
	var res []*model.Post
	err := r.db.WithContext(ctx).Order("created_at DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (r *postRepository) ListByAuthor(ctx context.Context, author string, offset, limit int) ([]*model.Post, error) {
	var res []*model.Post
	err := r.db.WithContext(ctx).
		Where("author = ?", author).
		Order("created_at DESC").Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

// AddLike is idempotent: re-liking an already liked post is not an error.
func (r *postRepository) AddLike(ctx context.Context, postID, username string) error {
	l := &model.Like{ID: uuid.New().String(), PostID: postID, Username: username}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(l).Error
}

func (r *postRepository) RemoveLike(ctx context.Context, postID, username string) error {
	return r.db.WithContext(ctx).
		Where("post_id = ? AND username = ?", postID, username).
		Delete(&model.Like{}).Error
}

func (r *postRepository) CountLikes(ctx context.Context, postID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Like{}).Where("post_id = ?", postID).Count(&cnt).Error
	return cnt, err
}

func (r *postRepository) AddComment(ctx context.Context, c *model.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *postRepository) ListComments(ctx context.Context, postID string, offset, limit int) ([]*model.Comment, error) {
	var res []*model.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}
