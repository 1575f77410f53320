package service

import (
	"context"
	"errors"

	"github.com/hayZedTech/vibestream-backend/internal/adapter/cache"
	"github.com/hayZedTech/vibestream-backend/internal/adapter/storage"
)

var ErrSelfFollow = errors.New("relationship: cannot follow self")

// Relationshiper maintains the follow graph behind the REST surface. Live
// follow notifications travel separately, through the fan-out engine.
type Relationshiper interface {
	Follow(ctx context.Context, follower, followee string) error
	Unfollow(ctx context.Context, follower, followee string) error
	Following(ctx context.Context, username string, offset, limit int) ([]string, error)
	Followers(ctx context.Context, username string, offset, limit int) ([]string, error)
}

// Interface guard
var _ Relationshiper = (*RelationshipService)(nil)

type RelationshipService struct {
	follows  storage.FollowRepository
	users    storage.UserRepository
	counters *cache.Counters
}

func NewRelationshipService(follows storage.FollowRepository, users storage.UserRepository, counters *cache.Counters) *RelationshipService {
	return &RelationshipService{follows: follows, users: users, counters: counters}
}

func (s *RelationshipService) Follow(ctx context.Context, follower, followee string) error {
	if follower == followee {
		return ErrSelfFollow
	}
	if _, err := s.users.FindByUsername(ctx, followee); err != nil {
		return err
	}
	if err := s.follows.Create(ctx, follower, followee); err != nil {
		return err
	}
	s.counters.BumpFollower(ctx, followee, 1)
	return nil
}

func (s *RelationshipService) Unfollow(ctx context.Context, follower, followee string) error {
	if err := s.follows.Delete(ctx, follower, followee); err != nil {
		return err
	}
	s.counters.BumpFollower(ctx, followee, -1)
	return nil
}

func (s *RelationshipService) Following(ctx context.Context, username string, offset, limit int) ([]string, error) {
	return s.follows.ListFollowing(ctx, username, offset, limit)
}

func (s *RelationshipService) Followers(ctx context.Context, username string, offset, limit int) ([]string, error) {
	return s.follows.ListFollowers(ctx, username, offset, limit)
}
