package cache

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hayZedTech/vibestream-backend/internal/adapter/storage"
)

// Counters is a read-through cache for the hot like/follower counts shown on
// feed and profile pages. Redis being down or unconfigured never fails a
// request: every miss path falls back to the primary store.
type Counters struct {
	log     *slog.Logger
	rdb     *redis.Client
	posts   storage.PostRepository
	follows storage.FollowRepository
	ttl     time.Duration
}

func NewCounters(log *slog.Logger, rdb *redis.Client, posts storage.PostRepository, follows storage.FollowRepository, ttl time.Duration) *Counters {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Counters{log: log, rdb: rdb, posts: posts, follows: follows, ttl: ttl}
}

func likeKey(postID string) string { return fmt.Sprintf("counts:likes:%s", postID) }

func followerKey(username string) string { return fmt.Sprintf("counts:followers:%s", username) }

// LikeCount returns the like count for a post, cache first.
func (c *Counters) LikeCount(ctx context.Context, postID string) (int64, error) {
	if n, ok := c.cached(ctx, likeKey(postID)); ok {
		return n, nil
	}
	n, err := c.posts.CountLikes(ctx, postID)
	if err != nil {
		return 0, err
	}
	c.populate(ctx, likeKey(postID), n)
	return n, nil
}

// FollowerCount returns the follower count for a user, cache first.
func (c *Counters) FollowerCount(ctx context.Context, username string) (int64, error) {
	if n, ok := c.cached(ctx, followerKey(username)); ok {
		return n, nil
	}
	n, err := c.follows.CountFollowers(ctx, username)
	if err != nil {
		return 0, err
	}
	c.populate(ctx, followerKey(username), n)
	return n, nil
}

// BumpLike adjusts a cached like count in place. Only keys already present
// are touched, so a stale zero is never materialized.
func (c *Counters) BumpLike(ctx context.Context, postID string, delta int64) {
	c.bump(ctx, likeKey(postID), delta)
}

// BumpFollower adjusts a cached follower count in place.
func (c *Counters) BumpFollower(ctx context.Context, username string, delta int64) {
	c.bump(ctx, followerKey(username), delta)
}

func (c *Counters) cached(ctx context.Context, key string) (int64, bool) {
	if c.rdb == nil {
		return 0, false
	}
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return 0, false
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c *Counters) populate(ctx context.Context, key string, n int64) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, key, n, c.ttl).Err(); err != nil {
		c.log.Debug("COUNT_CACHE_SET_FAILED", "key", key, "err", err)
	}
}

func (c *Counters) bump(ctx context.Context, key string, delta int64) {
	if c.rdb == nil {
		return
	}
	exists, err := c.rdb.Exists(ctx, key).Result()
	if err != nil || exists == 0 {
		return
	}
	if err := c.rdb.IncrBy(ctx, key, delta).Err(); err != nil {
		c.log.Debug("COUNT_CACHE_BUMP_FAILED", "key", key, "err", err)
	}
}
