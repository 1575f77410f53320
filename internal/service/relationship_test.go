package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayZedTech/vibestream-backend/internal/adapter/cache"
	"github.com/hayZedTech/vibestream-backend/internal/adapter/storage"
	"github.com/hayZedTech/vibestream-backend/internal/domain/model"
)

type memoryFollows struct {
	storage.FollowRepository
	pairs map[[2]string]bool
}

func newMemoryFollows() *memoryFollows {
	return &memoryFollows{pairs: make(map[[2]string]bool)}
}

func (m *memoryFollows) Create(_ context.Context, follower, followee string) error {
	m.pairs[[2]string{follower, followee}] = true
	return nil
}

func (m *memoryFollows) Delete(_ context.Context, follower, followee string) error {
	delete(m.pairs, [2]string{follower, followee})
	return nil
}

func (m *memoryFollows) ListFollowing(_ context.Context, follower string, _, _ int) ([]string, error) {
	var out []string
	for pair := range m.pairs {
		if pair[0] == follower {
			out = append(out, pair[1])
		}
	}
	return out, nil
}

func (m *memoryFollows) ListFollowers(_ context.Context, followee string, _, _ int) ([]string, error) {
	var out []string
	for pair := range m.pairs {
		if pair[1] == followee {
			out = append(out, pair[0])
		}
	}
	return out, nil
}

func newRelationshipFixture(t *testing.T) (*RelationshipService, *memoryFollows) {
	t.Helper()
	users := newMemoryUsers()
	require.NoError(t, users.Create(context.Background(), &model.User{Username: "alice"}))
	require.NoError(t, users.Create(context.Background(), &model.User{Username: "bob"}))
	follows := newMemoryFollows()
	counters := cache.NewCounters(slog.Default(), nil, nil, follows, time.Minute)
	return NewRelationshipService(follows, users, counters), follows
}

func TestFollowAndUnfollow(t *testing.T) {
	svc, follows := newRelationshipFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Follow(ctx, "alice", "bob"))
	assert.True(t, follows.pairs[[2]string{"alice", "bob"}])

	following, err := svc.Following(ctx, "alice", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, following)

	followers, err := svc.Followers(ctx, "bob", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, followers)

	require.NoError(t, svc.Unfollow(ctx, "alice", "bob"))
	assert.Empty(t, follows.pairs)
}

func TestFollowRejectsSelf(t *testing.T) {
	svc, _ := newRelationshipFixture(t)
	err := svc.Follow(context.Background(), "alice", "alice")
	assert.ErrorIs(t, err, ErrSelfFollow)
}

func TestFollowRejectsUnknownFollowee(t *testing.T) {
	svc, follows := newRelationshipFixture(t)
	err := svc.Follow(context.Background(), "alice", "ghost")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Empty(t, follows.pairs)
}
