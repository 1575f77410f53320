package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayZedTech/vibestream-backend/internal/domain/model"
)

func TestResolveCachesProfile(t *testing.T) {
	users := newMemoryUsers()
	require.NoError(t, users.Create(context.Background(), &model.User{
		Username:  "alice",
		AvatarURL: "/media/a.png",
		Bio:       "hi",
	}))
	enricher := NewProfileEnricher(users)

	p, err := enricher.Resolve(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, Profile{Username: "alice", AvatarURL: "/media/a.png", Bio: "hi"}, p)

	// A later mutation is invisible until the entry is invalidated.
	users.byName["alice"].Bio = "changed"
	p, _ = enricher.Resolve(context.Background(), "alice")
	assert.Equal(t, "hi", p.Bio)

	enricher.Invalidate("alice")
	p, _ = enricher.Resolve(context.Background(), "alice")
	assert.Equal(t, "changed", p.Bio)
}

func TestResolveUnknownUserIsBareProfile(t *testing.T) {
	enricher := NewProfileEnricher(newMemoryUsers())

	p, err := enricher.Resolve(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Equal(t, Profile{Username: "ghost"}, p)

	p, err = enricher.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, Profile{}, p)
}
