package service

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hayZedTech/vibestream-backend/internal/adapter/storage"
)

// Profile is the minimal user snapshot attached to notifications and chat
// listings so clients can render names and avatars without extra round trips.
type Profile struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Bio       string `json:"bio,omitempty"`
}

// Enricher resolves usernames to profile snapshots.
type Enricher interface {
	Resolve(ctx context.Context, username string) (Profile, error)
	Invalidate(username string)
}

type ProfileEnricher struct {
	users storage.UserRepository
	cache *lru.Cache[string, Profile]
}

// NewProfileEnricher provides a thread-safe resolver with an internal LRU
// holding the hot identities.
func NewProfileEnricher(users storage.UserRepository) *ProfileEnricher {
	cache, _ := lru.New[string, Profile](10000)
	return &ProfileEnricher{users: users, cache: cache}
}

// Resolve follows a cache-aside strategy. An unknown username resolves to a
// bare profile rather than an error, so enrichment never blocks delivery of
// the record it decorates.
func (e *ProfileEnricher) Resolve(ctx context.Context, username string) (Profile, error) {
	if username == "" {
		return Profile{}, nil
	}
	if cached, ok := e.cache.Get(username); ok {
		return cached, nil
	}

	u, err := e.users.FindByUsername(ctx, username)
	if err != nil {
		return Profile{Username: username}, nil
	}

	p := Profile{Username: u.Username, AvatarURL: u.AvatarURL, Bio: u.Bio}
	e.cache.Add(username, p)
	return p, nil
}

// Invalidate drops a cached snapshot after a profile mutation.
func (e *ProfileEnricher) Invalidate(username string) {
	e.cache.Remove(username)
}
