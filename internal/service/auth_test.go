package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayZedTech/vibestream-backend/config"
	"github.com/hayZedTech/vibestream-backend/internal/adapter/storage"
	"github.com/hayZedTech/vibestream-backend/internal/domain/model"
)

type memoryUsers struct {
	byName map[string]*model.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byName: make(map[string]*model.User)}
}

func (m *memoryUsers) Create(_ context.Context, u *model.User) error {
	m.byName[u.Username] = u
	return nil
}

func (m *memoryUsers) FindByUsername(_ context.Context, username string) (*model.User, error) {
	if u, ok := m.byName[username]; ok {
		return u, nil
	}
	return nil, storage.ErrNotFound
}

func (m *memoryUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.byName {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memoryUsers) Update(_ context.Context, u *model.User) error {
	m.byName[u.Username] = u
	return nil
}

func newAuthFixture() (*AuthService, *memoryUsers) {
	users := newMemoryUsers()
	cfg := &config.Config{}
	cfg.Auth.Secret = "test-secret"
	cfg.Auth.TokenTTL = time.Hour
	return NewAuthService(cfg, users), users
}

func TestRegisterAndLogin(t *testing.T) {
	svc, users := newAuthFixture()
	ctx := context.Background()

	u, err := svc.Register(ctx, "alice", "alice@example.com", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.NotEqual(t, "hunter2", u.PasswordHash)
	require.Contains(t, users.byName, "alice")

	token, err := svc.Login(ctx, "alice", "hunter2")
	require.NoError(t, err)

	identity, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", identity)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "hunter2")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other@example.com", "pw")
	assert.ErrorIs(t, err, ErrUserExists)

	_, err = svc.Register(ctx, "bob", "alice@example.com", "pw")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestRegisterRequiresAllFields(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "  ", "alice@example.com", "pw")
	assert.Error(t, err)
	_, err = svc.Register(ctx, "alice", "", "pw")
	assert.Error(t, err)
	_, err = svc.Register(ctx, "alice", "alice@example.com", "")
	assert.Error(t, err)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "hunter2")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = svc.Login(ctx, "nobody", "hunter2")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifyRejectsForeignToken(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()
	_, err := svc.Register(ctx, "alice", "alice@example.com", "hunter2")
	require.NoError(t, err)
	token, err := svc.Login(ctx, "alice", "hunter2")
	require.NoError(t, err)

	other, _ := newAuthFixture()
	other.secret = []byte("different-secret")
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrUnauthorized)
}
