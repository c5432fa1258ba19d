package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casegen-ai/casegen/internal/auth"
	"github.com/casegen-ai/casegen/internal/store"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, auth.CheckPassword("hunter22", hash))
	assert.False(t, auth.CheckPassword("hunter23", hash))
	assert.False(t, auth.CheckPassword("hunter22", "not-a-hash"))
}

func TestNewToken(t *testing.T) {
	a, err := auth.NewToken()
	require.NoError(t, err)
	b, err := auth.NewToken()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

func newSessions(t *testing.T, ttl time.Duration) (*auth.Sessions, *store.Memory, store.User) {
	t.Helper()
	mem := store.NewMemory()
	user, err := mem.CreateUser(context.Background(), "Ada", "ada@example.com", "hash")
	require.NoError(t, err)
	return auth.NewSessions(mem, mem, ttl), mem, user
}

func TestSessions_IssueAndResolve(t *testing.T) {
	sessions, _, user := newSessions(t, time.Hour)
	ctx := context.Background()

	token, err := sessions.Issue(ctx, user.ID)
	require.NoError(t, err)

	got, err := sessions.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "ada@example.com", got.Email)
}

func TestSessions_RejectsBadTokens(t *testing.T) {
	sessions, _, _ := newSessions(t, time.Hour)
	ctx := context.Background()

	_, err := sessions.Resolve(ctx, "")
	assert.ErrorIs(t, err, auth.ErrUnauthorized)

	_, err = sessions.Resolve(ctx, "deadbeef")
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
}

func TestSessions_ExpiryAndSweep(t *testing.T) {
	sessions, mem, user := newSessions(t, -time.Minute)
	ctx := context.Background()

	token, err := sessions.Issue(ctx, user.ID)
	require.NoError(t, err)

	_, err = sessions.Resolve(ctx, token)
	assert.ErrorIs(t, err, auth.ErrUnauthorized, "expired session must not resolve")

	n, err := sessions.Sweep(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = mem.SessionByToken(ctx, token)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSessions_ReissueReplacesOldSession(t *testing.T) {
	sessions, _, user := newSessions(t, time.Hour)
	ctx := context.Background()

	first, err := sessions.Issue(ctx, user.ID)
	require.NoError(t, err)
	second, err := sessions.Issue(ctx, user.ID)
	require.NoError(t, err)

	_, err = sessions.Resolve(ctx, first)
	assert.ErrorIs(t, err, auth.ErrUnauthorized)

	got, err := sessions.Resolve(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestSessions_Revoke(t *testing.T) {
	sessions, _, user := newSessions(t, time.Hour)
	ctx := context.Background()

	token, err := sessions.Issue(ctx, user.ID)
	require.NoError(t, err)
	require.NoError(t, sessions.Revoke(ctx, token))

	_, err = sessions.Resolve(ctx, token)
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
}
