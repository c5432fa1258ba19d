package store_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casegen-ai/casegen/internal/store"
)

func TestMemory_Users(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()

	u, err := mem.CreateUser(ctx, "Ada", "Ada@Example.com", "hash")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", u.Email, "emails are stored lowercased")

	_, err = mem.CreateUser(ctx, "Other", "ada@example.com", "hash2")
	assert.ErrorIs(t, err, store.ErrEmailTaken)

	byEmail, err := mem.UserByEmail(ctx, "ADA@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	_, err = mem.UserByID(ctx, 999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMemory_ArtifactOwnership(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()

	a := store.Artifact{ID: "art-1", UserID: 1, Filename: "f", Result: []byte("{}"), ProjectType: "Web"}
	require.NoError(t, mem.SaveArtifact(ctx, a))

	_, err := mem.ArtifactByID(ctx, "art-1", 1)
	require.NoError(t, err)

	_, err = mem.ArtifactByID(ctx, "art-1", 2)
	assert.ErrorIs(t, err, store.ErrNotFound, "another user's artifact must look missing")

	err = mem.DeleteArtifact(ctx, "art-1", 2)
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, mem.DeleteArtifact(ctx, "art-1", 1))
	_, err = mem.ArtifactByID(ctx, "art-1", 1)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMemory_ListArtifactsByRecency(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		require.NoError(t, mem.SaveArtifact(ctx, store.Artifact{
			ID:        fmt.Sprintf("art-%d", i),
			UserID:    1,
			Filename:  fmt.Sprintf("file-%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, mem.SaveArtifact(ctx, store.Artifact{ID: "other", UserID: 2, CreatedAt: time.Now()}))

	items, err := mem.ListArtifacts(ctx, 1, 3)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "art-4", items[0].ID, "newest first")
	assert.Equal(t, "art-3", items[1].ID)
	assert.Equal(t, "art-2", items[2].ID)
}

func TestMemory_SessionReplacement(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()
	expiry := time.Now().Add(time.Hour)

	require.NoError(t, mem.CreateSession(ctx, store.Session{UserID: 1, Token: "t1", ExpiresAt: expiry}))
	require.NoError(t, mem.CreateSession(ctx, store.Session{UserID: 1, Token: "t2", ExpiresAt: expiry}))

	_, err := mem.SessionByToken(ctx, "t1")
	assert.ErrorIs(t, err, store.ErrNotFound, "a new login invalidates the previous session")

	s, err := mem.SessionByToken(ctx, "t2")
	require.NoError(t, err)
	assert.EqualValues(t, 1, s.UserID)
}

func TestMemory_DeleteExpiredSessions(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, mem.CreateSession(ctx, store.Session{UserID: 1, Token: "old", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, mem.CreateSession(ctx, store.Session{UserID: 2, Token: "live", ExpiresAt: now.Add(time.Hour)}))

	n, err := mem.DeleteExpiredSessions(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = mem.SessionByToken(ctx, "live")
	assert.NoError(t, err)
}
