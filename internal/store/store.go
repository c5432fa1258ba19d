// Package store persists users, sessions, and generated artifacts. Two
// implementations exist: MySQL for deployments and an in-memory variant used
// when no DSN is configured and in tests.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound reports a missing or not-owned record.
var ErrNotFound = errors.New("not found")

// ErrEmailTaken reports a signup against an already-registered email.
var ErrEmailTaken = errors.New("email already registered")

// User is a registered account.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is a bearer-token login session.
type Session struct {
	UserID    int64
	Token     string
	ExpiresAt time.Time
}

// Artifact is one stored generation result. Result holds the serialized
// GenerationResult JSON; Requirements is the (truncated) input text.
type Artifact struct {
	ID           string
	UserID       int64
	Filename     string
	Requirements string
	Result       []byte
	ProjectType  string
	CreatedAt    time.Time
}

// ArtifactMeta is the listing view of an artifact, without the payload.
type ArtifactMeta struct {
	ID          string
	Filename    string
	ProjectType string
	CreatedAt   time.Time
}

// UserStore manages accounts.
type UserStore interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (User, error)
	UserByEmail(ctx context.Context, email string) (User, error)
	UserByID(ctx context.Context, id int64) (User, error)
}

// SessionStore manages bearer-token sessions. CreateSession replaces any
// existing session for the same user.
type SessionStore interface {
	CreateSession(ctx context.Context, s Session) error
	SessionByToken(ctx context.Context, token string) (Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// ArtifactStore manages generated artifacts. Lookups are always scoped to an
// owning user.
type ArtifactStore interface {
	SaveArtifact(ctx context.Context, a Artifact) error
	ArtifactByID(ctx context.Context, id string, userID int64) (Artifact, error)
	ListArtifacts(ctx context.Context, userID int64, limit int) ([]ArtifactMeta, error)
	DeleteArtifact(ctx context.Context, id string, userID int64) error
}

// Store bundles the three stores a server needs.
type Store interface {
	UserStore
	SessionStore
	ArtifactStore
}
