// Package auth covers password hashing and bearer-token sessions.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/casegen-ai/casegen/internal/store"
)

// ErrInvalidCredentials covers both unknown emails and wrong passwords, so
// responses don't leak which one it was.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrUnauthorized reports a missing, unknown, or expired token.
var ErrUnauthorized = errors.New("unauthorized")

// HashPassword derives a bcrypt hash from a plaintext password.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// CheckPassword reports whether password matches hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NewToken returns a 64-hex-char random session token.
func NewToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("token entropy: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Sessions issues and resolves bearer tokens against a session store. A user
// has at most one live session; logging in again replaces the old one.
type Sessions struct {
	store store.SessionStore
	users store.UserStore
	ttl   time.Duration
}

// NewSessions builds a session service with the given token lifetime.
func NewSessions(s store.SessionStore, u store.UserStore, ttl time.Duration) *Sessions {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Sessions{store: s, users: u, ttl: ttl}
}

// Issue creates a fresh token for the user.
func (s *Sessions) Issue(ctx context.Context, userID int64) (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", err
	}
	err = s.store.CreateSession(ctx, store.Session{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(s.ttl),
	})
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return token, nil
}

// Resolve maps a bearer token to its user, rejecting expired sessions.
func (s *Sessions) Resolve(ctx context.Context, token string) (store.User, error) {
	if token == "" {
		return store.User{}, ErrUnauthorized
	}
	sess, err := s.store.SessionByToken(ctx, token)
	if errors.Is(err, store.ErrNotFound) {
		return store.User{}, ErrUnauthorized
	}
	if err != nil {
		return store.User{}, err
	}
	if sess.ExpiresAt.Before(time.Now()) {
		return store.User{}, ErrUnauthorized
	}
	u, err := s.users.UserByID(ctx, sess.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return store.User{}, ErrUnauthorized
	}
	return u, err
}

// Revoke invalidates a token. Revoking an unknown token is not an error.
func (s *Sessions) Revoke(ctx context.Context, token string) error {
	return s.store.DeleteSession(ctx, token)
}

// Sweep removes expired sessions.
func (s *Sessions) Sweep(ctx context.Context) (int64, error) {
	return s.store.DeleteExpiredSessions(ctx, time.Now())
}
