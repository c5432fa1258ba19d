package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// Memory is a map-backed Store. It serves deployments without a database and
// the test suite.
type Memory struct {
	mu        sync.RWMutex
	nextID    int64
	users     map[int64]User
	byEmail   map[string]int64
	sessions  map[string]Session
	artifacts map[string]Artifact
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		nextID:    1,
		users:     make(map[int64]User),
		byEmail:   make(map[string]int64),
		sessions:  make(map[string]Session),
		artifacts: make(map[string]Artifact),
	}
}

func (m *Memory) CreateUser(_ context.Context, name, email, passwordHash string) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	email = strings.ToLower(email)
	if _, ok := m.byEmail[email]; ok {
		return User{}, ErrEmailTaken
	}

	u := User{
		ID:           m.nextID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	m.nextID++
	m.users[u.ID] = u
	m.byEmail[email] = u.ID
	return u, nil
}

func (m *Memory) UserByEmail(_ context.Context, email string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byEmail[strings.ToLower(email)]
	if !ok {
		return User{}, ErrNotFound
	}
	return m.users[id], nil
}

func (m *Memory) UserByID(_ context.Context, id int64) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (m *Memory) CreateSession(_ context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for token, existing := range m.sessions {
		if existing.UserID == s.UserID {
			delete(m.sessions, token)
		}
	}
	m.sessions[s.Token] = s
	return nil
}

func (m *Memory) SessionByToken(_ context.Context, token string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[token]
	if !ok {
		return Session{}, ErrNotFound
	}
	return s, nil
}

func (m *Memory) DeleteSession(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

func (m *Memory) DeleteExpiredSessions(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for token, s := range m.sessions {
		if s.ExpiresAt.Before(now) {
			delete(m.sessions, token)
			n++
		}
	}
	return n, nil
}

func (m *Memory) SaveArtifact(_ context.Context, a Artifact) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	m.artifacts[a.ID] = a
	return nil
}

func (m *Memory) ArtifactByID(_ context.Context, id string, userID int64) (Artifact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.artifacts[id]
	if !ok || a.UserID != userID {
		return Artifact{}, ErrNotFound
	}
	return a, nil
}

func (m *Memory) ListArtifacts(_ context.Context, userID int64, limit int) ([]ArtifactMeta, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []ArtifactMeta
	for _, a := range m.artifacts {
		if a.UserID != userID {
			continue
		}
		out = append(out, ArtifactMeta{
			ID:          a.ID,
			Filename:    a.Filename,
			ProjectType: a.ProjectType,
			CreatedAt:   a.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *Memory) DeleteArtifact(_ context.Context, id string, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.artifacts[id]
	if !ok || a.UserID != userID {
		return ErrNotFound
	}
	delete(m.artifacts, id)
	return nil
}
