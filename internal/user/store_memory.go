package user

import (
	"context"
	"strings"
	"sync"
)

type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]User // keyed by lowercased username
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]User)}
}

func (m *MemoryStore) Create(ctx context.Context, u User) error {
	key := strings.ToLower(u.Username)
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[key]; ok {
		return ErrUsernameTaken
	}
	m.users[key] = u
	return nil
}

func (m *MemoryStore) FindByUsername(ctx context.Context, username string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[strings.ToLower(username)]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}
