package song

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps songs in a mutex-guarded map. Used by tests and by the
// service when it runs without DATABASE_URL set.
type MemoryStore struct {
	mu    sync.RWMutex
	songs map[string]Song
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{songs: make(map[string]Song)}
}

func (m *MemoryStore) Insert(ctx context.Context, s Song) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.songs[s.ID] = s
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, id string) (Song, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.songs[id]
	if !ok {
		return Song{}, ErrNotFound
	}
	return s, nil
}

func (m *MemoryStore) List(ctx context.Context) ([]Song, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.collect(func(Song) bool { return true }), nil
}

func (m *MemoryStore) ListByOwner(ctx context.Context, owner string) ([]Song, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.collect(func(s Song) bool { return s.Owner == owner }), nil
}

func (m *MemoryStore) Search(ctx context.Context, field, query string) ([]Song, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.collect(func(s Song) bool { return s.matches(field, query) }), nil
}

func (m *MemoryStore) Update(ctx context.Context, s Song) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.songs[s.ID]; !ok {
		return ErrNotFound
	}
	m.songs[s.ID] = s
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.songs[id]; !ok {
		return ErrNotFound
	}
	delete(m.songs, id)
	return nil
}

// collect snapshots matching songs ordered by creation time, oldest first.
// Callers must hold at least the read lock.
func (m *MemoryStore) collect(keep func(Song) bool) []Song {
	out := []Song{}
	for _, s := range m.songs {
		if keep(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
