package playlist

import (
	"context"
	"sort"
	"strings"
	"sync"
)

type MemoryStore struct {
	mu        sync.RWMutex
	playlists map[string]Playlist
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{playlists: make(map[string]Playlist)}
}

func (m *MemoryStore) Insert(ctx context.Context, p Playlist) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playlists[p.ID] = clone(p)
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, id string) (Playlist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.playlists[id]
	if !ok {
		return Playlist{}, ErrNotFound
	}
	return clone(p), nil
}

func (m *MemoryStore) List(ctx context.Context) ([]Playlist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.collect(func(Playlist) bool { return true }), nil
}

func (m *MemoryStore) ListByOwner(ctx context.Context, owner string) ([]Playlist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.collect(func(p Playlist) bool { return p.Owner == owner }), nil
}

func (m *MemoryStore) SearchByName(ctx context.Context, query string) ([]Playlist, error) {
	q := strings.ToLower(query)
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.collect(func(p Playlist) bool {
		return strings.Contains(strings.ToLower(p.Name), q)
	}), nil
}

func (m *MemoryStore) Update(ctx context.Context, p Playlist) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.playlists[p.ID]; !ok {
		return ErrNotFound
	}
	m.playlists[p.ID] = clone(p)
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.playlists[id]; !ok {
		return ErrNotFound
	}
	delete(m.playlists, id)
	return nil
}

func (m *MemoryStore) collect(keep func(Playlist) bool) []Playlist {
	out := []Playlist{}
	for _, p := range m.playlists {
		if keep(p) {
			out = append(out, clone(p))
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

// clone copies the song-id slice so callers cannot mutate stored state.
func clone(p Playlist) Playlist {
	cp := p
	cp.SongIDs = make([]string, len(p.SongIDs))
	copy(cp.SongIDs, p.SongIDs)
	return cp
}
