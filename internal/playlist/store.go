package playlist

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("playlist not found")

type Store interface {
	Insert(ctx context.Context, p Playlist) error
	Get(ctx context.Context, id string) (Playlist, error)
	List(ctx context.Context) ([]Playlist, error)
	ListByOwner(ctx context.Context, owner string) ([]Playlist, error)
	// SearchByName matches a case-insensitive substring of the name.
	SearchByName(ctx context.Context, query string) ([]Playlist, error)
	// Update replaces the stored playlist; ErrNotFound when the id is gone,
	// so a racing delete wins over a concurrent update.
	Update(ctx context.Context, p Playlist) error
	Delete(ctx context.Context, id string) error
}
