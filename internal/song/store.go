package song

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("song not found")

// Store is the keyed collection backing the song service. Search is a
// predicate scan; there are no cross-collection joins.
type Store interface {
	Insert(ctx context.Context, s Song) error
	Get(ctx context.Context, id string) (Song, error)
	List(ctx context.Context) ([]Song, error)
	ListByOwner(ctx context.Context, owner string) ([]Song, error)
	Search(ctx context.Context, field, query string) ([]Song, error)
	// Update replaces the stored song. ErrNotFound when id is absent, so a
	// concurrent delete cannot be resurrected by a racing update.
	Update(ctx context.Context, s Song) error
	Delete(ctx context.Context, id string) error
}
