package playlist

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/sync/errgroup"
)

// Composer expands a playlist's song-id references into full songs by
// querying the song service. Lookups run concurrently; a reference that no
// longer resolves, or a lookup that fails, is dropped from the result
// rather than failing the whole expansion.
type Composer struct {
	songs         SongClient
	lookupTimeout time.Duration
	maxInFlight   int
}

func NewComposer(songs SongClient) *Composer {
	return &Composer{
		songs:         songs,
		lookupTimeout: 3 * time.Second,
		maxInFlight:   8,
	}
}

// Expand resolves the playlist's references in their stored order. The
// returned slice may be shorter than the reference list; it is never nil.
func (c *Composer) Expand(ctx context.Context, pl Playlist) []Song {
	resolved := make([]*Song, len(pl.SongIDs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxInFlight)
	for i, id := range pl.SongIDs {
		i, id := i, id
		g.Go(func() error {
			lookupCtx, cancel := context.WithTimeout(ctx, c.lookupTimeout)
			defer cancel()

			s, err := c.songs.GetSong(lookupCtx, id)
			if err != nil {
				if !errors.Is(err, ErrSongNotFound) {
					log.Printf("playlist-service: expand %s: song %s: %v", pl.ID, id, err)
				}
				return nil
			}
			resolved[i] = &s
			return nil
		})
	}
	_ = g.Wait()

	out := make([]Song, 0, len(resolved))
	for _, s := range resolved {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}
