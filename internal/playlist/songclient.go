package playlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrSongNotFound means the song service answered and the song is gone.
	ErrSongNotFound = errors.New("song not found")
	// ErrSongUnavailable means the song service could not be reached or
	// answered with an unexpected status.
	ErrSongUnavailable = errors.New("song service unavailable")
)

// Song is the playlist service's view of a song. It mirrors the song
// service's response shape; the playlist service never stores these.
type Song struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album"`
	Genre    string `json:"genre"`
	Duration int    `json:"duration"`
	Owner    string `json:"owner"`
}

type SongClient interface {
	GetSong(ctx context.Context, id string) (Song, error)
}

// HTTPSongClient looks songs up over the song service's public read
// endpoint. When a redis client is present, hits are cached briefly so the
// composer's fan-out does not hammer the song service for popular playlists;
// staleness within the TTL is acceptable because playlist/song consistency
// is best-effort by design.
type HTTPSongClient struct {
	baseURL  string
	http     *http.Client
	rdb      *redis.Client
	cacheTTL time.Duration
}

func NewHTTPSongClient(baseURL string, rdb *redis.Client) *HTTPSongClient {
	return &HTTPSongClient{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 5 * time.Second,
		},
		rdb:      rdb,
		cacheTTL: 30 * time.Second,
	}
}

func (c *HTTPSongClient) GetSong(ctx context.Context, id string) (Song, error) {
	if s, ok := c.cacheGet(ctx, id); ok {
		return s, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/songs/"+id, nil)
	if err != nil {
		return Song{}, fmt.Errorf("%w: %v", ErrSongUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Song{}, fmt.Errorf("%w: %v", ErrSongUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return Song{}, ErrSongNotFound
	default:
		return Song{}, fmt.Errorf("%w: status %d", ErrSongUnavailable, resp.StatusCode)
	}

	var s Song
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return Song{}, fmt.Errorf("%w: %v", ErrSongUnavailable, err)
	}

	c.cacheSet(ctx, s)
	return s, nil
}

func songCacheKey(id string) string {
	return "song:" + id
}

func (c *HTTPSongClient) cacheGet(ctx context.Context, id string) (Song, bool) {
	if c.rdb == nil {
		return Song{}, false
	}
	data, err := c.rdb.Get(ctx, songCacheKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("playlist-service: song cache get: %v", err)
		}
		return Song{}, false
	}
	var s Song
	if err := json.Unmarshal(data, &s); err != nil {
		return Song{}, false
	}
	return s, true
}

func (c *HTTPSongClient) cacheSet(ctx context.Context, s Song) {
	if c.rdb == nil {
		return
	}
	data, err := json.Marshal(s)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, songCacheKey(s.ID), data, c.cacheTTL).Err(); err != nil {
		log.Printf("playlist-service: song cache set: %v", err)
	}
}
