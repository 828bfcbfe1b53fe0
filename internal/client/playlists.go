package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/RishavSharma21/Song-PlayList-Manager/internal/playlist"
)

// PlaylistWithSongs is the composed view served by the playlist service:
// the playlist plus whichever referenced songs still resolve.
type PlaylistWithSongs struct {
	Playlist playlist.Playlist `json:"playlist"`
	Songs    []playlist.Song   `json:"songs"`
}

func (c *Client) CreatePlaylist(ctx context.Context, bearer string, req playlist.Request) (playlist.Playlist, error) {
	var pl playlist.Playlist
	if err := c.do(ctx, http.MethodPost, c.playlistURL+"/playlists", bearer, req, &pl); err != nil {
		return playlist.Playlist{}, err
	}
	return pl, nil
}

func (c *Client) ListPlaylists(ctx context.Context) ([]playlist.Playlist, error) {
	var playlists []playlist.Playlist
	if err := c.do(ctx, http.MethodGet, c.playlistURL+"/playlists", "", nil, &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}

func (c *Client) GetPlaylist(ctx context.Context, id string) (playlist.Playlist, error) {
	var pl playlist.Playlist
	if err := c.do(ctx, http.MethodGet, c.playlistURL+"/playlists/"+url.PathEscape(id), "", nil, &pl); err != nil {
		return playlist.Playlist{}, err
	}
	return pl, nil
}

func (c *Client) PlaylistWithSongs(ctx context.Context, id string) (PlaylistWithSongs, error) {
	var out PlaylistWithSongs
	if err := c.do(ctx, http.MethodGet, c.playlistURL+"/playlists/"+url.PathEscape(id)+"/songs", "", nil, &out); err != nil {
		return PlaylistWithSongs{}, err
	}
	return out, nil
}

func (c *Client) SearchPlaylists(ctx context.Context, query string) ([]playlist.Playlist, error) {
	q := url.Values{}
	q.Set("q", query)

	var playlists []playlist.Playlist
	if err := c.do(ctx, http.MethodGet, c.playlistURL+"/playlists/search?"+q.Encode(), "", nil, &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}

func (c *Client) MyPlaylists(ctx context.Context, bearer string) ([]playlist.Playlist, error) {
	var playlists []playlist.Playlist
	if err := c.do(ctx, http.MethodGet, c.playlistURL+"/playlists/mine", bearer, nil, &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}

func (c *Client) UpdatePlaylist(ctx context.Context, bearer, id string, req playlist.Request) (playlist.Playlist, error) {
	var pl playlist.Playlist
	if err := c.do(ctx, http.MethodPut, c.playlistURL+"/playlists/"+url.PathEscape(id), bearer, req, &pl); err != nil {
		return playlist.Playlist{}, err
	}
	return pl, nil
}

func (c *Client) DeletePlaylist(ctx context.Context, bearer, id string) error {
	return c.do(ctx, http.MethodDelete, c.playlistURL+"/playlists/"+url.PathEscape(id), bearer, nil, nil)
}

func (c *Client) AddSongToPlaylist(ctx context.Context, bearer, playlistID, songID string) (playlist.Playlist, error) {
	path := c.playlistURL + "/playlists/" + url.PathEscape(playlistID) + "/songs/" + url.PathEscape(songID)
	var pl playlist.Playlist
	if err := c.do(ctx, http.MethodPost, path, bearer, nil, &pl); err != nil {
		return playlist.Playlist{}, err
	}
	return pl, nil
}

func (c *Client) RemoveSongFromPlaylist(ctx context.Context, bearer, playlistID, songID string) (playlist.Playlist, error) {
	path := c.playlistURL + "/playlists/" + url.PathEscape(playlistID) + "/songs/" + url.PathEscape(songID)
	var pl playlist.Playlist
	if err := c.do(ctx, http.MethodDelete, path, bearer, nil, &pl); err != nil {
		return playlist.Playlist{}, err
	}
	return pl, nil
}
