package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/RishavSharma21/Song-PlayList-Manager/internal/song"
)

func (c *Client) CreateSong(ctx context.Context, bearer string, req song.Request) (song.Song, error) {
	var s song.Song
	if err := c.do(ctx, http.MethodPost, c.songURL+"/songs", bearer, req, &s); err != nil {
		return song.Song{}, err
	}
	return s, nil
}

func (c *Client) ListSongs(ctx context.Context) ([]song.Song, error) {
	var songs []song.Song
	if err := c.do(ctx, http.MethodGet, c.songURL+"/songs", "", nil, &songs); err != nil {
		return nil, err
	}
	return songs, nil
}

func (c *Client) GetSong(ctx context.Context, id string) (song.Song, error) {
	var s song.Song
	if err := c.do(ctx, http.MethodGet, c.songURL+"/songs/"+url.PathEscape(id), "", nil, &s); err != nil {
		return song.Song{}, err
	}
	return s, nil
}

func (c *Client) SearchSongs(ctx context.Context, field, query string) ([]song.Song, error) {
	q := url.Values{}
	q.Set("field", field)
	q.Set("q", query)

	var songs []song.Song
	if err := c.do(ctx, http.MethodGet, c.songURL+"/songs/search?"+q.Encode(), "", nil, &songs); err != nil {
		return nil, err
	}
	return songs, nil
}

func (c *Client) MySongs(ctx context.Context, bearer string) ([]song.Song, error) {
	var songs []song.Song
	if err := c.do(ctx, http.MethodGet, c.songURL+"/songs/mine", bearer, nil, &songs); err != nil {
		return nil, err
	}
	return songs, nil
}

func (c *Client) UpdateSong(ctx context.Context, bearer, id string, req song.Request) (song.Song, error) {
	var s song.Song
	if err := c.do(ctx, http.MethodPut, c.songURL+"/songs/"+url.PathEscape(id), bearer, req, &s); err != nil {
		return song.Song{}, err
	}
	return s, nil
}

func (c *Client) DeleteSong(ctx context.Context, bearer, id string) error {
	return c.do(ctx, http.MethodDelete, c.songURL+"/songs/"+url.PathEscape(id), bearer, nil, nil)
}
