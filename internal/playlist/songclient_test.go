package playlist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RishavSharma21/Song-PlayList-Manager/internal/httpx"
)

func TestHTTPSongClient_GetSong(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/songs/s1":
			httpx.WriteJSON(w, http.StatusOK, Song{ID: "s1", Title: "One", Artist: "A", Duration: 100})
		case "/songs/missing":
			httpx.WriteError(w, http.StatusNotFound, "song not found")
		default:
			httpx.WriteError(w, http.StatusInternalServerError, "boom")
		}
	}))
	defer srv.Close()

	client := NewHTTPSongClient(srv.URL, nil)
	ctx := context.Background()

	s, err := client.GetSong(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "One", s.Title)

	_, err = client.GetSong(ctx, "missing")
	assert.ErrorIs(t, err, ErrSongNotFound)

	_, err = client.GetSong(ctx, "broken")
	assert.ErrorIs(t, err, ErrSongUnavailable)
}

func TestHTTPSongClient_ServiceDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately: every request now fails to connect

	client := NewHTTPSongClient(srv.URL, nil)
	_, err := client.GetSong(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrSongUnavailable)
}

func TestHTTPSongClient_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := NewHTTPSongClient(srv.URL, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetSong(ctx, "s1")
	assert.ErrorIs(t, err, ErrSongUnavailable)
}
