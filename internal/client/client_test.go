package client

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RishavSharma21/Song-PlayList-Manager/internal/playlist"
	"github.com/RishavSharma21/Song-PlayList-Manager/internal/song"
	"github.com/RishavSharma21/Song-PlayList-Manager/internal/token"
	"github.com/RishavSharma21/Song-PlayList-Manager/internal/user"
)

// startStack runs all three services on httptest servers sharing one
// signing secret, the way a deployment shares JWT_SECRET.
func startStack(t *testing.T) *Client {
	t.Helper()
	codec := token.NewCodec([]byte("e2e-secret"), 24*time.Hour)

	userSrv := httptest.NewServer(user.NewServer(user.NewMemoryStore(), codec).Router())
	t.Cleanup(userSrv.Close)

	songSrv := httptest.NewServer(song.NewServer(song.NewMemoryStore(), codec).Router())
	t.Cleanup(songSrv.Close)

	songClient := playlist.NewHTTPSongClient(songSrv.URL, nil)
	playlistSrv := httptest.NewServer(playlist.NewServer(playlist.NewMemoryStore(), codec, songClient).Router())
	t.Cleanup(playlistSrv.Close)

	return New(userSrv.URL, songSrv.URL, playlistSrv.URL)
}

func TestEndToEnd(t *testing.T) {
	c := startStack(t)
	ctx := context.Background()

	// Register alice, create a song owned by her.
	alice, err := c.Register(ctx, "Alice A", "alice", "secret123", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, alice.Token)

	login, err := c.Login(ctx, "alice", "secret123")
	require.NoError(t, err)
	aliceTok := login.Token

	created, err := c.CreateSong(ctx, aliceTok, song.Request{
		Title: "X", Artist: "Y", Album: "Z", Genre: "pop", Duration: 200,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Owner)

	// Playlist owned by alice; adding her song succeeds.
	pl, err := c.CreatePlaylist(ctx, aliceTok, playlist.Request{Name: "P"})
	require.NoError(t, err)

	pl, err = c.AddSongToPlaylist(ctx, aliceTok, pl.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{created.ID}, pl.SongIDs)

	// Bob cannot touch alice's playlist.
	bob, err := c.Register(ctx, "Bob B", "bob", "secret123", "bob@example.com")
	require.NoError(t, err)

	_, err = c.AddSongToPlaylist(ctx, bob.Token, pl.ID, created.ID)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.Status)

	// The composed view resolves the song with all its fields.
	view, err := c.PlaylistWithSongs(ctx, pl.ID)
	require.NoError(t, err)
	require.Len(t, view.Songs, 1)
	assert.Equal(t, "X", view.Songs[0].Title)
	assert.Equal(t, "Y", view.Songs[0].Artist)
	assert.Equal(t, "Z", view.Songs[0].Album)
	assert.Equal(t, "pop", view.Songs[0].Genre)
	assert.Equal(t, 200, view.Songs[0].Duration)
}

func TestEndToEnd_DanglingReference(t *testing.T) {
	c := startStack(t)
	ctx := context.Background()

	alice, err := c.Register(ctx, "Alice", "alice", "secret123", "a@example.com")
	require.NoError(t, err)
	tok := alice.Token

	var ids []string
	for _, title := range []string{"s1", "s2", "s3"} {
		s, err := c.CreateSong(ctx, tok, song.Request{Title: title, Artist: "A", Duration: 100})
		require.NoError(t, err)
		ids = append(ids, s.ID)
	}

	pl, err := c.CreatePlaylist(ctx, tok, playlist.Request{Name: "P"})
	require.NoError(t, err)
	for _, id := range ids {
		_, err = c.AddSongToPlaylist(ctx, tok, pl.ID, id)
		require.NoError(t, err)
	}

	// Delete the middle song directly from the song service. The playlist
	// keeps its reference; the composed view simply skips it.
	require.NoError(t, c.DeleteSong(ctx, tok, ids[1]))

	got, err := c.GetPlaylist(ctx, pl.ID)
	require.NoError(t, err)
	assert.Equal(t, ids, got.SongIDs, "no cascading delete of references")

	view, err := c.PlaylistWithSongs(ctx, pl.ID)
	require.NoError(t, err)
	require.Len(t, view.Songs, 2)
	assert.Equal(t, "s1", view.Songs[0].Title)
	assert.Equal(t, "s3", view.Songs[1].Title)

	// Removing the dangling reference still works.
	got, err = c.RemoveSongFromPlaylist(ctx, tok, pl.ID, ids[1])
	require.NoError(t, err)
	assert.Equal(t, []string{ids[0], ids[2]}, got.SongIDs)
}

func TestEndToEnd_TokenRejectedByEveryService(t *testing.T) {
	c := startStack(t)
	ctx := context.Background()

	// A token signed with a different secret is rejected by both resource
	// services independently.
	rogue := token.NewCodec([]byte("other-secret"), time.Hour)
	forged, err := rogue.Issue("alice")
	require.NoError(t, err)

	_, err = c.CreateSong(ctx, forged, song.Request{Title: "T", Artist: "A", Duration: 10})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)

	_, err = c.CreatePlaylist(ctx, forged, playlist.Request{Name: "P"})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)
}

func TestClient_ServiceUnreachable(t *testing.T) {
	c := New("http://127.0.0.1:1", "http://127.0.0.1:1", "http://127.0.0.1:1")

	_, err := c.ListSongs(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.Status)
	assert.Contains(t, apiErr.Message, "service unreachable")
}

func TestEndToEnd_RegisterConflict(t *testing.T) {
	c := startStack(t)
	ctx := context.Background()

	_, err := c.Register(ctx, "Alice", "alice", "secret123", "a@example.com")
	require.NoError(t, err)

	_, err = c.Register(ctx, "Other Alice", "alice", "secret456", "other@example.com")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.Status)
	assert.Equal(t, "username already exists", apiErr.Message)
}
