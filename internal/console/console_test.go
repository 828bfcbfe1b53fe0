package console

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RishavSharma21/Song-PlayList-Manager/internal/client"
	"github.com/RishavSharma21/Song-PlayList-Manager/internal/playlist"
	"github.com/RishavSharma21/Song-PlayList-Manager/internal/song"
	"github.com/RishavSharma21/Song-PlayList-Manager/internal/token"
	"github.com/RishavSharma21/Song-PlayList-Manager/internal/user"
)

// run feeds a scripted sequence of menu inputs to the console against a
// real in-process stack and returns everything it printed.
func run(t *testing.T, script ...string) string {
	t.Helper()
	codec := token.NewCodec([]byte("console-secret"), time.Hour)

	userSrv := httptest.NewServer(user.NewServer(user.NewMemoryStore(), codec).Router())
	t.Cleanup(userSrv.Close)
	songSrv := httptest.NewServer(song.NewServer(song.NewMemoryStore(), codec).Router())
	t.Cleanup(songSrv.Close)
	songClient := playlist.NewHTTPSongClient(songSrv.URL, nil)
	playlistSrv := httptest.NewServer(playlist.NewServer(playlist.NewMemoryStore(), codec, songClient).Router())
	t.Cleanup(playlistSrv.Close)

	api := client.New(userSrv.URL, songSrv.URL, playlistSrv.URL)

	in := strings.NewReader(strings.Join(script, "\n") + "\n")
	var out bytes.Buffer
	c := New(api, in, &out, log.New(io.Discard))

	require.NoError(t, c.Run(context.Background()))
	return out.String()
}

func TestConsole_BrowseAsGuest(t *testing.T) {
	out := run(t,
		"3", // browse songs
		"0", // exit
	)
	assert.Contains(t, out, "(nothing found)")
	assert.Contains(t, out, "Bye!")
}

func TestConsole_RegisterAddAndListSong(t *testing.T) {
	out := run(t,
		"2", // register
		"Alice A", "alice", "secret123", "alice@example.com",
		"1", // songs menu
		"4", // add song
		"My Song", "The Artist", "The Album", "pop", "200",
		"1", // list songs
		"0", // back
		"0", // exit
	)
	assert.Contains(t, out, "registration successful")
	assert.Contains(t, out, "Logged in as alice")
	assert.Contains(t, out, "My Song")
	assert.Contains(t, out, "The Artist")
	assert.Contains(t, out, "3:20")
}

func TestConsole_LoginFailureKeepsGuestSession(t *testing.T) {
	out := run(t,
		"1", // login
		"nobody", "wrong",
		"0", // exit
	)
	assert.Contains(t, out, "invalid username or password")
	assert.NotContains(t, out, "Logged in as")
}

func TestConsole_PlaylistFlow(t *testing.T) {
	out := run(t,
		"2", // register
		"Alice A", "alice", "secret123", "alice@example.com",
		"1", // songs
		"4", // add song
		"Song One", "Artist", "", "pop", "180",
		"0", // back
		"2", // playlists
		"4", // create playlist
		"Road Trip", "driving songs",
		"1", // list playlists
		"0", // back
		"0", // exit
	)
	assert.Contains(t, out, "Road Trip")
	assert.Contains(t, out, "driving songs")
}
