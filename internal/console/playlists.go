package console

import (
	"context"
	"fmt"

	"github.com/RishavSharma21/Song-PlayList-Manager/internal/playlist"
)

func (c *Console) playlistMenu(ctx context.Context) {
	for {
		c.printMenu("Playlists",
			"1. List all playlists",
			"2. Search playlists by name",
			"3. My playlists",
			"4. Create a playlist",
			"5. Show playlist with songs",
			"6. Add song to playlist",
			"7. Remove song from playlist",
			"8. Rename a playlist",
			"9. Delete a playlist",
			"0. Back",
		)
		switch c.prompt("Choose") {
		case "1":
			c.listPlaylists(ctx)
		case "2":
			c.searchPlaylists(ctx)
		case "3":
			c.myPlaylists(ctx)
		case "4":
			c.createPlaylist(ctx)
		case "5":
			c.showPlaylist(ctx)
		case "6":
			c.addSongToPlaylist(ctx)
		case "7":
			c.removeSongFromPlaylist(ctx)
		case "8":
			c.renamePlaylist(ctx)
		case "9":
			c.deletePlaylist(ctx)
		case "0", "":
			return
		default:
			c.printError("unknown choice")
		}
	}
}

func (c *Console) listPlaylists(ctx context.Context) {
	playlists, err := c.api.ListPlaylists(ctx)
	if err != nil {
		c.printError(err.Error())
		return
	}
	c.renderPlaylists(playlists)
}

func (c *Console) searchPlaylists(ctx context.Context) {
	query := c.prompt("Name contains")
	playlists, err := c.api.SearchPlaylists(ctx, query)
	if err != nil {
		c.printError(err.Error())
		return
	}
	c.renderPlaylists(playlists)
}

func (c *Console) myPlaylists(ctx context.Context) {
	playlists, err := c.api.MyPlaylists(ctx, c.session.token)
	if err != nil {
		c.printError(err.Error())
		return
	}
	c.renderPlaylists(playlists)
}

func (c *Console) createPlaylist(ctx context.Context) {
	req := playlist.Request{
		Name:        c.prompt("Name"),
		Description: c.prompt("Description"),
	}
	pl, err := c.api.CreatePlaylist(ctx, c.session.token, req)
	if err != nil {
		c.printError(err.Error())
		return
	}
	c.printSuccess(fmt.Sprintf("created %q (id %s)", pl.Name, pl.ID))
}

func (c *Console) showPlaylist(ctx context.Context) {
	id := c.prompt("Playlist id")
	view, err := c.api.PlaylistWithSongs(ctx, id)
	if err != nil {
		c.printError(err.Error())
		return
	}

	c.printTitle(view.Playlist.Name)
	if view.Playlist.Description != "" {
		fmt.Fprintln(c.out, view.Playlist.Description)
	}
	if missing := len(view.Playlist.SongIDs) - len(view.Songs); missing > 0 {
		fmt.Fprintf(c.out, "(%d reference(s) could not be resolved)\n", missing)
	}
	c.renderResolvedSongs(view.Songs)
}

func (c *Console) addSongToPlaylist(ctx context.Context) {
	playlistID := c.prompt("Playlist id")
	songID := c.prompt("Song id")

	pl, err := c.api.AddSongToPlaylist(ctx, c.session.token, playlistID, songID)
	if err != nil {
		c.printError(err.Error())
		return
	}
	c.printSuccess(fmt.Sprintf("%q now has %d song(s)", pl.Name, len(pl.SongIDs)))
}

func (c *Console) removeSongFromPlaylist(ctx context.Context) {
	playlistID := c.prompt("Playlist id")
	songID := c.prompt("Song id")

	pl, err := c.api.RemoveSongFromPlaylist(ctx, c.session.token, playlistID, songID)
	if err != nil {
		c.printError(err.Error())
		return
	}
	c.printSuccess(fmt.Sprintf("%q now has %d song(s)", pl.Name, len(pl.SongIDs)))
}

func (c *Console) renamePlaylist(ctx context.Context) {
	id := c.prompt("Playlist id")
	req := playlist.Request{
		Name:        c.prompt("New name"),
		Description: c.prompt("New description"),
	}
	pl, err := c.api.UpdatePlaylist(ctx, c.session.token, id, req)
	if err != nil {
		c.printError(err.Error())
		return
	}
	c.printSuccess(fmt.Sprintf("renamed to %q", pl.Name))
}

func (c *Console) deletePlaylist(ctx context.Context) {
	id := c.prompt("Playlist id")
	if c.prompt("Type 'yes' to delete") != "yes" {
		fmt.Fprintln(c.out, "aborted")
		return
	}
	if err := c.api.DeletePlaylist(ctx, c.session.token, id); err != nil {
		c.printError(err.Error())
		return
	}
	c.printSuccess("playlist deleted")
}
