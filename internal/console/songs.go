package console

import (
	"context"
	"fmt"

	"github.com/RishavSharma21/Song-PlayList-Manager/internal/song"
)

func (c *Console) songMenu(ctx context.Context) {
	for {
		c.printMenu("Songs",
			"1. List all songs",
			"2. Search songs",
			"3. My songs",
			"4. Add a song",
			"5. Update a song",
			"6. Delete a song",
			"0. Back",
		)
		switch c.prompt("Choose") {
		case "1":
			c.listSongs(ctx)
		case "2":
			c.searchSongs(ctx)
		case "3":
			c.mySongs(ctx)
		case "4":
			c.addSong(ctx)
		case "5":
			c.updateSong(ctx)
		case "6":
			c.deleteSong(ctx)
		case "0", "":
			return
		default:
			c.printError("unknown choice")
		}
	}
}

func (c *Console) listSongs(ctx context.Context) {
	songs, err := c.api.ListSongs(ctx)
	if err != nil {
		c.printError(err.Error())
		return
	}
	c.renderSongs(songs)
}

func (c *Console) searchSongs(ctx context.Context) {
	field := c.prompt("Field (title/artist/genre)")
	query := c.prompt("Search for")

	songs, err := c.api.SearchSongs(ctx, field, query)
	if err != nil {
		c.printError(err.Error())
		return
	}
	c.renderSongs(songs)
}

func (c *Console) mySongs(ctx context.Context) {
	songs, err := c.api.MySongs(ctx, c.session.token)
	if err != nil {
		c.printError(err.Error())
		return
	}
	c.renderSongs(songs)
}

func (c *Console) promptSongRequest() (song.Request, bool) {
	var req song.Request
	req.Title = c.prompt("Title")
	req.Artist = c.prompt("Artist")
	req.Album = c.prompt("Album")
	req.Genre = c.prompt("Genre")
	duration, ok := c.promptInt("Duration (seconds)")
	if !ok {
		return song.Request{}, false
	}
	req.Duration = duration
	return req, true
}

func (c *Console) addSong(ctx context.Context) {
	req, ok := c.promptSongRequest()
	if !ok {
		return
	}
	s, err := c.api.CreateSong(ctx, c.session.token, req)
	if err != nil {
		c.printError(err.Error())
		return
	}
	c.printSuccess(fmt.Sprintf("added %q (id %s)", s.Title, s.ID))
}

func (c *Console) updateSong(ctx context.Context) {
	id := c.prompt("Song id")
	req, ok := c.promptSongRequest()
	if !ok {
		return
	}
	s, err := c.api.UpdateSong(ctx, c.session.token, id, req)
	if err != nil {
		c.printError(err.Error())
		return
	}
	c.printSuccess(fmt.Sprintf("updated %q", s.Title))
}

func (c *Console) deleteSong(ctx context.Context) {
	id := c.prompt("Song id")
	if err := c.api.DeleteSong(ctx, c.session.token, id); err != nil {
		c.printError(err.Error())
		return
	}
	c.printSuccess("song deleted")
}
