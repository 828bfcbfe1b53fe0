package console

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/RishavSharma21/Song-PlayList-Manager/internal/playlist"
	"github.com/RishavSharma21/Song-PlayList-Manager/internal/song"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).MarginBottom(1)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5555"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

func (c *Console) printTitle(s string) {
	fmt.Fprintln(c.out, titleStyle.Render(s))
}

func (c *Console) printSuccess(s string) {
	fmt.Fprintln(c.out, successStyle.Render(s))
}

func (c *Console) printError(s string) {
	c.logger.Debug("request failed", "err", s)
	fmt.Fprintln(c.out, errorStyle.Render("error: "+s))
}

func (c *Console) printMenu(heading string, items ...string) {
	fmt.Fprintln(c.out)
	if heading != "" {
		fmt.Fprintln(c.out, headerStyle.Render(heading))
	}
	for _, item := range items {
		fmt.Fprintln(c.out, "  "+item)
	}
}

func (c *Console) renderTable(headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(c.out, "(nothing found)")
		return
	}
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(c.out, tbl.Render())
}

func (c *Console) renderSongs(songs []song.Song) {
	rows := make([][]string, 0, len(songs))
	for _, s := range songs {
		rows = append(rows, []string{
			s.ID, s.Title, s.Artist, s.Album, s.Genre, formatDuration(s.Duration), s.Owner,
		})
	}
	c.renderTable([]string{"ID", "Title", "Artist", "Album", "Genre", "Length", "Owner"}, rows)
}

func (c *Console) renderResolvedSongs(songs []playlist.Song) {
	rows := make([][]string, 0, len(songs))
	for _, s := range songs {
		rows = append(rows, []string{
			s.ID, s.Title, s.Artist, s.Album, s.Genre, formatDuration(s.Duration),
		})
	}
	c.renderTable([]string{"ID", "Title", "Artist", "Album", "Genre", "Length"}, rows)
}

func (c *Console) renderPlaylists(playlists []playlist.Playlist) {
	rows := make([][]string, 0, len(playlists))
	for _, p := range playlists {
		rows = append(rows, []string{
			p.ID, p.Name, p.Description, strconv.Itoa(len(p.SongIDs)), p.Owner,
		})
	}
	c.renderTable([]string{"ID", "Name", "Description", "Songs", "Owner"}, rows)
}

func formatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
