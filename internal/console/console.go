// Package console is the interactive terminal menu over the client façade.
// It owns no business logic: it collects input, calls the façade and renders
// whatever comes back.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/RishavSharma21/Song-PlayList-Manager/internal/client"
)

// session holds the bearer token for the currently logged-in user. The
// token is the only authentication state the console keeps.
type session struct {
	token    string
	username string
}

func (s *session) active() bool {
	return s.token != ""
}

type Console struct {
	api     *client.Client
	in      *bufio.Scanner
	out     io.Writer
	logger  *log.Logger
	session session
}

func New(api *client.Client, in io.Reader, out io.Writer, logger *log.Logger) *Console {
	return &Console{
		api:    api,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run drives the menu loop until the user quits or input ends.
func (c *Console) Run(ctx context.Context) error {
	c.printTitle("Song & Playlist Manager")

	for {
		var quit bool
		if c.session.active() {
			quit = c.mainMenu(ctx)
		} else {
			quit = c.authMenu(ctx)
		}
		if quit {
			fmt.Fprintln(c.out, "Bye!")
			return nil
		}
	}
}

func (c *Console) authMenu(ctx context.Context) (quit bool) {
	c.printMenu("",
		"1. Login",
		"2. Register",
		"3. Browse songs (no account needed)",
		"4. Browse playlists",
		"0. Exit",
	)
	switch c.prompt("Choose") {
	case "1":
		c.login(ctx)
	case "2":
		c.register(ctx)
	case "3":
		c.listSongs(ctx)
	case "4":
		c.listPlaylists(ctx)
	case "0", "":
		return true
	default:
		c.printError("unknown choice")
	}
	return false
}

func (c *Console) mainMenu(ctx context.Context) (quit bool) {
	c.printMenu(fmt.Sprintf("Logged in as %s", c.session.username),
		"1. Songs",
		"2. Playlists",
		"3. Logout",
		"0. Exit",
	)
	switch c.prompt("Choose") {
	case "1":
		c.songMenu(ctx)
	case "2":
		c.playlistMenu(ctx)
	case "3":
		c.session = session{}
		fmt.Fprintln(c.out, "Logged out.")
	case "0", "":
		return true
	default:
		c.printError("unknown choice")
	}
	return false
}

func (c *Console) login(ctx context.Context) {
	username := c.prompt("Username")
	password := c.prompt("Password")

	resp, err := c.api.Login(ctx, username, password)
	if err != nil {
		c.printError(err.Error())
		return
	}
	c.session = session{token: resp.Token, username: resp.Username}
	c.printSuccess(resp.Message)
}

func (c *Console) register(ctx context.Context) {
	name := c.prompt("Full name")
	username := c.prompt("Username")
	password := c.prompt("Password")
	email := c.prompt("Email")

	resp, err := c.api.Register(ctx, name, username, password, email)
	if err != nil {
		c.printError(err.Error())
		return
	}
	c.session = session{token: resp.Token, username: resp.Username}
	c.printSuccess(resp.Message)
}

// prompt reads one trimmed line, returning "" on EOF.
func (c *Console) prompt(label string) string {
	fmt.Fprintf(c.out, "%s> ", label)
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *Console) promptInt(label string) (int, bool) {
	raw := c.prompt(label)
	n, err := strconv.Atoi(raw)
	if err != nil {
		c.printError("not a number: " + raw)
		return 0, false
	}
	return n, true
}
