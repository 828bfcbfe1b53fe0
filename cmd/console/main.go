package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/RishavSharma21/Song-PlayList-Manager/internal/client"
	"github.com/RishavSharma21/Song-PlayList-Manager/internal/console"
)

func main() {
	_ = godotenv.Load()
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	app := &cli.Command{
		Name:  "songs",
		Usage: "Interactive console for the song & playlist services",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "user-url",
				Value:   "http://localhost:8081",
				Sources: cli.EnvVars("USER_SERVICE_URL"),
				Usage:   "base URL of the user service",
			},
			&cli.StringFlag{
				Name:    "song-url",
				Value:   "http://localhost:8082",
				Sources: cli.EnvVars("SONG_SERVICE_URL"),
				Usage:   "base URL of the song service",
			},
			&cli.StringFlag{
				Name:    "playlist-url",
				Value:   "http://localhost:8083",
				Sources: cli.EnvVars("PLAYLIST_SERVICE_URL"),
				Usage:   "base URL of the playlist service",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log every failed request",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("verbose") {
				logger.SetLevel(log.DebugLevel)
			}
			api := client.New(
				cmd.String("user-url"),
				cmd.String("song-url"),
				cmd.String("playlist-url"),
			)
			ui := console.New(api, os.Stdin, os.Stdout, logger)
			return ui.Run(ctx)
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("console: %v", err)
	}
}
