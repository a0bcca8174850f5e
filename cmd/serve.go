package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"
	"ytopml/db"
	"ytopml/server"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the generated OPML document over HTTP",
		Description: `Starts an HTTP server that exposes the generated OPML
document at /opml, for feed readers that subscribe to an OPML URL
instead of importing a file.

When an archive database is configured the archived subscriptions are
available as JSON at /subscriptions.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "YouTubeChannels.opml",
				Usage:   "OPML document location to serve",
				EnvVars: []string{"YTOPML_OUTPUT"},
			},
			&cli.StringFlag{
				Name:    "database",
				Aliases: []string{"d"},
				Usage:   "SQLite archive database file location (optional)",
				EnvVars: []string{"YTOPML_DATABASE"},
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   3000,
				Usage:   "Port to listen on",
				EnvVars: []string{"YTOPML_PORT"},
			},
		},
		Action: func(ctx *cli.Context) error {
			fmt.Println("Starting ytopml server...")

			serverConfig := &server.ServerConfig{
				OpmlPath: ctx.String("output"),
			}

			if database := ctx.String("database"); database != "" {
				archive, err := db.Open(database)
				if err != nil {
					return err
				}
				defer archive.Close()
				serverConfig.Archive = archive
			}

			app := server.Server(serverConfig)

			// Graceful shutdown
			c := make(chan os.Signal, 1)
			signal.Notify(c, os.Interrupt)
			var wg sync.WaitGroup

			go func() {
				<-c
				fmt.Println("Gracefully shutting down...")
				if err := app.ShutdownWithTimeout(60 * time.Second); err != nil {
					log.Error("Error shutting down server", err)
				}
				wg.Done()
			}()

			wg.Add(1)

			if err := app.Listen(fmt.Sprintf(":%d", ctx.Int("port"))); err != nil {
				return err
			}

			wg.Wait()

			fmt.Println("Done!")

			return nil
		},
	}
}
