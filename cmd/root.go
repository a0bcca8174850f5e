package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func RootApp() *cli.App {
	return &cli.App{
		Name:  "ytopml",
		Usage: "Convert a YouTube Takeout subscription export to OPML",
		Description: `Converts the subscriptions.csv inside a Google Takeout
		export of your YouTube data into an OPML document that any feed
		reader can import.

		Each subscribed channel becomes one outline entry pointing at the
		channel's RSS feed. Optionally the imported subscriptions are
		archived to a SQLite database and the generated document can be
		served over HTTP for feed readers that subscribe to OPML URLs.

		Flags can generally be set via environment variables, e.g.:

		--output => YTOPML_OUTPUT=YouTubeChannels.opml
		--database => YTOPML_DATABASE=archive.db
		`,
		Commands: []*cli.Command{
			convertCmd(),
			listCmd(),
			serveCmd(),
			migrateCmd(),
			rollbackCmd(),
			tidyCmd(),
			initCmd(),
		},
		Action: func(ctx *cli.Context) error {
			// Show help if no command is specified
			return ctx.App.Run([]string{"", "help"})
		},
	}
}

func Execute() {
	if err := RootApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
