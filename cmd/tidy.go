package cmd

import (
	"fmt"
	"ytopml/db"

	"github.com/urfave/cli/v2"
)

func tidyCmd() *cli.Command {
	return &cli.Command{
		Name:  "tidy",
		Usage: "Tidy up the archive database",
		Description: `Tidy up the archive database by removing subscriptions from
		import batches older than the most recent one.

		This keeps the archive equal to the latest Takeout snapshot and
		keeps the database size down.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "database",
				Aliases: []string{"d"},
				Value:   "archive.db",
				Usage:   "SQLite archive database file location",
				EnvVars: []string{"YTOPML_DATABASE"},
			},
		},
		Action: func(ctx *cli.Context) error {
			database := ctx.String("database")
			fmt.Println("Database configured: ", database)

			archive, err := db.Open(database)
			if err != nil {
				return err
			}
			defer archive.Close()

			removed, err := archive.Tidy(ctx.Context)
			if err != nil {
				return err
			}

			fmt.Println("Removed stale subscriptions: ", removed)
			return nil
		},
	}
}
