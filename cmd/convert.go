package cmd

import (
	"fmt"
	"time"
	"ytopml/config"
	"ytopml/db"
	"ytopml/opml"
	"ytopml/takeout"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func convertCmd() *cli.Command {
	return &cli.Command{
		Name:  "convert",
		Usage: "Convert the Takeout subscription export to an OPML document",
		Description: `Reads the subscriptions.csv from a Google Takeout export and
writes an OPML document with one outline entry per subscribed channel.

The Takeout directory is the directory that contains the extracted
"Takeout" folder. The output file is overwritten on every run.

When a database is configured the parsed subscriptions are also stored
as one import batch, after running any pending migrations.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "takeout-dir",
				Aliases: []string{"t"},
				Value:   ".",
				Usage:   "Directory containing the extracted Takeout folder",
				EnvVars: []string{"YTOPML_TAKEOUT_DIR"},
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "YouTubeChannels.opml",
				Usage:   "OPML output file location",
				EnvVars: []string{"YTOPML_OUTPUT"},
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to TOML configuration file",
				EnvVars: []string{"YTOPML_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "database",
				Aliases: []string{"d"},
				Usage:   "SQLite archive database file location (optional)",
				EnvVars: []string{"YTOPML_DATABASE"},
			},
		},
		Action: func(ctx *cli.Context) error {
			cfg, err := resolveConfig(ctx)
			if err != nil {
				return err
			}

			csvPath := takeout.SubscriptionsPath(cfg.TakeoutDir)
			fmt.Println("Reading subscriptions from:", csvPath)

			records, err := takeout.Load(csvPath)
			if err != nil {
				return err
			}

			descriptors := opml.DescribeAll(records)

			if err := opml.Write(descriptors, cfg.Output, time.Now()); err != nil {
				return err
			}

			if cfg.Database != "" {
				if err := db.Migrate(cfg.Database); err != nil {
					return err
				}

				archive, err := db.Open(cfg.Database)
				if err != nil {
					return err
				}
				defer archive.Close()

				if err := archive.SaveBatch(ctx.Context, records, time.Now()); err != nil {
					return err
				}
			}

			log.WithFields(log.Fields{
				"outlines": len(descriptors),
				"output":   cfg.Output,
			}).Info("Wrote OPML document")

			return nil
		},
	}
}

// resolveConfig merges the optional TOML config file with command-line
// flags. Flags that were set explicitly win over file values.
func resolveConfig(ctx *cli.Context) (*config.Config, error) {
	cfg := config.Defaults()

	if path := ctx.String("config"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if ctx.IsSet("takeout-dir") || cfg.TakeoutDir == "" {
		cfg.TakeoutDir = ctx.String("takeout-dir")
	}
	if ctx.IsSet("output") || cfg.Output == "" {
		cfg.Output = ctx.String("output")
	}
	if ctx.IsSet("database") {
		cfg.Database = ctx.String("database")
	}

	return cfg, nil
}
