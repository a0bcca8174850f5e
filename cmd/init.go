package cmd

import (
	"fmt"
	"ytopml/config"

	"github.com/cqroot/prompt"
	"github.com/urfave/cli/v2"
)

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a configuration file interactively",
		Description: `Asks for the Takeout directory, the OPML output location and
an optional archive database, then writes them to a TOML configuration
file that the other commands pick up via --config.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "ytopml.toml",
				Usage:   "Path to write the TOML configuration file to",
				EnvVars: []string{"YTOPML_CONFIG"},
			},
		},
		Action: func(ctx *cli.Context) error {
			takeoutDir, err := prompt.New().Ask("Takeout directory:").Input(".")
			if err != nil {
				return err
			}

			output, err := prompt.New().Ask("OPML output file:").Input("YouTubeChannels.opml")
			if err != nil {
				return err
			}

			database, err := prompt.New().Ask("Archive database (leave empty to disable):").Input("")
			if err != nil {
				return err
			}

			cfg := &config.Config{
				TakeoutDir: takeoutDir,
				Output:     output,
				Database:   database,
			}

			path := ctx.String("config")
			if err := cfg.Save(path); err != nil {
				return err
			}

			fmt.Println("Wrote configuration to: ", path)
			return nil
		},
	}
}
