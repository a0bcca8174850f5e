package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"ytopml/models"
	"ytopml/takeout"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Print the parsed subscriptions to the command line",
		Description: `Parses the Takeout subscriptions export and prints each
subscription as a JSON object on a single line. Use a tool like jq to
process the output.

Prints all other log messages to stderr.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "takeout-dir",
				Aliases: []string{"t"},
				Value:   ".",
				Usage:   "Directory containing the extracted Takeout folder",
				EnvVars: []string{"YTOPML_TAKEOUT_DIR"},
			},
		},
		Action: func(ctx *cli.Context) error {
			// Keep stdout machine-readable
			log.SetOutput(os.Stderr)

			records, err := takeout.Load(takeout.SubscriptionsPath(ctx.String("takeout-dir")))
			if err != nil {
				return err
			}

			for i := range records {
				printStdout(&records[i])
			}

			return nil
		},
	}
}

func printStdout(record *models.SubscriptionRecord) {
	// Print as single JSON string on a single line
	recordJson, err := json.Marshal(record)
	if err == nil {
		fmt.Println(string(recordJson))
	}
}
