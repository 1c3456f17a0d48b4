package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/bugbee/internal/bugbee"
	"github.com/colonyops/bugbee/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags *Flags
	app   *bugbee.App

	// flags
	jsonOutput bool
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags, app *bugbee.App) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags, app: app}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "bugbee config validate [--json]",
				Description: "Checks the listen address, rule glob patterns, and data directory beyond the basic load-time validation.",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output result as JSON",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	err := cmd.app.Config.ValidateDeep()

	if cmd.jsonOutput {
		out := struct {
			Valid bool   `json:"valid"`
			Error string `json:"error,omitempty"`
		}{Valid: err == nil}
		if err != nil {
			out.Error = err.Error()
		}
		if werr := iojson.WriteWith(c.Root().Writer, c.Root().Writer, out); werr != nil {
			return werr
		}
		if err != nil {
			return cli.Exit("", 1)
		}
		return nil
	}

	if err != nil {
		fmt.Fprintf(c.Root().Writer, "configuration is invalid:\n%s\n", err.Error())
		return cli.Exit("", 1)
	}

	fmt.Fprintln(c.Root().Writer, "configuration is valid")
	return nil
}
