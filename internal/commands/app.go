package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/formcheck/internal/core/config"
	"github.com/colonyops/formcheck/internal/tui"
)

// NewApp builds the root command with global flags bound to flags and every
// subcommand registered. The TUI runs when no subcommand is given. Callers add
// Before/After hooks.
func NewApp(flags *Flags, build tui.BuildInfo) *cli.Command {
	app := &cli.Command{
		Name:      "formcheck",
		Usage:     "Validate sign-up forms in the terminal and in HTML pages",
		UsageText: "formcheck [global options] command [command options]",
		Description: `formcheck validates a sign-up form as the user fills it in: required fields,
email and phone formats, inline error messages and a form-level banner.

Run 'formcheck' with no arguments to fill in the configured form interactively.
Run 'formcheck check <glob>' to submit the form of saved HTML pages.`,
		Version: build.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("FORMCHECK_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (empty logs to stderr)",
				Sources:     cli.EnvVars("FORMCHECK_LOG_FILE"),
				Value:       DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("FORMCHECK_CONFIG"),
				Value:       config.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
	}

	tuiCmd := NewTuiCmd(flags, build)

	app = tuiCmd.Register(app)
	app = NewRenderCmd(flags).Register(app)
	app = NewCheckCmd(flags).Register(app)
	app = NewReplayCmd(flags).Register(app)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'formcheck --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	return app
}
