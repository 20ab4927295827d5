package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/formcheck/internal/core/logging"
	"github.com/colonyops/formcheck/internal/tui"
)

var errNotTerminal = errors.New("the interactive form needs a terminal; use 'formcheck render' or 'formcheck check' instead")

type TuiCmd struct {
	flags *Flags
	build tui.BuildInfo
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, build tui.BuildInfo) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		build: build,
	}
}

// Register adds the tui command to the application.
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "tui",
		Usage:       "Fill in the sign-up form in the terminal",
		UsageText:   "formcheck tui",
		Description: "Opens the configured sign-up form with live field validation. This is the default command.",
		Action:      cmd.Run,
	})
	return app
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	cfg := cmd.flags.FormConfig()
	ctx = logging.WithFormID(ctx, cfg.Form.ID)

	m := tui.New(ctx, tui.Deps{
		Config:    cfg,
		BuildInfo: cmd.build,
	})

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	log.Debug().Ctx(ctx).Msg("tui closed")
	return nil
}
