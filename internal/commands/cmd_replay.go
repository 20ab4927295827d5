package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/formcheck/internal/core/dom"
	"github.com/colonyops/formcheck/internal/core/formvalidator"
	"github.com/colonyops/formcheck/internal/core/logging"
	"github.com/colonyops/formcheck/internal/core/replay"
	"github.com/colonyops/formcheck/internal/printer"
)

type ReplayCmd struct {
	flags  *Flags
	script string
	output string
}

// NewReplayCmd creates a new replay command.
func NewReplayCmd(flags *Flags) *ReplayCmd {
	return &ReplayCmd{flags: flags}
}

// Register adds the replay command to the application.
func (cmd *ReplayCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "replay",
		Usage:     "Replay a scripted sequence of form events against a page",
		UsageText: "formcheck replay -s script.yaml [-o out.html] <page|->",
		Description: `Loads the page (or stdin when the page is "-"), binds the validator and applies
the script's events in order on a manual clock. Prints one line per event and
writes the resulting HTML to --output, or stdout when unset.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "script",
				Aliases:     []string{"s"},
				Usage:       "path to the YAML event script",
				Required:    true,
				Destination: &cmd.script,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "write the resulting HTML to this file instead of stdout",
				Destination: &cmd.output,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *ReplayCmd) run(ctx context.Context, c *cli.Command) error {
	page := c.Args().First()
	if page == "" {
		return errors.New("a page path is required; use - to read from stdin")
	}

	script, err := replay.LoadScript(cmd.script)
	if err != nil {
		return err
	}

	doc, err := readPage(page)
	if err != nil {
		return err
	}

	cfg := cmd.flags.FormConfig()
	if script.Form == "" {
		script.Form = cfg.Form.ID
	}

	ctx = logging.WithPage(logging.WithFormID(ctx, script.Form), page)
	ttl := cfg.Banner.SuccessTTL

	steps, runErr := replay.Replay(ctx, doc, script, formvalidator.WithSuccessTTL(ttl))

	p := printer.Ctx(ctx)
	if cmd.output != "" {
		printSteps(p, steps)
	} else {
		// HTML goes to stdout, keep the step log out of it.
		printSteps(printer.New(os.Stderr), steps)
	}

	if runErr != nil {
		return runErr
	}

	if cmd.output == "" {
		return render(doc, c.Root().Writer)
	}

	if err := writeFile(cmd.output, func(f *os.File) error {
		return render(doc, f)
	}); err != nil {
		return err
	}

	p.Successf("wrote %s", cmd.output)
	return nil
}

func readPage(path string) (*dom.Document, error) {
	var r io.Reader

	if path == "-" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("no page provided (stdin is a terminal); pass a file path or pipe HTML input")
		}
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open page: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	doc, err := dom.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return doc, nil
}

func printSteps(p *printer.Printer, steps []replay.Step) {
	for _, s := range steps {
		p.Printf("%s", FormatStep(s))
	}
}

// FormatStep renders one step as a single log line.
func FormatStep(s replay.Step) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%3d %-8s", s.Index, s.Event.Type)
	if s.Event.Field != "" {
		fmt.Fprintf(&b, " %-12s", s.Event.Field)
	} else {
		fmt.Fprintf(&b, " %-12s", "-")
	}
	fmt.Fprintf(&b, " t=%s", s.At)

	if s.Prevented {
		b.WriteString(" prevented")
	}
	if s.Submitted {
		if s.Valid {
			b.WriteString(" valid")
		} else {
			fmt.Fprintf(&b, " invalid[%s]", strings.Join(s.Failed, ", "))
		}
	}
	if s.Banner != "" {
		fmt.Fprintf(&b, " banner=%s", s.Banner)
	}

	return b.String()
}
