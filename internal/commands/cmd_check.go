package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/formcheck/internal/core/clock"
	"github.com/colonyops/formcheck/internal/core/dom"
	"github.com/colonyops/formcheck/internal/core/formvalidator"
	"github.com/colonyops/formcheck/internal/core/logging"
	"github.com/colonyops/formcheck/internal/printer"
	"github.com/colonyops/formcheck/pkg/iojson"
)

// PageStatus is the outcome of checking one page.
type PageStatus string

const (
	PagePass PageStatus = "pass"
	PageFail PageStatus = "fail"
	PageSkip PageStatus = "skip"
)

// PageResult is the check report for one page.
type PageResult struct {
	Path   string     `json:"path"`
	Status PageStatus `json:"status"`
	Failed []string   `json:"failed,omitempty"`
	Error  string     `json:"error,omitempty"`
}

type CheckCmd struct {
	flags  *Flags
	json   bool
	formID string
}

// NewCheckCmd creates a new check command.
func NewCheckCmd(flags *Flags) *CheckCmd {
	return &CheckCmd{flags: flags}
}

// Register adds the check command to the application.
func (cmd *CheckCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "check",
		Usage:     "Submit the sign-up form of saved HTML pages and report failures",
		UsageText: "formcheck check [--json] <glob>...",
		Description: `Expands each glob (** supported), parses every matching page, binds the
validator to the form and submits it. Pages without the form are skipped.
Exits non-zero when any page fails validation.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print results as JSON",
				Destination: &cmd.json,
			},
			&cli.StringFlag{
				Name:        "form",
				Usage:       "id of the form to check (defaults to the configured form)",
				Destination: &cmd.formID,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *CheckCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() == 0 {
		return errors.New("at least one page glob is required")
	}

	paths, err := expandGlobs(c.Args().Slice())
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no pages match %v", c.Args().Slice())
	}

	formID := cmd.formID
	if formID == "" {
		formID = cmd.flags.FormConfig().Form.ID
	}

	results := CheckPages(ctx, paths, formID)

	if cmd.json {
		if err := iojson.WriteWith(c.Root().Writer, os.Stderr, results); err != nil {
			return err
		}
	} else {
		printResults(printer.Ctx(ctx), results)
	}

	for _, r := range results {
		if r.Status == PageFail {
			return cli.Exit("", 1)
		}
	}
	return nil
}

// CheckPages submits formID on every page and reports the outcome per path.
// Results follow the order of paths, which the check command passes in sorted
// path order.
func CheckPages(ctx context.Context, paths []string, formID string) []PageResult {
	ctx = logging.WithFormID(ctx, formID)
	results := make([]PageResult, 0, len(paths))

	for _, path := range paths {
		res := checkPage(ctx, path, formID)
		log.Debug().
			Ctx(ctx).
			Str("path", path).
			Str("status", string(res.Status)).
			Msg("page checked")
		results = append(results, res)
	}

	return results
}

func checkPage(ctx context.Context, path, formID string) PageResult {
	res := PageResult{Path: path}

	f, err := os.Open(path)
	if err != nil {
		res.Status = PageFail
		res.Error = err.Error()
		return res
	}
	defer func() { _ = f.Close() }()

	doc, err := dom.Parse(f)
	if err != nil {
		res.Status = PageFail
		res.Error = err.Error()
		return res
	}

	v, ok := formvalidator.Attach(doc, formID, formvalidator.WithScheduler(clock.NewManual()))
	if !ok {
		res.Status = PageSkip
		return res
	}

	submit := v.Submit(logging.WithPage(ctx, path))
	if !submit.Valid {
		res.Status = PageFail
		res.Failed = submit.Failed
		return res
	}

	res.Status = PagePass
	return res
}

func printResults(p *printer.Printer, results []PageResult) {
	var passed, failed, skipped int

	for _, r := range results {
		switch r.Status {
		case PagePass:
			passed++
			p.Successf("%s", r.Path)
		case PageSkip:
			skipped++
			p.Warnf("%s (form not found)", r.Path)
		case PageFail:
			failed++
			if r.Error != "" {
				p.Errorf("%s: %s", r.Path, r.Error)
				continue
			}
			p.Errorf("%s", r.Path)
			for _, label := range r.Failed {
				p.Mutedf("    %s", label)
			}
		}
	}

	p.Printf("")
	p.Headerf("%d passed, %d failed, %d skipped", passed, failed, skipped)
}

// expandGlobs resolves each pattern against the filesystem. Patterns without
// glob syntax that match nothing are kept so the missing file is reported.
func expandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", pattern, err)
		}
		if len(matches) == 0 && !hasMeta(pattern) {
			matches = []string{pattern}
		}

		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}

	slices.Sort(out)
	return out, nil
}

func hasMeta(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
