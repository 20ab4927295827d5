package commands

import (
	"context"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/formcheck/internal/core/dom"
	"github.com/colonyops/formcheck/internal/printer"
)

type RenderCmd struct {
	flags  *Flags
	output string
}

// NewRenderCmd creates a new render command.
func NewRenderCmd(flags *Flags) *RenderCmd {
	return &RenderCmd{flags: flags}
}

// Register adds the render command to the application.
func (cmd *RenderCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "render",
		Usage:       "Write the configured sign-up page as HTML",
		UsageText:   "formcheck render [-o file]",
		Description: "Generates the sign-up page from the form configuration. Writes to stdout unless --output is set.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "write HTML to this file instead of stdout",
				Destination: &cmd.output,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *RenderCmd) run(ctx context.Context, c *cli.Command) error {
	doc := dom.Build(cmd.flags.FormConfig().Form)

	if cmd.output == "" {
		return doc.Render(c.Root().Writer)
	}

	if err := writeFile(cmd.output, func(f *os.File) error {
		return render(doc, f)
	}); err != nil {
		return err
	}

	printer.Ctx(ctx).Successf("wrote %s", cmd.output)
	return nil
}

func render(doc *dom.Document, w io.Writer) error {
	if err := doc.Render(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
