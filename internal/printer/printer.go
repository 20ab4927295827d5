// Package printer writes styled, human oriented command output.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	"github.com/colonyops/formcheck/internal/core/styles"
)

type ctxKey struct{}

// Printer writes status lines. Styling is dropped when the output is not a
// terminal.
type Printer struct {
	w     io.Writer
	color bool
}

// New creates a printer for w. Color is enabled only when w is a terminal.
func New(w io.Writer) *Printer {
	color := false
	if f, ok := w.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}
	return &Printer{w: w, color: color}
}

// NewContext stores p in ctx.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or a stdout printer.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer { return p.w }

func (p *Printer) Printf(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

func (p *Printer) Successf(format string, args ...any) {
	p.status(styles.PassStyle, styles.IconValid, format, args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	p.status(styles.FailStyle, styles.IconInvalid, format, args...)
}

func (p *Printer) Warnf(format string, args ...any) {
	p.status(styles.SkipStyle, styles.IconNotice, format, args...)
}

// Headerf prints a bold section header.
func (p *Printer) Headerf(format string, args ...any) {
	p.line(styles.CommandHeaderStyle.Render(fmt.Sprintf(format, args...)))
}

// Mutedf prints secondary detail.
func (p *Printer) Mutedf(format string, args ...any) {
	p.line(styles.TextMutedStyle.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) status(style lipgloss.Style, icon, format string, args ...any) {
	p.line(style.Render(icon) + " " + fmt.Sprintf(format, args...))
}

func (p *Printer) line(s string) {
	if !p.color {
		s = ansi.Strip(s)
	}
	_, _ = fmt.Fprintln(p.w, s)
}
