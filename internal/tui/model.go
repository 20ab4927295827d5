// Package tui implements the terminal sign-up form. The form validator is bound
// to a terminal Surface and driven by key presses instead of DOM events.
package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/formcheck/internal/core/config"
	"github.com/colonyops/formcheck/internal/core/formvalidator"
	"github.com/colonyops/formcheck/internal/core/logging"
	"github.com/colonyops/formcheck/internal/core/styles"
	"github.com/colonyops/formcheck/internal/tui/components/form"
)

// Deps holds the collaborators of the terminal form.
type Deps struct {
	Config *config.Config
	// Submitter receives valid submissions. Defaults to logging only.
	Submitter formvalidator.Submitter
	BuildInfo BuildInfo
}

// Model is the Bubble Tea model for the sign-up form.
type Model struct {
	dialog    *form.Dialog
	surface   *Surface
	validator *formvalidator.Validator
	sched     *TickScheduler
	build     BuildInfo
	log       zerolog.Logger

	width    int
	height   int
	quitting bool
}

// New builds the form from configuration and binds a validator to it.
func New(ctx context.Context, deps Deps) Model {
	cfg := deps.Config
	if cfg == nil {
		def := config.DefaultConfig()
		cfg = &def
	}

	ctx = logging.WithPage(logging.WithFormID(ctx, cfg.Form.ID), "tui")

	fields := BuildFields(cfg.Form)
	surface := NewSurface(fields)
	sched := NewTickScheduler()

	v := formvalidator.New(cfg.Form.ID, surface,
		formvalidator.WithScheduler(sched),
		formvalidator.WithSuccessTTL(cfg.Banner.SuccessTTL),
		formvalidator.WithSubmitter(deps.Submitter),
	)

	dialog := form.NewDialog(cfg.Form.Title, fields, &validatorHandler{ctx: ctx, v: v})
	if cfg.Form.SubmitLabel != "" {
		dialog.SubmitLabel = cfg.Form.SubmitLabel
	}

	return Model{
		dialog:    dialog,
		surface:   surface,
		validator: v,
		sched:     sched,
		build:     deps.BuildInfo,
		log:       logging.Component("tui"),
	}
}

func (m Model) Init() tea.Cmd {
	return m.dialog.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case taskFireMsg:
		if m.sched.Fire(msg.token) {
			m.log.Debug().Uint64("token", msg.token).Msg("scheduled task fired")
		}
		return m, m.sched.Cmds()
	}

	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)

	if m.dialog.Cancelled() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tea.Batch(cmd, m.sched.Cmds())
}

func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m Model) render() string {
	var parts []string
	if b, ok := m.surface.Banner(); ok {
		parts = append(parts, renderBanner(b), "")
	}
	parts = append(parts,
		m.dialog.View(),
		styles.TextMutedStyle.Render("formcheck "+m.build.String()),
	)

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Quitting reports whether the user left the form.
func (m Model) Quitting() bool { return m.quitting }

// Validator returns the validator bound to the form.
func (m Model) Validator() *formvalidator.Validator { return m.validator }

// Surface returns the terminal surface.
func (m Model) Surface() *Surface { return m.surface }

// Dialog returns the form dialog.
func (m Model) Dialog() *form.Dialog { return m.dialog }

// Scheduler returns the tick scheduler driving banner expiry.
func (m Model) Scheduler() *TickScheduler { return m.sched }

// validatorHandler turns dialog events into validator calls.
type validatorHandler struct {
	ctx context.Context
	v   *formvalidator.Validator
}

func (h *validatorHandler) Blur(f form.Field)   { h.v.Blur(f) }
func (h *validatorHandler) Input(f form.Field)  { h.v.Input(f) }
func (h *validatorHandler) Change(f form.Field) { h.v.Change(f) }
func (h *validatorHandler) Submit()             { h.v.Submit(h.ctx) }

func (h *validatorHandler) KeyDown(key string, f form.Field) bool {
	return h.v.KeyDown(key, f)
}
