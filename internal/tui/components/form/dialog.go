package form

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/formcheck/internal/core/styles"
)

// Handler receives the DOM-style events a Dialog dispatches while the user
// edits the form. KeyDown reports whether the key's default action must be
// suppressed.
type Handler interface {
	Blur(f Field)
	Input(f Field)
	Change(f Field)
	KeyDown(key string, f Field) (prevented bool)
	Submit()
}

// KeyEnter is the key name passed to Handler.KeyDown for the enter key.
const KeyEnter = "Enter"

// Dialog is a form container that manages focus cycling and turns key presses
// into field events.
type Dialog struct {
	fields       []Field
	handler      Handler
	focusedField int
	submits      int
	cancelled    bool
	Title        string
	SubmitLabel  string
}

// NewDialog creates a form dialog with the given fields. The first field is
// focused automatically. A nil handler disables event dispatch.
func NewDialog(title string, fields []Field, handler Handler) *Dialog {
	d := &Dialog{
		fields:      fields,
		handler:     handler,
		Title:       title,
		SubmitLabel: "Submit",
	}
	if len(fields) > 0 {
		fields[0].Focus()
	}
	return d
}

// Init returns the focus command of the first field.
func (d *Dialog) Init() tea.Cmd {
	if len(d.fields) == 0 {
		return nil
	}
	return d.fields[d.focusedField].Focus()
}

// Update handles key input: focus cycling, enter, submit and cancel. Every
// other message goes to the focused field.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d.updateFocusedField(msg)
	}

	switch keyMsg.String() {
	case "tab":
		return d.moveFocus(1)
	case "shift+tab":
		return d.moveFocus(-1)
	case "enter":
		return d.enter()
	case "ctrl+s":
		d.submit()
		return d, nil
	case "esc", "ctrl+c":
		d.cancelled = true
		return d, nil
	}

	return d.editFocusedField(msg)
}

// View renders all fields vertically with spacing, the submit button and help
// text.
func (d *Dialog) View() string {
	var parts []string
	if d.Title != "" {
		parts = append(parts, styles.FormHeadingStyle.Render(d.Title))
	}
	for i, field := range d.fields {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, field.View())
	}

	parts = append(parts, "", styles.FormButtonStyle.Render(d.SubmitLabel))

	help := styles.FormHelpStyle.Render("tab: next  shift+tab: prev  enter: check field  ctrl+s: submit  esc: quit")
	parts = append(parts, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Fields returns the dialog's fields in display order.
func (d *Dialog) Fields() []Field { return d.fields }

// Focused returns the focused field, or nil for an empty dialog.
func (d *Dialog) Focused() Field {
	if len(d.fields) == 0 {
		return nil
	}
	return d.fields[d.focusedField]
}

// FormValues returns a map of field names to values.
func (d *Dialog) FormValues() map[string]string {
	result := make(map[string]string, len(d.fields))
	for _, field := range d.fields {
		result[field.Name()] = field.Value()
	}
	return result
}

// Submits returns how many times the form was submitted.
func (d *Dialog) Submits() int { return d.submits }

// Cancelled returns whether the form was cancelled.
func (d *Dialog) Cancelled() bool { return d.cancelled }

// moveFocus blurs the focused field and focuses its neighbour, wrapping at
// either end.
func (d *Dialog) moveFocus(delta int) (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	current := d.fields[d.focusedField]
	current.Blur()
	if d.handler != nil {
		d.handler.Blur(current)
	}

	d.focusedField = (d.focusedField + delta + len(d.fields)) % len(d.fields)
	cmd := d.fields[d.focusedField].Focus()
	return d, cmd
}

// enter dispatches a keydown. When the default action is not suppressed and a
// text field has focus, the form is submitted.
func (d *Dialog) enter() (*Dialog, tea.Cmd) {
	field := d.Focused()
	if field == nil {
		return d, nil
	}

	prevented := false
	if d.handler != nil {
		prevented = d.handler.KeyDown(KeyEnter, field)
	}

	if _, isText := field.(*TextField); isText && !prevented {
		d.submit()
	}
	return d, nil
}

func (d *Dialog) submit() {
	d.submits++
	if d.handler != nil {
		d.handler.Submit()
	}
}

// editFocusedField forwards msg and dispatches input (and change for select
// fields) when the value moved.
func (d *Dialog) editFocusedField(msg tea.Msg) (*Dialog, tea.Cmd) {
	field := d.Focused()
	if field == nil {
		return d, nil
	}

	before := field.Value()
	_, cmd := d.updateFocusedField(msg)
	if d.handler == nil || field.Value() == before {
		return d, cmd
	}

	d.handler.Input(field)
	if _, isSelect := field.(*SelectFormField); isSelect {
		d.handler.Change(field)
	}
	return d, cmd
}

func (d *Dialog) updateFocusedField(msg tea.Msg) (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	var cmd tea.Cmd
	d.fields[d.focusedField], cmd = d.fields[d.focusedField].Update(msg)
	return d, cmd
}
