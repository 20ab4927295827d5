package form

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/formcheck/internal/core/styles"
	"github.com/colonyops/formcheck/internal/core/validate"
)

// TextField is a single-line text input form field. Email and tel fields are
// text fields with a different kind.
type TextField struct {
	presentation

	input   textinput.Model
	def     FieldDef
	focused bool
}

// NewTextField creates a new single-line text input field.
func NewTextField(def FieldDef, defaultVal string) *TextField {
	ti := textinput.New()
	ti.Placeholder = def.Placeholder
	ti.Prompt = ""
	ti.SetWidth(40)

	if defaultVal != "" {
		ti.SetValue(defaultVal)
	}

	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Cursor.Color = styles.ColorPrimary
	inputStyles.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	inputStyles.Blurred.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	ti.SetStyles(inputStyles)

	return &TextField{
		input: ti,
		def:   def,
	}
}

func (f *TextField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextField) View() string {
	return renderField(f.Label(), f.input.View(), f.focused, f.presentation)
}

func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextField) Focused() bool         { return f.focused }
func (f *TextField) Name() string          { return f.def.Name }
func (f *TextField) Label() string         { return f.def.label() }
func (f *TextField) Value() string         { return f.input.Value() }
func (f *TextField) SetValue(value string) { f.input.SetValue(value) }
func (f *TextField) Rule() validate.Rule {
	return validate.Rule{Kind: f.def.Kind, Required: f.def.Required}
}
