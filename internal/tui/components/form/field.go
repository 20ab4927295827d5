package form

import (
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/formcheck/internal/core/formvalidator"
	"github.com/colonyops/formcheck/internal/core/validate"
)

// RequiredMarker is appended to the label of required fields.
const RequiredMarker = " *"

// Field is the interface implemented by all form field types. Every field is
// also a formvalidator.Field, so the validator can bind to it directly.
type Field interface {
	formvalidator.Field

	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	SetValue(value string)

	SetState(s formvalidator.State)
	State() formvalidator.State
	SetErrorMessage(message string)
	ErrorMessage() string
	SetInteracted()
	Interacted() bool
}

// FieldDef describes a field to construct.
type FieldDef struct {
	Name        string
	Label       string
	Placeholder string
	Kind        validate.Kind
	Required    bool
}

func (s FieldDef) label() string {
	label := s.Label
	if label == "" {
		label = s.Name
	}
	if s.Required {
		label += RequiredMarker
	}
	return label
}

// presentation holds the validity flags the validator toggles on a field.
type presentation struct {
	state      formvalidator.State
	errMsg     string
	interacted bool
}

func (p *presentation) SetState(s formvalidator.State) { p.state = s }
func (p *presentation) State() formvalidator.State     { return p.state }
func (p *presentation) SetErrorMessage(message string) { p.errMsg = message }
func (p *presentation) ErrorMessage() string           { return p.errMsg }
func (p *presentation) SetInteracted()                 { p.interacted = true }
func (p *presentation) Interacted() bool               { return p.interacted }
