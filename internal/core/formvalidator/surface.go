package formvalidator

import "github.com/colonyops/formcheck/internal/core/validate"

// State is the validity presentation of a field. A field carries at most one of
// the error/correct flags; StateUntouched carries neither.
type State int

const (
	StateUntouched State = iota
	StateValid
	StateInvalid
)

func (s State) String() string {
	switch s {
	case StateValid:
		return "correct"
	case StateInvalid:
		return "error"
	default:
		return "untouched"
	}
}

// Field is a required control bound to a Validator. Implementations must be
// comparable (pointer types) since the validator matches event targets by identity.
type Field interface {
	Name() string
	// Label is the raw text of the field's label, empty when there is none.
	Label() string
	Rule() validate.Rule
	Value() string
}

// Renderer applies presentation effects. It is the only way the validator touches
// the surface, so the validation logic can run against any UI.
type Renderer interface {
	// SetState replaces the field's error/correct flags.
	SetState(f Field, s State)
	// ShowError ensures exactly one error message node for f containing message.
	ShowError(f Field, message string)
	// ClearError removes the field's error message node, if any.
	ClearError(f Field)
	// MarkInteracted sets the user-interacted flag on a selection field.
	MarkInteracted(f Field)
	// ShowBanner replaces any banner with b as the form's first child.
	ShowBanner(b Banner)
	// RemoveBanner removes the banner with the given id if it is still attached.
	// It reports whether anything was removed.
	RemoveBanner(id BannerID) bool
}

// Surface is a located form: its required fields in document order plus the
// renderer for its presentation.
type Surface interface {
	Renderer
	RequiredFields() []Field
}

// Locator finds a form surface by identifier.
type Locator interface {
	FormByID(id string) (Surface, bool)
}

// Valuer is optionally implemented by surfaces that can report every named
// control's value, not only the required ones. Used for the submission handoff.
type Valuer interface {
	Values() map[string]string
}
