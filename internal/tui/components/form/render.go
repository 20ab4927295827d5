package form

import (
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/formcheck/internal/core/formvalidator"
	"github.com/colonyops/formcheck/internal/core/styles"
)

// renderField wraps a field's content in the border matching its focus and
// validity, with the error message underneath.
func renderField(label string, body string, focused bool, p presentation) string {
	titleStyle := styles.TextMutedStyle
	if focused {
		titleStyle = styles.FormTitleStyle
	}
	title := titleStyle.Render(label)

	parts := []string{title, body}
	if p.state == formvalidator.StateValid {
		parts[0] = title + " " + styles.PassStyle.Render(styles.IconValid)
	}
	if p.errMsg != "" {
		parts = append(parts, styles.FormErrorStyle.Render(styles.IconInvalid+" "+p.errMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	borderStyle := styles.FormFieldStyle
	switch {
	case p.state == formvalidator.StateInvalid:
		borderStyle = styles.FormFieldErrorStyle
	case p.state == formvalidator.StateValid:
		borderStyle = styles.FormFieldValidStyle
	case focused:
		borderStyle = styles.FormFieldFocusedStyle
	}

	return borderStyle.Render(content)
}
