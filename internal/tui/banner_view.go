package tui

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/formcheck/internal/core/formvalidator"
	"github.com/colonyops/formcheck/internal/core/styles"
)

const bannerWidth = 50

// renderBanner draws the form-level message shown above the form.
func renderBanner(b formvalidator.Banner) string {
	var (
		content string
		style   lipgloss.Style
	)

	switch b.Kind {
	case formvalidator.BannerErrorSummary:
		lines := make([]string, 0, len(b.Items)+1)
		lines = append(lines, styles.FormErrorStyle.Bold(true).Render(styles.IconNotice+" "+b.Title))
		for _, item := range b.Items {
			lines = append(lines, "  • "+item)
		}
		content = strings.Join(lines, "\n")
		style = styles.BannerErrorStyle
	default:
		content = b.Title
		style = styles.BannerSuccessStyle
	}

	return style.Width(bannerWidth).Render(content)
}
