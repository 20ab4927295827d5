package logging

import "context"

type contextKey string

const (
	formIDKey contextKey = "form_id"
	pageKey   contextKey = "page"
)

// WithFormID adds a form identifier to the context.
func WithFormID(ctx context.Context, formID string) context.Context {
	return context.WithValue(ctx, formIDKey, formID)
}

// WithPage adds the source page (file path or "tui") to the context.
func WithPage(ctx context.Context, page string) context.Context {
	return context.WithValue(ctx, pageKey, page)
}

// GetFormID retrieves the form identifier from the context.
// Returns empty string if not present.
func GetFormID(ctx context.Context) string {
	if id, ok := ctx.Value(formIDKey).(string); ok {
		return id
	}
	return ""
}

// GetPage retrieves the source page from the context.
// Returns empty string if not present.
func GetPage(ctx context.Context) string {
	if page, ok := ctx.Value(pageKey).(string); ok {
		return page
	}
	return ""
}
