package formvalidator

import (
	"context"

	"github.com/rs/zerolog"
)

// Submission is what a valid form hands off for delivery.
type Submission struct {
	FormID string
	Values map[string]string
}

// Submitter delivers a validated form. Network transport is outside this
// package; the default only logs.
type Submitter interface {
	Submit(ctx context.Context, s Submission) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, s Submission) error

func (f SubmitterFunc) Submit(ctx context.Context, s Submission) error {
	return f(ctx, s)
}

// LogSubmitter records the readiness notice and nothing else.
type LogSubmitter struct {
	Logger zerolog.Logger
}

func (l LogSubmitter) Submit(ctx context.Context, s Submission) error {
	l.Logger.Info().
		Ctx(ctx).
		Str("form", s.FormID).
		Int("fields", len(s.Values)).
		Msg("form is valid and ready to submit")
	return nil
}

// SubmitResult describes one submit event.
type SubmitResult struct {
	// Prevented is always true: native submission is never allowed through.
	Prevented bool
	Valid     bool
	// Failed holds the display labels of failing fields in declaration order.
	Failed []string
	Banner Banner
	// Err is a criterio.FieldErrors keyed by label, nil when valid.
	Err error
}
