package formvalidator

import (
	"time"

	"github.com/colonyops/formcheck/internal/core/clock"
)

const (
	DefaultFormID     = "signupForm"
	DefaultSuccessTTL = 5 * time.Second
)

// Option configures a Validator.
type Option func(*Validator)

// WithScheduler sets the scheduler used for the success banner expiry.
func WithScheduler(s clock.Scheduler) Option {
	return func(v *Validator) {
		if s != nil {
			v.scheduler = s
		}
	}
}

// WithSuccessTTL overrides how long the success banner stays up.
func WithSuccessTTL(d time.Duration) Option {
	return func(v *Validator) {
		if d > 0 {
			v.successTTL = d
		}
	}
}

// WithSubmitter sets the handoff invoked after a valid submit.
func WithSubmitter(s Submitter) Option {
	return func(v *Validator) {
		if s != nil {
			v.submitter = s
		}
	}
}

