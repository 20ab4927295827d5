package replay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/formcheck/internal/core/clock"
	"github.com/colonyops/formcheck/internal/core/dom"
	"github.com/colonyops/formcheck/internal/core/formvalidator"
	"github.com/colonyops/formcheck/internal/core/logging"
	"github.com/colonyops/formcheck/internal/core/validate"
)

// ErrFormNotFound is returned when the script's form is not on the page.
var ErrFormNotFound = errors.New("form not found")

// EventError ties a failure to the index of the event that caused it.
type EventError struct {
	Index int
	Type  EventType
	Err   error
}

func (e *EventError) Error() string {
	return fmt.Sprintf("event %d (%s): %v", e.Index, e.Type, e.Err)
}

func (e *EventError) Unwrap() error { return e.Err }

// Step records the observable outcome of one event.
type Step struct {
	Index int
	Event Event
	// At is the manual clock time after the event ran.
	At time.Duration
	// Prevented is set when a keydown or submit suppressed the default action.
	Prevented bool
	// Submitted is set when the event submitted the form, explicitly or through
	// Enter in a valid text control.
	Submitted bool
	Valid     bool
	Failed    []string
	// Banner is the live banner's kind ("success-message", "error-summary") or
	// empty when there is none.
	Banner string
}

// Runner replays scripts against one parsed document.
type Runner struct {
	doc  *dom.Document
	form *dom.Form
	v    *formvalidator.Validator
	clk  *clock.Manual
	log  zerolog.Logger
}

// NewRunner binds a validator to the script's form on doc. Extra options are
// applied after the manual scheduler.
func NewRunner(doc *dom.Document, formID string, opts ...formvalidator.Option) (*Runner, error) {
	if formID == "" {
		formID = formvalidator.DefaultFormID
	}

	clk := clock.NewManual()
	opts = append([]formvalidator.Option{formvalidator.WithScheduler(clk)}, opts...)

	v, ok := formvalidator.Attach(doc, formID, opts...)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFormNotFound, formID)
	}
	form, _ := doc.Form(formID)

	return &Runner{
		doc:  doc,
		form: form,
		v:    v,
		clk:  clk,
		log:  logging.Component("replay"),
	}, nil
}

// Validator exposes the bound validator.
func (r *Runner) Validator() *formvalidator.Validator { return r.v }

// Run applies the script's events in order. Steps completed before a failing
// event are returned along with the error.
func (r *Runner) Run(ctx context.Context, events []Event) ([]Step, error) {
	steps := make([]Step, 0, len(events))

	for i, ev := range events {
		if err := ctx.Err(); err != nil {
			return steps, err
		}

		step, err := r.apply(ctx, i, ev)
		if err != nil {
			return steps, &EventError{Index: i, Type: ev.Type, Err: err}
		}

		r.log.Debug().
			Ctx(ctx).
			Int("index", i).
			Str("type", string(ev.Type)).
			Str("field", ev.Field).
			Bool("prevented", step.Prevented).
			Str("banner", step.Banner).
			Msg("event replayed")

		steps = append(steps, step)
	}

	return steps, nil
}

// Replay binds a runner to the script's form and runs its events.
func Replay(ctx context.Context, doc *dom.Document, script *Script, opts ...formvalidator.Option) ([]Step, error) {
	r, err := NewRunner(doc, script.Form, opts...)
	if err != nil {
		return nil, err
	}
	return r.Run(ctx, script.Events)
}

func (r *Runner) apply(ctx context.Context, i int, ev Event) (Step, error) {
	step := Step{Index: i, Event: ev}

	var field *dom.Field
	if ev.Type.needsField() {
		f, ok := r.form.Field(ev.Field)
		if !ok {
			return step, fmt.Errorf("unknown field %q", ev.Field)
		}
		field = f
	}

	switch ev.Type {
	case EventInput:
		value := ""
		if ev.Value != nil {
			value = *ev.Value
		}
		if err := field.SetValue(value); err != nil {
			return step, err
		}
		r.v.Input(field)

	case EventBlur:
		r.v.Blur(field)

	case EventChange:
		if ev.Value != nil {
			if err := field.SetValue(*ev.Value); err != nil {
				return step, err
			}
			r.v.Input(field)
		}
		r.v.Change(field)

	case EventKeyDown:
		key := ev.Key
		if key == "" {
			key = formvalidator.KeyEnter
		}
		step.Prevented = r.v.KeyDown(key, field)

		if key == formvalidator.KeyEnter && !step.Prevented && field.Kind() != validate.KindSelect {
			r.submit(ctx, &step)
		}

	case EventSubmit:
		r.submit(ctx, &step)

	case EventWait:
		r.clk.Advance(ev.Duration)

	default:
		return step, fmt.Errorf("unknown event type %q", ev.Type)
	}

	step.At = r.clk.Now()
	if b, ok := r.v.Banner(); ok {
		step.Banner = b.Kind.String()
	}
	return step, nil
}

func (r *Runner) submit(ctx context.Context, step *Step) {
	res := r.v.Submit(ctx)
	step.Submitted = true
	step.Prevented = res.Prevented
	step.Valid = res.Valid
	step.Failed = res.Failed
}
