// Package formvalidator binds field validation to a form surface. It owns the
// event semantics (blur, input, change, keydown, submit) and the form banner
// lifecycle, and applies every visible change through a Renderer.
package formvalidator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"

	"github.com/colonyops/formcheck/internal/core/clock"
	"github.com/colonyops/formcheck/internal/core/logging"
	"github.com/colonyops/formcheck/internal/core/validate"
)

// KeyEnter is the key name that triggers focused-field validation.
const KeyEnter = "Enter"

// Validator is bound to one form for its whole lifetime.
type Validator struct {
	formID     string
	surface    Surface
	fields     []Field
	scheduler  clock.Scheduler
	successTTL time.Duration
	submitter  Submitter
	log        zerolog.Logger

	mu           sync.Mutex
	lastBanner   BannerID
	banner       *Banner
	cancelExpiry func()
}

// Attach locates the form by id and binds a Validator to it. When the form does
// not exist nothing is bound and ok is false; this is not an error.
func Attach(loc Locator, formID string, opts ...Option) (*Validator, bool) {
	if formID == "" {
		formID = DefaultFormID
	}

	surface, ok := loc.FormByID(formID)
	if !ok {
		log := logging.Component("formvalidator")
		log.Debug().
			Str("form", formID).
			Msg("form not found, nothing bound")
		return nil, false
	}

	return New(formID, surface, opts...), true
}

// New binds a Validator to an already located surface.
func New(formID string, surface Surface, opts ...Option) *Validator {
	v := &Validator{
		formID:     formID,
		surface:    surface,
		fields:     surface.RequiredFields(),
		scheduler:  clock.Real{},
		successTTL: DefaultSuccessTTL,
		log:        logging.Component("formvalidator"),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(v)
	}

	if v.submitter == nil {
		v.submitter = LogSubmitter{Logger: v.log}
	}

	v.log.Debug().
		Str("form", formID).
		Int("required_fields", len(v.fields)).
		Msg("form validator bound")

	return v
}

// FormID returns the identifier the validator was bound with.
func (v *Validator) FormID() string { return v.formID }

// Fields returns the bound required fields in document order.
func (v *Validator) Fields() []Field {
	out := make([]Field, len(v.fields))
	copy(out, v.fields)
	return out
}

// Field looks up a bound field by name.
func (v *Validator) Field(name string) (Field, bool) {
	for _, f := range v.fields {
		if f.Name() == name {
			return f, true
		}
	}
	return nil, false
}

// ValidateField re-checks one field and updates its presentation. It reports
// whether the field is valid.
func (v *Validator) ValidateField(f Field) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.validateField(f)
}

// ShowFieldError marks f invalid and displays message as its only error message.
func (v *Validator) ShowFieldError(f Field, message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.showFieldError(f, message)
}

// ClearErrorState drops the field's error/correct flags and its error message.
// Calling it repeatedly is harmless.
func (v *Validator) ClearErrorState(f Field) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.clearErrorState(f)
}

// Blur validates f if it is a bound field.
func (v *Validator) Blur(f Field) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.bound(f) {
		return true
	}
	return v.validateField(f)
}

// Input clears stale validation state on every edit of a bound field.
func (v *Validator) Input(f Field) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.bound(f) {
		return
	}
	v.clearErrorState(f)
}

// Change records user interaction on bound selection fields. It has no effect
// on validity.
func (v *Validator) Change(f Field) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.bound(f) || f.Rule().Kind != validate.KindSelect {
		return
	}
	v.surface.MarkInteracted(f)
}

// KeyDown handles a key press while active has focus. Enter inside a bound field
// validates only that field; the returned prevented flag is true when the field
// is invalid and the key's default action must be suppressed.
func (v *Validator) KeyDown(key string, active Field) (prevented bool) {
	if key != KeyEnter || active == nil {
		return false
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.bound(active) {
		return false
	}
	return !v.validateField(active)
}

// Submit validates every bound field in document order and shows either the
// success banner or an error summary. Native submission is always prevented.
func (v *Validator) Submit(ctx context.Context) SubmitResult {
	v.mu.Lock()

	var (
		failed []string
		errs   criterio.FieldErrorsBuilder
	)

	for _, f := range v.fields {
		if !v.validateField(f) {
			label := DisplayLabel(f)
			failed = append(failed, label)
			errs = appendFieldErrors(errs, validate.Field(label, f.Value(), f.Rule()))
		}
	}

	result := SubmitResult{Prevented: true, Valid: len(failed) == 0, Failed: failed}

	if !result.Valid {
		v.log.Info().
			Ctx(ctx).
			Str("form", v.formID).
			Strs("fields", failed).
			Msg("form validation failed")

		result.Banner = v.showBanner(BannerErrorSummary, ErrorSummaryTitle, failed)
		result.Err = errs.ToError()
		v.mu.Unlock()
		return result
	}

	result.Banner = v.showBanner(BannerSuccess, SuccessText, nil)
	submission := Submission{FormID: v.formID, Values: v.values()}
	v.mu.Unlock()

	if err := v.submitter.Submit(ctx, submission); err != nil {
		v.log.Error().Ctx(ctx).Err(err).Str("form", v.formID).Msg("submission handoff failed")
	}

	return result
}

// Banner returns the live banner, if any.
func (v *Validator) Banner() (Banner, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.banner == nil {
		return Banner{}, false
	}
	return *v.banner, true
}

// ExpireBanner removes the banner with the given id if it is still the live
// one. Expiring a banner that was already replaced or removed does nothing.
func (v *Validator) ExpireBanner(id BannerID) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.banner == nil || v.banner.ID != id {
		return false
	}

	v.banner = nil
	v.cancelExpiry = nil
	return v.surface.RemoveBanner(id)
}

// DisplayLabel is the human readable name of a field: its label text without
// the trailing required marker, or its name when there is no label.
func DisplayLabel(f Field) string {
	label := strings.TrimSpace(f.Label())
	label = strings.TrimSpace(strings.TrimSuffix(label, " *"))
	if label == "" {
		return f.Name()
	}
	return label
}

func (v *Validator) validateField(f Field) bool {
	v.clearErrorState(f)

	res := validate.Check(f.Rule(), f.Value())
	if !res.Valid {
		v.showFieldError(f, res.Message)
		v.log.Debug().
			Str("field", f.Name()).
			Str("message", res.Message).
			Msg("field invalid")
		return false
	}

	if !res.Empty {
		v.surface.SetState(f, StateValid)
	}
	return true
}

func (v *Validator) showFieldError(f Field, message string) {
	v.surface.ShowError(f, message)
	v.surface.SetState(f, StateInvalid)
}

func (v *Validator) clearErrorState(f Field) {
	v.surface.SetState(f, StateUntouched)
	v.surface.ClearError(f)
}

// showBanner replaces the live banner. The previous banner's expiry task is
// canceled so it can never remove its successor. Caller holds v.mu.
func (v *Validator) showBanner(kind BannerKind, title string, items []string) Banner {
	if v.cancelExpiry != nil {
		v.cancelExpiry()
		v.cancelExpiry = nil
	}
	if v.banner != nil {
		v.surface.RemoveBanner(v.banner.ID)
	}

	v.lastBanner++
	b := Banner{ID: v.lastBanner, Kind: kind, Title: title, Items: items}
	v.banner = &b
	v.surface.ShowBanner(b)

	if kind == BannerSuccess {
		id := b.ID
		v.cancelExpiry = v.scheduler.AfterFunc(v.successTTL, func() {
			v.ExpireBanner(id)
		})
	}

	return b
}

func (v *Validator) values() map[string]string {
	if valuer, ok := v.surface.(Valuer); ok {
		return valuer.Values()
	}

	out := make(map[string]string, len(v.fields))
	for _, f := range v.fields {
		out[f.Name()] = strings.TrimSpace(f.Value())
	}
	return out
}

// appendFieldErrors copies the entries of a criterio.FieldErrors into b.
func appendFieldErrors(b criterio.FieldErrorsBuilder, err error) criterio.FieldErrorsBuilder {
	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return b
	}
	for _, fe := range fieldErrs {
		b = b.Append(fe.Field, fe.Err)
	}
	return b
}

func (v *Validator) bound(f Field) bool {
	if f == nil {
		return false
	}
	for _, bf := range v.fields {
		if bf == f {
			return true
		}
	}
	return false
}
