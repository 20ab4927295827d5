// Package validate provides the field validation rules used by the form validator.
// Everything here is pure: a value goes in, a Result comes out.
package validate

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/hay-kot/criterio"
)

// Messages shown next to a failing field.
const (
	MessageRequired = "This field is required"
	MessageEmail    = "Please enter a valid email address"
	MessagePhone    = "Please enter a valid phone number"
)

var (
	ErrRequired = errors.New(MessageRequired)
	ErrEmail    = errors.New(MessageEmail)
	ErrPhone    = errors.New(MessagePhone)
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// The phone pattern is intentionally loose: it checks the character set and a
	// minimum length of 10, not grouping. "----------" passes.
	phoneRegex = regexp.MustCompile(`^[+]?[\d\s\-()]{10,}$`)
)

// Kind is the closed set of field variants that carry distinct format checks.
type Kind int

const (
	KindText Kind = iota
	KindEmail
	KindTel
	KindSelect
)

func (k Kind) String() string {
	switch k {
	case KindEmail:
		return "email"
	case KindTel:
		return "tel"
	case KindSelect:
		return "select"
	default:
		return "text"
	}
}

// ParseKind maps an element tag and its type attribute onto a Kind. Unknown input
// types fall back to KindText.
func ParseKind(tag, typ string) Kind {
	if strings.EqualFold(tag, "select") {
		return KindSelect
	}
	switch strings.ToLower(strings.TrimSpace(typ)) {
	case "email":
		return KindEmail
	case "tel":
		return KindTel
	case "select":
		return KindSelect
	default:
		return KindText
	}
}

// Failure classifies why a value was rejected.
type Failure int

const (
	FailureNone Failure = iota
	FailureMissing
	FailureFormat
)

// Rule describes how a single field is checked.
type Rule struct {
	Kind     Kind
	Required bool
}

// Result is the outcome of checking one value.
type Result struct {
	Valid   bool
	Empty   bool
	Failure Failure
	Message string

	err error
}

// Err returns the sentinel error behind the failure, or nil when valid.
func (r Result) Err() error { return r.err }

// Check validates value against rule. The value is trimmed first. A required
// empty value short-circuits the format checks, and format checks only run when a
// value is present.
func Check(rule Rule, value string) Result {
	value = strings.TrimSpace(value)
	if value == "" {
		if rule.Required {
			return Result{Empty: true, Failure: FailureMissing, Message: MessageRequired, err: ErrRequired}
		}
		return Result{Valid: true, Empty: true}
	}

	var err error
	switch rule.Kind {
	case KindEmail:
		err = Email(value)
	case KindTel:
		err = Phone(value)
	}
	if err != nil {
		return Result{Failure: FailureFormat, Message: err.Error(), err: err}
	}

	return Result{Valid: true}
}

// Required rejects values that are empty after trimming.
func Required(value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrRequired
	}
	return nil
}

// Email checks the basic local@domain.tld shape. No part may contain any
// Unicode whitespace, including no-break and zero width no-break spaces.
func Email(value string) error {
	if strings.IndexFunc(value, isEmailSpace) >= 0 || !emailRegex.MatchString(value) {
		return ErrEmail
	}
	return nil
}

// Phone strips all whitespace and checks the remaining characters are digits,
// hyphens, parentheses and an optional leading plus, at least 10 of them.
func Phone(value string) error {
	if !phoneRegex.MatchString(stripSpace(value)) {
		return ErrPhone
	}
	return nil
}

// Field runs the rule for a named field through criterio so failures come back as
// criterio.FieldErrors keyed by name.
func Field(name, value string, rule Rule) error {
	res := Check(rule, value)
	if res.Valid {
		return nil
	}
	return criterio.Run(name, value, func(string) error { return res.Err() })
}

func isEmailSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
