// Package replay applies a scripted sequence of user events to an HTML page
// through the form validator, using a manual clock for waits.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"
)

// EventType is the kind of a scripted event.
type EventType string

const (
	EventInput   EventType = "input"
	EventBlur    EventType = "blur"
	EventChange  EventType = "change"
	EventKeyDown EventType = "keydown"
	EventSubmit  EventType = "submit"
	EventWait    EventType = "wait"
)

// IsValid reports whether t is a known event type.
func (t EventType) IsValid() bool {
	switch t {
	case EventInput, EventBlur, EventChange, EventKeyDown, EventSubmit, EventWait:
		return true
	default:
		return false
	}
}

// needsField reports whether the event targets a control.
func (t EventType) needsField() bool {
	switch t {
	case EventInput, EventBlur, EventChange, EventKeyDown:
		return true
	default:
		return false
	}
}

// Event is one scripted user action.
type Event struct {
	Type  EventType `yaml:"type"`
	Field string    `yaml:"field,omitempty"`
	// Value is the new control value for input and change events. A change
	// without a value only fires the event.
	Value    *string       `yaml:"value,omitempty"`
	Key      string        `yaml:"key,omitempty"`
	Duration time.Duration `yaml:"duration,omitempty"`
}

// Script is a replayable list of events against one form.
type Script struct {
	Form   string  `yaml:"form"`
	Events []Event `yaml:"events"`
}

// LoadScript reads a YAML script from disk.
func LoadScript(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseScript(f)
}

// ParseScript decodes and validates a YAML script.
func ParseScript(r io.Reader) (*Script, error) {
	var s Script
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse script: empty document")
		}
		return nil, fmt.Errorf("parse script: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	return &s, nil
}

// Validate checks every event is well formed.
func (s *Script) Validate() error {
	var errs criterio.FieldErrorsBuilder

	for i, ev := range s.Events {
		field := fmt.Sprintf("events[%d]", i)

		if !ev.Type.IsValid() {
			errs = errs.Append(field+".type", fmt.Errorf("unknown event type %q", ev.Type))
			continue
		}
		if ev.Type.needsField() && ev.Field == "" {
			errs = errs.Append(field+".field", fmt.Errorf("%s events need a field", ev.Type))
		}
		if ev.Type == EventWait && ev.Duration <= 0 {
			errs = errs.Append(field+".duration", fmt.Errorf("must be greater than zero"))
		}
	}

	return errs.ToError()
}
