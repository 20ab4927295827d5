package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/formcheck/internal/core/styles"
)

var errBlank = errors.New("cannot be empty")

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return errBlank
	}
	return nil
}

func positiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("form.id", c.Form.ID, notBlank),
		criterio.Run("banner.success_ttl", c.Banner.SuccessTTL, positiveDuration),
		criterio.Run("tui.theme", c.TUI.Theme, knownTheme),
		c.validateFields(),
	)
}

// IsValid reports whether t is a supported field type.
func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText, FieldTypeEmail, FieldTypeTel, FieldTypeSelect:
		return true
	default:
		return false
	}
}

func (c *Config) validateFields() error {
	var errs criterio.FieldErrorsBuilder
	seen := make(map[string]bool, len(c.Form.Fields))

	for i, f := range c.Form.Fields {
		field := fmt.Sprintf("form.fields[%d]", i)

		if strings.TrimSpace(f.Name) == "" {
			errs = errs.Append(field+".name", errBlank)
		} else if seen[f.Name] {
			errs = errs.Append(field+".name", fmt.Errorf("duplicate field name %q", f.Name))
		}
		seen[f.Name] = true

		if !f.Type.IsValid() {
			errs = errs.Append(field+".type", fmt.Errorf("unsupported type %q", f.Type))
		}

		if f.Type == FieldTypeSelect && len(f.Options) == 0 {
			errs = errs.Append(field+".options", fmt.Errorf("select fields need at least one option"))
		}
		if f.Type != FieldTypeSelect && len(f.Options) > 0 {
			errs = errs.Append(field+".options", fmt.Errorf("options are only valid on select fields"))
		}
	}

	return errs.ToError()
}
