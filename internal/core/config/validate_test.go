package config

import (
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	return &cfg
}

func fieldNames(errs criterio.FieldErrors) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}

func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, validConfig(t).Validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
		wantErr   string
	}{
		{
			name:      "blank form id",
			mutate:    func(c *Config) { c.Form.ID = "  " },
			wantField: "form.id",
			wantErr:   "cannot be empty",
		},
		{
			name:      "non-positive ttl",
			mutate:    func(c *Config) { c.Banner.SuccessTTL = -time.Second },
			wantField: "banner.success_ttl",
			wantErr:   "greater than zero",
		},
		{
			name:      "unknown theme",
			mutate:    func(c *Config) { c.TUI.Theme = "neon" },
			wantField: "tui.theme",
			wantErr:   "unknown theme",
		},
		{
			name: "missing field name",
			mutate: func(c *Config) {
				c.Form.Fields = []FormField{{Type: FieldTypeText}}
			},
			wantField: "form.fields[0].name",
			wantErr:   "cannot be empty",
		},
		{
			name: "duplicate field names",
			mutate: func(c *Config) {
				c.Form.Fields = []FormField{
					{Name: "email", Type: FieldTypeEmail},
					{Name: "email", Type: FieldTypeText},
				}
			},
			wantField: "form.fields[1].name",
			wantErr:   "duplicate field name",
		},
		{
			name: "unsupported type",
			mutate: func(c *Config) {
				c.Form.Fields = []FormField{{Name: "age", Type: "number"}}
			},
			wantField: "form.fields[0].type",
			wantErr:   "unsupported type",
		},
		{
			name: "select without options",
			mutate: func(c *Config) {
				c.Form.Fields = []FormField{{Name: "country", Type: FieldTypeSelect}}
			},
			wantField: "form.fields[0].options",
			wantErr:   "at least one option",
		},
		{
			name: "options on text field",
			mutate: func(c *Config) {
				c.Form.Fields = []FormField{{Name: "name", Type: FieldTypeText, Options: []FieldOption{{Value: "x"}}}}
			},
			wantField: "form.fields[0].options",
			wantErr:   "only valid on select",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Contains(t, fieldNames(fieldErrs), tt.wantField)
		})
	}
}
