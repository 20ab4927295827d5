// Package config handles configuration loading and validation for formcheck.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/formcheck/internal/core/styles"
)

// FieldType represents the type of a form field.
type FieldType string

// Supported field types.
const (
	FieldTypeText   FieldType = "text"
	FieldTypeEmail  FieldType = "email"
	FieldTypeTel    FieldType = "tel"
	FieldTypeSelect FieldType = "select"
)

// Config holds the application configuration.
type Config struct {
	Form   Form         `yaml:"form"`
	Banner BannerConfig `yaml:"banner"`
	TUI    TUIConfig    `yaml:"tui"`
}

// Form defines the sign-up form rendered by `formcheck render` and the TUI.
type Form struct {
	ID          string      `yaml:"id"`           // element id the validator binds to
	Title       string      `yaml:"title"`        // heading shown above the form
	SubmitLabel string      `yaml:"submit_label"` // submit button text
	Fields      []FormField `yaml:"fields"`
}

// FormField defines a single input field in the form.
type FormField struct {
	Name        string        `yaml:"name"`        // control name, also the fallback label
	Label       string        `yaml:"label"`       // display label
	Type        FieldType     `yaml:"type"`        // text, email, tel or select
	Required    bool          `yaml:"required"`    // whether the field is required
	Placeholder string        `yaml:"placeholder"` // placeholder text for input fields
	Options     []FieldOption `yaml:"options"`     // options for select fields
}

// FieldOption defines an option for select fields.
type FieldOption struct {
	Value string `yaml:"value"` // the value stored when selected
	Label string `yaml:"label"` // display label shown in the form
}

// BannerConfig controls the form-level message.
type BannerConfig struct {
	SuccessTTL time.Duration `yaml:"success_ttl"` // how long the success banner stays up
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// DefaultConfig returns a Config with the stock sign-up form.
func DefaultConfig() Config {
	return Config{
		Form: Form{
			ID:          "signupForm",
			Title:       "Create your account",
			SubmitLabel: "Sign Up",
			Fields: []FormField{
				{Name: "fullName", Label: "Full Name", Type: FieldTypeText, Required: true, Placeholder: "Ada Lovelace"},
				{Name: "email", Label: "Email Address", Type: FieldTypeEmail, Required: true, Placeholder: "you@example.com"},
				{Name: "phone", Label: "Phone Number", Type: FieldTypeTel, Required: true, Placeholder: "+1 (555) 123-4567"},
				{
					Name:     "country",
					Label:    "Country",
					Type:     FieldTypeSelect,
					Required: true,
					Options: []FieldOption{
						{Value: "", Label: "Select a country"},
						{Value: "us", Label: "United States"},
						{Value: "ca", Label: "Canada"},
						{Value: "gb", Label: "United Kingdom"},
						{Value: "de", Label: "Germany"},
					},
				},
				{Name: "company", Label: "Company", Type: FieldTypeText},
			},
		},
		Banner: BannerConfig{
			SuccessTTL: 5 * time.Second,
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	// Apply defaults for zero values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Form.ID == "" {
		c.Form.ID = defaults.Form.ID
	}
	if c.Form.SubmitLabel == "" {
		c.Form.SubmitLabel = defaults.Form.SubmitLabel
	}
	if c.Banner.SuccessTTL == 0 {
		c.Banner.SuccessTTL = defaults.Banner.SuccessTTL
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	for i := range c.Form.Fields {
		if c.Form.Fields[i].Type == "" {
			c.Form.Fields[i].Type = FieldTypeText
		}
	}
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "formcheck", "config.yaml")
}
