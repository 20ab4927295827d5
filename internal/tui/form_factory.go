package tui

import (
	"github.com/colonyops/formcheck/internal/core/config"
	"github.com/colonyops/formcheck/internal/core/validate"
	"github.com/colonyops/formcheck/internal/tui/components/form"
)

// BuildFields creates the terminal fields for a configured form, in order.
func BuildFields(cfg config.Form) []form.Field {
	fields := make([]form.Field, 0, len(cfg.Fields))
	for _, f := range cfg.Fields {
		def := form.FieldDef{
			Name:        f.Name,
			Label:       f.Label,
			Placeholder: f.Placeholder,
			Kind:        validate.ParseKind("input", string(f.Type)),
			Required:    f.Required,
		}

		if f.Type == config.FieldTypeSelect {
			opts := make([]form.Option, len(f.Options))
			for i, o := range f.Options {
				opts[i] = form.Option{Value: o.Value, Label: o.Label}
			}
			fields = append(fields, form.NewSelectFormField(def, opts, ""))
			continue
		}

		fields = append(fields, form.NewTextField(def, ""))
	}
	return fields
}
