package tui

import (
	"strings"

	"github.com/colonyops/formcheck/internal/core/formvalidator"
	"github.com/colonyops/formcheck/internal/tui/components/form"
)

// Surface is the terminal rendition of a form: presentation effects land on
// the form fields and the single banner slot above the form.
type Surface struct {
	fields []form.Field
	banner *formvalidator.Banner
}

var (
	_ formvalidator.Surface = (*Surface)(nil)
	_ formvalidator.Valuer  = (*Surface)(nil)
)

func NewSurface(fields []form.Field) *Surface {
	return &Surface{fields: fields}
}

// RequiredFields returns the required fields in display order.
func (s *Surface) RequiredFields() []formvalidator.Field {
	var out []formvalidator.Field
	for _, f := range s.fields {
		if f.Rule().Required {
			out = append(out, f)
		}
	}
	return out
}

func (s *Surface) SetState(f formvalidator.Field, st formvalidator.State) {
	if ff, ok := s.own(f); ok {
		ff.SetState(st)
	}
}

func (s *Surface) ShowError(f formvalidator.Field, message string) {
	if ff, ok := s.own(f); ok {
		ff.SetErrorMessage(message)
	}
}

func (s *Surface) ClearError(f formvalidator.Field) {
	if ff, ok := s.own(f); ok {
		ff.SetErrorMessage("")
	}
}

func (s *Surface) MarkInteracted(f formvalidator.Field) {
	if ff, ok := s.own(f); ok {
		ff.SetInteracted()
	}
}

func (s *Surface) ShowBanner(b formvalidator.Banner) {
	s.banner = &b
}

func (s *Surface) RemoveBanner(id formvalidator.BannerID) bool {
	if s.banner == nil || s.banner.ID != id {
		return false
	}
	s.banner = nil
	return true
}

// Banner returns the banner currently shown.
func (s *Surface) Banner() (formvalidator.Banner, bool) {
	if s.banner == nil {
		return formvalidator.Banner{}, false
	}
	return *s.banner, true
}

// Values reports every field's trimmed value.
func (s *Surface) Values() map[string]string {
	out := make(map[string]string, len(s.fields))
	for _, f := range s.fields {
		out[f.Name()] = strings.TrimSpace(f.Value())
	}
	return out
}

func (s *Surface) own(f formvalidator.Field) (form.Field, bool) {
	for _, ff := range s.fields {
		if formvalidator.Field(ff) == f {
			return ff, true
		}
	}
	return nil, false
}
