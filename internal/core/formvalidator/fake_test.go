package formvalidator

import (
	"github.com/colonyops/formcheck/internal/core/validate"
)

type fakeField struct {
	name  string
	label string
	rule  validate.Rule
	value string

	state      State
	errors     []string
	interacted bool
}

func (f *fakeField) Name() string        { return f.name }
func (f *fakeField) Label() string       { return f.label }
func (f *fakeField) Rule() validate.Rule { return f.rule }
func (f *fakeField) Value() string       { return f.value }

type fakeSurface struct {
	fields  []*fakeField
	banners []Banner
	removed []BannerID
}

func newFakeSurface(fields ...*fakeField) *fakeSurface {
	return &fakeSurface{fields: fields}
}

func (s *fakeSurface) RequiredFields() []Field {
	out := make([]Field, 0, len(s.fields))
	for _, f := range s.fields {
		if f.rule.Required {
			out = append(out, f)
		}
	}
	return out
}

func (s *fakeSurface) SetState(f Field, st State) { f.(*fakeField).state = st }

func (s *fakeSurface) ShowError(f Field, message string) {
	ff := f.(*fakeField)
	ff.errors = []string{message}
}

func (s *fakeSurface) ClearError(f Field) { f.(*fakeField).errors = nil }

func (s *fakeSurface) MarkInteracted(f Field) { f.(*fakeField).interacted = true }

func (s *fakeSurface) ShowBanner(b Banner) {
	s.banners = []Banner{b}
}

func (s *fakeSurface) RemoveBanner(id BannerID) bool {
	for i, b := range s.banners {
		if b.ID == id {
			s.banners = append(s.banners[:i], s.banners[i+1:]...)
			s.removed = append(s.removed, id)
			return true
		}
	}
	return false
}

type fakeLocator map[string]Surface

func (l fakeLocator) FormByID(id string) (Surface, bool) {
	s, ok := l[id]
	return s, ok
}

func textField(name, label, value string) *fakeField {
	return &fakeField{name: name, label: label, value: value, rule: validate.Rule{Kind: validate.KindText, Required: true}}
}

func emailField(name, label, value string) *fakeField {
	return &fakeField{name: name, label: label, value: value, rule: validate.Rule{Kind: validate.KindEmail, Required: true}}
}

func telField(name, label, value string) *fakeField {
	return &fakeField{name: name, label: label, value: value, rule: validate.Rule{Kind: validate.KindTel, Required: true}}
}

func selectField(name, label, value string) *fakeField {
	return &fakeField{name: name, label: label, value: value, rule: validate.Rule{Kind: validate.KindSelect, Required: true}}
}
