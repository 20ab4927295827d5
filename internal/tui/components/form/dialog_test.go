package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/formcheck/internal/core/validate"
	"github.com/colonyops/formcheck/pkg/tuitest"
)

type recordingHandler struct {
	events  []string
	prevent bool
}

func (h *recordingHandler) Blur(f Field)   { h.events = append(h.events, "blur:"+f.Name()) }
func (h *recordingHandler) Input(f Field)  { h.events = append(h.events, "input:"+f.Name()) }
func (h *recordingHandler) Change(f Field) { h.events = append(h.events, "change:"+f.Name()) }
func (h *recordingHandler) Submit()        { h.events = append(h.events, "submit") }

func (h *recordingHandler) KeyDown(key string, f Field) bool {
	h.events = append(h.events, "keydown:"+key+":"+f.Name())
	return h.prevent
}

func newTestDialog(h Handler) (*Dialog, *TextField, *TextField, *SelectFormField) {
	name := NewTextField(FieldDef{Name: "name", Label: "Name", Required: true}, "")
	email := NewTextField(FieldDef{Name: "email", Label: "Email", Kind: validate.KindEmail, Required: true}, "")
	country := NewSelectFormField(FieldDef{Name: "country", Label: "Country"}, []Option{
		{Value: "", Label: "Pick"},
		{Value: "us", Label: "US"},
	}, "")
	return NewDialog("Test", []Field{name, email, country}, h), name, email, country
}

func TestDialog(t *testing.T) {
	t.Run("creation focuses first field", func(t *testing.T) {
		d, name, email, _ := newTestDialog(nil)

		assert.True(t, name.Focused())
		assert.False(t, email.Focused())
		assert.Same(t, name, d.Focused())
		assert.Equal(t, 0, d.Submits())
		assert.False(t, d.Cancelled())
	})

	t.Run("empty dialog", func(t *testing.T) {
		d := NewDialog("Empty", nil, nil)
		assert.Nil(t, d.Focused())
		assert.Empty(t, d.FormValues())

		d.Update(tuitest.KeyTab())
		d.Update(tuitest.KeyEnter())
		assert.Equal(t, 0, d.Submits())
	})

	t.Run("tab blurs and advances, wrapping", func(t *testing.T) {
		h := &recordingHandler{}
		d, name, email, country := newTestDialog(h)

		d.Update(tuitest.KeyTab())
		assert.True(t, email.Focused())
		assert.False(t, name.Focused())

		d.Update(tuitest.KeyTab())
		d.Update(tuitest.KeyTab())
		assert.True(t, name.Focused())
		assert.False(t, country.Focused())

		assert.Equal(t, []string{"blur:name", "blur:email", "blur:country"}, h.events)
	})

	t.Run("shift+tab wraps to last", func(t *testing.T) {
		d, _, _, country := newTestDialog(nil)

		d.Update(tuitest.KeyShiftTab())
		assert.True(t, country.Focused())
	})

	t.Run("typing dispatches input", func(t *testing.T) {
		h := &recordingHandler{}
		d, name, _, _ := newTestDialog(h)

		for _, msg := range tuitest.Type("Al") {
			d.Update(msg)
		}

		assert.Equal(t, "Al", name.Value())
		assert.Equal(t, []string{"input:name", "input:name"}, h.events)
	})

	t.Run("moving selection dispatches input and change", func(t *testing.T) {
		h := &recordingHandler{}
		d, _, _, country := newTestDialog(h)
		d.Update(tuitest.KeyShiftTab())
		h.events = nil

		d.Update(tuitest.KeyDown())

		assert.Equal(t, "us", country.Value())
		assert.Equal(t, []string{"input:country", "change:country"}, h.events)
	})

	t.Run("enter prevented does not submit", func(t *testing.T) {
		h := &recordingHandler{prevent: true}
		d, _, _, _ := newTestDialog(h)

		d.Update(tuitest.KeyEnter())

		assert.Equal(t, []string{"keydown:Enter:name"}, h.events)
		assert.Equal(t, 0, d.Submits())
	})

	t.Run("enter on valid text field submits", func(t *testing.T) {
		h := &recordingHandler{}
		d, _, _, _ := newTestDialog(h)

		d.Update(tuitest.KeyEnter())

		assert.Equal(t, []string{"keydown:Enter:name", "submit"}, h.events)
		assert.Equal(t, 1, d.Submits())
	})

	t.Run("enter on select does not submit", func(t *testing.T) {
		h := &recordingHandler{}
		d, _, _, _ := newTestDialog(h)
		d.Update(tuitest.KeyShiftTab())
		h.events = nil

		d.Update(tuitest.KeyEnter())

		assert.Equal(t, []string{"keydown:Enter:country"}, h.events)
		assert.Equal(t, 0, d.Submits())
	})

	t.Run("ctrl+s submits", func(t *testing.T) {
		h := &recordingHandler{}
		d, _, _, _ := newTestDialog(h)

		d.Update(tuitest.Ctrl('s'))

		assert.Equal(t, []string{"submit"}, h.events)
		assert.Equal(t, 1, d.Submits())
	})

	t.Run("escape cancels", func(t *testing.T) {
		d, _, _, _ := newTestDialog(nil)

		d.Update(tuitest.KeyEsc())
		assert.True(t, d.Cancelled())
	})

	t.Run("FormValues extracts all values", func(t *testing.T) {
		d, name, email, _ := newTestDialog(nil)
		name.SetValue("Alice")
		email.SetValue("alice@test.com")

		vals := d.FormValues()
		assert.Equal(t, map[string]string{"name": "Alice", "email": "alice@test.com", "country": ""}, vals)
	})

	t.Run("view renders fields and help", func(t *testing.T) {
		d, _, _, _ := newTestDialog(nil)
		d.SubmitLabel = "Sign Up"

		view := tuitest.StripANSI(d.View())
		require.Contains(t, view, "Test")
		assert.Contains(t, view, "Name *")
		assert.Contains(t, view, "Country")
		assert.Contains(t, view, "Sign Up")
		assert.Contains(t, view, "tab: next")
	})
}
