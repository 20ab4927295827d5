package replay

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/formcheck/internal/core/config"
	"github.com/colonyops/formcheck/internal/core/dom"
	"github.com/colonyops/formcheck/internal/core/validate"
)

func newDoc(t *testing.T) *dom.Document {
	t.Helper()
	return dom.Build(config.DefaultConfig().Form)
}

func parse(t *testing.T, src string) *Script {
	t.Helper()
	s, err := ParseScript(strings.NewReader(src))
	require.NoError(t, err)
	return s
}

func TestParseScript(t *testing.T) {
	s := parse(t, `
form: signupForm
events:
  - {type: input, field: email, value: "bad-email"}
  - {type: change, field: country}
  - {type: wait, duration: 5s}
`)

	assert.Equal(t, "signupForm", s.Form)
	require.Len(t, s.Events, 3)
	require.NotNil(t, s.Events[0].Value)
	assert.Equal(t, "bad-email", *s.Events[0].Value)
	assert.Nil(t, s.Events[1].Value)
	assert.Equal(t, 5*time.Second, s.Events[2].Duration)
}

func TestParseScript_Invalid(t *testing.T) {
	_, err := ParseScript(strings.NewReader(`
events:
  - {type: hover, field: email}
  - {type: blur}
  - {type: wait}
`))
	require.Error(t, err)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)

	var names []string
	for _, fe := range fieldErrs {
		names = append(names, fe.Field)
	}
	assert.Equal(t, []string{"events[0].type", "events[1].field", "events[2].duration"}, names)
}

func TestParseScript_Empty(t *testing.T) {
	_, err := ParseScript(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReplay_StepLog(t *testing.T) {
	doc := newDoc(t)
	script := parse(t, `
form: signupForm
events:
  - {type: input, field: email, value: "bad-email"}
  - {type: blur, field: email}
  - {type: keydown, field: email, key: Enter}
  - {type: submit}
  - {type: input, field: fullName, value: "Ada Lovelace"}
  - {type: input, field: email, value: "ada@example.com"}
  - {type: input, field: phone, value: "+1 (555) 123-4567"}
  - {type: change, field: country, value: "gb"}
  - {type: submit}
  - {type: wait, duration: 4s}
  - {type: wait, duration: 1s}
`)

	steps, err := Replay(context.Background(), doc, script)
	require.NoError(t, err)
	require.Len(t, steps, 11)

	assert.Empty(t, steps[1].Banner)

	assert.True(t, steps[2].Prevented)
	assert.False(t, steps[2].Submitted)

	assert.True(t, steps[3].Submitted)
	assert.False(t, steps[3].Valid)
	assert.Equal(t, []string{"Full Name", "Email Address", "Phone Number", "Country"}, steps[3].Failed)
	assert.Equal(t, "error-summary", steps[3].Banner)

	assert.True(t, steps[8].Valid)
	assert.Equal(t, "success-message", steps[8].Banner)

	assert.Equal(t, "success-message", steps[9].Banner)
	assert.Equal(t, 4*time.Second, steps[9].At)
	assert.Empty(t, steps[10].Banner)
	assert.Equal(t, 5*time.Second, steps[10].At)

	form, _ := doc.Form("signupForm")
	_, _, ok := form.Banner()
	assert.False(t, ok)

	country, _ := form.Field("country")
	assert.True(t, country.HasClass(dom.ClassUserInteracted))
}

func TestReplay_EnterSubmitsValidTextField(t *testing.T) {
	doc := newDoc(t)
	script := parse(t, `
events:
  - {type: input, field: fullName, value: "Ada"}
  - {type: keydown, field: fullName}
`)

	steps, err := Replay(context.Background(), doc, script)
	require.NoError(t, err)

	assert.True(t, steps[1].Submitted)
	assert.False(t, steps[1].Valid)
	assert.Equal(t, "error-summary", steps[1].Banner)
}

func TestReplay_EnterOnEmptyFieldLeavesBanner(t *testing.T) {
	doc := newDoc(t)
	script := parse(t, `
events:
  - {type: keydown, field: phone, key: Enter}
`)

	steps, err := Replay(context.Background(), doc, script)
	require.NoError(t, err)

	assert.True(t, steps[0].Prevented)
	assert.Empty(t, steps[0].Banner)

	form, _ := doc.Form("signupForm")
	phone, _ := form.Field("phone")
	msg, _ := phone.ErrorMessage()
	assert.Equal(t, validate.MessageRequired, msg)
}

func TestReplay_Errors(t *testing.T) {
	t.Run("unknown field reports index", func(t *testing.T) {
		doc := newDoc(t)
		script := parse(t, `
events:
  - {type: blur, field: email}
  - {type: blur, field: nope}
`)

		steps, err := Replay(context.Background(), doc, script)
		require.Error(t, err)
		assert.Len(t, steps, 1)

		var evErr *EventError
		require.ErrorAs(t, err, &evErr)
		assert.Equal(t, 1, evErr.Index)
		assert.Contains(t, err.Error(), "event 1 (blur)")
	})

	t.Run("unknown option", func(t *testing.T) {
		doc := newDoc(t)
		script := parse(t, `
events:
  - {type: change, field: country, value: "xx"}
`)

		_, err := Replay(context.Background(), doc, script)
		var evErr *EventError
		require.ErrorAs(t, err, &evErr)
		assert.Equal(t, 0, evErr.Index)
	})

	t.Run("missing form", func(t *testing.T) {
		doc, err := dom.ParseString(`<form id="other"></form>`)
		require.NoError(t, err)

		_, err = Replay(context.Background(), doc, &Script{Form: "signupForm"})
		assert.ErrorIs(t, err, ErrFormNotFound)
	})

	t.Run("unknown type in unvalidated script", func(t *testing.T) {
		doc := newDoc(t)
		_, err := Replay(context.Background(), doc, &Script{Events: []Event{{Type: "hover"}}})

		var evErr *EventError
		require.ErrorAs(t, err, &evErr)
		assert.Equal(t, 0, evErr.Index)
	})
}
