package validate

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_Required(t *testing.T) {
	tests := []struct {
		name  string
		rule  Rule
		value string
		want  Result
	}{
		{"required empty", Rule{Kind: KindText, Required: true}, "", Result{Empty: true, Failure: FailureMissing, Message: MessageRequired, err: ErrRequired}},
		{"required whitespace only", Rule{Kind: KindText, Required: true}, "  \t ", Result{Empty: true, Failure: FailureMissing, Message: MessageRequired, err: ErrRequired}},
		{"required email empty skips format", Rule{Kind: KindEmail, Required: true}, "", Result{Empty: true, Failure: FailureMissing, Message: MessageRequired, err: ErrRequired}},
		{"required tel empty skips format", Rule{Kind: KindTel, Required: true}, " ", Result{Empty: true, Failure: FailureMissing, Message: MessageRequired, err: ErrRequired}},
		{"optional empty", Rule{Kind: KindEmail}, "", Result{Valid: true, Empty: true}},
		{"required text present", Rule{Kind: KindText, Required: true}, "Ada", Result{Valid: true}},
		{"required select present", Rule{Kind: KindSelect, Required: true}, "us", Result{Valid: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Check(tt.rule, tt.value))
		})
	}
}

func TestCheck_Email(t *testing.T) {
	rule := Rule{Kind: KindEmail, Required: true}

	tests := []struct {
		value string
		valid bool
	}{
		{"user@example.com", true},
		{"  user@example.com  ", true},
		{"first.last+tag@sub.example.co", true},
		{"plainaddress", false},
		{"a@b", false},
		{"@missing-local.com", false},
		{"bad-email", false},
		{"two@@example.com", false},
		{"space in@example.com", false},
		{"user@example.", false},
		{"a\u00a0b@example.com", false},
		{"a\vb@example.com", false},
		{"user@exa\u2003mple.com", false},
		{"a\ufeffb@example.com", false},
		{"user@example.com\u00a0", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got := Check(rule, tt.value)
			assert.Equal(t, tt.valid, got.Valid)
			if !tt.valid {
				assert.Equal(t, FailureFormat, got.Failure)
				assert.Equal(t, MessageEmail, got.Message)
				assert.ErrorIs(t, got.Err(), ErrEmail)
			}
		})
	}
}

func TestCheck_Phone(t *testing.T) {
	rule := Rule{Kind: KindTel, Required: true}

	tests := []struct {
		value string
		valid bool
	}{
		{"+1 (555) 123-4567", true},
		{"5551234567", true},
		{"555 123 4567", true},
		{"(555)123-4567", true},
		{"----------", true},
		{"+12345678901", true},
		{"12345", false},
		{"555-CALL-NOW", false},
		{"123456789", false},
		{"+123456789", false},
		{"1234567890+", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got := Check(rule, tt.value)
			assert.Equal(t, tt.valid, got.Valid)
			if !tt.valid {
				assert.Equal(t, MessagePhone, got.Message)
				assert.ErrorIs(t, got.Err(), ErrPhone)
			}
		})
	}
}

func TestCheck_OtherKindsSkipFormat(t *testing.T) {
	assert.True(t, Check(Rule{Kind: KindText, Required: true}, "not-an-email").Valid)
	assert.True(t, Check(Rule{Kind: KindSelect, Required: true}, "12").Valid)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		tag, typ string
		want     Kind
	}{
		{"input", "email", KindEmail},
		{"input", "EMAIL", KindEmail},
		{"input", "tel", KindTel},
		{"input", "text", KindText},
		{"input", "", KindText},
		{"input", "password", KindText},
		{"select", "", KindSelect},
		{"SELECT", "", KindSelect},
		{"", "select", KindSelect},
	}

	for _, tt := range tests {
		t.Run(tt.tag+"/"+tt.typ, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseKind(tt.tag, tt.typ))
		})
	}
}

func TestField(t *testing.T) {
	t.Run("valid values return nil", func(t *testing.T) {
		assert.NoError(t, Field("email", "user@example.com", Rule{Kind: KindEmail, Required: true}))
		assert.NoError(t, Field("nickname", "", Rule{Kind: KindText}))
	})

	t.Run("missing value names the field", func(t *testing.T) {
		err := Field("fullName", " ", Rule{Kind: KindText, Required: true})

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		require.Len(t, fieldErrs, 1)
		assert.Equal(t, "fullName", fieldErrs[0].Field)
		assert.ErrorIs(t, fieldErrs[0].Err, ErrRequired)
	})

	t.Run("agrees with Check", func(t *testing.T) {
		rule := Rule{Kind: KindEmail, Required: true}
		for _, value := range []string{"", "user@example.com", "a\u00a0b@example.com", "bad"} {
			assert.Equal(t, Check(rule, value).Valid, Field("email", value, rule) == nil, value)
		}
	})

	t.Run("format failure names the field", func(t *testing.T) {
		err := Field("phone", "12345", Rule{Kind: KindTel, Required: true})

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		require.Len(t, fieldErrs, 1)
		assert.Equal(t, "phone", fieldErrs[0].Field)
		assert.ErrorIs(t, fieldErrs[0].Err, ErrPhone)
	})
}
