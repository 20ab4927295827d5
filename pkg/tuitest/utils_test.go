package tuitest

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripANSI(t *testing.T) {
	in := "\x1b[31mred\x1b[0m   \nplain  \n\n"
	assert.Equal(t, "red\nplain", StripANSI(in))
}

func TestType(t *testing.T) {
	msgs := Type("ab")
	require.Len(t, msgs, 2)

	key, ok := msgs[1].(tea.KeyPressMsg)
	require.True(t, ok)
	assert.Equal(t, "b", key.Text)
}

func TestKeyStrings(t *testing.T) {
	tests := []struct {
		msg  tea.Msg
		want string
	}{
		{KeyTab(), "tab"},
		{KeyShiftTab(), "shift+tab"},
		{KeyEnter(), "enter"},
		{KeyEsc(), "esc"},
		{Ctrl('s'), "ctrl+s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			key, ok := tt.msg.(tea.KeyPressMsg)
			require.True(t, ok)
			assert.Equal(t, tt.want, key.String())
		})
	}
}
