package iojson

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWith(t *testing.T) {
	t.Run("indented output", func(t *testing.T) {
		var out, errOut bytes.Buffer

		require.NoError(t, WriteWith(&out, &errOut, map[string]string{"status": "pass"}))
		assert.Equal(t, "{\n  \"status\": \"pass\"\n}\n", out.String())
		assert.Empty(t, errOut.String())
	})

	t.Run("unencodable value reports on error writer", func(t *testing.T) {
		var out, errOut bytes.Buffer

		require.NoError(t, WriteWith(&out, &errOut, map[string]any{"fn": func() {}}))
		assert.Empty(t, out.String())

		var got Error
		require.NoError(t, json.Unmarshal(errOut.Bytes(), &got))
		assert.Equal(t, "error marshaling in iojson.WriteWith", got.Message)
		assert.Contains(t, got.Data, "json_error")
	})
}
