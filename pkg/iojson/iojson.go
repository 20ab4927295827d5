// Package iojson writes indented JSON for commands with a --json output mode.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Error is the payload written to the error writer when obj cannot be encoded.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func jsonError(msg string, jsonErr error) string {
	bits, err := json.Marshal(Error{Message: msg, Data: map[string]any{"json_error": jsonErr.Error()}})
	if err != nil {
		return fmt.Sprintf(`{"message":%q}`, msg)
	}
	return string(bits)
}

// WriteWith writes obj to w as indented JSON followed by a newline. Encoding
// failures are reported as an Error object on ew.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		_, err = fmt.Fprintln(ew, jsonError("error marshaling in iojson.WriteWith", err))
		return err
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}
