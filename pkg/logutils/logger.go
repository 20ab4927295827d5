// Package logutils builds the root zerolog logger.
package logutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// New returns a new logger that writes JSON to the specified file. The file is
// truncated on open. If file is empty, logs are written to stderr so command
// output on stdout stays clean.
//
// The level parameter can be one of: debug, info, warn, error, fatal.
// Hooks are attached in order.
func New(level string, file string, hooks ...zerolog.Hook) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, closer, fmt.Errorf("parse log level: %w", err)
	}

	var writer io.Writer = os.Stderr
	if file != "" {
		logsDir := filepath.Dir(file)
		if err := os.MkdirAll(logsDir, 0o755); err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("create logs dir: %w", err)
		}

		osFile, err := os.Create(file)
		if err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("create log file: %w", err)
		}
		closer = func() { _ = osFile.Close() }
		writer = osFile
	}

	return NewWriter(writer, lvl, hooks...), closer, nil
}

// NewWriter returns a JSON logger writing to w at the given level.
func NewWriter(w io.Writer, lvl zerolog.Level, hooks ...zerolog.Hook) zerolog.Logger {
	l := zerolog.New(w).
		With().
		Timestamp().
		Logger().
		Level(lvl)

	for _, h := range hooks {
		l = l.Hook(h)
	}
	return l
}
