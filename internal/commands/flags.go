package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/formcheck/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// FormConfig returns the loaded configuration, falling back to defaults when
// the Before hook has not run (tests).
func (f *Flags) FormConfig() *config.Config {
	if f.Config == nil {
		cfg := config.DefaultConfig()
		f.Config = &cfg
	}
	return f.Config
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/formcheck/formcheck.log
// On Linux: $XDG_STATE_HOME/formcheck/formcheck.log (defaults to ~/.local/state/formcheck/formcheck.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "formcheck", "formcheck.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "formcheck", "formcheck.log")
	}

	return filepath.Join(home, ".local", "state", "formcheck", "formcheck.log")
}

// writeFile creates path (and its directory) and hands the file to fn.
func writeFile(path string, fn func(f *os.File) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
