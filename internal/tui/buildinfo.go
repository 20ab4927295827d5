package tui

// BuildInfo holds build-time metadata for display in the TUI footer.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

func (b BuildInfo) String() string {
	if b.Version == "" {
		return "dev"
	}
	if b.Commit == "" {
		return b.Version
	}
	return b.Version + " (" + b.Commit + ")"
}
