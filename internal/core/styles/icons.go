package styles

// Status icons used by form fields and the form banner.
var (
	IconValid   = "✓"
	IconInvalid = "✗"
	IconNotice  = "!"
	IconCursor  = "›"
)
