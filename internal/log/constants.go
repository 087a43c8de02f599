package log

// Attribute keys used with slog across the CLI.
const (
	Count   = "count"
	Error   = "error"
	Path    = "path"
	Pattern = "pattern"
)
