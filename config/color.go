package config

import (
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/samber/lo"
)

// Color modes accepted by the "color" setting.
const (
	// ColorModeAuto applies color only in debug mode, and only when stdout
	// is a terminal whose TERM is not known to lack color support.
	ColorModeAuto = "auto"

	// ColorModeAlways applies color unconditionally.
	ColorModeAlways = "always"

	// ColorModeNever disables color unconditionally.
	ColorModeNever = "never"
)

// noColorTERMs defines terminals that do not support ANSI color output.
// Keep this list small and conservative.
//
//nolint:gochecknoglobals // package-level lookup table
var noColorTERMs = lo.Keyify([]string{
	"dumb",
	"vt100",
	"cygwin",
	"xterm-mono",
})

// TerminalSupportsColor returns true if the given TERM value is not in the
// known-no-color blacklist. An empty term is treated as supporting colors.
func TerminalSupportsColor(termName string) bool {
	if termName == "" {
		return true
	}
	_, blacklisted := noColorTERMs[termName]
	return !blacklisted
}

// ColorEnabled resolves the configured color mode into a concrete decision.
// Unrecognized modes behave like "auto".
func (c *Config) ColorEnabled() bool {
	switch c.ColorMode {
	case ColorModeAlways:
		return true
	case ColorModeNever:
		return false
	}

	// auto: color co-varies with debug mode, on a capable terminal.
	if !c.Debug {
		return false
	}
	if !term.IsTerminal(os.Stdout.Fd()) {
		return false
	}
	return TerminalSupportsColor(os.Getenv("TERM"))
}
