package herald

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Level is a logging severity/category.
type Level int

//go:generate go tool golang.org/x/tools/cmd/stringer -type=Level -trimprefix=Level
const (
	LevelError Level = iota
	LevelWarning
	LevelSuccess
	LevelInfo
	LevelDebug
)

// Levels lists every level in display order.
//
//nolint:gochecknoglobals // package-level lookup table
var Levels = []Level{LevelError, LevelWarning, LevelSuccess, LevelInfo, LevelDebug}

// levelColor maps each level to its ANSI foreground color.
//
//nolint:gochecknoglobals // intended as a constant table (and private)
var levelColor = map[Level]string{
	LevelError:   "\033[31m", // Red
	LevelWarning: "\033[33m", // Yellow
	LevelSuccess: "\033[32m", // Green
	LevelInfo:    "\033[34m", // Blue
	LevelDebug:   "\033[90m", // Gray
}

//nolint:gochecknoglobals // derived lookup table
var levelByLowerName = lo.SliceToMap(Levels, func(l Level) (string, Level) {
	return strings.ToLower(l.String()), l
})

// Tag returns the uppercase display name used in bracketed prefixes,
// e.g. "ERROR" for LevelError.
func (i Level) Tag() string {
	return strings.ToUpper(i.String())
}

// Color returns the raw ANSI foreground color code for the level.
func (i Level) Color() string {
	return levelColor[i]
}

// ParseLevel converts a case-insensitive level name ("error", "WARNING", ...)
// into a Level. "warn" is accepted as an alias for Warning.
func ParseLevel(name string) (Level, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "warn" {
		return LevelWarning, nil
	}
	if l, ok := levelByLowerName[lower]; ok {
		return l, nil
	}
	return 0, fmt.Errorf("unknown level %q", name)
}
