// Package herald is a leveled console writer. It prefixes each message with
// a bracketed, optionally ANSI-colorized level tag (ERROR, WARNING, SUCCESS,
// INFO, DEBUG), gates DEBUG output behind a debug-mode flag, and dispatches
// lines to standard output or standard error.
//
// The package-level functions write through a process-wide default Writer,
// configured once from the environment on first use:
//
//	herald.Info("listening on", addr)
//	herald.Error("config not found:", path)
//
// Explicit construction is available for injection and testing:
//
//	w := herald.New(herald.Derive(debugMode))
//	w.Success("done. count:", n, "items")
package herald

import (
	"sync"

	"github.com/yaklabco/herald/pkg/env"
)

// Environment variables consulted by OptionsFromEnv.
// HERALD_* names are primary; bare DEBUG and NO_COLOR are honored for
// compatibility with the wider ecosystem.
const (
	// DebugEnv turns on debug mode. Truthy values ("1", "true", "yes")
	// enable it outright; any other non-empty value is treated as a
	// scope pattern list (e.g. "db:*,net") that both enables debug mode
	// and filters scoped DEBUG output.
	DebugEnv = "HERALD_DEBUG"

	// LegacyDebugEnv is consulted when HERALD_DEBUG is unset.
	LegacyDebugEnv = "DEBUG"

	// EnableColorEnv overrides the color decision independently of debug
	// mode. Unset means color follows the debug flag.
	EnableColorEnv = "HERALD_ENABLE_COLOR"

	// NoColorEnv disables color when set and non-empty, per the
	// no-color.org convention. It wins over everything else.
	NoColorEnv = "NO_COLOR"
)

// The default writer is loaded lazily and then never mutated.
//
//nolint:gochecknoglobals // singleton pattern requires package-level state
var (
	defaultWriter       *Writer
	defaultWriterLoaded bool
	defaultWriterMu     sync.RWMutex
)

// Default returns the process-wide default Writer, building it from the
// environment on first access.
func Default() *Writer {
	defaultWriterMu.RLock()
	if defaultWriterLoaded {
		w := defaultWriter
		defaultWriterMu.RUnlock()
		return w
	}
	defaultWriterMu.RUnlock()

	defaultWriterMu.Lock()
	defer defaultWriterMu.Unlock()

	// Double-check after acquiring write lock
	if defaultWriterLoaded {
		return defaultWriter
	}

	defaultWriter = New(OptionsFromEnv())
	defaultWriterLoaded = true
	return defaultWriter
}

// SetDefault replaces the process-wide default Writer.
func SetDefault(w *Writer) {
	defaultWriterMu.Lock()
	defer defaultWriterMu.Unlock()
	defaultWriter = w
	defaultWriterLoaded = true
}

// ResetDefault causes the default Writer to be rebuilt from the environment
// on next access. This is primarily useful for testing.
func ResetDefault() {
	defaultWriterMu.Lock()
	defer defaultWriterMu.Unlock()
	defaultWriter = nil
	defaultWriterLoaded = false
}

// OptionsFromEnv derives writer Options from the process environment:
// debug mode from HERALD_DEBUG (falling back to DEBUG), with color
// following the debug flag unless HERALD_ENABLE_COLOR or NO_COLOR says
// otherwise.
func OptionsFromEnv() Options {
	var opts Options

	if raw, ok := env.LookupFirst(DebugEnv, LegacyDebugEnv); ok {
		on, err := env.ParseBool(raw)
		switch {
		case err == nil:
			opts.Debug = on
		default:
			// Not a boolean: a scope pattern list implies debug mode.
			opts.Debug = true
			opts.DebugFilter = raw
		}
	}

	// Color co-varies with debug mode unless explicitly overridden.
	opts.Color = env.FailsafeParseBoolEnv(EnableColorEnv, opts.Debug)
	if _, noColor := env.LookupFirst(NoColorEnv); noColor {
		opts.Color = false
	}

	return opts
}

// Log writes one line at the given level through the default Writer.
func Log(level Level, message string, extra ...any) {
	Default().Log(level, message, extra...)
}

// Error logs a message at the ERROR level through the default Writer.
func Error(message string, extra ...any) { Default().Error(message, extra...) }

// Warning logs a message at the WARNING level through the default Writer.
func Warning(message string, extra ...any) { Default().Warning(message, extra...) }

// Success logs a message at the SUCCESS level through the default Writer.
func Success(message string, extra ...any) { Default().Success(message, extra...) }

// Info logs a message at the INFO level through the default Writer.
func Info(message string, extra ...any) { Default().Info(message, extra...) }

// Debug logs a message at the DEBUG level through the default Writer.
func Debug(message string, extra ...any) { Default().Debug(message, extra...) }
