package herald

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Shared ANSI style codes applied around the level color.
const (
	ansiBold   = "\033[1m"
	ansiItalic = "\033[3m"
	ansiReset  = "\033[0m"
)

// Options configures a Writer. The zero value is a plain writer: no debug
// output, no color, stdout/stderr streams.
type Options struct {
	// Out receives every non-error line. Defaults to os.Stdout.
	Out io.Writer

	// Err receives error-level lines. Defaults to os.Stderr.
	Err io.Writer

	// Debug enables the DEBUG level. The other four levels are always on.
	Debug bool

	// Color applies ANSI styling to the bracketed level prefix.
	// It is independent of Debug; Derive ties the two together.
	Color bool

	// WrapWidth word-wraps output lines at the given column. 0 disables.
	WrapWidth int

	// DebugFilter is a comma-separated list of glob patterns (e.g. "db:*,net")
	// that gates DEBUG output from scoped writers. Empty matches every scope.
	DebugFilter string
}

// Derive returns Options the way a single debug-mode flag configures them:
// color output is applied exactly when debug mode is on.
func Derive(debug bool) Options {
	return Options{Debug: debug, Color: debug}
}

// Writer prefixes messages with a bracketed, optionally colorized level tag
// and dispatches them to the configured output streams. It holds no mutable
// state after construction, so a single Writer may be shared across
// goroutines as long as the underlying streams tolerate concurrent appends;
// each call performs exactly one Write.
type Writer struct {
	out   io.Writer
	err   io.Writer
	color bool
	wrap  int

	// enabled has exactly one entry per level.
	enabled [len(_Level_index) - 1]bool

	filter  debugFilter
	scope   string
	scopeOn bool
}

// New builds a Writer from opts. ERROR, WARNING, SUCCESS and INFO are always
// enabled; DEBUG follows opts.Debug.
func New(opts Options) *Writer {
	w := &Writer{
		out:    opts.Out,
		err:    opts.Err,
		color:  opts.Color,
		wrap:   opts.WrapWidth,
		filter: compileDebugFilter(opts.DebugFilter),
		// An unscoped writer is never filtered.
		scopeOn: true,
	}
	if w.out == nil {
		w.out = os.Stdout
	}
	if w.err == nil {
		w.err = os.Stderr
	}

	for _, l := range Levels {
		w.enabled[l] = l != LevelDebug || opts.Debug
	}

	return w
}

// Enabled reports whether lines at the given level produce output.
func (w *Writer) Enabled(level Level) bool {
	if level < 0 || int(level) >= len(w.enabled) {
		return false
	}
	if level == LevelDebug {
		return w.enabled[level] && w.scopeOn
	}
	return w.enabled[level]
}

// Log writes one line at the given level: the bracketed prefix, the message,
// then any extra operands space-joined in their fmt representation. Disabled
// levels are a no-op. ERROR goes to the error stream, everything else to the
// output stream.
func (w *Writer) Log(level Level, message string, extra ...any) {
	if !w.Enabled(level) {
		return
	}

	operands := make([]any, 0, len(extra)+3)
	operands = append(operands, w.prefix(level))
	if w.scope != "" {
		operands = append(operands, w.scope)
	}
	operands = append(operands, message)
	operands = append(operands, extra...)

	line := fmt.Sprintln(operands...)
	if w.wrap > 0 {
		line = wordwrap.String(strings.TrimSuffix(line, "\n"), w.wrap) + "\n"
	}

	// One Write per line; stream faults are the runtime's problem, not ours.
	if level == LevelError {
		_, _ = io.WriteString(w.err, line)
	} else {
		_, _ = io.WriteString(w.out, line)
	}
}

// Error logs a message at the ERROR level, to the error stream.
func (w *Writer) Error(message string, extra ...any) { w.Log(LevelError, message, extra...) }

// Warning logs a message at the WARNING level.
func (w *Writer) Warning(message string, extra ...any) { w.Log(LevelWarning, message, extra...) }

// Success logs a message at the SUCCESS level.
func (w *Writer) Success(message string, extra ...any) { w.Log(LevelSuccess, message, extra...) }

// Info logs a message at the INFO level.
func (w *Writer) Info(message string, extra ...any) { w.Log(LevelInfo, message, extra...) }

// Debug logs a message at the DEBUG level. No-op unless debug mode is on
// (and, for scoped writers, the scope passes the debug filter).
func (w *Writer) Debug(message string, extra ...any) { w.Log(LevelDebug, message, extra...) }

// prefix renders the bracketed level tag. With color on, the whole tag is
// bold in the level color and the bare name is italic.
func (w *Writer) prefix(level Level) string {
	tag := level.Tag()
	if !w.color {
		return "[" + tag + "]"
	}
	style := ansiBold + level.Color()
	return style + "[" + ansiItalic + tag + ansiReset + style + "]" + ansiReset
}
