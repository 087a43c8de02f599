// Package tail re-emits existing log files through a herald writer. Lines
// carrying a plain bracketed level tag ("[ERROR] ...") are parsed and
// re-dispatched at that level, which re-colorizes them and routes them to
// the right stream; untagged lines are emitted at a configurable default
// level. With Follow, appends are streamed via fsnotify.
package tail

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gobwas/glob"

	logconst "github.com/yaklabco/herald/internal/log"
	"github.com/yaklabco/herald/pkg/herald"
)

// Options configures a tail run.
type Options struct {
	// Writer receives the re-emitted lines. Defaults to herald.Default().
	Writer *herald.Writer

	// Follow keeps the file open and streams appended lines until the
	// context is canceled.
	Follow bool

	// Match is a glob pattern applied to each line's scope token (the first
	// word after the level tag). Empty matches every line.
	Match string

	// DefaultLevel is used for lines without a recognizable level tag.
	// Nil means INFO.
	DefaultLevel *herald.Level
}

// fallbackLevel resolves the level for untagged lines.
func (o Options) fallbackLevel() herald.Level {
	if o.DefaultLevel == nil {
		return herald.LevelInfo
	}
	return *o.DefaultLevel
}

// Stream reads r line by line and re-emits each line through the writer.
// DEBUG-tagged lines are dropped by the writer itself when debug mode is
// off, exactly as if the producing program had logged them directly.
func Stream(r io.Reader, opts Options) error {
	w := opts.Writer
	if w == nil {
		w = herald.Default()
	}

	var matcher glob.Glob
	if opts.Match != "" {
		g, err := glob.Compile(opts.Match)
		if err != nil {
			return fmt.Errorf("bad match pattern %q: %w", opts.Match, err)
		}
		matcher = g
		slog.Debug("applying scope filter", logconst.Pattern, opts.Match)
	}

	fallback := opts.fallbackLevel()

	var count int
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		emitLine(w, scanner.Text(), matcher, fallback)
		count++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	slog.Debug("stream drained", logconst.Count, count)
	return nil
}

// File re-emits the file at path. With opts.Follow it then streams appended
// lines until ctx is canceled or the file goes away; in that mode a trailing
// line without a newline is held back until it completes.
func File(ctx context.Context, path string, opts Options) error {
	if !opts.Follow {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()

		return Stream(f, opts)
	}

	offset, err := emitAppended(path, 0, opts)
	if err != nil {
		return err
	}

	slog.Debug("following file", logconst.Path, path)
	return follow(ctx, path, offset, opts)
}

// emitLine parses an optional leading level tag and dispatches the line.
func emitLine(w *herald.Writer, line string, matcher glob.Glob, fallback herald.Level) {
	level, rest, tagged := splitLevelTag(line)
	if !tagged {
		level, rest = fallback, line
	}

	if matcher != nil && !matcher.Match(scopeToken(rest)) {
		return
	}

	w.Log(level, rest)
}

// splitLevelTag splits "[ERROR] message" into (LevelError, "message", true).
// Lines without a leading plain bracketed tag return ok=false.
func splitLevelTag(line string) (herald.Level, string, bool) {
	if !strings.HasPrefix(line, "[") {
		return 0, "", false
	}
	end := strings.IndexByte(line, ']')
	if end < 0 {
		return 0, "", false
	}

	level, err := herald.ParseLevel(line[1:end])
	if err != nil {
		return 0, "", false
	}
	return level, strings.TrimPrefix(line[end+1:], " "), true
}

// scopeToken returns the first whitespace-delimited word of the message,
// which is the scope name for lines produced by scoped writers.
func scopeToken(message string) string {
	if i := strings.IndexByte(message, ' '); i >= 0 {
		return message[:i]
	}
	return message
}
