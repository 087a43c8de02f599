package herald

import (
	"strings"

	"github.com/gobwas/glob"
	"github.com/samber/lo"
)

// debugFilter is a compiled set of scope patterns. An empty filter matches
// every scope.
type debugFilter []glob.Glob

// compileDebugFilter parses a comma-separated pattern list ("db:*,net") into
// a filter. Invalid patterns are skipped rather than failing the writer.
func compileDebugFilter(spec string) debugFilter {
	parts := strings.Split(spec, ",")

	return lo.FilterMap(parts, func(p string, _ int) (glob.Glob, bool) {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, false
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, false
		}
		return g, true
	})
}

func (f debugFilter) matches(scope string) bool {
	if len(f) == 0 {
		return true
	}
	return lo.SomeBy(f, func(g glob.Glob) bool {
		return g.Match(scope)
	})
}

// Scope returns a copy of the writer whose lines carry the given scope name
// after the level tag, and whose DEBUG output is additionally gated on the
// writer's debug filter. The other levels are unaffected.
func (w *Writer) Scope(name string) *Writer {
	clone := *w
	clone.scope = name
	clone.scopeOn = w.filter.matches(name)
	return &clone
}
