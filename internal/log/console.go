package log

import (
	"log"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/yaklabco/herald/pkg/ui"
)

// SimpleConsoleLogger is an unstructured logger designed for emitting simple
// diagnostic messages from the CLI itself in `-v`/`--verbose` mode. User
// output never goes through it; that is the console writer's job.
//
//nolint:gochecknoglobals // This is unchanged in the course of the process lifecycle.
var SimpleConsoleLogger = log.New(os.Stderr, lipgloss.NewStyle().Foreground(ui.GetFangScheme().Flag).Render("[HERALD] "), 0)
