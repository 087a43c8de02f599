package herald

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/herald/config"
	"github.com/yaklabco/herald/pkg/herald"
	"github.com/yaklabco/herald/pkg/tail"
)

// newTailCmd re-emits an existing log file through the console writer,
// re-colorizing tagged lines and routing them to the right stream.
func newTailCmd(cfg *config.Config, flags *rootFlags) *cobra.Command {
	var (
		follow       bool
		match        string
		defaultLevel string
	)

	tailCmd := &cobra.Command{
		Use:   "tail <file>",
		Short: "re-emit a log file through the console writer",
		Example: `	# Re-emit a finished log
	herald tail build.log

	# Stream appends as they happen
	herald tail --follow app.log

	# Only lines whose scope matches the pattern
	herald tail --match "db:*" app.log`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fallback, err := herald.ParseLevel(defaultLevel)
			if err != nil {
				return err
			}

			w, err := newWriter(cmd, cfg, flags)
			if err != nil {
				return err
			}

			return tail.File(cmd.Context(), args[0], tail.Options{
				Writer:       w,
				Follow:       follow,
				Match:        match,
				DefaultLevel: &fallback,
			})
		},
	}

	tailCmd.Flags().BoolVarP(&follow, "follow", "f", false, "keep streaming lines appended to the file")
	tailCmd.Flags().StringVar(&match, "match", "", "glob pattern on each line's scope token")
	tailCmd.Flags().StringVar(&defaultLevel, "level", "info", "level for lines without a recognizable tag")

	return tailCmd
}
