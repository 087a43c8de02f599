package herald

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/herald/config"
	"github.com/yaklabco/herald/pkg/ui"
)

// newDemoCmd prints one sample line per level, which is the quickest way to
// eyeball the color and stream routing on a given terminal.
func newDemoCmd(cfg *config.Config, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "print a sample line at every level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := newWriter(cmd, cfg, flags)
			if err != nil {
				return err
			}

			titleStyle, _ := ui.GetBlockStyles()
			fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render("Herald Demo"))

			w.Error("something went wrong:", "sample failure")
			w.Warning("disk space is low:", "14%", "remaining")
			w.Success("build finished. count:", 3, "artifacts")
			w.Info("listening on", "127.0.0.1:8080")
			w.Debug("cache warm took", "112ms")

			return nil
		},
	}
}
