package herald

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/herald/config"
	"github.com/yaklabco/herald/pkg/ui"
)

func newConfigCmd(cfg *config.Config, flags *rootFlags) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage herald configuration",
	}

	configCmd.AddCommand(
		newConfigShowCmd(cfg),
		newConfigInitCmd(cfg, flags),
	)

	return configCmd
}

// newConfigShowCmd prints the resolved configuration after all layers
// (defaults, user file, project file, environment) have been applied.
func newConfigShowCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "show the resolved configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			titleStyle, _ := ui.GetBlockStyles()

			fmt.Fprintln(out, titleStyle.Render("Herald Configuration"))

			source := cfg.ConfigFile()
			if source == "" {
				source = "(defaults)"
			}
			fmt.Fprintf(out, "  config file:   %s\n", source)
			fmt.Fprintf(out, "  debug:         %t\n", cfg.Debug)
			fmt.Fprintf(out, "  color:         %s\n", cfg.ColorMode)
			fmt.Fprintf(out, "  force_stderr:  %t\n", cfg.ForceStderr)
			fmt.Fprintf(out, "  wrap_width:    %d\n", cfg.WrapWidth)
			fmt.Fprintf(out, "  debug_filter:  %q\n", cfg.DebugFilter)
			fmt.Fprintf(out, "  update_check:  enabled=%t interval=%s\n",
				cfg.UpdateCheck.Enabled, cfg.UpdateCheck.Interval)
		},
	}
}

// newConfigInitCmd writes a commented default config file to the user's
// XDG config directory.
func newConfigInitCmd(cfg *config.Config, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "write a default user configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := newWriter(cmd, cfg, flags)
			if err != nil {
				return err
			}

			path, err := config.WriteDefaultConfig()
			if err != nil {
				w.Error("could not write config file:", err)
				return err
			}

			w.Success("wrote config file:", path)
			return nil
		},
	}
}
