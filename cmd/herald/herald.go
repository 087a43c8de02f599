// Package herald wires the herald CLI: a root command that logs a single
// message at a chosen level, plus subcommands for demos, config management
// and re-emitting existing log files.
package herald

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/yaklabco/herald/cmd/herald/version"
	"github.com/yaklabco/herald/config"
	internallog "github.com/yaklabco/herald/internal/log"
	"github.com/yaklabco/herald/pkg/herald"
	"github.com/yaklabco/herald/pkg/prettylog"
	"github.com/yaklabco/herald/pkg/update"
)

const (
	shortDescription = "Herald prints leveled, colorized console messages. " +
		"See https://github.com/yaklabco/herald"
)

// rootFlags holds flag values shared across the command tree. Defaults come
// from the resolved configuration, so flags only need to be set to override.
type rootFlags struct {
	level       string
	debug       bool
	colorMode   string
	wrap        int
	scope       string
	forceStderr bool
	verbose     bool
	checkUpdate bool
}

func NewRootCmd(ctx context.Context) *cobra.Command {
	cfg := config.Global()
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "herald [flags] [message...]",
		Short: shortDescription,
		Example: `	# Log a message at the default level (INFO)
	herald "listening on 127.0.0.1:8080"

	# Log at other levels
	herald -L error "x not found:" config.json
	herald -L success "done. count:" 42 items

	# DEBUG output requires debug mode
	herald -d -L debug "cache warm took 112ms"

	# Re-emit an existing log file, following appends
	herald tail --follow app.log

	# Manage configuration
	herald config show`,
		Version: version.OverallVersionStringColorized(ctx),
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger := prettylog.SetupPrettyLogger(cmd.ErrOrStderr())
			if flags.verbose {
				logger.SetLevel(log.DebugLevel)
				internallog.SimpleConsoleLogger.Printf("herald %s", version.EffectiveVersion(cmd.Context()))
			} else {
				logger.SetLevel(log.WarnLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.checkUpdate {
				return runCheckUpdate(cmd, cfg)
			}

			if len(args) == 0 {
				return cmd.Help()
			}

			level, err := herald.ParseLevel(flags.level)
			if err != nil {
				return err
			}

			w, err := newWriter(cmd, cfg, flags)
			if err != nil {
				return err
			}

			extra := lo.Map(args[1:], func(arg string, _ int) any { return arg })
			w.Log(level, args[0], extra...)

			update.CheckAndNotify(cmd.Context(), updateParams(cmd, cfg))

			return nil
		},
	}

	rootCmd.Flags().StringVarP(&flags.level, "level", "L", "info", "level to log the message at (error, warning, success, info, debug)")

	rootCmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", cfg.Debug, "turn on debug mode (enables DEBUG output)")
	rootCmd.PersistentFlags().StringVar(&flags.colorMode, "color", cfg.ColorMode, "when to apply ANSI color: auto, always or never")
	rootCmd.PersistentFlags().IntVar(&flags.wrap, "wrap", cfg.WrapWidth, "word-wrap output at this column (0 disables)")
	rootCmd.PersistentFlags().StringVar(&flags.scope, "scope", "", "tag output with a scope name (e.g. db:conn)")
	rootCmd.PersistentFlags().BoolVar(&flags.forceStderr, "stderr", cfg.ForceStderr, "route every level to stderr instead of splitting streams")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "show internal diagnostics on stderr")

	// Flag that is actually a command ("pseudo-flag").
	rootCmd.PersistentFlags().BoolVar(&flags.checkUpdate, "check-update", false, "check GitHub for a newer herald release")

	rootCmd.AddCommand(
		newDemoCmd(cfg, flags),
		newTailCmd(cfg, flags),
		newConfigCmd(cfg, flags),
	)

	return rootCmd
}

// newWriter builds the console writer for a command invocation: resolved
// configuration first, flag overrides on top, streams from the command so
// tests can capture output.
func newWriter(cmd *cobra.Command, cfg *config.Config, flags *rootFlags) (*herald.Writer, error) {
	resolved := *cfg
	resolved.Debug = flags.debug
	resolved.ColorMode = strings.ToLower(flags.colorMode)
	resolved.WrapWidth = flags.wrap
	resolved.ForceStderr = flags.forceStderr

	switch resolved.ColorMode {
	case config.ColorModeAuto, config.ColorModeAlways, config.ColorModeNever:
	default:
		return nil, fmt.Errorf("invalid --color value %q (want auto, always or never)", resolved.ColorMode)
	}

	opts := resolved.WriterOptions()
	opts.Out = cmd.OutOrStdout()
	opts.Err = cmd.ErrOrStderr()
	if resolved.ForceStderr {
		opts.Out = cmd.ErrOrStderr()
	}

	w := herald.New(opts)
	if flags.scope != "" {
		w = w.Scope(flags.scope)
	}
	return w, nil
}

// updateParams assembles the shared parameters for update checks.
func updateParams(cmd *cobra.Command, cfg *config.Config) update.Params {
	return update.Params{
		CurrentVersion: version.EffectiveVersion(cmd.Context()),
		CacheDir:       config.ResolveXDGPaths().CacheDir(),
		Output:         cmd.OutOrStdout(),
		Config:         cfg.UpdateCheck,
	}
}

func runCheckUpdate(cmd *cobra.Command, cfg *config.Config) error {
	return update.ExplicitCheck(cmd.Context(), updateParams(cmd, cfg))
}

// ExecuteWithFang runs the root Cobra command with Fang-specific options.
// It accepts a context and a root Cobra command as input parameters.
// Returns an error if the command execution fails.
func ExecuteWithFang(ctx context.Context, rootCmd *cobra.Command) error {
	//nolint:wrapcheck // top-level error from cobra, wrapping not needed
	return fang.Execute(
		ctx, rootCmd, fang.WithVersion(rootCmd.Version), fang.WithoutManpage())
}
