package config

import (
	"time"

	"github.com/spf13/viper"
)

// Default configuration values.
const (
	// DefaultDebug is the default debug-mode setting.
	DefaultDebug = false

	// DefaultColorMode is the default color decision ("auto", "always", "never").
	DefaultColorMode = ColorModeAuto

	// DefaultForceStderr is the default for routing every level to stderr.
	DefaultForceStderr = false

	// DefaultWrapWidth disables message wrapping.
	DefaultWrapWidth = 0

	// DefaultUpdateCheckEnabled controls whether update checks are enabled by default.
	DefaultUpdateCheckEnabled = true
)

// DefaultUpdateCheckInterval is the default duration between update checks.
var DefaultUpdateCheckInterval = 24 * time.Hour //nolint:gochecknoglobals // default configuration value

// setDefaults configures default values in the viper instance.
func setDefaults(viperInstance *viper.Viper) {
	viperInstance.SetDefault("debug", DefaultDebug)
	viperInstance.SetDefault("color", DefaultColorMode)
	viperInstance.SetDefault("force_stderr", DefaultForceStderr)
	viperInstance.SetDefault("wrap_width", DefaultWrapWidth)
	viperInstance.SetDefault("debug_filter", "")
	viperInstance.SetDefault("update_check.enabled", DefaultUpdateCheckEnabled)
	viperInstance.SetDefault("update_check.interval", DefaultUpdateCheckInterval)
}
