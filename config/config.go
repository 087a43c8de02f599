package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	"github.com/yaklabco/herald/pkg/env"
	"github.com/yaklabco/herald/pkg/herald"
)

// Config holds all herald configuration values.
type Config struct {
	// Debug enables DEBUG-level output.
	Debug bool `mapstructure:"debug"`

	// ColorMode decides when ANSI styling is applied: "auto", "always" or
	// "never". In auto mode color co-varies with Debug on a capable terminal.
	ColorMode string `mapstructure:"color"`

	// ForceStderr routes every level to stderr instead of splitting streams.
	ForceStderr bool `mapstructure:"force_stderr"`

	// WrapWidth word-wraps output lines at the given column. 0 disables.
	WrapWidth int `mapstructure:"wrap_width"`

	// DebugFilter is a comma-separated glob list gating scoped DEBUG output.
	DebugFilter string `mapstructure:"debug_filter"`

	// UpdateCheck configures the CLI's background update check.
	UpdateCheck UpdateCheckConfig `mapstructure:"update_check"`

	// configFile is the path to the config file that was loaded (if any).
	configFile string
}

// UpdateCheckConfig configures the background update check.
type UpdateCheckConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
}

// ConfigFile returns the path to the configuration file that was loaded,
// or an empty string if no file was loaded.
func (c *Config) ConfigFile() string {
	return c.configFile
}

// WriterOptions translates the configuration into options for the console
// writer, resolving the color mode into a concrete decision.
func (c *Config) WriterOptions() herald.Options {
	opts := herald.Options{
		Debug:       c.Debug,
		Color:       c.ColorEnabled(),
		WrapWidth:   c.WrapWidth,
		DebugFilter: c.DebugFilter,
	}
	if c.ForceStderr {
		opts.Out = os.Stderr
	}
	return opts
}

// globalConfig holds the singleton global configuration.
// These globals are intentional for the singleton pattern.
//
//nolint:gochecknoglobals // singleton pattern requires package-level state
var (
	globalConfig       *Config
	globalConfigLoaded bool
	globalConfigMu     sync.RWMutex
)

// Global returns the global configuration singleton.
// It loads the configuration on first access.
func Global() *Config {
	globalConfigMu.RLock()
	if globalConfigLoaded {
		cfg := globalConfig
		globalConfigMu.RUnlock()
		return cfg
	}
	globalConfigMu.RUnlock()

	// Need to load config
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	// Double-check after acquiring write lock
	if globalConfigLoaded {
		return globalConfig
	}

	cfg, err := Load(nil)
	if err != nil {
		// Fall back to defaults on error
		cfg = DefaultConfig()
	}
	globalConfig = cfg
	globalConfigLoaded = true
	return globalConfig
}

// SetGlobal sets the global configuration.
// This is primarily useful for testing.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
	globalConfigLoaded = true
}

// ResetGlobal resets the global configuration to be reloaded on next access.
// This is primarily useful for testing.
func ResetGlobal() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigLoaded = false
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectDir is the directory to search for project-level config.
	// If empty, the current working directory is used.
	ProjectDir string

	// Stderr is where warnings are written.
	// If nil, os.Stderr is used.
	Stderr io.Writer

	// SkipProjectConfig skips loading project-level configuration.
	SkipProjectConfig bool

	// SkipUserConfig skips loading user-level configuration.
	SkipUserConfig bool

	// SkipEnv skips reading environment variables.
	SkipEnv bool
}

// Load reads configuration from all sources and returns a Config struct.
// Configuration is loaded in the following order (later sources override earlier):
//  1. Defaults
//  2. User config file (~/.config/herald/config.yaml)
//  3. Project config file (./herald.yaml)
//  4. Environment variables (HERALD_*, plus DEBUG and NO_COLOR)
//
// If opts is nil, default options are used.
func Load(opts *LoadOptions) (*Config, error) {
	if opts == nil {
		opts = &LoadOptions{}
	}

	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	viperInstance := viper.New()

	// Set defaults
	setDefaults(viperInstance)
	viperInstance.SetConfigType("yaml")

	var configFileUsed string

	// Load user config from XDG path (~/.config/herald/config.yaml)
	if !opts.SkipUserConfig {
		paths := ResolveXDGPaths()
		viperInstance.SetConfigName(ConfigFileName)
		viperInstance.AddConfigPath(paths.ConfigDir())

		if err := viperInstance.ReadInConfig(); err != nil {
			var configFileNotFoundError viper.ConfigFileNotFoundError
			if !errors.As(err, &configFileNotFoundError) {
				return nil, fmt.Errorf("failed to read user config file: %w", err)
			}
		} else {
			configFileUsed = viperInstance.ConfigFileUsed()
		}
	}

	// Load project config (./herald.yaml) - merges with/overrides user config
	if !opts.SkipProjectConfig {
		projectDir := opts.ProjectDir
		if projectDir == "" {
			var err error
			projectDir, err = os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		projectConfigPath := filepath.Join(projectDir, ProjectConfigFileName+".yaml")
		if _, err := os.Stat(projectConfigPath); err == nil {
			viperInstance.SetConfigFile(projectConfigPath)
			if err := viperInstance.MergeInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read project config file: %w", err)
			}
			configFileUsed = projectConfigPath
		}
	}

	// Unmarshal into struct
	var cfg Config
	if err := viperInstance.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Apply environment variable overrides (env vars take precedence over config files)
	if !opts.SkipEnv {
		applyEnvironmentOverrides(&cfg)
	}

	// Color modes compare as exact strings downstream.
	cfg.ColorMode = strings.ToLower(cfg.ColorMode)

	// Record which config file was used (project config takes precedence for display)
	cfg.configFile = configFileUsed

	// Validate configuration
	result := cfg.Validate()
	if result.HasWarnings() {
		result.WriteWarnings(opts.Stderr)
	}
	if result.HasErrors() {
		return nil, errors.New(result.ErrorMessage())
	}

	return &cfg, nil
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
// Environment variables take precedence over config file values.
func applyEnvironmentOverrides(cfg *Config) {
	if raw, ok := env.LookupFirst(herald.DebugEnv, herald.LegacyDebugEnv); ok {
		on, err := env.ParseBool(raw)
		if err == nil {
			cfg.Debug = on
		} else {
			// Not a boolean: a scope pattern list implies debug mode.
			cfg.Debug = true
			cfg.DebugFilter = raw
		}
	}
	if v, ok := env.LookupFirst("HERALD_COLOR", herald.EnableColorEnv); ok {
		cfg.ColorMode = normalizeColorMode(v)
	}
	if _, ok := env.LookupFirst(herald.NoColorEnv); ok {
		cfg.ColorMode = ColorModeNever
	}
	if v := os.Getenv("HERALD_FORCE_STDERR"); v != "" {
		cfg.ForceStderr = env.FailsafeParseBoolEnv("HERALD_FORCE_STDERR", cfg.ForceStderr)
	}
	if v := os.Getenv("HERALD_WRAP_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.WrapWidth = n
		}
	}
	if v := os.Getenv("HERALD_DEBUG_FILTER"); v != "" {
		cfg.DebugFilter = v
	}
}

// normalizeColorMode maps boolean-ish values onto color modes so that
// HERALD_COLOR=1 and HERALD_COLOR=always both work.
func normalizeColorMode(v string) string {
	if on, err := env.ParseBool(v); err == nil {
		if on {
			return ColorModeAlways
		}
		return ColorModeNever
	}
	return strings.ToLower(v)
}

// DefaultConfig returns a Config with all default values.
func DefaultConfig() *Config {
	return &Config{
		Debug:       DefaultDebug,
		ColorMode:   DefaultColorMode,
		ForceStderr: DefaultForceStderr,
		WrapWidth:   DefaultWrapWidth,
		UpdateCheck: UpdateCheckConfig{
			Enabled:  DefaultUpdateCheckEnabled,
			Interval: DefaultUpdateCheckInterval,
		},
	}
}

// WriteDefaultConfig writes a default configuration file to the user's config directory.
func WriteDefaultConfig() (string, error) {
	paths := ResolveXDGPaths()
	configDir := paths.ConfigDir()

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := paths.ConfigFilePath()

	// Check if file already exists
	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists: %s", configPath)
	}

	content := defaultConfigYAML()
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}

// defaultConfigYAML returns the default configuration as YAML.
func defaultConfigYAML() string {
	return `# Herald Configuration
# See https://github.com/yaklabco/herald for documentation

# Enable DEBUG-level output.
debug: false

# When to apply ANSI color: auto, always, or never.
# In auto mode color follows the debug flag on a capable terminal.
color: auto

# Route every level to stderr instead of splitting streams.
force_stderr: false

# Word-wrap output lines at this column. 0 disables wrapping.
wrap_width: 0

# Comma-separated glob patterns gating scoped DEBUG output, e.g. "db:*,net".
debug_filter: ""

update_check:
  # Check GitHub for newer herald releases after CLI runs.
  enabled: true
  # Minimum time between checks.
  interval: 24h
`
}
