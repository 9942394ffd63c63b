// Package config loads CLI settings from clytia.yml, CLYTIA_* environment
// variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/simonhull/clytia/choose"
	"github.com/simonhull/clytia/input"
	"github.com/simonhull/clytia/spinner"
	"github.com/simonhull/clytia/terminal"
)

// EnvPrefix is prepended to every environment override, e.g. CLYTIA_SELECTOR_EDGE.
const EnvPrefix = "CLYTIA"

// Config holds every setting the CLI reads.
type Config struct {
	Theme    terminal.Theme `mapstructure:"theme" yaml:"theme"`
	Spinner  SpinnerConfig  `mapstructure:"spinner" yaml:"spinner"`
	Selector SelectorConfig `mapstructure:"selector" yaml:"selector"`
	Input    InputConfig    `mapstructure:"input" yaml:"input"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// SpinnerConfig selects the spinner animation and its frame interval.
type SpinnerConfig struct {
	Style    string        `mapstructure:"style" yaml:"style"`
	Interval time.Duration `mapstructure:"interval" yaml:"interval"`
}

// SelectorConfig controls cursor behaviour at the list edges and the help line.
type SelectorConfig struct {
	Edge string `mapstructure:"edge" yaml:"edge"`
	Help bool   `mapstructure:"help" yaml:"help"`
}

// InputConfig limits how many invalid answers a prompt accepts (0 means unlimited).
type InputConfig struct {
	MaxAttempts int `mapstructure:"max_attempts" yaml:"max_attempts"`
}

// LogConfig sets the log level and an optional file to append logs to.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// New returns a viper instance with defaults and environment overrides
// set up. Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	theme := terminal.DefaultTheme()
	v.SetDefault("theme.prompt", theme.Prompt)
	v.SetDefault("theme.hint", theme.Hint)
	v.SetDefault("theme.error", theme.Error)
	v.SetDefault("theme.highlight", theme.Highlight)
	v.SetDefault("theme.selected", theme.Selected)
	v.SetDefault("theme.success", theme.Success)
	v.SetDefault("theme.failure", theme.Failure)
	v.SetDefault("theme.muted", theme.Muted)
	v.SetDefault("spinner.style", "braille")
	v.SetDefault("spinner.interval", spinner.Braille.FPS)
	v.SetDefault("selector.edge", choose.Wrap.String())
	v.SetDefault("selector.help", true)
	v.SetDefault("input.max_attempts", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	// Enable environment variable overrides
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file and returns the effective configuration.
//
// With file set, that file must exist. Otherwise clytia.yml is looked up
// in the working directory and then in $HOME/.config/clytia; finding none
// is not an error.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("clytia")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "clytia"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEnv loads variables from a .env file into the environment. Variables
// that are already set win. A missing file is not an error.
func LoadEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Validate checks values that can't be expressed in the file's types.
func (c *Config) Validate() error {
	if _, err := choose.ParseEdgePolicy(c.Selector.Edge); err != nil {
		return fmt.Errorf("selector.edge: %w", err)
	}
	if _, err := spinner.Style(c.Spinner.Style); err != nil {
		return fmt.Errorf("spinner.style: %w", err)
	}
	if c.Spinner.Interval < 0 {
		return fmt.Errorf("spinner.interval must not be negative, got %s", c.Spinner.Interval)
	}
	if c.Input.MaxAttempts < 0 {
		return fmt.Errorf("input.max_attempts must not be negative, got %d", c.Input.MaxAttempts)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Dump renders the configuration as YAML.
func (c *Config) Dump() ([]byte, error) {
	return yaml.Marshal(c)
}

// TerminalOptions builds terminal options from the theme.
func (c *Config) TerminalOptions(plain bool) *terminal.Options {
	return &terminal.Options{Theme: c.Theme, Plain: plain}
}

// SpinnerOptions builds spinner options. Validate must have passed.
func (c *Config) SpinnerOptions(logger *log.Logger) *spinner.Options {
	style, _ := spinner.Style(c.Spinner.Style)
	return &spinner.Options{Style: style, Interval: c.Spinner.Interval, Logger: logger}
}

// SelectorOptions builds selector options. Validate must have passed.
func (c *Config) SelectorOptions(logger *log.Logger) *choose.Options {
	edge, _ := choose.ParseEdgePolicy(c.Selector.Edge)
	return &choose.Options{Edge: edge, HideHelp: !c.Selector.Help, Logger: logger}
}

// InputOptions builds prompt options.
func (c *Config) InputOptions(logger *log.Logger) *input.Options {
	return &input.Options{MaxAttempts: c.Input.MaxAttempts, Logger: logger}
}
