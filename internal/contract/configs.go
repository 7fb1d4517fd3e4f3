// Package contract provides the validated runtime configuration and
// shared utilities for the beemon internals.
package contract

import (
	"fmt"
	"strings"

	"github.com/beemon/beemon/schema"
)

// Default values for configuration.
const (
	DefaultDataDir      = "data"
	DefaultOutDir       = "output"
	DefaultRemoteFolder = "beemon-analysis"
)

// CredentialsEnvVar names the environment variable holding the raw
// service-account JSON for Drive uploads.
const CredentialsEnvVar = "BEEMON_DRIVE_CREDENTIALS"

// Config holds the runtime configuration for a run.
// This struct is the final, validated config; directory paths are
// explicit values passed into each stage, with defaults supplied only
// by the command layer.
type Config struct {
	DataDir      string
	OutDir       string
	InputFile    string // explicit input path; bypasses the locator when set
	InputPattern string
	Output       schema.OutputMode
	OutputFile   string
	Width        int // terminal width override (0 = auto-detect)
	UseColors    bool
	RemoteFolder string
	CredsFile    string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env,
// config file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	DataDir      string `mapstructure:"data-dir"`
	OutDir       string `mapstructure:"out-dir"`
	Input        string `mapstructure:"input"`
	Pattern      string `mapstructure:"pattern"`
	Output       string `mapstructure:"output"`
	OutputFile   string `mapstructure:"output-file"`
	Width        int    `mapstructure:"width"`
	Color        string `mapstructure:"color"`
	RemoteFolder string `mapstructure:"remote-folder"`
	Credentials  string `mapstructure:"credentials"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw
// inputs and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.DataDir = input.DataDir
	cfg.OutDir = input.OutDir
	cfg.InputFile = input.Input
	cfg.OutputFile = input.OutputFile
	cfg.RemoteFolder = input.RemoteFolder
	cfg.CredsFile = input.Credentials

	if input.Pattern == "" {
		return fmt.Errorf("pattern must not be empty")
	}
	cfg.InputPattern = input.Pattern

	if input.Width < 0 {
		return fmt.Errorf("width must not be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json", input.Output)
	}

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	return nil
}
