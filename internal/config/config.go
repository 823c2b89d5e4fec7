// Package config loads the command line configuration from defaults, an
// optional compareui.yaml file and COMPAREUI_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// FileName is the config file base name looked up without --config.
const FileName = "compareui"

// EnvPrefix prefixes environment overrides, e.g. COMPAREUI_LOG_LEVEL.
const EnvPrefix = "COMPAREUI"

// Config holds the CLI settings.
type Config struct {
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
	Theme     ThemeConfig     `mapstructure:"theme" yaml:"theme"`
	Output    OutputConfig    `mapstructure:"output" yaml:"output"`
	Assistant AssistantConfig `mapstructure:"assistant" yaml:"assistant"`
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level" validate:"required,oneof=trace debug info warn error"`
	Human bool   `mapstructure:"human" yaml:"human"`
}

// ThemeConfig selects the token set and the compared providers.
type ThemeConfig struct {
	Mode      string            `mapstructure:"mode" yaml:"mode" validate:"theme_mode"`
	Providers []string          `mapstructure:"providers" yaml:"providers" validate:"dive,provider_id"`
	Tokens    map[string]string `mapstructure:"tokens" yaml:"tokens"`
}

// OutputConfig controls how commands print results.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=text json yaml"`
	Color  string `mapstructure:"color" yaml:"color" validate:"oneof=auto always never"`
	Widget string `mapstructure:"widget" yaml:"widget" validate:"omitempty,widget_type"`
}

// AssistantConfig points at the config assistant service.
type AssistantConfig struct {
	Endpoint string        `mapstructure:"endpoint" yaml:"endpoint" validate:"omitempty,url"`
	Timeout  time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"gte=0"`
	Token    string        `mapstructure:"token" yaml:"token"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{
		Log:       LogConfig{Level: "info"},
		Theme:     ThemeConfig{Mode: "light"},
		Output:    OutputConfig{Format: "text", Color: "auto", Widget: "button"},
		Assistant: AssistantConfig{Timeout: 30 * time.Second},
	}
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.human", d.Log.Human)
	v.SetDefault("theme.mode", d.Theme.Mode)
	v.SetDefault("theme.providers", []string{})
	v.SetDefault("theme.tokens", map[string]string{})
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.color", d.Output.Color)
	v.SetDefault("output.widget", d.Output.Widget)
	v.SetDefault("assistant.endpoint", "")
	v.SetDefault("assistant.timeout", d.Assistant.Timeout)
	v.SetDefault("assistant.token", "")
}

// Load reads the configuration. An explicit path must exist; without one,
// compareui.yaml is looked up in the working directory and in
// $HOME/.config/compareui and may be absent.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "compareui"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.Theme.Providers = splitList(cfg.Theme.Providers)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// splitList flattens comma separated entries, as env values arrive as one
// string.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}
