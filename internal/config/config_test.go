package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "compareui.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "light", cfg.Theme.Mode)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.Equal(t, 30*time.Second, cfg.Assistant.Timeout)
	assert.Empty(t, cfg.Theme.Providers)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  human: true
theme:
  mode: dark
  providers: [mui, shadcn]
  tokens:
    primary: "#ff0066"
output:
  format: json
assistant:
  endpoint: https://assistant.example.com/api/config/generate
  timeout: 5s
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Human)
	assert.Equal(t, "dark", cfg.Theme.Mode)
	assert.Equal(t, []string{"mui", "shadcn"}, cfg.Theme.Providers)
	assert.Equal(t, "#ff0066", cfg.Theme.Tokens["primary"])
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 5*time.Second, cfg.Assistant.Timeout)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "log:\n  level: debug\n")
	t.Setenv("COMPAREUI_LOG_LEVEL", "warn")
	t.Setenv("COMPAREUI_THEME_PROVIDERS", "antd, chakra")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, []string{"antd", "chakra"}, cfg.Theme.Providers)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Config)
		field string
		tag   string
	}{
		{name: "unknown provider", edit: func(c *Config) { c.Theme.Providers = []string{"mui", "bootstrap"} }, field: "theme.providers[1]", tag: "provider_id"},
		{name: "unknown widget", edit: func(c *Config) { c.Output.Widget = "slider" }, field: "output.widget", tag: "widget_type"},
		{name: "unknown mode", edit: func(c *Config) { c.Theme.Mode = "sepia" }, field: "theme.mode", tag: "theme_mode"},
		{name: "bad format", edit: func(c *Config) { c.Output.Format = "xml" }, field: "output.format", tag: "oneof"},
		{name: "bad endpoint", edit: func(c *Config) { c.Assistant.Endpoint = "not a url" }, field: "assistant.endpoint", tag: "url"},
		{name: "negative timeout", edit: func(c *Config) { c.Assistant.Timeout = -time.Second }, field: "assistant.timeout", tag: "gte"},
	}

	require.NoError(t, Validate(Defaults()))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.edit(&cfg)

			err := Validate(cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, tt.tag, ve.Tag)
		})
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := writeConfig(t, "theme:\n  providers: [mui, vuetify]\n")
	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalid)
}
