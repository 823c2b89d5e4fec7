package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-compareui"
	"github.com/goliatone/go-compareui/internal/config"
	"github.com/goliatone/go-compareui/internal/logger"
	"github.com/goliatone/go-compareui/internal/playground"
	"github.com/goliatone/go-compareui/pkg/component"
	"github.com/goliatone/go-compareui/pkg/patch"
	"github.com/goliatone/go-compareui/pkg/provider"
	"github.com/goliatone/go-compareui/pkg/widget"
)

// app bundles what every command needs once flags and config are resolved.
type app struct {
	cfg    config.Config
	log    *logger.Logger
	studio *compareui.Studio
}

func loadApp(cmd *cobra.Command, flags *rootFlags, operation string) (*app, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError(operation, "loading configuration", err, "Check the file passed to --config and the COMPAREUI_* environment.")
	}
	applyFlags(&cfg, flags)
	if err := config.Validate(cfg); err != nil {
		return nil, newCommandError(operation, "validating flags", err, "Run compareui providers to list valid provider ids.")
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.Human,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "")
	}

	ids, err := provider.ParseList(cfg.Theme.Providers)
	if err != nil {
		return nil, newCommandError(operation, "resolving providers", err, "")
	}
	studio, err := compareui.New(
		compareui.WithMode(provider.Mode(cfg.Theme.Mode)),
		compareui.WithProviders(ids...),
		compareui.WithTokens(cfg.Theme.Tokens),
	)
	if err != nil {
		return nil, newCommandError(operation, "preparing providers", err, "")
	}

	log.WithFields(map[string]any{
		"command":   cmd.Name(),
		"mode":      cfg.Theme.Mode,
		"providers": len(ids),
	}).Debug("command ready")

	return &app{cfg: cfg, log: log, studio: studio}, nil
}

func applyFlags(cfg *config.Config, flags *rootFlags) {
	if flags.verbose {
		cfg.Log.Level = "debug"
		cfg.Log.Human = true
	}
	if flags.mode != "" {
		cfg.Theme.Mode = flags.mode
	}
	if len(flags.providers) > 0 {
		cfg.Theme.Providers = flags.providers
	}
	if flags.format != "" {
		cfg.Output.Format = flags.format
	}
	if flags.color != "" {
		cfg.Output.Color = flags.color
	}
}

// widgetArg resolves the widget named by args[0], falling back to the
// configured default widget.
func (a *app) widgetArg(args []string) (widget.Type, error) {
	raw := a.cfg.Output.Widget
	if len(args) > 0 {
		raw = args[0]
	}
	return widget.Parse(raw)
}

// widgetConfig loads the config file at path, or the defaults of w, and
// applies each path=value assignment in sets.
func (a *app) widgetConfig(w widget.Type, path string, sets []string) (component.Config, error) {
	cfg := component.Defaults(w)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return component.Config{}, fmt.Errorf("read %s: %w", path, err)
		}
		if cfg, err = component.LoadConfig(data); err != nil {
			return component.Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return a.widgetConfigFrom(w, cfg, sets)
}

// widgetConfigFrom applies each path=value assignment in sets to cfg.
func (a *app) widgetConfigFrom(w widget.Type, cfg component.Config, sets []string) (component.Config, error) {
	for _, set := range sets {
		field, value, ok := strings.Cut(set, "=")
		if !ok {
			return component.Config{}, fmt.Errorf("--set %q: expected path=value", set)
		}
		p, err := playground.FieldPatch(field, value)
		if err != nil {
			return component.Config{}, err
		}
		if cfg, err = patch.ApplyWidget(w, cfg, p); err != nil {
			return component.Config{}, err
		}
	}
	return cfg, nil
}
