package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

type emitOptions struct {
	configPath string
	sets       []string
	outDir     string
}

func newEmitCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &emitOptions{}

	cmd := &cobra.Command{
		Use:   "emit [widget]",
		Short: "Print the TSX source of a widget for every provider",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, rootFlags, "emit code")
			if err != nil {
				return err
			}
			return runEmit(cmd, a, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "file", "f", "", "Widget config file (JSON or YAML)")
	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "Set a config field, e.g. styles.borderRadius=12")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Write one file per provider under this directory")

	return cmd
}

func runEmit(cmd *cobra.Command, a *app, args []string, opts *emitOptions) error {
	w, err := a.widgetArg(args)
	if err != nil {
		return newCommandError("emit code", "resolving widget", err, "Run compareui catalog to list widget types.")
	}
	cfg, err := a.widgetConfig(w, opts.configPath, opts.sets)
	if err != nil {
		return newCommandError("emit code", "building config", err, "")
	}

	out := cmd.OutOrStdout()
	color := useColor(out, a.cfg.Output.Color)
	for _, id := range a.studio.Providers() {
		code, err := a.studio.Emit(w, id, cfg)
		if err != nil {
			return newCommandError("emit code", fmt.Sprintf("emitting %s", id), err, "")
		}

		if opts.outDir != "" {
			if code.Unavailable {
				a.log.WithFields(map[string]any{"provider": string(id), "widget": string(w)}).Info("skipped unsupported pair")
				continue
			}
			dir := filepath.Join(opts.outDir, string(id))
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return newCommandError("emit code", "creating output directory", err, "")
			}
			path := filepath.Join(dir, code.Filename())
			if err := os.WriteFile(path, []byte(code.Source), 0o644); err != nil {
				return newCommandError("emit code", "writing "+path, err, "")
			}
			fmt.Fprintln(out, path)
			continue
		}

		fmt.Fprintf(out, "// ---- %s/%s\n", id, code.Filename())
		if err := writeCode(out, code.Source, color && !code.Unavailable); err != nil {
			return err
		}
	}
	return nil
}
