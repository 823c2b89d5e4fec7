package main

import (
	"os"

	"github.com/spf13/cobra"
)

type previewOptions struct {
	configPath string
	sets       []string
	output     string
}

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview [widget]",
		Short: "Write an HTML page showing a widget rendered by every provider",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, rootFlags, "build preview")
			if err != nil {
				return err
			}
			return runPreview(cmd, a, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "file", "f", "", "Widget config file (JSON or YAML)")
	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "Set a config field, e.g. content.label=Save")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "Output file (stdout if empty)")

	return cmd
}

func runPreview(cmd *cobra.Command, a *app, args []string, opts *previewOptions) error {
	w, err := a.widgetArg(args)
	if err != nil {
		return newCommandError("build preview", "resolving widget", err, "Run compareui catalog to list widget types.")
	}
	cfg, err := a.widgetConfig(w, opts.configPath, opts.sets)
	if err != nil {
		return newCommandError("build preview", "building config", err, "")
	}
	page, err := a.studio.Page(w, cfg)
	if err != nil {
		return newCommandError("build preview", "rendering page", err, "")
	}

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(page)
		return err
	}
	if err := os.WriteFile(opts.output, page, 0o644); err != nil {
		return newCommandError("build preview", "writing "+opts.output, err, "")
	}
	a.log.WithFields(map[string]any{"widget": string(w), "path": opts.output}).Info("preview written")
	cmd.Printf("Preview written to %s\n", opts.output)
	return nil
}
