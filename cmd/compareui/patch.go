package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-compareui/pkg/component"
	"github.com/goliatone/go-compareui/pkg/patch"
)

type patchOptions struct {
	configPath string
	patchPath  string
	diffPath   string
	sets       []string
}

func newPatchCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &patchOptions{}

	cmd := &cobra.Command{
		Use:   "patch [widget]",
		Short: "Merge a config patch into a widget config, or diff two configs",
		Long: "Merge a config patch into a widget config and print the result.\n\n" +
			"With --diff the command prints the patch turning the base config into the\n" +
			"given one instead. Pass - to --patch to read the patch from stdin.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, rootFlags, "apply patch")
			if err != nil {
				return err
			}
			return runPatch(cmd, a, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "file", "f", "", "Base widget config (defaults of the widget when empty)")
	cmd.Flags().StringVar(&opts.patchPath, "patch", "", "Patch file (JSON or YAML), - for stdin")
	cmd.Flags().StringVar(&opts.diffPath, "diff", "", "Print the patch from the base config to this config")
	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "Set a config field after the patch, e.g. size=large")

	return cmd
}

func runPatch(cmd *cobra.Command, a *app, args []string, opts *patchOptions) error {
	w, err := a.widgetArg(args)
	if err != nil {
		return newCommandError("apply patch", "resolving widget", err, "Run compareui catalog to list widget types.")
	}
	base, err := a.widgetConfig(w, opts.configPath, nil)
	if err != nil {
		return newCommandError("apply patch", "loading base config", err, "")
	}
	format := a.cfg.Output.Format
	if format == "text" {
		format = "yaml"
	}

	if opts.diffPath != "" {
		data, err := os.ReadFile(opts.diffPath)
		if err != nil {
			return newCommandError("apply patch", "reading target config", err, "")
		}
		target, err := component.LoadConfig(data)
		if err != nil {
			return newCommandError("apply patch", "parsing target config", err, "")
		}
		p, err := patch.Diff(base, target)
		if err != nil {
			return newCommandError("apply patch", "diffing configs", err, "")
		}
		_, err = writeStructured(cmd.OutOrStdout(), format, p)
		return err
	}

	result := base
	if opts.patchPath != "" {
		data, err := readInput(cmd, opts.patchPath)
		if err != nil {
			return newCommandError("apply patch", "reading patch", err, "")
		}
		p, err := patch.Parse(data)
		if err != nil {
			return newCommandError("apply patch", "parsing patch", err, "Patches are JSON or YAML objects, e.g. {\"styles\": {\"borderRadius\": 12}}.")
		}
		if result, err = patch.ApplyWidget(w, result, p); err != nil {
			return newCommandError("apply patch", "merging patch", err, "")
		}
		a.log.WithFields(map[string]any{"widget": string(w), "keys": len(p)}).Debug("applied patch")
	}
	if len(opts.sets) > 0 {
		sets, err := a.widgetConfigFrom(w, result, opts.sets)
		if err != nil {
			return newCommandError("apply patch", "applying --set", err, "")
		}
		result = sets
	}

	_, err = writeStructured(cmd.OutOrStdout(), format, result)
	return err
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
