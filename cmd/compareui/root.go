package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	mode       string
	providers  []string
	format     string
	color      string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "compareui",
		Short:         "Compare one widget config across UI component libraries",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Path to compareui.yaml")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&flags.mode, "mode", "", "Theme mode: light or dark")
	pf.StringSliceVarP(&flags.providers, "providers", "p", nil, "Providers to compare, in order (default all)")
	pf.StringVar(&flags.format, "format", "", "Structured output format: text, json or yaml")
	pf.StringVar(&flags.color, "color", "", "Colour output: auto, always or never")

	cmd.AddCommand(newProvidersCmd(flags))
	cmd.AddCommand(newCatalogCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newEmitCmd(flags))
	cmd.AddCommand(newGuideCmd(flags))
	cmd.AddCommand(newSchemaCmd(flags))
	cmd.AddCommand(newPatchCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newPlayCmd(flags))

	return cmd
}
