package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-compareui/pkg/widget"
)

type catalogView struct {
	widget.Entry `yaml:",inline"`
	Providers    []string `json:"providers" yaml:"providers"`
}

func newCatalogCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [query]",
		Short: "List widget categories, optionally filtered by a search query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, rootFlags, "list widgets")
			if err != nil {
				return err
			}
			return runCatalog(cmd, a, strings.Join(args, " "))
		},
	}
}

func runCatalog(cmd *cobra.Command, a *app, query string) error {
	entries := widget.Search(query)
	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		_, err := fmt.Fprintf(out, "No widgets match %q.\n", query)
		return err
	}

	views := make([]catalogView, len(entries))
	for i, entry := range entries {
		var ids []string
		for _, id := range a.studio.Registry().SupportedBy(entry.Type) {
			ids = append(ids, string(id))
		}
		views[i] = catalogView{Entry: entry, Providers: ids}
	}
	if ok, err := writeStructured(out, a.cfg.Output.Format, views); ok {
		return err
	}

	writer := tabwriter.NewWriter(out, 0, 2, 2, ' ', 0)
	fmt.Fprintln(writer, "TYPE\tNAME\tPROVIDERS\tDESCRIPTION")
	for _, v := range views {
		fmt.Fprintf(writer, "%s\t%s\t%d\t%s\n", v.Type, v.Name, len(v.Providers), v.Description)
	}
	return writer.Flush()
}
