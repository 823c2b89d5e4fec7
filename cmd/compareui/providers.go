package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-compareui/pkg/provider"
	"github.com/goliatone/go-compareui/pkg/widget"
)

type providerView struct {
	ID       provider.ID `json:"id" yaml:"id"`
	Label    string      `json:"label" yaml:"label"`
	Package  string      `json:"package" yaml:"package"`
	Homepage string      `json:"homepage" yaml:"homepage"`
	Widgets  []string    `json:"widgets" yaml:"widgets"`
}

func newProvidersCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "Show which widgets every provider implements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, rootFlags, "list providers")
			if err != nil {
				return err
			}
			return runProviders(cmd, a)
		},
	}
}

func runProviders(cmd *cobra.Command, a *app) error {
	reg := a.studio.Registry()
	ids := a.studio.Providers()

	views := make([]providerView, 0, len(ids))
	for _, id := range ids {
		meta, err := reg.DisplayMeta(id)
		if err != nil {
			return err
		}
		caps, err := reg.Capabilities(id)
		if err != nil {
			return err
		}
		widgets := make([]string, len(caps))
		for i, w := range caps {
			widgets[i] = string(w)
		}
		views = append(views, providerView{
			ID:       id,
			Label:    meta.Label,
			Package:  meta.Package,
			Homepage: meta.Homepage,
			Widgets:  widgets,
		})
	}

	out := cmd.OutOrStdout()
	if ok, err := writeStructured(out, a.cfg.Output.Format, views); ok {
		return err
	}

	color := useColor(out, a.cfg.Output.Color)
	_, err := fmt.Fprintln(out, capabilityMatrix(reg, views, color))
	return err
}

// capabilityMatrix renders widgets as rows and providers as columns.
func capabilityMatrix(reg *provider.Registry, views []providerView, color bool) string {
	yes, no := "yes", "-"
	if color {
		yes, no = "✓", "✗"
	}

	headers := []string{"Widget"}
	for _, v := range views {
		headers = append(headers, v.Label)
	}

	rows := make([][]string, 0, len(widget.All()))
	for _, entry := range widget.Catalog() {
		row := []string{entry.Name}
		for _, v := range views {
			if reg.Supports(entry.Type, v.ID) {
				row = append(row, yes)
			} else {
				row = append(row, no)
			}
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...)
	if !color {
		return t.Border(lipgloss.NormalBorder()).String()
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	missing := cell.Foreground(lipgloss.Color("9"))
	supported := cell.Foreground(lipgloss.Color("10"))
	return t.BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 0:
				return cell
			case rows[row][col] == no:
				return missing
			default:
				return supported
			}
		}).String()
}
