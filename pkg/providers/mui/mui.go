// Package mui renders and emits the widget set with Material UI.
package mui

import (
	"fmt"

	"github.com/goliatone/go-compareui/pkg/emit"
	"github.com/goliatone/go-compareui/pkg/jsx"
	"github.com/goliatone/go-compareui/pkg/provider"
	"github.com/goliatone/go-compareui/pkg/providers/internal/kit"
	"github.com/goliatone/go-compareui/pkg/render"
	"github.com/goliatone/go-compareui/pkg/style"
	"github.com/goliatone/go-compareui/pkg/widget"
)

const (
	pkgCore  = "@mui/material"
	pkgIcons = "@mui/icons-material"
)

type entry struct {
	widget widget.Type
	view   render.Func
	code   emit.Func
}

var entries = []entry{
	{widget.Accordion, accordionView, accordionCode},
	{widget.Button, buttonView, buttonCode},
	{widget.Card, cardView, cardCode},
	{widget.IconButton, iconButtonView, iconButtonCode},
	{widget.Input, inputView, inputCode},
	{widget.Modal, modalView, modalCode},
	{widget.Progress, progressView, progressCode},
	{widget.Radio, radioView, radioCode},
	{widget.Select, selectView, selectCode},
	{widget.Switch, switchView, switchCode},
	{widget.Tabs, tabsView, tabsCode},
}

// Register adds the Material UI views and emitters.
func Register(r *render.Dispatcher, e *emit.Dispatcher) error {
	for _, entry := range entries {
		if err := r.Register(entry.widget, provider.MUI, entry.view); err != nil {
			return fmt.Errorf("mui: %w", err)
		}
		if err := e.Register(entry.widget, provider.MUI, entry.code); err != nil {
			return fmt.Errorf("mui: %w", err)
		}
	}
	return nil
}

// size maps the tier onto the size prop of buttons.
func size(s widget.Size) string {
	return widget.Pick(s, "small", "medium", "large")
}

// fieldSize maps the tier onto form controls, which only know small and
// medium.
func fieldSize(s widget.Size) string {
	return widget.Pick(s, "small", "medium", "medium")
}

func variant(v widget.Variant) string {
	if v.ButtonVariant() == widget.Outlined {
		return "outlined"
	}
	return "contained"
}

// sx maps the common style fields onto sx keys.
func sx(o style.Override) jsx.Object {
	return kit.Rename(kit.StyleObject(o), "backgroundColor", "bgcolor")
}

func iconImport(f *jsx.File, name string) string {
	component := name + "Icon"
	f.UseDefault(pkgIcons+"/"+name, component)
	return component
}
