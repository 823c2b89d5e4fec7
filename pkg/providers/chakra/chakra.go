// Package chakra renders and emits the widget set with Chakra UI v3.
package chakra

import (
	"fmt"

	"github.com/goliatone/go-compareui/pkg/emit"
	"github.com/goliatone/go-compareui/pkg/icons"
	"github.com/goliatone/go-compareui/pkg/jsx"
	"github.com/goliatone/go-compareui/pkg/provider"
	"github.com/goliatone/go-compareui/pkg/providers/internal/kit"
	"github.com/goliatone/go-compareui/pkg/render"
	"github.com/goliatone/go-compareui/pkg/style"
	"github.com/goliatone/go-compareui/pkg/widget"
)

const (
	pkgCore  = "@chakra-ui/react"
	pkgIcons = "lucide-react"
)

var views = map[widget.Type]render.Func{
	widget.Accordion:  accordionView,
	widget.Button:     buttonView,
	widget.Card:       cardView,
	widget.IconButton: iconButtonView,
	widget.Input:      inputView,
	widget.Modal:      modalView,
	widget.Progress:   progressView,
	widget.Radio:      radioView,
	widget.Select:     selectView,
	widget.Switch:     switchView,
	widget.Tabs:       tabsView,
}

var emitters = map[widget.Type]emit.Func{
	widget.Accordion:  accordionCode,
	widget.Button:     buttonCode,
	widget.Card:       cardCode,
	widget.IconButton: iconButtonCode,
	widget.Input:      inputCode,
	widget.Modal:      modalCode,
	widget.Progress:   progressCode,
	widget.Radio:      radioCode,
	widget.Select:     selectCode,
	widget.Switch:     switchCode,
	widget.Tabs:       tabsCode,
}

// Register adds the Chakra UI views and emitters.
func Register(r *render.Dispatcher, e *emit.Dispatcher) error {
	for _, w := range widget.All() {
		if err := r.Register(w, provider.Chakra, views[w]); err != nil {
			return fmt.Errorf("chakra: %w", err)
		}
		if err := e.Register(w, provider.Chakra, emitters[w]); err != nil {
			return fmt.Errorf("chakra: %w", err)
		}
	}
	return nil
}

func size(s widget.Size) string {
	return widget.Pick(s, "sm", "md", "lg")
}

func variant(v widget.Variant) string {
	if v.ButtonVariant() == widget.Outlined {
		return "outline"
	}
	return "solid"
}

func inputVariant(v widget.Variant) string {
	switch v.InputVariant() {
	case widget.Filled:
		return "subtle"
	case widget.Standard:
		return "flushed"
	default:
		return "outline"
	}
}

// styles maps the set style fields onto an inline style object.
func styles(o style.Override) jsx.Object {
	return kit.StyleObject(o)
}

func icon(f *jsx.File, name string) string {
	component := icons.Lucide(name)
	f.Use(pkgIcons, component)
	return component
}

func boolAttr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
