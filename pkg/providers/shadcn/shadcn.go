// Package shadcn renders and emits the widget set with shadcn/ui, whose
// components are copied into the consuming project under @/components/ui.
package shadcn

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

const pkgIcons = "lucide-react"

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

// Register adds the shadcn/ui views and emitters.
func Register(r *render.Dispatcher, e *emit.Dispatcher) error {
	for _, w := range widget.All() {
		if err := r.Register(w, provider.Shadcn, views[w]); err != nil {
			return fmt.Errorf("shadcn: %w", err)
		}
		if err := e.Register(w, provider.Shadcn, emitters[w]); err != nil {
			return fmt.Errorf("shadcn: %w", err)
		}
	}
	return nil
}

// ui returns the import path of a generated component.
func ui(name string) string {
	return "@/components/ui/" + name
}

func size(s widget.Size) string {
	return widget.Pick(s, "sm", "default", "lg")
}

// textSize maps the tier onto a Tailwind text class.
func textSize(s widget.Size) string {
	return widget.Pick(s, "text-xs", "", "text-base")
}

func variant(v widget.Variant) string {
	if v.ButtonVariant() == widget.Outlined {
		return "outline"
	}
	return "default"
}

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
