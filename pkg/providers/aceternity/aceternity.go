// Package aceternity renders and emits the widgets Aceternity UI covers.
// Aceternity ships no component library: its snippets are plain Tailwind
// elements, animated with framer-motion where motion is the point.
package aceternity

import (
	"fmt"

	"github.com/goliatone/go-compareui/pkg/emit"
	"github.com/goliatone/go-compareui/pkg/icons"
	"github.com/goliatone/go-compareui/pkg/jsx"
	"github.com/goliatone/go-compareui/pkg/provider"
	"github.com/goliatone/go-compareui/pkg/render"
	"github.com/goliatone/go-compareui/pkg/style"
	"github.com/goliatone/go-compareui/pkg/widget"
)

const (
	pkgIcons  = "lucide-react"
	pkgMotion = "framer-motion"
	pkgUtils  = "@/lib/utils"

	glow = "hover:shadow-[0_0_15px_rgba(59,130,246,0.5)]"
)

var views = map[widget.Type]render.Func{
	widget.Button:     buttonView,
	widget.Card:       cardView,
	widget.IconButton: iconButtonView,
	widget.Input:      inputView,
	widget.Modal:      modalView,
	widget.Radio:      radioView,
	widget.Select:     selectView,
	widget.Switch:     switchView,
}

var emitters = map[widget.Type]emit.Func{
	widget.Button:     buttonCode,
	widget.Card:       cardCode,
	widget.IconButton: iconButtonCode,
	widget.Input:      inputCode,
	widget.Modal:      modalCode,
	widget.Radio:      radioCode,
	widget.Select:     selectCode,
	widget.Switch:     switchCode,
}

// Register adds the Aceternity views and emitters. Widgets without an
// Aceternity counterpart are left to the dispatchers' unsupported path.
func Register(r *render.Dispatcher, e *emit.Dispatcher) error {
	for _, w := range widget.All() {
		view, ok := views[w]
		if !ok {
			continue
		}
		if err := r.Register(w, provider.Aceternity, view); err != nil {
			return fmt.Errorf("aceternity: %w", err)
		}
		if err := e.Register(w, provider.Aceternity, emitters[w]); err != nil {
			return fmt.Errorf("aceternity: %w", err)
		}
	}
	return nil
}

// textSize maps the tier onto a Tailwind text class.
func textSize(s widget.Size) string {
	return widget.Pick(s, "text-xs", "text-sm", "text-lg")
}

// padding is the Tailwind padding of buttons per tier.
func padding(s widget.Size) string {
	return widget.Pick(s, "px-3 py-1", "px-4 py-2", "px-8 py-3")
}

// border composes the CSS border shorthand from the set border fields, or
// returns "" when none is set.
func border(o style.Override) string {
	if o.BorderWidth == nil && o.BorderColor == nil && o.BorderStyle == nil {
		return ""
	}
	parts := []string{style.CSS(o.BorderWidth), style.Value(o.BorderStyle), style.Value(o.BorderColor)}
	if parts[0] == "" {
		parts[0] = "1px"
	}
	if parts[1] == "" {
		parts[1] = "solid"
	}
	out := parts[0] + " " + parts[1]
	if parts[2] != "" {
		out += " " + parts[2]
	}
	return out
}

// boxStyle is the inline style of a box: radius, colours, border, padding
// and shadow, each only when set.
func boxStyle(o style.Override) jsx.Object {
	return jsx.Obj().
		Set("borderRadius", style.CSS(o.BorderRadius)).
		Set("backgroundColor", style.Value(o.BackgroundColor)).
		Set("color", style.Value(o.FontColor)).
		Set("border", border(o)).
		Set("padding", style.Padding(o.Padding)).
		Set("fontSize", style.CSS(o.FontSize)).
		Set("boxShadow", style.Value(o.Shadow))
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
