// Package antd renders and emits the widget set with Ant Design v5.
package antd

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
	pkgCore  = "antd"
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

// Register adds the Ant Design views and emitters.
func Register(r *render.Dispatcher, e *emit.Dispatcher) error {
	for _, w := range widget.All() {
		if err := r.Register(w, provider.AntD, views[w]); err != nil {
			return fmt.Errorf("antd: %w", err)
		}
		if err := e.Register(w, provider.AntD, emitters[w]); err != nil {
			return fmt.Errorf("antd: %w", err)
		}
	}
	return nil
}

func size(s widget.Size) string {
	return widget.Pick(s, "small", "middle", "large")
}

// switchSize maps the tier onto Switch, which only knows small and default.
func switchSize(s widget.Size) string {
	return widget.Pick(s, "small", "default", "default")
}

func buttonType(v widget.Variant) string {
	if v.ButtonVariant() == widget.Outlined {
		return "default"
	}
	return "primary"
}

func inputVariant(v widget.Variant) string {
	switch v.InputVariant() {
	case widget.Filled:
		return "filled"
	case widget.Standard:
		return "borderless"
	default:
		return "outlined"
	}
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

// pixels renders a set length as a number when it is in pixels.
func pixels(l *style.Length) jsx.Value {
	if l == nil {
		return nil
	}
	if px, ok := l.Pixels(); ok {
		return jsx.Num(px)
	}
	return nil
}
