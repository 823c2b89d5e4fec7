// Package render turns a canonical component config into a live artifact for
// one provider: a node tree plus the widget-local state that user events
// mutate.
package render

import (
	"golang.org/x/net/html"

	"github.com/goliatone/go-compareui/pkg/component"
	"github.com/goliatone/go-compareui/pkg/provider"
	"github.com/goliatone/go-compareui/pkg/style"
	"github.com/goliatone/go-compareui/pkg/widget"
)

// Props is everything a provider view receives. Config is the raw canonical
// config; Style is its normalised style block.
type Props struct {
	Widget   widget.Type
	Provider provider.ID
	Config   component.Config
	Style    style.Override
	Metrics  style.Metrics
	Tokens   provider.Tokens
	Mode     provider.Mode
}

// Content is shorthand for p.Config.Content.
func (p Props) Content() component.Content {
	return p.Config.Content
}

// Size returns the resolved size tier.
func (p Props) Size() widget.Size {
	return p.Config.Size.Resolve()
}

// Token returns the provider token or def.
func (p Props) Token(name, def string) string {
	return p.Tokens.Get(name, def)
}

// View draws the widget for the given state.
type View func(State) *html.Node

// Func builds a View once per Render call. Implementations must not retain
// Props beyond the View they return.
type Func func(Props) View
