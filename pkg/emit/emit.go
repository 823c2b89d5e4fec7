// Package emit produces self-contained TSX source for one widget config in
// the vocabulary of one provider.
package emit

import (
	"strings"

	"github.com/goliatone/go-compareui/pkg/component"
	"github.com/goliatone/go-compareui/pkg/jsx"
	"github.com/goliatone/go-compareui/pkg/provider"
	"github.com/goliatone/go-compareui/pkg/style"
	"github.com/goliatone/go-compareui/pkg/widget"
)

// Props is the input of an emitter. Config is the raw canonical config:
// emitters read set style fields only, so unset fields never reach the
// output.
type Props struct {
	Widget   widget.Type
	Provider provider.ID
	Config   component.Config
}

// Content is shorthand for p.Config.Content.
func (p Props) Content() component.Content {
	return p.Config.Content
}

// Styles is shorthand for p.Config.Styles.
func (p Props) Styles() style.Override {
	return p.Config.Styles
}

// Size returns the resolved size tier.
func (p Props) Size() widget.Size {
	return p.Config.Size.Resolve()
}

// Name returns the exported component name, e.g. CustomIconButton.
func (p Props) Name() string {
	return ComponentName(p.Widget)
}

// Func builds the TSX file for one pair.
type Func func(Props) jsx.File

// Code is the emitted source of one pair.
type Code struct {
	Widget      widget.Type `json:"widget"`
	Provider    provider.ID `json:"provider"`
	Source      string      `json:"source"`
	Unavailable bool        `json:"unavailable,omitempty"`
}

// Filename returns a conventional file name for the source.
func (c Code) Filename() string {
	return ComponentName(c.Widget) + ".tsx"
}

func (c Code) String() string {
	return c.Source
}

// ComponentName returns the exported component name for w.
func ComponentName(w widget.Type) string {
	return "Custom" + strings.ReplaceAll(w.DisplayName(), " ", "")
}

// Sentinel is the source emitted for an unsupported pair.
func Sentinel(reg *provider.Registry, w widget.Type, p provider.ID) string {
	return "// " + reg.Unsupported(p, w) + "\n"
}

// Validate parses the code as TSX.
func Validate(code Code) error {
	return jsx.Validate(code.Filename(), code.Source)
}
