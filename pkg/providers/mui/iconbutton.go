package mui

import (
	"golang.org/x/net/html"

	"github.com/goliatone/go-compareui/pkg/emit"
	"github.com/goliatone/go-compareui/pkg/icons"
	"github.com/goliatone/go-compareui/pkg/jsx"
	"github.com/goliatone/go-compareui/pkg/markup"
	"github.com/goliatone/go-compareui/pkg/providers/internal/kit"
	"github.com/goliatone/go-compareui/pkg/render"
	"github.com/goliatone/go-compareui/pkg/style"
)

func iconButtonView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics
	icon := icons.Resolve(c.Icon)
	primary := p.Token("primary", "#1976d2")
	contained := variant(p.Config.Variant) == "contained"

	bg, fg := "transparent", primary
	if contained {
		bg, fg = primary, p.Token("onPrimary", "#fff")
	}
	surface := func(extra ...markup.Decl) []markup.Decl {
		return kit.Decls(
			[]markup.Decl{
				markup.D("display", "inline-flex"),
				markup.D("align-items", "center"),
				markup.D("justify-content", "center"),
				markup.D("gap", m.Gap),
				markup.D("border-radius", style.CSS(s.BorderRadius)),
				markup.D("background-color", style.Or(s.BackgroundColor, bg)),
				markup.D("color", style.Or(s.FontColor, fg)),
				markup.D("border", kit.BorderOr(s, "none", "1px", primary)),
				markup.D("box-shadow", style.Value(s.Shadow)),
				markup.D("font-family", p.Token("fontFamily", "")),
				markup.D("font-size", style.CSS(s.FontSize)),
			},
			extra,
			kit.Interactive(c.Disabled),
		)
	}

	return func(render.State) *html.Node {
		return markup.El("div",
			markup.Style(markup.D("display", "flex"), markup.D("gap", m.Gap), markup.D("align-items", "center")),
			markup.Kids(
				markup.El("button",
					markup.Attr("type", "button"),
					markup.Class("MuiIconButton-root"),
					markup.Attr("aria-label", c.Label),
					markup.Flag("disabled", c.Disabled),
					kit.Action(render.EventPress, ""),
					markup.Style(surface(
						markup.D("width", m.ControlSize),
						markup.D("height", m.ControlSize),
						markup.D("padding", "0"),
					)...),
					markup.Kids(kit.Icon(icon, m.IconSize)),
				),
				markup.El("button",
					markup.Attr("type", "button"),
					markup.Class("MuiButton-root", "MuiButton-"+variant(p.Config.Variant)),
					markup.Flag("disabled", c.Disabled),
					kit.Action(render.EventPress, ""),
					markup.Style(surface(
						markup.D("padding", style.Padding(s.Padding)),
						markup.D("text-transform", "uppercase"),
					)...),
					markup.Kids(kit.Icon(icon, m.IconSize), markup.El("span", markup.Text(c.Label))),
				),
			),
		)
	}
}

func iconButtonCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()

	var f jsx.File
	f.Use(pkgCore, "IconButton", "Button")
	icon := iconImport(&f, icons.Material(c.Icon))

	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("IconButton", jsx.Attrs(
			jsx.A("aria-label", c.Label),
			jsx.A("size", size(p.Size())),
			jsx.Flag("disabled", c.Disabled),
			jsx.V("sx", sx(o)),
		), jsx.El(icon, nil)),
	})
	f.Add(jsx.Component{
		Name: "CustomIconTextButton",
		Root: jsx.El("Button", jsx.Attrs(
			jsx.A("variant", variant(p.Config.Variant)),
			jsx.A("size", size(p.Size())),
			jsx.V("startIcon", jsx.JSX(jsx.El(icon, nil))),
			jsx.Flag("disabled", c.Disabled),
			jsx.V("sx", sx(o)),
		), jsx.Text(c.Label)),
	})
	return f
}
