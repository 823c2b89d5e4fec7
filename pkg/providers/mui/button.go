package mui

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/goliatone/go-compareui/pkg/emit"
	"github.com/goliatone/go-compareui/pkg/jsx"
	"github.com/goliatone/go-compareui/pkg/markup"
	"github.com/goliatone/go-compareui/pkg/providers/internal/kit"
	"github.com/goliatone/go-compareui/pkg/render"
	"github.com/goliatone/go-compareui/pkg/style"
)

func buttonView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	v := variant(p.Config.Variant)
	primary := p.Token("primary", "#1976d2")

	bg, fg, border, shadow := "transparent", primary, "1px solid "+primary, ""
	if v == "contained" {
		bg, fg, border, shadow = primary, p.Token("onPrimary", "#fff"), "none", p.Token("shadow", "")
	}

	return func(render.State) *html.Node {
		return markup.El("button",
			markup.Attr("type", "button"),
			markup.Class("MuiButton-root", "MuiButton-"+v, "MuiButton-size"+title(size(p.Size()))),
			markup.Flag("disabled", c.Disabled),
			kit.Action(render.EventPress, ""),
			markup.Style(kit.Decls(
				[]markup.Decl{
					markup.D("display", "inline-flex"),
					markup.D("align-items", "center"),
					markup.D("justify-content", "center"),
					markup.D("padding", style.Padding(s.Padding)),
					markup.D("border-radius", style.CSS(s.BorderRadius)),
					markup.D("font-family", p.Token("fontFamily", "")),
					markup.D("font-size", style.CSS(s.FontSize)),
					markup.D("font-weight", "500"),
					markup.D("text-transform", "uppercase"),
					markup.D("letter-spacing", "0.02857em"),
					markup.D("background-color", style.Or(s.BackgroundColor, bg)),
					markup.D("color", style.Or(s.FontColor, fg)),
					markup.D("border", kit.BorderOr(s, border, "1px", primary)),
					markup.D("box-shadow", style.Or(s.Shadow, shadow)),
				},
				kit.Interactive(c.Disabled),
			)...),
			markup.Text(c.Label),
		)
	}
}

func buttonCode(p emit.Props) jsx.File {
	var f jsx.File
	f.Use(pkgCore, "Button")
	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("Button", jsx.Attrs(
			jsx.A("variant", variant(p.Config.Variant)),
			jsx.A("size", size(p.Size())),
			jsx.Flag("disabled", p.Content().Disabled),
			jsx.V("sx", sx(p.Styles())),
		), jsx.Text(p.Content().Label)),
	})
	return f
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
