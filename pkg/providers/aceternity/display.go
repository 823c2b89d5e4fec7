package aceternity

import (
	"golang.org/x/net/html"

	"github.com/goliatone/go-compareui/pkg/emit"
	"github.com/goliatone/go-compareui/pkg/jsx"
	"github.com/goliatone/go-compareui/pkg/markup"
	"github.com/goliatone/go-compareui/pkg/providers/internal/kit"
	"github.com/goliatone/go-compareui/pkg/render"
	"github.com/goliatone/go-compareui/pkg/style"
)

// cardView draws the hover card: the image fills the card behind a dimmed
// layer unless a background colour replaces it.
func cardView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics

	surface := []markup.Decl{
		markup.D("position", "relative"),
		markup.D("display", "flex"),
		markup.D("flex-direction", "column"),
		markup.D("justify-content", "flex-end"),
		markup.D("max-width", "20rem"),
		markup.D("min-height", "16rem"),
		markup.D("overflow", "hidden"),
		markup.D("padding", style.Padding(s.Padding)),
		markup.D("border-radius", style.CSS(s.BorderRadius)),
		markup.D("border", kit.Border(s, "", "")),
		markup.D("box-shadow", style.Or(s.Shadow, "0 20px 25px -5px rgba(0, 0, 0, 0.1)")),
		markup.D("font-family", p.Token("fontFamily", "")),
		markup.D("cursor", "pointer"),
	}
	switch {
	case s.BackgroundColor != nil:
		surface = append(surface, markup.D("background-color", style.Value(s.BackgroundColor)))
	case c.ImageVisible():
		surface = append(surface,
			markup.D("background-image", "url("+kit.CardImage+")"),
			markup.D("background-size", "cover"),
			markup.D("background-position", "center"),
		)
	default:
		surface = append(surface, markup.D("background-color", p.Token("text", "#171717")))
	}

	return func(render.State) *html.Node {
		return markup.El("div",
			kit.Action(render.EventPress, ""),
			markup.Style(surface...),
			markup.Kids(
				markup.El("div", markup.Style(
					markup.D("position", "absolute"),
					markup.D("inset", "0"),
					markup.D("background-color", "rgba(0, 0, 0, 0.3)"),
				)),
				markup.El("div",
					markup.Style(markup.D("position", "relative"), markup.D("display", "grid"), markup.D("gap", m.Gap)),
					markup.Kids(
						markup.El("h1",
							markup.Style(
								markup.D("margin", "0"),
								markup.D("font-size", "1.5rem"),
								markup.D("font-weight", "700"),
								markup.D("color", style.Or(s.TitleColor, "#f9fafb")),
							),
							markup.Text(c.Title),
						),
						markup.El("p",
							markup.Style(
								markup.D("margin", "0"),
								markup.D("font-size", style.CSS(s.FontSize)),
								markup.D("color", style.Or(s.FontColor, "#f9fafb")),
							),
							markup.Text(c.Description),
						),
					),
				),
			),
		)
	}
}

func cardCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()

	var f jsx.File
	f.Use(pkgUtils, "cn")

	surface := jsx.Obj().Set("backgroundColor", style.Value(o.BackgroundColor))
	if o.BackgroundColor == nil && c.ImageVisible() {
		surface = surface.
			Set("backgroundImage", "url("+kit.CardImage+")").
			Set("backgroundSize", "cover")
	}
	surface = surface.
		Set("border", border(o)).
		Set("borderRadius", style.CSS(o.BorderRadius)).
		Set("padding", style.Padding(o.Padding)).
		Set("boxShadow", style.Value(o.Shadow))

	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("div", jsx.Attrs(jsx.A("className", "group/card w-full max-w-xs")),
			jsx.El("div", jsx.Attrs(
				jsx.X("className", "cn(\n  "+jsx.Quote("card relative mx-auto flex h-96 max-w-sm cursor-pointer flex-col justify-between overflow-hidden rounded-xl p-4 shadow-xl")+",\n  "+jsx.Quote("transition-all duration-300 hover:shadow-2xl "+textSize(p.Size()))+"\n)"),
				jsx.V("style", surface),
			),
				jsx.El("div", jsx.Attrs(jsx.A("className", "absolute left-0 top-0 h-full w-full opacity-60 transition duration-300 group-hover/card:bg-black"))),
				jsx.El("div", jsx.Attrs(jsx.A("className", "z-10 flex flex-row items-center space-x-4"))),
				jsx.El("div", jsx.Attrs(jsx.A("className", "text content z-10")),
					jsx.El("h1", jsx.Attrs(
						jsx.A("className", "relative z-10 text-xl font-bold text-gray-50 md:text-2xl"),
						jsx.V("style", jsx.Obj().Set("color", style.Value(o.TitleColor))),
					), jsx.Text(c.Title)),
					jsx.El("p", jsx.Attrs(
						jsx.A("className", "relative z-10 my-4 text-sm font-normal text-gray-50"),
						jsx.V("style", jsx.Obj().
							Set("color", style.Value(o.FontColor)).
							Set("fontSize", style.CSS(o.FontSize))),
					), jsx.Text(c.Description)),
				),
			),
		),
	})
	return f
}
