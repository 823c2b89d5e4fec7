package mui

import (
	"golang.org/x/net/html"

	"github.com/goliatone/go-compareui/pkg/emit"
	"github.com/goliatone/go-compareui/pkg/jsx"
	"github.com/goliatone/go-compareui/pkg/markup"
	"github.com/goliatone/go-compareui/pkg/providers/internal/kit"
	"github.com/goliatone/go-compareui/pkg/render"
	"github.com/goliatone/go-compareui/pkg/style"
)

func cardView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics

	return func(render.State) *html.Node {
		root := markup.El("div",
			markup.Class("MuiCard-root", "MuiPaper-elevation1"),
			kit.Action(render.EventPress, ""),
			markup.Style(
				markup.D("max-width", "345px"),
				markup.D("overflow", "hidden"),
				markup.D("border-radius", style.CSS(s.BorderRadius)),
				markup.D("background-color", style.Or(s.BackgroundColor, p.Token("surface", "#fff"))),
				markup.D("border", kit.BorderOr(s, "", "1px", p.Token("border", ""))),
				markup.D("box-shadow", style.Or(s.Shadow, p.Token("shadow", ""))),
				markup.D("font-family", p.Token("fontFamily", "")),
				markup.D("cursor", "pointer"),
			),
		)
		if c.ImageVisible() {
			markup.Kids(markup.El("div",
				markup.Class("MuiCardMedia-root"),
				markup.Attr("role", "img"),
				markup.Attr("aria-label", c.Title),
				markup.Style(
					markup.D("height", "140px"),
					markup.D("background-image", "url("+kit.CardImage+")"),
					markup.D("background-size", "cover"),
					markup.D("background-position", "center"),
				),
			))(root)
		}
		markup.Kids(markup.El("div",
			markup.Class("MuiCardContent-root"),
			markup.Style(markup.D("padding", style.Padding(s.Padding))),
			markup.Kids(
				markup.El("h5",
					markup.Class("MuiTypography-h5"),
					markup.Style(
						markup.D("margin", "0 0 0.35em"),
						markup.D("font-size", "1.5rem"),
						markup.D("font-weight", "400"),
						markup.D("color", style.Or(s.TitleColor, p.Token("text", ""))),
					),
					markup.Text(c.Title),
				),
				markup.El("p",
					markup.Class("MuiTypography-body2"),
					markup.Style(
						markup.D("margin", "0"),
						markup.D("font-size", m.FontSizeSmall),
						markup.D("line-height", m.LineHeight),
						markup.D("color", style.Or(s.FontColor, p.Token("muted", ""))),
					),
					markup.Text(c.Description),
				),
			),
		))(root)
		return root
	}
}

func cardCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()

	var f jsx.File
	f.Use(pkgCore, "Card")
	var media *jsx.Element
	if c.ImageVisible() {
		f.Use(pkgCore, "CardMedia")
		media = jsx.El("CardMedia", jsx.Attrs(
			jsx.V("sx", jsx.Obj(jsx.E("height", jsx.Num(140)))),
			jsx.A("image", kit.CardImage),
			jsx.A("title", c.Title),
		))
	}
	f.Use(pkgCore, "CardContent", "Typography")

	cardSx := jsx.Obj(jsx.E("maxWidth", jsx.Num(345))).
		Set("borderRadius", style.CSS(o.BorderRadius)).
		Set("bgcolor", style.Value(o.BackgroundColor)).
		Set("borderColor", style.Value(o.BorderColor)).
		Set("borderWidth", style.CSS(o.BorderWidth)).
		Set("borderStyle", style.Value(o.BorderStyle)).
		Set("boxShadow", style.Value(o.Shadow))

	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("Card", jsx.Attrs(jsx.V("sx", cardSx)),
			media,
			jsx.El("CardContent", jsx.Attrs(jsx.V("sx", jsx.Obj().Set("padding", style.Padding(o.Padding)))),
				jsx.El("Typography", jsx.Attrs(
					jsx.Flag("gutterBottom", true),
					jsx.A("variant", "h5"),
					jsx.A("component", "div"),
					jsx.V("sx", jsx.Obj().Set("color", style.Value(o.TitleColor))),
				), jsx.Text(c.Title)),
				jsx.El("Typography", jsx.Attrs(
					jsx.A("variant", "body2"),
					jsx.A("color", "text.secondary"),
					jsx.V("sx", jsx.Obj().Set("color", style.Value(o.FontColor))),
				), jsx.Text(c.Description)),
			),
		),
	})
	return f
}
