package mui

import (
	"strconv"

	"golang.org/x/net/html"

	"github.com/goliatone/go-compareui/pkg/emit"
	"github.com/goliatone/go-compareui/pkg/jsx"
	"github.com/goliatone/go-compareui/pkg/markup"
	"github.com/goliatone/go-compareui/pkg/providers/internal/kit"
	"github.com/goliatone/go-compareui/pkg/render"
	"github.com/goliatone/go-compareui/pkg/style"
)

func progressView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics
	pct := c.Percent()

	return func(render.State) *html.Node {
		return markup.El("div",
			markup.Style(markup.D("display", "flex"), markup.D("flex-direction", "column"), markup.D("gap", m.Gap)),
			markup.Kids(
				markup.El("div",
					markup.Style(
						markup.D("display", "flex"),
						markup.D("justify-content", "space-between"),
						markup.D("font-family", p.Token("fontFamily", "")),
						markup.D("font-size", m.FontSizeSmall),
						markup.D("color", style.Or(s.FontColor, p.Token("muted", ""))),
					),
					markup.Kids(
						markup.El("span", markup.Text(c.Label)),
						markup.El("span", markup.Text(kit.Percent(pct))),
					),
				),
				markup.El("div",
					markup.Class("MuiLinearProgress-root", "MuiLinearProgress-determinate"),
					markup.Attr("role", "progressbar"),
					markup.Attr("aria-valuenow", strconv.Itoa(pct)),
					markup.Attr("aria-valuemin", "0"),
					markup.Attr("aria-valuemax", "100"),
					markup.Style(
						markup.D("position", "relative"),
						markup.D("overflow", "hidden"),
						markup.D("height", style.CSS(s.Height)),
						markup.D("border-radius", style.CSS(s.BorderRadius)),
						markup.D("background-color", style.Or(s.TrackColor, p.Token("track", ""))),
					),
					markup.Kids(markup.El("span",
						markup.Class("MuiLinearProgress-bar"),
						markup.Style(
							markup.D("display", "block"),
							markup.D("height", "100%"),
							markup.D("width", kit.Percent(pct)),
							markup.D("border-radius", style.CSS(s.BorderRadius)),
							markup.D("background-color", style.Or(style.First(s.IndicatorColor, s.Color), p.Token("primary", ""))),
						),
					)),
				),
			),
		)
	}
}

func progressCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()
	pct := c.Percent()

	var f jsx.File
	f.Use(pkgCore, "Box", "LinearProgress", "Typography")

	bar := jsx.Obj().
		Set("bgcolor", style.Value(style.First(o.IndicatorColor, o.Color))).
		Set("borderRadius", style.CSS(o.BorderRadius))
	track := jsx.Obj().
		Set("height", style.CSS(o.Height)).
		Set("borderRadius", style.CSS(o.BorderRadius)).
		Set("bgcolor", style.Value(o.TrackColor)).
		Put("& .MuiLinearProgress-bar", bar)

	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("Box", jsx.Attrs(jsx.V("sx", jsx.Obj(jsx.E("width", jsx.Str("100%"))))),
			jsx.El("Box", jsx.Attrs(jsx.V("sx", jsx.Obj(
				jsx.E("display", jsx.Str("flex")),
				jsx.E("justifyContent", jsx.Str("space-between")),
				jsx.E("mb", jsx.Num(1)),
			))),
				jsx.El("Typography", jsx.Attrs(
					jsx.A("variant", "body2"),
					jsx.V("sx", jsx.Obj().Set("color", style.Value(o.FontColor))),
				), jsx.Text(c.Label)),
				jsx.El("Typography", jsx.Attrs(jsx.A("variant", "body2")), jsx.Text(kit.Percent(pct))),
			),
			jsx.El("LinearProgress", jsx.Attrs(
				jsx.A("variant", "determinate"),
				jsx.V("value", jsx.Num(float64(pct))),
				jsx.V("sx", track),
			)),
		),
	})
	return f
}
