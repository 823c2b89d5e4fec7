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

func tabsView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics
	vertical := c.Vertical()
	active := style.Or(style.First(s.ActiveColor, s.Color), p.Token("primary", "#1976d2"))
	inactive := style.Or(s.InactiveColor, p.Token("muted", ""))
	indicator := style.Or(s.IndicatorColor, active)

	return func(st render.State) *html.Node {
		direction, listDirection, edge, orientation := "column", "row", "border-bottom", ""
		if vertical {
			direction, listDirection, edge, orientation = "row", "column", "border-right", "vertical"
		}
		list := markup.El("div",
			markup.Class("MuiTabs-root"),
			markup.Attr("role", "tablist"),
			markup.AttrIf("aria-orientation", orientation),
			markup.Style(
				markup.D("display", "flex"),
				markup.D("flex-direction", listDirection),
				markup.D(edge, "1px solid "+style.Or(s.BorderColor, p.Token("border", ""))),
			),
		)
		var body string
		for _, tab := range c.Tabs {
			on := tab.Key() == st.Selected
			if on {
				body = tab.Body
			}
			color, mark := inactive, "2px solid transparent"
			if on {
				color, mark = active, "2px solid "+indicator
			}
			markup.Kids(markup.El("button",
				markup.Attr("type", "button"),
				markup.Attr("role", "tab"),
				markup.Attr("aria-selected", boolAttr(on)),
				markup.Class("MuiTab-root"),
				markup.Flag("disabled", c.Disabled),
				kit.Action(render.EventSelect, tab.Key()),
				markup.Style(
					markup.D("padding", style.Padding(s.Padding)),
					markup.D("border", "none"),
					markup.D(edge, mark),
					markup.D("background", "transparent"),
					markup.D("font-family", p.Token("fontFamily", "")),
					markup.D("font-size", style.CSS(s.FontSize)),
					markup.D("font-weight", "500"),
					markup.D("text-transform", "uppercase"),
					markup.D("color", color),
					markup.D("cursor", "pointer"),
				),
				markup.Text(tab.Label),
			))(list)
		}
		return markup.El("div",
			markup.Style(
				markup.D("display", "flex"),
				markup.D("flex-direction", direction),
				markup.D("border-radius", style.CSS(s.BorderRadius)),
				markup.D("background-color", style.Value(s.BackgroundColor)),
			),
			markup.Kids(
				list,
				markup.El("div",
					markup.Attr("role", "tabpanel"),
					markup.Style(
						markup.D("padding", m.Inset),
						markup.D("font-family", p.Token("fontFamily", "")),
						markup.D("font-size", m.FontSizeSmall),
						markup.D("color", style.Or(s.FontColor, p.Token("text", ""))),
					),
					markup.Text(body),
				),
			),
		)
	}
}

func tabsCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()

	var f jsx.File
	f.Use(pkgCore, "Box", "Tabs", "Tab", "Typography")
	comp := jsx.Component{Name: p.Name()}
	f.State(&comp, "value", jsx.Quote(c.ActiveTab()))

	orientation := ""
	boxSx := jsx.Obj(jsx.E("width", jsx.Str("100%")))
	if c.Vertical() {
		orientation = "vertical"
		boxSx = jsx.Obj(jsx.E("display", jsx.Str("flex")))
	}
	boxSx = boxSx.
		Set("borderRadius", style.CSS(o.BorderRadius)).
		Set("bgcolor", style.Value(o.BackgroundColor))

	tabsSx := jsx.Obj().
		Set("borderColor", style.Value(o.BorderColor)).
		Put("& .MuiTab-root", jsx.Obj().
			Set("color", style.Value(o.InactiveColor)).
			Set("padding", style.Padding(o.Padding)).
			Set("fontSize", style.CSS(o.FontSize))).
		Put("& .MuiTab-root.Mui-selected", jsx.Obj().Set("color", style.Value(style.First(o.ActiveColor, o.Color)))).
		Put("& .MuiTabs-indicator", jsx.Obj().Set("backgroundColor", style.Value(o.IndicatorColor)))

	tabs := jsx.El("Tabs", jsx.Attrs(
		jsx.X("value", "value"),
		jsx.X("onChange", "(_, next) => setValue(next)"),
		jsx.A("orientation", orientation),
		jsx.V("sx", tabsSx),
	))
	root := jsx.El("Box", jsx.Attrs(jsx.V("sx", boxSx)), tabs)
	for _, tab := range c.Tabs {
		tabs.Children = append(tabs.Children, jsx.El("Tab", jsx.Attrs(
			jsx.A("label", tab.Label),
			jsx.A("value", tab.Key()),
			jsx.Flag("disabled", c.Disabled),
		)))
		root.Children = append(root.Children, jsx.When(kit.Is("value", tab.Key()),
			jsx.El("Box", jsx.Attrs(jsx.V("sx", jsx.Obj(jsx.E("p", jsx.Num(3))))),
				jsx.El("Typography", jsx.Attrs(
					jsx.V("sx", jsx.Obj().Set("color", style.Value(o.FontColor))),
				), jsx.Text(tab.Body)),
			),
		))
	}
	comp.Root = root
	f.Add(comp)
	return f
}
