package antd

import (
	"strconv"

	"golang.org/x/net/html"

	"github.com/goliatone/go-compareui/pkg/emit"
	"github.com/goliatone/go-compareui/pkg/jsx"
	"github.com/goliatone/go-compareui/pkg/markup"
	"github.com/goliatone/go-compareui/pkg/providers/internal/kit"
	"github.com/goliatone/go-compareui/pkg/render"
	"github.com/goliatone/go-compareui/pkg/style"
	"github.com/goliatone/go-compareui/pkg/widget"
)

func accordionView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics

	return func(st render.State) *html.Node {
		rotate := "rotate(0deg)"
		item := "ant-collapse-item"
		if st.Open {
			rotate, item = "rotate(90deg)", "ant-collapse-item ant-collapse-item-active"
		}
		panel := markup.El("div",
			markup.Class(item),
			markup.Kids(markup.El("div",
				markup.Class("ant-collapse-header"),
				markup.Attr("role", "button"),
				markup.Attr("aria-expanded", boolAttr(st.Open)),
				kit.Action(render.EventToggle, ""),
				markup.Style(
					markup.D("display", "flex"),
					markup.D("align-items", "center"),
					markup.D("gap", m.Gap),
					markup.D("padding", style.Padding(s.Padding)),
					markup.D("font-size", style.CSS(s.FontSize)),
					markup.D("color", style.Or(s.TitleColor, p.Token("text", ""))),
					markup.D("cursor", "pointer"),
				),
				markup.Kids(
					markup.El("span",
						markup.Class("ant-collapse-expand-icon"),
						markup.Style(markup.D("display", "inline-flex"), markup.D("transform", rotate)),
						markup.Kids(kit.Icon("chevron", m.IconSize)),
					),
					markup.El("span", markup.Class("ant-collapse-header-text"), markup.Text(c.Title)),
				),
			)),
		)
		if st.Open {
			markup.Kids(markup.El("div",
				markup.Class("ant-collapse-content"),
				markup.Style(
					markup.D("padding", m.Inset),
					markup.D("border-top", "1px solid "+style.Or(s.BorderColor, p.Token("border", "#d9d9d9"))),
					markup.D("background-color", p.Token("surface", "#fff")),
					markup.D("font-size", m.FontSizeSmall),
					markup.D("color", style.Or(s.AnswerColor, p.Token("text", ""))),
				),
				markup.Text(c.Body),
			))(panel)
		}
		return markup.El("div",
			markup.Class("ant-collapse"),
			markup.Style(
				markup.D("overflow", "hidden"),
				markup.D("font-family", p.Token("fontFamily", "")),
				markup.D("border-radius", style.CSS(s.BorderRadius)),
				markup.D("border", kit.BorderOr(s, "1px solid "+p.Token("border", "#d9d9d9"), "1px", p.Token("border", ""))),
				markup.D("background-color", style.Or(s.BackgroundColor, "rgba(0, 0, 0, 0.02)")),
				markup.D("box-shadow", style.Value(s.Shadow)),
			),
			markup.Kids(panel),
		)
	}
}

func accordionCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()

	var f jsx.File
	f.Use(pkgCore, "Collapse")

	var label jsx.Value = jsx.Str(c.Title)
	if o.TitleColor != nil || o.FontSize != nil {
		label = jsx.JSX(jsx.El("span", jsx.Attrs(
			jsx.V("style", jsx.Obj().
				Set("color", style.Value(o.TitleColor)).
				Set("fontSize", style.CSS(o.FontSize))),
		), jsx.Text(c.Title)))
	}
	var body jsx.Value = jsx.Str(c.Body)
	if o.AnswerColor != nil {
		body = jsx.JSX(jsx.El("p", jsx.Attrs(
			jsx.V("style", jsx.Obj().Set("color", style.Value(o.AnswerColor))),
		), jsx.Text(c.Body)))
	}

	item := jsx.Obj(
		jsx.E("key", jsx.Str("1")),
		jsx.E("label", label),
		jsx.E("children", body),
	)
	if p.Styles().Padding != nil {
		item = item.Put("styles", jsx.Obj().Put("header", jsx.Obj().Set("padding", style.Padding(o.Padding))))
	}

	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("Collapse", jsx.Attrs(
			jsx.V("items", jsx.Arr(item)),
			jsx.A("size", size(p.Size())),
			jsx.A("collapsible", collapsible(c.Disabled)),
			jsx.V("style", jsx.Obj().
				Set("borderRadius", style.CSS(o.BorderRadius)).
				Set("backgroundColor", style.Value(o.BackgroundColor)).
				Set("borderColor", style.Value(o.BorderColor)).
				Set("borderWidth", style.CSS(o.BorderWidth)).
				Set("borderStyle", style.Value(o.BorderStyle)).
				Set("boxShadow", style.Value(o.Shadow))),
		)),
	})
	return f
}

func cardView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics

	return func(render.State) *html.Node {
		root := markup.El("div",
			markup.Class("ant-card", "ant-card-bordered", "ant-card-hoverable"),
			kit.Action(render.EventPress, ""),
			markup.Style(
				markup.D("width", "300px"),
				markup.D("overflow", "hidden"),
				markup.D("border-radius", style.CSS(s.BorderRadius)),
				markup.D("background-color", style.Or(s.BackgroundColor, p.Token("surface", "#fff"))),
				markup.D("border", kit.Border(s, "1px", p.Token("border", "#f0f0f0"))),
				markup.D("box-shadow", style.Value(s.Shadow)),
				markup.D("font-family", p.Token("fontFamily", "")),
				markup.D("cursor", "pointer"),
			),
		)
		if c.ImageVisible() {
			markup.Kids(markup.El("div",
				markup.Class("ant-card-cover"),
				markup.Kids(markup.El("img",
					markup.Attr("alt", c.Title),
					markup.Attr("src", kit.CardImage),
					markup.Style(markup.D("display", "block"), markup.D("width", "100%"), markup.D("height", "140px"), markup.D("object-fit", "cover")),
				)),
			))(root)
		}
		markup.Kids(markup.El("div",
			markup.Class("ant-card-body"),
			markup.Style(markup.D("padding", style.Padding(s.Padding))),
			markup.Kids(markup.El("div",
				markup.Class("ant-card-meta"),
				markup.Style(markup.D("display", "flex"), markup.D("flex-direction", "column"), markup.D("gap", m.Gap)),
				markup.Kids(
					markup.El("div",
						markup.Class("ant-card-meta-title"),
						markup.Style(
							markup.D("font-size", "16px"),
							markup.D("font-weight", "600"),
							markup.D("color", style.Or(s.TitleColor, p.Token("text", ""))),
						),
						markup.Text(c.Title),
					),
					markup.El("div",
						markup.Class("ant-card-meta-description"),
						markup.Style(
							markup.D("font-size", m.FontSizeSmall),
							markup.D("color", style.Or(s.FontColor, p.Token("muted", ""))),
						),
						markup.Text(c.Description),
					),
				),
			)),
		))(root)
		return root
	}
}

func cardCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()

	var f jsx.File
	f.Use(pkgCore, "Card")
	f.Preamble = append(f.Preamble, "const { Meta } = Card;")

	var cover jsx.Value
	if c.ImageVisible() {
		cover = jsx.JSX(jsx.El("img", jsx.Attrs(
			jsx.A("alt", c.Title),
			jsx.A("src", kit.CardImage),
			jsx.V("style", jsx.Obj(jsx.E("height", jsx.Num(140)), jsx.E("objectFit", jsx.Str("cover")))),
		)))
	}

	var title jsx.Value = jsx.Str(c.Title)
	if o.TitleColor != nil {
		title = jsx.JSX(jsx.El("span", jsx.Attrs(
			jsx.V("style", jsx.Obj().Set("color", style.Value(o.TitleColor))),
		), jsx.Text(c.Title)))
	}
	var description jsx.Value = jsx.Str(c.Description)
	if o.FontColor != nil {
		description = jsx.JSX(jsx.El("span", jsx.Attrs(
			jsx.V("style", jsx.Obj().Set("color", style.Value(o.FontColor))),
		), jsx.Text(c.Description)))
	}

	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("Card", jsx.Attrs(
			jsx.Flag("hoverable", true),
			jsx.A("size", widget.Pick(p.Size(), "small", "", "")),
			jsx.V("style", jsx.Obj(jsx.E("width", jsx.Num(300))).
				Set("borderRadius", style.CSS(o.BorderRadius)).
				Set("backgroundColor", style.Value(o.BackgroundColor)).
				Set("borderColor", style.Value(o.BorderColor)).
				Set("borderWidth", style.CSS(o.BorderWidth)).
				Set("borderStyle", style.Value(o.BorderStyle)).
				Set("boxShadow", style.Value(o.Shadow))),
			jsx.V("cover", cover),
			jsx.V("styles", jsx.Obj().Put("body", jsx.Obj().Set("padding", style.Padding(o.Padding)))),
		),
			jsx.El("Meta", jsx.Attrs(
				jsx.V("title", title),
				jsx.V("description", description),
			)),
		),
	})
	return f
}

func collapsible(disabled bool) string {
	if disabled {
		return "disabled"
	}
	return ""
}

func progressView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics
	pct := c.Percent()

	return func(render.State) *html.Node {
		return markup.El("div",
			markup.Style(markup.D("width", "100%"), markup.D("font-family", p.Token("fontFamily", ""))),
			markup.Kids(
				markup.El("div",
					markup.Style(
						markup.D("margin-bottom", m.Gap),
						markup.D("font-size", m.FontSizeSmall),
						markup.D("font-weight", "600"),
						markup.D("color", style.Or(s.FontColor, p.Token("text", ""))),
					),
					markup.Text(c.Label),
				),
				markup.El("div",
					markup.Class("ant-progress", "ant-progress-line"),
					markup.Attr("role", "progressbar"),
					markup.Attr("aria-valuenow", strconv.Itoa(pct)),
					markup.Style(markup.D("display", "flex"), markup.D("align-items", "center"), markup.D("gap", m.Gap)),
					markup.Kids(
						markup.El("div",
							markup.Class("ant-progress-inner"),
							markup.Style(
								markup.D("flex", "1"),
								markup.D("overflow", "hidden"),
								markup.D("height", style.CSS(s.Height)),
								markup.D("border-radius", style.CSS(s.BorderRadius)),
								markup.D("background-color", style.Or(s.TrackColor, p.Token("track", "rgba(0, 0, 0, 0.06)"))),
							),
							markup.Kids(markup.El("div",
								markup.Class("ant-progress-bg"),
								markup.Style(
									markup.D("height", "100%"),
									markup.D("width", kit.Percent(pct)),
									markup.D("border-radius", style.CSS(s.BorderRadius)),
									markup.D("background-color", style.Or(style.First(s.IndicatorColor, s.Color), p.Token("primary", ""))),
								),
							)),
						),
						markup.El("span",
							markup.Class("ant-progress-text"),
							markup.Style(markup.D("font-size", m.FontSizeSmall), markup.D("color", p.Token("text", ""))),
							markup.Text(kit.Percent(pct)),
						),
					),
				),
			),
		)
	}
}

func progressCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()

	var f jsx.File
	f.Use(pkgCore, "Progress", "Typography")
	f.Preamble = append(f.Preamble, "const { Text } = Typography;")

	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("div", jsx.Attrs(jsx.V("style", jsx.Obj(jsx.E("width", jsx.Str("100%"))))),
			jsx.El("div", jsx.Attrs(jsx.V("style", jsx.Obj(jsx.E("marginBottom", jsx.Num(8))))),
				jsx.El("Text", jsx.Attrs(
					jsx.Flag("strong", true),
					jsx.V("style", jsx.Obj().Set("color", style.Value(o.FontColor))),
				), jsx.Text(c.Label)),
			),
			jsx.El("Progress", jsx.Attrs(
				jsx.V("percent", jsx.Num(float64(c.Percent()))),
				jsx.A("size", widget.Pick(p.Size(), "small", "", "")),
				jsx.V("strokeWidth", pixels(o.Height)),
				jsx.A("strokeColor", style.Value(style.First(o.IndicatorColor, o.Color))),
				jsx.A("trailColor", style.Value(o.TrackColor)),
				jsx.A("strokeLinecap", linecap(o)),
			)),
		),
	})
	return f
}

// linecap squares the bar ends when the radius is explicitly zero.
func linecap(o style.Override) string {
	if o.BorderRadius == nil {
		return ""
	}
	if px, ok := o.BorderRadius.Pixels(); ok && px == 0 {
		return "square"
	}
	return ""
}

func tabsView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics
	vertical := c.Vertical()
	active := style.Or(style.First(s.ActiveColor, s.Color), p.Token("primary", "#1677ff"))
	inactive := style.Or(s.InactiveColor, p.Token("text", ""))
	indicator := style.Or(s.IndicatorColor, active)

	return func(st render.State) *html.Node {
		direction, listDirection, edge, placement := "column", "row", "border-bottom", "top"
		if vertical {
			direction, listDirection, edge, placement = "row", "column", "border-right", "left"
		}
		nav := markup.El("div",
			markup.Class("ant-tabs-nav"),
			markup.Attr("role", "tablist"),
			markup.Style(
				markup.D("display", "flex"),
				markup.D("flex-direction", listDirection),
				markup.D("gap", tabGap(vertical, m.Inset)),
				markup.D(edge, "1px solid "+style.Or(s.BorderColor, p.Token("border", "#f0f0f0"))),
			),
		)
		var body string
		for _, tab := range c.Tabs {
			on := tab.Key() == st.Selected
			color, mark := inactive, "2px solid transparent"
			if on {
				body = tab.Body
				color, mark = active, "2px solid "+indicator
			}
			markup.Kids(markup.El("div",
				markup.Class("ant-tabs-tab"),
				markup.Attr("role", "tab"),
				markup.Attr("aria-selected", boolAttr(on)),
				kit.Action(render.EventSelect, tab.Key()),
				markup.Style(
					markup.D("padding", style.Padding(s.Padding)),
					markup.D(edge, mark),
					markup.D("font-size", style.CSS(s.FontSize)),
					markup.D("color", color),
					markup.D("cursor", "pointer"),
				),
				markup.Text(tab.Label),
			))(nav)
		}
		return markup.El("div",
			markup.Class("ant-tabs", "ant-tabs-"+placement),
			markup.Style(
				markup.D("display", "flex"),
				markup.D("flex-direction", direction),
				markup.D("font-family", p.Token("fontFamily", "")),
				markup.D("border-radius", style.CSS(s.BorderRadius)),
				markup.D("background-color", style.Value(s.BackgroundColor)),
			),
			markup.Kids(
				nav,
				markup.El("div",
					markup.Class("ant-tabs-tabpane"),
					markup.Attr("role", "tabpanel"),
					markup.Style(
						markup.D("padding", m.Inset),
						markup.D("font-size", m.FontSizeSmall),
						markup.D("color", style.Or(s.FontColor, p.Token("text", ""))),
					),
					markup.Text(body),
				),
			),
		)
	}
}

func tabGap(vertical bool, inset string) string {
	if vertical {
		return ""
	}
	return inset
}

func tabsCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()

	var f jsx.File
	f.Use(pkgCore, "Tabs")
	comp := jsx.Component{Name: p.Name()}
	f.State(&comp, "value", jsx.Quote(c.ActiveTab()))

	items := make(jsx.Array, 0, len(c.Tabs))
	for _, tab := range c.Tabs {
		items = append(items, jsx.Obj(
			jsx.E("key", jsx.Str(tab.Key())),
			jsx.E("label", jsx.Str(tab.Label)),
			jsx.E("children", jsx.Str(tab.Body)),
		))
	}

	placement := "top"
	if c.Vertical() {
		placement = "left"
	}
	active := style.First(o.ActiveColor, o.Color)
	var theme jsx.Value
	if active != nil || o.InactiveColor != nil || o.IndicatorColor != nil {
		f.Use(pkgCore, "ConfigProvider")
		theme = jsx.Obj(jsx.E("components", jsx.Obj(jsx.E("Tabs", jsx.Obj().
			Set("itemSelectedColor", style.Value(active)).
			Set("itemColor", style.Value(o.InactiveColor)).
			Set("inkBarColor", style.Value(o.IndicatorColor))))))
	}

	tabs := jsx.El("Tabs", jsx.Attrs(
		jsx.X("activeKey", "value"),
		jsx.X("onChange", "setValue"),
		jsx.V("items", items),
		jsx.A("tabPlacement", placement),
		jsx.A("size", size(p.Size())),
		jsx.V("tabBarStyle", jsx.Obj().
			Set("borderColor", style.Value(o.BorderColor)).
			Set("padding", style.Padding(o.Padding)).
			Set("fontSize", style.CSS(o.FontSize))),
		jsx.V("style", jsx.Obj().
			Set("borderRadius", style.CSS(o.BorderRadius)).
			Set("backgroundColor", style.Value(o.BackgroundColor)).
			Set("color", style.Value(o.FontColor))),
	))
	if theme != nil {
		comp.Root = jsx.El("ConfigProvider", jsx.Attrs(jsx.V("theme", theme)), tabs)
	} else {
		comp.Root = tabs
	}
	f.Add(comp)
	return f
}
