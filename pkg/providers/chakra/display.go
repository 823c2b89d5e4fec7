package chakra

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

func accordionView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics

	return func(st render.State) *html.Node {
		rotate, state := "rotate(0deg)", "closed"
		if st.Open {
			rotate, state = "rotate(180deg)", "open"
		}
		item := markup.El("div",
			markup.Class("chakra-accordion__item"),
			markup.Data("state", state),
			markup.Kids(markup.El("button",
				markup.Attr("type", "button"),
				markup.Class("chakra-accordion__item-trigger"),
				markup.Attr("aria-expanded", boolAttr(st.Open)),
				markup.Flag("disabled", c.Disabled),
				kit.Action(render.EventToggle, ""),
				markup.Style(
					markup.D("display", "flex"),
					markup.D("width", "100%"),
					markup.D("justify-content", "space-between"),
					markup.D("align-items", "center"),
					markup.D("padding", style.Padding(s.Padding)),
					markup.D("border", "none"),
					markup.D("background", "transparent"),
					markup.D("font-family", p.Token("fontFamily", "")),
					markup.D("font-size", style.CSS(s.FontSize)),
					markup.D("font-weight", "500"),
					markup.D("color", style.Or(s.TitleColor, p.Token("text", ""))),
					markup.D("cursor", "pointer"),
				),
				markup.Kids(
					markup.El("span", markup.Text(c.Title)),
					markup.El("span",
						markup.Class("chakra-accordion__item-indicator"),
						markup.Style(markup.D("display", "inline-flex"), markup.D("transform", rotate)),
						markup.Kids(kit.Icon("expand", m.IconSize)),
					),
				),
			)),
		)
		if st.Open {
			markup.Kids(markup.El("div",
				markup.Class("chakra-accordion__item-body"),
				markup.Style(
					markup.D("padding", "0 "+m.Inset+" "+m.Inset),
					markup.D("font-size", m.FontSizeSmall),
					markup.D("color", style.Or(s.AnswerColor, p.Token("muted", ""))),
				),
				markup.Text(c.Body),
			))(item)
		}
		return markup.El("div",
			markup.Class("chakra-accordion__root"),
			markup.Style(
				markup.D("overflow", "hidden"),
				markup.D("border-radius", style.CSS(s.BorderRadius)),
				markup.D("border", kit.BorderOr(s, "1px solid "+p.Token("border", "#e2e8f0"), "1px", p.Token("border", ""))),
				markup.D("background-color", style.Value(s.BackgroundColor)),
				markup.D("box-shadow", style.Value(s.Shadow)),
			),
			markup.Kids(item),
		)
	}
}

func accordionCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()

	var f jsx.File
	f.Use(pkgCore, "Accordion", "Span")

	rootStyle := jsx.Obj().
		Set("borderRadius", style.CSS(o.BorderRadius)).
		Set("backgroundColor", style.Value(o.BackgroundColor)).
		Set("borderColor", style.Value(o.BorderColor)).
		Set("borderWidth", style.CSS(o.BorderWidth)).
		Set("borderStyle", style.Value(o.BorderStyle)).
		Set("boxShadow", style.Value(o.Shadow))

	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("Accordion.Root", jsx.Attrs(
			jsx.Flag("collapsible", true),
			jsx.A("size", size(p.Size())),
			jsx.A("variant", "enclosed"),
			jsx.V("style", rootStyle),
		),
			jsx.El("Accordion.Item", jsx.Attrs(
				jsx.A("value", "item-1"),
				jsx.Flag("disabled", c.Disabled),
			),
				jsx.El("Accordion.ItemTrigger", jsx.Attrs(
					jsx.V("style", jsx.Obj().
						Set("padding", style.Padding(o.Padding)).
						Set("color", style.Value(o.TitleColor)).
						Set("fontSize", style.CSS(o.FontSize))),
				),
					jsx.El("Span", jsx.Attrs(jsx.A("flex", "1")), jsx.Text(c.Title)),
					jsx.El("Accordion.ItemIndicator", nil),
				),
				jsx.El("Accordion.ItemContent", nil,
					jsx.El("Accordion.ItemBody", jsx.Attrs(
						jsx.V("style", jsx.Obj().Set("color", style.Value(o.AnswerColor))),
					), jsx.Text(c.Body)),
				),
			),
		),
	})
	return f
}

func cardView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics

	return func(render.State) *html.Node {
		root := markup.El("div",
			markup.Class("chakra-card__root"),
			kit.Action(render.EventPress, ""),
			markup.Style(
				markup.D("max-width", "24rem"),
				markup.D("overflow", "hidden"),
				markup.D("border-radius", style.CSS(s.BorderRadius)),
				markup.D("background-color", style.Or(s.BackgroundColor, p.Token("surface", "#fff"))),
				markup.D("border", kit.Border(s, "1px", p.Token("border", "#e2e8f0"))),
				markup.D("box-shadow", style.Value(s.Shadow)),
				markup.D("font-family", p.Token("fontFamily", "")),
				markup.D("cursor", "pointer"),
			),
		)
		if c.ImageVisible() {
			markup.Kids(markup.El("img",
				markup.Attr("src", kit.CardImage),
				markup.Attr("alt", c.Title),
				markup.Style(markup.D("display", "block"), markup.D("width", "100%"), markup.D("height", "160px"), markup.D("object-fit", "cover")),
			))(root)
		}
		markup.Kids(markup.El("div",
			markup.Class("chakra-card__body"),
			markup.Style(
				markup.D("display", "flex"),
				markup.D("flex-direction", "column"),
				markup.D("gap", m.Gap),
				markup.D("padding", style.Padding(s.Padding)),
			),
			markup.Kids(
				markup.El("h3",
					markup.Class("chakra-card__title"),
					markup.Style(
						markup.D("margin", "0"),
						markup.D("font-size", "1.125rem"),
						markup.D("font-weight", "600"),
						markup.D("color", style.Or(s.TitleColor, p.Token("text", ""))),
					),
					markup.Text(c.Title),
				),
				markup.El("p",
					markup.Class("chakra-card__description"),
					markup.Style(
						markup.D("margin", "0"),
						markup.D("font-size", m.FontSizeSmall),
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
		f.Use(pkgCore, "Image")
		media = jsx.El("Image", jsx.Attrs(
			jsx.A("src", kit.CardImage),
			jsx.A("alt", c.Title),
			jsx.A("height", "160px"),
			jsx.A("objectFit", "cover"),
		))
	}

	rootStyle := jsx.Obj().
		Set("borderRadius", style.CSS(o.BorderRadius)).
		Set("backgroundColor", style.Value(o.BackgroundColor)).
		Set("borderColor", style.Value(o.BorderColor)).
		Set("borderWidth", style.CSS(o.BorderWidth)).
		Set("borderStyle", style.Value(o.BorderStyle)).
		Set("boxShadow", style.Value(o.Shadow))

	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("Card.Root", jsx.Attrs(
			jsx.A("maxW", "sm"),
			jsx.A("overflow", "hidden"),
			jsx.A("size", size(p.Size())),
			jsx.V("style", rootStyle),
		),
			media,
			jsx.El("Card.Body", jsx.Attrs(
				jsx.A("gap", "2"),
				jsx.V("style", jsx.Obj().Set("padding", style.Padding(o.Padding))),
			),
				jsx.El("Card.Title", jsx.Attrs(
					jsx.V("style", jsx.Obj().Set("color", style.Value(o.TitleColor))),
				), jsx.Text(c.Title)),
				jsx.El("Card.Description", jsx.Attrs(
					jsx.V("style", jsx.Obj().Set("color", style.Value(o.FontColor))),
				), jsx.Text(c.Description)),
			),
		),
	})
	return f
}

func progressView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics
	pct := c.Percent()

	return func(render.State) *html.Node {
		return markup.El("div",
			markup.Class("chakra-progress__root"),
			markup.Style(markup.D("display", "flex"), markup.D("flex-direction", "column"), markup.D("gap", m.Gap)),
			markup.Kids(
				markup.El("div",
					markup.Style(
						markup.D("display", "flex"),
						markup.D("justify-content", "space-between"),
						markup.D("font-family", p.Token("fontFamily", "")),
						markup.D("font-size", m.FontSizeSmall),
						markup.D("font-weight", "500"),
						markup.D("color", style.Or(s.FontColor, p.Token("text", ""))),
					),
					markup.Kids(
						markup.El("span", markup.Class("chakra-progress__label"), markup.Text(c.Label)),
						markup.El("span", markup.Class("chakra-progress__value-text"), markup.Text(kit.Percent(pct))),
					),
				),
				markup.El("div",
					markup.Class("chakra-progress__track"),
					markup.Attr("role", "progressbar"),
					markup.Attr("aria-valuenow", strconv.Itoa(pct)),
					markup.Attr("aria-valuemin", "0"),
					markup.Attr("aria-valuemax", "100"),
					markup.Style(
						markup.D("overflow", "hidden"),
						markup.D("height", style.CSS(s.Height)),
						markup.D("border-radius", style.CSS(s.BorderRadius)),
						markup.D("background-color", style.Or(s.TrackColor, p.Token("track", ""))),
					),
					markup.Kids(markup.El("div",
						markup.Class("chakra-progress__range"),
						markup.Style(
							markup.D("height", "100%"),
							markup.D("width", kit.Percent(pct)),
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

	var f jsx.File
	f.Use(pkgCore, "HStack", "Progress")

	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("Progress.Root", jsx.Attrs(
			jsx.V("value", jsx.Num(c.Value)),
			jsx.V("max", jsx.Num(c.ProgressMax())),
			jsx.A("size", size(p.Size())),
			jsx.A("width", "100%"),
		),
			jsx.El("HStack", jsx.Attrs(jsx.A("justify", "space-between"), jsx.A("mb", "2")),
				jsx.El("Progress.Label", jsx.Attrs(
					jsx.V("style", jsx.Obj().Set("color", style.Value(o.FontColor))),
				), jsx.Text(c.Label)),
				jsx.El("Progress.ValueText", nil),
			),
			jsx.El("Progress.Track", jsx.Attrs(
				jsx.V("style", jsx.Obj().
					Set("height", style.CSS(o.Height)).
					Set("borderRadius", style.CSS(o.BorderRadius)).
					Set("backgroundColor", style.Value(o.TrackColor))),
			),
				jsx.El("Progress.Range", jsx.Attrs(
					jsx.V("style", jsx.Obj().Set("backgroundColor", style.Value(style.First(o.IndicatorColor, o.Color)))),
				)),
			),
		),
	})
	return f
}

func tabsView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics
	vertical := c.Vertical()
	active := style.Or(style.First(s.ActiveColor, s.Color), p.Token("primary", "#3182ce"))
	inactive := style.Or(s.InactiveColor, p.Token("muted", ""))
	indicator := style.Or(s.IndicatorColor, active)

	return func(st render.State) *html.Node {
		direction, listDirection, edge, orientation := "column", "row", "border-bottom", "horizontal"
		if vertical {
			direction, listDirection, edge, orientation = "row", "column", "border-right", "vertical"
		}
		list := markup.El("div",
			markup.Class("chakra-tabs__list"),
			markup.Attr("role", "tablist"),
			markup.Attr("aria-orientation", orientation),
			markup.Style(
				markup.D("display", "flex"),
				markup.D("flex-direction", listDirection),
				markup.D(edge, "1px solid "+style.Or(s.BorderColor, p.Token("border", ""))),
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
			markup.Kids(markup.El("button",
				markup.Attr("type", "button"),
				markup.Attr("role", "tab"),
				markup.Attr("aria-selected", boolAttr(on)),
				markup.Class("chakra-tabs__trigger"),
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
					markup.D("color", color),
					markup.D("cursor", "pointer"),
				),
				markup.Text(tab.Label),
			))(list)
		}
		return markup.El("div",
			markup.Class("chakra-tabs__root"),
			markup.Style(
				markup.D("display", "flex"),
				markup.D("flex-direction", direction),
				markup.D("border-radius", style.CSS(s.BorderRadius)),
				markup.D("background-color", style.Value(s.BackgroundColor)),
			),
			markup.Kids(
				list,
				markup.El("div",
					markup.Class("chakra-tabs__content"),
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
	f.Use(pkgCore, "Tabs")
	comp := jsx.Component{Name: p.Name()}
	f.State(&comp, "value", jsx.Quote(c.ActiveTab()))

	orientation := ""
	if c.Vertical() {
		orientation = "vertical"
	}
	active := style.First(o.ActiveColor, o.Color)

	list := jsx.El("Tabs.List", jsx.Attrs(
		jsx.V("style", jsx.Obj().Set("borderColor", style.Value(o.BorderColor))),
	))
	root := jsx.El("Tabs.Root", jsx.Attrs(
		jsx.X("value", "value"),
		jsx.X("onValueChange", "(details) => setValue(details.value)"),
		jsx.A("orientation", orientation),
		jsx.A("size", size(p.Size())),
		jsx.V("style", jsx.Obj().
			Set("borderRadius", style.CSS(o.BorderRadius)).
			Set("backgroundColor", style.Value(o.BackgroundColor))),
	), list)
	for _, tab := range c.Tabs {
		trigger := jsx.Obj().
			Set("padding", style.Padding(o.Padding)).
			Set("fontSize", style.CSS(o.FontSize))
		if active != nil || o.InactiveColor != nil {
			trigger = trigger.Put("color", jsx.Expr(kit.Is("value", tab.Key())+" ? "+
				quoteOr(style.Value(active))+" : "+quoteOr(style.Value(o.InactiveColor))))
		}
		list.Children = append(list.Children, jsx.El("Tabs.Trigger", jsx.Attrs(
			jsx.A("value", tab.Key()),
			jsx.Flag("disabled", c.Disabled),
			jsx.V("style", trigger),
		), jsx.Text(tab.Label)))
	}
	if o.IndicatorColor != nil {
		list.Children = append(list.Children, jsx.El("Tabs.Indicator", jsx.Attrs(
			jsx.V("style", jsx.Obj().Set("backgroundColor", style.Value(o.IndicatorColor))),
		)))
	}
	for _, tab := range c.Tabs {
		root.Children = append(root.Children, jsx.El("Tabs.Content", jsx.Attrs(
			jsx.A("value", tab.Key()),
			jsx.V("style", jsx.Obj().Set("color", style.Value(o.FontColor))),
		), jsx.Text(tab.Body)))
	}
	comp.Root = root
	f.Add(comp)
	return f
}

// quoteOr quotes s as a JS string, or yields undefined when s is empty.
func quoteOr(s string) string {
	if s == "" {
		return "undefined"
	}
	return jsx.Quote(s)
}
