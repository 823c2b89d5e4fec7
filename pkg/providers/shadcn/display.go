package shadcn

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
			markup.Data("slot", "accordion-item"),
			markup.Data("state", state),
			markup.Style(markup.D("border-bottom", "1px solid "+style.Or(s.BorderColor, p.Token("border", "#e4e4e7")))),
			markup.Kids(markup.El("button",
				markup.Attr("type", "button"),
				markup.Data("slot", "accordion-trigger"),
				markup.Attr("aria-expanded", boolAttr(st.Open)),
				markup.Flag("disabled", c.Disabled),
				kit.Action(render.EventToggle, ""),
				markup.Style(kit.Decls(
					[]markup.Decl{
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
						markup.D("text-align", "left"),
						markup.D("color", style.Or(s.TitleColor, p.Token("text", ""))),
					},
					kit.Interactive(c.Disabled),
				)...),
				markup.Kids(
					markup.El("span", markup.Text(c.Title)),
					markup.El("span",
						markup.Style(markup.D("display", "inline-flex"), markup.D("transform", rotate), markup.D("color", p.Token("muted", ""))),
						markup.Kids(kit.Icon("expand", m.IconSize)),
					),
				),
			)),
		)
		if st.Open {
			markup.Kids(markup.El("div",
				markup.Data("slot", "accordion-content"),
				markup.Style(
					markup.D("padding-bottom", m.Inset),
					markup.D("font-family", p.Token("fontFamily", "")),
					markup.D("font-size", m.FontSizeSmall),
					markup.D("color", style.Or(s.AnswerColor, p.Token("muted", ""))),
				),
				markup.Text(c.Body),
			))(item)
		}
		return markup.El("div",
			markup.Data("slot", "accordion"),
			markup.Style(
				markup.D("width", "100%"),
				markup.D("border-radius", style.CSS(s.BorderRadius)),
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
	f.Use(ui("accordion"), "Accordion", "AccordionContent", "AccordionItem", "AccordionTrigger")

	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("Accordion", jsx.Attrs(
			jsx.A("type", "single"),
			jsx.Flag("collapsible", true),
			jsx.A("className", kit.Classes("w-full", textSize(p.Size()))),
			jsx.V("style", jsx.Obj().
				Set("borderRadius", style.CSS(o.BorderRadius)).
				Set("backgroundColor", style.Value(o.BackgroundColor)).
				Set("boxShadow", style.Value(o.Shadow))),
		),
			jsx.El("AccordionItem", jsx.Attrs(
				jsx.A("value", "item-1"),
				jsx.Flag("disabled", c.Disabled),
				jsx.V("style", jsx.Obj().
					Set("borderColor", style.Value(o.BorderColor)).
					Set("borderWidth", style.CSS(o.BorderWidth)).
					Set("borderStyle", style.Value(o.BorderStyle))),
			),
				jsx.El("AccordionTrigger", jsx.Attrs(
					jsx.V("style", jsx.Obj().
						Set("padding", style.Padding(o.Padding)).
						Set("color", style.Value(o.TitleColor)).
						Set("fontSize", style.CSS(o.FontSize))),
				), jsx.Text(c.Title)),
				jsx.El("AccordionContent", jsx.Attrs(
					jsx.V("style", jsx.Obj().Set("color", style.Value(o.AnswerColor))),
				), jsx.Text(c.Body)),
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
			markup.Data("slot", "card"),
			kit.Action(render.EventPress, ""),
			markup.Style(
				markup.D("display", "flex"),
				markup.D("flex-direction", "column"),
				markup.D("max-width", "24rem"),
				markup.D("overflow", "hidden"),
				markup.D("border-radius", style.CSS(s.BorderRadius)),
				markup.D("background-color", style.Or(s.BackgroundColor, p.Token("surface", "#fff"))),
				markup.D("border", kit.Border(s, "1px", p.Token("border", "#e4e4e7"))),
				markup.D("box-shadow", style.Or(s.Shadow, p.Token("shadow", ""))),
				markup.D("font-family", p.Token("fontFamily", "")),
				markup.D("cursor", "pointer"),
			),
		)
		if c.ImageVisible() {
			markup.Kids(markup.El("img",
				markup.Attr("src", kit.CardImage),
				markup.Attr("alt", c.Title),
				markup.Style(markup.D("display", "block"), markup.D("width", "100%"), markup.D("height", "192px"), markup.D("object-fit", "cover")),
			))(root)
		}
		markup.Kids(markup.El("div",
			markup.Data("slot", "card-header"),
			markup.Style(
				markup.D("display", "grid"),
				markup.D("gap", "6px"),
				markup.D("padding", style.Padding(s.Padding)),
			),
			markup.Kids(
				markup.El("div",
					markup.Data("slot", "card-title"),
					markup.Style(
						markup.D("font-weight", "600"),
						markup.D("line-height", "1"),
						markup.D("color", style.Or(s.TitleColor, p.Token("text", ""))),
					),
					markup.Text(c.Title),
				),
				markup.El("div",
					markup.Data("slot", "card-description"),
					markup.Style(
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
	f.Use(ui("card"), "Card", "CardDescription", "CardHeader", "CardTitle")

	var media *jsx.Element
	if c.ImageVisible() {
		media = jsx.El("img", jsx.Attrs(
			jsx.A("src", kit.CardImage),
			jsx.A("alt", c.Title),
			jsx.A("className", "h-48 w-full object-cover"),
		))
	}

	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("Card", jsx.Attrs(
			jsx.A("className", kit.Classes("max-w-sm overflow-hidden", textSize(p.Size()))),
			jsx.V("style", jsx.Obj().
				Set("borderRadius", style.CSS(o.BorderRadius)).
				Set("backgroundColor", style.Value(o.BackgroundColor)).
				Set("borderColor", style.Value(o.BorderColor)).
				Set("borderWidth", style.CSS(o.BorderWidth)).
				Set("borderStyle", style.Value(o.BorderStyle)).
				Set("boxShadow", style.Value(o.Shadow))),
		),
			media,
			jsx.El("CardHeader", jsx.Attrs(
				jsx.V("style", jsx.Obj().Set("padding", style.Padding(o.Padding))),
			),
				jsx.El("CardTitle", jsx.Attrs(
					jsx.V("style", jsx.Obj().Set("color", style.Value(o.TitleColor))),
				), jsx.Text(c.Title)),
				jsx.El("CardDescription", jsx.Attrs(
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
			markup.Style(markup.D("display", "grid"), markup.D("gap", m.Gap), markup.D("width", "100%")),
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
						markup.El("span", markup.Text(c.Label)),
						markup.El("span", markup.Style(markup.D("color", p.Token("muted", ""))), markup.Text(kit.Percent(pct))),
					),
				),
				markup.El("div",
					markup.Data("slot", "progress"),
					markup.Attr("role", "progressbar"),
					markup.Attr("aria-valuenow", strconv.Itoa(pct)),
					markup.Attr("aria-valuemin", "0"),
					markup.Attr("aria-valuemax", "100"),
					markup.Style(
						markup.D("overflow", "hidden"),
						markup.D("height", style.CSS(s.Height)),
						markup.D("border-radius", style.CSS(s.BorderRadius)),
						markup.D("background-color", style.Or(s.TrackColor, p.Token("track", "#f4f4f5"))),
					),
					markup.Kids(markup.El("div",
						markup.Data("slot", "progress-indicator"),
						markup.Style(
							markup.D("height", "100%"),
							markup.D("width", kit.Percent(pct)),
							markup.D("background-color", style.Or(style.First(s.IndicatorColor, s.Color), p.Token("primary", "#18181b"))),
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
	f.Use(ui("progress"), "Progress")

	var indicator jsx.Value
	if color := style.First(o.IndicatorColor, o.Color); color != nil {
		indicator = jsx.Str("[&>[data-slot=progress-indicator]]:bg-[" + style.Value(color) + "]")
	}
	progress := jsx.El("Progress", jsx.Attrs(
		jsx.V("value", jsx.Num(float64(c.Percent()))),
		jsx.V("className", indicator),
		jsx.V("style", jsx.Obj().
			Set("height", style.CSS(o.Height)).
			Set("borderRadius", style.CSS(o.BorderRadius)).
			Set("backgroundColor", style.Value(o.TrackColor))),
	))

	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("div", jsx.Attrs(jsx.A("className", kit.Classes("grid w-full gap-2", textSize(p.Size())))),
			jsx.El("div", jsx.Attrs(
				jsx.A("className", "flex justify-between text-sm font-medium"),
				jsx.V("style", jsx.Obj().Set("color", style.Value(o.FontColor))),
			),
				jsx.El("span", nil, jsx.Text(c.Label)),
				jsx.El("span", jsx.Attrs(jsx.A("className", "text-muted-foreground")), jsx.Text(kit.Percent(c.Percent()))),
			),
			progress,
		),
	})
	return f
}

func tabsView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics
	vertical := c.Vertical()
	active := style.Or(style.First(s.ActiveColor, s.Color), p.Token("text", "#09090b"))
	inactive := style.Or(s.InactiveColor, p.Token("muted", ""))
	indicator := style.Or(s.IndicatorColor, p.Token("surface", "#fff"))

	return func(st render.State) *html.Node {
		direction, listDirection, orientation := "column", "row", "horizontal"
		if vertical {
			direction, listDirection, orientation = "row", "column", "vertical"
		}
		list := markup.El("div",
			markup.Data("slot", "tabs-list"),
			markup.Attr("role", "tablist"),
			markup.Attr("aria-orientation", orientation),
			markup.Style(
				markup.D("display", "inline-flex"),
				markup.D("flex-direction", listDirection),
				markup.D("gap", "2px"),
				markup.D("padding", "3px"),
				markup.D("border-radius", style.CSS(s.BorderRadius)),
				markup.D("background-color", style.Or(s.BackgroundColor, p.Token("track", "#f4f4f5"))),
			),
		)
		var body string
		for _, tab := range c.Tabs {
			on := tab.Key() == st.Selected
			color, fill, state := inactive, "transparent", "inactive"
			if on {
				body = tab.Body
				color, fill, state = active, indicator, "active"
			}
			markup.Kids(markup.El("button",
				markup.Attr("type", "button"),
				markup.Attr("role", "tab"),
				markup.Attr("aria-selected", boolAttr(on)),
				markup.Data("slot", "tabs-trigger"),
				markup.Data("state", state),
				markup.Flag("disabled", c.Disabled),
				kit.Action(render.EventSelect, tab.Key()),
				markup.Style(kit.Decls(
					[]markup.Decl{
						markup.D("padding", style.Padding(s.Padding)),
						markup.D("border", "none"),
						markup.D("border-radius", style.CSS(s.BorderRadius)),
						markup.D("background-color", fill),
						markup.D("font-family", p.Token("fontFamily", "")),
						markup.D("font-size", style.CSS(s.FontSize)),
						markup.D("font-weight", "500"),
						markup.D("color", color),
					},
					kit.Interactive(c.Disabled),
				)...),
				markup.Text(tab.Label),
			))(list)
		}
		return markup.El("div",
			markup.Data("slot", "tabs"),
			markup.Data("orientation", orientation),
			markup.Style(markup.D("display", "flex"), markup.D("flex-direction", direction), markup.D("gap", m.Gap)),
			markup.Kids(
				list,
				markup.El("div",
					markup.Data("slot", "tabs-content"),
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
	f.Use(ui("tabs"), "Tabs", "TabsContent", "TabsList", "TabsTrigger")
	comp := jsx.Component{Name: p.Name()}
	f.State(&comp, "value", jsx.Quote(c.ActiveTab()))

	orientation, listClass := "", ""
	if c.Vertical() {
		orientation, listClass = "vertical", "h-auto flex-col"
	}
	active := style.First(o.ActiveColor, o.Color)

	list := jsx.El("TabsList", jsx.Attrs(
		jsx.A("className", listClass),
		jsx.V("style", jsx.Obj().
			Set("borderRadius", style.CSS(o.BorderRadius)).
			Set("backgroundColor", style.Value(o.BackgroundColor))),
	))
	root := jsx.El("Tabs", jsx.Attrs(
		jsx.X("value", "value"),
		jsx.X("onValueChange", "setValue"),
		jsx.A("orientation", orientation),
		jsx.A("className", kit.Classes(textSize(p.Size()))),
	), list)
	for _, tab := range c.Tabs {
		trigger := jsx.Obj().
			Set("padding", style.Padding(o.Padding)).
			Set("fontSize", style.CSS(o.FontSize))
		if active != nil || o.InactiveColor != nil {
			trigger = trigger.Put("color", jsx.Expr(kit.Is("value", tab.Key())+" ? "+
				quoteOr(style.Value(active))+" : "+quoteOr(style.Value(o.InactiveColor))))
		}
		if o.IndicatorColor != nil {
			trigger = trigger.Put("backgroundColor", jsx.Expr(kit.Is("value", tab.Key())+" ? "+
				jsx.Quote(style.Value(o.IndicatorColor))+" : undefined"))
		}
		list.Children = append(list.Children, jsx.El("TabsTrigger", jsx.Attrs(
			jsx.A("value", tab.Key()),
			jsx.Flag("disabled", c.Disabled),
			jsx.V("style", trigger),
		), jsx.Text(tab.Label)))
	}
	for _, tab := range c.Tabs {
		root.Children = append(root.Children, jsx.El("TabsContent", jsx.Attrs(
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
