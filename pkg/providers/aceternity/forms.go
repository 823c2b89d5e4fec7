package aceternity

import (
	"golang.org/x/net/html"

	"github.com/goliatone/go-compareui/pkg/emit"
	"github.com/goliatone/go-compareui/pkg/icons"
	"github.com/goliatone/go-compareui/pkg/jsx"
	"github.com/goliatone/go-compareui/pkg/markup"
	"github.com/goliatone/go-compareui/pkg/providers/internal/kit"
	"github.com/goliatone/go-compareui/pkg/render"
	"github.com/goliatone/go-compareui/pkg/style"
	"github.com/goliatone/go-compareui/pkg/widget"
)

const fieldClass = "flex h-10 w-full rounded-md border border-input bg-background px-3 py-2 text-sm placeholder:text-muted-foreground focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring disabled:cursor-not-allowed disabled:opacity-50"

func caption(p render.Props, forID, text string) *html.Node {
	return markup.El("label",
		markup.AttrIf("for", forID),
		markup.Style(
			markup.D("display", "block"),
			markup.D("margin-bottom", "4px"),
			markup.D("font-size", "0.75rem"),
			markup.D("font-weight", "700"),
			markup.D("text-transform", "uppercase"),
			markup.D("color", style.Or(p.Style.FontColor, p.Token("text", ""))),
		),
		markup.Text(text),
	)
}

func inputView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics
	id := kit.ID("aceternity-input", c.Label)
	ring := style.Or(s.FocusColor, p.Token("primary", "#3b82f6"))

	return func(st render.State) *html.Node {
		box := markup.El("div",
			markup.Style(
				markup.D("position", "relative"),
				markup.D("display", "flex"),
				markup.D("align-items", "center"),
				markup.D("gap", m.Gap),
				markup.D("height", m.ControlSize),
				markup.D("padding", style.Padding(s.Padding)),
				markup.D("border-radius", style.CSS(s.BorderRadius)),
				markup.D("border", kit.Border(s, "1px", p.Token("border", "#e5e5e5"))),
				markup.D("background-color", style.Or(s.BackgroundColor, p.Token("surface", "#fff"))),
				markup.D("box-shadow", style.Or(s.Shadow, "0 0 0 2px transparent")),
				markup.D("outline-color", ring),
				markup.D("color", style.Or(s.TextColor, p.Token("text", ""))),
			),
		)
		if c.Icon != "" {
			markup.Kids(markup.El("span",
				markup.Style(markup.D("display", "inline-flex"), markup.D("color", p.Token("muted", "#a3a3a3"))),
				markup.Kids(kit.Icon(icons.Resolve(c.Icon), m.IconSize)),
			))(box)
		}
		markup.Kids(markup.El("input",
			markup.Attr("id", id),
			markup.Attr("type", "text"),
			markup.AttrIf("placeholder", c.Placeholder),
			markup.Attr("value", st.Text),
			markup.Flag("disabled", c.Disabled),
			kit.Action(render.EventInput, ""),
			markup.Style(
				markup.D("flex", "1"),
				markup.D("border", "none"),
				markup.D("outline", "none"),
				markup.D("background", "transparent"),
				markup.D("font-family", p.Token("fontFamily", "")),
				markup.D("font-size", style.CSS(s.FontSize)),
				markup.D("color", "inherit"),
			),
		))(box)
		return markup.El("div",
			markup.Style(markup.D("width", "100%")),
			markup.Kids(caption(p, id, c.Label), box),
		)
	}
}

func inputCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()
	id := kit.ID("input", c.Label)

	var f jsx.File
	inputStyle := jsx.Obj().
		Set("borderRadius", style.CSS(o.BorderRadius)).
		Set("borderColor", style.Value(o.BorderColor)).
		Set("borderWidth", style.CSS(o.BorderWidth)).
		Set("borderStyle", style.Value(o.BorderStyle)).
		Set("backgroundColor", style.Value(o.BackgroundColor)).
		Set("color", style.Value(o.TextColor)).
		Set("padding", style.Padding(o.Padding)).
		Set("fontSize", style.CSS(o.FontSize)).
		Set("boxShadow", style.Value(o.Shadow))
	if o.FocusColor != nil {
		inputStyle = inputStyle.Set("--tw-ring-color", style.Value(o.FocusColor))
	}

	var glyph *jsx.Element
	classes := []string{fieldClass, textSize(p.Size())}
	if c.Icon != "" {
		glyph = jsx.El("div", jsx.Attrs(jsx.A("className", "absolute left-3 top-3 text-neutral-400")),
			jsx.El(icon(&f, c.Icon), jsx.Attrs(jsx.V("size", jsx.Num(16)))),
		)
		classes = append(classes, "pl-10")
	}

	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("div", jsx.Attrs(jsx.A("className", "w-full")),
			jsx.El("label", jsx.Attrs(
				jsx.A("htmlFor", id),
				jsx.A("className", "mb-1 block text-xs font-bold uppercase"),
				jsx.V("style", jsx.Obj().Set("color", style.Value(o.FontColor))),
			), jsx.Text(c.Label)),
			jsx.El("div", jsx.Attrs(jsx.A("className", "relative w-full")),
				glyph,
				jsx.El("input", jsx.Attrs(
					jsx.A("id", id),
					jsx.A("type", "text"),
					jsx.A("placeholder", c.Placeholder),
					jsx.Flag("disabled", c.Disabled),
					jsx.A("className", kit.Classes(classes...)),
					jsx.V("style", inputStyle),
				)),
			),
		),
	})
	return f
}

func radioView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics
	accent := style.Or(s.Color, p.Token("primary", "#3b82f6"))
	dot := widget.Pick(p.Size(), "12px", "16px", "24px")

	return func(st render.State) *html.Node {
		group := markup.El("div",
			markup.Attr("role", "radiogroup"),
			markup.Style(
				markup.D("display", "flex"),
				markup.D("flex-direction", "column"),
				markup.D("gap", "12px"),
				markup.D("padding", style.Padding(s.Padding)),
				markup.D("border-radius", style.CSS(s.BorderRadius)),
				markup.D("background-color", style.Value(s.BackgroundColor)),
				markup.D("border", kit.Border(s, "", "")),
			),
		)
		for _, opt := range c.Options {
			on := opt.Value == st.Selected
			width := "2px"
			if on {
				width = "4px"
			}
			markup.Kids(markup.El("label",
				markup.Attr("role", "radio"),
				markup.Attr("aria-checked", boolAttr(on)),
				kit.Action(render.EventSelect, opt.Value),
				markup.Style(kit.Decls(
					[]markup.Decl{
						markup.D("display", "flex"),
						markup.D("align-items", "center"),
						markup.D("gap", m.Gap),
						markup.D("font-family", p.Token("fontFamily", "")),
						markup.D("font-size", style.CSS(s.FontSize)),
						markup.D("color", style.Or(s.FontColor, p.Token("text", ""))),
					},
					kit.Interactive(c.Disabled),
				)...),
				markup.Kids(
					markup.El("span", markup.Style(
						markup.D("display", "inline-block"),
						markup.D("box-sizing", "border-box"),
						markup.D("width", dot),
						markup.D("height", dot),
						markup.D("border-radius", "50%"),
						markup.D("border", width+" solid "+accent),
						markup.D("transition", "border-width 200ms"),
					)),
					markup.El("span", markup.Text(opt.Text())),
				),
			))(group)
		}
		return group
	}
}

func radioCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()

	var f jsx.File
	comp := jsx.Component{Name: p.Name()}
	f.State(&comp, "value", jsx.Quote(c.SelectedOption()))

	dot := widget.Pick(p.Size(), "h-3 w-3", "h-4 w-4", "h-6 w-6")
	labelClass := "flex cursor-pointer items-center space-x-2"
	if c.Disabled {
		labelClass = "flex cursor-not-allowed items-center space-x-2 opacity-50"
	}

	group := jsx.El("div", jsx.Attrs(
		jsx.A("role", "radiogroup"),
		jsx.A("className", "flex flex-col gap-3"),
		jsx.V("style", jsx.Obj().
			Set("padding", style.Padding(o.Padding)).
			Set("borderRadius", style.CSS(o.BorderRadius)).
			Set("backgroundColor", style.Value(o.BackgroundColor)).
			Set("border", border(o))),
	))
	for _, opt := range c.Options {
		group.Children = append(group.Children, jsx.El("label", jsx.Attrs(jsx.A("className", labelClass)),
			jsx.El("input", jsx.Attrs(
				jsx.A("type", "radio"),
				jsx.A("name", "radio-group"),
				jsx.A("value", opt.Value),
				jsx.X("checked", kit.Is("value", opt.Value)),
				jsx.X("onChange", "(e) => setValue(e.target.value)"),
				jsx.Flag("disabled", c.Disabled),
				jsx.A("className", kit.Classes(dot, "cursor-pointer appearance-none rounded-full border-2 transition-all duration-200 checked:border-4")),
				jsx.V("style", jsx.Obj().Set("borderColor", style.Value(o.Color))),
			)),
			jsx.El("span", jsx.Attrs(
				jsx.A("className", kit.Classes(textSize(p.Size()), "select-none")),
				jsx.V("style", jsx.Obj().
					Set("color", style.Value(o.FontColor)).
					Set("fontSize", style.CSS(o.FontSize))),
			), jsx.Text(opt.Text())),
		))
	}
	comp.Root = group
	f.Add(comp)
	return f
}

func selectView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	id := kit.ID("aceternity-select", c.Label)
	accent := style.Or(s.Color, p.Token("primary", "#3b82f6"))

	return func(st render.State) *html.Node {
		sel := markup.El("select",
			markup.Attr("id", id),
			markup.Flag("disabled", c.Disabled),
			kit.Action(render.EventSelect, ""),
			markup.Style(kit.Decls(
				[]markup.Decl{
					markup.D("width", "100%"),
					markup.D("padding", style.Padding(s.Padding)),
					markup.D("border-radius", style.CSS(s.BorderRadius)),
					markup.D("border", "2px solid "+style.Or(s.BorderColor, accent)),
					markup.D("background-color", style.Or(s.BackgroundColor, p.Token("surface", "#fff"))),
					markup.D("color", style.Or(s.TextColor, p.Token("text", ""))),
					markup.D("box-shadow", style.Value(s.Shadow)),
					markup.D("font-family", p.Token("fontFamily", "")),
					markup.D("font-size", style.CSS(s.FontSize)),
					markup.D("font-weight", "500"),
				},
				kit.Interactive(c.Disabled),
			)...),
		)
		if c.Placeholder != "" {
			markup.Kids(markup.El("option",
				markup.Attr("value", ""),
				markup.Flag("selected", st.Selected == ""),
				markup.Text(c.Placeholder),
			))(sel)
		}
		for _, opt := range c.Options {
			markup.Kids(markup.El("option",
				markup.Attr("value", opt.Value),
				markup.Flag("selected", opt.Value == st.Selected),
				markup.Text(opt.Text()),
			))(sel)
		}
		return markup.El("div",
			markup.Style(markup.D("width", "100%")),
			markup.Kids(caption(p, id, c.Label), sel),
		)
	}
}

func selectCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()

	var f jsx.File
	f.Use(pkgIcons, "Check", "ChevronDown")
	comp := jsx.Component{Name: p.Name()}
	f.State(&comp, "value", jsx.Quote(c.SelectedOption()))
	f.State(&comp, "isOpen", "false")

	labels := jsx.Obj()
	for _, opt := range c.Options {
		labels = append(labels, jsx.E(opt.Value, jsx.Str(opt.Text())))
	}
	f.Preamble = append(f.Preamble, "const labels: Record<string, string> = "+jsx.Literal(labels)+";")

	toggle := "() => setIsOpen(!isOpen)"
	if c.Disabled {
		toggle = "() => {}"
	}

	menu := jsx.El("div", jsx.Attrs(
		jsx.A("className", "absolute left-0 right-0 top-full z-50 mt-2 rounded-2xl border bg-white p-2 shadow-2xl"),
	))
	for _, opt := range c.Options {
		var check jsx.Value
		if o.Color != nil {
			check = jsx.Obj().Set("color", style.Value(o.Color))
		}
		menu.Children = append(menu.Children, jsx.El("div", jsx.Attrs(
			jsx.X("onClick", "() => {\n  setValue("+jsx.Quote(opt.Value)+");\n  setIsOpen(false);\n}"),
			jsx.A("className", "flex cursor-pointer items-center justify-between rounded-lg px-3 py-2 hover:bg-gray-50"),
		),
			jsx.El("span", jsx.Attrs(jsx.A("className", "text-sm font-medium")), jsx.Text(opt.Text())),
			jsx.When(kit.Is("value", opt.Value), jsx.El("Check", jsx.Attrs(
				jsx.V("size", jsx.Num(14)),
				jsx.V("style", check),
			))),
		))
	}

	var title *jsx.Element
	if c.Label != "" {
		title = jsx.El("label", jsx.Attrs(
			jsx.A("className", "mb-1 block text-sm font-semibold opacity-80"),
			jsx.V("style", jsx.Obj().Set("color", style.Value(o.FontColor))),
		), jsx.Text(c.Label))
	}

	comp.Root = jsx.El("div", jsx.Attrs(jsx.A("className", "relative w-full")),
		title,
		jsx.El("button", jsx.Attrs(
			jsx.A("type", "button"),
			jsx.X("onClick", toggle),
			jsx.Flag("disabled", c.Disabled),
			jsx.A("className", kit.Classes("flex w-full items-center justify-between rounded-xl border-2 bg-white px-4 py-2 transition-all", textSize(p.Size()))),
			jsx.V("style", jsx.Obj().
				Set("borderColor", style.Value(style.First(o.BorderColor, o.Color))).
				Set("borderRadius", style.CSS(o.BorderRadius)).
				Set("backgroundColor", style.Value(o.BackgroundColor)).
				Set("padding", style.Padding(o.Padding)).
				Set("fontSize", style.CSS(o.FontSize)).
				Set("boxShadow", style.Value(o.Shadow))),
		),
			jsx.El("span", jsx.Attrs(
				jsx.A("className", "font-medium"),
				jsx.V("style", jsx.Obj().Set("color", style.Value(o.TextColor))),
			), jsx.Embed("labels[value] ?? "+jsx.Quote(kit.OrText(c.Placeholder, "Select an option")))),
			jsx.El("ChevronDown", jsx.Attrs(
				jsx.X("className", "`h-4 w-4 transition-transform ${isOpen ? 'rotate-180' : ''}`"),
			)),
		),
		jsx.When("isOpen", menu),
	)
	f.Add(comp)
	return f
}

func switchView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics
	on := style.Or(style.First(s.ActiveColor, s.Color), p.Token("primary", "#3b82f6"))
	off := style.Or(s.InactiveColor, p.Token("border", "#d1d5db"))
	width := widget.Pick(p.Size(), "36px", "44px", "56px")
	height := widget.Pick(p.Size(), "20px", "24px", "28px")
	thumb := widget.Pick(p.Size(), "16px", "20px", "24px")

	return func(st render.State) *html.Node {
		track, shift := off, "2px"
		if st.Checked {
			track, shift = on, "calc("+width+" - "+thumb+" - 2px)"
		}
		return markup.El("div",
			markup.Style(kit.Decls(
				[]markup.Decl{
					markup.D("display", "flex"),
					markup.D("align-items", "center"),
					markup.D("gap", m.Gap),
					markup.D("font-family", p.Token("fontFamily", "")),
					markup.D("font-size", style.CSS(s.FontSize)),
					markup.D("color", style.Or(s.FontColor, p.Token("text", ""))),
				},
				kit.Interactive(c.Disabled),
			)...),
			markup.Kids(
				markup.El("button",
					markup.Attr("type", "button"),
					markup.Attr("role", "switch"),
					markup.Attr("aria-checked", boolAttr(st.Checked)),
					markup.Flag("disabled", c.Disabled),
					kit.Action(render.EventToggle, ""),
					markup.Style(
						markup.D("position", "relative"),
						markup.D("display", "inline-flex"),
						markup.D("align-items", "center"),
						markup.D("width", width),
						markup.D("height", height),
						markup.D("padding", "0"),
						markup.D("border", "none"),
						markup.D("border-radius", "9999px"),
						markup.D("background-color", track),
						markup.D("transition", "background-color 200ms"),
					),
					markup.Kids(markup.El("span", markup.Style(
						markup.D("display", "inline-block"),
						markup.D("width", thumb),
						markup.D("height", thumb),
						markup.D("border-radius", "50%"),
						markup.D("background-color", p.Token("surface", "#fff")),
						markup.D("transform", "translateX("+shift+")"),
						markup.D("transition", "transform 200ms"),
					))),
				),
				markup.El("span", markup.Text(kit.OrText(c.Label, "Toggle"))),
			),
		)
	}
}

func switchCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()

	var f jsx.File
	comp := jsx.Component{Name: p.Name()}
	f.State(&comp, "checked", boolAttr(c.Checked))

	track := widget.Pick(p.Size(), "h-5 w-9", "h-6 w-11", "h-7 w-14")
	thumb := widget.Pick(p.Size(), "h-4 w-4", "h-5 w-5", "h-6 w-6")
	shift := widget.Pick(p.Size(), "translate-x-4", "translate-x-5", "translate-x-7")
	state := "cursor-pointer"
	if c.Disabled {
		state = "cursor-not-allowed opacity-50"
	}

	var background jsx.Value
	if active := style.First(o.ActiveColor, o.Color); active != nil || o.InactiveColor != nil {
		background = jsx.Expr("checked ? " + quoteOr(style.Value(active)) + " : " + quoteOr(style.Value(o.InactiveColor)))
	}
	trackClass := kit.Classes("relative inline-flex items-center rounded-full transition-colors duration-200 focus:outline-none focus:ring-2 focus:ring-offset-2", track, state)

	comp.Root = jsx.El("div", jsx.Attrs(jsx.A("className", "flex items-center space-x-2")),
		jsx.El("button", jsx.Attrs(
			jsx.A("type", "button"),
			jsx.A("role", "switch"),
			jsx.X("aria-checked", "checked"),
			jsx.Flag("disabled", c.Disabled),
			jsx.X("onClick", "() => setChecked(!checked)"),
			jsx.X("className", "`"+trackClass+" ${checked ? 'bg-blue-500' : 'bg-gray-300'}`"),
			jsx.V("style", jsx.Obj().Put("backgroundColor", background)),
		),
			jsx.El("span", jsx.Attrs(
				jsx.X("className", "`"+thumb+" inline-block transform rounded-full bg-white transition-transform duration-200 ${checked ? '"+shift+"' : 'translate-x-0.5'}`"),
			)),
		),
		jsx.El("span", jsx.Attrs(
			jsx.A("className", kit.Classes(textSize(p.Size()), "select-none")),
			jsx.V("style", jsx.Obj().
				Set("color", style.Value(o.FontColor)).
				Set("fontSize", style.CSS(o.FontSize))),
		), jsx.Text(kit.OrText(c.Label, "Toggle"))),
	)
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
