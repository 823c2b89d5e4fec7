package shadcn

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

func label(p render.Props, forID, text string) *html.Node {
	return markup.El("label",
		markup.AttrIf("for", forID),
		markup.Data("slot", "label"),
		markup.Style(
			markup.D("font-size", p.Metrics.FontSizeSmall),
			markup.D("font-weight", "500"),
			markup.D("line-height", "1"),
			markup.D("color", style.Or(p.Style.FontColor, p.Token("text", ""))),
		),
		markup.Text(text),
	)
}

func stack(children ...*html.Node) *html.Node {
	return markup.El("div",
		markup.Style(markup.D("display", "grid"), markup.D("gap", "8px"), markup.D("width", "100%"), markup.D("max-width", "24rem")),
		markup.Kids(children...),
	)
}

func inputView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics
	id := kit.ID("shadcn-input", c.Label)
	v := p.Config.Variant.InputVariant()

	bg := style.Value(s.BackgroundColor)
	border := kit.Border(s, "1px", p.Token("border", "#e4e4e7"))
	if v == widget.Filled {
		bg = style.Or(s.BackgroundColor, p.Token("track", "#f4f4f5"))
	}
	if v == widget.Standard {
		border = "none"
	}

	return func(st render.State) *html.Node {
		wrap := markup.El("div",
			markup.Style(
				markup.D("position", "relative"),
				markup.D("display", "flex"),
				markup.D("align-items", "center"),
				markup.D("gap", m.Gap),
				markup.D("padding", style.Padding(s.Padding)),
				markup.D("border-radius", style.CSS(s.BorderRadius)),
				markup.D("border", border),
				markup.D("border-bottom", standardEdge(v, p)),
				markup.D("background-color", bg),
				markup.D("box-shadow", style.Or(s.Shadow, p.Token("shadow", ""))),
				markup.D("color", style.Or(s.TextColor, p.Token("text", ""))),
			),
		)
		if c.Icon != "" {
			markup.Kids(markup.El("span",
				markup.Style(markup.D("display", "inline-flex"), markup.D("color", p.Token("muted", ""))),
				markup.Kids(kit.Icon(icons.Resolve(c.Icon), m.IconSize)),
			))(wrap)
		}
		markup.Kids(markup.El("input",
			markup.Attr("id", id),
			markup.Data("slot", "input"),
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
		))(wrap)
		return stack(label(p, id, c.Label), wrap)
	}
}

func standardEdge(v widget.Variant, p render.Props) string {
	if v != widget.Standard {
		return ""
	}
	return "1px solid " + style.Or(p.Style.BorderColor, p.Token("border", ""))
}

func inputClass(v widget.Variant) string {
	switch v.InputVariant() {
	case widget.Filled:
		return "bg-muted border-transparent"
	case widget.Standard:
		return "rounded-none border-0 border-b shadow-none"
	default:
		return ""
	}
}

func inputCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()
	id := kit.ID("input", c.Label)

	var f jsx.File
	f.Use(ui("input"), "Input")
	f.Use(ui("label"), "Label")

	inputStyle := jsx.Obj().
		Set("borderRadius", style.CSS(o.BorderRadius)).
		Set("backgroundColor", style.Value(o.BackgroundColor)).
		Set("color", style.Value(o.TextColor)).
		Set("borderColor", style.Value(o.BorderColor)).
		Set("borderWidth", style.CSS(o.BorderWidth)).
		Set("borderStyle", style.Value(o.BorderStyle)).
		Set("padding", style.Padding(o.Padding)).
		Set("fontSize", style.CSS(o.FontSize)).
		Set("boxShadow", style.Value(o.Shadow))
	if o.FocusColor != nil {
		inputStyle = inputStyle.Set("--ring", style.Value(o.FocusColor))
	}

	classes := []string{inputClass(p.Config.Variant), textSize(p.Size())}
	var glyph *jsx.Element
	if c.Icon != "" {
		name := icon(&f, c.Icon)
		glyph = jsx.El(name, jsx.Attrs(jsx.A("className", "absolute left-2.5 top-2.5 h-4 w-4 text-muted-foreground")))
		classes = append(classes, "pl-8")
	}
	input := jsx.El("Input", jsx.Attrs(
		jsx.A("type", "text"),
		jsx.A("id", id),
		jsx.A("placeholder", c.Placeholder),
		jsx.A("className", kit.Classes(classes...)),
		jsx.Flag("disabled", c.Disabled),
		jsx.V("style", inputStyle),
	))

	var control jsx.Node = input
	if glyph != nil {
		control = jsx.El("div", jsx.Attrs(jsx.A("className", "relative")), glyph, input)
	}

	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("div", jsx.Attrs(jsx.A("className", "grid w-full max-w-sm items-center gap-1.5")),
			jsx.El("Label", jsx.Attrs(
				jsx.A("htmlFor", id),
				jsx.V("style", jsx.Obj().Set("color", style.Value(o.FontColor))),
			), jsx.Text(c.Label)),
			control,
		),
	})
	return f
}

func radioView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics
	accent := style.Or(s.Color, p.Token("primary", "#18181b"))

	return func(st render.State) *html.Node {
		group := markup.El("div",
			markup.Data("slot", "radio-group"),
			markup.Attr("role", "radiogroup"),
			markup.Style(
				markup.D("display", "grid"),
				markup.D("gap", m.Gap),
				markup.D("padding", style.Padding(s.Padding)),
				markup.D("border-radius", style.CSS(s.BorderRadius)),
				markup.D("background-color", style.Value(s.BackgroundColor)),
				markup.D("border", kit.BorderOr(s, "", "1px", p.Token("border", ""))),
			),
		)
		for _, opt := range c.Options {
			on := opt.Value == st.Selected
			item := markup.El("span",
				markup.Data("slot", "radio-group-item"),
				markup.Style(
					markup.D("display", "inline-flex"),
					markup.D("align-items", "center"),
					markup.D("justify-content", "center"),
					markup.D("width", "16px"),
					markup.D("height", "16px"),
					markup.D("border-radius", "50%"),
					markup.D("border", "1px solid "+accent),
				),
			)
			if on {
				markup.Kids(markup.El("span", markup.Style(
					markup.D("width", "8px"),
					markup.D("height", "8px"),
					markup.D("border-radius", "50%"),
					markup.D("background-color", accent),
				)))(item)
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
				markup.Kids(item, markup.El("span", markup.Text(opt.Text()))),
			))(group)
		}
		return group
	}
}

func radioCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()

	var f jsx.File
	f.Use(ui("label"), "Label")
	f.Use(ui("radio-group"), "RadioGroup", "RadioGroupItem")
	comp := jsx.Component{Name: p.Name()}
	f.State(&comp, "value", jsx.Quote(c.SelectedOption()))

	group := jsx.El("RadioGroup", jsx.Attrs(
		jsx.X("value", "value"),
		jsx.X("onValueChange", "setValue"),
		jsx.Flag("disabled", c.Disabled),
		jsx.A("className", textSize(p.Size())),
		jsx.V("style", jsx.Obj().
			Set("padding", style.Padding(o.Padding)).
			Set("borderRadius", style.CSS(o.BorderRadius)).
			Set("backgroundColor", style.Value(o.BackgroundColor)).
			Set("borderColor", style.Value(o.BorderColor)).
			Set("borderWidth", style.CSS(o.BorderWidth)).
			Set("borderStyle", style.Value(o.BorderStyle))),
	))
	for _, opt := range c.Options {
		id := kit.ID("radio", opt.Value)
		group.Children = append(group.Children, jsx.El("div", jsx.Attrs(jsx.A("className", "flex items-center space-x-2")),
			jsx.El("RadioGroupItem", jsx.Attrs(
				jsx.A("value", opt.Value),
				jsx.A("id", id),
				jsx.V("style", jsx.Obj().
					Set("borderColor", style.Value(o.Color)).
					Set("color", style.Value(o.Color))),
			)),
			jsx.El("Label", jsx.Attrs(
				jsx.A("htmlFor", id),
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
	id := kit.ID("shadcn-select", c.Label)

	return func(st render.State) *html.Node {
		sel := markup.El("select",
			markup.Attr("id", id),
			markup.Data("slot", "select-trigger"),
			markup.Flag("disabled", c.Disabled),
			kit.Action(render.EventSelect, ""),
			markup.Style(kit.Decls(
				[]markup.Decl{
					markup.D("width", "180px"),
					markup.D("padding", style.Padding(s.Padding)),
					markup.D("border-radius", style.CSS(s.BorderRadius)),
					markup.D("border", kit.Border(s, "1px", p.Token("border", "#e4e4e7"))),
					markup.D("background-color", style.Or(s.BackgroundColor, "transparent")),
					markup.D("color", style.Or(s.TextColor, p.Token("text", ""))),
					markup.D("box-shadow", style.Or(s.Shadow, p.Token("shadow", ""))),
					markup.D("font-family", p.Token("fontFamily", "")),
					markup.D("font-size", style.CSS(s.FontSize)),
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
		return stack(label(p, id, c.Label), sel)
	}
}

func selectCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()

	var f jsx.File
	f.Use(ui("label"), "Label")
	f.Use(ui("select"), "Select", "SelectContent", "SelectItem", "SelectTrigger", "SelectValue")
	comp := jsx.Component{Name: p.Name()}
	f.State(&comp, "value", jsx.Quote(c.SelectedOption()))

	content := jsx.El("SelectContent", nil)
	for _, opt := range c.Options {
		content.Children = append(content.Children, jsx.El("SelectItem", jsx.Attrs(jsx.A("value", opt.Value)), jsx.Text(opt.Text())))
	}

	comp.Root = jsx.El("div", jsx.Attrs(jsx.A("className", "grid gap-1.5")),
		jsx.El("Label", jsx.Attrs(
			jsx.V("style", jsx.Obj().Set("color", style.Value(o.FontColor))),
		), jsx.Text(c.Label)),
		jsx.El("Select", jsx.Attrs(
			jsx.X("value", "value"),
			jsx.X("onValueChange", "setValue"),
			jsx.Flag("disabled", c.Disabled),
		),
			jsx.El("SelectTrigger", jsx.Attrs(
				jsx.A("className", kit.Classes("w-[180px]", textSize(p.Size()))),
				jsx.V("style", jsx.Obj().
					Set("borderRadius", style.CSS(o.BorderRadius)).
					Set("backgroundColor", style.Value(o.BackgroundColor)).
					Set("color", style.Value(o.TextColor)).
					Set("borderColor", style.Value(o.BorderColor)).
					Set("borderWidth", style.CSS(o.BorderWidth)).
					Set("borderStyle", style.Value(o.BorderStyle)).
					Set("padding", style.Padding(o.Padding)).
					Set("fontSize", style.CSS(o.FontSize))),
			),
				jsx.El("SelectValue", jsx.Attrs(jsx.A("placeholder", c.Placeholder))),
			),
			content,
		),
	)
	f.Add(comp)
	return f
}

func switchView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics
	on := style.Or(style.First(s.ActiveColor, s.Color), p.Token("primary", "#18181b"))
	off := style.Or(s.InactiveColor, p.Token("border", "#e4e4e7"))
	width := widget.Pick(p.Size(), "36px", "44px", "56px")
	thumb := widget.Pick(p.Size(), "16px", "20px", "24px")

	return func(st render.State) *html.Node {
		track, shift := off, "0"
		if st.Checked {
			track, shift = on, "calc("+width+" - "+thumb+" - 4px)"
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
					markup.Data("slot", "switch"),
					markup.Flag("disabled", c.Disabled),
					kit.Action(render.EventToggle, ""),
					markup.Style(
						markup.D("display", "inline-flex"),
						markup.D("align-items", "center"),
						markup.D("width", width),
						markup.D("padding", "2px"),
						markup.D("border", "none"),
						markup.D("border-radius", "9999px"),
						markup.D("background-color", track),
					),
					markup.Kids(markup.El("span",
						markup.Data("slot", "switch-thumb"),
						markup.Style(
							markup.D("display", "block"),
							markup.D("width", thumb),
							markup.D("height", thumb),
							markup.D("border-radius", "50%"),
							markup.D("background-color", p.Token("surface", "#fff")),
							markup.D("transform", "translateX("+shift+")"),
						),
					)),
				),
				markup.El("label", markup.Text(c.Label)),
			),
		)
	}
}

func switchCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()
	id := kit.ID("switch", c.Label)

	var f jsx.File
	f.Use(ui("label"), "Label")
	f.Use(ui("switch"), "Switch")
	comp := jsx.Component{Name: p.Name()}
	f.State(&comp, "checked", boolAttr(c.Checked))

	var background jsx.Value
	if active := style.First(o.ActiveColor, o.Color); active != nil || o.InactiveColor != nil {
		on, off := "undefined", "undefined"
		if active != nil {
			on = jsx.Quote(style.Value(active))
		}
		if o.InactiveColor != nil {
			off = jsx.Quote(style.Value(o.InactiveColor))
		}
		background = jsx.Expr("checked ? " + on + " : " + off)
	}

	comp.Root = jsx.El("div", jsx.Attrs(jsx.A("className", "flex items-center space-x-2")),
		jsx.El("Switch", jsx.Attrs(
			jsx.A("id", id),
			jsx.X("checked", "checked"),
			jsx.X("onCheckedChange", "setChecked"),
			jsx.A("className", widget.Pick(p.Size(), "h-5 w-9", "", "h-7 w-14")),
			jsx.Flag("disabled", c.Disabled),
			jsx.V("style", jsx.Obj().Put("backgroundColor", background)),
		)),
		jsx.El("Label", jsx.Attrs(
			jsx.A("htmlFor", id),
			jsx.A("className", textSize(p.Size())),
			jsx.V("style", jsx.Obj().
				Set("color", style.Value(o.FontColor)).
				Set("fontSize", style.CSS(o.FontSize))),
		), jsx.Text(c.Label)),
	)
	f.Add(comp)
	return f
}
