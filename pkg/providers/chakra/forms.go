package chakra

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
		markup.Class("chakra-field__label"),
		markup.Style(
			markup.D("font-size", p.Metrics.FontSizeSmall),
			markup.D("font-weight", "500"),
			markup.D("color", style.Or(p.Style.FontColor, p.Token("text", ""))),
		),
		markup.Text(text),
	)
}

func field(children ...*html.Node) *html.Node {
	return markup.El("div",
		markup.Class("chakra-field__root"),
		markup.Style(markup.D("display", "flex"), markup.D("flex-direction", "column"), markup.D("gap", "6px")),
		markup.Kids(children...),
	)
}

func inputView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics
	v := inputVariant(p.Config.Variant)
	id := kit.ID("chakra-input", c.Label)

	box := []markup.Decl{
		markup.D("display", "flex"),
		markup.D("align-items", "center"),
		markup.D("gap", m.Gap),
		markup.D("padding", style.Padding(s.Padding)),
		markup.D("font-size", style.CSS(s.FontSize)),
		markup.D("color", style.Or(s.TextColor, p.Token("text", ""))),
	}
	switch v {
	case "subtle":
		box = append(box,
			markup.D("border-radius", style.CSS(s.BorderRadius)),
			markup.D("background-color", style.Or(s.BackgroundColor, p.Token("track", "#edf2f7"))),
			markup.D("border", kit.BorderOr(s, "1px solid transparent", "1px", p.Token("border", ""))),
		)
	case "flushed":
		box = append(box,
			markup.D("background-color", style.Value(s.BackgroundColor)),
			markup.D("border-bottom", "1px solid "+style.Or(s.BorderColor, p.Token("border", ""))),
		)
	default:
		box = append(box,
			markup.D("border-radius", style.CSS(s.BorderRadius)),
			markup.D("background-color", style.Value(s.BackgroundColor)),
			markup.D("border", kit.Border(s, "1px", p.Token("border", ""))),
		)
	}

	return func(st render.State) *html.Node {
		group := markup.El("div", markup.Class("chakra-input__group"), markup.Style(box...))
		if c.Icon != "" {
			markup.Kids(kit.Icon(icons.Resolve(c.Icon), m.IconSize))(group)
		}
		markup.Kids(markup.El("input",
			markup.Attr("id", id),
			markup.Class("chakra-input"),
			markup.AttrIf("placeholder", c.Placeholder),
			markup.Attr("value", st.Text),
			markup.Flag("disabled", c.Disabled),
			kit.Action(render.EventInput, ""),
			markup.Style(
				markup.D("flex", "1"),
				markup.D("border", "none"),
				markup.D("outline", "none"),
				markup.D("background", "transparent"),
				markup.D("font", "inherit"),
				markup.D("color", "inherit"),
			),
		))(group)
		return field(label(p, id, c.Label), group)
	}
}

func inputCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()

	var f jsx.File
	f.Use(pkgCore, "Field", "Input")

	inputStyle := jsx.Obj().
		Set("borderRadius", style.CSS(o.BorderRadius)).
		Set("backgroundColor", style.Value(o.BackgroundColor)).
		Set("color", style.Value(o.TextColor)).
		Set("borderColor", style.Value(o.BorderColor)).
		Set("borderWidth", style.CSS(o.BorderWidth)).
		Set("borderStyle", style.Value(o.BorderStyle)).
		Set("padding", style.Padding(o.Padding)).
		Set("fontSize", style.CSS(o.FontSize))

	input := jsx.El("Input", jsx.Attrs(
		jsx.A("placeholder", c.Placeholder),
		jsx.A("variant", inputVariant(p.Config.Variant)),
		jsx.A("size", size(p.Size())),
		jsx.A("focusRingColor", style.Value(o.FocusColor)),
		jsx.V("style", inputStyle),
	))
	var control jsx.Node = input
	if c.Icon != "" {
		f.Use(pkgCore, "InputGroup")
		glyph := icon(&f, c.Icon)
		control = jsx.El("InputGroup", jsx.Attrs(jsx.V("startElement", jsx.JSX(jsx.El(glyph, jsx.Attrs(jsx.V("size", jsx.Num(16))))))), input)
	}

	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("Field.Root", jsx.Attrs(jsx.Flag("disabled", c.Disabled)),
			jsx.El("Field.Label", jsx.Attrs(
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
	accent := style.Or(s.Color, p.Token("primary", "#3182ce"))

	return func(st render.State) *html.Node {
		group := markup.El("div",
			markup.Class("chakra-radio-group__root"),
			markup.Attr("role", "radiogroup"),
			markup.Style(
				markup.D("display", "flex"),
				markup.D("flex-direction", "column"),
				markup.D("gap", m.Gap),
				markup.D("padding", style.Padding(s.Padding)),
				markup.D("border-radius", style.CSS(s.BorderRadius)),
				markup.D("background-color", style.Value(s.BackgroundColor)),
				markup.D("border", kit.BorderOr(s, "", "1px", p.Token("border", ""))),
			),
		)
		for _, opt := range c.Options {
			on := opt.Value == st.Selected
			fill, ring, inset := "transparent", p.Token("border", "#e2e8f0"), ""
			if on {
				fill, ring, inset = accent, accent, "inset 0 0 0 3px #fff"
			}
			markup.Kids(markup.El("label",
				markup.Class("chakra-radio-group__item"),
				markup.Attr("role", "radio"),
				markup.Attr("aria-checked", boolAttr(on)),
				kit.Action(render.EventSelect, opt.Value),
				markup.Style(kit.Decls(
					[]markup.Decl{
						markup.D("display", "inline-flex"),
						markup.D("align-items", "center"),
						markup.D("gap", m.Gap),
						markup.D("font-family", p.Token("fontFamily", "")),
						markup.D("font-size", style.CSS(s.FontSize)),
						markup.D("color", style.Or(s.FontColor, p.Token("text", ""))),
					},
					kit.Interactive(c.Disabled),
				)...),
				markup.Kids(
					markup.El("span",
						markup.Class("chakra-radio-group__item-control"),
						markup.Style(
							markup.D("width", m.IconSize),
							markup.D("height", m.IconSize),
							markup.D("border-radius", "50%"),
							markup.D("border", "2px solid "+ring),
							markup.D("background-color", fill),
							markup.D("box-shadow", inset),
						),
					),
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
	f.Use(pkgCore, "RadioGroup", "VStack")
	comp := jsx.Component{Name: p.Name()}
	f.State(&comp, "value", jsx.Quote(c.SelectedOption()))

	stack := jsx.El("VStack", jsx.Attrs(jsx.A("align", "start"), jsx.A("gap", "2")))
	for _, opt := range c.Options {
		stack.Children = append(stack.Children, jsx.El("RadioGroup.Item", jsx.Attrs(jsx.A("value", opt.Value)),
			jsx.El("RadioGroup.ItemHiddenInput", nil),
			jsx.El("RadioGroup.ItemIndicator", jsx.Attrs(
				jsx.V("style", jsx.Obj().
					Set("borderColor", style.Value(o.Color)).
					Set("backgroundColor", style.Value(o.Color))),
			)),
			jsx.El("RadioGroup.ItemText", jsx.Attrs(
				jsx.V("style", jsx.Obj().
					Set("color", style.Value(o.FontColor)).
					Set("fontSize", style.CSS(o.FontSize))),
			), jsx.Text(opt.Text())),
		))
	}

	comp.Root = jsx.El("RadioGroup.Root", jsx.Attrs(
		jsx.X("value", "value"),
		jsx.X("onValueChange", "(details) => setValue(details.value)"),
		jsx.A("size", size(p.Size())),
		jsx.Flag("disabled", c.Disabled),
		jsx.V("style", jsx.Obj().
			Set("padding", style.Padding(o.Padding)).
			Set("borderRadius", style.CSS(o.BorderRadius)).
			Set("backgroundColor", style.Value(o.BackgroundColor)).
			Set("borderColor", style.Value(o.BorderColor)).
			Set("borderWidth", style.CSS(o.BorderWidth)).
			Set("borderStyle", style.Value(o.BorderStyle))),
	), stack)
	f.Add(comp)
	return f
}

func selectView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	id := kit.ID("chakra-select", c.Label)

	return func(st render.State) *html.Node {
		sel := markup.El("select",
			markup.Attr("id", id),
			markup.Class("chakra-native-select__field"),
			markup.Flag("disabled", c.Disabled),
			kit.Action(render.EventSelect, ""),
			markup.Style(kit.Decls(
				[]markup.Decl{
					markup.D("width", "100%"),
					markup.D("padding", style.Padding(s.Padding)),
					markup.D("border-radius", style.CSS(s.BorderRadius)),
					markup.D("border", kit.Border(s, "1px", p.Token("border", ""))),
					markup.D("background-color", style.Or(s.BackgroundColor, p.Token("surface", ""))),
					markup.D("color", style.Or(s.TextColor, p.Token("text", ""))),
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
		return field(label(p, id, c.Label), sel)
	}
}

func selectCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()

	var f jsx.File
	f.Use(pkgCore, "Field", "NativeSelect")
	comp := jsx.Component{Name: p.Name()}
	f.State(&comp, "value", jsx.Quote(c.SelectedOption()))

	sel := jsx.El("NativeSelect.Field", jsx.Attrs(
		jsx.A("placeholder", c.Placeholder),
		jsx.X("value", "value"),
		jsx.X("onChange", "(event) => setValue(event.currentTarget.value)"),
		jsx.V("style", jsx.Obj().
			Set("borderRadius", style.CSS(o.BorderRadius)).
			Set("backgroundColor", style.Value(o.BackgroundColor)).
			Set("color", style.Value(o.TextColor)).
			Set("borderColor", style.Value(o.BorderColor)).
			Set("borderWidth", style.CSS(o.BorderWidth)).
			Set("borderStyle", style.Value(o.BorderStyle)).
			Set("padding", style.Padding(o.Padding)).
			Set("fontSize", style.CSS(o.FontSize))),
	))
	for _, opt := range c.Options {
		sel.Children = append(sel.Children, jsx.El("option", jsx.Attrs(jsx.A("value", opt.Value)), jsx.Text(opt.Text())))
	}

	comp.Root = jsx.El("Field.Root", jsx.Attrs(jsx.Flag("disabled", c.Disabled)),
		jsx.El("Field.Label", jsx.Attrs(
			jsx.V("style", jsx.Obj().Set("color", style.Value(o.FontColor))),
		), jsx.Text(c.Label)),
		jsx.El("NativeSelect.Root", jsx.Attrs(jsx.A("size", size(p.Size()))),
			sel,
			jsx.El("NativeSelect.Indicator", nil),
		),
	)
	f.Add(comp)
	return f
}

func switchView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics
	on := style.Or(style.First(s.ActiveColor, s.Color), p.Token("primary", "#3182ce"))
	off := style.Or(s.InactiveColor, "#cbd5e0")
	width := widget.Pick(p.Size(), "26px", "36px", "46px")
	thumb := widget.Pick(p.Size(), "12px", "16px", "22px")

	return func(st render.State) *html.Node {
		track, shift := off, "0"
		if st.Checked {
			track, shift = on, "calc(100% - "+thumb+" - 4px)"
		}
		return markup.El("label",
			markup.Class("chakra-switch__root"),
			markup.Style(kit.Decls(
				[]markup.Decl{
					markup.D("display", "inline-flex"),
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
					markup.Class("chakra-switch__control"),
					markup.Flag("disabled", c.Disabled),
					kit.Action(render.EventToggle, ""),
					markup.Style(
						markup.D("position", "relative"),
						markup.D("width", width),
						markup.D("height", "calc("+thumb+" + 4px)"),
						markup.D("padding", "2px"),
						markup.D("border", "none"),
						markup.D("border-radius", "9999px"),
						markup.D("background-color", track),
					),
					markup.Kids(markup.El("span",
						markup.Class("chakra-switch__thumb"),
						markup.Style(
							markup.D("display", "block"),
							markup.D("width", thumb),
							markup.D("height", thumb),
							markup.D("border-radius", "50%"),
							markup.D("background-color", "#fff"),
							markup.D("transform", "translateX("+shift+")"),
						),
					)),
				),
				markup.El("span", markup.Class("chakra-switch__label"), markup.Text(c.Label)),
			),
		)
	}
}

func switchCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()

	var f jsx.File
	f.Use(pkgCore, "Switch")
	comp := jsx.Component{Name: p.Name()}
	f.State(&comp, "checked", boolAttr(c.Checked))

	control := jsx.Obj()
	if active := style.First(o.ActiveColor, o.Color); active != nil || o.InactiveColor != nil {
		expr := jsx.Quote(style.Value(o.InactiveColor))
		if o.InactiveColor == nil {
			expr = "undefined"
		}
		if active != nil {
			expr = "checked ? " + jsx.Quote(style.Value(active)) + " : " + expr
		}
		control = control.Put("backgroundColor", jsx.Expr(expr))
	}

	comp.Root = jsx.El("Switch.Root", jsx.Attrs(
		jsx.X("checked", "checked"),
		jsx.X("onCheckedChange", "(details) => setChecked(details.checked)"),
		jsx.A("size", size(p.Size())),
		jsx.Flag("disabled", c.Disabled),
	),
		jsx.El("Switch.HiddenInput", nil),
		jsx.El("Switch.Control", jsx.Attrs(jsx.V("style", control)),
			jsx.El("Switch.Thumb", nil),
		),
		jsx.El("Switch.Label", jsx.Attrs(
			jsx.V("style", jsx.Obj().
				Set("color", style.Value(o.FontColor)).
				Set("fontSize", style.CSS(o.FontSize))),
		), jsx.Text(c.Label)),
	)
	f.Add(comp)
	return f
}
