package antd

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

func formItem(p render.Props, forID, text string, control *html.Node) *html.Node {
	return markup.El("div",
		markup.Class("ant-form-item"),
		markup.Style(markup.D("display", "flex"), markup.D("flex-direction", "column"), markup.D("gap", "8px")),
		markup.Kids(
			markup.El("label",
				markup.AttrIf("for", forID),
				markup.Class("ant-form-item-label"),
				markup.Style(
					markup.D("font-family", p.Token("fontFamily", "")),
					markup.D("font-size", p.Metrics.FontSizeSmall),
					markup.D("color", style.Or(p.Style.FontColor, p.Token("text", ""))),
				),
				markup.Text(text),
			),
			control,
		),
	)
}

func inputView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics
	v := inputVariant(p.Config.Variant)
	id := kit.ID("antd-input", c.Label)

	box := []markup.Decl{
		markup.D("display", "flex"),
		markup.D("align-items", "center"),
		markup.D("gap", "4px"),
		markup.D("padding", style.Padding(s.Padding)),
		markup.D("border-radius", style.CSS(s.BorderRadius)),
		markup.D("font-size", style.CSS(s.FontSize)),
		markup.D("color", style.Or(s.TextColor, p.Token("text", ""))),
	}
	switch v {
	case "filled":
		box = append(box,
			markup.D("background-color", style.Or(s.BackgroundColor, "rgba(0, 0, 0, 0.04)")),
			markup.D("border", kit.BorderOr(s, "1px solid transparent", "1px", p.Token("border", ""))),
		)
	case "borderless":
		box = append(box,
			markup.D("background-color", style.Value(s.BackgroundColor)),
			markup.D("border", kit.BorderOr(s, "none", "1px", p.Token("border", ""))),
		)
	default:
		box = append(box,
			markup.D("background-color", style.Or(s.BackgroundColor, p.Token("surface", "#fff"))),
			markup.D("border", kit.Border(s, "1px", p.Token("border", "#d9d9d9"))),
		)
	}

	return func(st render.State) *html.Node {
		affix := markup.El("span", markup.Class("ant-input-affix-wrapper", "ant-input-"+v), markup.Style(box...))
		if c.Icon != "" {
			markup.Kids(markup.El("span",
				markup.Class("ant-input-prefix"),
				markup.Style(markup.D("display", "inline-flex"), markup.D("color", p.Token("muted", ""))),
				markup.Kids(kit.Icon(icons.Resolve(c.Icon), m.IconSize)),
			))(affix)
		}
		markup.Kids(markup.El("input",
			markup.Attr("id", id),
			markup.Class("ant-input"),
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
		))(affix)
		return formItem(p, id, c.Label, affix)
	}
}

func inputCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()

	var f jsx.File
	f.Use(pkgCore, "Form", "Input")

	var prefix jsx.Value
	if c.Icon != "" {
		glyph := icon(&f, c.Icon)
		prefix = jsx.JSX(jsx.El(glyph, jsx.Attrs(jsx.V("size", jsx.Num(16)))))
	}

	inputStyle := jsx.Obj().
		Set("borderRadius", style.CSS(o.BorderRadius)).
		Set("backgroundColor", style.Value(o.BackgroundColor)).
		Set("color", style.Value(o.TextColor)).
		Set("borderColor", style.Value(o.BorderColor)).
		Set("borderWidth", style.CSS(o.BorderWidth)).
		Set("borderStyle", style.Value(o.BorderStyle)).
		Set("padding", style.Padding(o.Padding)).
		Set("fontSize", style.CSS(o.FontSize))

	var label jsx.Value = jsx.Str(c.Label)
	if o.FontColor != nil {
		label = jsx.JSX(jsx.El("span", jsx.Attrs(
			jsx.V("style", jsx.Obj().Set("color", style.Value(o.FontColor))),
		), jsx.Text(c.Label)))
	}

	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("Form", jsx.Attrs(jsx.A("layout", "vertical")),
			jsx.El("Form.Item", jsx.Attrs(jsx.V("label", label)),
				jsx.El("Input", jsx.Attrs(
					jsx.A("placeholder", c.Placeholder),
					jsx.A("variant", inputVariant(p.Config.Variant)),
					jsx.A("size", size(p.Size())),
					jsx.V("prefix", prefix),
					jsx.Flag("disabled", c.Disabled),
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
	accent := style.Or(s.Color, p.Token("primary", "#1677ff"))

	return func(st render.State) *html.Node {
		group := markup.El("div",
			markup.Class("ant-radio-group"),
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
			ring, width := p.Token("border", "#d9d9d9"), "1px"
			if on {
				ring, width = accent, "5px"
			}
			markup.Kids(markup.El("label",
				markup.Class("ant-radio-wrapper"),
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
						markup.Class("ant-radio-inner"),
						markup.Style(
							markup.D("box-sizing", "border-box"),
							markup.D("width", "16px"),
							markup.D("height", "16px"),
							markup.D("border-radius", "50%"),
							markup.D("border", width+" solid "+ring),
							markup.D("background-color", p.Token("surface", "#fff")),
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
	f.Use(pkgCore, "Radio", "Space")
	comp := jsx.Component{Name: p.Name()}
	f.State(&comp, "value", jsx.Quote(c.SelectedOption()))

	stack := jsx.El("Space", jsx.Attrs(jsx.A("direction", "vertical")))
	for _, opt := range c.Options {
		stack.Children = append(stack.Children, jsx.El("Radio", jsx.Attrs(
			jsx.A("value", opt.Value),
			jsx.V("style", jsx.Obj().
				Set("color", style.Value(o.FontColor)).
				Set("fontSize", style.CSS(o.FontSize))),
		), jsx.Text(opt.Text())))
	}

	group := jsx.El("Radio.Group", jsx.Attrs(
		jsx.X("value", "value"),
		jsx.X("onChange", "(event) => setValue(event.target.value)"),
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

	if o.Color != nil {
		f.Use(pkgCore, "ConfigProvider")
		comp.Root = jsx.El("ConfigProvider", jsx.Attrs(
			jsx.V("theme", jsx.Obj(jsx.E("token", jsx.Obj().Set("colorPrimary", style.Value(o.Color))))),
		), group)
	} else {
		comp.Root = group
	}
	f.Add(comp)
	return f
}

func selectView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	id := kit.ID("antd-select", c.Label)

	return func(st render.State) *html.Node {
		sel := markup.El("select",
			markup.Attr("id", id),
			markup.Class("ant-select-selector"),
			markup.Flag("disabled", c.Disabled),
			kit.Action(render.EventSelect, ""),
			markup.Style(kit.Decls(
				[]markup.Decl{
					markup.D("width", "100%"),
					markup.D("padding", style.Padding(s.Padding)),
					markup.D("border-radius", style.CSS(s.BorderRadius)),
					markup.D("border", kit.Border(s, "1px", p.Token("border", "#d9d9d9"))),
					markup.D("background-color", style.Or(s.BackgroundColor, p.Token("surface", "#fff"))),
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
		return formItem(p, id, c.Label, sel)
	}
}

func selectCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()

	var f jsx.File
	f.Use(pkgCore, "Select")
	comp := jsx.Component{Name: p.Name()}
	f.State(&comp, "value", selectInitial(c.SelectedOption()))

	options := make(jsx.Array, 0, len(c.Options))
	for _, opt := range c.Options {
		options = append(options, jsx.Obj(jsx.E("value", jsx.Str(opt.Value)), jsx.E("label", jsx.Str(opt.Text()))))
	}

	selectStyle := jsx.Obj(jsx.E("width", jsx.Str("100%"))).
		Set("borderRadius", style.CSS(o.BorderRadius)).
		Set("backgroundColor", style.Value(o.BackgroundColor)).
		Set("color", style.Value(o.TextColor)).
		Set("borderColor", style.Value(o.BorderColor)).
		Set("fontSize", style.CSS(o.FontSize))

	comp.Root = jsx.El("div", jsx.Attrs(jsx.V("style", jsx.Obj(jsx.E("width", jsx.Str("100%"))))),
		jsx.El("div", jsx.Attrs(
			jsx.V("style", jsx.Obj(jsx.E("marginBottom", jsx.Num(4))).Set("color", style.Value(o.FontColor))),
		), jsx.Text(c.Label)),
		jsx.El("Select", jsx.Attrs(
			jsx.X("value", "value"),
			jsx.X("onChange", "setValue"),
			jsx.A("placeholder", c.Placeholder),
			jsx.A("size", size(p.Size())),
			jsx.Flag("disabled", c.Disabled),
			jsx.V("style", selectStyle),
			jsx.V("options", options),
		)),
	)
	f.Add(comp)
	return f
}

// selectInitial leaves the value undefined when nothing is selected so the
// placeholder shows.
func selectInitial(value string) string {
	if value == "" {
		return "undefined"
	}
	return jsx.Quote(value)
}

func switchView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics
	on := style.Or(style.First(s.ActiveColor, s.Color), p.Token("primary", "#1677ff"))
	off := style.Or(s.InactiveColor, "rgba(0, 0, 0, 0.25)")
	width := widget.Pick(p.Size(), "28px", "44px", "44px")
	height := widget.Pick(p.Size(), "16px", "22px", "22px")
	thumb := widget.Pick(p.Size(), "12px", "18px", "18px")

	return func(st render.State) *html.Node {
		track, left := off, "2px"
		if st.Checked {
			track, left = on, "calc(100% - "+thumb+" - 2px)"
		}
		return markup.El("div",
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
					markup.Class("ant-switch"),
					markup.Flag("disabled", c.Disabled),
					kit.Action(render.EventToggle, ""),
					markup.Style(
						markup.D("position", "relative"),
						markup.D("width", width),
						markup.D("height", height),
						markup.D("border", "none"),
						markup.D("border-radius", "100px"),
						markup.D("background-color", track),
					),
					markup.Kids(markup.El("span",
						markup.Class("ant-switch-handle"),
						markup.Style(
							markup.D("position", "absolute"),
							markup.D("top", "2px"),
							markup.D("left", left),
							markup.D("width", thumb),
							markup.D("height", thumb),
							markup.D("border-radius", "50%"),
							markup.D("background-color", "#fff"),
							markup.D("box-shadow", "0 2px 4px 0 rgba(0, 35, 11, 0.2)"),
						),
					)),
				),
				markup.El("span", markup.Text(c.Label)),
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

	comp.Root = jsx.El("div", jsx.Attrs(jsx.V("style", jsx.Obj(
		jsx.E("display", jsx.Str("flex")),
		jsx.E("alignItems", jsx.Str("center")),
		jsx.E("gap", jsx.Str("8px")),
	))),
		jsx.El("Switch", jsx.Attrs(
			jsx.X("checked", "checked"),
			jsx.X("onChange", "setChecked"),
			jsx.A("size", switchSize(p.Size())),
			jsx.Flag("disabled", c.Disabled),
			jsx.V("style", jsx.Obj().Put("backgroundColor", background)),
		)),
		jsx.El("span", jsx.Attrs(
			jsx.V("style", jsx.Obj().
				Set("color", style.Value(o.FontColor)).
				Set("fontSize", style.CSS(o.FontSize))),
		), jsx.Text(c.Label)),
	)
	f.Add(comp)
	return f
}
