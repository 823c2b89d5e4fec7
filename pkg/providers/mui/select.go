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

func selectView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics
	id := kit.ID("mui-select", c.Label)

	return func(st render.State) *html.Node {
		sel := markup.El("select",
			markup.Attr("id", id),
			markup.Class("MuiSelect-select", "MuiOutlinedInput-input"),
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
		markup.Kids(markup.El("option",
			markup.Attr("value", ""),
			markup.Flag("disabled", true),
			markup.Flag("selected", st.Selected == ""),
			markup.Text(c.Placeholder),
		))(sel)
		for _, opt := range c.Options {
			markup.Kids(markup.El("option",
				markup.Attr("value", opt.Value),
				markup.Flag("selected", opt.Value == st.Selected),
				markup.Text(opt.Text()),
			))(sel)
		}
		return markup.El("div",
			markup.Class("MuiFormControl-root"),
			markup.Style(markup.D("display", "flex"), markup.D("flex-direction", "column"), markup.D("gap", "4px"), markup.D("min-width", "200px")),
			markup.Kids(
				markup.El("label",
					markup.Attr("for", id),
					markup.Class("MuiInputLabel-root"),
					markup.Style(
						markup.D("font-size", m.FontSizeSmall),
						markup.D("color", style.Or(s.FontColor, p.Token("muted", ""))),
					),
					markup.Text(c.Label),
				),
				sel,
			),
		)
	}
}

func selectCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()

	var f jsx.File
	f.Use(pkgCore, "FormControl", "InputLabel", "Select", "MenuItem")
	comp := jsx.Component{Name: p.Name()}
	f.State(&comp, "value", jsx.Quote(c.SelectedOption()))

	labelID := kit.ID("select", c.Label) + "-label"
	field := jsx.Obj().
		Set("borderRadius", style.CSS(o.BorderRadius)).
		Set("bgcolor", style.Value(o.BackgroundColor)).
		Set("color", style.Value(o.TextColor)).
		Set("fontSize", style.CSS(o.FontSize)).
		Put("& .MuiSelect-select", jsx.Obj().Set("padding", style.Padding(o.Padding))).
		Put("& .MuiOutlinedInput-notchedOutline", jsx.Obj().
			Set("borderColor", style.Value(o.BorderColor)).
			Set("borderWidth", style.CSS(o.BorderWidth)).
			Set("borderStyle", style.Value(o.BorderStyle))).
		Put("&.Mui-focused .MuiOutlinedInput-notchedOutline", jsx.Obj().
			Set("borderColor", style.Value(o.FocusColor)))

	sel := jsx.El("Select", jsx.Attrs(
		jsx.A("labelId", labelID),
		jsx.X("value", "value"),
		jsx.A("label", c.Label),
		jsx.Flag("displayEmpty", c.Placeholder != ""),
		jsx.X("onChange", "(event) => setValue(event.target.value)"),
		jsx.V("sx", field),
	))
	if c.Placeholder != "" {
		sel.Children = append(sel.Children, jsx.El("MenuItem", jsx.Attrs(jsx.V("value", jsx.Str("")), jsx.Flag("disabled", true)),
			jsx.El("em", nil, jsx.Text(c.Placeholder)),
		))
	}
	for _, opt := range c.Options {
		sel.Children = append(sel.Children, jsx.El("MenuItem", jsx.Attrs(jsx.A("value", opt.Value)), jsx.Text(opt.Text())))
	}

	comp.Root = jsx.El("FormControl", jsx.Attrs(
		jsx.A("size", fieldSize(p.Size())),
		jsx.Flag("disabled", c.Disabled),
		jsx.V("sx", jsx.Obj(jsx.E("minWidth", jsx.Num(200)))),
	),
		jsx.El("InputLabel", jsx.Attrs(
			jsx.A("id", labelID),
			jsx.V("sx", jsx.Obj().Set("color", style.Value(o.FontColor))),
		), jsx.Text(c.Label)),
		sel,
	)
	f.Add(comp)
	return f
}
