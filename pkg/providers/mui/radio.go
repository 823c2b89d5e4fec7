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

func radioView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics
	accent := style.Or(s.Color, p.Token("primary", "#1976d2"))

	return func(st render.State) *html.Node {
		group := markup.El("div",
			markup.Class("MuiRadioGroup-root"),
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
			ring := p.Token("muted", "rgba(0, 0, 0, 0.6)")
			if on {
				ring = accent
			}
			dot := markup.El("span",
				markup.Class("MuiRadio-root"),
				markup.Style(
					markup.D("display", "inline-flex"),
					markup.D("align-items", "center"),
					markup.D("justify-content", "center"),
					markup.D("width", m.IconSize),
					markup.D("height", m.IconSize),
					markup.D("border-radius", "50%"),
					markup.D("border", "2px solid "+ring),
				),
			)
			if on {
				markup.Kids(markup.El("span", markup.Style(
					markup.D("width", "50%"),
					markup.D("height", "50%"),
					markup.D("border-radius", "50%"),
					markup.D("background-color", accent),
				)))(dot)
			}
			markup.Kids(markup.El("label",
				markup.Class("MuiFormControlLabel-root"),
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
				markup.Kids(dot, markup.El("span", markup.Text(opt.Text()))),
			))(group)
		}
		return group
	}
}

func radioCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()

	var f jsx.File
	f.Use(pkgCore, "FormControl", "RadioGroup", "FormControlLabel", "Radio")
	comp := jsx.Component{Name: p.Name()}
	f.State(&comp, "value", jsx.Quote(c.SelectedOption()))

	control := jsx.Obj().
		Set("color", style.Value(o.Color)).
		Put("&.Mui-checked", jsx.Obj().Set("color", style.Value(o.Color)))
	label := jsx.Obj().
		Set("color", style.Value(o.FontColor)).
		Put("& .MuiFormControlLabel-label", jsx.Obj().Set("fontSize", style.CSS(o.FontSize)))

	group := jsx.El("RadioGroup", jsx.Attrs(
		jsx.X("value", "value"),
		jsx.X("onChange", "(event) => setValue(event.target.value)"),
		jsx.V("sx", jsx.Obj().
			Set("padding", style.Padding(o.Padding)).
			Set("borderRadius", style.CSS(o.BorderRadius)).
			Set("bgcolor", style.Value(o.BackgroundColor)).
			Set("borderColor", style.Value(o.BorderColor)).
			Set("borderWidth", style.CSS(o.BorderWidth)).
			Set("borderStyle", style.Value(o.BorderStyle))),
	))
	for _, opt := range c.Options {
		group.Children = append(group.Children, jsx.El("FormControlLabel", jsx.Attrs(
			jsx.A("value", opt.Value),
			jsx.V("control", jsx.JSX(jsx.El("Radio", jsx.Attrs(
				jsx.A("size", fieldSize(p.Size())),
				jsx.V("sx", control),
			)))),
			jsx.A("label", opt.Text()),
			jsx.Flag("disabled", c.Disabled),
			jsx.V("sx", label),
		)))
	}

	comp.Root = jsx.El("FormControl", nil, group)
	f.Add(comp)
	return f
}
