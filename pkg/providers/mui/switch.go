package mui

import (
	"golang.org/x/net/html"

	"github.com/goliatone/go-compareui/pkg/emit"
	"github.com/goliatone/go-compareui/pkg/jsx"
	"github.com/goliatone/go-compareui/pkg/markup"
	"github.com/goliatone/go-compareui/pkg/providers/internal/kit"
	"github.com/goliatone/go-compareui/pkg/render"
	"github.com/goliatone/go-compareui/pkg/style"
	"github.com/goliatone/go-compareui/pkg/widget"
)

func switchView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics
	on := style.Or(style.First(s.ActiveColor, s.Color), p.Token("primary", "#1976d2"))
	off := style.Or(s.InactiveColor, "#bdbdbd")
	width := widget.Pick(p.Size(), "28px", "34px", "42px")
	thumb := widget.Pick(p.Size(), "16px", "20px", "24px")

	return func(st render.State) *html.Node {
		track, left := off, "0"
		if st.Checked {
			track, left = on, "calc(100% - "+thumb+")"
		}
		return markup.El("label",
			markup.Class("MuiFormControlLabel-root"),
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
					markup.Class("MuiSwitch-root"),
					markup.Flag("disabled", c.Disabled),
					kit.Action(render.EventToggle, ""),
					markup.Style(
						markup.D("position", "relative"),
						markup.D("width", width),
						markup.D("height", thumb),
						markup.D("padding", "0"),
						markup.D("border", "none"),
						markup.D("border-radius", thumb),
						markup.D("background-color", track),
						markup.D("opacity", "0.9"),
					),
					markup.Kids(markup.El("span",
						markup.Class("MuiSwitch-thumb"),
						markup.Style(
							markup.D("position", "absolute"),
							markup.D("top", "0"),
							markup.D("left", left),
							markup.D("width", thumb),
							markup.D("height", thumb),
							markup.D("border-radius", "50%"),
							markup.D("background-color", "#fff"),
							markup.D("box-shadow", "0px 2px 1px -1px rgba(0,0,0,0.2)"),
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
	f.Use(pkgCore, "FormControlLabel", "Switch")
	comp := jsx.Component{Name: p.Name()}
	f.State(&comp, "checked", boolAttr(c.Checked))

	active := style.Value(style.First(o.ActiveColor, o.Color))
	control := jsx.Obj().
		Put("& .MuiSwitch-switchBase.Mui-checked", jsx.Obj().Set("color", active)).
		Put("& .MuiSwitch-switchBase.Mui-checked + .MuiSwitch-track", jsx.Obj().Set("backgroundColor", active)).
		Put("& .MuiSwitch-track", jsx.Obj().Set("backgroundColor", style.Value(o.InactiveColor)))

	comp.Root = jsx.El("FormControlLabel", jsx.Attrs(
		jsx.V("control", jsx.JSX(jsx.El("Switch", jsx.Attrs(
			jsx.X("checked", "checked"),
			jsx.X("onChange", "(event) => setChecked(event.target.checked)"),
			jsx.A("size", fieldSize(p.Size())),
			jsx.V("sx", control),
		)))),
		jsx.A("label", c.Label),
		jsx.Flag("disabled", c.Disabled),
		jsx.V("sx", jsx.Obj().
			Set("color", style.Value(o.FontColor)).
			Put("& .MuiFormControlLabel-label", jsx.Obj().Set("fontSize", style.CSS(o.FontSize)))),
	))
	f.Add(comp)
	return f
}
