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

const modalTrigger = "Open Modal"

func buttonDecls(p render.Props, extra ...markup.Decl) []markup.Decl {
	s := p.Style
	solid := p.Config.Variant.ButtonVariant() != widget.Outlined
	bg, fg := p.Token("surface", "#fff"), p.Token("text", "#171717")
	if solid {
		bg, fg = p.Token("primary", "#171717"), p.Token("onPrimary", "#fff")
	}
	return kit.Decls(
		[]markup.Decl{
			markup.D("display", "inline-flex"),
			markup.D("align-items", "center"),
			markup.D("justify-content", "center"),
			markup.D("gap", p.Metrics.Gap),
			markup.D("border-radius", style.CSS(s.BorderRadius)),
			markup.D("background-color", style.Or(s.BackgroundColor, bg)),
			markup.D("color", style.Or(s.FontColor, fg)),
			markup.D("border", kit.Border(s, "1px", p.Token("border", "#404040"))),
			markup.D("box-shadow", style.Or(s.Shadow, p.Token("shadow", ""))),
			markup.D("font-family", p.Token("fontFamily", "")),
			markup.D("font-size", style.CSS(s.FontSize)),
			markup.D("font-weight", "600"),
			markup.D("transition", "box-shadow 200ms"),
		},
		extra,
		kit.Interactive(p.Content().Disabled),
	)
}

func buttonView(p render.Props) render.View {
	c := p.Content()
	return func(render.State) *html.Node {
		return markup.El("button",
			markup.Attr("type", "button"),
			markup.Flag("disabled", c.Disabled),
			kit.Action(render.EventPress, ""),
			markup.Style(buttonDecls(p, markup.D("padding", style.Padding(p.Style.Padding)))...),
			markup.Text(c.Label),
		)
	}
}

func buttonCode(p emit.Props) jsx.File {
	c := p.Content()
	var f jsx.File
	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("button", jsx.Attrs(
			jsx.A("type", "button"),
			jsx.Flag("disabled", c.Disabled),
			jsx.A("className", kit.Classes("font-semibold transition duration-200", padding(p.Size()), textSize(p.Size()), glow)),
			jsx.V("style", boxStyle(p.Styles())),
		), jsx.Text(c.Label)),
	})
	return f
}

func iconButtonView(p render.Props) render.View {
	c := p.Content()
	m := p.Metrics
	name := icons.Resolve(c.Icon)
	return func(render.State) *html.Node {
		return markup.El("div",
			markup.Style(markup.D("display", "flex"), markup.D("gap", m.Gap), markup.D("align-items", "center")),
			markup.Kids(
				markup.El("button",
					markup.Attr("type", "button"),
					markup.Attr("aria-label", c.Label),
					markup.Flag("disabled", c.Disabled),
					kit.Action(render.EventPress, ""),
					markup.Style(buttonDecls(p,
						markup.D("width", m.ControlSize),
						markup.D("height", m.ControlSize),
						markup.D("padding", "0"),
					)...),
					markup.Kids(kit.Icon(name, m.IconSize)),
				),
				markup.El("button",
					markup.Attr("type", "button"),
					markup.Flag("disabled", c.Disabled),
					kit.Action(render.EventPress, ""),
					markup.Style(buttonDecls(p, markup.D("padding", style.Padding(p.Style.Padding)))...),
					markup.Kids(kit.Icon(name, m.IconSize), markup.El("span", markup.Text(c.Label))),
				),
			),
		)
	}
}

func iconButtonCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()
	var f jsx.File
	glyph := icon(&f, c.Icon)
	box := widget.Pick(p.Size(), "h-8 w-8", "h-10 w-10", "h-12 w-12")
	iconSize := widget.Pick(p.Size(), 14.0, 18.0, 22.0)

	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("button", jsx.Attrs(
			jsx.A("type", "button"),
			jsx.A("aria-label", c.Label),
			jsx.Flag("disabled", c.Disabled),
			jsx.A("className", kit.Classes("flex items-center justify-center transition duration-200", box, glow)),
			jsx.V("style", boxStyle(o)),
		), jsx.El(glyph, jsx.Attrs(jsx.V("size", jsx.Num(iconSize))))),
	})
	f.Add(jsx.Component{
		Name: "CustomIconTextButton",
		Root: jsx.El("button", jsx.Attrs(
			jsx.A("type", "button"),
			jsx.Flag("disabled", c.Disabled),
			jsx.A("className", kit.Classes("flex items-center gap-2 font-semibold transition duration-200", padding(p.Size()), textSize(p.Size()), glow)),
			jsx.V("style", boxStyle(o)),
		),
			jsx.El(glyph, jsx.Attrs(jsx.V("size", jsx.Num(iconSize)))),
			jsx.Text(c.Label),
		),
	})
	return f
}

func modalView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics

	return func(st render.State) *html.Node {
		root := markup.El("div",
			markup.Style(markup.D("display", "flex"), markup.D("align-items", "center"), markup.D("justify-content", "center")),
			markup.Kids(markup.El("button",
				markup.Attr("type", "button"),
				markup.Flag("disabled", c.Disabled),
				kit.Action(render.EventOpen, ""),
				markup.Style(kit.Decls(
					[]markup.Decl{
						markup.D("padding", m.PaddingY+" "+m.PaddingX),
						markup.D("border-radius", m.Radius),
						markup.D("border", "1px solid "+p.Token("border", "#525252")),
						markup.D("background-color", p.Token("surface", "#fff")),
						markup.D("color", p.Token("text", "#525252")),
						markup.D("font-family", p.Token("fontFamily", "")),
						markup.D("font-size", m.FontSize),
					},
					kit.Interactive(c.Disabled),
				)...),
				markup.Text(kit.OrText(c.Label, modalTrigger)),
			)),
		)
		if !st.Open {
			return root
		}
		panel := markup.El("div",
			markup.Attr("role", "dialog"),
			markup.Attr("aria-modal", "true"),
			markup.Style(
				markup.D("position", "relative"),
				markup.D("max-width", "48rem"),
				markup.D("padding", style.Padding(s.Padding)),
				markup.D("border-radius", style.CSS(s.BorderRadius)),
				markup.D("background-color", style.Or(s.BackgroundColor, p.Token("surface", "#fff"))),
				markup.D("border", kit.Border(s, "", "")),
				markup.D("box-shadow", style.Or(s.Shadow, "0 10px 15px -3px rgba(0, 0, 0, 0.1)")),
				markup.D("font-family", p.Token("fontFamily", "")),
			),
			markup.Kids(
				markup.El("h3",
					markup.Style(
						markup.D("margin", "0 0 16px"),
						markup.D("font-size", "1.5rem"),
						markup.D("font-weight", "600"),
						markup.D("color", style.Or(s.TitleColor, p.Token("text", ""))),
					),
					markup.Text(c.Title),
				),
				markup.El("p",
					markup.Style(
						markup.D("margin", "0"),
						markup.D("font-size", style.CSS(s.FontSize)),
						markup.D("line-height", m.LineHeight),
						markup.D("color", style.Or(s.TextColor, p.Token("muted", ""))),
					),
					markup.Text(c.Body),
				),
				markup.El("div",
					markup.Style(markup.D("display", "flex"), markup.D("justify-content", "flex-end"), markup.D("margin-top", "24px")),
					markup.Kids(markup.El("button",
						markup.Attr("type", "button"),
						kit.Action(render.EventClose, ""),
						markup.Style(
							markup.D("padding", "8px 24px"),
							markup.D("border", "none"),
							markup.D("background", "transparent"),
							markup.D("color", "#ef4444"),
							markup.D("font-size", "0.875rem"),
							markup.D("font-weight", "700"),
							markup.D("text-transform", "uppercase"),
							markup.D("cursor", "pointer"),
						),
						markup.Text("Close"),
					)),
				),
			),
		)
		markup.Kids(markup.El("div",
			markup.Style(
				markup.D("position", "fixed"),
				markup.D("inset", "0"),
				markup.D("display", "flex"),
				markup.D("align-items", "center"),
				markup.D("justify-content", "center"),
			),
			markup.Kids(
				markup.El("div",
					kit.Action(render.EventClose, ""),
					markup.Style(
						markup.D("position", "fixed"),
						markup.D("inset", "0"),
						markup.D("backdrop-filter", "blur(4px)"),
						markup.D("background-color", style.Or(s.OverlayColor, p.Token("overlay", "rgba(0, 0, 0, 0.5)"))),
					),
				),
				panel,
			),
		))(root)
		return root
	}
}

func modalCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()

	var f jsx.File
	f.UseClient = true
	f.Use(pkgMotion, "AnimatePresence", "motion")
	comp := jsx.Component{Name: p.Name()}
	f.State(&comp, "open", "false")

	panel := jsx.Obj().
		Set("borderRadius", style.CSS(o.BorderRadius)).
		Set("backgroundColor", style.Value(o.BackgroundColor)).
		Set("border", border(o)).
		Set("padding", style.Padding(o.Padding)).
		Set("boxShadow", style.Value(o.Shadow))

	comp.Root = jsx.El("div", jsx.Attrs(jsx.A("className", "flex items-center justify-center")),
		jsx.El("button", jsx.Attrs(
			jsx.A("type", "button"),
			jsx.X("onClick", "() => setOpen(true)"),
			jsx.Flag("disabled", c.Disabled),
			jsx.A("className", "px-4 py-2 rounded-md border border-neutral-600 text-neutral-600 bg-white hover:bg-gray-100 transition duration-200"),
		), jsx.Text(kit.OrText(c.Label, modalTrigger))),
		jsx.El("AnimatePresence", nil,
			jsx.When("open", jsx.El("div", jsx.Attrs(
				jsx.A("className", "fixed inset-0 z-[2000] flex items-center justify-center overflow-y-auto"),
			),
				jsx.El("motion.div", jsx.Attrs(
					jsx.V("initial", jsx.Obj(jsx.E("opacity", jsx.Num(0)))),
					jsx.V("animate", jsx.Obj(jsx.E("opacity", jsx.Num(1)))),
					jsx.V("exit", jsx.Obj(jsx.E("opacity", jsx.Num(0)))),
					jsx.A("className", "fixed inset-0 bg-black/50 backdrop-blur-sm"),
					jsx.V("style", jsx.Obj().Set("backgroundColor", style.Value(o.OverlayColor))),
					jsx.X("onClick", "() => setOpen(false)"),
				)),
				jsx.El("motion.div", jsx.Attrs(
					jsx.V("initial", jsx.Obj(jsx.E("scale", jsx.Num(0.95)), jsx.E("opacity", jsx.Num(0)))),
					jsx.V("animate", jsx.Obj(jsx.E("scale", jsx.Num(1)), jsx.E("opacity", jsx.Num(1)))),
					jsx.V("exit", jsx.Obj(jsx.E("scale", jsx.Num(0.95)), jsx.E("opacity", jsx.Num(0)))),
					jsx.A("className", "relative z-50 mx-auto my-6 w-auto max-w-3xl rounded-lg bg-white p-6 shadow-lg"),
					jsx.V("style", panel),
				),
					jsx.El("h3", jsx.Attrs(
						jsx.A("className", "mb-4 text-2xl font-semibold"),
						jsx.V("style", jsx.Obj().Set("color", style.Value(o.TitleColor))),
					), jsx.Text(c.Title)),
					jsx.El("p", jsx.Attrs(
						jsx.A("className", "text-lg leading-relaxed text-gray-600"),
						jsx.V("style", jsx.Obj().
							Set("color", style.Value(o.TextColor)).
							Set("fontSize", style.CSS(o.FontSize))),
					), jsx.Text(c.Body)),
					jsx.El("div", jsx.Attrs(jsx.A("className", "mt-6 flex items-center justify-end")),
						jsx.El("button", jsx.Attrs(
							jsx.A("type", "button"),
							jsx.X("onClick", "() => setOpen(false)"),
							jsx.A("className", "px-6 py-2 text-sm font-bold uppercase text-red-500"),
						), jsx.Text("Close")),
					),
				),
			)),
		),
	)
	f.Add(comp)
	return f
}
