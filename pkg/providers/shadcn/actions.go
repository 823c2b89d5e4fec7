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
)

const modalTrigger = "Open Dialog"

func buttonDecls(p render.Props, solid bool, extra ...markup.Decl) []markup.Decl {
	s := p.Style
	bg, fg, border := p.Token("surface", "#fff"), p.Token("text", "#09090b"), "1px solid "+p.Token("border", "#e4e4e7")
	if solid {
		bg, fg, border = p.Token("primary", "#18181b"), p.Token("onPrimary", "#fafafa"), "none"
	}
	return kit.Decls(
		[]markup.Decl{
			markup.D("display", "inline-flex"),
			markup.D("align-items", "center"),
			markup.D("justify-content", "center"),
			markup.D("gap", p.Metrics.Gap),
			markup.D("white-space", "nowrap"),
			markup.D("border-radius", style.CSS(s.BorderRadius)),
			markup.D("background-color", style.Or(s.BackgroundColor, bg)),
			markup.D("color", style.Or(s.FontColor, fg)),
			markup.D("border", kit.BorderOr(s, border, "1px", p.Token("border", ""))),
			markup.D("box-shadow", style.Or(s.Shadow, p.Token("shadow", ""))),
			markup.D("font-family", p.Token("fontFamily", "")),
			markup.D("font-size", style.CSS(s.FontSize)),
			markup.D("font-weight", "500"),
		},
		extra,
		kit.Interactive(p.Content().Disabled),
	)
}

func buttonView(p render.Props) render.View {
	c := p.Content()
	v := variant(p.Config.Variant)
	return func(render.State) *html.Node {
		return markup.El("button",
			markup.Attr("type", "button"),
			markup.Data("slot", "button"),
			markup.Data("variant", v),
			markup.Flag("disabled", c.Disabled),
			kit.Action(render.EventPress, ""),
			markup.Style(buttonDecls(p, v == "default", markup.D("padding", style.Padding(p.Style.Padding)))...),
			markup.Text(c.Label),
		)
	}
}

func buttonCode(p emit.Props) jsx.File {
	c := p.Content()
	var f jsx.File
	f.Use(ui("button"), "Button")
	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("Button", jsx.Attrs(
			jsx.A("variant", variant(p.Config.Variant)),
			jsx.A("size", size(p.Size())),
			jsx.Flag("disabled", c.Disabled),
			jsx.V("style", styles(p.Styles())),
		), jsx.Text(c.Label)),
	})
	return f
}

func iconButtonView(p render.Props) render.View {
	c := p.Content()
	m := p.Metrics
	name := icons.Resolve(c.Icon)
	solid := variant(p.Config.Variant) == "default"
	return func(render.State) *html.Node {
		return markup.El("div",
			markup.Style(markup.D("display", "flex"), markup.D("gap", m.Gap), markup.D("align-items", "center")),
			markup.Kids(
				markup.El("button",
					markup.Attr("type", "button"),
					markup.Data("slot", "button"),
					markup.Data("size", "icon"),
					markup.Attr("aria-label", c.Label),
					markup.Flag("disabled", c.Disabled),
					kit.Action(render.EventPress, ""),
					markup.Style(buttonDecls(p, solid,
						markup.D("width", m.ControlSize),
						markup.D("height", m.ControlSize),
						markup.D("padding", "0"),
					)...),
					markup.Kids(kit.Icon(name, m.IconSize)),
				),
				markup.El("button",
					markup.Attr("type", "button"),
					markup.Data("slot", "button"),
					markup.Flag("disabled", c.Disabled),
					kit.Action(render.EventPress, ""),
					markup.Style(buttonDecls(p, solid, markup.D("padding", style.Padding(p.Style.Padding)))...),
					markup.Kids(kit.Icon(name, m.IconSize), markup.El("span", markup.Text(c.Label))),
				),
			),
		)
	}
}

func iconButtonCode(p emit.Props) jsx.File {
	c := p.Content()
	var f jsx.File
	f.Use(ui("button"), "Button")
	glyph := icon(&f, c.Icon)

	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("Button", jsx.Attrs(
			jsx.A("variant", variant(p.Config.Variant)),
			jsx.A("size", "icon"),
			jsx.A("aria-label", c.Label),
			jsx.Flag("disabled", c.Disabled),
			jsx.V("style", styles(p.Styles())),
		), jsx.El(glyph, jsx.Attrs(jsx.A("className", "h-4 w-4")))),
	})
	f.Add(jsx.Component{
		Name: "CustomIconTextButton",
		Root: jsx.El("Button", jsx.Attrs(
			jsx.A("variant", variant(p.Config.Variant)),
			jsx.A("size", size(p.Size())),
			jsx.Flag("disabled", c.Disabled),
			jsx.V("style", styles(p.Styles())),
		),
			jsx.El(glyph, jsx.Attrs(jsx.A("className", "mr-2 h-4 w-4"))),
			jsx.Text(c.Label),
		),
	})
	return f
}

func modalView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics
	chrome := p
	chrome.Style = style.Override{}

	return func(st render.State) *html.Node {
		root := markup.El("div", markup.Kids(
			markup.El("button",
				markup.Attr("type", "button"),
				markup.Data("slot", "dialog-trigger"),
				markup.Flag("disabled", c.Disabled),
				kit.Action(render.EventOpen, ""),
				markup.Style(buttonDecls(chrome, false,
					markup.D("padding", m.PaddingY+" "+m.PaddingX),
					markup.D("border-radius", m.Radius),
				)...),
				markup.Text(kit.OrText(c.Label, modalTrigger)),
			),
		))
		if !st.Open {
			return root
		}
		content := markup.El("div",
			markup.Attr("role", "dialog"),
			markup.Attr("aria-modal", "true"),
			markup.Data("slot", "dialog-content"),
			markup.Style(
				markup.D("position", "relative"),
				markup.D("display", "grid"),
				markup.D("gap", m.Inset),
				markup.D("width", "100%"),
				markup.D("max-width", "425px"),
				markup.D("padding", style.Padding(s.Padding)),
				markup.D("border-radius", style.CSS(s.BorderRadius)),
				markup.D("background-color", style.Or(s.BackgroundColor, p.Token("surface", "#fff"))),
				markup.D("border", kit.Border(s, "1px", p.Token("border", "#e4e4e7"))),
				markup.D("box-shadow", style.Or(s.Shadow, "0 10px 15px -3px rgba(0, 0, 0, 0.1)")),
				markup.D("font-family", p.Token("fontFamily", "")),
			),
			markup.Kids(
				markup.El("div",
					markup.Data("slot", "dialog-header"),
					markup.Style(markup.D("display", "flex"), markup.D("flex-direction", "column"), markup.D("gap", "6px")),
					markup.Kids(
						markup.El("h2",
							markup.Data("slot", "dialog-title"),
							markup.Style(
								markup.D("margin", "0"),
								markup.D("font-size", "1.125rem"),
								markup.D("font-weight", "600"),
								markup.D("color", style.Or(s.TitleColor, p.Token("text", ""))),
							),
							markup.Text(c.Title),
						),
						markup.El("p",
							markup.Data("slot", "dialog-description"),
							markup.Style(
								markup.D("margin", "0"),
								markup.D("font-size", style.CSS(s.FontSize)),
								markup.D("color", style.Or(s.TextColor, p.Token("muted", ""))),
							),
							markup.Text(c.Body),
						),
					),
				),
				markup.El("div",
					markup.Data("slot", "dialog-footer"),
					markup.Style(markup.D("display", "flex"), markup.D("justify-content", "flex-end"), markup.D("gap", m.Gap)),
					markup.Kids(
						markup.El("button",
							markup.Attr("type", "button"),
							kit.Action(render.EventClose, ""),
							markup.Style(buttonDecls(chrome, false, markup.D("padding", "8px 16px"), markup.D("border-radius", "6px"))...),
							markup.Text("Cancel"),
						),
						markup.El("button",
							markup.Attr("type", "button"),
							kit.Action(render.EventClose, ""),
							markup.Style(buttonDecls(chrome, true, markup.D("padding", "8px 16px"), markup.D("border-radius", "6px"))...),
							markup.Text("Continue"),
						),
					),
				),
				markup.El("button",
					markup.Attr("type", "button"),
					markup.Attr("aria-label", "Close"),
					kit.Action(render.EventClose, ""),
					markup.Style(
						markup.D("position", "absolute"),
						markup.D("top", "16px"),
						markup.D("right", "16px"),
						markup.D("border", "none"),
						markup.D("background", "transparent"),
						markup.D("opacity", "0.7"),
						markup.D("cursor", "pointer"),
					),
					markup.Kids(kit.Icon("close", "16px")),
				),
			),
		)
		markup.Kids(markup.El("div",
			markup.Data("slot", "dialog-overlay"),
			kit.Action(render.EventClose, ""),
			markup.Style(
				markup.D("position", "fixed"),
				markup.D("inset", "0"),
				markup.D("display", "flex"),
				markup.D("align-items", "center"),
				markup.D("justify-content", "center"),
				markup.D("background-color", style.Or(s.OverlayColor, p.Token("overlay", "rgba(0, 0, 0, 0.8)"))),
			),
			markup.Kids(content),
		))(root)
		return root
	}
}

func modalCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()

	var f jsx.File
	f.Use(ui("button"), "Button")
	f.Use(ui("dialog"), "Dialog", "DialogContent", "DialogDescription", "DialogFooter", "DialogHeader", "DialogTitle", "DialogTrigger")
	comp := jsx.Component{Name: p.Name()}
	f.State(&comp, "open", "false")

	var overlay *jsx.Element
	if o.OverlayColor != nil {
		overlay = jsx.El("div", jsx.Attrs(
			jsx.A("className", "fixed inset-0 -z-10"),
			jsx.V("style", jsx.Obj().Set("backgroundColor", style.Value(o.OverlayColor))),
		))
	}

	comp.Root = jsx.El("Dialog", jsx.Attrs(
		jsx.X("open", "open"),
		jsx.X("onOpenChange", "setOpen"),
	),
		jsx.El("DialogTrigger", jsx.Attrs(jsx.Flag("asChild", true)),
			jsx.El("Button", jsx.Attrs(
				jsx.A("variant", "outline"),
				jsx.Flag("disabled", c.Disabled),
			), jsx.Text(kit.OrText(c.Label, modalTrigger))),
		),
		jsx.El("DialogContent", jsx.Attrs(
			jsx.A("className", "sm:max-w-[425px]"),
			jsx.V("style", jsx.Obj().
				Set("borderRadius", style.CSS(o.BorderRadius)).
				Set("backgroundColor", style.Value(o.BackgroundColor)).
				Set("borderColor", style.Value(o.BorderColor)).
				Set("borderWidth", style.CSS(o.BorderWidth)).
				Set("borderStyle", style.Value(o.BorderStyle)).
				Set("padding", style.Padding(o.Padding)).
				Set("boxShadow", style.Value(o.Shadow))),
		),
			overlay,
			jsx.El("DialogHeader", nil,
				jsx.El("DialogTitle", jsx.Attrs(
					jsx.V("style", jsx.Obj().Set("color", style.Value(o.TitleColor))),
				), jsx.Text(c.Title)),
				jsx.El("DialogDescription", jsx.Attrs(
					jsx.V("style", jsx.Obj().
						Set("color", style.Value(o.TextColor)).
						Set("fontSize", style.CSS(o.FontSize))),
				), jsx.Text(c.Body)),
			),
			jsx.El("DialogFooter", nil,
				jsx.El("Button", jsx.Attrs(
					jsx.A("variant", "outline"),
					jsx.X("onClick", "() => setOpen(false)"),
				), jsx.Text("Cancel")),
				jsx.El("Button", jsx.Attrs(jsx.X("onClick", "() => setOpen(false)")), jsx.Text("Continue")),
			),
		),
	)
	f.Add(comp)
	return f
}
