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
)

const modalTrigger = "Open Dialog"

// buttonDecls is the look of a solid or outline Chakra button.
func buttonDecls(p render.Props, solid bool, extra ...markup.Decl) []markup.Decl {
	s := p.Style
	primary := p.Token("primary", "#3182ce")
	bg, fg, border := "transparent", primary, "1px solid "+p.Token("border", "#e2e8f0")
	if solid {
		bg, fg, border = primary, p.Token("onPrimary", "#fff"), "none"
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
			markup.D("border", kit.BorderOr(s, border, "1px", p.Token("border", ""))),
			markup.D("box-shadow", style.Value(s.Shadow)),
			markup.D("font-family", p.Token("fontFamily", "")),
			markup.D("font-size", style.CSS(s.FontSize)),
			markup.D("font-weight", "600"),
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
			markup.Class("chakra-button"),
			markup.Data("variant", v),
			markup.Data("size", size(p.Size())),
			markup.Flag("disabled", c.Disabled),
			kit.Action(render.EventPress, ""),
			markup.Style(buttonDecls(p, v == "solid", markup.D("padding", style.Padding(p.Style.Padding)))...),
			markup.Text(c.Label),
		)
	}
}

func buttonCode(p emit.Props) jsx.File {
	c := p.Content()
	var f jsx.File
	f.Use(pkgCore, "Button")
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
	solid := variant(p.Config.Variant) == "solid"
	return func(render.State) *html.Node {
		return markup.El("div",
			markup.Style(markup.D("display", "flex"), markup.D("gap", m.Gap), markup.D("align-items", "center")),
			markup.Kids(
				markup.El("button",
					markup.Attr("type", "button"),
					markup.Class("chakra-button"),
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
					markup.Class("chakra-button"),
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
	f.Use(pkgCore, "IconButton", "Button")
	glyph := icon(&f, c.Icon)
	attrs := func() []jsx.Attr {
		return jsx.Attrs(
			jsx.A("variant", variant(p.Config.Variant)),
			jsx.A("size", size(p.Size())),
			jsx.Flag("disabled", c.Disabled),
			jsx.V("style", styles(p.Styles())),
		)
	}
	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("IconButton", append(jsx.Attrs(jsx.A("aria-label", c.Label)), attrs()...), jsx.El(glyph, nil)),
	})
	f.Add(jsx.Component{
		Name: "CustomIconTextButton",
		Root: jsx.El("Button", attrs(), jsx.El(glyph, nil), jsx.Text(c.Label)),
	})
	return f
}

func modalView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics
	// Trigger and footer buttons keep the provider look; overrides style the dialog.
	chrome := p
	chrome.Style = style.Override{}
	return func(st render.State) *html.Node {
		root := markup.El("div", markup.Kids(
			markup.El("button",
				markup.Attr("type", "button"),
				markup.Class("chakra-button"),
				markup.Flag("disabled", c.Disabled),
				kit.Action(render.EventOpen, ""),
				markup.Style(buttonDecls(chrome, true,
					markup.D("padding", m.PaddingY+" "+m.PaddingX),
					markup.D("border-radius", m.Radius),
				)...),
				markup.Text(kit.OrText(c.Label, modalTrigger)),
			),
		))
		if !st.Open {
			return root
		}
		content := markup.El("section",
			markup.Attr("role", "dialog"),
			markup.Attr("aria-modal", "true"),
			markup.Class("chakra-dialog__content"),
			markup.Style(
				markup.D("width", "100%"),
				markup.D("max-width", "28rem"),
				markup.D("border-radius", style.CSS(s.BorderRadius)),
				markup.D("background-color", style.Or(s.BackgroundColor, p.Token("surface", "#fff"))),
				markup.D("border", kit.BorderOr(s, "", "1px", p.Token("border", ""))),
				markup.D("box-shadow", style.Or(s.Shadow, "0 10px 15px -3px rgba(0, 0, 0, 0.1)")),
				markup.D("font-family", p.Token("fontFamily", "")),
			),
			markup.Kids(
				markup.El("header",
					markup.Style(
						markup.D("display", "flex"),
						markup.D("justify-content", "space-between"),
						markup.D("align-items", "center"),
						markup.D("padding", m.Inset),
					),
					markup.Kids(
						markup.El("h2",
							markup.Style(
								markup.D("margin", "0"),
								markup.D("font-size", "1.125rem"),
								markup.D("font-weight", "600"),
								markup.D("color", style.Or(s.TitleColor, p.Token("text", ""))),
							),
							markup.Text(c.Title),
						),
						markup.El("button",
							markup.Attr("type", "button"),
							markup.Attr("aria-label", "Close"),
							kit.Action(render.EventClose, ""),
							markup.Style(markup.D("border", "none"), markup.D("background", "transparent"), markup.D("cursor", "pointer")),
							markup.Kids(kit.Icon("close", m.IconSize)),
						),
					),
				),
				markup.El("div",
					markup.Class("chakra-dialog__body"),
					markup.Style(
						markup.D("padding", style.Padding(s.Padding)),
						markup.D("font-size", style.CSS(s.FontSize)),
						markup.D("color", style.Or(s.TextColor, p.Token("muted", ""))),
					),
					markup.Text(c.Body),
				),
				markup.El("footer",
					markup.Style(
						markup.D("display", "flex"),
						markup.D("justify-content", "flex-end"),
						markup.D("gap", m.Gap),
						markup.D("padding", m.Inset),
					),
					markup.Kids(
						markup.El("button",
							markup.Attr("type", "button"),
							kit.Action(render.EventClose, ""),
							markup.Style(buttonDecls(chrome, false,
								markup.D("padding", "6px 12px"), markup.D("border-radius", m.Radius))...),
							markup.Text("Cancel"),
						),
						markup.El("button",
							markup.Attr("type", "button"),
							kit.Action(render.EventClose, ""),
							markup.Style(buttonDecls(chrome, true,
								markup.D("padding", "6px 12px"), markup.D("border-radius", m.Radius))...),
							markup.Text("Save"),
						),
					),
				),
			),
		)
		markup.Kids(markup.El("div",
			markup.Class("chakra-dialog__backdrop"),
			kit.Action(render.EventClose, ""),
			markup.Style(
				markup.D("position", "fixed"),
				markup.D("inset", "0"),
				markup.D("display", "flex"),
				markup.D("align-items", "center"),
				markup.D("justify-content", "center"),
				markup.D("background-color", style.Or(s.OverlayColor, p.Token("overlay", "rgba(0, 0, 0, 0.48)"))),
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
	f.Use(pkgCore, "Button", "CloseButton", "Dialog", "Portal")
	comp := jsx.Component{Name: p.Name()}
	f.State(&comp, "open", "false")

	content := jsx.Obj().
		Set("borderRadius", style.CSS(o.BorderRadius)).
		Set("backgroundColor", style.Value(o.BackgroundColor)).
		Set("borderColor", style.Value(o.BorderColor)).
		Set("borderWidth", style.CSS(o.BorderWidth)).
		Set("borderStyle", style.Value(o.BorderStyle)).
		Set("boxShadow", style.Value(o.Shadow))

	comp.Root = jsx.El("Dialog.Root", jsx.Attrs(
		jsx.X("open", "open"),
		jsx.X("onOpenChange", "(details) => setOpen(details.open)"),
		jsx.A("size", size(p.Size())),
	),
		jsx.El("Dialog.Trigger", jsx.Attrs(jsx.Flag("asChild", true)),
			jsx.El("Button", jsx.Attrs(jsx.Flag("disabled", c.Disabled)), jsx.Text(kit.OrText(c.Label, modalTrigger))),
		),
		jsx.El("Portal", nil,
			jsx.El("Dialog.Backdrop", jsx.Attrs(
				jsx.V("style", jsx.Obj().Set("backgroundColor", style.Value(o.OverlayColor))),
			)),
			jsx.El("Dialog.Positioner", nil,
				jsx.El("Dialog.Content", jsx.Attrs(jsx.V("style", content)),
					jsx.El("Dialog.Header", nil,
						jsx.El("Dialog.Title", jsx.Attrs(
							jsx.V("style", jsx.Obj().Set("color", style.Value(o.TitleColor))),
						), jsx.Text(c.Title)),
					),
					jsx.El("Dialog.Body", jsx.Attrs(
						jsx.V("style", jsx.Obj().
							Set("padding", style.Padding(o.Padding)).
							Set("color", style.Value(o.TextColor)).
							Set("fontSize", style.CSS(o.FontSize))),
					), jsx.El("p", nil, jsx.Text(c.Body))),
					jsx.El("Dialog.Footer", nil,
						jsx.El("Dialog.ActionTrigger", jsx.Attrs(jsx.Flag("asChild", true)),
							jsx.El("Button", jsx.Attrs(jsx.A("variant", "outline")), jsx.Text("Cancel")),
						),
						jsx.El("Button", jsx.Attrs(jsx.X("onClick", "() => setOpen(false)")), jsx.Text("Save")),
					),
					jsx.El("Dialog.CloseTrigger", jsx.Attrs(jsx.Flag("asChild", true)),
						jsx.El("CloseButton", jsx.Attrs(jsx.A("size", "sm"))),
					),
				),
			),
		),
	)
	f.Add(comp)
	return f
}
