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
)

const modalTrigger = "Open Modal"

func buttonDecls(p render.Props, primary bool, extra ...markup.Decl) []markup.Decl {
	s := p.Style
	brand := p.Token("primary", "#1677ff")
	bg, fg := p.Token("surface", "#fff"), p.Token("text", "rgba(0, 0, 0, 0.88)")
	border, shadow := "1px solid "+p.Token("border", "#d9d9d9"), "0 2px 0 rgba(0, 0, 0, 0.02)"
	if primary {
		bg, fg = brand, p.Token("onPrimary", "#fff")
		border, shadow = "1px solid "+brand, "0 2px 0 rgba(5, 145, 255, 0.1)"
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
			markup.D("box-shadow", style.Or(s.Shadow, shadow)),
			markup.D("font-family", p.Token("fontFamily", "")),
			markup.D("font-size", style.CSS(s.FontSize)),
		},
		extra,
		kit.Interactive(p.Content().Disabled),
	)
}

func buttonView(p render.Props) render.View {
	c := p.Content()
	t := buttonType(p.Config.Variant)
	return func(render.State) *html.Node {
		return markup.El("button",
			markup.Attr("type", "button"),
			markup.Class("ant-btn", "ant-btn-"+t, "ant-btn-"+size(p.Size())),
			markup.Flag("disabled", c.Disabled),
			kit.Action(render.EventPress, ""),
			markup.Style(buttonDecls(p, t == "primary", markup.D("padding", style.Padding(p.Style.Padding)))...),
			markup.Kids(markup.El("span", markup.Text(c.Label))),
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
			jsx.A("type", buttonType(p.Config.Variant)),
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
	t := buttonType(p.Config.Variant)
	return func(render.State) *html.Node {
		return markup.El("div",
			markup.Style(markup.D("display", "flex"), markup.D("gap", m.Gap), markup.D("align-items", "center")),
			markup.Kids(
				markup.El("button",
					markup.Attr("type", "button"),
					markup.Class("ant-btn", "ant-btn-"+t, "ant-btn-circle", "ant-btn-icon-only"),
					markup.Attr("aria-label", c.Label),
					markup.Flag("disabled", c.Disabled),
					kit.Action(render.EventPress, ""),
					markup.Style(buttonDecls(p, t == "primary",
						markup.D("width", m.ControlSize),
						markup.D("height", m.ControlSize),
						markup.D("padding", "0"),
					)...),
					markup.Kids(kit.Icon(name, m.IconSize)),
				),
				markup.El("button",
					markup.Attr("type", "button"),
					markup.Class("ant-btn", "ant-btn-"+t),
					markup.Flag("disabled", c.Disabled),
					kit.Action(render.EventPress, ""),
					markup.Style(buttonDecls(p, t == "primary", markup.D("padding", style.Padding(p.Style.Padding)))...),
					markup.Kids(
						markup.El("span", markup.Class("ant-btn-icon"), markup.Kids(kit.Icon(name, m.IconSize))),
						markup.El("span", markup.Text(c.Label)),
					),
				),
			),
		)
	}
}

func iconButtonCode(p emit.Props) jsx.File {
	c := p.Content()
	var f jsx.File
	f.Use(pkgCore, "Button")
	glyph := icon(&f, c.Icon)
	glyphEl := jsx.JSX(jsx.El(glyph, jsx.Attrs(jsx.V("size", jsx.Num(16)))))

	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("Button", jsx.Attrs(
			jsx.A("type", buttonType(p.Config.Variant)),
			jsx.A("shape", "circle"),
			jsx.A("size", size(p.Size())),
			jsx.A("aria-label", c.Label),
			jsx.V("icon", glyphEl),
			jsx.Flag("disabled", c.Disabled),
			jsx.V("style", styles(p.Styles())),
		)),
	})
	f.Add(jsx.Component{
		Name: "CustomIconTextButton",
		Root: jsx.El("Button", jsx.Attrs(
			jsx.A("type", buttonType(p.Config.Variant)),
			jsx.A("size", size(p.Size())),
			jsx.V("icon", glyphEl),
			jsx.Flag("disabled", c.Disabled),
			jsx.V("style", styles(p.Styles())),
		), jsx.Text(c.Label)),
	})
	return f
}

func modalView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics
	chrome := p
	chrome.Style = style.Override{}

	footerButton := func(text string, primary bool) *html.Node {
		return markup.El("button",
			markup.Attr("type", "button"),
			markup.Class("ant-btn"),
			kit.Action(render.EventClose, ""),
			markup.Style(buttonDecls(chrome, primary, markup.D("padding", "4px 15px"), markup.D("border-radius", "6px"))...),
			markup.Text(text),
		)
	}

	return func(st render.State) *html.Node {
		root := markup.El("div", markup.Kids(
			markup.El("button",
				markup.Attr("type", "button"),
				markup.Class("ant-btn", "ant-btn-primary"),
				markup.Flag("disabled", c.Disabled),
				kit.Action(render.EventOpen, ""),
				markup.Style(buttonDecls(chrome, true,
					markup.D("padding", m.PaddingY+" "+m.PaddingX),
					markup.D("border-radius", "6px"),
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
			markup.Class("ant-modal-content"),
			markup.Style(
				markup.D("width", "520px"),
				markup.D("padding", "20px 24px"),
				markup.D("border-radius", style.CSS(s.BorderRadius)),
				markup.D("background-color", style.Or(s.BackgroundColor, p.Token("surface", "#fff"))),
				markup.D("border", kit.BorderOr(s, "", "1px", p.Token("border", ""))),
				markup.D("box-shadow", style.Or(s.Shadow, "0 6px 16px 0 rgba(0, 0, 0, 0.08)")),
				markup.D("font-family", p.Token("fontFamily", "")),
			),
			markup.Kids(
				markup.El("div",
					markup.Class("ant-modal-title"),
					markup.Style(
						markup.D("margin-bottom", "8px"),
						markup.D("font-size", "16px"),
						markup.D("font-weight", "600"),
						markup.D("color", style.Or(s.TitleColor, p.Token("text", ""))),
					),
					markup.Text(c.Title),
				),
				markup.El("div",
					markup.Class("ant-modal-body"),
					markup.Style(
						markup.D("padding", style.Padding(s.Padding)),
						markup.D("font-size", style.CSS(s.FontSize)),
						markup.D("color", style.Or(s.TextColor, p.Token("text", ""))),
					),
					markup.Kids(markup.El("p", markup.Style(markup.D("margin", "0")), markup.Text(c.Body))),
				),
				markup.El("div",
					markup.Class("ant-modal-footer"),
					markup.Style(
						markup.D("display", "flex"),
						markup.D("justify-content", "flex-end"),
						markup.D("gap", m.Gap),
						markup.D("margin-top", "12px"),
					),
					markup.Kids(footerButton("Cancel", false), footerButton("OK", true)),
				),
			),
		)
		markup.Kids(markup.El("div",
			markup.Class("ant-modal-mask"),
			kit.Action(render.EventClose, ""),
			markup.Style(
				markup.D("position", "fixed"),
				markup.D("inset", "0"),
				markup.D("display", "flex"),
				markup.D("align-items", "flex-start"),
				markup.D("justify-content", "center"),
				markup.D("padding-top", "100px"),
				markup.D("background-color", style.Or(s.OverlayColor, p.Token("overlay", "rgba(0, 0, 0, 0.45)"))),
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
	f.Use(pkgCore, "Button", "Modal")
	comp := jsx.Component{Name: p.Name()}
	f.State(&comp, "open", "false")

	modalStyles := jsx.Obj().
		Put("content", jsx.Obj().
			Set("borderRadius", style.CSS(o.BorderRadius)).
			Set("backgroundColor", style.Value(o.BackgroundColor)).
			Set("borderColor", style.Value(o.BorderColor)).
			Set("borderWidth", style.CSS(o.BorderWidth)).
			Set("borderStyle", style.Value(o.BorderStyle)).
			Set("boxShadow", style.Value(o.Shadow))).
		Put("header", jsx.Obj().Set("backgroundColor", style.Value(o.BackgroundColor))).
		Put("body", jsx.Obj().
			Set("padding", style.Padding(o.Padding)).
			Set("fontSize", style.CSS(o.FontSize))).
		Put("mask", jsx.Obj().Set("backgroundColor", style.Value(o.OverlayColor)))

	var title jsx.Value = jsx.Str(c.Title)
	if o.TitleColor != nil {
		title = jsx.JSX(jsx.El("span", jsx.Attrs(
			jsx.V("style", jsx.Obj().Set("color", style.Value(o.TitleColor))),
		), jsx.Text(c.Title)))
	}

	comp.Root = jsx.Fragment(
		jsx.El("Button", jsx.Attrs(
			jsx.A("type", "primary"),
			jsx.Flag("disabled", c.Disabled),
			jsx.X("onClick", "() => setOpen(true)"),
		), jsx.Text(kit.OrText(c.Label, modalTrigger))),
		jsx.El("Modal", jsx.Attrs(
			jsx.V("title", title),
			jsx.X("open", "open"),
			jsx.X("onOk", "() => setOpen(false)"),
			jsx.X("onCancel", "() => setOpen(false)"),
			jsx.V("styles", modalStyles),
		),
			jsx.El("p", jsx.Attrs(
				jsx.V("style", jsx.Obj().Set("color", style.Value(o.TextColor))),
			), jsx.Text(c.Body)),
		),
	)
	f.Add(comp)
	return f
}
