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

const modalTrigger = "Open Modal"

func modalView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics
	primary := p.Token("primary", "#1976d2")

	action := func(label string, contained bool) *html.Node {
		bg, fg := "transparent", primary
		if contained {
			bg, fg = primary, p.Token("onPrimary", "#fff")
		}
		return markup.El("button",
			markup.Attr("type", "button"),
			markup.Class("MuiButton-root"),
			kit.Action(render.EventClose, ""),
			markup.Style(
				markup.D("padding", "6px 16px"),
				markup.D("border", "none"),
				markup.D("border-radius", "4px"),
				markup.D("background-color", bg),
				markup.D("color", fg),
				markup.D("text-transform", "uppercase"),
				markup.D("cursor", "pointer"),
			),
			markup.Text(label),
		)
	}

	return func(st render.State) *html.Node {
		root := markup.El("div", markup.Kids(
			markup.El("button",
				markup.Attr("type", "button"),
				markup.Class("MuiButton-root", "MuiButton-contained"),
				markup.Flag("disabled", c.Disabled),
				kit.Action(render.EventOpen, ""),
				markup.Style(kit.Decls(
					[]markup.Decl{
						markup.D("padding", m.PaddingY+" "+m.PaddingX),
						markup.D("border", "none"),
						markup.D("border-radius", "4px"),
						markup.D("background-color", primary),
						markup.D("color", p.Token("onPrimary", "#fff")),
						markup.D("font-family", p.Token("fontFamily", "")),
						markup.D("text-transform", "uppercase"),
					},
					kit.Interactive(c.Disabled),
				)...),
				markup.Text(kit.OrText(c.Label, modalTrigger)),
			),
		))
		if !st.Open {
			return root
		}
		dialog := markup.El("div",
			markup.Attr("role", "dialog"),
			markup.Attr("aria-modal", "true"),
			markup.Class("MuiDialog-paper", "MuiPaper-elevation24"),
			markup.Style(
				markup.D("min-width", "320px"),
				markup.D("max-width", "600px"),
				markup.D("border-radius", style.CSS(s.BorderRadius)),
				markup.D("background-color", style.Or(s.BackgroundColor, p.Token("surface", "#fff"))),
				markup.D("border", kit.BorderOr(s, "", "1px", p.Token("border", ""))),
				markup.D("box-shadow", style.Or(s.Shadow, p.Token("shadow", ""))),
				markup.D("font-family", p.Token("fontFamily", "")),
			),
			markup.Kids(
				markup.El("h2",
					markup.Class("MuiDialogTitle-root"),
					markup.Style(
						markup.D("margin", "0"),
						markup.D("padding", "16px 24px"),
						markup.D("font-size", "1.25rem"),
						markup.D("font-weight", "500"),
						markup.D("color", style.Or(s.TitleColor, p.Token("text", ""))),
					),
					markup.Text(c.Title),
				),
				markup.El("div",
					markup.Class("MuiDialogContent-root"),
					markup.Style(
						markup.D("padding", style.Padding(s.Padding)),
						markup.D("font-size", style.CSS(s.FontSize)),
						markup.D("color", style.Or(s.TextColor, p.Token("muted", ""))),
					),
					markup.Text(c.Body),
				),
				markup.El("div",
					markup.Class("MuiDialogActions-root"),
					markup.Style(
						markup.D("display", "flex"),
						markup.D("justify-content", "flex-end"),
						markup.D("gap", m.Gap),
						markup.D("padding", "8px"),
					),
					markup.Kids(action("Cancel", false), action("Confirm", true)),
				),
			),
		)
		markup.Kids(markup.El("div",
			markup.Class("MuiBackdrop-root"),
			kit.Action(render.EventClose, ""),
			markup.Style(
				markup.D("position", "fixed"),
				markup.D("inset", "0"),
				markup.D("display", "flex"),
				markup.D("align-items", "center"),
				markup.D("justify-content", "center"),
				markup.D("background-color", style.Or(s.OverlayColor, p.Token("overlay", "rgba(0, 0, 0, 0.5)"))),
			),
			markup.Kids(dialog),
		))(root)
		return root
	}
}

func modalCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()

	var f jsx.File
	f.Use(pkgCore, "Button", "Dialog", "DialogTitle", "DialogContent", "DialogContentText", "DialogActions")
	comp := jsx.Component{Name: p.Name()}
	f.State(&comp, "open", "false")

	paper := jsx.Obj().
		Set("borderRadius", style.CSS(o.BorderRadius)).
		Set("bgcolor", style.Value(o.BackgroundColor)).
		Set("borderColor", style.Value(o.BorderColor)).
		Set("borderWidth", style.CSS(o.BorderWidth)).
		Set("borderStyle", style.Value(o.BorderStyle)).
		Set("boxShadow", style.Value(o.Shadow))
	backdrop := jsx.Obj().Set("backgroundColor", style.Value(o.OverlayColor))

	slots := jsx.Obj().
		Put("paper", jsx.Obj().Put("sx", paper)).
		Put("backdrop", jsx.Obj().Put("sx", backdrop))

	comp.Root = jsx.Fragment(
		jsx.El("Button", jsx.Attrs(
			jsx.A("variant", "contained"),
			jsx.Flag("disabled", c.Disabled),
			jsx.X("onClick", "() => setOpen(true)"),
		), jsx.Text(kit.OrText(c.Label, modalTrigger))),
		jsx.El("Dialog", jsx.Attrs(
			jsx.X("open", "open"),
			jsx.X("onClose", "() => setOpen(false)"),
			jsx.V("slotProps", slots),
		),
			jsx.El("DialogTitle", jsx.Attrs(
				jsx.V("sx", jsx.Obj().Set("color", style.Value(o.TitleColor))),
			), jsx.Text(c.Title)),
			jsx.El("DialogContent", jsx.Attrs(
				jsx.V("sx", jsx.Obj().Set("padding", style.Padding(o.Padding))),
			),
				jsx.El("DialogContentText", jsx.Attrs(
					jsx.V("sx", jsx.Obj().
						Set("color", style.Value(o.TextColor)).
						Set("fontSize", style.CSS(o.FontSize))),
				), jsx.Text(c.Body)),
			),
			jsx.El("DialogActions", nil,
				jsx.El("Button", jsx.Attrs(jsx.X("onClick", "() => setOpen(false)")), jsx.Text("Cancel")),
				jsx.El("Button", jsx.Attrs(
					jsx.A("variant", "contained"),
					jsx.X("onClick", "() => setOpen(false)"),
				), jsx.Text("Confirm")),
			),
		),
	)
	f.Add(comp)
	return f
}
