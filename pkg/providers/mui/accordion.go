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

func accordionView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics

	return func(st render.State) *html.Node {
		rotate := "rotate(0deg)"
		if st.Open {
			rotate = "rotate(180deg)"
		}
		summary := markup.El("button",
			markup.Attr("type", "button"),
			markup.Class("MuiAccordionSummary-root"),
			markup.Attr("aria-expanded", boolAttr(st.Open)),
			kit.Action(render.EventToggle, ""),
			markup.Style(
				markup.D("display", "flex"),
				markup.D("width", "100%"),
				markup.D("align-items", "center"),
				markup.D("justify-content", "space-between"),
				markup.D("padding", style.Padding(s.Padding)),
				markup.D("border", "none"),
				markup.D("background", "transparent"),
				markup.D("font-family", p.Token("fontFamily", "")),
				markup.D("font-size", style.CSS(s.FontSize)),
				markup.D("font-weight", "600"),
				markup.D("color", style.Or(s.TitleColor, p.Token("text", ""))),
				markup.D("cursor", "pointer"),
			),
			markup.Kids(
				markup.El("span", markup.Text(c.Title)),
				markup.El("span",
					markup.Class("MuiAccordionSummary-expandIconWrapper"),
					markup.Style(markup.D("display", "inline-flex"), markup.D("transform", rotate)),
					markup.Kids(kit.Icon("expand", m.IconSize)),
				),
			),
		)
		root := markup.El("div",
			markup.Class("MuiAccordion-root", "MuiPaper-outlined"),
			markup.Style(kit.Decls(
				[]markup.Decl{
					markup.D("border", kit.BorderOr(s, "1px solid "+p.Token("border", "#e0e0e0"), "1px", p.Token("border", "#e0e0e0"))),
					markup.D("border-radius", style.CSS(s.BorderRadius)),
					markup.D("overflow", "hidden"),
					markup.D("background-color", style.Or(s.BackgroundColor, p.Token("surface", ""))),
					markup.D("box-shadow", style.Value(s.Shadow)),
				},
			)...),
			markup.Kids(summary),
		)
		if st.Open {
			markup.Kids(markup.El("div",
				markup.Class("MuiAccordionDetails-root"),
				markup.Style(
					markup.D("padding", "0 "+m.Inset+" "+m.Inset),
					markup.D("font-size", m.FontSizeSmall),
					markup.D("line-height", m.LineHeight),
					markup.D("color", style.Or(s.AnswerColor, p.Token("muted", ""))),
				),
				markup.Text(c.Body),
			))(root)
		}
		return root
	}
}

func accordionCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()

	var f jsx.File
	f.Use(pkgCore, "Accordion", "AccordionSummary", "AccordionDetails", "Typography")
	expand := iconImport(&f, "ExpandMore")

	titleVariant := widget.Pick(p.Size(), "body2", "subtitle1", "h6")
	bodyVariant := widget.Pick(p.Size(), "caption", "body2", "body1")

	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("Accordion", jsx.Attrs(
			jsx.A("variant", "outlined"),
			jsx.Flag("disabled", c.Disabled),
			jsx.V("sx", jsx.Obj().
				Set("borderRadius", style.CSS(o.BorderRadius)).
				Set("bgcolor", style.Value(o.BackgroundColor)).
				Set("borderColor", style.Value(o.BorderColor)).
				Set("borderWidth", style.CSS(o.BorderWidth)).
				Set("borderStyle", style.Value(o.BorderStyle)).
				Set("boxShadow", style.Value(o.Shadow))),
		),
			jsx.El("AccordionSummary", jsx.Attrs(
				jsx.V("expandIcon", jsx.JSX(jsx.El(expand, jsx.Attrs(
					jsx.V("sx", jsx.Obj().Set("color", style.Value(o.TitleColor))),
				)))),
				jsx.V("sx", jsx.Obj().Set("padding", style.Padding(o.Padding))),
			),
				jsx.El("Typography", jsx.Attrs(
					jsx.A("variant", titleVariant),
					jsx.V("sx", jsx.Obj().
						Set("color", style.Value(o.TitleColor)).
						Set("fontSize", style.CSS(o.FontSize))),
				), jsx.Text(c.Title)),
			),
			jsx.El("AccordionDetails", nil,
				jsx.El("Typography", jsx.Attrs(
					jsx.A("variant", bodyVariant),
					jsx.V("sx", jsx.Obj().Set("color", style.Value(o.AnswerColor))),
				), jsx.Text(c.Body)),
			),
		),
	})
	return f
}

func boolAttr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
