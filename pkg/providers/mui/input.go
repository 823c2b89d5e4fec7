package mui

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

func inputVariant(v widget.Variant) string {
	return string(v.InputVariant())
}

func inputView(p render.Props) render.View {
	c := p.Content()
	s := p.Style
	m := p.Metrics
	v := inputVariant(p.Config.Variant)
	id := kit.ID("mui-input", c.Label)

	box := []markup.Decl{
		markup.D("display", "flex"),
		markup.D("align-items", "center"),
		markup.D("gap", m.Gap),
		markup.D("padding", style.Padding(s.Padding)),
		markup.D("color", style.Or(s.TextColor, p.Token("text", ""))),
	}
	switch v {
	case "filled":
		box = append(box,
			markup.D("background-color", style.Or(s.BackgroundColor, "rgba(0, 0, 0, 0.06)")),
			markup.D("border-radius", style.CSS(s.BorderRadius)+" "+style.CSS(s.BorderRadius)+" 0 0"),
			markup.D("border-bottom", "1px solid "+style.Or(s.BorderColor, p.Token("border", ""))),
		)
	case "standard":
		box = append(box,
			markup.D("background-color", style.Value(s.BackgroundColor)),
			markup.D("border-bottom", "1px solid "+style.Or(s.BorderColor, p.Token("border", ""))),
		)
	default:
		box = append(box,
			markup.D("background-color", style.Value(s.BackgroundColor)),
			markup.D("border-radius", style.CSS(s.BorderRadius)),
			markup.D("border", kit.Border(s, "1px", p.Token("border", ""))),
		)
	}

	return func(st render.State) *html.Node {
		field := markup.El("div",
			markup.Class("MuiInputBase-root", "MuiInputBase-"+v),
			markup.Style(box...),
		)
		if c.Icon != "" {
			markup.Kids(kit.Icon(icons.Resolve(c.Icon), m.IconSize))(field)
		}
		markup.Kids(markup.El("input",
			markup.Attr("id", id),
			markup.Attr("type", "text"),
			markup.AttrIf("placeholder", c.Placeholder),
			markup.Attr("value", st.Text),
			markup.Flag("disabled", c.Disabled),
			kit.Action(render.EventInput, ""),
			markup.Style(
				markup.D("flex", "1"),
				markup.D("border", "none"),
				markup.D("outline", "none"),
				markup.D("background", "transparent"),
				markup.D("font-family", p.Token("fontFamily", "")),
				markup.D("font-size", style.CSS(s.FontSize)),
				markup.D("color", "inherit"),
			),
		))(field)

		return markup.El("div",
			markup.Class("MuiTextField-root"),
			markup.Style(markup.D("display", "flex"), markup.D("flex-direction", "column"), markup.D("gap", "4px")),
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
				field,
			),
		)
	}
}

func inputCode(p emit.Props) jsx.File {
	c := p.Content()
	o := p.Styles()

	var f jsx.File
	f.Use(pkgCore, "TextField")

	var adornment jsx.Value
	if c.Icon != "" {
		f.Use(pkgCore, "InputAdornment")
		icon := iconImport(&f, icons.Material(c.Icon))
		adornment = jsx.Obj(jsx.E("input", jsx.Obj(jsx.E("startAdornment", jsx.JSX(
			jsx.El("InputAdornment", jsx.Attrs(jsx.A("position", "start")), jsx.El(icon, nil)),
		)))))
	}

	base := jsx.Obj().
		Set("borderRadius", style.CSS(o.BorderRadius)).
		Set("bgcolor", style.Value(o.BackgroundColor)).
		Set("color", style.Value(o.TextColor)).
		Set("padding", style.Padding(o.Padding)).
		Set("fontSize", style.CSS(o.FontSize))
	outline := jsx.Obj().
		Set("borderColor", style.Value(o.BorderColor)).
		Set("borderWidth", style.CSS(o.BorderWidth)).
		Set("borderStyle", style.Value(o.BorderStyle))
	focus := jsx.Obj().Set("borderColor", style.Value(o.FocusColor))

	fieldSx := jsx.Obj().
		Put("& .MuiInputBase-root", base).
		Put("& fieldset", outline).
		Put("& .Mui-focused .MuiOutlinedInput-notchedOutline", focus).
		Put("& .MuiInputLabel-root", jsx.Obj().Set("color", style.Value(o.FontColor)))

	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("TextField", jsx.Attrs(
			jsx.A("label", c.Label),
			jsx.A("placeholder", c.Placeholder),
			jsx.A("variant", inputVariant(p.Config.Variant)),
			jsx.A("size", fieldSize(p.Size())),
			jsx.Flag("disabled", c.Disabled),
			jsx.Flag("fullWidth", true),
			jsx.V("slotProps", adornment),
			jsx.V("sx", fieldSx),
		)),
	})
	return f
}
