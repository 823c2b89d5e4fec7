// Package kit holds the view and emitter helpers shared by the provider
// packages.
package kit

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/goliatone/go-compareui/pkg/icons"
	"github.com/goliatone/go-compareui/pkg/jsx"
	"github.com/goliatone/go-compareui/pkg/markup"
	"github.com/goliatone/go-compareui/pkg/render"
	"github.com/goliatone/go-compareui/pkg/style"
)

// Icon returns the icon node, or nil when name is not in the icon set.
func Icon(name, size string) *html.Node {
	node, err := icons.Node(name, size)
	if err != nil {
		return nil
	}
	return node
}

// Action marks a node as the target of a user action.
func Action(kind render.EventKind, value string) markup.Part {
	return func(n *html.Node) {
		markup.Attr("data-action", string(kind))(n)
		if value != "" {
			markup.Attr("data-value", value)(n)
		}
	}
}

// Border composes a CSS border shorthand from the set parts of o, falling
// back to the given width and colour.
func Border(o style.Override, width, color string) string {
	w := style.CSS(o.BorderWidth)
	if w == "" {
		w = width
	}
	c := style.Or(o.BorderColor, color)
	if w == "" || c == "" {
		return ""
	}
	return w + " " + style.Or(o.BorderStyle, "solid") + " " + c
}

// Surface returns the declarations of the common box fields that are set on
// o, in a fixed order.
func Surface(o style.Override) []markup.Decl {
	return []markup.Decl{
		markup.D("background-color", style.Value(o.BackgroundColor)),
		markup.D("color", style.Value(o.FontColor)),
		markup.D("border-color", style.Value(o.BorderColor)),
		markup.D("border-width", style.CSS(o.BorderWidth)),
		markup.D("border-style", style.Value(o.BorderStyle)),
		markup.D("box-shadow", style.Value(o.Shadow)),
	}
}

// StyleObject maps the common box fields set on o to React style keys in a
// fixed order. Unset fields are left out.
func StyleObject(o style.Override) jsx.Object {
	return jsx.Obj().
		Set("borderRadius", style.CSS(o.BorderRadius)).
		Set("backgroundColor", style.Value(o.BackgroundColor)).
		Set("color", style.Value(o.FontColor)).
		Set("borderColor", style.Value(o.BorderColor)).
		Set("borderWidth", style.CSS(o.BorderWidth)).
		Set("borderStyle", style.Value(o.BorderStyle)).
		Set("padding", style.Padding(o.Padding)).
		Set("fontSize", style.CSS(o.FontSize)).
		Set("boxShadow", style.Value(o.Shadow))
}

// Rename returns a copy of obj with the key from renamed to to.
func Rename(obj jsx.Object, from, to string) jsx.Object {
	out := make(jsx.Object, len(obj))
	for idx, entry := range obj {
		if entry.Key == from {
			entry.Key = to
		}
		out[idx] = entry
	}
	return out
}

// Classes joins class names, skipping empty ones.
func Classes(names ...string) string {
	out := ""
	for _, name := range names {
		if name == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += name
	}
	return out
}

// BorderOr returns def unless one of the border fields of o is set, in which
// case the shorthand is composed from o over width and color.
func BorderOr(o style.Override, def, width, color string) string {
	if o.BorderWidth == nil && o.BorderColor == nil && o.BorderStyle == nil {
		return def
	}
	return Border(o, width, color)
}

// Interactive returns the cursor and opacity declarations of an enabled or
// disabled control.
func Interactive(disabled bool) []markup.Decl {
	if disabled {
		return []markup.Decl{markup.D("cursor", "not-allowed"), markup.D("opacity", "0.5")}
	}
	return []markup.Decl{markup.D("cursor", "pointer")}
}

// Decls concatenates declaration groups.
func Decls(groups ...[]markup.Decl) []markup.Decl {
	var out []markup.Decl
	for _, group := range groups {
		out = append(out, group...)
	}
	return out
}

// Percent renders a whole percentage as a CSS width.
func Percent(pct int) string {
	return strconv.Itoa(pct) + "%"
}

// ID derives a stable element id from a prefix and a value.
func ID(prefix, value string) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte('-')
	for _, r := range strings.ToLower(value) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

// CardImage is the media shown by cards whose image is enabled.
const CardImage = "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"

// Is renders the JS condition value === key.
func Is(variable, key string) string {
	return variable + " === " + jsx.Quote(key)
}

// OrText returns s, or def when s is empty.
func OrText(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
