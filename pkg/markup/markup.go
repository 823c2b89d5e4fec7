// Package markup builds golang.org/x/net/html node trees for widget views.
//
// Builders are composable Part values applied in order. Inline styles keep
// declaration order and drop declarations with an empty value, so a view can
// pass every optional style field and only the set ones reach the output.
package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Part mutates a node under construction.
type Part func(*html.Node)

// Decl is a single inline style declaration.
type Decl struct {
	Prop  string
	Value string
}

// D is shorthand for a Decl.
func D(prop, value string) Decl {
	return Decl{Prop: prop, Value: value}
}

// El creates an element node and applies parts in order.
func El(tag string, parts ...Part) *html.Node {
	node := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for _, part := range parts {
		if part != nil {
			part(node)
		}
	}
	return node
}

// TextNode creates a text node.
func TextNode(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

// Attr sets an attribute, replacing any previous value.
func Attr(key, value string) Part {
	return func(n *html.Node) {
		setAttr(n, key, value)
	}
}

// Data sets a data-* attribute.
func Data(name, value string) Part {
	return Attr("data-"+name, value)
}

// Flag sets a boolean attribute when on is true.
func Flag(key string, on bool) Part {
	return func(n *html.Node) {
		if on {
			setAttr(n, key, key)
		}
	}
}

// AttrIf sets an attribute only when value is non-empty.
func AttrIf(key, value string) Part {
	return func(n *html.Node) {
		if value != "" {
			setAttr(n, key, value)
		}
	}
}

// Class appends the non-empty class names to the class attribute.
func Class(names ...string) Part {
	return func(n *html.Node) {
		current := strings.Fields(GetAttr(n, "class"))
		for _, name := range names {
			current = append(current, strings.Fields(name)...)
		}
		if len(current) == 0 {
			return
		}
		setAttr(n, "class", strings.Join(current, " "))
	}
}

// Style appends declarations to the style attribute. Declarations with an
// empty value are skipped.
func Style(decls ...Decl) Part {
	return func(n *html.Node) {
		var b strings.Builder
		b.WriteString(GetAttr(n, "style"))
		for _, decl := range decls {
			if decl.Prop == "" || decl.Value == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteString(" ")
			}
			b.WriteString(decl.Prop)
			b.WriteString(": ")
			b.WriteString(decl.Value)
			b.WriteString(";")
		}
		if b.Len() > 0 {
			setAttr(n, "style", b.String())
		}
	}
}

// Text appends a text child. Empty strings add nothing.
func Text(text string) Part {
	return func(n *html.Node) {
		if text != "" {
			n.AppendChild(TextNode(text))
		}
	}
}

// Kids appends child nodes, skipping nil entries.
func Kids(children ...*html.Node) Part {
	return func(n *html.Node) {
		for _, child := range children {
			if child == nil {
				continue
			}
			if child.Parent != nil {
				child.Parent.RemoveChild(child)
			}
			n.AppendChild(child)
		}
	}
}

// When applies parts only when cond is true.
func When(cond bool, parts ...Part) Part {
	return func(n *html.Node) {
		if !cond {
			return
		}
		for _, part := range parts {
			if part != nil {
				part(n)
			}
		}
	}
}

// GetAttr returns the attribute value or an empty string.
func GetAttr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// HasAttr reports whether the attribute is present.
func HasAttr(n *html.Node, key string) bool {
	if n == nil {
		return false
	}
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return true
		}
	}
	return false
}

func setAttr(n *html.Node, key, value string) {
	for idx, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			n.Attr[idx].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}
