package jsx

import (
	"strings"
)

const maxWidth = 80

// Node is a JSX child: an element, text or an embedded expression.
type Node interface {
	write(w *writer, depth int)
}

// Attr is one JSX attribute. A nil Value drops the attribute.
type Attr struct {
	Name  string
	Value Value
}

// A is shorthand for a string attribute. Empty values drop the attribute.
func A(name, value string) Attr {
	if value == "" {
		return Attr{Name: name}
	}
	return Attr{Name: name, Value: Str(value)}
}

// X is shorthand for an expression attribute.
func X(name, code string) Attr {
	return Attr{Name: name, Value: Expr(code)}
}

// V is an attribute holding any Value.
func V(name string, value Value) Attr {
	return Attr{Name: name, Value: value}
}

// Flag is a boolean attribute rendered bare when on and dropped otherwise.
func Flag(name string, on bool) Attr {
	if !on {
		return Attr{Name: name}
	}
	return Attr{Name: name, Value: Bool(true)}
}

// Element is a JSX element. An empty Tag renders a fragment.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []Node
}

// El builds an element from attributes and children. Nil children are
// skipped.
func El(tag string, attrs []Attr, children ...Node) *Element {
	el := &Element{Tag: tag, Attrs: attrs}
	for _, child := range children {
		if child == nil {
			continue
		}
		if e, ok := child.(*Element); ok && e == nil {
			continue
		}
		el.Children = append(el.Children, child)
	}
	return el
}

// Attrs is a convenience constructor for attribute lists.
func Attrs(attrs ...Attr) []Attr { return attrs }

// Fragment wraps children in <>...</>.
func Fragment(children ...Node) *Element {
	return El("", nil, children...)
}

type textNode string

// Text is a JSX text child. Text that JSX would reinterpret is emitted as a
// string expression instead.
func Text(s string) Node {
	if s == "" {
		return nil
	}
	return textNode(s)
}

func (t textNode) write(w *writer, depth int) {
	w.line(depth, t.source())
}

func (t textNode) source() string {
	s := string(t)
	if strings.ContainsAny(s, "{}<>&\n\r\t") || strings.TrimSpace(s) != s {
		return "{" + Quote(s) + "}"
	}
	return s
}

type exprNode string

// Embed is a {expression} child.
func Embed(code string) Node {
	if code == "" {
		return nil
	}
	return exprNode(code)
}

func (e exprNode) write(w *writer, depth int) {
	lines := exprValue(e).lines(depth)
	lines[0] = "{" + lines[0]
	lines[len(lines)-1] += "}"
	w.line(depth, lines[0])
	w.raw(lines[1:]...)
}

type jsxValue struct {
	el *Element
}

// JSX wraps an element so it can be used as an attribute or object value.
func JSX(el *Element) Value {
	if el == nil {
		return nil
	}
	return jsxValue{el: el}
}

func (j jsxValue) lines(depth int) []string {
	w := &writer{}
	j.el.write(w, depth+1)
	if len(w.lines) == 1 {
		return []string{strings.TrimLeft(w.lines[0], " ")}
	}
	out := []string{"("}
	out = append(out, w.lines...)
	return append(out, indent(depth)+")")
}

func (e *Element) visibleAttrs() []Attr {
	out := make([]Attr, 0, len(e.Attrs))
	for _, attr := range e.Attrs {
		if attr.Name == "" || attr.Value == nil {
			continue
		}
		if obj, ok := attr.Value.(Object); ok && obj.Empty() {
			continue
		}
		out = append(out, attr)
	}
	return out
}

// attrLines renders one attribute at depth.
func attrLines(attr Attr, depth int) []string {
	switch v := attr.Value.(type) {
	case boolValue:
		if v {
			return []string{attr.Name}
		}
	case stringValue:
		if !strings.ContainsAny(string(v), "\"\n\r") {
			return []string{attr.Name + "=\"" + string(v) + "\""}
		}
	}
	lines := attr.Value.lines(depth)
	lines[0] = attr.Name + "={" + lines[0]
	lines[len(lines)-1] += "}"
	return lines
}

func (e *Element) inlineAttrs(attrs []Attr) (string, bool) {
	var b strings.Builder
	for _, attr := range attrs {
		lines := attrLines(attr, 0)
		if len(lines) > 1 {
			return "", false
		}
		b.WriteString(" ")
		b.WriteString(lines[0])
	}
	return b.String(), true
}

func (e *Element) write(w *writer, depth int) {
	attrs := e.visibleAttrs()
	inline, ok := e.inlineAttrs(attrs)
	pad := len(indent(depth))
	multi := !ok || pad+len(e.Tag)+len(inline)+3 > maxWidth

	if len(e.Children) == 0 && e.Tag != "" {
		if !multi {
			w.line(depth, "<"+e.Tag+inline+" />")
			return
		}
		w.line(depth, "<"+e.Tag)
		e.writeAttrs(w, attrs, depth+1)
		w.line(depth, "/>")
		return
	}

	if !multi && len(e.Children) == 1 {
		if text, ok := e.Children[0].(textNode); ok {
			single := "<" + e.Tag + inline + ">" + text.source() + "</" + e.Tag + ">"
			if pad+len(single) <= maxWidth {
				w.line(depth, single)
				return
			}
		}
	}

	if multi {
		w.line(depth, "<"+e.Tag)
		e.writeAttrs(w, attrs, depth+1)
		w.line(depth, ">")
	} else {
		w.line(depth, "<"+e.Tag+inline+">")
	}
	for _, child := range e.Children {
		child.write(w, depth+1)
	}
	w.line(depth, "</"+e.Tag+">")
}

func (e *Element) writeAttrs(w *writer, attrs []Attr, depth int) {
	for _, attr := range attrs {
		lines := attrLines(attr, depth)
		w.line(depth, lines[0])
		w.raw(lines[1:]...)
	}
}

// String renders the element on its own, starting at depth zero.
func (e *Element) String() string {
	w := &writer{}
	e.write(w, 0)
	return w.String()
}

type writer struct {
	lines []string
}

func (w *writer) line(depth int, s string) {
	w.lines = append(w.lines, indent(depth)+s)
}

func (w *writer) raw(lines ...string) {
	w.lines = append(w.lines, lines...)
}

func (w *writer) blank() {
	if len(w.lines) > 0 && w.lines[len(w.lines)-1] != "" {
		w.lines = append(w.lines, "")
	}
}

func (w *writer) String() string {
	return strings.Join(w.lines, "\n") + "\n"
}

type condNode struct {
	cond string
	el   *Element
}

// When renders {cond && <el />}, wrapping el in parentheses when it spans
// several lines.
func When(cond string, el *Element) Node {
	if el == nil {
		return nil
	}
	return condNode{cond: cond, el: el}
}

func (c condNode) write(w *writer, depth int) {
	sub := &writer{}
	c.el.write(sub, depth+1)
	if len(sub.lines) == 1 {
		single := "{" + c.cond + " && " + strings.TrimLeft(sub.lines[0], " ") + "}"
		if len(indent(depth))+len(single) <= maxWidth {
			w.line(depth, single)
			return
		}
	}
	w.line(depth, "{"+c.cond+" && (")
	w.raw(sub.lines...)
	w.line(depth, ")}")
}
