package jsx

import (
	"regexp"
	"strconv"
	"strings"
)

// Value is anything that can appear as an attribute value, an object entry
// value or an array item. lines returns the rendered form: the first line
// carries no indentation, continuation lines are indented for depth.
type Value interface {
	lines(depth int) []string
}

type stringValue string

// Str is a JS string literal.
func Str(s string) Value { return stringValue(s) }

func (s stringValue) lines(int) []string { return []string{Quote(string(s))} }

type exprValue string

// Expr is raw JS expression code, e.g. a variable or an arrow function.
// Multi-line code keeps its relative indentation.
func Expr(code string) Value { return exprValue(code) }

func (e exprValue) lines(depth int) []string {
	parts := strings.Split(string(e), "\n")
	out := make([]string, len(parts))
	out[0] = parts[0]
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		out[i] = indent(depth) + parts[i]
	}
	return out
}

type numberValue float64

// Num is a numeric literal.
func Num(v float64) Value { return numberValue(v) }

func (n numberValue) lines(int) []string {
	return []string{strconv.FormatFloat(float64(n), 'f', -1, 64)}
}

type boolValue bool

// Bool is a boolean literal. As an attribute, true renders as the bare name.
func Bool(v bool) Value { return boolValue(v) }

func (b boolValue) lines(int) []string { return []string{strconv.FormatBool(bool(b))} }

// Entry is one key of an object literal.
type Entry struct {
	Key   string
	Value Value
}

// E is shorthand for an Entry.
func E(key string, value Value) Entry {
	return Entry{Key: key, Value: value}
}

// Object is an object literal. Entries with a nil Value are dropped and an
// object without entries is omitted when used as an attribute.
type Object []Entry

// Obj builds an Object.
func Obj(entries ...Entry) Object { return Object(entries) }

// Set appends a string entry when value is non-empty.
func (o Object) Set(key, value string) Object {
	if value == "" {
		return o
	}
	return append(o, E(key, Str(value)))
}

// Put appends an entry when value is non-nil.
func (o Object) Put(key string, value Value) Object {
	if value == nil {
		return o
	}
	return append(o, E(key, value))
}

func (o Object) entries() []Entry {
	out := make([]Entry, 0, len(o))
	for _, entry := range o {
		if entry.Value == nil {
			continue
		}
		if nested, ok := entry.Value.(Object); ok && nested.Empty() {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// Empty reports whether the object has no renderable entries.
func (o Object) Empty() bool {
	return len(o.entries()) == 0
}

func (o Object) lines(depth int) []string {
	entries := o.entries()
	if len(entries) == 0 {
		return []string{"{}"}
	}
	out := []string{"{"}
	for _, entry := range entries {
		value := entry.Value.lines(depth + 1)
		first := indent(depth+1) + objectKey(entry.Key) + ": " + value[0]
		out = appendBlock(out, first, value[1:], ",")
	}
	return append(out, indent(depth)+"}")
}

// Array is an array literal.
type Array []Value

// Arr builds an Array.
func Arr(items ...Value) Array { return Array(items) }

func (a Array) lines(depth int) []string {
	if len(a) == 0 {
		return []string{"[]"}
	}
	out := []string{"["}
	for _, item := range a {
		if item == nil {
			continue
		}
		value := item.lines(depth + 1)
		out = appendBlock(out, indent(depth+1)+value[0], value[1:], ",")
	}
	return append(out, indent(depth)+"]")
}

// appendBlock appends first and rest to out and terminates the block with
// suffix.
func appendBlock(out []string, first string, rest []string, suffix string) []string {
	out = append(out, first)
	out = append(out, rest...)
	out[len(out)-1] += suffix
	return out
}

var identifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

func objectKey(key string) string {
	if identifier.MatchString(key) {
		return key
	}
	return Quote(key)
}

// Quote renders s as a single-quoted JS string literal.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			if r < 0x20 || r == 0x7f {
				b.WriteString(`\x`)
				b.WriteString(hex2(r))
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

func hex2(r rune) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[(r>>4)&0xf], digits[r&0xf]})
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

// Literal renders v as JS source at depth zero, e.g. for a preamble
// statement.
func Literal(v Value) string {
	if v == nil {
		return "undefined"
	}
	return strings.Join(v.lines(0), "\n")
}
