package style

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Length is a dimension given either as a bare number of pixels or as a
// verbatim CSS string ("1rem", "50%"). A zero Length is zero pixels.
type Length struct {
	Px  float64
	Raw string
}

// Px returns a pointer to a pixel length.
func Px(v float64) *Length {
	return &Length{Px: v}
}

// Raw returns a pointer to a verbatim length.
func Raw(s string) *Length {
	return &Length{Raw: s}
}

// String renders the length as CSS. Numbers gain a px unit; verbatim values
// are returned untouched.
func (l Length) String() string {
	if l.Raw != "" {
		return l.Raw
	}
	return formatNumber(l.Px) + "px"
}

// Pixels reports the length in pixels when it can be read as one: a bare
// number, a numeric string, or a string with a px suffix.
func (l Length) Pixels() (float64, bool) {
	if l.Raw == "" {
		return l.Px, true
	}
	trimmed := strings.TrimSpace(l.Raw)
	trimmed = strings.TrimSuffix(trimmed, "px")
	v, err := strconv.ParseFloat(strings.TrimSpace(trimmed), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Equal lets go-cmp compare lengths by value.
func (l Length) Equal(other Length) bool {
	return l.Px == other.Px && l.Raw == other.Raw
}

func (l Length) MarshalJSON() ([]byte, error) {
	if l.Raw != "" {
		return json.Marshal(l.Raw)
	}
	return json.Marshal(l.Px)
}

// UnmarshalJSON never fails: numbers become pixels, strings are kept, any
// other JSON value is kept verbatim as text.
func (l *Length) UnmarshalJSON(data []byte) error {
	*l = lengthFromJSON(data)
	return nil
}

func (l Length) MarshalYAML() (any, error) {
	if l.Raw != "" {
		return l.Raw, nil
	}
	return l.Px, nil
}

func (l *Length) UnmarshalYAML(node *yaml.Node) error {
	*l = lengthFromYAML(node)
	return nil
}

func lengthFromJSON(data []byte) Length {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Length{}
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return Length{Raw: s}
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if v, err := strconv.ParseFloat(string(trimmed), 64); err == nil {
			return Length{Px: v}
		}
	}
	return Length{Raw: compactJSON(trimmed)}
}

func lengthFromYAML(node *yaml.Node) Length {
	if node.Kind == yaml.ScalarNode {
		if node.Tag == "!!int" || node.Tag == "!!float" {
			if v, err := strconv.ParseFloat(node.Value, 64); err == nil {
				return Length{Px: v}
			}
		}
		return Length{Raw: node.Value}
	}
	return Length{Raw: yamlText(node)}
}

// Token is a free-form style value such as a colour or a border style.
type Token string

// Tok returns a pointer to a token.
func Tok(s string) *Token {
	t := Token(s)
	return &t
}

func (t Token) String() string {
	return string(t)
}

// UnmarshalJSON keeps non-string values as their JSON text.
func (t *Token) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			*t = Token(s)
			return nil
		}
	}
	*t = Token(compactJSON(trimmed))
	return nil
}

func (t *Token) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*t = Token(node.Value)
		return nil
	}
	*t = Token(yamlText(node))
	return nil
}

// Spacing is a padding value: separate horizontal and vertical lengths, or a
// verbatim CSS shorthand.
type Spacing struct {
	X   *Length
	Y   *Length
	Raw string
}

// Pad returns a pointer to a spacing with both axes in pixels.
func Pad(px, py float64) *Spacing {
	return &Spacing{X: Px(px), Y: Px(py)}
}

// Uniform returns a pointer to a spacing with the same length on both axes.
func Uniform(l Length) *Spacing {
	x, y := l, l
	return &Spacing{X: &x, Y: &y}
}

// String renders CSS shorthand ("py px"). Unset axes render as 0.
func (s Spacing) String() string {
	if s.Raw != "" {
		return s.Raw
	}
	return lengthOrZero(s.Y) + " " + lengthOrZero(s.X)
}

// Equal lets go-cmp compare spacing by value.
func (s Spacing) Equal(other Spacing) bool {
	return s.Raw == other.Raw && equalLength(s.X, other.X) && equalLength(s.Y, other.Y)
}

type spacingAxes struct {
	X *Length `json:"px,omitempty" yaml:"px,omitempty"`
	Y *Length `json:"py,omitempty" yaml:"py,omitempty"`
}

func (s Spacing) MarshalJSON() ([]byte, error) {
	if s.Raw != "" {
		return json.Marshal(s.Raw)
	}
	return json.Marshal(spacingAxes{X: s.X, Y: s.Y})
}

// UnmarshalJSON accepts {px, py}, a bare number (both axes) or a string.
func (s *Spacing) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var axes spacingAxes
		if err := json.Unmarshal(trimmed, &axes); err == nil {
			*s = Spacing{X: axes.X, Y: axes.Y}
			return nil
		}
	}
	l := lengthFromJSON(trimmed)
	if l.Raw != "" {
		*s = Spacing{Raw: l.Raw}
		return nil
	}
	*s = *Uniform(l)
	return nil
}

func (s Spacing) MarshalYAML() (any, error) {
	if s.Raw != "" {
		return s.Raw, nil
	}
	return spacingAxes{X: s.X, Y: s.Y}, nil
}

func (s *Spacing) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		var axes spacingAxes
		if err := node.Decode(&axes); err == nil {
			*s = Spacing{X: axes.X, Y: axes.Y}
			return nil
		}
	}
	l := lengthFromYAML(node)
	if l.Raw != "" {
		*s = Spacing{Raw: l.Raw}
		return nil
	}
	*s = *Uniform(l)
	return nil
}

func (s *Spacing) clone() *Spacing {
	if s == nil {
		return nil
	}
	return &Spacing{X: cloneLength(s.X), Y: cloneLength(s.Y), Raw: s.Raw}
}

func lengthOrZero(l *Length) string {
	if l == nil {
		return "0"
	}
	return l.String()
}

func equalLength(a, b *Length) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func cloneLength(l *Length) *Length {
	if l == nil {
		return nil
	}
	out := *l
	return &out
}

func cloneToken(t *Token) *Token {
	if t == nil {
		return nil
	}
	out := *t
	return &out
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func compactJSON(data []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return string(data)
	}
	return buf.String()
}

func yamlText(node *yaml.Node) string {
	var decoded any
	if err := node.Decode(&decoded); err != nil {
		return node.Value
	}
	data, err := json.Marshal(decoded)
	if err != nil {
		return node.Value
	}
	return string(data)
}
