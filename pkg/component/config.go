// Package component holds the canonical, provider-agnostic description of a
// widget instance.
package component

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-compareui/pkg/style"
	"github.com/goliatone/go-compareui/pkg/widget"
)

// Config describes one widget instance: content, size tier, variant and a
// sparse style override. It never names provider specific props.
type Config struct {
	Size    widget.Size    `json:"size,omitempty" yaml:"size,omitempty"`
	Variant widget.Variant `json:"variant,omitempty" yaml:"variant,omitempty"`
	Content Content        `json:"content" yaml:"content"`
	Styles  style.Override `json:"styles" yaml:"styles"`
}

// Content gathers the content fields of every widget type. A widget reads
// only the fields it needs; missing fields read as empty values.
type Content struct {
	Label        string   `json:"label,omitempty" yaml:"label,omitempty"`
	Title        string   `json:"title,omitempty" yaml:"title,omitempty"`
	Body         string   `json:"body,omitempty" yaml:"body,omitempty"`
	Description  string   `json:"description,omitempty" yaml:"description,omitempty"`
	Image        *bool    `json:"image,omitempty" yaml:"image,omitempty"`
	Placeholder  string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Options      []Option `json:"options,omitempty" yaml:"options,omitempty"`
	Selected     string   `json:"selectedValue,omitempty" yaml:"selectedValue,omitempty"`
	Checked      bool     `json:"checked,omitempty" yaml:"checked,omitempty"`
	Disabled     bool     `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Value        float64  `json:"value,omitempty" yaml:"value,omitempty"`
	Max          float64  `json:"max,omitempty" yaml:"max,omitempty"`
	Tabs         []Tab    `json:"tabs,omitempty" yaml:"tabs,omitempty"`
	DefaultValue string   `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	Orientation  string   `json:"orientation,omitempty" yaml:"orientation,omitempty"`
	Icon         string   `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Option is a choice of a radio group or a select.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Text returns the visible label, falling back to the value.
func (o Option) Text() string {
	if o.Label != "" {
		return o.Label
	}
	return o.Value
}

type optionFields struct {
	Value any    `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// UnmarshalJSON accepts a bare string ("A") as well as {value, label}.
func (o *Option) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var fields optionFields
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return err
		}
		*o = Option{Value: scalarText(fields.Value), Label: fields.Label}
		return nil
	}
	var raw any
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}
	text := scalarText(raw)
	*o = Option{Value: text, Label: text}
	return nil
}

func (o *Option) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		var fields optionFields
		if err := node.Decode(&fields); err != nil {
			return err
		}
		*o = Option{Value: scalarText(fields.Value), Label: fields.Label}
		return nil
	}
	*o = Option{Value: node.Value, Label: node.Value}
	return nil
}

// Tab is one pane of a tabs widget.
type Tab struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
	Body  string `json:"body,omitempty" yaml:"body,omitempty"`
}

// Key identifies the tab, falling back to its label.
func (t Tab) Key() string {
	if t.Value != "" {
		return t.Value
	}
	return t.Label
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	out := c
	out.Content = c.Content.Clone()
	out.Styles = c.Styles.Clone()
	return out
}

// Clone returns a deep copy of c.
func (c Content) Clone() Content {
	out := c
	if c.Image != nil {
		v := *c.Image
		out.Image = &v
	}
	if c.Options != nil {
		out.Options = append([]Option(nil), c.Options...)
	}
	if c.Tabs != nil {
		out.Tabs = append([]Tab(nil), c.Tabs...)
	}
	return out
}

// ImageVisible reports whether a card shows its media; absent means shown.
func (c Content) ImageVisible() bool {
	return c.Image == nil || *c.Image
}

// ProgressMax returns Max, or 100 when Max is not positive.
func (c Content) ProgressMax() float64 {
	if c.Max <= 0 {
		return 100
	}
	return c.Max
}

// Percent returns Value as a whole percentage of ProgressMax, clamped to
// [0, 100].
func (c Content) Percent() int {
	pct := math.Round(c.Value / c.ProgressMax() * 100)
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return int(pct)
}

// HasOption reports whether value is one of the options.
func (c Content) HasOption(value string) bool {
	for _, opt := range c.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// SelectedOption returns the selected value when it names an option, or "".
func (c Content) SelectedOption() string {
	if c.HasOption(c.Selected) {
		return c.Selected
	}
	return ""
}

// OptionText returns the label of the option holding value, or "".
func (c Content) OptionText(value string) string {
	for _, opt := range c.Options {
		if opt.Value == value {
			return opt.Text()
		}
	}
	return ""
}

// Vertical reports whether tabs are laid out vertically.
func (c Content) Vertical() bool {
	return strings.EqualFold(strings.TrimSpace(c.Orientation), "vertical")
}

// ActiveTab returns the key of the initially active tab: DefaultValue when it
// names a tab, otherwise the first tab.
func (c Content) ActiveTab() string {
	for _, tab := range c.Tabs {
		if tab.Key() == c.DefaultValue {
			return c.DefaultValue
		}
	}
	if len(c.Tabs) > 0 {
		return c.Tabs[0].Key()
	}
	return ""
}

// HasTab reports whether key names a tab.
func (c Content) HasTab(key string) bool {
	for _, tab := range c.Tabs {
		if tab.Key() == key {
			return true
		}
	}
	return false
}

func scalarText(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	default:
		data, err := json.Marshal(value)
		if err != nil {
			return ""
		}
		return string(data)
	}
}
