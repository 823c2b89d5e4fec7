package widget

import "strings"

// Entry describes a widget category for navigation and search.
type Entry struct {
	Type        Type   `json:"type" yaml:"type"`
	Name        string `json:"name" yaml:"name"`
	Slug        string `json:"slug" yaml:"slug"`
	Icon        string `json:"icon" yaml:"icon"`
	Description string `json:"description" yaml:"description"`
}

var catalog = []Entry{
	{Type: Accordion, Name: "Accordion", Slug: "accordion", Icon: "ExpandMore", Description: "Collapsible section with a title and body"},
	{Type: Button, Name: "Button", Slug: "button", Icon: "SmartButton", Description: "Clickable action with contained and outlined variants"},
	{Type: Card, Name: "Card", Slug: "card", Icon: "CreditCard", Description: "Surface grouping an image, a title and a description"},
	{Type: IconButton, Name: "Icon Button", Slug: "icon-button", Icon: "Adjust", Description: "Icon-only and icon plus label buttons"},
	{Type: Input, Name: "Input", Slug: "input", Icon: "Input", Description: "Text field with label, placeholder and icon slots"},
	{Type: Modal, Name: "Modal", Slug: "modal", Icon: "ChatBubbleOutline", Description: "Dialog shown over the page from a trigger"},
	{Type: Progress, Name: "Progress", Slug: "progress", Icon: "DonutLarge", Description: "Determinate linear progress bar"},
	{Type: Radio, Name: "Radio", Slug: "radio", Icon: "RadioButtonChecked", Description: "Single choice among a list of options"},
	{Type: Select, Name: "Select", Slug: "select", Icon: "List", Description: "Dropdown choosing one value from a list"},
	{Type: Switch, Name: "Switch", Slug: "switch", Icon: "ToggleOn", Description: "On and off toggle with a label"},
	{Type: Tabs, Name: "Tabs", Slug: "tabs", Icon: "Tab", Description: "Panes switched through a tab list"},
}

// Catalog returns the widget catalog in display order.
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the catalog entry of t.
func Lookup(t Type) (Entry, bool) {
	for _, entry := range catalog {
		if entry.Type == t {
			return entry, true
		}
	}
	return Entry{}, false
}

// DisplayName returns the human label of t, falling back to the raw tag.
func (t Type) DisplayName() string {
	if entry, ok := Lookup(t); ok {
		return entry.Name
	}
	return string(t)
}

// Search filters the catalog by a case-insensitive substring of the name,
// slug or description. An empty query returns the whole catalog.
func Search(query string) []Entry {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return Catalog()
	}
	var out []Entry
	for _, entry := range catalog {
		haystack := strings.ToLower(entry.Name + " " + entry.Slug + " " + entry.Description)
		if strings.Contains(haystack, needle) {
			out = append(out, entry)
		}
	}
	return out
}
