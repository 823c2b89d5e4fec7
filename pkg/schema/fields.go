package schema

import "github.com/goliatone/go-compareui/pkg/widget"

// usage lists the content and style keys each widget reads. The per-widget
// schemas only advertise these.
type usage struct {
	content []string
	styles  []string
}

var boxStyles = []string{
	"borderRadius", "borderWidth", "borderStyle", "borderColor",
	"backgroundColor", "padding", "fontSize", "shadow",
}

var fieldUsage = map[widget.Type]usage{
	widget.Accordion: {
		content: []string{"title", "body", "disabled"},
		styles:  with(boxStyles, "titleColor", "answerColor"),
	},
	widget.Button: {
		content: []string{"label", "disabled"},
		styles:  with(boxStyles, "fontColor"),
	},
	widget.Card: {
		content: []string{"title", "description", "image"},
		styles:  with(boxStyles, "titleColor", "fontColor"),
	},
	widget.IconButton: {
		content: []string{"label", "icon", "disabled"},
		styles:  with(boxStyles, "fontColor"),
	},
	widget.Input: {
		content: []string{"label", "placeholder", "icon", "disabled"},
		styles:  with(boxStyles, "focusColor", "fontColor", "textColor"),
	},
	widget.Modal: {
		content: []string{"label", "title", "body", "disabled"},
		styles:  with(boxStyles, "titleColor", "textColor", "overlayColor"),
	},
	widget.Progress: {
		content: []string{"label", "value", "max"},
		styles:  []string{"indicatorColor", "trackColor", "height", "borderRadius", "color", "fontColor"},
	},
	widget.Radio: {
		content: []string{"options", "selectedValue", "disabled"},
		styles:  with(boxStyles, "color", "fontColor"),
	},
	widget.Select: {
		content: []string{"label", "placeholder", "options", "selectedValue", "disabled"},
		styles:  with(boxStyles, "color", "textColor", "fontColor"),
	},
	widget.Switch: {
		content: []string{"label", "checked", "disabled"},
		styles:  []string{"color", "activeColor", "inactiveColor", "fontColor", "fontSize"},
	},
	widget.Tabs: {
		content: []string{"tabs", "defaultValue", "orientation", "disabled"},
		styles: []string{
			"activeColor", "inactiveColor", "indicatorColor", "backgroundColor",
			"borderRadius", "borderColor", "padding", "fontSize", "fontColor", "color",
		},
	},
}

func with(base []string, extra ...string) []string {
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}

// ContentKeys returns the content keys read by w, or nil for unknown types.
func ContentKeys(w widget.Type) []string {
	return append([]string(nil), fieldUsage[w].content...)
}

// StyleKeys returns the style keys read by w, or nil for unknown types.
func StyleKeys(w widget.Type) []string {
	return append([]string(nil), fieldUsage[w].styles...)
}
