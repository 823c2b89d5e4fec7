package icons

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// drawing lists the SVG elements an icon may contain and the attributes each
// keeps. Anything else, scripts and event handlers included, is dropped.
var drawing = map[string][]string{
	"svg":      {"xmlns", "viewBox", "width", "height", "fill", "stroke", "aria-hidden", "focusable", "role"},
	"g":        {"fill", "stroke", "transform"},
	"path":     {"d", "fill", "fill-rule", "clip-rule", "stroke", "stroke-width", "stroke-linecap", "stroke-linejoin"},
	"circle":   {"cx", "cy", "r", "fill", "stroke", "stroke-width"},
	"rect":     {"x", "y", "width", "height", "rx", "ry", "fill", "stroke", "stroke-width"},
	"polyline": {"points", "fill", "stroke", "stroke-width", "stroke-linecap", "stroke-linejoin"},
	"title":    nil,
}

var sanitizer = sync.OnceValue(func() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	for element, attrs := range drawing {
		p.AllowElements(element)
		if len(attrs) > 0 {
			p.AllowAttrs(attrs...).OnElements(element)
		}
	}
	return p
})

// Sanitize strips everything but inert SVG drawing markup. It returns an
// empty string when nothing survives.
func Sanitize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	return strings.TrimSpace(sanitizer().Sanitize(raw))
}
