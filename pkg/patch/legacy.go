package patch

import "github.com/goliatone/go-compareui/pkg/schema"

// styleAliases maps shorthand style names onto their canonical keys.
var styleAliases = map[string]string{
	"radius": "borderRadius",
}

var configKeys = map[string]bool{
	"size":    true,
	"variant": true,
	"content": true,
	"styles":  true,
}

// lift rewrites a flat patch into the nested config shape. Content and
// style keys found at the top level move into content and styles unless the
// nested object already sets them. A string content is the body of a modal or
// an accordion, and a top-level string value is a select choice.
func lift(tree map[string]any) map[string]any {
	out := make(map[string]any, len(tree))
	content := nestedCopy(tree["content"])
	styles := nestedCopy(tree["styles"])

	if body, ok := tree["content"].(string); ok {
		setDefault(content, "body", body)
	}

	contentKeys := schema.Content().Properties
	styleKeys := schema.Styles().Properties
	for key, value := range tree {
		switch {
		case configKeys[key]:
			if key != "content" && key != "styles" {
				out[key] = value
			}
		case key == "value":
			if text, ok := value.(string); ok {
				setDefault(content, "selectedValue", text)
				continue
			}
			setDefault(content, key, value)
		case contentKeys[key] != nil:
			setDefault(content, key, value)
		case styleKeys[key] != nil, styleAliases[key] != "":
			setDefault(styles, key, value)
		}
	}
	for alias, canonical := range styleAliases {
		if value, ok := styles[alias]; ok {
			delete(styles, alias)
			setDefault(styles, canonical, value)
		}
	}

	attach(out, tree, "content", content)
	attach(out, tree, "styles", styles)
	return out
}

// attach stores the lifted object under key. When nothing was lifted the raw
// value is kept as is, so a null still clears the branch and a mistyped value
// is left for the schema filter to reject.
func attach(out, tree map[string]any, key string, lifted map[string]any) {
	raw, present := tree[key]
	_, rawObject := raw.(map[string]any)
	switch {
	case len(lifted) > 0 || rawObject:
		out[key] = lifted
	case present:
		out[key] = raw
	}
}

// nestedCopy returns a shallow copy of an object value, or an empty map for
// anything else.
func nestedCopy(value any) map[string]any {
	obj, ok := value.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		out[k] = v
	}
	return out
}

// setDefault stores value under key unless the key is present.
func setDefault(dst map[string]any, key string, value any) {
	if _, exists := dst[key]; exists {
		return
	}
	dst[key] = value
}
