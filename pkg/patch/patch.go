// Package patch merges partial config trees into a component.Config.
//
// A patch is a JSON-like tree. Present leaves override the base, absent keys
// at any level keep their base value and an explicit null clears a field.
// Unknown keys and values of the wrong type are ignored, so assistant output
// can be applied without prior validation.
package patch

import (
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-compareui/pkg/component"
	"github.com/goliatone/go-compareui/pkg/schema"
	"github.com/goliatone/go-compareui/pkg/widget"
)

// Patch is a partial config tree.
type Patch map[string]any

// Apply returns base with p merged in. base is never mutated.
func Apply(base component.Config, p Patch) component.Config {
	return apply(schema.Config(), base, p)
}

// ApplyWidget is Apply restricted to the fields w reads. Keys the widget
// ignores are dropped along with unknown keys.
func ApplyWidget(w widget.Type, base component.Config, p Patch) (component.Config, error) {
	s, err := schema.ForWidget(w)
	if err != nil {
		return base.Clone(), fmt.Errorf("patch: %w", err)
	}
	return apply(s, base, p), nil
}

func apply(s *openapi3.Schema, base component.Config, p Patch) component.Config {
	if len(p) == 0 {
		return base.Clone()
	}
	tree, err := toTree(p)
	if err != nil {
		return base.Clone()
	}
	filtered, _ := schema.Filter(s, lift(tree))
	overlay, _ := filtered.(map[string]any)
	if len(overlay) == 0 {
		return base.Clone()
	}

	merged, err := toTree(base)
	if err != nil {
		return base.Clone()
	}
	merge(merged, overlay)

	out, err := fromTree(merged)
	if err != nil {
		return base.Clone()
	}
	return out
}

// merge writes src into dst. Nested objects merge key by key, nulls delete
// and every other value replaces the destination leaf.
func merge(dst, src map[string]any) {
	for key, value := range src {
		if value == nil {
			delete(dst, key)
			continue
		}
		next, isObject := value.(map[string]any)
		if !isObject {
			dst[key] = value
			continue
		}
		current, ok := dst[key].(map[string]any)
		if !ok {
			current = make(map[string]any, len(next))
		}
		merge(current, next)
		dst[key] = current
	}
}

// toTree converts v to its JSON shaped form: map[string]any, []any, float64,
// string, bool and nil.
func toTree(v any) (map[string]any, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("patch: encode: %w", err)
	}
	tree := map[string]any{}
	if err := json.Unmarshal(payload, &tree); err != nil {
		return nil, fmt.Errorf("patch: decode: %w", err)
	}
	return tree, nil
}

func fromTree(tree map[string]any) (component.Config, error) {
	payload, err := json.Marshal(tree)
	if err != nil {
		return component.Config{}, fmt.Errorf("patch: encode merged config: %w", err)
	}
	var cfg component.Config
	if err := json.Unmarshal(payload, &cfg); err != nil {
		return component.Config{}, fmt.Errorf("patch: decode merged config: %w", err)
	}
	return cfg, nil
}
