package patch

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-compareui/pkg/component"
)

// ErrEmptyPatch is returned when a patch document has no content.
var ErrEmptyPatch = errors.New("patch: document is empty")

// Parse decodes a patch written as a JSON or YAML object.
func Parse(data []byte) (Patch, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, ErrEmptyPatch
	}

	var tree map[string]any
	jsonErr := json.Unmarshal(data, &tree)
	if jsonErr == nil {
		return Patch(tree), nil
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("patch: parse: invalid JSON (%v) or YAML: %w", jsonErr, err)
	}
	if raw == nil {
		return nil, ErrEmptyPatch
	}
	// YAML yields ints and nested maps json can re-read as float64 trees.
	normalised, err := toTree(raw)
	if err != nil {
		return nil, err
	}
	return Patch(normalised), nil
}

// Diff returns the smallest patch p such that Apply(a, p) equals b. Fields
// set in a and cleared in b appear as nulls.
func Diff(a, b component.Config) (Patch, error) {
	left, err := toTree(a)
	if err != nil {
		return nil, err
	}
	right, err := toTree(b)
	if err != nil {
		return nil, err
	}
	return Patch(diff(left, right)), nil
}

func diff(left, right map[string]any) map[string]any {
	out := map[string]any{}
	for key, after := range right {
		before, existed := left[key]
		if !existed {
			out[key] = after
			continue
		}
		beforeObj, leftIsObject := before.(map[string]any)
		afterObj, rightIsObject := after.(map[string]any)
		if leftIsObject && rightIsObject {
			if nested := diff(beforeObj, afterObj); len(nested) > 0 {
				out[key] = nested
			}
			continue
		}
		if !reflect.DeepEqual(before, after) {
			out[key] = after
		}
	}
	for key := range left {
		if _, kept := right[key]; !kept {
			out[key] = nil
		}
	}
	return out
}
