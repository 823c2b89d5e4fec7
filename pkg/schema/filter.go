package schema

import "github.com/getkin/kin-openapi/openapi3"

// Filter returns the part of value accepted by s. Object schemas with
// declared properties are walked key by key and unknown keys are dropped;
// any other schema validates the value as a whole leaf. ok is false when the
// value is rejected. A nil value is always accepted so callers can use it as
// a deletion marker.
//
// value must be JSON shaped: maps with string keys, []any, float64, string
// and bool.
func Filter(s *openapi3.Schema, value any) (any, bool) {
	if value == nil {
		return nil, true
	}
	if s == nil {
		return nil, false
	}
	if len(s.Properties) == 0 {
		if err := s.VisitJSON(withoutNulls(value)); err != nil {
			return nil, false
		}
		return value, true
	}

	obj, isObject := value.(map[string]any)
	if !isObject {
		return nil, false
	}
	out := make(map[string]any, len(obj))
	for key, child := range obj {
		ref, known := s.Properties[key]
		if !known || ref == nil || ref.Value == nil {
			continue
		}
		if kept, ok := Filter(ref.Value, child); ok {
			out[key] = kept
		}
	}
	return out, true
}

// withoutNulls drops null members of an object leaf so a partial leaf such as
// {"px": null, "py": 8} validates like {"py": 8}.
func withoutNulls(value any) any {
	obj, ok := value.(map[string]any)
	if !ok {
		return value
	}
	out := make(map[string]any, len(obj))
	for key, child := range obj {
		if child != nil {
			out[key] = child
		}
	}
	return out
}
