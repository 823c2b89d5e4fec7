// Package widget defines the closed set of widget types, size tiers and
// variant tokens shared by every provider.
package widget

import (
	"strings"

	"github.com/goliatone/go-compareui/internal/suggest"
)

// Type identifies one of the supported widget categories.
type Type string

const (
	Accordion  Type = "accordion"
	Button     Type = "button"
	Card       Type = "card"
	IconButton Type = "icon-button"
	Input      Type = "input"
	Modal      Type = "modal"
	Progress   Type = "progress"
	Radio      Type = "radio"
	Select     Type = "select"
	Switch     Type = "switch"
	Tabs       Type = "tabs"
)

var allTypes = []Type{
	Accordion,
	Button,
	Card,
	IconButton,
	Input,
	Modal,
	Progress,
	Radio,
	Select,
	Switch,
	Tabs,
}

// All returns every widget type in catalog order. The slice is a copy.
func All() []Type {
	out := make([]Type, len(allTypes))
	copy(out, allTypes)
	return out
}

// Valid reports whether t belongs to the closed set.
func (t Type) Valid() bool {
	for _, candidate := range allTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

func (t Type) String() string {
	return string(t)
}

// Parse resolves a widget tag. Matching ignores case, surrounding space and
// underscores used in place of dashes.
func Parse(raw string) (Type, error) {
	normalised := strings.ToLower(strings.TrimSpace(raw))
	normalised = strings.ReplaceAll(normalised, "_", "-")
	candidate := Type(normalised)
	if candidate.Valid() {
		return candidate, nil
	}
	names := make([]string, len(allTypes))
	for i, t := range allTypes {
		names[i] = string(t)
	}
	return "", &UnknownTagError{
		Kind:       KindWidget,
		Tag:        raw,
		Suggestion: suggest.Closest(normalised, names),
	}
}

// MustParse is Parse for static input; it panics on unknown tags.
func MustParse(raw string) Type {
	t, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return t
}
