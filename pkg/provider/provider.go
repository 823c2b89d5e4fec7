// Package provider holds the closed set of target UI ecosystems and the
// immutable registry describing them.
package provider

import (
	"strings"

	"github.com/goliatone/go-compareui/internal/suggest"
	"github.com/goliatone/go-compareui/pkg/widget"
)

// ID identifies a provider.
type ID string

const (
	MUI        ID = "mui"
	Chakra     ID = "chakra"
	AntD       ID = "antd"
	Shadcn     ID = "shadcn"
	Aceternity ID = "aceternity"
)

var allIDs = []ID{MUI, Chakra, AntD, Shadcn, Aceternity}

// All returns every provider id in display order.
func All() []ID {
	out := make([]ID, len(allIDs))
	copy(out, allIDs)
	return out
}

// Valid reports whether id belongs to the closed set.
func (id ID) Valid() bool {
	for _, candidate := range allIDs {
		if candidate == id {
			return true
		}
	}
	return false
}

func (id ID) String() string {
	return string(id)
}

// Parse resolves a provider tag, ignoring case and surrounding space.
func Parse(raw string) (ID, error) {
	candidate := ID(strings.ToLower(strings.TrimSpace(raw)))
	if candidate.Valid() {
		return candidate, nil
	}
	names := make([]string, len(allIDs))
	for i, id := range allIDs {
		names[i] = string(id)
	}
	return "", &widget.UnknownTagError{
		Kind:       widget.KindProvider,
		Tag:        raw,
		Suggestion: suggest.Closest(string(candidate), names),
	}
}

// ParseList resolves a list of provider tags, dropping duplicates. An empty
// list yields every provider.
func ParseList(raw []string) ([]ID, error) {
	if len(raw) == 0 {
		return All(), nil
	}
	seen := make(map[ID]bool, len(raw))
	out := make([]ID, 0, len(raw))
	for _, tag := range raw {
		id, err := Parse(tag)
		if err != nil {
			return nil, err
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out, nil
}

// Mode selects the light or dark token set.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Resolve maps anything but dark to light.
func (m Mode) Resolve() Mode {
	if Mode(strings.ToLower(strings.TrimSpace(string(m)))) == Dark {
		return Dark
	}
	return Light
}
