package provider

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-compareui/pkg/style"
	"github.com/goliatone/go-compareui/pkg/widget"
)

//go:embed registry.yaml
var embeddedTable []byte

// Meta is the display metadata of a provider.
type Meta struct {
	ID       ID     `json:"id"`
	Label    string `json:"label"`
	Icon     string `json:"icon"`
	Homepage string `json:"homepage"`
	Package  string `json:"package"`
}

// Guide explains how to install and wire a provider in a host project.
type Guide struct {
	Install string `json:"install" yaml:"install"`
	Setup   string `json:"setup" yaml:"setup"`
	Usage   string `json:"usage" yaml:"usage"`
	Notes   string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Tokens is a resolved design token set.
type Tokens map[string]string

// Get returns the token value or def when the token is missing.
func (t Tokens) Get(name, def string) string {
	if v, ok := t[name]; ok && v != "" {
		return v
	}
	return def
}

type tableFile struct {
	Providers []tableEntry `yaml:"providers"`
}

type tableEntry struct {
	ID       string                       `yaml:"id"`
	Label    string                       `yaml:"label"`
	Icon     string                       `yaml:"icon"`
	Homepage string                       `yaml:"homepage"`
	Package  string                       `yaml:"package"`
	Widgets  []string                     `yaml:"widgets"`
	Guide    Guide                        `yaml:"guide"`
	Tokens   map[string]map[string]string `yaml:"tokens"`
}

type entry struct {
	meta     Meta
	guide    Guide
	widgets  map[widget.Type]bool
	manifest *theme.Manifest
}

// Registry is the immutable provider table consulted by both dispatchers.
// It is safe for concurrent use; nothing mutates it after Load returns.
type Registry struct {
	order   []ID
	entries map[ID]*entry
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry built from the embedded table.
// The embedded table is validated by tests, so a failure here is a build
// defect and panics.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := Load(embeddedTable)
		if err != nil {
			panic(err)
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}

// Load builds a registry from a YAML provider table. Every provider of the
// closed set must appear exactly once and name only known widget types.
func Load(data []byte) (*Registry, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("provider: parse table: %w", err)
	}

	reg := &Registry{
		entries: make(map[ID]*entry, len(file.Providers)),
	}
	for idx, raw := range file.Providers {
		id, err := Parse(raw.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidRegistry, idx, err)
		}
		if _, exists := reg.entries[id]; exists {
			return nil, fmt.Errorf("%w: duplicate provider %q", ErrInvalidRegistry, id)
		}
		label := strings.TrimSpace(raw.Label)
		if label == "" {
			return nil, fmt.Errorf("%w: provider %q has no label", ErrInvalidRegistry, id)
		}

		widgets := make(map[widget.Type]bool, len(raw.Widgets))
		for _, tag := range raw.Widgets {
			w, err := widget.Parse(tag)
			if err != nil {
				return nil, fmt.Errorf("%w: provider %q: %v", ErrInvalidRegistry, id, err)
			}
			widgets[w] = true
		}

		reg.entries[id] = &entry{
			meta: Meta{
				ID:       id,
				Label:    label,
				Icon:     strings.TrimSpace(raw.Icon),
				Homepage: strings.TrimSpace(raw.Homepage),
				Package:  strings.TrimSpace(raw.Package),
			},
			guide:    raw.Guide,
			widgets:  widgets,
			manifest: tokenManifest(id, raw.Tokens),
		}
	}

	for _, id := range allIDs {
		if _, ok := reg.entries[id]; !ok {
			return nil, fmt.Errorf("%w: provider %q missing", ErrInvalidRegistry, id)
		}
		reg.order = append(reg.order, id)
	}

	// Token manifests go through go-theme validation.
	themes := theme.NewRegistry()
	for _, id := range reg.order {
		if err := themes.Register(reg.entries[id].manifest); err != nil {
			return nil, fmt.Errorf("provider: register %q tokens: %w", id, err)
		}
	}
	return reg, nil
}

// ManifestName returns the go-theme manifest name holding the tokens of id.
func ManifestName(id ID) string {
	return "compareui-" + string(id)
}

func tokenManifest(id ID, modes map[string]map[string]string) *theme.Manifest {
	manifest := &theme.Manifest{
		Name:     ManifestName(id),
		Version:  "1.0.0",
		Tokens:   copyTokens(modes[string(Light)]),
		Variants: map[string]theme.Variant{},
	}
	for mode, tokens := range modes {
		if Mode(mode) == Light {
			continue
		}
		manifest.Variants[mode] = theme.Variant{Tokens: copyTokens(tokens)}
	}
	return manifest
}

func copyTokens(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (r *Registry) lookup(id ID) (*entry, error) {
	if r == nil {
		return nil, fmt.Errorf("provider: registry is nil")
	}
	e, ok := r.entries[id]
	if !ok {
		if _, err := Parse(string(id)); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: provider %q not loaded", ErrInvalidRegistry, id)
	}
	return e, nil
}

// Providers returns the provider ids in display order.
func (r *Registry) Providers() []ID {
	out := make([]ID, len(r.order))
	copy(out, r.order)
	return out
}

// Capabilities returns the widget types id supports, in catalog order.
func (r *Registry) Capabilities(id ID) ([]widget.Type, error) {
	e, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	var out []widget.Type
	for _, w := range widget.All() {
		if e.widgets[w] {
			out = append(out, w)
		}
	}
	return out, nil
}

// Supports reports whether the pair is implemented. Unknown tags are not
// supported.
func (r *Registry) Supports(w widget.Type, id ID) bool {
	e, err := r.lookup(id)
	if err != nil {
		return false
	}
	return e.widgets[w]
}

// SupportedBy returns the providers implementing w, in display order.
func (r *Registry) SupportedBy(w widget.Type) []ID {
	var out []ID
	for _, id := range r.order {
		if r.entries[id].widgets[w] {
			out = append(out, id)
		}
	}
	return out
}

// DisplayMeta returns the label and icon reference of id.
func (r *Registry) DisplayMeta(id ID) (Meta, error) {
	e, err := r.lookup(id)
	if err != nil {
		return Meta{}, err
	}
	return e.meta, nil
}

// Guide returns the setup guide of id.
func (r *Registry) Guide(id ID) (Guide, error) {
	e, err := r.lookup(id)
	if err != nil {
		return Guide{}, err
	}
	return e.guide, nil
}

// Manifest returns the go-theme manifest carrying the tokens of id. Callers
// must treat it as read-only.
func (r *Registry) Manifest(id ID) (*theme.Manifest, error) {
	e, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	return e.manifest, nil
}

// Tokens returns the design tokens of id in the given mode; dark tokens are
// layered over the light base.
func (r *Registry) Tokens(id ID, mode Mode) Tokens {
	e, err := r.lookup(id)
	if err != nil {
		return Tokens{}
	}
	return Tokens(style.ResolveTokens(e.manifest, string(mode.Resolve())))
}

// Pair identifies one provider implementation of one widget.
type Pair struct {
	Widget   widget.Type `json:"widget"`
	Provider ID          `json:"provider"`
}

func (p Pair) String() string {
	return string(p.Provider) + "/" + string(p.Widget)
}

// Pairs lists every supported pair, grouped by provider in display order and
// by widget in catalog order.
func (r *Registry) Pairs() []Pair {
	var out []Pair
	for _, id := range r.order {
		for _, w := range widget.All() {
			if r.entries[id].widgets[w] {
				out = append(out, Pair{Widget: w, Provider: id})
			}
		}
	}
	return out
}

// Unsupported returns the notice shown in place of a pair the provider does
// not implement, e.g. "Aceternity UI does not include a standard Tabs
// component."
func (r *Registry) Unsupported(id ID, w widget.Type) string {
	label := string(id)
	if e, err := r.lookup(id); err == nil {
		label = e.meta.Label
	}
	return fmt.Sprintf("%s does not include a standard %s component.", label, w.DisplayName())
}
