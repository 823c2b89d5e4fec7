package render

import (
	"fmt"
	"sync"

	"github.com/goliatone/go-compareui/pkg/component"
	"github.com/goliatone/go-compareui/pkg/provider"
	"github.com/goliatone/go-compareui/pkg/style"
	"github.com/goliatone/go-compareui/pkg/widget"
)

// Dispatcher routes (widget, provider) pairs to provider views. Capability
// data comes from the shared provider registry; the dispatcher only stores
// views. Registration happens at startup, lookups afterwards.
type Dispatcher struct {
	providers *provider.Registry

	mu    sync.RWMutex
	views map[provider.Pair]Func
}

// NewDispatcher creates an empty dispatcher backed by reg, or by the default
// registry when reg is nil.
func NewDispatcher(reg *provider.Registry) *Dispatcher {
	if reg == nil {
		reg = provider.Default()
	}
	return &Dispatcher{
		providers: reg,
		views:     make(map[provider.Pair]Func),
	}
}

// Registry returns the provider registry backing the dispatcher.
func (d *Dispatcher) Registry() *provider.Registry {
	return d.providers
}

// Register adds the view for a pair. Unknown tags, unsupported pairs and
// duplicates are rejected.
func (d *Dispatcher) Register(w widget.Type, p provider.ID, fn Func) error {
	if fn == nil {
		return fmt.Errorf("render: view for %s/%s is required", p, w)
	}
	pair, err := resolvePair(w, p)
	if err != nil {
		return err
	}
	if !d.providers.Supports(pair.Widget, pair.Provider) {
		return fmt.Errorf("%w: %s", ErrUnsupportedPair, pair)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.views[pair]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicate, pair)
	}
	d.views[pair] = fn
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (d *Dispatcher) MustRegister(w widget.Type, p provider.ID, fn Func) {
	if err := d.Register(w, p, fn); err != nil {
		panic(err)
	}
}

// Has reports whether a view is registered for the pair.
func (d *Dispatcher) Has(w widget.Type, p provider.ID) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.views[provider.Pair{Widget: w, Provider: p}]
	return ok
}

// List returns the registered pairs in registry order.
func (d *Dispatcher) List() []provider.Pair {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []provider.Pair
	for _, pair := range d.providers.Pairs() {
		if _, ok := d.views[pair]; ok {
			out = append(out, pair)
		}
	}
	return out
}

// Missing returns the supported pairs that have no view registered.
func (d *Dispatcher) Missing() []provider.Pair {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []provider.Pair
	for _, pair := range d.providers.Pairs() {
		if _, ok := d.views[pair]; !ok {
			out = append(out, pair)
		}
	}
	return out
}

// Render produces the artifact for one pair. Unknown tags are the only error
// class callers should expect; unsupported pairs yield a placeholder
// artifact without touching provider code.
func (d *Dispatcher) Render(w widget.Type, p provider.ID, cfg component.Config, cb Callbacks, opts ...Option) (*Artifact, error) {
	pair, err := resolvePair(w, p)
	if err != nil {
		return nil, err
	}
	if !d.providers.Supports(pair.Widget, pair.Provider) {
		return placeholder(pair, d.providers.Unsupported(pair.Provider, pair.Widget)), nil
	}

	d.mu.RLock()
	fn, ok := d.views[pair]
	d.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, pair)
	}

	o := applyOptions(opts)
	cfg = cfg.Clone()
	size := cfg.Size.Resolve()
	tokens := d.providers.Tokens(pair.Provider, o.mode)
	for k, v := range o.tokens {
		tokens[k] = v
	}

	view := fn(Props{
		Widget:   pair.Widget,
		Provider: pair.Provider,
		Config:   cfg,
		Style:    style.Normalize(cfg.Styles, size),
		Metrics:  style.MetricsFor(size),
		Tokens:   tokens,
		Mode:     o.mode,
	})
	if view == nil {
		return nil, fmt.Errorf("render: %s returned no view", pair)
	}
	return newArtifact(pair, cfg, view, cb), nil
}

func resolvePair(w widget.Type, p provider.ID) (provider.Pair, error) {
	wt, err := widget.Parse(string(w))
	if err != nil {
		return provider.Pair{}, err
	}
	id, err := provider.Parse(string(p))
	if err != nil {
		return provider.Pair{}, err
	}
	return provider.Pair{Widget: wt, Provider: id}, nil
}
