package emit

import (
	"fmt"
	"sync"

	"github.com/goliatone/go-compareui/pkg/component"
	"github.com/goliatone/go-compareui/pkg/provider"
	"github.com/goliatone/go-compareui/pkg/widget"
)

// Dispatcher routes (widget, provider) pairs to emitters, mirroring
// render.Dispatcher. Capability data comes from the shared registry.
type Dispatcher struct {
	providers *provider.Registry

	mu       sync.RWMutex
	emitters map[provider.Pair]Func
}

// NewDispatcher creates an empty dispatcher backed by reg, or by the default
// registry when reg is nil.
func NewDispatcher(reg *provider.Registry) *Dispatcher {
	if reg == nil {
		reg = provider.Default()
	}
	return &Dispatcher{
		providers: reg,
		emitters:  make(map[provider.Pair]Func),
	}
}

// Registry returns the provider registry backing the dispatcher.
func (d *Dispatcher) Registry() *provider.Registry {
	return d.providers
}

// Register adds the emitter for a pair.
func (d *Dispatcher) Register(w widget.Type, p provider.ID, fn Func) error {
	if fn == nil {
		return fmt.Errorf("emit: emitter for %s/%s is required", p, w)
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

	if _, exists := d.emitters[pair]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicate, pair)
	}
	d.emitters[pair] = fn
	return nil
}

// MustRegister panics on registration failure.
func (d *Dispatcher) MustRegister(w widget.Type, p provider.ID, fn Func) {
	if err := d.Register(w, p, fn); err != nil {
		panic(err)
	}
}

// Has reports whether an emitter is registered for the pair.
func (d *Dispatcher) Has(w widget.Type, p provider.ID) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.emitters[provider.Pair{Widget: w, Provider: p}]
	return ok
}

// List returns the registered pairs in registry order.
func (d *Dispatcher) List() []provider.Pair {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []provider.Pair
	for _, pair := range d.providers.Pairs() {
		if _, ok := d.emitters[pair]; ok {
			out = append(out, pair)
		}
	}
	return out
}

// Missing returns the supported pairs without an emitter.
func (d *Dispatcher) Missing() []provider.Pair {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []provider.Pair
	for _, pair := range d.providers.Pairs() {
		if _, ok := d.emitters[pair]; !ok {
			out = append(out, pair)
		}
	}
	return out
}

// Emit produces the source for one pair. Unsupported pairs yield the
// sentinel comment whatever cfg holds.
func (d *Dispatcher) Emit(w widget.Type, p provider.ID, cfg component.Config) (Code, error) {
	pair, err := resolvePair(w, p)
	if err != nil {
		return Code{}, err
	}
	code := Code{Widget: pair.Widget, Provider: pair.Provider}
	if !d.providers.Supports(pair.Widget, pair.Provider) {
		code.Source = Sentinel(d.providers, pair.Widget, pair.Provider)
		code.Unavailable = true
		return code, nil
	}

	d.mu.RLock()
	fn, ok := d.emitters[pair]
	d.mu.RUnlock()
	if !ok {
		return Code{}, fmt.Errorf("%w: %s", ErrNotRegistered, pair)
	}

	file := fn(Props{Widget: pair.Widget, Provider: pair.Provider, Config: cfg.Clone()})
	code.Source = file.String()
	return code, nil
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
