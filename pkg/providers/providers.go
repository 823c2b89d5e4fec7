// Package providers wires every provider's views and emitters into a pair of
// dispatchers.
package providers

import (
	"fmt"

	"github.com/goliatone/go-compareui/pkg/emit"
	"github.com/goliatone/go-compareui/pkg/provider"
	"github.com/goliatone/go-compareui/pkg/providers/aceternity"
	"github.com/goliatone/go-compareui/pkg/providers/antd"
	"github.com/goliatone/go-compareui/pkg/providers/chakra"
	"github.com/goliatone/go-compareui/pkg/providers/mui"
	"github.com/goliatone/go-compareui/pkg/providers/shadcn"
	"github.com/goliatone/go-compareui/pkg/render"
)

// RegisterFunc adds one provider's views and emitters.
type RegisterFunc func(*render.Dispatcher, *emit.Dispatcher) error

var registrars = map[provider.ID]RegisterFunc{
	provider.MUI:        mui.Register,
	provider.Chakra:     chakra.Register,
	provider.AntD:       antd.Register,
	provider.Shadcn:     shadcn.Register,
	provider.Aceternity: aceternity.Register,
}

// RegisterAll registers every provider in registry order and verifies that no
// supported pair was left without a view or an emitter.
func RegisterAll(r *render.Dispatcher, e *emit.Dispatcher) error {
	if r == nil || e == nil {
		return fmt.Errorf("providers: both dispatchers are required")
	}
	for _, id := range r.Registry().Providers() {
		register, ok := registrars[id]
		if !ok {
			return fmt.Errorf("providers: no registrar for %s", id)
		}
		if err := register(r, e); err != nil {
			return err
		}
	}
	if missing := r.Missing(); len(missing) > 0 {
		return fmt.Errorf("%w: views for %v", render.ErrNotRegistered, missing)
	}
	if missing := e.Missing(); len(missing) > 0 {
		return fmt.Errorf("%w: emitters for %v", emit.ErrNotRegistered, missing)
	}
	return nil
}

// New returns dispatchers backed by reg (the default registry when nil) with
// every provider registered.
func New(reg *provider.Registry) (*render.Dispatcher, *emit.Dispatcher, error) {
	if reg == nil {
		reg = provider.Default()
	}
	r := render.NewDispatcher(reg)
	e := emit.NewDispatcher(reg)
	if err := RegisterAll(r, e); err != nil {
		return nil, nil, err
	}
	return r, e, nil
}
