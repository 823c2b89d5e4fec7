// Package compareui is the entry point of the module: a Studio wires the
// provider registry, the render and emit dispatchers and the preview builder
// so callers can compare one widget config across every provider with a
// single constructor call.
package compareui

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-compareui/pkg/component"
	"github.com/goliatone/go-compareui/pkg/emit"
	"github.com/goliatone/go-compareui/pkg/patch"
	"github.com/goliatone/go-compareui/pkg/preview"
	"github.com/goliatone/go-compareui/pkg/provider"
	"github.com/goliatone/go-compareui/pkg/providers"
	"github.com/goliatone/go-compareui/pkg/render"
	"github.com/goliatone/go-compareui/pkg/widget"
)

// Config aliases component.Config so callers can stay on the root package.
type Config = component.Config

// Patch aliases patch.Patch.
type Patch = patch.Patch

// Option customises a Studio.
type Option func(*Studio)

// WithRegistry replaces the process-wide provider registry.
func WithRegistry(reg *provider.Registry) Option {
	return func(s *Studio) {
		s.registry = reg
	}
}

// WithMode selects the light or dark token set for artifacts and previews.
func WithMode(mode provider.Mode) Option {
	return func(s *Studio) {
		s.mode = mode.Resolve()
	}
}

// WithTokens layers design token overrides over every provider's tokens.
func WithTokens(tokens map[string]string) Option {
	return func(s *Studio) {
		s.tokens = tokens
	}
}

// WithProviders limits and orders the providers compared by Grid and Page.
func WithProviders(ids ...provider.ID) Option {
	return func(s *Studio) {
		s.providers = append([]provider.ID(nil), ids...)
	}
}

// WithPreviewOptions forwards options to the preview builder.
func WithPreviewOptions(opts ...preview.Option) Option {
	return func(s *Studio) {
		s.previewOpts = append(s.previewOpts, opts...)
	}
}

// Studio renders and emits widgets for every provider.
type Studio struct {
	registry    *provider.Registry
	renders     *render.Dispatcher
	emits       *emit.Dispatcher
	preview     *preview.Builder
	previewOpts []preview.Option
	mode        provider.Mode
	tokens      map[string]string
	providers   []provider.ID
}

// New builds a Studio with every built-in provider registered.
func New(options ...Option) (*Studio, error) {
	s := &Studio{mode: provider.Light}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.registry == nil {
		s.registry = provider.Default()
	}
	if len(s.providers) == 0 {
		s.providers = s.registry.Providers()
	}
	for _, id := range s.providers {
		if _, err := s.registry.DisplayMeta(id); err != nil {
			return nil, fmt.Errorf("compareui: %w", err)
		}
	}

	renders, emits, err := providers.New(s.registry)
	if err != nil {
		return nil, fmt.Errorf("compareui: register providers: %w", err)
	}
	s.renders = renders
	s.emits = emits

	opts := append([]preview.Option{
		preview.WithCode(emits),
		preview.WithMode(s.mode),
		preview.WithProviders(s.providers...),
		preview.WithTokens(s.tokens),
	}, s.previewOpts...)
	builder, err := preview.New(renders, opts...)
	if err != nil {
		return nil, fmt.Errorf("compareui: %w", err)
	}
	s.preview = builder
	return s, nil
}

// Registry returns the provider registry shared by both dispatchers.
func (s *Studio) Registry() *provider.Registry {
	return s.registry
}

// Renders exposes the render dispatcher.
func (s *Studio) Renders() *render.Dispatcher {
	return s.renders
}

// Emits exposes the emit dispatcher.
func (s *Studio) Emits() *emit.Dispatcher {
	return s.emits
}

// Providers lists the compared providers in display order.
func (s *Studio) Providers() []provider.ID {
	return append([]provider.ID(nil), s.providers...)
}

// Render builds the live artifact of w for p.
func (s *Studio) Render(w widget.Type, p provider.ID, cfg Config, cb render.Callbacks) (*render.Artifact, error) {
	return s.renders.Render(w, p, cfg, cb, render.WithMode(s.mode), render.WithTokens(s.tokens))
}

// Emit returns the TSX source of w for p.
func (s *Studio) Emit(w widget.Type, p provider.ID, cfg Config) (emit.Code, error) {
	return s.emits.Emit(w, p, cfg)
}

// Cell is one provider's result in a Grid.
type Cell struct {
	Provider provider.ID
	Artifact *render.Artifact
	Code     emit.Code
}

// Unavailable reports whether the provider lacks the widget.
func (c Cell) Unavailable() bool {
	return c.Code.Unavailable
}

// Grid renders and emits w for every compared provider concurrently. Cells
// come back in provider order. Artifacts carry no callbacks; use Render for
// interactive ones.
func (s *Studio) Grid(ctx context.Context, w widget.Type, cfg Config) ([]Cell, error) {
	w, err := widget.Parse(string(w))
	if err != nil {
		return nil, fmt.Errorf("compareui: %w", err)
	}

	cells := make([]Cell, len(s.providers))
	group, ctx := errgroup.WithContext(ctx)
	for i, id := range s.providers {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			artifact, err := s.Render(w, id, cfg.Clone(), render.Callbacks{})
			if err != nil {
				return fmt.Errorf("compareui: render %s/%s: %w", w, id, err)
			}
			code, err := s.Emit(w, id, cfg.Clone())
			if err != nil {
				return fmt.Errorf("compareui: emit %s/%s: %w", w, id, err)
			}
			cells[i] = Cell{Provider: id, Artifact: artifact, Code: code}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return cells, nil
}

// Page renders the HTML comparison page of w.
func (s *Studio) Page(w widget.Type, cfg Config) ([]byte, error) {
	return s.preview.Page(w, cfg)
}

// Guide renders the setup guide of p.
func (s *Studio) Guide(p provider.ID) (string, error) {
	return s.preview.Guide(p)
}

// Apply merges p into cfg, keeping only the fields w reads. When w is empty
// the whole config schema is used.
func (s *Studio) Apply(w widget.Type, cfg Config, p Patch) (Config, error) {
	if w == "" {
		return patch.Apply(cfg, p), nil
	}
	return patch.ApplyWidget(w, cfg, p)
}

// ErrIncomplete is returned by Check when a supported pair has no renderer or
// emitter registered.
var ErrIncomplete = errors.New("compareui: provider registration incomplete")

// Check verifies that every supported pair is registered on both dispatchers.
func (s *Studio) Check() error {
	missing := append(s.renders.Missing(), s.emits.Missing()...)
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrIncomplete, missing)
}

// Defaults returns the starting config of w.
func Defaults(w widget.Type) Config {
	return component.Defaults(w)
}
