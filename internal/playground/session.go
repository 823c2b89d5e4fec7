// Package playground holds the host-side state of an interactive session:
// one config per opened widget, edited through field setters or assistant
// patches, and rendered or emitted on demand.
package playground

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-compareui/internal/logger"
	"github.com/goliatone/go-compareui/pkg/assistant"
	"github.com/goliatone/go-compareui/pkg/component"
	"github.com/goliatone/go-compareui/pkg/emit"
	"github.com/goliatone/go-compareui/pkg/patch"
	"github.com/goliatone/go-compareui/pkg/provider"
	"github.com/goliatone/go-compareui/pkg/render"
	"github.com/goliatone/go-compareui/pkg/widget"
)

// ErrNoAssistant is returned by Ask when no assistant is configured.
var ErrNoAssistant = errors.New("playground: no assistant configured")

// Option configures a Session.
type Option func(*Session)

// WithAssistant enables Ask.
func WithAssistant(a assistant.Assistant) Option {
	return func(s *Session) {
		s.assistant = a
	}
}

// WithLogger sets the session logger.
func WithLogger(log *logger.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithMode selects the token set used for rendering.
func WithMode(mode provider.Mode) Option {
	return func(s *Session) {
		s.mode = mode.Resolve()
	}
}

// WithTokens layers design token overrides over every provider's tokens.
func WithTokens(tokens map[string]string) Option {
	return func(s *Session) {
		s.tokens = tokens
	}
}

// Session keeps the config of every opened widget.
type Session struct {
	mu        sync.Mutex
	configs   map[widget.Type]component.Config
	renders   *render.Dispatcher
	emits     *emit.Dispatcher
	assistant assistant.Assistant
	log       *logger.Logger
	mode      provider.Mode
	tokens    map[string]string
}

// NewSession builds a session over the dispatchers.
func NewSession(renders *render.Dispatcher, emits *emit.Dispatcher, opts ...Option) (*Session, error) {
	if renders == nil || emits == nil {
		return nil, errors.New("playground: dispatchers are required")
	}
	s := &Session{
		configs: make(map[widget.Type]component.Config),
		renders: renders,
		emits:   emits,
		log:     logger.Nop(),
		mode:    provider.Light,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Registry returns the provider registry behind the dispatchers.
func (s *Session) Registry() *provider.Registry {
	return s.renders.Registry()
}

// Open returns the config of w, creating it from defaults on first use.
func (s *Session) Open(w widget.Type) (component.Config, error) {
	w, err := resolve(w)
	if err != nil {
		return component.Config{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, ok := s.configs[w]
	if !ok {
		cfg = component.Defaults(w)
		s.configs[w] = cfg
		s.log.With("widget", string(w)).Debug("opened widget with defaults")
	}
	return cfg.Clone(), nil
}

func resolve(w widget.Type) (widget.Type, error) {
	t, err := widget.Parse(string(w))
	if err != nil {
		return "", fmt.Errorf("playground: %w", err)
	}
	return t, nil
}

// Close discards the config of w.
func (s *Session) Close(w widget.Type) {
	if t, err := resolve(w); err == nil {
		w = t
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.configs, w)
}

// Reset restores the defaults of w.
func (s *Session) Reset(w widget.Type) (component.Config, error) {
	s.Close(w)
	return s.Open(w)
}

// Replace stores cfg as the config of w.
func (s *Session) Replace(w widget.Type, cfg component.Config) error {
	w, err := resolve(w)
	if err != nil {
		return err
	}
	if _, err := s.Open(w); err != nil {
		return err
	}
	s.mu.Lock()
	s.configs[w] = cfg.Clone()
	s.mu.Unlock()
	return nil
}

// Apply merges p into the config of w. Fields w does not read are ignored.
func (s *Session) Apply(w widget.Type, p patch.Patch) (component.Config, error) {
	w, err := resolve(w)
	if err != nil {
		return component.Config{}, err
	}
	current, err := s.Open(w)
	if err != nil {
		return component.Config{}, err
	}
	next, err := patch.ApplyWidget(w, current, p)
	if err != nil {
		return current, err
	}
	s.mu.Lock()
	s.configs[w] = next
	s.mu.Unlock()
	return next.Clone(), nil
}

// Set updates one field addressed by a dotted path such as content.label,
// styles.borderRadius or size. raw is decoded as JSON when it parses and used
// as a string otherwise, so 12 sets a number and red sets a string.
func (s *Session) Set(w widget.Type, path, raw string) (component.Config, error) {
	p, err := FieldPatch(path, raw)
	if err != nil {
		return component.Config{}, err
	}
	return s.Apply(w, p)
}

// FieldPatch builds the patch setting one dotted path to raw.
func FieldPatch(path, raw string) (patch.Patch, error) {
	keys := strings.Split(strings.TrimSpace(path), ".")
	for _, key := range keys {
		if key == "" {
			return nil, fmt.Errorf("playground: invalid field path %q", path)
		}
	}

	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		value = raw
	}

	var node any = value
	for i := len(keys) - 1; i > 0; i-- {
		node = map[string]any{keys[i]: node}
	}
	return patch.Patch{keys[0]: node}, nil
}

// Ask sends prompt to the assistant and merges the answer into w's config.
func (s *Session) Ask(ctx context.Context, w widget.Type, prompt string) (component.Config, error) {
	w, err := resolve(w)
	if err != nil {
		return component.Config{}, err
	}
	if s.assistant == nil {
		return component.Config{}, ErrNoAssistant
	}
	current, err := s.Open(w)
	if err != nil {
		return component.Config{}, err
	}
	next, err := assistant.Refine(ctx, s.assistant, w, prompt, current)
	if err != nil {
		s.log.With("widget", string(w)).Error(err, "assistant request failed")
		return current, err
	}
	s.mu.Lock()
	s.configs[w] = next
	s.mu.Unlock()
	s.log.With("widget", string(w)).Info("applied assistant patch")
	return next.Clone(), nil
}

// Render builds a live artifact of w for id from the current config.
func (s *Session) Render(w widget.Type, id provider.ID, cb render.Callbacks) (*render.Artifact, error) {
	w, err := resolve(w)
	if err != nil {
		return nil, err
	}
	cfg, err := s.Open(w)
	if err != nil {
		return nil, err
	}
	artifact, err := s.renders.Render(w, id, cfg, cb, render.WithMode(s.mode), render.WithTokens(s.tokens))
	if err != nil {
		return nil, fmt.Errorf("playground: %w", err)
	}
	s.log.WithFields(map[string]any{
		"widget":      string(w),
		"provider":    string(id),
		"unavailable": artifact.Unavailable(),
	}).Debug("rendered artifact")
	return artifact, nil
}

// Emit returns the source of w for id from the current config.
func (s *Session) Emit(w widget.Type, id provider.ID) (emit.Code, error) {
	w, err := resolve(w)
	if err != nil {
		return emit.Code{}, err
	}
	cfg, err := s.Open(w)
	if err != nil {
		return emit.Code{}, err
	}
	code, err := s.emits.Emit(w, id, cfg)
	if err != nil {
		return emit.Code{}, fmt.Errorf("playground: %w", err)
	}
	return code, nil
}
