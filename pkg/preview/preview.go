// Package preview assembles static HTML pages comparing one widget across
// providers, and renders provider setup guides.
package preview

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-compareui/pkg/component"
	"github.com/goliatone/go-compareui/pkg/emit"
	"github.com/goliatone/go-compareui/pkg/provider"
	"github.com/goliatone/go-compareui/pkg/render"
	rendertemplate "github.com/goliatone/go-compareui/pkg/render/template"
	gotemplate "github.com/goliatone/go-compareui/pkg/render/template/gotemplate"
	"github.com/goliatone/go-compareui/pkg/widget"
)

const (
	pageTemplate  = "templates/page.tpl"
	guideTemplate = "templates/guide.tpl"
	generator     = "compareui"
)

// Option configures a Builder.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	assets           *Assets
	mode             provider.Mode
	providers        []provider.ID
	emits            *emit.Dispatcher
	tokens           map[string]string
}

// WithTemplatesFS supplies an alternate template bundle. It must hold
// templates/page.tpl and templates/guide.tpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithAssets replaces the provider asset registry.
func WithAssets(assets *Assets) Option {
	return func(cfg *config) {
		if assets != nil {
			cfg.assets = assets
		}
	}
}

// WithMode renders artifacts with the light or dark token set.
func WithMode(mode provider.Mode) Option {
	return func(cfg *config) {
		cfg.mode = mode.Resolve()
	}
}

// WithProviders limits and orders the compared providers.
func WithProviders(ids ...provider.ID) Option {
	return func(cfg *config) {
		cfg.providers = append([]provider.ID(nil), ids...)
	}
}

// WithCode adds the emitted source of every provider under its artifact.
func WithCode(emits *emit.Dispatcher) Option {
	return func(cfg *config) {
		cfg.emits = emits
	}
}

// WithTokens layers design token overrides over every provider's tokens.
func WithTokens(tokens map[string]string) Option {
	return func(cfg *config) {
		cfg.tokens = tokens
	}
}

// Builder renders preview pages and guides.
type Builder struct {
	renders   *render.Dispatcher
	registry  *provider.Registry
	templates rendertemplate.TemplateRenderer
	assets    *Assets
	css       string
	cfg       config
}

// Panel is one provider's column of a preview page.
type Panel struct {
	Provider    provider.ID `json:"provider"`
	Label       string      `json:"label"`
	Icon        string      `json:"icon,omitempty"`
	Homepage    string      `json:"homepage,omitempty"`
	Package     string      `json:"package,omitempty"`
	HTML        string      `json:"html"`
	Code        string      `json:"code,omitempty"`
	Filename    string      `json:"filename,omitempty"`
	Unavailable bool        `json:"unavailable"`
	Notice      string      `json:"notice,omitempty"`
}

// New constructs a Builder over the render dispatcher.
func New(renders *render.Dispatcher, options ...Option) (*Builder, error) {
	if renders == nil {
		return nil, errors.New("preview: render dispatcher is nil")
	}
	cfg := config{templateFS: TemplatesFS(), mode: provider.Light}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.assets == nil {
		cfg.assets = DefaultAssets()
	}
	if len(cfg.providers) == 0 {
		cfg.providers = renders.Registry().Providers()
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("preview: configure template renderer: %w", err)
		}
		templates = engine
	}
	if err := templates.GlobalContext(map[string]any{"generator": generator}); err != nil {
		return nil, fmt.Errorf("preview: template globals: %w", err)
	}

	css, err := fs.ReadFile(AssetsFS(), "preview.css")
	if err != nil {
		return nil, fmt.Errorf("preview: read stylesheet: %w", err)
	}

	return &Builder{
		renders:   renders,
		registry:  renders.Registry(),
		templates: templates,
		assets:    cfg.assets,
		css:       string(css),
		cfg:       cfg,
	}, nil
}

// Mode returns the token set the builder renders with.
func (b *Builder) Mode() provider.Mode {
	return b.cfg.mode
}

// Panels renders w with cfg for every configured provider.
func (b *Builder) Panels(w widget.Type, cfg component.Config) ([]Panel, error) {
	panels := make([]Panel, 0, len(b.cfg.providers))
	for _, id := range b.cfg.providers {
		panel, err := b.panel(w, id, cfg)
		if err != nil {
			return nil, err
		}
		panels = append(panels, panel)
	}
	return panels, nil
}

func (b *Builder) panel(w widget.Type, id provider.ID, cfg component.Config) (Panel, error) {
	meta, err := b.registry.DisplayMeta(id)
	if err != nil {
		return Panel{}, fmt.Errorf("preview: %w", err)
	}
	artifact, err := b.renders.Render(w, id, cfg, render.Callbacks{},
		render.WithMode(b.cfg.mode), render.WithTokens(b.cfg.tokens))
	if err != nil {
		return Panel{}, fmt.Errorf("preview: render %s/%s: %w", w, id, err)
	}
	markup, err := artifact.HTML()
	if err != nil {
		return Panel{}, fmt.Errorf("preview: %w", err)
	}

	panel := Panel{
		Provider:    id,
		Label:       meta.Label,
		Icon:        meta.Icon,
		Homepage:    meta.Homepage,
		Package:     meta.Package,
		HTML:        markup,
		Unavailable: artifact.Unavailable(),
		Notice:      artifact.Notice(),
	}
	if b.cfg.emits != nil {
		code, err := b.cfg.emits.Emit(w, id, cfg)
		if err != nil {
			return Panel{}, fmt.Errorf("preview: emit %s/%s: %w", w, id, err)
		}
		panel.Code = code.Source
		panel.Filename = code.Filename()
	}
	return panel, nil
}

// Page renders the comparison page for w.
func (b *Builder) Page(w widget.Type, cfg component.Config) ([]byte, error) {
	w, err := widget.Parse(string(w))
	if err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	entry, _ := widget.Lookup(w)
	panels, err := b.Panels(w, cfg)
	if err != nil {
		return nil, err
	}

	out, err := b.templates.RenderTemplate(pageTemplate, map[string]any{
		"title":  entry.Name + " across providers",
		"mode":   string(b.cfg.mode),
		"widget": entry,
		"panels": panels,
		"assets": b.assets.For(b.cfg.providers...),
		"css":    b.css,
	})
	if err != nil {
		return nil, fmt.Errorf("preview: render page: %w", err)
	}
	return []byte(out), nil
}

// Guide renders the setup guide of id as plain text.
func (b *Builder) Guide(id provider.ID) (string, error) {
	meta, err := b.registry.DisplayMeta(id)
	if err != nil {
		return "", fmt.Errorf("preview: %w", err)
	}
	guide, err := b.registry.Guide(id)
	if err != nil {
		return "", fmt.Errorf("preview: %w", err)
	}

	var unsupported []string
	for _, w := range widget.All() {
		if !b.registry.Supports(w, id) {
			unsupported = append(unsupported, w.DisplayName())
		}
	}

	out, err := b.templates.RenderTemplate(guideTemplate, map[string]any{
		"label":       meta.Label,
		"package":     meta.Package,
		"homepage":    meta.Homepage,
		"guide":       guide,
		"unsupported": unsupported,
	})
	if err != nil {
		return "", fmt.Errorf("preview: render guide: %w", err)
	}
	return out, nil
}
