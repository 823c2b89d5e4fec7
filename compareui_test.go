package compareui

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-compareui/pkg/provider"
	"github.com/goliatone/go-compareui/pkg/render"
	"github.com/goliatone/go-compareui/pkg/style"
	"github.com/goliatone/go-compareui/pkg/widget"
)

func TestStudioRegistrationIsComplete(t *testing.T) {
	studio, err := New()
	if err != nil {
		t.Fatalf("new studio: %v", err)
	}
	if err := studio.Check(); err != nil {
		t.Fatalf("check: %v", err)
	}
	if got := len(studio.Providers()); got != 5 {
		t.Fatalf("expected 5 providers, got %d", got)
	}
}

func TestGridKeepsProviderOrder(t *testing.T) {
	order := []provider.ID{provider.Shadcn, provider.Aceternity, provider.MUI}
	studio, err := New(WithProviders(order...))
	if err != nil {
		t.Fatalf("new studio: %v", err)
	}

	cfg := Defaults(widget.Progress)
	cells, err := studio.Grid(context.Background(), widget.Progress, cfg)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	if len(cells) != len(order) {
		t.Fatalf("expected %d cells, got %d", len(order), len(cells))
	}
	for i, cell := range cells {
		if cell.Provider != order[i] {
			t.Fatalf("cell %d: expected %s, got %s", i, order[i], cell.Provider)
		}
		if cell.Artifact.Provider() != order[i] {
			t.Fatalf("cell %d artifact belongs to %s", i, cell.Artifact.Provider())
		}
	}
	if !cells[1].Unavailable() || !cells[1].Artifact.Unavailable() {
		t.Fatalf("aceternity progress should be unavailable")
	}
	if cells[0].Unavailable() || !strings.Contains(cells[0].Code.Source, "Progress") {
		t.Fatalf("unexpected shadcn progress code:\n%s", cells[0].Code.Source)
	}
}

func TestGridRejectsUnknownWidget(t *testing.T) {
	studio, err := New()
	if err != nil {
		t.Fatalf("new studio: %v", err)
	}
	if _, err := studio.Grid(context.Background(), widget.Type("slider"), Config{}); !errors.Is(err, widget.ErrUnknownWidget) {
		t.Fatalf("expected ErrUnknownWidget, got %v", err)
	}
}

func TestGridHonoursCancellation(t *testing.T) {
	studio, err := New()
	if err != nil {
		t.Fatalf("new studio: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := studio.Grid(ctx, widget.Button, Defaults(widget.Button)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewRejectsUnknownProvider(t *testing.T) {
	if _, err := New(WithProviders(provider.ID("bootstrap"))); !errors.Is(err, provider.ErrUnknownProvider) {
		t.Fatalf("expected ErrUnknownProvider, got %v", err)
	}
}

func TestButtonScenario(t *testing.T) {
	studio, err := New()
	if err != nil {
		t.Fatalf("new studio: %v", err)
	}

	cfg, err := studio.Apply(widget.Button, Defaults(widget.Button), Patch{
		"label":  "Save",
		"styles": map[string]any{"borderRadius": 12},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if cfg.Content.Label != "Save" || !cfg.Styles.BorderRadius.Equal(*style.Px(12)) {
		t.Fatalf("patch not applied: %+v", cfg)
	}

	presses := 0
	for _, id := range studio.Providers() {
		artifact, err := studio.Render(widget.Button, id, cfg, render.Callbacks{OnPress: func() { presses++ }})
		if err != nil {
			t.Fatalf("render %s: %v", id, err)
		}
		if err := artifact.Dispatch(render.Event{Kind: render.EventPress}); err != nil {
			t.Fatalf("press %s: %v", id, err)
		}
		code, err := studio.Emit(widget.Button, id, cfg)
		if err != nil {
			t.Fatalf("emit %s: %v", id, err)
		}
		if !strings.Contains(code.Source, "Save") {
			t.Fatalf("%s code missing label:\n%s", id, code.Source)
		}
		if !strings.Contains(code.Source, "12px") {
			t.Fatalf("%s code missing radius:\n%s", id, code.Source)
		}
	}
	if presses != 5 {
		t.Fatalf("expected one press per provider, got %d", presses)
	}
}

func TestPageAndGuide(t *testing.T) {
	studio, err := New(WithMode(provider.Dark))
	if err != nil {
		t.Fatalf("new studio: %v", err)
	}
	page, err := studio.Page(widget.Switch, Defaults(widget.Switch))
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if !strings.Contains(string(page), `class="dark"`) {
		t.Fatalf("expected dark page")
	}
	guide, err := studio.Guide(provider.Chakra)
	if err != nil {
		t.Fatalf("guide: %v", err)
	}
	if !strings.Contains(guide, "# Chakra UI setup") {
		t.Fatalf("unexpected guide:\n%s", guide)
	}
}

func TestEmbeddedFilesystems(t *testing.T) {
	if _, err := fs.ReadFile(EmbeddedTemplates(), "templates/page.tpl"); err != nil {
		t.Fatalf("expected page template: %v", err)
	}
	data, err := fs.ReadFile(AssetsFS(), "preview.css")
	if err != nil {
		t.Fatalf("expected preview stylesheet: %v", err)
	}
	if !strings.Contains(string(data), "compare__header") {
		t.Fatalf("unexpected stylesheet contents")
	}
}
