package preview_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-compareui/pkg/component"
	"github.com/goliatone/go-compareui/pkg/preview"
	"github.com/goliatone/go-compareui/pkg/provider"
	"github.com/goliatone/go-compareui/pkg/providers"
	"github.com/goliatone/go-compareui/pkg/widget"
)

func newBuilder(t *testing.T, opts ...preview.Option) *preview.Builder {
	t.Helper()
	renders, emits, err := providers.New(provider.Default())
	if err != nil {
		t.Fatalf("providers: %v", err)
	}
	opts = append([]preview.Option{preview.WithCode(emits)}, opts...)
	builder, err := preview.New(renders, opts...)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	return builder
}

func TestPageListsEveryProvider(t *testing.T) {
	builder := newBuilder(t, preview.WithMode(provider.Dark))

	cfg := component.Defaults(widget.Button)
	cfg.Content.Label = "Save"
	out, err := builder.Page(widget.Button, cfg)
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	page := string(out)

	for _, want := range []string{
		`<html lang="en" class="dark" data-theme="dark">`,
		"<title>Button across providers</title>",
		`data-provider="mui"`,
		`data-provider="aceternity"`,
		"Material UI",
		"Save",
		"CustomButton.tsx",
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("page missing %q", want)
		}
	}
	if got := strings.Count(page, `<script src="https://cdn.tailwindcss.com">`); got != 1 {
		t.Fatalf("expected the tailwind runtime once, got %d", got)
	}
	if strings.Contains(page, "&lt;button") {
		t.Fatalf("artifact markup was escaped")
	}
}

func TestPanelsMarkUnsupportedPairs(t *testing.T) {
	builder := newBuilder(t, preview.WithProviders(provider.Aceternity, provider.MUI))

	panels, err := builder.Panels(widget.Tabs, component.Defaults(widget.Tabs))
	if err != nil {
		t.Fatalf("panels: %v", err)
	}
	if len(panels) != 2 {
		t.Fatalf("expected 2 panels, got %d", len(panels))
	}
	if !panels[0].Unavailable || panels[0].Notice == "" {
		t.Fatalf("expected aceternity tabs to be unavailable: %+v", panels[0])
	}
	if !strings.HasPrefix(panels[0].Code, "// ") {
		t.Fatalf("expected sentinel code, got %q", panels[0].Code)
	}
	if panels[1].Unavailable || panels[1].Provider != provider.MUI {
		t.Fatalf("unexpected mui panel %+v", panels[1])
	}
}

func TestPageRejectsUnknownWidget(t *testing.T) {
	builder := newBuilder(t)
	if _, err := builder.Page(widget.Type("slider"), component.Config{}); !errors.Is(err, widget.ErrUnknownWidget) {
		t.Fatalf("expected ErrUnknownWidget, got %v", err)
	}
}

func TestGuide(t *testing.T) {
	builder := newBuilder(t)

	out, err := builder.Guide(provider.Aceternity)
	if err != nil {
		t.Fatalf("guide: %v", err)
	}
	for _, want := range []string{
		"# Aceternity UI setup",
		"    npm i framer-motion clsx tailwind-merge",
		"## Not available",
		"- Accordion",
		"- Progress",
		"- Tabs",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("guide missing %q:\n%s", want, out)
		}
	}

	mui, err := builder.Guide(provider.MUI)
	if err != nil {
		t.Fatalf("guide: %v", err)
	}
	if strings.Contains(mui, "## Not available") {
		t.Fatalf("mui supports every widget")
	}
	if strings.Contains(mui, "&lt;") || !strings.Contains(mui, "<ThemeProvider") {
		t.Fatalf("guide code was escaped:\n%s", mui)
	}

	if _, err := builder.Guide(provider.ID("bootstrap")); err == nil {
		t.Fatalf("expected an error for an unknown provider")
	}
}

func TestAssetsForDeduplicates(t *testing.T) {
	assets := preview.DefaultAssets()
	got := assets.For(provider.Shadcn, provider.Aceternity, provider.AntD)
	want := []preview.Asset{
		{Kind: preview.Script, Href: "https://cdn.tailwindcss.com"},
		{Kind: preview.Stylesheet, Href: "https://cdn.jsdelivr.net/npm/antd@5/dist/reset.css"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("assets mismatch (-want +got):\n%s", diff)
	}

	custom := preview.NewAssets()
	custom.Register(provider.MUI, preview.Asset{Href: "/mui.css"}, preview.Asset{})
	if diff := cmp.Diff([]preview.Asset{{Kind: preview.Stylesheet, Href: "/mui.css"}}, custom.For(provider.MUI)); diff != "" {
		t.Fatalf("custom assets mismatch (-want +got):\n%s", diff)
	}
}
