package component

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-compareui/pkg/style"
	"github.com/goliatone/go-compareui/pkg/widget"
)

func TestDefaultsCoverEveryWidget(t *testing.T) {
	for _, w := range widget.All() {
		cfg := Defaults(w)
		if cfg.Size != widget.Medium {
			t.Fatalf("%s: default size = %q", w, cfg.Size)
		}
		c := cfg.Content
		if c.Label == "" && c.Title == "" && len(c.Options) == 0 && len(c.Tabs) == 0 {
			t.Fatalf("%s: default content is empty", w)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	base := Defaults(widget.Select)
	clone := base.Clone()
	clone.Content.Options[0].Label = "changed"
	*clone.Styles.BorderRadius = style.Length{Px: 99}

	if base.Content.Options[0].Label != "Basic Plan" {
		t.Fatalf("clone shares options with base")
	}
	if style.CSS(base.Styles.BorderRadius) != "8px" {
		t.Fatalf("clone shares styles with base")
	}
}

func TestLoadConfigJSONAcceptsBareOptions(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{"content":{"options":["A","B",3],"selectedValue":"B"}}`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []Option{{Value: "A", Label: "A"}, {Value: "B", Label: "B"}, {Value: "3", Label: "3"}}
	if diff := cmp.Diff(want, cfg.Content.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if cfg.Content.SelectedOption() != "B" {
		t.Fatalf("selected = %q", cfg.Content.SelectedOption())
	}
}

func TestLoadConfigFSYAML(t *testing.T) {
	cfg, err := LoadConfigFS(os.DirFS("testdata"), "button.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Size != widget.Large || cfg.Variant != widget.Outlined || cfg.Content.Label != "Save" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if style.CSS(cfg.Styles.BorderRadius) != "12px" {
		t.Fatalf("radius = %q", style.CSS(cfg.Styles.BorderRadius))
	}
	if cfg.Styles.Padding == nil || cfg.Styles.Padding.String() != "8px 24px" {
		t.Fatalf("padding = %+v", cfg.Styles.Padding)
	}
	if cfg.Styles.FontColor != nil {
		t.Fatalf("absent style field decoded as set")
	}
}

func TestLoadConfigRejectsEmpty(t *testing.T) {
	if _, err := LoadConfig([]byte("   ")); err != ErrEmptyConfig {
		t.Fatalf("expected ErrEmptyConfig, got %v", err)
	}
}

func TestContentFallbacks(t *testing.T) {
	var c Content
	if !c.ImageVisible() {
		t.Fatalf("absent image flag should show the image")
	}
	if c.ProgressMax() != 100 || c.Percent() != 0 {
		t.Fatalf("zero progress fallbacks wrong: max %v pct %d", c.ProgressMax(), c.Percent())
	}
	if c.ActiveTab() != "" || c.SelectedOption() != "" {
		t.Fatalf("empty content should yield empty selections")
	}

	c = Content{Value: 1, Max: 3}
	if c.Percent() != 33 {
		t.Fatalf("percent = %d, want 33", c.Percent())
	}
	c = Content{Value: 250}
	if c.Percent() != 100 {
		t.Fatalf("percent should clamp, got %d", c.Percent())
	}
}

func TestActiveTabFallsBackToFirst(t *testing.T) {
	c := Defaults(widget.Tabs).Content
	if c.ActiveTab() != "account" {
		t.Fatalf("active tab = %q", c.ActiveTab())
	}
	c.DefaultValue = "missing"
	if c.ActiveTab() != "account" {
		t.Fatalf("unknown default should fall back to the first tab, got %q", c.ActiveTab())
	}
	c.Orientation = " Vertical "
	if !c.Vertical() {
		t.Fatalf("orientation should be case insensitive")
	}
}
