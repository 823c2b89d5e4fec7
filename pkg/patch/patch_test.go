package patch

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-compareui/pkg/component"
	"github.com/goliatone/go-compareui/pkg/style"
	"github.com/goliatone/go-compareui/pkg/widget"
)

func baseConfig() component.Config {
	return component.Config{
		Size:    widget.Medium,
		Variant: widget.Contained,
		Content: component.Content{Title: "A", Label: "Save"},
		Styles: style.Override{
			Color:        style.Tok("red"),
			BorderRadius: style.Px(4),
			Padding:      style.Pad(16, 8),
		},
	}
}

func TestApplyKeepsUnpatchedLeaves(t *testing.T) {
	got := Apply(baseConfig(), Patch{"styles": map[string]any{"color": "blue"}})

	want := baseConfig()
	want.Styles.Color = style.Tok("blue")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		patch Patch
		want  func(*component.Config)
	}{
		{
			name:  "empty patch",
			patch: Patch{},
			want:  func(*component.Config) {},
		},
		{
			name:  "content branch leaves styles alone",
			patch: Patch{"content": map[string]any{"title": "B"}},
			want:  func(c *component.Config) { c.Content.Title = "B" },
		},
		{
			name:  "nested padding axis",
			patch: Patch{"styles": map[string]any{"padding": map[string]any{"px": 20}}},
			want:  func(c *component.Config) { c.Styles.Padding = style.Pad(20, 8) },
		},
		{
			name:  "padding shorthand replaces axes",
			patch: Patch{"styles": map[string]any{"padding": "4px 2px"}},
			want:  func(c *component.Config) { c.Styles.Padding = &style.Spacing{Raw: "4px 2px"} },
		},
		{
			name:  "zero radius is a real override",
			patch: Patch{"styles": map[string]any{"borderRadius": 0}},
			want:  func(c *component.Config) { c.Styles.BorderRadius = style.Px(0) },
		},
		{
			name:  "null clears a field",
			patch: Patch{"styles": map[string]any{"color": nil}},
			want:  func(c *component.Config) { c.Styles.Color = nil },
		},
		{
			name: "unknown keys are ignored",
			patch: Patch{
				"onClick": "alert(1)",
				"content": map[string]any{"href": "/x"},
				"styles":  map[string]any{"zIndex": 3},
			},
			want: func(*component.Config) {},
		},
		{
			name: "mistyped leaves are ignored",
			patch: Patch{
				"size":    "huge",
				"content": map[string]any{"disabled": "yes", "label": "Go"},
				"styles":  map[string]any{"backgroundColor": 12},
			},
			want: func(c *component.Config) { c.Content.Label = "Go" },
		},
		{
			name:  "flat content keys are lifted",
			patch: Patch{"label": "Send", "disabled": true},
			want: func(c *component.Config) {
				c.Content.Label = "Send"
				c.Content.Disabled = true
			},
		},
		{
			name:  "nested content wins over flat keys",
			patch: Patch{"label": "Flat", "content": map[string]any{"label": "Nested"}},
			want:  func(c *component.Config) { c.Content.Label = "Nested" },
		},
		{
			name:  "top-level color moves into styles",
			patch: Patch{"color": "green"},
			want:  func(c *component.Config) { c.Styles.Color = style.Tok("green") },
		},
		{
			name:  "styles color wins over top-level color",
			patch: Patch{"color": "green", "styles": map[string]any{"color": "teal"}},
			want:  func(c *component.Config) { c.Styles.Color = style.Tok("teal") },
		},
		{
			name:  "string content is a body",
			patch: Patch{"content": "Details"},
			want:  func(c *component.Config) { c.Content.Body = "Details" },
		},
		{
			name:  "string value is a selection",
			patch: Patch{"value": "B"},
			want:  func(c *component.Config) { c.Content.Selected = "B" },
		},
		{
			name:  "numeric value is progress",
			patch: Patch{"value": 40},
			want:  func(c *component.Config) { c.Content.Value = 40 },
		},
		{
			name:  "radius alias",
			patch: Patch{"styles": map[string]any{"radius": 9}},
			want:  func(c *component.Config) { c.Styles.BorderRadius = style.Px(9) },
		},
		{
			name: "options replace the list",
			patch: Patch{"content": map[string]any{
				"options": []any{"A", map[string]any{"value": "B", "label": "Bee"}},
			}},
			want: func(c *component.Config) {
				c.Content.Options = []component.Option{{Value: "A", Label: "A"}, {Value: "B", Label: "Bee"}}
			},
		},
		{
			name:  "variant and size",
			patch: Patch{"variant": "outlined", "size": "large"},
			want: func(c *component.Config) {
				c.Variant = widget.Outlined
				c.Size = widget.Large
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := baseConfig()
			got := Apply(base, tt.patch)

			want := baseConfig()
			tt.want(&want)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("apply mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(baseConfig(), base); diff != "" {
				t.Fatalf("base mutated (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyDoesNotAliasBase(t *testing.T) {
	base := baseConfig()
	got := Apply(base, Patch{"content": map[string]any{"label": "X"}})
	*got.Styles.Color = "purple"
	if style.Value(base.Styles.Color) != "red" {
		t.Fatalf("result shares style pointers with base")
	}
}

func TestApplyWidget(t *testing.T) {
	got, err := ApplyWidget(widget.Switch, baseConfig(), Patch{
		"content": map[string]any{"checked": true, "title": "ignored"},
		"styles":  map[string]any{"activeColor": "#0f0", "borderRadius": 30},
	})
	if err != nil {
		t.Fatalf("apply widget: %v", err)
	}
	want := baseConfig()
	want.Content.Checked = true
	want.Styles.ActiveColor = style.Tok("#0f0")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("apply mismatch (-want +got):\n%s", diff)
	}

	if _, err := ApplyWidget(widget.Type("slider"), baseConfig(), Patch{}); !errors.Is(err, widget.ErrUnknownWidget) {
		t.Fatalf("expected ErrUnknownWidget, got %v", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Patch
	}{
		{
			name: "json",
			data: `{"styles":{"borderRadius":12}}`,
			want: Patch{"styles": map[string]any{"borderRadius": 12.0}},
		},
		{
			name: "yaml",
			data: "content:\n  label: Save\nstyles:\n  borderRadius: 12\n",
			want: Patch{
				"content": map[string]any{"label": "Save"},
				"styles":  map[string]any{"borderRadius": 12.0},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.data))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("parse mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := Parse([]byte("  ")); !errors.Is(err, ErrEmptyPatch) {
		t.Fatalf("expected ErrEmptyPatch, got %v", err)
	}
	if _, err := Parse([]byte("- a\n- b\n")); err == nil {
		t.Fatalf("expected an error for a list document")
	}
}

func TestDiffRoundTrip(t *testing.T) {
	from := baseConfig()
	to := baseConfig()
	to.Content.Title = ""
	to.Content.Body = "Details"
	to.Styles.Color = style.Tok("blue")
	to.Styles.Padding = &style.Spacing{Y: style.Px(8)}
	to.Styles.BorderRadius = nil

	p, err := Diff(from, to)
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	want := Patch{
		"content": map[string]any{"title": nil, "body": "Details"},
		"styles": map[string]any{
			"color":        "blue",
			"borderRadius": nil,
			"padding":      map[string]any{"px": nil},
		},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Fatalf("diff mismatch (-want +got):\n%s", diff)
	}

	if got := Apply(from, p); !cmp.Equal(to, got) {
		t.Fatalf("apply(diff) mismatch:\n%s", cmp.Diff(to, got))
	}
}

func TestDiffIdentical(t *testing.T) {
	p, err := Diff(baseConfig(), baseConfig())
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	if len(p) != 0 {
		t.Fatalf("expected an empty patch, got %v", p)
	}
}
