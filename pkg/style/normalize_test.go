package style

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-compareui/pkg/widget"
)

func sampleOverrides() map[string]Override {
	return map[string]Override{
		"empty":  {},
		"radius": {BorderRadius: Px(12)},
		"zero radius": {
			BorderRadius: Px(0),
		},
		"verbatim": {
			BorderRadius: Raw("1rem"),
			BorderWidth:  Raw("thick"),
			Padding:      &Spacing{Raw: "2px 4px 6px"},
		},
		"mixed": {
			BackgroundColor: Tok("  #111 "),
			FontColor:       Tok("white"),
			BorderWidth:     Px(2),
			Padding:         &Spacing{X: Px(24)},
			Height:          Raw("10"),
		},
		"normalised": {
			BorderRadius: Raw("8px"),
			Padding:      &Spacing{X: Raw("16px"), Y: Raw("8px")},
			FontSize:     Raw("1rem"),
			Height:       Raw("8px"),
		},
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for name, override := range sampleOverrides() {
		for _, size := range append(widget.Sizes(), widget.Size("bogus")) {
			once := Normalize(override, size)
			twice := Normalize(once, size)
			if diff := cmp.Diff(once, twice); diff != "" {
				t.Fatalf("%s/%s: normalise not idempotent (-once +twice):\n%s", name, size, diff)
			}
		}
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	in := Override{BorderRadius: Px(12), BackgroundColor: Tok(" red "), Padding: Pad(4, 1)}
	snapshot := in.Clone()

	out := Normalize(in, widget.Large)
	if diff := cmp.Diff(snapshot, in); diff != "" {
		t.Fatalf("input mutated (-before +after):\n%s", diff)
	}
	if out.BorderRadius == in.BorderRadius || out.Padding == in.Padding {
		t.Fatalf("normalised output shares pointers with the input")
	}
}

func TestNormalizeCoercionAndDefaults(t *testing.T) {
	got := Normalize(Override{
		BorderRadius:    Px(12),
		BorderWidth:     Raw("thick"),
		BackgroundColor: Tok(" #fff "),
		Padding:         &Spacing{X: Px(24)},
	}, widget.Small)

	if CSS(got.BorderRadius) != "12px" {
		t.Fatalf("radius = %q, want 12px", CSS(got.BorderRadius))
	}
	if CSS(got.BorderWidth) != "thick" {
		t.Fatalf("verbatim width changed: %q", CSS(got.BorderWidth))
	}
	if Value(got.BackgroundColor) != "#fff" {
		t.Fatalf("background = %q", Value(got.BackgroundColor))
	}
	if got.Padding.String() != "4px 24px" {
		t.Fatalf("padding = %q, want small tier y with explicit x", got.Padding.String())
	}
	if CSS(got.Height) != "4px" || CSS(got.FontSize) != "0.875rem" {
		t.Fatalf("size defaults not applied: height %q font %q", CSS(got.Height), CSS(got.FontSize))
	}
	if got.FontColor != nil || got.BorderColor != nil {
		t.Fatalf("colours must not be defaulted")
	}
}

func TestNormalizeZeroRadiusIsAnOverride(t *testing.T) {
	got := Normalize(Override{BorderRadius: Px(0)}, widget.Large)
	if CSS(got.BorderRadius) != "0px" {
		t.Fatalf("radius = %q, want 0px", CSS(got.BorderRadius))
	}
	unset := Normalize(Override{}, widget.Large)
	if CSS(unset.BorderRadius) != MetricsFor(widget.Large).Radius {
		t.Fatalf("unset radius = %q, want tier default", CSS(unset.BorderRadius))
	}
}

func TestOverrideDecodeIsTolerant(t *testing.T) {
	payload := []byte(`{
		"borderRadius": "12",
		"borderWidth": true,
		"backgroundColor": 255,
		"padding": 6,
		"height": {"weird": 1}
	}`)

	var got Override
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if CSS(got.BorderRadius) != "12" {
		t.Fatalf("string radius should pass through, got %q", CSS(got.BorderRadius))
	}
	if px, ok := got.BorderRadius.Pixels(); !ok || px != 12 {
		t.Fatalf("numeric string should still read as pixels")
	}
	if CSS(got.BorderWidth) != "true" || Value(got.BackgroundColor) != "255" {
		t.Fatalf("mistyped values not kept verbatim: %q %q", CSS(got.BorderWidth), Value(got.BackgroundColor))
	}
	if got.Padding.String() != "6px 6px" {
		t.Fatalf("numeric padding = %q", got.Padding.String())
	}
	if CSS(got.Height) != `{"weird":1}` {
		t.Fatalf("object height = %q", CSS(got.Height))
	}
}

func TestOverrideJSONKeepsAbsentFieldsAbsent(t *testing.T) {
	data, err := json.Marshal(Override{BorderRadius: Px(0), Padding: Pad(4, 1)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"borderRadius":0,"padding":{"px":4,"py":1}}`
	if string(data) != want {
		t.Fatalf("json = %s, want %s", data, want)
	}
}

func TestMetricsTiers(t *testing.T) {
	small, medium, large := MetricsFor(widget.Small), MetricsFor(widget.Medium), MetricsFor(widget.Large)
	if small.Inset != "8px" || medium.Inset != "16px" || large.Inset != "24px" {
		t.Fatalf("inset tiers = %s/%s/%s", small.Inset, medium.Inset, large.Inset)
	}
	if large.LineHeight != medium.LineHeight {
		t.Fatalf("large tier should inherit base line height")
	}
	if MetricsFor("").Size != widget.Medium {
		t.Fatalf("unknown size should resolve to medium")
	}
}
