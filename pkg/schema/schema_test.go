package schema

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-compareui/pkg/widget"
)

func TestDocumentValidates(t *testing.T) {
	if err := Validate(context.Background()); err != nil {
		t.Fatalf("validate: %v", err)
	}

	doc := Document()
	if doc.Paths.Len() != 0 {
		t.Fatalf("expected no paths, got %d", doc.Paths.Len())
	}
	for _, name := range []string{"Config", "Content", "StyleOverride", "IconButtonConfig", "TabsConfig"} {
		if _, ok := doc.Components.Schemas[name]; !ok {
			t.Fatalf("missing component schema %q", name)
		}
	}
	if got := len(doc.Components.Schemas); got != 3+len(widget.All()) {
		t.Fatalf("expected %d component schemas, got %d", 3+len(widget.All()), got)
	}
}

func TestDocumentMarshalsToJSON(t *testing.T) {
	payload, err := json.Marshal(Document())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["openapi"] != "3.0.3" {
		t.Fatalf("unexpected openapi version %v", decoded["openapi"])
	}
}

func TestForWidgetListsOnlyUsedFields(t *testing.T) {
	s, err := ForWidget(widget.Switch)
	if err != nil {
		t.Fatalf("for widget: %v", err)
	}
	content := Keys(s.Properties["content"].Value)
	want := []string{"checked", "disabled", "label"}
	if diff := cmp.Diff(want, content); diff != "" {
		t.Fatalf("content keys mismatch (-want +got):\n%s", diff)
	}
	styles := Keys(s.Properties["styles"].Value)
	if diff := cmp.Diff([]string{"activeColor", "color", "fontColor", "fontSize", "inactiveColor"}, styles); diff != "" {
		t.Fatalf("style keys mismatch (-want +got):\n%s", diff)
	}
}

func TestForWidgetUnknown(t *testing.T) {
	if _, err := ForWidget(widget.Type("slider")); !errors.Is(err, widget.ErrUnknownWidget) {
		t.Fatalf("expected ErrUnknownWidget, got %v", err)
	}
}

func TestEveryUsedKeyExists(t *testing.T) {
	content := Content()
	styles := Styles()
	for _, w := range widget.All() {
		for _, key := range ContentKeys(w) {
			if _, ok := content.Properties[key]; !ok {
				t.Fatalf("%s: content key %q not in schema", w, key)
			}
		}
		for _, key := range StyleKeys(w) {
			if _, ok := styles.Properties[key]; !ok {
				t.Fatalf("%s: style key %q not in schema", w, key)
			}
		}
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		value map[string]any
		want  any
	}{
		{
			name: "keeps known leaves",
			value: map[string]any{
				"content": map[string]any{"label": "Save"},
				"styles":  map[string]any{"borderRadius": 12.0, "padding": map[string]any{"px": 20.0}},
			},
			want: map[string]any{
				"content": map[string]any{"label": "Save"},
				"styles":  map[string]any{"borderRadius": 12.0, "padding": map[string]any{"px": 20.0}},
			},
		},
		{
			name: "drops unknown keys",
			value: map[string]any{
				"onClick": "alert(1)",
				"content": map[string]any{"label": "Go", "href": "/x"},
			},
			want: map[string]any{"content": map[string]any{"label": "Go"}},
		},
		{
			name: "drops mistyped leaves",
			value: map[string]any{
				"size":    "huge",
				"content": map[string]any{"checked": "yes", "max": 10.0},
				"styles":  map[string]any{"backgroundColor": 5.0, "fontSize": "1rem"},
			},
			want: map[string]any{
				"content": map[string]any{"max": 10.0},
				"styles":  map[string]any{"fontSize": "1rem"},
			},
		},
		{
			name:  "keeps null markers",
			value: map[string]any{"styles": map[string]any{"color": nil}},
			want:  map[string]any{"styles": map[string]any{"color": nil}},
		},
		{
			name:  "rejects scalar in place of object",
			value: map[string]any{"styles": "red"},
			want:  map[string]any{},
		},
		{
			name: "accepts string options",
			value: map[string]any{"content": map[string]any{
				"options": []any{"A", map[string]any{"value": "B", "label": "Bee"}},
			}},
			want: map[string]any{"content": map[string]any{
				"options": []any{"A", map[string]any{"value": "B", "label": "Bee"}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Filter(Config(), tt.value)
			if !ok {
				t.Fatalf("expected the object to be accepted")
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("filter mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterPerWidgetDropsUnusedFields(t *testing.T) {
	s, err := ForWidget(widget.Button)
	if err != nil {
		t.Fatalf("for widget: %v", err)
	}
	got, _ := Filter(s, map[string]any{
		"content": map[string]any{"label": "Save", "tabs": []any{}},
		"styles":  map[string]any{"trackColor": "red", "fontColor": "white"},
	})
	want := map[string]any{
		"content": map[string]any{"label": "Save"},
		"styles":  map[string]any{"fontColor": "white"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("filter mismatch (-want +got):\n%s", diff)
	}
}
