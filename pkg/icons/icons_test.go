package icons

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-compareui/pkg/markup"
)

func TestSanitizeRemovesScripts(t *testing.T) {
	input := `  <svg viewBox="0 0 24 24"><script>alert('x')</script><path d="M0 0h24v24H0z" onclick="x()" /></svg>`
	got := Sanitize(input)
	if got == "" {
		t.Fatalf("expected sanitised markup, got empty string")
	}
	if strings.Contains(got, "script") || strings.Contains(got, "onclick") {
		t.Fatalf("expected script content to be removed, got %q", got)
	}
	if !strings.Contains(got, "<svg") || !strings.Contains(got, "<path") {
		t.Fatalf("expected svg/path elements to remain, got %q", got)
	}
}

func TestSanitizeEmpty(t *testing.T) {
	if got := Sanitize("   "); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestNamesCoverEmbeddedSet(t *testing.T) {
	names := Names()
	for _, want := range []string{"check", "chevron", "close", "expand", "mail", "search"} {
		if !Has(want) {
			t.Fatalf("expected icon %q in %v", want, names)
		}
	}
	if Has("does-not-exist") {
		t.Fatalf("unexpected icon reported")
	}
}

func TestNodeAppliesSize(t *testing.T) {
	node, err := Node(" Search ", "18px")
	if err != nil {
		t.Fatalf("node: %v", err)
	}
	if node.Data != "svg" {
		t.Fatalf("expected svg root, got %q", node.Data)
	}
	if markup.GetAttr(node, "width") != "18px" || markup.GetAttr(node, "height") != "18px" {
		t.Fatalf("expected 18px size, got %v", node.Attr)
	}
	html, err := markup.Render(node)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "<path") {
		t.Fatalf("expected path in rendered icon, got %s", html)
	}
}

func TestNodeUnknownIcon(t *testing.T) {
	if _, err := Node("rocket", ""); !errors.Is(err, ErrUnknownIcon) {
		t.Fatalf("expected ErrUnknownIcon, got %v", err)
	}
}

func TestComponentNames(t *testing.T) {
	cases := []struct {
		name, lucide, material string
	}{
		{"search", "Search", "Search"},
		{"Mail", "Mail", "Mail"},
		{"close", "X", "Close"},
		{"rocket", "Search", "Search"},
		{"", "Search", "Search"},
	}
	for _, tc := range cases {
		if got := Lucide(tc.name); got != tc.lucide {
			t.Fatalf("Lucide(%q) = %q, want %q", tc.name, got, tc.lucide)
		}
		if got := Material(tc.name); got != tc.material {
			t.Fatalf("Material(%q) = %q, want %q", tc.name, got, tc.material)
		}
	}
}
