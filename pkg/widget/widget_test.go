package widget

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		want  Type
	}{
		{input: "button", want: Button},
		{input: " Icon-Button ", want: IconButton},
		{input: "icon_button", want: IconButton},
		{input: "TABS", want: Tabs},
	}
	for _, tc := range cases {
		got, err := Parse(tc.input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("buton")
	if err == nil {
		t.Fatalf("expected error for unknown tag")
	}
	if !errors.Is(err, ErrUnknownWidget) {
		t.Fatalf("expected ErrUnknownWidget, got %v", err)
	}
	var tagErr *UnknownTagError
	if !errors.As(err, &tagErr) {
		t.Fatalf("expected UnknownTagError, got %T", err)
	}
	if tagErr.Suggestion != "button" {
		t.Fatalf("suggestion = %q, want button", tagErr.Suggestion)
	}
	if errors.Is(err, ErrUnknownProvider) {
		t.Fatalf("widget error must not match provider sentinel")
	}
}

func TestAllMatchesCatalog(t *testing.T) {
	var fromCatalog []Type
	for _, entry := range Catalog() {
		fromCatalog = append(fromCatalog, entry.Type)
	}
	if diff := cmp.Diff(All(), fromCatalog); diff != "" {
		t.Fatalf("catalog order mismatch (-all +catalog):\n%s", diff)
	}
	if len(All()) != 11 {
		t.Fatalf("expected 11 widget types, got %d", len(All()))
	}
}

func TestSizeResolve(t *testing.T) {
	cases := map[Size]Size{
		"":       Medium,
		"small":  Small,
		"LARGE":  Large,
		"huge":   Medium,
		"medium": Medium,
	}
	for in, want := range cases {
		if got := in.Resolve(); got != want {
			t.Fatalf("Size(%q).Resolve() = %q, want %q", in, got, want)
		}
	}
	if got := Pick(Small, 1, 2, 3); got != 1 {
		t.Fatalf("Pick small = %d", got)
	}
}

func TestVariantResolution(t *testing.T) {
	if Variant("").ButtonVariant() != Contained {
		t.Fatalf("empty button variant should be contained")
	}
	if Variant("Outlined").ButtonVariant() != Outlined {
		t.Fatalf("outlined button variant lost")
	}
	if Variant("contained").InputVariant() != Outlined {
		t.Fatalf("unknown input variant should be outlined")
	}
	if Variant("standard").InputVariant() != Standard {
		t.Fatalf("standard input variant lost")
	}
}

func TestSearch(t *testing.T) {
	got := Search("toggle")
	if len(got) != 1 || got[0].Type != Switch {
		t.Fatalf("Search(toggle) = %+v", got)
	}
	if len(Search("")) != len(Catalog()) {
		t.Fatalf("empty search should return the catalog")
	}
	if len(Search("button")) != 2 {
		t.Fatalf("expected button and icon button, got %+v", Search("button"))
	}
}
