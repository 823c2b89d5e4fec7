package provider

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-compareui/pkg/widget"
)

func TestDefaultRegistryCapabilities(t *testing.T) {
	reg := Default()

	if diff := cmp.Diff(All(), reg.Providers()); diff != "" {
		t.Fatalf("provider order mismatch (-want +got):\n%s", diff)
	}

	for _, id := range []ID{MUI, Chakra, AntD, Shadcn} {
		caps, err := reg.Capabilities(id)
		if err != nil {
			t.Fatalf("capabilities %s: %v", id, err)
		}
		if diff := cmp.Diff(widget.All(), caps); diff != "" {
			t.Fatalf("%s should support every widget (-want +got):\n%s", id, diff)
		}
	}

	caps, err := reg.Capabilities(Aceternity)
	if err != nil {
		t.Fatalf("capabilities aceternity: %v", err)
	}
	want := []widget.Type{widget.Button, widget.Card, widget.IconButton, widget.Input, widget.Modal, widget.Radio, widget.Select, widget.Switch}
	if diff := cmp.Diff(want, caps); diff != "" {
		t.Fatalf("aceternity capabilities (-want +got):\n%s", diff)
	}
	for _, w := range []widget.Type{widget.Accordion, widget.Progress, widget.Tabs} {
		if reg.Supports(w, Aceternity) {
			t.Fatalf("aceternity must not support %s", w)
		}
	}
	if got := reg.SupportedBy(widget.Tabs); len(got) != 4 {
		t.Fatalf("tabs supported by %v", got)
	}
}

func TestDisplayMetaAndGuide(t *testing.T) {
	reg := Default()
	meta, err := reg.DisplayMeta(AntD)
	if err != nil {
		t.Fatalf("meta: %v", err)
	}
	if meta.Label != "Ant Design" || meta.Icon == "" {
		t.Fatalf("unexpected meta: %+v", meta)
	}
	guide, err := reg.Guide(Shadcn)
	if err != nil {
		t.Fatalf("guide: %v", err)
	}
	if guide.Install == "" || guide.Setup == "" || guide.Usage == "" {
		t.Fatalf("incomplete guide: %+v", guide)
	}
}

func TestUnknownProvider(t *testing.T) {
	reg := Default()
	_, err := reg.DisplayMeta(ID("chakara"))
	if !errors.Is(err, ErrUnknownProvider) {
		t.Fatalf("expected ErrUnknownProvider, got %v", err)
	}
	var tagErr *widget.UnknownTagError
	if !errors.As(err, &tagErr) || tagErr.Suggestion != "chakra" {
		t.Fatalf("expected suggestion chakra, got %v", err)
	}
	if reg.Supports(widget.Button, ID("bootstrap")) {
		t.Fatalf("unknown provider must not be supported")
	}
}

func TestTokensLayerDarkOverLight(t *testing.T) {
	reg := Default()
	light := reg.Tokens(Shadcn, Light)
	dark := reg.Tokens(Shadcn, Dark)
	if light["primary"] != "#18181b" || dark["primary"] != "#fafafa" {
		t.Fatalf("shadcn primary light %q dark %q", light["primary"], dark["primary"])
	}
	if dark["fontFamily"] != light["fontFamily"] {
		t.Fatalf("dark tokens should inherit the light base")
	}
	if reg.Tokens(AntD, Mode("sepia"))["surface"] != "#ffffff" {
		t.Fatalf("unknown mode should resolve to light")
	}
	if got := (Tokens{}).Get("accent", "#000"); got != "#000" {
		t.Fatalf("Get fallback = %q", got)
	}
}

func TestLoadRejectsIncompleteTable(t *testing.T) {
	cases := map[string]string{
		"missing provider": `providers:
  - id: mui
    label: Material UI
    widgets: [button]
`,
		"unknown widget": `providers:
  - id: mui
    label: Material UI
    widgets: [carousel]
`,
		"unknown provider": `providers:
  - id: bootstrap
    label: Bootstrap
`,
	}
	for name, table := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load([]byte(table)); !errors.Is(err, ErrInvalidRegistry) {
				t.Fatalf("expected ErrInvalidRegistry, got %v", err)
			}
		})
	}
}

func TestParseList(t *testing.T) {
	got, err := ParseList([]string{"MUI", "antd", "mui"})
	if err != nil {
		t.Fatalf("parse list: %v", err)
	}
	if diff := cmp.Diff([]ID{MUI, AntD}, got); diff != "" {
		t.Fatalf("parse list (-want +got):\n%s", diff)
	}
	all, _ := ParseList(nil)
	if len(all) != 5 {
		t.Fatalf("empty list should expand to every provider")
	}
}

func TestPairsMatchCapabilities(t *testing.T) {
	reg := Default()
	pairs := reg.Pairs()
	if len(pairs) != 4*len(widget.All())+8 {
		t.Fatalf("expected 52 supported pairs, got %d", len(pairs))
	}
	for _, pair := range pairs {
		if !reg.Supports(pair.Widget, pair.Provider) {
			t.Fatalf("pair %s listed but not supported", pair)
		}
	}
	if pairs[0].String() != "mui/accordion" {
		t.Fatalf("unexpected first pair %s", pairs[0])
	}
}

func TestUnsupportedNotice(t *testing.T) {
	got := Default().Unsupported(Aceternity, widget.Tabs)
	want := "Aceternity UI does not include a standard Tabs component."
	if got != want {
		t.Fatalf("unexpected notice\nwant %q\n got %q", want, got)
	}
}
