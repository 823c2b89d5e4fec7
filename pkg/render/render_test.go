package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	"github.com/goliatone/go-compareui/pkg/component"
	"github.com/goliatone/go-compareui/pkg/markup"
	"github.com/goliatone/go-compareui/pkg/provider"
	"github.com/goliatone/go-compareui/pkg/widget"
)

// radioView draws one input per option and marks the selected one.
func radioView(props Props) View {
	return func(s State) *html.Node {
		root := markup.El("div", markup.Attr("role", "radiogroup"))
		for _, opt := range props.Content().Options {
			markup.Kids(markup.El("input",
				markup.Attr("type", "radio"),
				markup.Attr("value", opt.Value),
				markup.Flag("checked", s.Selected == opt.Value),
			))(root)
		}
		return root
	}
}

func labelView(props Props) View {
	return func(s State) *html.Node {
		return markup.El("button",
			markup.Style(markup.D("border-radius", props.Style.BorderRadius.String())),
			markup.Text(props.Content().Label),
		)
	}
}

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	d := NewDispatcher(nil)
	d.MustRegister(widget.Radio, provider.MUI, radioView)
	d.MustRegister(widget.Radio, provider.Chakra, radioView)
	d.MustRegister(widget.Button, provider.MUI, labelView)
	d.MustRegister(widget.Switch, provider.MUI, labelView)
	d.MustRegister(widget.Modal, provider.MUI, labelView)
	d.MustRegister(widget.Input, provider.MUI, labelView)
	return d
}

func radioConfig() component.Config {
	return component.Config{Content: component.Content{
		Options:  []component.Option{{Value: "A"}, {Value: "B"}},
		Selected: "B",
	}}
}

func TestRenderRadioSelectionIsProviderIndependent(t *testing.T) {
	d := newTestDispatcher(t)
	for _, id := range []provider.ID{provider.MUI, provider.Chakra} {
		art, err := d.Render(widget.Radio, id, radioConfig(), Callbacks{})
		if err != nil {
			t.Fatalf("render %s: %v", id, err)
		}
		if art.Selected() != "B" {
			t.Fatalf("%s: expected selected B, got %q", id, art.Selected())
		}
		checked := markup.Find(art.Node(), func(n *html.Node) bool { return markup.HasAttr(n, "checked") })
		if markup.GetAttr(checked, "value") != "B" {
			t.Fatalf("%s: expected B to be checked in markup", id)
		}
	}
}

func TestRenderUnsupportedPairReturnsPlaceholder(t *testing.T) {
	d := newTestDispatcher(t)
	art, err := d.Render(widget.Tabs, provider.Aceternity, component.Config{}, Callbacks{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !art.Unavailable() {
		t.Fatalf("expected placeholder artifact")
	}
	out, err := art.HTML()
	if err != nil {
		t.Fatalf("html: %v", err)
	}
	if !strings.Contains(out, "Aceternity UI does not include a standard Tabs component.") {
		t.Fatalf("unexpected placeholder markup %s", out)
	}
	if err := art.Dispatch(Event{Kind: EventPress}); err != nil {
		t.Fatalf("placeholder should ignore events, got %v", err)
	}
}

func TestRenderUnknownTags(t *testing.T) {
	d := newTestDispatcher(t)

	_, err := d.Render("buton", provider.MUI, component.Config{}, Callbacks{})
	if !errors.Is(err, widget.ErrUnknownWidget) {
		t.Fatalf("expected ErrUnknownWidget, got %v", err)
	}
	var tagErr *widget.UnknownTagError
	if !errors.As(err, &tagErr) || tagErr.Suggestion != "button" {
		t.Fatalf("expected suggestion button, got %#v", err)
	}

	_, err = d.Render(widget.Button, "bootstrap", component.Config{}, Callbacks{})
	if !errors.Is(err, provider.ErrUnknownProvider) {
		t.Fatalf("expected ErrUnknownProvider, got %v", err)
	}
}

func TestRenderMissingViewIsIntegrationError(t *testing.T) {
	d := newTestDispatcher(t)
	_, err := d.Render(widget.Card, provider.Shadcn, component.Config{}, Callbacks{})
	if !errors.Is(err, ErrNotRegistered) {
		t.Fatalf("expected ErrNotRegistered, got %v", err)
	}
}

func TestRegisterRejectsInvalidEntries(t *testing.T) {
	d := newTestDispatcher(t)
	if err := d.Register(widget.Radio, provider.MUI, radioView); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if err := d.Register(widget.Accordion, provider.Aceternity, labelView); !errors.Is(err, ErrUnsupportedPair) {
		t.Fatalf("expected ErrUnsupportedPair, got %v", err)
	}
	if err := d.Register(widget.Button, provider.Chakra, nil); err == nil {
		t.Fatalf("expected error for nil view")
	}
	if !d.Has(widget.Radio, provider.Chakra) || d.Has(widget.Radio, provider.AntD) {
		t.Fatalf("unexpected Has results")
	}
	want := []provider.Pair{
		{Widget: widget.Button, Provider: provider.MUI},
		{Widget: widget.Input, Provider: provider.MUI},
		{Widget: widget.Modal, Provider: provider.MUI},
		{Widget: widget.Radio, Provider: provider.MUI},
		{Widget: widget.Switch, Provider: provider.MUI},
		{Widget: widget.Radio, Provider: provider.Chakra},
	}
	if diff := cmp.Diff(want, d.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderUsesNormalisedStyle(t *testing.T) {
	d := newTestDispatcher(t)
	cfg := component.Defaults(widget.Button)
	cfg.Content.Label = "Save"
	art, err := d.Render(widget.Button, provider.MUI, cfg, Callbacks{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out, err := art.HTML()
	if err != nil {
		t.Fatalf("html: %v", err)
	}
	if !strings.Contains(out, "Save") || !strings.Contains(out, "border-radius: 12px;") {
		t.Fatalf("unexpected markup %s", out)
	}
	if cfg.Styles.BorderRadius.Raw != "" {
		t.Fatalf("render must not mutate the caller config")
	}
}

func TestDispatchFiresCallbacks(t *testing.T) {
	d := newTestDispatcher(t)

	var selections []string
	art, err := d.Render(widget.Radio, provider.MUI, radioConfig(), Callbacks{
		OnSelectionChange: func(v string) { selections = append(selections, v) },
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if err := art.Dispatch(Event{Kind: EventSelect, Value: "A"}); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := art.Dispatch(Event{Kind: EventSelect, Value: "A"}); err != nil {
		t.Fatalf("reselect: %v", err)
	}
	if err := art.Dispatch(Event{Kind: EventSelect, Value: "Z"}); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	if diff := cmp.Diff([]string{"A"}, selections); diff != "" {
		t.Fatalf("selection callbacks (-want +got):\n%s", diff)
	}
	if art.Selected() != "A" {
		t.Fatalf("expected A selected, got %q", art.Selected())
	}

	var checked []bool
	sw, err := d.Render(widget.Switch, provider.MUI, component.Config{}, Callbacks{
		OnCheckedChange: func(v bool) { checked = append(checked, v) },
	})
	if err != nil {
		t.Fatalf("render switch: %v", err)
	}
	_ = sw.Dispatch(Event{Kind: EventToggle})
	_ = sw.Dispatch(Event{Kind: EventPress})
	if diff := cmp.Diff([]bool{true, false}, checked); diff != "" {
		t.Fatalf("checked callbacks (-want +got):\n%s", diff)
	}

	var opened []bool
	modal, err := d.Render(widget.Modal, provider.MUI, component.Config{}, Callbacks{
		OnOpenChange: func(v bool) { opened = append(opened, v) },
	})
	if err != nil {
		t.Fatalf("render modal: %v", err)
	}
	_ = modal.Dispatch(Event{Kind: EventPress})
	_ = modal.Dispatch(Event{Kind: EventOpen})
	_ = modal.Dispatch(Event{Kind: EventClose})
	if diff := cmp.Diff([]bool{true, false}, opened); diff != "" {
		t.Fatalf("open callbacks (-want +got):\n%s", diff)
	}

	var texts []string
	input, err := d.Render(widget.Input, provider.MUI, component.Config{}, Callbacks{
		OnValueChange: func(v string) { texts = append(texts, v) },
	})
	if err != nil {
		t.Fatalf("render input: %v", err)
	}
	_ = input.Dispatch(Event{Kind: EventInput, Value: "hi"})
	if input.Text() != "hi" || len(texts) != 1 {
		t.Fatalf("expected text hi with one callback, got %q %v", input.Text(), texts)
	}
	if err := input.Dispatch(Event{Kind: EventToggle}); !errors.Is(err, ErrUnsupportedEvent) {
		t.Fatalf("expected ErrUnsupportedEvent, got %v", err)
	}
}

func TestDispatchIgnoredWhenDisabled(t *testing.T) {
	d := newTestDispatcher(t)
	presses := 0
	cfg := component.Config{Content: component.Content{Label: "Go", Disabled: true}}
	art, err := d.Render(widget.Button, provider.MUI, cfg, Callbacks{OnPress: func() { presses++ }})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if err := art.Dispatch(Event{Kind: EventPress}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if presses != 0 || art.State().Presses != 0 {
		t.Fatalf("disabled button must ignore presses")
	}
}

func TestArtifactCarriesPairAttributes(t *testing.T) {
	d := newTestDispatcher(t)
	art, err := d.Render(widget.Button, provider.MUI, component.Config{}, Callbacks{}, WithMode(provider.Dark))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	root := art.Node()
	if markup.GetAttr(root, "data-provider") != "mui" || markup.GetAttr(root, "data-widget") != "button" {
		t.Fatalf("expected pair attributes, got %v", root.Attr)
	}
}
