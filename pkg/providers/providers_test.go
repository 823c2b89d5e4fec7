package providers_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-compareui/pkg/component"
	"github.com/goliatone/go-compareui/pkg/emit"
	"github.com/goliatone/go-compareui/pkg/markup"
	"github.com/goliatone/go-compareui/pkg/provider"
	"github.com/goliatone/go-compareui/pkg/providers"
	"github.com/goliatone/go-compareui/pkg/render"
	"github.com/goliatone/go-compareui/pkg/style"
	"github.com/goliatone/go-compareui/pkg/testsupport"
	"github.com/goliatone/go-compareui/pkg/widget"
)

func newStack(t *testing.T) (*render.Dispatcher, *emit.Dispatcher) {
	t.Helper()
	r, e, err := providers.New(nil)
	if err != nil {
		t.Fatalf("register providers: %v", err)
	}
	return r, e
}

// styled sets every style field so emitters exercise all of their branches.
func styled(w widget.Type) component.Config {
	cfg := component.Defaults(w)
	cfg.Styles = style.Override{
		BorderRadius:    style.Px(6),
		BorderWidth:     style.Px(2),
		BorderStyle:     style.Tok("dashed"),
		BorderColor:     style.Tok("#334155"),
		BackgroundColor: style.Tok("#f8fafc"),
		FontColor:       style.Tok("#0f172a"),
		TitleColor:      style.Tok("#1e293b"),
		AnswerColor:     style.Tok("#475569"),
		TextColor:       style.Tok("#64748b"),
		OverlayColor:    style.Tok("rgba(15, 23, 42, 0.6)"),
		FocusColor:      style.Tok("#6366f1"),
		Color:           style.Tok("#4f46e5"),
		IndicatorColor:  style.Tok("#22c55e"),
		TrackColor:      style.Tok("#e2e8f0"),
		ActiveColor:     style.Tok("#16a34a"),
		InactiveColor:   style.Tok("#94a3b8"),
		Shadow:          style.Tok("0 1px 2px rgba(0, 0, 0, 0.05)"),
		Height:          style.Px(10),
		FontSize:        style.Px(15),
		Padding:         style.Pad(18, 9),
	}
	return cfg
}

func TestRegisterAllCoversEverySupportedPair(t *testing.T) {
	r, e := newStack(t)

	if missing := r.Missing(); len(missing) != 0 {
		t.Fatalf("pairs without a view: %v", missing)
	}
	if missing := e.Missing(); len(missing) != 0 {
		t.Fatalf("pairs without an emitter: %v", missing)
	}
	if got := len(r.List()); got != 52 {
		t.Fatalf("expected 52 views, got %d", got)
	}
	if diff := cmp.Diff(r.List(), e.List()); diff != "" {
		t.Fatalf("view and emitter pairs differ (-views +emitters):\n%s", diff)
	}
}

func TestRegisterAllRejectsSecondRegistration(t *testing.T) {
	r, e := newStack(t)
	err := providers.RegisterAll(r, e)
	if !errors.Is(err, render.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestEmissionsParseAsTSX(t *testing.T) {
	_, e := newStack(t)

	for _, pair := range e.List() {
		for name, cfg := range map[string]component.Config{
			"defaults": component.Defaults(pair.Widget),
			"styled":   styled(pair.Widget),
			"empty":    {},
		} {
			code, err := e.Emit(pair.Widget, pair.Provider, cfg)
			if err != nil {
				t.Fatalf("%s %s: emit: %v", pair, name, err)
			}
			if err := emit.Validate(code); err != nil {
				t.Fatalf("%s %s: %v\n%s", pair, name, err, code.Source)
			}
			if !strings.Contains(code.Source, "export function "+emit.ComponentName(pair.Widget)+"()") {
				t.Fatalf("%s %s: missing exported component:\n%s", pair, name, code.Source)
			}
		}
	}
}

func TestEmissionIsDeterministic(t *testing.T) {
	_, e := newStack(t)

	for _, pair := range e.List() {
		cfg := styled(pair.Widget)
		first, err := e.Emit(pair.Widget, pair.Provider, cfg)
		if err != nil {
			t.Fatalf("%s: %v", pair, err)
		}
		for i := 0; i < 3; i++ {
			again, err := e.Emit(pair.Widget, pair.Provider, cfg)
			if err != nil {
				t.Fatalf("%s: %v", pair, err)
			}
			if again.Source != first.Source {
				t.Fatalf("%s: emission changed between runs", pair)
			}
		}
	}
}

func TestEmissionOmitsUnsetStyles(t *testing.T) {
	_, e := newStack(t)

	for _, pair := range e.List() {
		cfg := component.Defaults(pair.Widget)
		cfg.Styles = style.Override{}
		code, err := e.Emit(pair.Widget, pair.Provider, cfg)
		if err != nil {
			t.Fatalf("%s: %v", pair, err)
		}
		if strings.Contains(code.Source, "borderRadius") {
			t.Fatalf("%s: unset radius leaked into source:\n%s", pair, code.Source)
		}
	}
}

func TestButtonEmissionCarriesOnlySetFields(t *testing.T) {
	_, e := newStack(t)

	cfg := component.Config{
		Content: component.Content{Label: "Save"},
		Styles:  style.Override{BorderRadius: style.Px(12)},
	}
	for _, id := range provider.All() {
		code, err := e.Emit(widget.Button, id, cfg)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		if !strings.Contains(code.Source, "Save") || !strings.Contains(code.Source, "12px") {
			t.Fatalf("%s: expected label and radius:\n%s", id, code.Source)
		}
		for _, banned := range []string{"backgroundColor", "bgcolor", "background:", "bg="} {
			if strings.Contains(code.Source, banned) {
				t.Fatalf("%s: unexpected %q:\n%s", id, banned, code.Source)
			}
		}
	}
}

func TestRadioSelectionAcrossProviders(t *testing.T) {
	r, _ := newStack(t)

	cfg := component.Config{Content: component.Content{
		Options:  []component.Option{{Value: "A"}, {Value: "B"}, {Value: "C"}},
		Selected: "B",
	}}
	for _, id := range provider.All() {
		var changes []string
		art, err := r.Render(widget.Radio, id, cfg, render.Callbacks{
			OnSelectionChange: func(v string) { changes = append(changes, v) },
		})
		if err != nil {
			t.Fatalf("%s: render: %v", id, err)
		}
		if art.Selected() != "B" {
			t.Fatalf("%s: expected B selected, got %q", id, art.Selected())
		}
		target := markup.Find(art.Node(), markup.ByAttr("data-value", "C"))
		if target == nil {
			t.Fatalf("%s: no action target for option C", id)
		}
		if err := art.Dispatch(render.Event{Kind: render.EventSelect, Value: "C"}); err != nil {
			t.Fatalf("%s: dispatch: %v", id, err)
		}
		if art.Selected() != "C" {
			t.Fatalf("%s: expected C after select, got %q", id, art.Selected())
		}
		if diff := cmp.Diff([]string{"C"}, changes); diff != "" {
			t.Fatalf("%s: callbacks (-want +got):\n%s", id, diff)
		}
	}
}

func TestEveryPairRendersHTML(t *testing.T) {
	r, _ := newStack(t)

	for _, id := range provider.All() {
		for _, w := range widget.All() {
			for _, mode := range []provider.Mode{provider.Light, provider.Dark} {
				art, err := r.Render(w, id, styled(w), render.Callbacks{}, render.WithMode(mode))
				if err != nil {
					t.Fatalf("%s/%s: %v", id, w, err)
				}
				out, err := art.HTML()
				if err != nil {
					t.Fatalf("%s/%s: html: %v", id, w, err)
				}
				if !strings.Contains(out, `data-provider="`+string(id)+`"`) {
					t.Fatalf("%s/%s: missing provider marker:\n%s", id, w, out)
				}
			}
		}
	}
}

func TestUnsupportedPairs(t *testing.T) {
	r, e := newStack(t)

	for _, w := range []widget.Type{widget.Accordion, widget.Progress, widget.Tabs} {
		art, err := r.Render(w, provider.Aceternity, component.Defaults(w), render.Callbacks{})
		if err != nil {
			t.Fatalf("%s: render: %v", w, err)
		}
		if !art.Unavailable() {
			t.Fatalf("%s: expected placeholder", w)
		}
		if !strings.Contains(art.Notice(), w.DisplayName()) {
			t.Fatalf("%s: unexpected notice %q", w, art.Notice())
		}

		code, err := e.Emit(w, provider.Aceternity, component.Defaults(w))
		if err != nil {
			t.Fatalf("%s: emit: %v", w, err)
		}
		if !code.Unavailable || !strings.HasPrefix(code.Source, "// ") {
			t.Fatalf("%s: expected sentinel, got:\n%s", w, code.Source)
		}
	}
}

func TestSwitchToggleAcrossProviders(t *testing.T) {
	r, _ := newStack(t)

	for _, id := range provider.All() {
		var seen []bool
		art, err := r.Render(widget.Switch, id, component.Defaults(widget.Switch), render.Callbacks{
			OnCheckedChange: func(v bool) { seen = append(seen, v) },
		})
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		if markup.Find(art.Node(), markup.ByAttr("data-action", string(render.EventToggle))) == nil {
			t.Fatalf("%s: switch has no toggle target", id)
		}
		for i := 0; i < 2; i++ {
			if err := art.Dispatch(render.Event{Kind: render.EventToggle}); err != nil {
				t.Fatalf("%s: %v", id, err)
			}
		}
		if diff := cmp.Diff([]bool{true, false}, seen); diff != "" {
			t.Fatalf("%s: toggles (-want +got):\n%s", id, diff)
		}
	}
}

func TestDisabledWidgetsIgnoreEvents(t *testing.T) {
	r, _ := newStack(t)

	cfg := component.Defaults(widget.Switch)
	cfg.Content.Disabled = true
	for _, id := range provider.All() {
		called := false
		art, err := r.Render(widget.Switch, id, cfg, render.Callbacks{OnCheckedChange: func(bool) { called = true }})
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		if err := art.Dispatch(render.Event{Kind: render.EventToggle}); err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		if art.Checked() || called {
			t.Fatalf("%s: disabled switch changed state", id)
		}
	}
}

func TestButtonVocabularyPerProvider(t *testing.T) {
	_, e := newStack(t)
	cfg := testsupport.LoadConfig(t, filepath.Join("testdata", "outlined-button.yaml"))

	want := map[provider.ID][]string{
		provider.MUI:    {`variant="outlined"`, `size="large"`},
		provider.Chakra: {`variant="outline"`, `size="lg"`},
		provider.AntD:   {`size="large"`},
		provider.Shadcn: {`variant="outline"`, `size="lg"`},
	}
	for id, fragments := range want {
		code, err := e.Emit(widget.Button, id, cfg)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		for _, fragment := range append(fragments, "Continue") {
			if !strings.Contains(code.Source, fragment) {
				t.Fatalf("%s: expected %s in:\n%s", id, fragment, code.Source)
			}
		}
	}
}
