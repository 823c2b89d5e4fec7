package render

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/goliatone/go-compareui/pkg/component"
	"github.com/goliatone/go-compareui/pkg/markup"
	"github.com/goliatone/go-compareui/pkg/provider"
	"github.com/goliatone/go-compareui/pkg/widget"
)

// Artifact is a mounted widget instance. It is not safe for concurrent use;
// callbacks run on the goroutine calling Dispatch.
type Artifact struct {
	pair        provider.Pair
	content     component.Content
	view        View
	state       State
	node        *html.Node
	callbacks   Callbacks
	unavailable bool
	notice      string
}

func newArtifact(pair provider.Pair, cfg component.Config, view View, cb Callbacks) *Artifact {
	art := &Artifact{
		pair:      pair,
		content:   cfg.Content,
		view:      view,
		state:     initialState(pair.Widget, cfg.Content),
		callbacks: cb,
	}
	art.draw()
	return art
}

func placeholder(pair provider.Pair, notice string) *Artifact {
	art := &Artifact{
		pair:        pair,
		unavailable: true,
		notice:      notice,
	}
	art.view = func(State) *html.Node {
		return markup.El("div",
			markup.Class("compareui-unavailable"),
			markup.Attr("role", "note"),
			markup.Style(
				markup.D("padding", "16px"),
				markup.D("border", "1px dashed #cbd5e1"),
				markup.D("border-radius", "8px"),
				markup.D("color", "#64748b"),
				markup.D("font-size", "0.875rem"),
			),
			markup.Text(notice),
		)
	}
	art.draw()
	return art
}

func (a *Artifact) draw() {
	node := a.view(a.state)
	if node == nil {
		node = markup.El("div")
	}
	markup.Attr("data-provider", string(a.pair.Provider))(node)
	markup.Attr("data-widget", string(a.pair.Widget))(node)
	a.node = node
}

// Widget returns the rendered widget type.
func (a *Artifact) Widget() widget.Type { return a.pair.Widget }

// Provider returns the provider that rendered the artifact.
func (a *Artifact) Provider() provider.ID { return a.pair.Provider }

// Unavailable reports whether the artifact is the placeholder for an
// unsupported pair.
func (a *Artifact) Unavailable() bool { return a.unavailable }

// Notice returns the placeholder text, empty for real artifacts.
func (a *Artifact) Notice() string { return a.notice }

// State returns a copy of the current state.
func (a *Artifact) State() State { return a.state }

// Selected returns the selected option or tab.
func (a *Artifact) Selected() string { return a.state.Selected }

// Checked reports the switch state.
func (a *Artifact) Checked() bool { return a.state.Checked }

// Open reports whether the accordion or modal is expanded.
func (a *Artifact) Open() bool { return a.state.Open }

// Text returns the current input text.
func (a *Artifact) Text() string { return a.state.Text }

// Node returns the current tree. Callers must not mutate it.
func (a *Artifact) Node() *html.Node { return a.node }

// HTML serialises the current tree.
func (a *Artifact) HTML() (string, error) {
	out, err := markup.Render(a.node)
	if err != nil {
		return "", fmt.Errorf("render: %s: %w", a.pair, err)
	}
	return out, nil
}

// Dispatch applies a user action, re-renders and fires the matching
// callback. Placeholders and disabled widgets ignore every event.
func (a *Artifact) Dispatch(ev Event) error {
	if a.unavailable || a.content.Disabled {
		return nil
	}
	next, notify, err := step(a.pair.Widget, a.content, a.state, ev, a.callbacks)
	if err != nil {
		return err
	}
	if next == a.state {
		return nil
	}
	a.state = next
	a.draw()
	if notify != nil {
		notify()
	}
	return nil
}
