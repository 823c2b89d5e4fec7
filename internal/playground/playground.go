package playground

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-compareui/pkg/markup"
	"github.com/goliatone/go-compareui/pkg/provider"
	"github.com/goliatone/go-compareui/pkg/render"
	"github.com/goliatone/go-compareui/pkg/schema"
	"github.com/goliatone/go-compareui/pkg/widget"
)

const (
	actionPreview  = "Preview"
	actionInteract = "Interact"
	actionCode     = "Show code"
	actionEdit     = "Edit field"
	actionAsk      = "Ask assistant"
	actionReset    = "Reset"
	actionBack     = "Back"
	quit           = "Quit"
)

// Playground drives a Session through prompts.
type Playground struct {
	session *Session
	driver  PromptDriver
}

// New returns a playground over session, prompting through driver.
func New(session *Session, driver PromptDriver) (*Playground, error) {
	if session == nil {
		return nil, errors.New("playground: session is nil")
	}
	if driver == nil {
		return nil, errors.New("playground: prompt driver is nil")
	}
	return &Playground{session: session, driver: driver}, nil
}

// Run loops over widget selection until the user quits or aborts. An abort
// ends the loop without error.
func (p *Playground) Run(ctx context.Context) error {
	catalog := widget.Catalog()
	names := make([]string, 0, len(catalog)+1)
	for _, entry := range catalog {
		names = append(names, entry.Name)
	}
	names = append(names, quit)

	for {
		idx, err := p.driver.Select(ctx, SelectConfig{Message: "Widget", Options: names, PageSize: len(names)})
		if err != nil {
			return ignoreAbort(err)
		}
		if idx < 0 || idx >= len(catalog) {
			return nil
		}
		if err := p.Widget(ctx, catalog[idx].Type); err != nil {
			return ignoreAbort(err)
		}
	}
}

// Widget runs the action menu of one widget until Back. The widget's config
// is discarded on the way out.
func (p *Playground) Widget(ctx context.Context, w widget.Type) error {
	if _, err := p.session.Open(w); err != nil {
		return err
	}
	defer p.session.Close(w)

	actions := []string{actionPreview, actionInteract, actionCode, actionEdit, actionReset, actionBack}
	if p.session.assistant != nil {
		actions = []string{actionPreview, actionInteract, actionCode, actionEdit, actionAsk, actionReset, actionBack}
	}

	for {
		idx, err := p.driver.Select(ctx, SelectConfig{Message: w.DisplayName(), Options: actions})
		if err != nil {
			return err
		}
		if idx < 0 {
			return nil
		}
		switch actions[idx] {
		case actionPreview:
			err = p.preview(ctx, w)
		case actionInteract:
			err = p.interact(ctx, w)
		case actionCode:
			err = p.code(ctx, w)
		case actionEdit:
			err = p.edit(ctx, w)
		case actionAsk:
			err = p.ask(ctx, w)
		case actionReset:
			_, err = p.session.Reset(w)
		case actionBack:
			return nil
		}
		if err != nil {
			if errors.Is(err, ErrAborted) || errors.Is(err, context.Canceled) {
				return err
			}
			if infoErr := p.driver.Info(ctx, "error: "+err.Error()); infoErr != nil {
				return infoErr
			}
		}
	}
}

func (p *Playground) pickProvider(ctx context.Context, w widget.Type) (provider.ID, error) {
	ids := p.session.Registry().Providers()
	labels := make([]string, len(ids))
	for i, id := range ids {
		meta, err := p.session.Registry().DisplayMeta(id)
		if err != nil {
			return "", err
		}
		labels[i] = meta.Label
		if !p.session.Registry().Supports(w, id) {
			labels[i] += " (unavailable)"
		}
	}
	idx, err := p.driver.Select(ctx, SelectConfig{Message: "Provider", Options: labels})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(ids) {
		return "", fmt.Errorf("playground: no provider selected")
	}
	return ids[idx], nil
}

func (p *Playground) preview(ctx context.Context, w widget.Type) error {
	id, err := p.pickProvider(ctx, w)
	if err != nil {
		return err
	}
	artifact, err := p.session.Render(w, id, render.Callbacks{})
	if err != nil {
		return err
	}
	return p.driver.Info(ctx, describe(artifact))
}

func (p *Playground) interact(ctx context.Context, w widget.Type) error {
	id, err := p.pickProvider(ctx, w)
	if err != nil {
		return err
	}

	var events []string
	artifact, err := p.session.Render(w, id, Recorder(&events))
	if err != nil {
		return err
	}
	if artifact.Unavailable() {
		return p.driver.Info(ctx, artifact.Notice())
	}

	kinds := render.EventKinds()
	options := make([]string, 0, len(kinds)+1)
	for _, kind := range kinds {
		options = append(options, string(kind))
	}
	options = append(options, actionBack)

	for {
		if err := p.driver.Info(ctx, describe(artifact)); err != nil {
			return err
		}
		idx, err := p.driver.Select(ctx, SelectConfig{Message: "Event", Options: options})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(kinds) {
			return nil
		}
		ev := render.Event{Kind: kinds[idx]}
		if ev.Kind == render.EventSelect || ev.Kind == render.EventInput {
			if ev.Value, err = p.driver.Input(ctx, InputConfig{Message: "Value"}); err != nil {
				return err
			}
		}
		events = events[:0]
		if err := artifact.Dispatch(ev); err != nil {
			if infoErr := p.driver.Info(ctx, "rejected: "+err.Error()); infoErr != nil {
				return infoErr
			}
			continue
		}
		for _, line := range events {
			if err := p.driver.Info(ctx, "callback "+line); err != nil {
				return err
			}
		}
	}
}

func (p *Playground) code(ctx context.Context, w widget.Type) error {
	id, err := p.pickProvider(ctx, w)
	if err != nil {
		return err
	}
	code, err := p.session.Emit(w, id)
	if err != nil {
		return err
	}
	return p.driver.Info(ctx, "// "+code.Filename()+"\n"+code.Source)
}

func (p *Playground) edit(ctx context.Context, w widget.Type) error {
	fields := []string{"size", "variant"}
	for _, key := range schema.ContentKeys(w) {
		fields = append(fields, "content."+key)
	}
	for _, key := range schema.StyleKeys(w) {
		fields = append(fields, "styles."+key)
	}

	idx, err := p.driver.Select(ctx, SelectConfig{Message: "Field", Options: fields, PageSize: 12})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(fields) {
		return nil
	}
	raw, err := p.driver.Input(ctx, InputConfig{
		Message: fields[idx],
		Help:    "JSON values are decoded (12, true, null, [\"A\",\"B\"]); anything else is a string.",
	})
	if err != nil {
		return err
	}
	_, err = p.session.Set(w, fields[idx], raw)
	return err
}

func (p *Playground) ask(ctx context.Context, w widget.Type) error {
	prompt, err := p.driver.TextArea(ctx, TextAreaConfig{Message: "Describe the change"})
	if err != nil {
		return err
	}
	_, err = p.session.Ask(ctx, w, prompt)
	return err
}

// Recorder returns callbacks appending a line per fired callback to events.
func Recorder(events *[]string) render.Callbacks {
	add := func(format string, args ...any) {
		*events = append(*events, fmt.Sprintf(format, args...))
	}
	return render.Callbacks{
		OnPress:           func() { add("press") },
		OnCheckedChange:   func(checked bool) { add("checked=%t", checked) },
		OnSelectionChange: func(value string) { add("selected=%s", value) },
		OnValueChange:     func(text string) { add("text=%s", text) },
		OnOpenChange:      func(open bool) { add("open=%t", open) },
	}
}

func describe(artifact *render.Artifact) string {
	if artifact.Unavailable() {
		return artifact.Notice()
	}
	state := artifact.State()
	text := strings.Join(strings.Fields(markup.TextContent(artifact.Node())), " ")
	return fmt.Sprintf("[%s/%s] %s\nopen=%t checked=%t selected=%q text=%q presses=%d",
		artifact.Widget(), artifact.Provider(), text,
		state.Open, state.Checked, state.Selected, state.Text, state.Presses)
}

func ignoreAbort(err error) error {
	if errors.Is(err, ErrAborted) {
		return nil
	}
	return err
}
