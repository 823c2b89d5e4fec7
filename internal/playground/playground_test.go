package playground

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-compareui/pkg/assistant"
	"github.com/goliatone/go-compareui/pkg/component"
	"github.com/goliatone/go-compareui/pkg/patch"
	"github.com/goliatone/go-compareui/pkg/provider"
	"github.com/goliatone/go-compareui/pkg/providers"
	"github.com/goliatone/go-compareui/pkg/render"
	"github.com/goliatone/go-compareui/pkg/style"
	"github.com/goliatone/go-compareui/pkg/widget"
)

type stubDriver struct {
	selects []int
	inputs  []string
	infos   []string
}

func (s *stubDriver) Input(context.Context, InputConfig) (string, error) {
	if len(s.inputs) == 0 {
		return "", ErrAborted
	}
	out := s.inputs[0]
	s.inputs = s.inputs[1:]
	return out, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if len(s.selects) == 0 {
		return 0, ErrAborted
	}
	out := s.selects[0]
	s.selects = s.selects[1:]
	if out >= len(cfg.Options) {
		return -1, nil
	}
	return out, nil
}

func (s *stubDriver) TextArea(ctx context.Context, cfg TextAreaConfig) (string, error) {
	return s.Input(ctx, InputConfig{Message: cfg.Message})
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infos = append(s.infos, msg)
	return nil
}

func newSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	renders, emits, err := providers.New(provider.Default())
	require.NoError(t, err)
	session, err := NewSession(renders, emits, opts...)
	require.NoError(t, err)
	return session
}

func TestSessionOpenUsesDefaults(t *testing.T) {
	session := newSession(t)

	cfg, err := session.Open(widget.Button)
	require.NoError(t, err)
	assert.Equal(t, component.Defaults(widget.Button), cfg)

	_, err = session.Open(widget.Type("slider"))
	require.ErrorIs(t, err, widget.ErrUnknownWidget)
}

func TestSessionSetFields(t *testing.T) {
	session := newSession(t)

	cfg, err := session.Set(widget.Button, "content.label", "Hello")
	require.NoError(t, err)
	assert.Equal(t, "Hello", cfg.Content.Label)

	cfg, err = session.Set(widget.Button, "styles.borderRadius", "4")
	require.NoError(t, err)
	assert.Equal(t, style.Px(4), cfg.Styles.BorderRadius)
	assert.Equal(t, "Hello", cfg.Content.Label)

	cfg, err = session.Set(widget.Button, "styles.backgroundColor", "#ff0000")
	require.NoError(t, err)
	assert.Equal(t, style.Tok("#ff0000"), cfg.Styles.BackgroundColor)

	cfg, err = session.Set(widget.Button, "content.tabs", `[{"label":"x"}]`)
	require.NoError(t, err)
	assert.Nil(t, cfg.Content.Tabs)

	cfg, err = session.Set(widget.Button, "styles.backgroundColor", "null")
	require.NoError(t, err)
	assert.Nil(t, cfg.Styles.BackgroundColor)

	_, err = session.Set(widget.Button, "styles..color", "red")
	require.Error(t, err)
}

func TestSessionCloseDiscardsEdits(t *testing.T) {
	session := newSession(t)

	_, err := session.Set(widget.Switch, "content.checked", "true")
	require.NoError(t, err)

	session.Close(widget.Switch)
	cfg, err := session.Open(widget.Switch)
	require.NoError(t, err)
	assert.False(t, cfg.Content.Checked)
}

func TestFieldPatch(t *testing.T) {
	p, err := FieldPatch("styles.padding.px", "20")
	require.NoError(t, err)
	assert.Equal(t, patch.Patch{"styles": map[string]any{"padding": map[string]any{"px": 20.0}}}, p)

	p, err = FieldPatch("size", "large")
	require.NoError(t, err)
	assert.Equal(t, patch.Patch{"size": "large"}, p)
}

func TestSessionAsk(t *testing.T) {
	_, err := newSession(t).Ask(context.Background(), widget.Card, "darker")
	require.ErrorIs(t, err, ErrNoAssistant)

	stub := assistant.Func(func(_ context.Context, w widget.Type, _ string, current component.Config) (patch.Patch, error) {
		assert.Equal(t, widget.Card, w)
		assert.Equal(t, "Card Title", current.Content.Title)
		return patch.Patch{"title": "Dark card", "styles": map[string]any{"backgroundColor": "#111"}}, nil
	})
	session := newSession(t, WithAssistant(stub))

	cfg, err := session.Ask(context.Background(), widget.Card, "darker")
	require.NoError(t, err)
	assert.Equal(t, "Dark card", cfg.Content.Title)
	assert.Equal(t, style.Tok("#111"), cfg.Styles.BackgroundColor)
	assert.Equal(t, style.Px(12), cfg.Styles.BorderRadius)

	failing := newSession(t, WithAssistant(assistant.Func(func(context.Context, widget.Type, string, component.Config) (patch.Patch, error) {
		return nil, errors.New("offline")
	})))
	cfg, err = failing.Ask(context.Background(), widget.Card, "darker")
	require.Error(t, err)
	assert.Equal(t, "Card Title", cfg.Content.Title)
}

func TestSessionRenderReportsSelection(t *testing.T) {
	session := newSession(t)
	require.NoError(t, session.Replace(widget.Radio, component.Config{
		Content: component.Content{
			Options:  []component.Option{{Value: "A", Label: "A"}, {Value: "B", Label: "B"}},
			Selected: "B",
		},
	}))

	for _, id := range []provider.ID{provider.MUI, provider.Shadcn} {
		artifact, err := session.Render(widget.Radio, id, render.Callbacks{})
		require.NoError(t, err)
		assert.Equal(t, "B", artifact.Selected(), "provider %s", id)
	}
}

func TestPlaygroundEditAndShowCode(t *testing.T) {
	driver := &stubDriver{
		// button, edit field, content.label, show code, mui, back, quit
		selects: []int{1, 3, 2, 2, 0, 5, 99},
		inputs:  []string{"Hello"},
	}
	pg, err := New(newSession(t), driver)
	require.NoError(t, err)

	require.NoError(t, pg.Run(context.Background()))
	require.Len(t, driver.infos, 1)
	assert.True(t, strings.HasPrefix(driver.infos[0], "// CustomButton.tsx"))
	assert.Contains(t, driver.infos[0], "Hello")
}

func TestPlaygroundInteract(t *testing.T) {
	driver := &stubDriver{
		// switch, interact, chakra, toggle, back to actions, back, quit
		selects: []int{9, 1, 1, 1, 99, 5, 99},
	}
	pg, err := New(newSession(t), driver)
	require.NoError(t, err)

	require.NoError(t, pg.Run(context.Background()))

	joined := strings.Join(driver.infos, "\n")
	assert.Contains(t, joined, "callback checked=true")
	assert.Contains(t, joined, "checked=false")
	assert.Contains(t, driver.infos[len(driver.infos)-1], "checked=true")
}

func TestPlaygroundUnavailablePair(t *testing.T) {
	driver := &stubDriver{
		// tabs, preview, aceternity, back, quit
		selects: []int{10, 0, 4, 5, 99},
	}
	pg, err := New(newSession(t), driver)
	require.NoError(t, err)

	require.NoError(t, pg.Run(context.Background()))
	require.Len(t, driver.infos, 1)
	assert.Contains(t, driver.infos[0], "Aceternity")
}

func TestPlaygroundAbortEndsRun(t *testing.T) {
	pg, err := New(newSession(t), &stubDriver{})
	require.NoError(t, err)
	assert.NoError(t, pg.Run(context.Background()))
}
