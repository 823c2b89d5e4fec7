package emit

import (
	"errors"
	"testing"

	"github.com/goliatone/go-compareui/pkg/component"
	"github.com/goliatone/go-compareui/pkg/jsx"
	"github.com/goliatone/go-compareui/pkg/provider"
	"github.com/goliatone/go-compareui/pkg/widget"
)

func buttonEmitter(p Props) jsx.File {
	var f jsx.File
	f.Use("@mui/material", "Button")
	f.Add(jsx.Component{
		Name: p.Name(),
		Root: jsx.El("Button", jsx.Attrs(jsx.A("size", string(p.Size()))), jsx.Text(p.Content().Label)),
	})
	return f
}

func TestEmitRegisteredPair(t *testing.T) {
	d := NewDispatcher(nil)
	d.MustRegister(widget.Button, provider.MUI, buttonEmitter)

	cfg := component.Config{Content: component.Content{Label: "Save"}}
	code, err := d.Emit(widget.Button, provider.MUI, cfg)
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	want := `import { Button } from '@mui/material';

export function CustomButton() {
  return (
    <Button size="medium">Save</Button>
  );
}
`
	if code.Source != want {
		t.Fatalf("unexpected source:\n%s", code.Source)
	}
	if err := Validate(code); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if code.Filename() != "CustomButton.tsx" {
		t.Fatalf("unexpected filename %q", code.Filename())
	}
}

func TestEmitUnsupportedPairSentinel(t *testing.T) {
	d := NewDispatcher(nil)
	for _, cfg := range []component.Config{{}, component.Defaults(widget.Tabs)} {
		code, err := d.Emit(widget.Tabs, provider.Aceternity, cfg)
		if err != nil {
			t.Fatalf("emit: %v", err)
		}
		if !code.Unavailable {
			t.Fatalf("expected unavailable code")
		}
		if code.Source != "// Aceternity UI does not include a standard Tabs component.\n" {
			t.Fatalf("unexpected sentinel %q", code.Source)
		}
		if err := Validate(code); err != nil {
			t.Fatalf("sentinel should parse: %v", err)
		}
	}
}

func TestEmitErrors(t *testing.T) {
	d := NewDispatcher(nil)
	if _, err := d.Emit("slider", provider.MUI, component.Config{}); !errors.Is(err, widget.ErrUnknownWidget) {
		t.Fatalf("expected ErrUnknownWidget, got %v", err)
	}
	if _, err := d.Emit(widget.Button, "mantine", component.Config{}); !errors.Is(err, provider.ErrUnknownProvider) {
		t.Fatalf("expected ErrUnknownProvider, got %v", err)
	}
	if _, err := d.Emit(widget.Button, provider.Chakra, component.Config{}); !errors.Is(err, ErrNotRegistered) {
		t.Fatalf("expected ErrNotRegistered, got %v", err)
	}
	if err := d.Register(widget.Progress, provider.Aceternity, buttonEmitter); !errors.Is(err, ErrUnsupportedPair) {
		t.Fatalf("expected ErrUnsupportedPair, got %v", err)
	}
	d.MustRegister(widget.Button, provider.Chakra, buttonEmitter)
	if err := d.Register(widget.Button, provider.Chakra, buttonEmitter); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if got := len(d.Missing()); got != 51 {
		t.Fatalf("expected 51 missing pairs, got %d", got)
	}
}
