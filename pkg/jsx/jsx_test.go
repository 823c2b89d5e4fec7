package jsx

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFileRendersImportsAndComponent(t *testing.T) {
	var f File
	f.Use("@mui/material", "Button")
	f.Use("@mui/material", "Button", "Stack")
	c := Component{Name: "CustomButton"}
	c.Root = El("Button", Attrs(
		A("variant", "contained"),
		A("size", "medium"),
		V("sx", Obj().Set("borderRadius", "12px")),
	), Text("Save"))
	f.Add(c)

	want := `import { Button, Stack } from '@mui/material';

export function CustomButton() {
  return (
    <Button
      variant="contained"
      size="medium"
      sx={{
        borderRadius: '12px',
      }}
    >
      Save
    </Button>
  );
}
`
	if diff := cmp.Diff(want, f.String()); diff != "" {
		t.Fatalf("unexpected file (-want +got):\n%s", diff)
	}
}

func TestEmptyObjectAttributeIsDropped(t *testing.T) {
	el := El("Button", Attrs(A("variant", "outline"), V("style", Obj().Set("color", ""))), Text("Go"))
	if got := el.String(); got != "<Button variant=\"outline\">Go</Button>\n" {
		t.Fatalf("unexpected element %q", got)
	}
}

func TestTextEscaping(t *testing.T) {
	el := El("p", nil, Text("a < b & {c}"))
	want := "<p>{'a < b & {c}'}</p>\n"
	if got := el.String(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
	if got := El("p", nil, Text("Don't panic")).String(); got != "<p>Don't panic</p>\n" {
		t.Fatalf("apostrophes should stay plain text, got %q", got)
	}
}

func TestQuote(t *testing.T) {
	cases := map[string]string{
		"plain":       `'plain'`,
		"it's":        `'it\'s'`,
		"a\\b":        `'a\\b'`,
		"line\nbreak": `'line\nbreak'`,
		"\x01":        `'\x01'`,
	}
	for in, want := range cases {
		if got := Quote(in); got != want {
			t.Fatalf("Quote(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestAttributeForms(t *testing.T) {
	el := El("Switch", Attrs(
		Flag("defaultChecked", true),
		Flag("disabled", false),
		A("label", `say "hi"`),
		V("value", Num(60)),
		X("onChange", "(e) => setChecked(e.target.checked)"),
	))
	want := `<Switch
  defaultChecked
  label={'say "hi"'}
  value={60}
  onChange={(e) => setChecked(e.target.checked)}
/>
`
	if diff := cmp.Diff(want, el.String()); diff != "" {
		t.Fatalf("unexpected element (-want +got):\n%s", diff)
	}
}

func TestArrayOfObjectsWithJSX(t *testing.T) {
	items := Arr(
		Obj(E("key", Str("1")), E("label", Str("Account")), E("children", JSX(El("p", nil, Text("Body"))))),
	)
	el := El("Tabs", Attrs(V("items", items)))
	want := `<Tabs
  items={[
    {
      key: '1',
      label: 'Account',
      children: <p>Body</p>,
    },
  ]}
/>
`
	if diff := cmp.Diff(want, el.String()); diff != "" {
		t.Fatalf("unexpected element (-want +got):\n%s", diff)
	}
}

func TestStateHookImportsReact(t *testing.T) {
	var f File
	f.UseClient = true
	c := Component{Name: "CustomModal"}
	f.State(&c, "open", "false")
	c.Root = Fragment(
		El("button", Attrs(X("onClick", "() => setOpen(true)")), Text("Open")),
		Embed("open && <div>Hi</div>"),
	)
	f.Add(c)
	out := f.String()
	if err := Validate("modal.tsx", out); err != nil {
		t.Fatalf("expected valid TSX, got %v\n%s", err, out)
	}
	want := `'use client';

import { useState } from 'react';

export function CustomModal() {
  const [open, setOpen] = useState(false);

  return (
    <>
      <button onClick={() => setOpen(true)}>Open</button>
      {open && <div>Hi</div>}
    </>
  );
}
`
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("unexpected file (-want +got):\n%s", diff)
	}
}

func TestValidateRejectsBrokenSource(t *testing.T) {
	err := Validate("broken.tsx", "export function X() { return (<div><span></div>); }")
	if !errors.Is(err, ErrInvalidSource) {
		t.Fatalf("expected ErrInvalidSource, got %v", err)
	}
}

func TestLongInlineAttributesWrap(t *testing.T) {
	el := El("Input", Attrs(
		A("placeholder", "user@example.com"),
		A("variant", "outlined"),
		A("size", "medium"),
		A("label", "Email Address"),
	))
	want := `<Input
  placeholder="user@example.com"
  variant="outlined"
  size="medium"
  label="Email Address"
/>
`
	if diff := cmp.Diff(want, el.String()); diff != "" {
		t.Fatalf("unexpected element (-want +got):\n%s", diff)
	}
}

func TestWhenWrapsLongElements(t *testing.T) {
	short := El("div", nil, When("open", El("p", nil, Text("Hi"))))
	if got := short.String(); got != "<div>\n  {open && <p>Hi</p>}\n</div>\n" {
		t.Fatalf("unexpected short conditional %q", got)
	}

	long := When("value === 'notifications'", El("Box", Attrs(V("sx", Obj(E("p", Num(3))))), Text("Configure how you receive notifications.")))
	want := `<div>
  {value === 'notifications' && (
    <Box
      sx={{
        p: 3,
      }}
    >
      Configure how you receive notifications.
    </Box>
  )}
</div>
`
	if diff := cmp.Diff(want, El("div", nil, long).String()); diff != "" {
		t.Fatalf("unexpected long conditional (-want +got):\n%s", diff)
	}
}
