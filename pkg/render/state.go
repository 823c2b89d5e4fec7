package render

import (
	"fmt"

	"github.com/goliatone/go-compareui/pkg/component"
	"github.com/goliatone/go-compareui/pkg/widget"
)

// State is the widget-local interaction state held by an Artifact.
type State struct {
	Open     bool   `json:"open"`
	Checked  bool   `json:"checked"`
	Selected string `json:"selected,omitempty"`
	Text     string `json:"text,omitempty"`
	Presses  int    `json:"presses"`
}

// EventKind names a user action.
type EventKind string

const (
	EventPress  EventKind = "press"
	EventToggle EventKind = "toggle"
	EventSelect EventKind = "select"
	EventInput  EventKind = "input"
	EventOpen   EventKind = "open"
	EventClose  EventKind = "close"
)

// EventKinds lists the supported actions.
func EventKinds() []EventKind {
	return []EventKind{EventPress, EventToggle, EventSelect, EventInput, EventOpen, EventClose}
}

// Event is a user action. Value carries the option or tab key for select and
// the new text for input.
type Event struct {
	Kind  EventKind
	Value string
}

// Callbacks are invoked synchronously after the artifact re-renders. Nil
// callbacks are skipped.
type Callbacks struct {
	OnPress           func()
	OnCheckedChange   func(checked bool)
	OnSelectionChange func(value string)
	OnValueChange     func(text string)
	OnOpenChange      func(open bool)
}

// initialState derives the state from content. It depends on the widget type
// only so every provider starts from the same state.
func initialState(w widget.Type, c component.Content) State {
	switch w {
	case widget.Switch:
		return State{Checked: c.Checked}
	case widget.Radio, widget.Select:
		return State{Selected: c.SelectedOption()}
	case widget.Tabs:
		return State{Selected: c.ActiveTab()}
	default:
		return State{}
	}
}

// step applies ev to s. The returned notify, when non-nil, fires the matching
// callback.
func step(w widget.Type, c component.Content, s State, ev Event, cb Callbacks) (State, func(), error) {
	switch ev.Kind {
	case EventPress:
		switch w {
		case widget.Button, widget.IconButton, widget.Card:
			s.Presses++
			return s, fire(cb.OnPress), nil
		case widget.Modal:
			return setOpen(s, true, cb)
		case widget.Accordion:
			return setOpen(s, !s.Open, cb)
		case widget.Switch:
			return setChecked(s, !s.Checked, cb)
		}
	case EventToggle:
		switch w {
		case widget.Switch:
			return setChecked(s, !s.Checked, cb)
		case widget.Accordion, widget.Modal:
			return setOpen(s, !s.Open, cb)
		}
	case EventOpen, EventClose:
		if w == widget.Accordion || w == widget.Modal {
			return setOpen(s, ev.Kind == EventOpen, cb)
		}
	case EventSelect:
		switch w {
		case widget.Radio, widget.Select:
			if !c.HasOption(ev.Value) {
				return s, nil, fmt.Errorf("%w: %q is not an option of %s", ErrInvalidValue, ev.Value, w)
			}
			return setSelected(s, ev.Value, cb)
		case widget.Tabs:
			if !c.HasTab(ev.Value) {
				return s, nil, fmt.Errorf("%w: %q is not a tab", ErrInvalidValue, ev.Value)
			}
			return setSelected(s, ev.Value, cb)
		}
	case EventInput:
		if w == widget.Input {
			if s.Text == ev.Value {
				return s, nil, nil
			}
			s.Text = ev.Value
			return s, fireString(cb.OnValueChange, ev.Value), nil
		}
	}
	return s, nil, fmt.Errorf("%w: %s on %s", ErrUnsupportedEvent, ev.Kind, w)
}

func setOpen(s State, open bool, cb Callbacks) (State, func(), error) {
	if s.Open == open {
		return s, nil, nil
	}
	s.Open = open
	return s, fireBool(cb.OnOpenChange, open), nil
}

func setChecked(s State, checked bool, cb Callbacks) (State, func(), error) {
	if s.Checked == checked {
		return s, nil, nil
	}
	s.Checked = checked
	return s, fireBool(cb.OnCheckedChange, checked), nil
}

func setSelected(s State, value string, cb Callbacks) (State, func(), error) {
	if s.Selected == value {
		return s, nil, nil
	}
	s.Selected = value
	return s, fireString(cb.OnSelectionChange, value), nil
}

func fire(fn func()) func() {
	if fn == nil {
		return nil
	}
	return fn
}

func fireBool(fn func(bool), v bool) func() {
	if fn == nil {
		return nil
	}
	return func() { fn(v) }
}

func fireString(fn func(string), v string) func() {
	if fn == nil {
		return nil
	}
	return func() { fn(v) }
}
