package widget

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownWidget marks a widget tag outside the closed set.
	ErrUnknownWidget = errors.New("widget: unknown widget type")
	// ErrUnknownProvider marks a provider tag outside the closed set. It lives
	// here so both tag kinds share UnknownTagError.
	ErrUnknownProvider = errors.New("widget: unknown provider")
)

// TagKind names the enumeration an UnknownTagError refers to.
type TagKind string

const (
	KindWidget   TagKind = "widget type"
	KindProvider TagKind = "provider"
)

// UnknownTagError is the only error class surfaced by the dispatchers. It
// signals an integration bug in the caller rather than bad user data.
type UnknownTagError struct {
	Kind       TagKind
	Tag        string
	Suggestion string
}

func (e *UnknownTagError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown %s %q (did you mean %q?)", e.Kind, e.Tag, e.Suggestion)
	}
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Tag)
}

// Unwrap lets errors.Is match the kind specific sentinel.
func (e *UnknownTagError) Unwrap() error {
	if e.Kind == KindProvider {
		return ErrUnknownProvider
	}
	return ErrUnknownWidget
}
