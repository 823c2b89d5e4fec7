package render

import "errors"

var (
	// ErrNotRegistered reports a supported pair with no registered view. It
	// signals an integration bug, not a user error.
	ErrNotRegistered = errors.New("render: no view registered")
	// ErrDuplicate is returned when a pair is registered twice.
	ErrDuplicate = errors.New("render: view already registered")
	// ErrUnsupportedPair is returned when registering a pair the provider
	// registry marks as unsupported.
	ErrUnsupportedPair = errors.New("render: pair not supported by provider")
	// ErrUnsupportedEvent is returned by Artifact.Dispatch for events the
	// widget does not handle.
	ErrUnsupportedEvent = errors.New("render: event not handled by widget")
	// ErrInvalidValue is returned when a select event names an unknown option
	// or tab.
	ErrInvalidValue = errors.New("render: invalid event value")
)
