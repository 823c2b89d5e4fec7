package emit

import "errors"

var (
	// ErrNotRegistered reports a supported pair with no registered emitter.
	ErrNotRegistered = errors.New("emit: no emitter registered")
	// ErrDuplicate is returned when a pair is registered twice.
	ErrDuplicate = errors.New("emit: emitter already registered")
	// ErrUnsupportedPair is returned when registering a pair the provider
	// registry marks as unsupported.
	ErrUnsupportedPair = errors.New("emit: pair not supported by provider")
)
