package provider

import (
	"errors"

	"github.com/goliatone/go-compareui/pkg/widget"
)

var (
	// ErrUnknownProvider aliases the shared sentinel so callers can match
	// provider errors from this package.
	ErrUnknownProvider = widget.ErrUnknownProvider
	// ErrInvalidRegistry reports a provider table that does not match the
	// closed enumerations.
	ErrInvalidRegistry = errors.New("provider: invalid registry table")
)
