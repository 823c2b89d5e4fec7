// Package assistant is the boundary to the natural-language config
// assistant. The assistant is a remote black box: it receives the current
// config of one widget and a prompt, and answers with a config patch that
// the host applies with patch.Apply.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-compareui/pkg/component"
	"github.com/goliatone/go-compareui/pkg/patch"
	"github.com/goliatone/go-compareui/pkg/widget"
)

var (
	// ErrEmptyPrompt is returned before any request when the prompt is blank.
	ErrEmptyPrompt = errors.New("assistant: prompt is empty")
	// ErrNoEndpoint is returned by NewClient without an endpoint.
	ErrNoEndpoint = errors.New("assistant: endpoint is required")
	// ErrRejected marks a response that carries no usable patch.
	ErrRejected = errors.New("assistant: request rejected")
)

// Assistant turns a prompt into a patch for the current config of w.
type Assistant interface {
	Suggest(ctx context.Context, w widget.Type, prompt string, current component.Config) (patch.Patch, error)
}

// Func adapts a function to Assistant.
type Func func(ctx context.Context, w widget.Type, prompt string, current component.Config) (patch.Patch, error)

// Suggest calls f.
func (f Func) Suggest(ctx context.Context, w widget.Type, prompt string, current component.Config) (patch.Patch, error) {
	return f(ctx, w, prompt, current)
}

// Refine asks a for a patch and applies it to current. On failure current is
// returned unchanged alongside the error.
func Refine(ctx context.Context, a Assistant, w widget.Type, prompt string, current component.Config) (component.Config, error) {
	if a == nil {
		return current, errors.New("assistant: assistant is nil")
	}
	if strings.TrimSpace(prompt) == "" {
		return current, ErrEmptyPrompt
	}
	p, err := a.Suggest(ctx, w, prompt, current.Clone())
	if err != nil {
		return current, err
	}
	next, err := patch.ApplyWidget(w, current, p)
	if err != nil {
		return current, fmt.Errorf("assistant: %w", err)
	}
	return next, nil
}

// ResponseError reports a non-success answer from the assistant service.
type ResponseError struct {
	Status  int
	Message string
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("assistant: request rejected with status %d", e.Status)
	}
	return fmt.Sprintf("assistant: request rejected with status %d: %s", e.Status, e.Message)
}

// Unwrap lets errors.Is match ErrRejected.
func (e *ResponseError) Unwrap() error {
	return ErrRejected
}
