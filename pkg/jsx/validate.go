package jsx

import (
	"errors"
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// ErrInvalidSource is returned when source does not parse as TSX.
var ErrInvalidSource = errors.New("jsx: invalid TSX")

// Validate parses source as TSX with esbuild. Imports are not resolved.
func Validate(name, source string) error {
	result := api.Transform(source, api.TransformOptions{
		Loader:     api.LoaderTSX,
		Sourcefile: name,
		LogLevel:   api.LogLevelSilent,
	})
	if len(result.Errors) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors))
	for _, msg := range result.Errors {
		if msg.Location != nil {
			msgs = append(msgs, fmt.Sprintf("%d:%d: %s", msg.Location.Line, msg.Location.Column, msg.Text))
			continue
		}
		msgs = append(msgs, msg.Text)
	}
	return fmt.Errorf("%w: %s: %s", ErrInvalidSource, name, strings.Join(msgs, "; "))
}
