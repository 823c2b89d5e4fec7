package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const highlightStyle = "monokai"

// writeStructured prints value as JSON or YAML. It reports false for the text
// format so callers can fall back to their own rendering.
func writeStructured(w io.Writer, format string, value any) (bool, error) {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return true, encoder.Encode(value)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return true, err
		}
		return true, encoder.Close()
	default:
		return false, nil
	}
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func useColor(w io.Writer, setting string) bool {
	switch setting {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal(w)
	}
}

// highlightTSX writes source with terminal colours.
func highlightTSX(w io.Writer, source string) error {
	lexer := lexers.Match("component.tsx")
	if lexer == nil {
		lexer = lexers.Get("typescript")
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(highlightStyle)
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return fmt.Errorf("highlight: %w", err)
	}
	return formatter.Format(w, style, iterator)
}

// writeCode prints TSX, highlighted when colour is enabled.
func writeCode(w io.Writer, source string, color bool) error {
	if color {
		if err := highlightTSX(w, source); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	}
	_, err := fmt.Fprintln(w, source)
	return err
}
