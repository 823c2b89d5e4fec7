// Package icons serves the embedded SVG icon set used by widget views.
package icons

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

//go:embed svg/*.svg
var files embed.FS

// ErrUnknownIcon is returned for names outside the embedded set.
var ErrUnknownIcon = errors.New("icons: unknown icon")

var (
	loadOnce sync.Once
	loaded   map[string]string
	loadErr  error
)

func load() (map[string]string, error) {
	loadOnce.Do(func() {
		entries, err := fs.ReadDir(files, "svg")
		if err != nil {
			loadErr = fmt.Errorf("icons: read embedded set: %w", err)
			return
		}
		out := make(map[string]string, len(entries))
		for _, entry := range entries {
			if entry.IsDir() || path.Ext(entry.Name()) != ".svg" {
				continue
			}
			raw, err := files.ReadFile(path.Join("svg", entry.Name()))
			if err != nil {
				loadErr = fmt.Errorf("icons: read %s: %w", entry.Name(), err)
				return
			}
			clean := Sanitize(string(raw))
			if clean == "" {
				loadErr = fmt.Errorf("icons: %s sanitised to empty markup", entry.Name())
				return
			}
			out[strings.TrimSuffix(entry.Name(), ".svg")] = clean
		}
		loaded = out
	})
	return loaded, loadErr
}

// Names lists the available icons in lexical order.
func Names() []string {
	set, err := load()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is part of the icon set.
func Has(name string) bool {
	set, err := load()
	if err != nil {
		return false
	}
	_, ok := set[normalise(name)]
	return ok
}

// Markup returns the sanitised SVG markup for name.
func Markup(name string) (string, error) {
	set, err := load()
	if err != nil {
		return "", err
	}
	markup, ok := set[normalise(name)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownIcon, name)
	}
	return markup, nil
}

// Node parses the icon into a fresh node tree sized to size (any CSS length).
// Each call returns a new tree so callers may attach it anywhere.
func Node(name, size string) (*html.Node, error) {
	markup, err := Markup(name)
	if err != nil {
		return nil, err
	}
	context := &html.Node{Type: html.ElementNode, Data: "span", DataAtom: atom.Span}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, fmt.Errorf("icons: parse %q: %w", name, err)
	}
	for _, node := range nodes {
		if node.Type != html.ElementNode || node.Data != "svg" {
			continue
		}
		if size != "" {
			setAttr(node, "width", size)
			setAttr(node, "height", size)
		}
		return node, nil
	}
	return nil, fmt.Errorf("icons: %q holds no svg element", name)
}

func normalise(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func setAttr(n *html.Node, key, value string) {
	for idx, attr := range n.Attr {
		if attr.Key == key {
			n.Attr[idx].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}
