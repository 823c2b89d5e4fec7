package template_test

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-compareui/pkg/render/template/gotemplate"
	"github.com/goliatone/go-compareui/pkg/testsupport"
)

//go:embed testdata/templates/*.tpl
var embeddedTemplates embed.FS

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result := testsupport.CaptureOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("install", map[string]any{
			"label":   "Material UI",
			"install": "  npm install @mui/material \n",
		}, w)
	})
	testsupport.AssertGolden(t, filepath.Join("testdata", "install.golden"), result)
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"mode": "dark"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result := testsupport.CaptureOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-global", nil, w)
	})
	testsupport.AssertGolden(t, filepath.Join("testdata", "use-global.golden"), result)
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) { return input, nil }); err == nil {
		t.Fatalf("expected duplicate filter registration to fail")
	}

	result := testsupport.CaptureOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-filter", map[string]any{"name": "chakra"}, w)
	})
	testsupport.AssertGolden(t, filepath.Join("testdata", "use-filter.golden"), result)
}

func TestGoTemplateEngine_IndentFilter(t *testing.T) {
	engine := newEngine(t)

	result := testsupport.CaptureOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("snippet", map[string]any{
			"code": "import { Button } from 'antd';\n\n<Button />\n",
		}, w)
	})
	testsupport.AssertGolden(t, filepath.Join("testdata", "snippet.golden"), result)
}

func TestGoTemplateEngine_RenderString(t *testing.T) {
	engine := newEngine(t)

	out, err := engine.RenderString("{{ provider|lowerfirst }} renders {{ widget }}", map[string]any{
		"provider": "Shadcn",
		"widget":   "tabs",
	})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != "shadcn renders tabs" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestGoTemplateEngine_WithGlobals(t *testing.T) {
	engine, err := gotemplate.New(
		gotemplate.WithFS(templatesFS(t)),
		gotemplate.WithExtension("tpl"),
		gotemplate.WithGlobals(map[string]any{"settings": map[string]any{"mode": "light"}}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderTemplate("use-global.tpl", nil)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if out != "mode=light\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestGoTemplateEngine_RejectsScalarData(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderString("{{ x }}", "not a map"); err == nil {
		t.Fatalf("expected scalar data to be rejected")
	}
}

func TestGoTemplateEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without a template filesystem")
	}
}

func templatesFS(t *testing.T) fs.FS {
	t.Helper()

	sub, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}
	return sub
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS(t)))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
