// Package testsupport holds fixture and golden-file helpers shared by the
// package tests. Goldens are rewritten when UPDATE_GOLDENS is set.
package testsupport

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-compareui/pkg/component"
)

const updateEnv = "UPDATE_GOLDENS"

// LoadConfig reads a JSON or YAML component config fixture.
func LoadConfig(t *testing.T, path string) component.Config {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config fixture: %v", err)
	}
	cfg, err := component.LoadConfig(data)
	if err != nil {
		t.Fatalf("parse config fixture %s: %v", path, err)
	}
	return cfg
}

// Updating reports whether golden files should be rewritten.
func Updating() bool {
	return os.Getenv(updateEnv) != ""
}

// ReadGolden returns the content of a golden file.
func ReadGolden(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return string(data)
}

// AssertGolden compares got with the golden file at path, rewriting the file
// first when updating.
func AssertGolden(t *testing.T, path, got string) {
	t.Helper()

	if Updating() {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir golden dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
		return
	}
	if diff := cmp.Diff(ReadGolden(t, path), got); diff != "" {
		t.Fatalf("%s mismatch (-want +got):\n%s", filepath.Base(path), diff)
	}
}

// CaptureOutput runs a render function that also writes to an io.Writer and
// fails unless the returned string and the written bytes agree.
func CaptureOutput(t *testing.T, render func(io.Writer) (string, error)) string {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != buf.String() {
		t.Fatalf("writer copy differs from result\nresult: %q\nwriter: %q", out, buf.String())
	}
	return out
}
