package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-compareui/pkg/component"
	"github.com/goliatone/go-compareui/pkg/widget"
)

// isolate keeps user config files and environment out of the command.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	return dir
}

func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	cmd.SetArgs(args)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(""))
	err := cmd.Execute()
	return buf.String(), err
}

func TestProvidersMatrix(t *testing.T) {
	isolate(t)

	out, err := executeCommand(newRootCmd(), "providers")
	require.NoError(t, err)
	for _, want := range []string{"Widget", "Material UI", "Aceternity UI", "Icon Button", "yes", "-"} {
		assert.Contains(t, out, want)
	}
}

func TestProvidersJSON(t *testing.T) {
	isolate(t)

	out, err := executeCommand(newRootCmd(), "providers", "--format", "json", "--providers", "aceternity,mui")
	require.NoError(t, err)

	var views []providerView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 2)
	assert.Equal(t, "aceternity", string(views[0].ID))
	assert.Len(t, views[0].Widgets, 8)
	assert.NotContains(t, views[0].Widgets, "tabs")
	assert.Len(t, views[1].Widgets, 11)
}

func TestCatalogSearch(t *testing.T) {
	isolate(t)

	out, err := executeCommand(newRootCmd(), "catalog", "toggle")
	require.NoError(t, err)
	assert.Contains(t, out, "switch")
	assert.NotContains(t, out, "accordion")

	out, err = executeCommand(newRootCmd(), "catalog", "zzz")
	require.NoError(t, err)
	assert.Contains(t, out, "No widgets match")
}

func TestRenderAppliesEvents(t *testing.T) {
	isolate(t)

	out, err := executeCommand(newRootCmd(), "render", "switch", "-p", "mui", "--event", "toggle")
	require.NoError(t, err)
	assert.Contains(t, out, "<!-- Material UI (mui) -->")
	assert.Contains(t, out, "<!-- callback checked=true -->")

	_, err = executeCommand(newRootCmd(), "render", "switch", "--event", "explode")
	require.Error(t, err)
}

func TestRenderUnknownWidget(t *testing.T) {
	isolate(t)

	_, err := executeCommand(newRootCmd(), "render", "buton")
	require.Error(t, err)
	assert.ErrorIs(t, err, widget.ErrUnknownWidget)
	assert.Contains(t, err.Error(), "button")
}

func TestEmitPrintsEveryProvider(t *testing.T) {
	isolate(t)

	out, err := executeCommand(newRootCmd(), "emit", "button", "--set", "content.label=Save", "--set", "styles.borderRadius=12")
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(out, "// ---- "))
	assert.Contains(t, out, "// ---- chakra/CustomButton.tsx")
	assert.Contains(t, out, "Save")
	assert.Contains(t, out, "12px")
}

func TestEmitWritesFiles(t *testing.T) {
	dir := isolate(t)
	target := filepath.Join(dir, "out")

	out, err := executeCommand(newRootCmd(), "emit", "tabs", "--out", target)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(strings.TrimSpace(out), "\n")+1)

	_, err = os.Stat(filepath.Join(target, "mui", "CustomTabs.tsx"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(target, "aceternity"))
	assert.True(t, os.IsNotExist(err))
}

func TestGuide(t *testing.T) {
	isolate(t)

	out, err := executeCommand(newRootCmd(), "guide", "antd")
	require.NoError(t, err)
	assert.Contains(t, out, "# Ant Design setup")

	_, err = executeCommand(newRootCmd(), "guide", "bootstrap")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Suggestion")
}

func TestSchema(t *testing.T) {
	isolate(t)

	out, err := executeCommand(newRootCmd(), "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"openapi": "3.0.3"`)

	out, err = executeCommand(newRootCmd(), "schema", "switch", "--format", "yaml")
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Contains(t, out, "checked")
	assert.NotContains(t, out, "tabs")
}

func TestPatchMergesIntoDefaults(t *testing.T) {
	dir := isolate(t)
	patchPath := filepath.Join(dir, "patch.yaml")
	require.NoError(t, os.WriteFile(patchPath, []byte("label: Save\nstyles:\n  backgroundColor: '#111'\n"), 0o644))

	out, err := executeCommand(newRootCmd(), "patch", "button", "--patch", patchPath, "--set", "size=large")
	require.NoError(t, err)

	cfg, err := component.LoadConfig([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "Save", cfg.Content.Label)
	assert.Equal(t, widget.Size("large"), cfg.Size)
	require.NotNil(t, cfg.Styles.BackgroundColor)
	assert.Equal(t, "#111", cfg.Styles.BackgroundColor.String())
}

func TestPatchDiff(t *testing.T) {
	dir := isolate(t)
	target := filepath.Join(dir, "target.json")
	require.NoError(t, os.WriteFile(target, []byte(`{"content":{"label":"Go"},"styles":{}}`), 0o644))

	out, err := executeCommand(newRootCmd(), "patch", "button", "--diff", target, "--format", "json")
	require.NoError(t, err)

	var p map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, map[string]any{"label": "Go"}, p["content"])
}

func TestPreviewWritesFile(t *testing.T) {
	dir := isolate(t)
	target := filepath.Join(dir, "card.html")

	out, err := executeCommand(newRootCmd(), "preview", "card", "--mode", "dark", "-o", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Preview written to")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<title>Card across providers</title>")
	assert.Contains(t, string(data), `class="dark"`)
}

func TestInvalidFlagsFailValidation(t *testing.T) {
	isolate(t)

	_, err := executeCommand(newRootCmd(), "providers", "--mode", "sepia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating flags")
}

func TestConfigFileDefaultsWidget(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "compareui.yaml"), []byte("output:\n  widget: progress\ntheme:\n  providers: [shadcn]\n"), 0o644))

	out, err := executeCommand(newRootCmd(), "emit")
	require.NoError(t, err)
	assert.Contains(t, out, "// ---- shadcn/CustomProgress.tsx")
}

func TestPlayRequiresTerminal(t *testing.T) {
	isolate(t)

	_, err := executeCommand(newRootCmd(), "play")
	require.ErrorIs(t, err, errNotInteractive)
}
