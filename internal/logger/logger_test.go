package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestLoggerWritesFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"widget": "button"}).With("provider", "mui").Info("rendered")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "rendered", entries[0]["message"])
	assert.Equal(t, "button", entries[0]["widget"])
	assert.Equal(t, "mui", entries[0]["provider"])
	assert.Equal(t, "info", entries[0]["level"])
}

func TestLoggerRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "WARN", Writer: buf})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown")
	log.Error(errors.New("boom"), "failed")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "warn", entries[0]["level"])
	assert.Equal(t, "boom", entries[1]["error"])
	assert.False(t, log.Enabled(zerolog.InfoLevel))
	assert.True(t, log.Enabled(zerolog.ErrorLevel))
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestLoggerHumanReadable(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Debug("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.False(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "{"))
}

func TestNilAndNopLoggers(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	assert.NotPanics(t, func() {
		nilLogger.Info("ignored")
		nilLogger.Error(nil, "ignored")
		assert.Nil(t, nilLogger.With("k", "v"))
	})
	assert.NotPanics(t, func() { Nop().Warn("ignored") })
}
