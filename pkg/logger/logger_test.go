package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   DEBUG,
		" INFO ":  INFO,
		"warning": WARN,
		"Error":   ERROR,
		"fatal":   FATAL,
		"verbose": INFO,
		"":        INFO,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLogLevel(in), in)
	}
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := newWithConsole(Config{Level: WARN}, &buf)
	require.NoError(t, err)

	l.Infof("hidden %d", 1)
	l.Warnf("shown %d", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] shown 2")
	assert.Contains(t, out, "logger_test.go")

	l.SetLevel(DEBUG)
	l.Debugf("now visible")
	assert.Contains(t, buf.String(), "[DEBUG] now visible")
}

func TestLogger_WritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "gateway.log")
	var console bytes.Buffer
	cfg := DefaultConfig(path)

	l, err := newWithConsole(cfg, &console)
	require.NoError(t, err)
	l.Errorf("query failed: %s", "boom")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[ERROR] query failed: boom")
	assert.Contains(t, console.String(), "[ERROR] query failed: boom")
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "WARN", WARN.String())
	assert.Equal(t, "LEVEL(42)", LogLevel(42).String())
}
