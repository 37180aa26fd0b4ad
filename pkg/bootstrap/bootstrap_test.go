package bootstrap

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_toLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, expected := range testCases {
		assert.Equal(t, expected, toLevel(in), "level %q", in)
	}
}

func Test_NewLogger(t *testing.T) {
	// given
	var buf bytes.Buffer
	log := NewLogger("warn", &buf)
	// when
	log.Info("hidden")
	log.Warn("shown", "key", "value")
	// then
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"key":"value"`)
	assert.True(t, log.Enabled(context.Background(), slog.LevelError))
}

func Test_OpenLogOutput(t *testing.T) {
	w, closeFn, err := OpenLogOutput("")
	require.NoError(t, err)
	assert.Equal(t, os.Stderr, w)
	assert.NoError(t, closeFn())

	w, closeFn, err = OpenLogOutput("stdout")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, w)
	assert.NoError(t, closeFn())

	path := filepath.Join(t.TempDir(), "stockroom.log")
	w, closeFn, err = OpenLogOutput(path)
	require.NoError(t, err)
	NewLogger("info", w).Info("to file")
	require.NoError(t, closeFn())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")

	_, _, err = OpenLogOutput(filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	assert.Error(t, err)
}
