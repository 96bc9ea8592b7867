package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	l, err := NewLogger(path)
	require.NoError(t, err)

	l.Info("listening on %s", ":8080")
	l.Warn("store %s missing", "codes.json")
	l.Error("boom")
	l.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "INFO: ")
	assert.Contains(t, out, "listening on :8080")
	assert.Contains(t, out, "WARN: ")
	assert.Contains(t, out, "ERROR: boom")
}

func TestLoggerStderrFallback(t *testing.T) {
	l, err := NewLogger("")
	require.NoError(t, err)
	assert.NotNil(t, l)
	l.Close() // no file; must not panic
}
