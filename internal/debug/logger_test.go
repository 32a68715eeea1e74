package debug

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	logger, closeFn, err := NewLogger(false, path)
	require.NoError(t, err)
	logger.Info("dropped")
	require.NoError(t, closeFn())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestNewLoggerEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	logger, closeFn, err := NewLogger(true, path)
	require.NoError(t, err)
	logger.Debug("moved", "room", "Main Hall")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "DEBUG MODE ENABLED")
	assert.Contains(t, string(data), `room="Main Hall"`)
}

func TestNewLoggerBadPath(t *testing.T) {
	_, _, err := NewLogger(true, filepath.Join(t.TempDir(), "missing", "debug.log"))
	assert.Error(t, err)
}
