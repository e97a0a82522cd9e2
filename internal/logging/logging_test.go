package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func TestNewWritesToFallback(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(config.LogConfig{Level: "info"}, "snake", &buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Debug("hidden")
	logger.Info("game started", "width", 30)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "game started")
	assert.Contains(t, out, "width=30")
	assert.Contains(t, out, "snake")
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "snake.log")
	logger, closer, err := New(config.LogConfig{Level: "debug", File: path}, "snake", io.Discard)
	require.NoError(t, err)

	logger.Debug("resumed")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "resumed")
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "chatty"}, "snake", io.Discard)
	assert.Error(t, err)
}
