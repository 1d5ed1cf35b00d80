package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	l, ok := ParseLevel("warn")
	require.True(t, ok)
	assert.Equal(t, LevelWarn, l)
	assert.Equal(t, "warn", l.String())

	_, ok = ParseLevel("verbose")
	assert.False(t, ok)
}

func TestWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewWithCore(core)

	child := logger.With(String("run", "abc"))
	child.Debug("evicted", Int("slot", 3))

	entries := logs.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "abc", ctx["run"])
	assert.Equal(t, int64(3), ctx["slot"])
}

func TestEnabled(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	logger := NewWithCore(core)
	assert.False(t, logger.Enabled(LevelDebug))
	assert.True(t, logger.Enabled(LevelInfo))

	nop := NewNop()
	assert.False(t, nop.Enabled(LevelError))
	nop.Error("dropped")
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	logger, err := New(Config{Level: LevelDebug, Output: path})
	require.NoError(t, err)
	assert.True(t, logger.Enabled(LevelDebug))

	logger.SetLevel(LevelError)
	assert.False(t, logger.Enabled(LevelWarn))
	logger.Error("boom")
	_ = logger.Sync()

	assert.FileExists(t, path)
}

func TestCloseFlushesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	logger, err := New(Config{Level: LevelInfo, Output: path})
	require.NoError(t, err)

	logger.With(String("run", "abc")).Error("asset failed", String("path", "font.ttf"))
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"asset failed"`)
	assert.Contains(t, string(data), `"run":"abc"`)
}
