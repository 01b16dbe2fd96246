package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekisa-team/sdkpath/internal/env"
)

func TestNew_Levels(t *testing.T) {
	dev := New(env.Development, WithOutput(&bytes.Buffer{}))
	assert.True(t, dev.Enabled(context.Background(), slog.LevelDebug))

	prod := New(env.Production, WithOutput(&bytes.Buffer{}))
	assert.False(t, prod.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, prod.Enabled(context.Background(), slog.LevelInfo))

	quiet := New(env.Development, WithOutput(&bytes.Buffer{}), WithLevel(slog.LevelWarn))
	assert.False(t, quiet.Enabled(context.Background(), slog.LevelInfo))
}

func TestNew_WritesConsole(t *testing.T) {
	var buf bytes.Buffer
	log := New(env.Production, WithOutput(&buf))

	log.Info("SDK resolved", "path", "/Xcode/MacOSX.sdk")

	assert.Contains(t, buf.String(), "SDK resolved")
	assert.Contains(t, buf.String(), "path=/Xcode/MacOSX.sdk")
}

func TestNew_WritesFile(t *testing.T) {
	var buf bytes.Buffer
	file := filepath.Join(t.TempDir(), "logs", "sdkpath.log")
	log := New(env.Development, WithOutput(&buf), WithLogToFile(true), WithLogFile(file))

	log.Warn("Developer directory not found", "path", "/Applications/Xcode.app")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Developer directory not found")
	assert.Equal(t, buf.String(), string(data))
}
