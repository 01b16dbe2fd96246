package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reloadResult struct {
	cfg *Config
	err error
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := writeConfig(t, "version: \"1\"\nsdks: {}\n")

	results := make(chan reloadResult, 4)
	w, err := newWatcher(path, "", 100*time.Millisecond, func(cfg *Config, err error) {
		results <- reloadResult{cfg, err}
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	assert.Empty(t, w.Snapshot().SDKs)

	require.NoError(t, os.WriteFile(path, []byte("version: \"1\"\nsdks:\n  macos:\n    platform: MacOSX\n"), 0o644))

	// A reload may observe the truncated file first; wait for the final content.
	deadline := time.After(5 * time.Second)
	for reloaded := false; !reloaded; {
		select {
		case res := <-results:
			reloaded = res.err == nil && res.cfg.SDKs["macos"].Platform == "MacOSX"
		case <-deadline:
			t.Fatal("config was not reloaded")
		}
	}

	assert.Contains(t, w.Snapshot().SDKs, "macos")
	assert.GreaterOrEqual(t, w.ReloadCount(), uint32(1))
}

func TestWatcher_KeepsSnapshotOnInvalidReload(t *testing.T) {
	path := writeConfig(t, "version: \"1\"\nsdks:\n  macos:\n    platform: MacOSX\n")

	results := make(chan reloadResult, 4)
	w, err := newWatcher(path, "", 100*time.Millisecond, func(cfg *Config, err error) {
		results <- reloadResult{cfg, err}
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(path, []byte("version: \"9\"\nsdks: {}\n"), 0o644))

	select {
	case res := <-results:
		assert.Error(t, res.err)
		assert.Nil(t, res.cfg)
	case <-time.After(5 * time.Second):
		t.Fatal("config reload was not attempted")
	}

	assert.Contains(t, w.Snapshot().SDKs, "macos")
}

func TestNewWatcher_InvalidInitialConfig(t *testing.T) {
	path := writeConfig(t, "version: \"1\"\n")

	_, err := NewWatcher(path, "", func(*Config, error) {})
	assert.Error(t, err)
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	path := writeConfig(t, "version: \"1\"\nsdks: {}\n")

	w, err := NewWatcher(path, "", func(*Config, error) {})
	require.NoError(t, err)

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestWatcher_ReloadsAfterRenameIntoPlace(t *testing.T) {
	path := writeConfig(t, "version: \"1\"\nsdks: {}\n")
	dir := filepath.Dir(path)

	results := make(chan reloadResult, 8)
	w, err := newWatcher(path, "", 100*time.Millisecond, func(cfg *Config, err error) {
		results <- reloadResult{cfg, err}
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	save := func(content string) {
		tmp := filepath.Join(dir, "config.yaml.tmp")
		require.NoError(t, os.WriteFile(tmp, []byte(content), 0o644))
		require.NoError(t, os.Rename(tmp, path))
	}
	waitFor := func(name string) {
		deadline := time.After(5 * time.Second)
		for {
			select {
			case res := <-results:
				if res.err == nil {
					if _, ok := res.cfg.SDKs[name]; ok {
						return
					}
				}
			case <-deadline:
				t.Fatalf("config with %s was not reloaded", name)
			}
		}
	}

	save("version: \"1\"\nsdks:\n  first:\n    platform: MacOSX\n")
	waitFor("first")

	save("version: \"1\"\nsdks:\n  second:\n    platform: XROS\n")
	waitFor("second")

	assert.Contains(t, w.Snapshot().SDKs, "second")
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	path := writeConfig(t, "version: \"1\"\nsdks: {}\n")

	results := make(chan reloadResult, 4)
	w, err := newWatcher(path, "", 50*time.Millisecond, func(cfg *Config, err error) {
		results <- reloadResult{cfg, err}
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other.yaml"), []byte("x"), 0o644))

	select {
	case <-results:
		t.Fatal("sibling file triggered a reload")
	case <-time.After(500 * time.Millisecond):
	}
	assert.Zero(t, w.ReloadCount())
}
