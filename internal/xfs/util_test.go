package xfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandTilde("~"))
	assert.Equal(t, filepath.Join(home, "sdks", "MacOSX.sdk"), ExpandTilde("~/sdks/MacOSX.sdk"))
	assert.Equal(t, "/opt/~/x", ExpandTilde("/opt/~/x"))
	assert.Equal(t, "~other/x", ExpandTilde("~other/x"))
	assert.Equal(t, "", ExpandTilde(""))
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, Exists(dir))
	assert.False(t, Exists(filepath.Join(dir, "missing")))

	link := filepath.Join(dir, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(dir, "nowhere"), link))
	assert.False(t, Exists(link))
}

func TestIsNotExist(t *testing.T) {
	_, err := os.Stat(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, IsNotExist(err))
	assert.False(t, IsNotExist(nil))
}
