package applesdk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSimpleSdk_WithoutSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "MacOSX14.2.sdk")
	require.NoError(t, os.Mkdir(path, 0o755))

	sdk, err := LoadSimpleSdk(path, MacOSX)
	require.NoError(t, err)

	assert.Equal(t, path, sdk.Path())
	assert.Equal(t, MacOSX, sdk.Platform())
	assert.Equal(t, "MacOSX14.2", sdk.Name())
	assert.Equal(t, "14.2", sdk.Version())
	assert.Equal(t, "macosx14.2", sdk.CanonicalName())
}

func TestLoadSimpleSdk_SettingsOverrideName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "MacOSX.sdk")
	require.NoError(t, os.Mkdir(path, 0o755))
	settings := `{"CanonicalName": "macosx15.0", "Version": "15.0", "DisplayName": "macOS 15.0"}`
	require.NoError(t, os.WriteFile(filepath.Join(path, settingsFilename), []byte(settings), 0o644))

	sdk, err := LoadSimpleSdk(path, MacOSX)
	require.NoError(t, err)

	assert.Equal(t, "15.0", sdk.Version())
	assert.Equal(t, "macosx15.0", sdk.CanonicalName())
	assert.Equal(t, "MacOSX", sdk.Name())
}

func TestLoadSimpleSdk_MalformedSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "iPhoneOS17.0.sdk")
	require.NoError(t, os.Mkdir(path, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(path, settingsFilename), []byte("{not json"), 0o644))

	_, err := LoadSimpleSdk(path, IPhoneOS)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedSettings)

	var sdkErr *Error
	require.ErrorAs(t, err, &sdkErr)
	assert.Equal(t, filepath.Join(path, settingsFilename), sdkErr.Path)
}

func TestVersionFromName(t *testing.T) {
	tests := []struct {
		base     string
		platform Platform
		want     string
	}{
		{"MacOSX14.2.sdk", MacOSX, "14.2"},
		{"macosx13.sdk", MacOSX, "13"},
		{"MacOSX.sdk", MacOSX, ""},
		{"iPhoneSimulator17.0.sdk", IPhoneSimulator, "17.0"},
		{"iPhoneSimulator17.0.sdk", IPhoneOS, ""},
		{"Mac.sdk", MacOSX, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, versionFromName(tt.base, tt.platform), tt.base)
	}
}

func TestNewSimpleSdk(t *testing.T) {
	sdk := NewSimpleSdk("/sdks/WatchOS10.0.sdk", WatchOS, "10.0")

	assert.Equal(t, "/sdks/WatchOS10.0.sdk", sdk.Path())
	assert.Equal(t, "watchos10.0", sdk.CanonicalName())
}
