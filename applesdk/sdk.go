package applesdk

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ekisa-team/sdkpath/internal/mapsafe"
	"github.com/ekisa-team/sdkpath/internal/xfs"
)

const (
	// SDKSuffix is the directory suffix of an SDK bundle.
	SDKSuffix = ".sdk"

	settingsFilename = "SDKSettings.json"
)

// SimpleSdk describes an SDK bundle found on disk.
type SimpleSdk struct {
	path          string
	platform      Platform
	version       string
	canonicalName string
}

// NewSimpleSdk describes the SDK at path without touching the filesystem.
func NewSimpleSdk(path string, platform Platform, version string) SimpleSdk {
	return SimpleSdk{
		path:     path,
		platform: platform,
		version:  version,
	}
}

// LoadSimpleSdk describes the SDK at path, reading SDKSettings.json when the
// bundle has one. A missing settings file is not an error; an unreadable or
// malformed one is.
func LoadSimpleSdk(path string, platform Platform) (SimpleSdk, error) {
	sdk := SimpleSdk{
		path:     path,
		platform: platform,
		version:  versionFromName(filepath.Base(path), platform),
	}

	settingsPath := filepath.Join(path, settingsFilename)
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if xfs.IsNotExist(err) {
			return sdk, nil
		}
		return SimpleSdk{}, &Error{Op: "read settings", Path: settingsPath, Err: err}
	}

	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		return SimpleSdk{}, &Error{Op: "read settings", Path: settingsPath, Err: fmt.Errorf("%w: %w", ErrMalformedSettings, err)}
	}

	if v := mapsafe.Get(settings, "Version", ""); v != "" {
		sdk.version = v
	}
	sdk.canonicalName = mapsafe.Get(settings, "CanonicalName", "")

	return sdk, nil
}

// Path returns the filesystem path of the SDK bundle.
func (s SimpleSdk) Path() string {
	return s.path
}

// Platform returns the platform the SDK was found under.
func (s SimpleSdk) Platform() Platform {
	return s.platform
}

// Name returns the bundle name without the .sdk suffix.
func (s SimpleSdk) Name() string {
	return strings.TrimSuffix(filepath.Base(s.path), SDKSuffix)
}

// Version returns the SDK version, or "" when unknown.
func (s SimpleSdk) Version() string {
	return s.version
}

// CanonicalName returns the xcrun name of this exact SDK (e.g. macosx14.2),
// falling back to the platform SDK name when the bundle has no settings.
func (s SimpleSdk) CanonicalName() string {
	if s.canonicalName != "" {
		return s.canonicalName
	}
	return s.platform.SDKName() + s.version
}

// versionFromName extracts the version from bundle names like MacOSX14.2.sdk.
func versionFromName(base string, platform Platform) string {
	name := strings.TrimSuffix(base, SDKSuffix)
	if len(name) < len(platform) || !strings.EqualFold(name[:len(platform)], string(platform)) {
		return ""
	}

	rest := name[len(platform):]
	if rest == "" || rest[0] < '0' || rest[0] > '9' {
		return ""
	}

	return rest
}
