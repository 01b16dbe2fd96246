package config

import (
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/ekisa-team/sdkpath/internal/envvar"
	"github.com/ekisa-team/sdkpath/internal/xfs"
)

const (
	// DefaultXcrunPath is the xcrun binary looked up on PATH.
	DefaultXcrunPath = "xcrun"

	// DefaultXcrunTimeout bounds a single xcrun invocation.
	DefaultXcrunTimeout = 10 * time.Second

	configFilename = "config.yaml"
)

// DefaultConfigPath returns the default path for the sdkpath config directory.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "sdkpath", "config")
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "sdkpath")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "sdkpath")
	default: // Linux, BSD, etc.
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "sdkpath")
		}
		return filepath.Join(home, ".config", "sdkpath")
	}
}

// DefaultConfigFile returns the config file to load.
// Precedence:
// 1. SDKPATH_CONFIG environment variable.
// 2. config.yaml in the default config directory.
func DefaultConfigFile() string {
	if p := os.Getenv(envvar.SdkpathConfig); p != "" {
		return xfs.ExpandTilde(p)
	}
	return filepath.Join(DefaultConfigPath(), configFilename)
}
