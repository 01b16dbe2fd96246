package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ekisa-team/sdkpath/internal/xfs"
)

// SourceType represents how an SDK entry is resolved.
type SourceType string

const (
	// SourceTypePlatform resolves a canonical platform through discovery.
	SourceTypePlatform SourceType = "platform"
	// SourceTypeName parses a platform name, then resolves it through discovery.
	SourceTypeName SourceType = "name"
	// SourceTypePath validates a raw SDK bundle path.
	SourceTypePath SourceType = "path"
	// SourceTypeXcrun asks xcrun for the path of an SDK name.
	SourceTypeXcrun SourceType = "xcrun"
)

// Error definitions for the config package.
var (
	ErrNoSource        = errors.New("no source configured for sdk")
	ErrMultipleSources = errors.New("more than one source configured for sdk")
)

// Config holds the main configuration for the application.
type Config struct {
	Version   string               `json:"version"             yaml:"version"`
	Developer DeveloperConfig      `json:"developer,omitempty" yaml:"developer,omitempty"`
	Xcrun     XcrunConfig          `json:"xcrun,omitempty"     yaml:"xcrun,omitempty"`
	Log       LogConfig            `json:"log,omitempty"       yaml:"log,omitempty"`
	SDKs      map[string]SDKConfig `json:"sdks"                yaml:"sdks"`
}

// DeveloperConfig overrides developer directory discovery.
type DeveloperConfig struct {
	Dirs []string `json:"dirs,omitempty" yaml:"dirs,omitempty"`
}

// XcrunConfig configures the xcrun lookup strategy.
type XcrunConfig struct {
	Path    string `json:"path,omitempty"    yaml:"path,omitempty"`
	Timeout string `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// LogConfig configures file logging.
type LogConfig struct {
	ToFile bool   `json:"to_file,omitempty" yaml:"to_file,omitempty"`
	File   string `json:"file,omitempty"    yaml:"file,omitempty"`
}

// SDKConfig declares one named SDK. Exactly one source field must be set.
type SDKConfig struct {
	Platform string `json:"platform,omitempty" yaml:"platform,omitempty"`
	Name     string `json:"name,omitempty"     yaml:"name,omitempty"`
	Path     string `json:"path,omitempty"     yaml:"path,omitempty"`
	Xcrun    string `json:"xcrun,omitempty"    yaml:"xcrun,omitempty"`
}

// GetSource returns the active source of the entry and its value.
// Paths have a leading tilde expanded.
func (s SDKConfig) GetSource() (SourceType, string, error) {
	var (
		kind  SourceType
		value string
		count int
	)

	set := func(k SourceType, v string) {
		if v == "" {
			return
		}
		kind, value = k, v
		count++
	}
	set(SourceTypePlatform, s.Platform)
	set(SourceTypeName, s.Name)
	set(SourceTypePath, s.Path)
	set(SourceTypeXcrun, s.Xcrun)

	switch count {
	case 0:
		return "", "", ErrNoSource
	case 1:
	default:
		return "", "", ErrMultipleSources
	}

	if kind == SourceTypePath {
		value = xfs.ExpandTilde(value)
	}

	return kind, value, nil
}

// DeveloperDirs returns the configured developer directories with tildes expanded,
// or nil when discovery should locate them.
func (c *Config) DeveloperDirs() []string {
	if len(c.Developer.Dirs) == 0 {
		return nil
	}

	dirs := make([]string, 0, len(c.Developer.Dirs))
	for _, dir := range c.Developer.Dirs {
		dirs = append(dirs, xfs.ExpandTilde(dir))
	}
	return dirs
}

// XcrunPath returns the xcrun binary to run.
func (c *Config) XcrunPath() string {
	if c.Xcrun.Path == "" {
		return DefaultXcrunPath
	}
	return xfs.ExpandTilde(c.Xcrun.Path)
}

// XcrunTimeout returns the xcrun timeout.
func (c *Config) XcrunTimeout() (time.Duration, error) {
	if c.Xcrun.Timeout == "" {
		return DefaultXcrunTimeout, nil
	}

	d, err := time.ParseDuration(c.Xcrun.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid xcrun timeout %q: %w", c.Xcrun.Timeout, err)
	}
	return d, nil
}
