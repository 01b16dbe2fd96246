package applesdk

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ekisa-team/sdkpath/internal/command"
	"github.com/ekisa-team/sdkpath/internal/envvar"
	"github.com/ekisa-team/sdkpath/internal/xfs"
)

// Well-known developer directory locations.
var (
	applicationsDir     = "/Applications"
	commandLineToolsDir = "/Library/Developer/CommandLineTools"
)

const xcodeDeveloperSubdir = "Contents/Developer"

// Search finds SDK bundles, optionally restricted to one platform.
// The zero value is not usable; create searches with NewSearch.
type Search struct {
	platform      Platform
	filtered      bool
	developerDirs []string
	xcodeSelect   *command.Executor
}

// Option configures a Search.
type Option func(*Search)

// WithDeveloperDirs replaces developer directory discovery with a fixed list.
// An empty list searches nowhere.
func WithDeveloperDirs(dirs ...string) Option {
	return func(s *Search) {
		s.developerDirs = append([]string{}, dirs...)
	}
}

// WithXcodeSelect sets the executor used to ask xcode-select for the active developer directory.
func WithXcodeSelect(e *command.Executor) Option {
	return func(s *Search) {
		s.xcodeSelect = e
	}
}

// NewSearch creates a search over every platform.
func NewSearch(opts ...Option) Search {
	s := Search{
		xcodeSelect: command.NewExecutor("xcode-select", command.DefaultTimeout),
	}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// Platform returns a copy of the search restricted to p.
// The empty platform matches no SDK.
func (s Search) Platform(p Platform) Search {
	s.platform = p
	s.filtered = true
	return s
}

// Search returns every matching SDK in discovery order.
func (s Search) Search() ([]SimpleSdk, error) {
	platforms := Platforms()
	if s.filtered {
		if s.platform == "" {
			return nil, nil
		}
		platforms = []Platform{s.platform}
	}

	var sdks []SimpleSdk
	for _, dir := range s.DeveloperDirs() {
		for _, platform := range platforms {
			for _, root := range sdkRoots(dir, platform) {
				found, err := scanSDKRoot(root, platform)
				if err != nil {
					return nil, err
				}
				sdks = append(sdks, found...)
			}
		}
	}

	return sdks, nil
}

// DeveloperDirs returns the developer directories the search looks in, in order.
func (s Search) DeveloperDirs() []string {
	if s.developerDirs != nil {
		return s.developerDirs
	}

	var candidates []string

	if dir := os.Getenv(envvar.DeveloperDir); dir != "" {
		candidates = append(candidates, normalizeDeveloperDir(dir))
	}

	if s.xcodeSelect != nil {
		dir, err := s.xcodeSelect.Output(context.Background(), "--print-path")
		if err != nil {
			slog.Debug("xcode-select lookup skipped", "error", err)
		} else {
			candidates = append(candidates, dir)
		}
	}

	candidates = append(candidates, filepath.Join(applicationsDir, "Xcode.app", xcodeDeveloperSubdir))
	if apps, err := filepath.Glob(filepath.Join(applicationsDir, "Xcode*.app")); err == nil {
		for _, app := range apps {
			candidates = append(candidates, filepath.Join(app, xcodeDeveloperSubdir))
		}
	}

	candidates = append(candidates, commandLineToolsDir)

	seen := make(map[string]bool, len(candidates))
	dirs := make([]string, 0, len(candidates))
	for _, dir := range candidates {
		dir = filepath.Clean(dir)
		if seen[dir] {
			continue
		}
		seen[dir] = true

		if !xfs.Exists(dir) {
			slog.Debug("Developer directory not found", "path", dir)
			continue
		}
		dirs = append(dirs, dir)
	}

	return dirs
}

// normalizeDeveloperDir accepts both an Xcode.app bundle and its Contents/Developer directory.
func normalizeDeveloperDir(dir string) string {
	if strings.HasSuffix(filepath.Clean(dir), ".app") {
		return filepath.Join(dir, xcodeDeveloperSubdir)
	}
	return dir
}

// sdkRoots returns the directories that hold SDK bundles for a platform.
func sdkRoots(developerDir string, platform Platform) []string {
	roots := []string{filepath.Join(developerDir, "Platforms", platform.DirectoryName(), "Developer", "SDKs")}
	if platform == MacOSX {
		roots = append(roots, filepath.Join(developerDir, "SDKs"))
	}
	return roots
}

// scanSDKRoot lists the SDK bundles in root. A missing root yields no SDKs.
func scanSDKRoot(root string, platform Platform) ([]SimpleSdk, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if xfs.IsNotExist(err) {
			return nil, nil
		}
		return nil, &Error{Op: "read sdk directory", Path: root, Err: err}
	}

	var sdks []SimpleSdk
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), SDKSuffix) {
			continue
		}
		path := filepath.Join(root, entry.Name())
		if !isBundleDir(entry, path) {
			continue
		}

		sdk, err := LoadSimpleSdk(path, platform)
		if err != nil {
			return nil, err
		}
		sdks = append(sdks, sdk)
	}

	return sdks, nil
}

// isBundleDir reports whether entry is a directory, following symlinks.
// Dangling links and links to files are not bundles.
func isBundleDir(entry fs.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}

	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
