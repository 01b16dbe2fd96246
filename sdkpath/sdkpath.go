package sdkpath

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/ekisa-team/sdkpath/applesdk"
	"github.com/ekisa-team/sdkpath/internal/command"
	"github.com/ekisa-team/sdkpath/internal/xfs"
)

// SdkPath is the path of an SDK bundle that was located by discovery, or that
// carried the .sdk suffix and existed when it was validated. The filesystem
// entry may change afterwards.
type SdkPath struct {
	path string
}

// Path returns the wrapped path exactly as resolved.
func (p SdkPath) Path() string {
	return p.path
}

func (p SdkPath) String() string {
	return p.path
}

// Searcher finds the SDKs installed for a platform.
type Searcher interface {
	Search(platform applesdk.Platform) ([]applesdk.SimpleSdk, error)
}

// SearcherFunc adapts a function to Searcher.
type SearcherFunc func(platform applesdk.Platform) ([]applesdk.SimpleSdk, error)

// Search calls f.
func (f SearcherFunc) Search(platform applesdk.Platform) ([]applesdk.SimpleSdk, error) {
	return f(platform)
}

// DiscoverySearcher returns a Searcher backed by an applesdk search.
func DiscoverySearcher(search applesdk.Search) Searcher {
	return SearcherFunc(func(platform applesdk.Platform) ([]applesdk.SimpleSdk, error) {
		return search.Platform(platform).Search()
	})
}

// Resolver turns platforms, names, and raw paths into validated SDK paths.
// It keeps no state between calls and is safe for concurrent use.
type Resolver struct {
	searcher Searcher
	xcrun    *command.Executor
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSearcher sets the SDK discovery backend.
func WithSearcher(s Searcher) Option {
	return func(r *Resolver) {
		r.searcher = s
	}
}

// WithXcrun sets the executor used by FromXcrun.
func WithXcrun(e *command.Executor) Option {
	return func(r *Resolver) {
		r.xcrun = e
	}
}

// NewResolver creates a resolver backed by applesdk discovery and the system xcrun.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}

	if r.searcher == nil {
		r.searcher = DiscoverySearcher(applesdk.NewSearch())
	}
	if r.xcrun == nil {
		r.xcrun = command.NewExecutor("xcrun", command.DefaultTimeout)
	}

	return r
}

// FromPlatform returns the first SDK discovery reports for platform.
func (r *Resolver) FromPlatform(platform applesdk.Platform) (SdkPath, error) {
	sdks, err := r.searcher.Search(platform)
	if err != nil {
		return SdkPath{}, &Error{Kind: ErrAppleSdk, Err: err}
	}
	if len(sdks) == 0 {
		return SdkPath{}, &Error{Kind: ErrSdkNotFound}
	}

	return SdkPath{path: sdks[0].Path()}, nil
}

// FromPath validates a raw path: it must end in .sdk and exist.
// Either failure yields ErrInvalidPath carrying the path unchanged.
//
// The path must be valid UTF-8; FromPath panics otherwise.
func (r *Resolver) FromPath(path string) (SdkPath, error) {
	if !utf8.ValidString(path) {
		panic(fmt.Sprintf("sdkpath: sdk path is not valid UTF-8: %q", path))
	}

	if !strings.HasSuffix(path, applesdk.SDKSuffix) || !xfs.Exists(path) {
		return SdkPath{}, &Error{Kind: ErrInvalidPath, Path: path}
	}

	return SdkPath{path: path}, nil
}

// FromName parses a platform name and resolves it with FromPlatform.
func (r *Resolver) FromName(name string) (SdkPath, error) {
	platform, err := applesdk.ParsePlatform(name)
	if err != nil {
		return SdkPath{}, &Error{Kind: ErrAppleSdk, Err: err}
	}

	return r.FromPlatform(platform)
}

// FromXcrun asks xcrun for the path of sdk (an SDK name such as macosx or
// iphoneos17.2, or "" for the default SDK) and validates it with FromPath.
func (r *Resolver) FromXcrun(ctx context.Context, sdk string) (SdkPath, error) {
	var args []string
	if sdk != "" {
		args = append(args, "--sdk", sdk)
	}
	args = append(args, "--show-sdk-path")

	out, err := r.xcrun.Output(ctx, args...)
	if err != nil {
		return SdkPath{}, &Error{Kind: ErrXcrun, Err: err}
	}

	return r.FromPath(out)
}

var defaultResolver = sync.OnceValue(func() *Resolver {
	return NewResolver()
})

// FromPlatform resolves platform with the default resolver.
func FromPlatform(platform applesdk.Platform) (SdkPath, error) {
	return defaultResolver().FromPlatform(platform)
}

// FromPath validates path with the default resolver.
func FromPath(path string) (SdkPath, error) {
	return defaultResolver().FromPath(path)
}

// FromName resolves a platform name with the default resolver.
func FromName(name string) (SdkPath, error) {
	return defaultResolver().FromName(name)
}

// FromXcrun asks xcrun through the default resolver.
func FromXcrun(ctx context.Context, sdk string) (SdkPath, error) {
	return defaultResolver().FromXcrun(ctx, sdk)
}
