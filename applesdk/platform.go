package applesdk

import (
	"fmt"
	"strings"
)

// Platform identifies an Apple target platform by its developer directory name.
type Platform string

const (
	MacOSX           Platform = "MacOSX"
	IPhoneOS         Platform = "iPhoneOS"
	IPhoneSimulator  Platform = "iPhoneSimulator"
	AppleTVOS        Platform = "AppleTVOS"
	AppleTVSimulator Platform = "AppleTVSimulator"
	WatchOS          Platform = "WatchOS"
	WatchSimulator   Platform = "WatchSimulator"
	XROS             Platform = "XROS"
	XRSimulator      Platform = "XRSimulator"
	DriverKit        Platform = "DriverKit"
)

const platformSuffix = ".platform"

// Platforms returns every known platform in a stable order.
func Platforms() []Platform {
	return []Platform{
		MacOSX,
		IPhoneOS,
		IPhoneSimulator,
		AppleTVOS,
		AppleTVSimulator,
		WatchOS,
		WatchSimulator,
		XROS,
		XRSimulator,
		DriverKit,
	}
}

// aliases maps marketing names to platforms. Canonical names are matched separately.
var aliases = map[string]Platform{
	"macos":    MacOSX,
	"osx":      MacOSX,
	"ios":      IPhoneOS,
	"tvos":     AppleTVOS,
	"watchos":  WatchOS,
	"visionos": XROS,
}

// ParsePlatform parses a platform token.
//
// Matching is case-insensitive and accepts the canonical name (MacOSX), the
// SDK name used by xcrun (macosx), the platform directory name
// (MacOSX.platform), and the common aliases macos, ios, tvos, watchos and
// visionos.
func ParsePlatform(s string) (Platform, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	token = strings.TrimSuffix(token, platformSuffix)

	for _, p := range Platforms() {
		if token == p.SDKName() {
			return p, nil
		}
	}
	if p, ok := aliases[token]; ok {
		return p, nil
	}

	return "", &Error{Op: "parse platform", Err: fmt.Errorf("%w: %q", ErrUnknownPlatform, s)}
}

// String returns the canonical platform name.
func (p Platform) String() string {
	return string(p)
}

// SDKName returns the lowercase name xcrun accepts for --sdk.
func (p Platform) SDKName() string {
	return strings.ToLower(string(p))
}

// DirectoryName returns the platform directory name inside a developer directory.
func (p Platform) DirectoryName() string {
	return string(p) + platformSuffix
}

// IsValid reports whether p is one of the known platforms.
func (p Platform) IsValid() bool {
	for _, known := range Platforms() {
		if p == known {
			return true
		}
	}
	return false
}
