// Package sdkpath resolves and validates the path of an installed Apple SDK bundle.
//
// A path is obtained from a platform, from a platform name, from a raw
// filesystem path, or by asking xcrun. Every entry point returns an SdkPath or
// an *Error whose Kind is one of ErrAppleSdk, ErrSdkNotFound, ErrInvalidPath
// or ErrXcrun.
package sdkpath
