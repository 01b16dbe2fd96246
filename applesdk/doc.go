// Package applesdk discovers Apple platform SDK bundles installed on the host.
//
// SDKs are looked up inside developer directories (Xcode installations and the
// Command Line Tools). Each developer directory keeps per-platform SDKs under
// Platforms/<Platform>.platform/Developer/SDKs; the Command Line Tools keep
// macOS SDKs directly under SDKs.
//
//	sdks, err := applesdk.NewSearch().Platform(applesdk.MacOSX).Search()
//
// Results are reported in discovery order: developer directories in lookup
// order, then SDK bundles in directory listing order. No version sorting is
// applied.
package applesdk
