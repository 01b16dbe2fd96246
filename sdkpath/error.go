package sdkpath

import (
	"errors"
	"strings"
)

// Error kinds. New kinds may be added; match with errors.Is.
var (
	ErrAppleSdk    = errors.New("apple sdk lookup failed")
	ErrSdkNotFound = errors.New("sdk not found")
	ErrInvalidPath = errors.New("path is not sdk path")
	ErrXcrun       = errors.New("xcrun lookup failed")
)

// Error is returned by every resolution entry point.
type Error struct {
	// Kind is one of the Err* sentinels of this package.
	Kind error
	// Path is the offending path for ErrInvalidPath.
	Path string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("sdkpath: ")
	b.WriteString(e.Kind.Error())
	if e.Path != "" {
		b.WriteString(": ")
		b.WriteString(e.Path)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
