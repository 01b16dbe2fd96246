package applesdk

import (
	"errors"
	"fmt"
)

// Error definitions for the applesdk package.
var (
	ErrUnknownPlatform   = errors.New("unknown platform")
	ErrMalformedSettings = errors.New("malformed SDK settings")
)

// Error records a failed discovery step and the path it concerned.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("applesdk: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("applesdk: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
