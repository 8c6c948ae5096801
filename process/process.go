// Package process holds the platform-neutral types shared by the enumeration
// and lookup packages.
package process

import "errors"

var (
	// ErrProcessNotFound is returned when a lookup does not match any enumerated process.
	ErrProcessNotFound = errors.New("process not found")

	// ErrUnsupported is reported by enumeration on platforms without a process table backend.
	ErrUnsupported = errors.New("process enumeration not supported on this platform")

	ErrEmptyName = errors.New("empty name")
)
