// Package errkind defines the failure kinds reported by bin2c.
//
// Errors are created at their point of origin with one of the constructors below and
// travel up unchanged. Their message is exactly the text shown to the user; the underlying
// cause, if any, is attached as secondary detail and only shows up in verbose (%+v) output.
package errkind

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrUsage marks a wrong command line (argument count or flags).
	ErrUsage = errors.New("usage error")
	// ErrFileAccess marks an input or output file that cannot be stat'd, opened, read or written.
	ErrFileAccess = errors.New("file access error")
	// ErrEmptyInput marks a zero-length input file.
	ErrEmptyInput = errors.New("empty input")
)

// Usage returns a usage error with the given message.
func Usage(msg string) error {
	return errors.Mark(errors.NewWithDepth(1, msg), ErrUsage)
}

// FileAccess returns a file access error reading msg. cause may be nil.
func FileAccess(cause error, msg string) error {
	err := errors.NewWithDepth(1, msg)
	if cause != nil {
		err = errors.WithSecondaryError(err, cause)
	}
	return errors.Mark(err, ErrFileAccess)
}

// EmptyInput returns an empty input error reading msg.
func EmptyInput(msg string) error {
	return errors.Mark(errors.NewWithDepth(1, msg), ErrEmptyInput)
}
