package transfer

import (
	"errors"
	"fmt"
)

var (
	// ErrNotOpen is returned when fields are transferred before Open.
	ErrNotOpen = errors.New("transfer: session not open")

	// ErrAlreadyOpen is returned when Open is called on an open session.
	ErrAlreadyOpen = errors.New("transfer: session already open")

	// ErrClosed is returned when a closed session is used or reopened.
	ErrClosed = errors.New("transfer: session closed")

	// ErrUnsupportedVersion is returned by Load when stored data is newer
	// than the entity supports.
	ErrUnsupportedVersion = errors.New("transfer: unsupported version")

	// ErrTooLong is returned when a variable-length field exceeds its
	// length prefix.
	ErrTooLong = errors.New("transfer: field too long")

	// ErrInvalidIdentifier is returned when a file-backed session is opened
	// with an identifier that is not a plain file name.
	ErrInvalidIdentifier = errors.New("transfer: invalid identifier")
)

// ResourceError reports a failure of the stream or file behind a Save or
// Load session.
type ResourceError struct {
	Op         string
	Identifier string
	Err        error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("transfer: %s %q: %v", e.Op, e.Identifier, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}
