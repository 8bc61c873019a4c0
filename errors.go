package dsum

import "github.com/ghettovoice/dsum/internal/errorutil"

// Error represents a dsum error.
// See [errorutil.Error].
type Error = errorutil.Error

// Common errors.
const (
	ErrInvalidArgument = errorutil.ErrInvalidArgument
)

// Parse errors.
const (
	// ErrEmptyInput is returned when parsing an empty input.
	ErrEmptyInput Error = "empty input"
	// ErrMalformedInput is returned when the input does not match the sum grammar.
	ErrMalformedInput Error = "malformed input"
	// ErrUnknownTag is returned when the parsed tag name is not registered in the family.
	ErrUnknownTag Error = "unknown tag"
)

// Construction errors.
const (
	// ErrCannotLift is returned when the tag's codec cannot lift the element type
	// into the payload type.
	ErrCannotLift Error = "cannot lift value"
)
