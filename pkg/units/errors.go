package units

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is reported when a text is not a valid number.
	ErrSyntax = errors.New("not a valid number")
	// ErrOutOfRange is reported when a number is valid but outside of
	// the bounds allowed by the type.
	ErrOutOfRange = errors.New("value out of range")
	// ErrLengthMismatch is reported by batch helpers on collections of
	// different sizes.
	ErrLengthMismatch = errors.New("length mismatch")
)

// ParseError describes a failed conversion from text to a unit value.
type ParseError struct {
	Type  string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %q as %s: %s", e.Input, e.Type, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
