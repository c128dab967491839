// Package rules holds the error taxonomy shared by the dice and game packages.
//
// Specific failures wrap one of these sentinels, so callers can classify an
// error with errors.Is without knowing which package produced it.
package rules

import "errors"

var (
	// ErrInvalidArgument marks out-of-domain input rejected at construction or validation time.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrState marks an operation that is not valid for the current value, such as
	// reading an absent optional field.
	ErrState = errors.New("invalid state")

	// ErrNotImplemented marks an operation that is declared but not available yet.
	ErrNotImplemented = errors.New("not implemented")
)
