package dateformat

import "errors"

var (
	// ErrUnknownFormatKey is returned when no rule is registered under a key.
	ErrUnknownFormatKey = errors.New("unknown format key")
	// ErrInvalidValue is returned when the value to format is not a usable time.
	ErrInvalidValue = errors.New("invalid date/time value")
	// ErrEmptyKey is returned when registering under an empty key.
	ErrEmptyKey = errors.New("format key must not be empty")
	// ErrNilRule is returned when registering a nil rule.
	ErrNilRule = errors.New("format rule must not be nil")
)
