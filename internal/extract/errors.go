package extract

import "errors"

var (
	// ErrNoAmount means the message contained no amount/token pair at all.
	// Callers respond with usage help.
	ErrNoAmount = errors.New("no amount found in message")

	// ErrInvalidAmount means an amount was present but is zero, negative
	// or otherwise unusable. This is a validation failure surfaced to the
	// user, never silently defaulted.
	ErrInvalidAmount = errors.New("amount must be a positive number")
)
