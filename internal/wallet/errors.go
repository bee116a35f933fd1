package wallet

import "errors"

// Domain-specific errors for the wallet package.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownToken      = errors.New("token not held in wallet")
)
