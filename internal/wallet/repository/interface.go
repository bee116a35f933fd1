package repository

import "context"

// Transfer is one executed ledger movement.
type Transfer struct {
	TxID      string
	Token     string
	Amount    float64
	Recipient string
}

// Ledger is the storage interface for simulated wallet balances. Every
// user starts from the same seeded holdings the first time they are
// touched.
type Ledger interface {
	// Balances returns the user's holdings by token symbol.
	Balances(ctx context.Context, userID string) (map[string]float64, error)

	// Debit removes amount of token, failing with
	// wallet.ErrInsufficientFunds or wallet.ErrUnknownToken.
	Debit(ctx context.Context, userID, token string, amount float64) error

	// Credit adds amount of token, creating the holding if absent.
	Credit(ctx context.Context, userID, token string, amount float64) error

	// RecordTransfer debits the token and logs the outgoing transfer,
	// returning the generated transaction ID.
	RecordTransfer(ctx context.Context, userID, token string, amount float64, recipient string) (string, error)

	// History lists the user's transfers, newest first.
	History(ctx context.Context, userID string) ([]Transfer, error)
}
