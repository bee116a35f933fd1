package wallet

import (
	"context"

	"conversational-assistant/internal/model"
)

// UseCase defines the business logic interface for wallet operations.
// Everything is simulated against an in-memory ledger; no transaction
// ever leaves the process.
type UseCase interface {
	// Send executes a simulated transfer. The parse is all-or-nothing:
	// amount, token and recipient must all be present or the reply is
	// usage help, never a partial transaction.
	Send(ctx context.Context, sc model.Scope, input QueryInput) (Reply, error)

	// Swap executes a simulated conversion at current market rates.
	Swap(ctx context.Context, sc model.Scope, input QueryInput) (Reply, error)

	// Balance lists the user's simulated holdings.
	Balance(ctx context.Context, sc model.Scope) (Reply, error)

	// History lists the user's executed transfers, newest first.
	History(ctx context.Context, sc model.Scope) (Reply, error)

	// FreeText handles routed wallet chatter without an explicit command.
	FreeText(ctx context.Context, sc model.Scope, input QueryInput) (Reply, error)
}
