package market

import (
	"context"

	"conversational-assistant/internal/model"
)

// UseCase defines the business logic interface for the market domain:
// token prices, pair analysis, and simulated trade quotes.
type UseCase interface {
	// Price quotes the current price for a token named in the query or
	// remembered from the session.
	Price(ctx context.Context, sc model.Scope, input QueryInput) (Reply, error)

	// Analyze reports price action, volume, liquidity and transaction
	// counts for a token's top pair.
	Analyze(ctx context.Context, sc model.Scope, input QueryInput) (Reply, error)

	// Buy quotes a simulated buy. The amount must parse and be positive;
	// a bad amount yields a validation reply, never a default.
	Buy(ctx context.Context, sc model.Scope, input QueryInput) (Reply, error)

	// Sell quotes a simulated sell with the same amount rules as Buy.
	Sell(ctx context.Context, sc model.Scope, input QueryInput) (Reply, error)

	// SwapInfo quotes an "<amount> <from> to <to>" conversion at current
	// prices without executing anything.
	SwapInfo(ctx context.Context, sc model.Scope, input QueryInput) (Reply, error)

	// FreeText handles routed crypto chatter and the generic fallback.
	FreeText(ctx context.Context, sc model.Scope, input QueryInput) (Reply, error)
}
