package weather

import (
	"context"

	"conversational-assistant/internal/model"
)

// UseCase defines the business logic interface for the weather domain.
type UseCase interface {
	// Current reports live conditions for the location named in the query,
	// falling back to the session's last location.
	Current(ctx context.Context, sc model.Scope, input QueryInput) (Reply, error)

	// Forecast reports a multi-day outlook. Day counts are clamped to the
	// provider's supported range, never rejected.
	Forecast(ctx context.Context, sc model.Scope, input QueryInput) (Reply, error)

	// Astronomy reports sunrise, sunset and moon data for today.
	Astronomy(ctx context.Context, sc model.Scope, input QueryInput) (Reply, error)

	// AirQuality reports pollutant levels and the US EPA index.
	AirQuality(ctx context.Context, sc model.Scope, input QueryInput) (Reply, error)

	// FreeText handles a routed weather message without an explicit
	// command, choosing the operation from the wording.
	FreeText(ctx context.Context, sc model.Scope, input QueryInput) (Reply, error)
}
