package extract

// Defaults applied during result assembly when the user omits a value.
const (
	// DefaultForecastDays is used when a forecast request names no horizon.
	DefaultForecastDays = 5

	// MaxForecastAPIDays bounds the raw forecast request.
	MaxForecastAPIDays = 14

	// MaxDetailedForecastDays bounds the multi-day textual forecast.
	MaxDetailedForecastDays = 10

	// DefaultSearchLimit caps pet search results.
	DefaultSearchLimit = 5

	// DefaultSearchRadiusMiles is the pet search distance default.
	DefaultSearchRadiusMiles = 100
)
