package usecase

// Log prefixes
const (
	LogPrefixCurrent   = "internal.weather.Current"
	LogPrefixForecast  = "internal.weather.Forecast"
	LogPrefixAstronomy = "internal.weather.Astronomy"
	LogPrefixAQI       = "internal.weather.AirQuality"
)

const msgAskLocation = "Which location? Try a city name, \"City, ST\", or a ZIP code."
