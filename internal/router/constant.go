package router

// Log prefixes
const (
	LogPrefixRoute = "internal.router.Route"
)

// Pattern group names reported in RouteResult.Matched.
const (
	MatchedWalletIntent = "wallet-intent"
	MatchedTokenLaunch  = "token-launch"
	MatchedCryptoTerms  = "crypto-analysis"
	MatchedPetAdoption  = "pet-adoption"
	MatchedWeatherTerms = "weather-terms"
	MatchedNone         = "fallback"
)
