package router

// Domain represents the topic area a free-text message belongs to.
type Domain string

const (
	DomainWallet      Domain = "WALLET"
	DomainTokenLaunch Domain = "TOKEN_LAUNCH"
	DomainCrypto      Domain = "CRYPTO_ANALYSIS"
	DomainPets        Domain = "PET_ADOPTION"
	DomainWeather     Domain = "WEATHER"
	DomainGeneric     Domain = "GENERIC"
)

// RouteResult is the routing decision for one message. There is no
// numeric confidence: the fixed evaluation order of the domains is the
// tie-break, so financial wording beats weather wording when both match
// (tickers like SOL collide with place names).
type RouteResult struct {
	Domain  Domain
	Matched string // name of the pattern group that fired, for diagnostics
}
