package router

import (
	"context"
	"regexp"
)

// domainMatcher is one domain's predicate: an OR over phrase patterns.
type domainMatcher struct {
	domain   Domain
	name     string
	patterns []*regexp.Regexp
}

func (m domainMatcher) matches(message string) bool {
	for _, re := range m.patterns {
		if re.MatchString(message) {
			return true
		}
	}
	return false
}

// domainMatchers is evaluated in order; the first match wins. Wallet and
// token intents are checked before weather on purpose: "send 1 SOL" must
// never be read as a question about a place named Sol.
var domainMatchers = []domainMatcher{
	{
		domain: DomainWallet,
		name:   MatchedWalletIntent,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:send|transfer|pay)\s+\d+(?:\.\d+)?\s`),
			regexp.MustCompile(`(?i)\b(?:swap|exchange|convert)\s+\d+(?:\.\d+)?\s`),
			regexp.MustCompile(`(?i)\b(?:my|check)\s+wallet\b`),
			regexp.MustCompile(`(?i)\bwallet\s+(?:balance|address)\b`),
			regexp.MustCompile(`(?i)\bbalance\b`),
		},
	},
	{
		domain: DomainTokenLaunch,
		name:   MatchedTokenLaunch,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bpump\s?\.?\s?fun\b`),
			regexp.MustCompile(`(?i)\bpump\b`),
			regexp.MustCompile(`(?i)\bbonding\s+curve\b`),
			regexp.MustCompile(`(?i)\b(?:create|launch|mint)\b[^?!.]*\b(?:token|coin|memecoin)\b`),
		},
	},
	{
		domain: DomainCrypto,
		name:   MatchedCryptoTerms,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\$[a-z0-9]{2,10}\b`),
			regexp.MustCompile(`(?i)\b(?:price|chart|support|resistance|entry|buying level|market cap|volume|liquidity)\b`),
			regexp.MustCompile(`(?i)\b(?:sol|btc|eth|usdc|usdt|bonk|wif|jup|ray|doge|pepe|shib)\b`),
			regexp.MustCompile(`(?i)\b(?:buy|sell)\b[^?!.]*\b(?:token|coin)s?\b`),
			regexp.MustCompile(`\b[1-9A-HJ-NP-Za-km-z]{32,44}\b`),
		},
	},
	{
		domain: DomainPets,
		name:   MatchedPetAdoption,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:adopt(?:ion|able)?|rescue|shelter|petfinder|foster)\b`),
			regexp.MustCompile(`(?i)\b(?:pets?|puppy|puppies|dogs?|cats?|kittens?|bunny|bunnies|rabbits?|hamsters?|ferrets?)\b`),
			regexp.MustCompile(`(?i)\bgood\s+with\s+(?:kids|children|dogs|cats)\b`),
		},
	},
	{
		domain: DomainWeather,
		name:   MatchedWeatherTerms,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:weather|temperature|forecast|rain|raining|snow|snowing|sunny|cloudy|humidity|wind|windy|sunrise|sunset|astronomy|moon\s+phase|aqi|air\s+quality)\b`),
			regexp.MustCompile(`(?i)\b\d{1,2}[ -]?day\b`),
			regexp.MustCompile(`(?i)\bhow\s+(?:hot|cold|warm)\b`),
		},
	},
}

// Route classifies a free-text message into a domain. Messages that
// match no domain fall through to GENERIC, which the delivery layer
// forwards to the default analysis handler.
func (r *PatternRouter) Route(ctx context.Context, message string) RouteResult {
	for _, m := range r.domains {
		if m.matches(message) {
			r.l.Debugf(ctx, "%s: matched %s", LogPrefixRoute, m.name)
			return RouteResult{Domain: m.domain, Matched: m.name}
		}
	}
	r.l.Debugf(ctx, "%s: no domain matched, falling back to generic", LogPrefixRoute)
	return RouteResult{Domain: DomainGeneric, Matched: MatchedNone}
}
