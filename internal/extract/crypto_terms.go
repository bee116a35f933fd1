package extract

import (
	"regexp"
	"strings"
)

// mintToTicker maps well-known token mint addresses to their canonical
// ticker symbols. Any address-like token found in a message is looked up
// here before being treated as a token identifier.
var mintToTicker = map[string]string{
	"So11111111111111111111111111111111111111112":  "SOL",
	"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v": "USDC",
	"Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB": "USDT",
	"DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263": "BONK",
	"JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN":  "JUP",
	"EKpQGSJtjMFqKZ9KQanSqYXRcF8fBopzLHYxdM65zcjm": "WIF",
	"4k3Dyjzvzp8eMZWUXbBCjEvwSkkk59S5iCNLY3QrkX6R": "RAY",
}

// knownTickers are symbols the assistant recognizes as cryptocurrencies.
// A location candidate equal to one of these is vetoed.
var knownTickers = map[string]struct{}{
	"sol": {}, "btc": {}, "eth": {}, "usdc": {}, "usdt": {}, "bonk": {},
	"wif": {}, "jup": {}, "ray": {}, "doge": {}, "pepe": {}, "shib": {},
	"bnb": {}, "xrp": {}, "ada": {}, "wen": {}, "popcat": {},
}

// cryptoContextPatterns detect financial wording that disqualifies a
// message from weather/pet location extraction. "best buying level for
// SOL" must not become a location query for a place named Sol. There is
// deliberately no guard in the other direction: weather terms do not
// suppress crypto extraction.
var cryptoContextPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\$[a-z0-9]{2,10}\b`),
	regexp.MustCompile(`(?i)\b(?:price|support|resistance|entry|buying level|market cap|chart|liquidity|volume|ticker|token|crypto|coin|dex|pump\s?\.?fun|bonding curve)\b`),
	regexp.MustCompile(`\b[1-9A-HJ-NP-Za-km-z]{32,44}\b`), // base58 address
	tickerMentionPattern(),
}

func tickerMentionPattern() *regexp.Regexp {
	tickers := make([]string, 0, len(knownTickers))
	for t := range knownTickers {
		tickers = append(tickers, t)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(tickers, "|") + `)\b`)
}

// HasCryptoContext reports whether the message contains crypto-specific
// wording, ticker mentions, or address-like tokens.
func HasCryptoContext(text string) bool {
	for _, re := range cryptoContextPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// IsCryptoTicker reports whether the word is a recognized ticker symbol.
func IsCryptoTicker(word string) bool {
	_, ok := knownTickers[strings.ToLower(strings.TrimSpace(word))]
	return ok
}

// NormalizeToken canonicalizes a token identifier. Mint-address-like
// strings (longer than 10 alphanumeric chars) are resolved through the
// static address table when known; short identifiers are upper-cased
// ticker style. Unknown addresses pass through unchanged.
func NormalizeToken(token string) string {
	token = strings.TrimSpace(strings.TrimPrefix(token, "$"))
	if len(token) > 10 {
		if ticker, ok := mintToTicker[token]; ok {
			return ticker
		}
		return token
	}
	return strings.ToUpper(token)
}
