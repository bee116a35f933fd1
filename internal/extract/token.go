package extract

import (
	"regexp"
	"strings"
)

var (
	dollarTickerPattern = regexp.MustCompile(`\$([A-Za-z0-9]{2,10})\b`)
	mintAddressPattern  = regexp.MustCompile(`\b([1-9A-HJ-NP-Za-km-z]{32,44})\b`)
)

// ExtractToken finds a token mention in free text: a $-prefixed symbol,
// a mint address (normalized to its ticker when known), or a bare known
// ticker word, in that order of preference.
func ExtractToken(text string) (string, bool) {
	if m := dollarTickerPattern.FindStringSubmatch(text); m != nil {
		return NormalizeToken(m[1]), true
	}
	if m := mintAddressPattern.FindStringSubmatch(text); m != nil {
		return NormalizeToken(m[1]), true
	}
	for _, f := range strings.Fields(text) {
		f = strings.Trim(f, ",.?!'\"")
		if IsCryptoTicker(f) {
			return NormalizeToken(f), true
		}
	}
	return "", false
}
