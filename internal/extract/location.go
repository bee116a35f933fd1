package extract

import (
	"regexp"
	"strings"
)

// weatherKeywords introduce a location in weather-flavored utterances.
const weatherKeywords = `weather|temperature|forecast|rain|snow|sunny|cloudy|humidity|wind|sunrise|sunset|astronomy`

// locationRules is the ordered cascade for pulling a place name out of
// free text. Earlier rules are more specific; the bare-input rule only
// fires when the whole message looks like nothing but a place name.
// The ZIP rule sits first because an explicit ZIP is returned verbatim
// independent of any phrase structure.
var locationRules = []rule{
	{
		name:  "zip-code",
		re:    regexp.MustCompile(`\b(\d{5})\b`),
		group: 1,
	},
	{
		name:  "keyword-preposition",
		re:    regexp.MustCompile(`(?i)\b(?:` + weatherKeywords + `)\b[^?!.]*?\b(?:in|at|near|for)\s+([A-Za-z][A-Za-z ,.'-]*)`),
		group: 1,
	},
	{
		name:  "location-before-keyword",
		re:    regexp.MustCompile(`(?i)^\s*(?:the\s+)?([A-Za-z][A-Za-z ]*?)\s+(?:weather|forecast|temperature)\b`),
		group: 1,
	},
	{
		name:  "keyword-tail",
		re:    regexp.MustCompile(`(?i)\b(?:weather|forecast|temperature)\s+(?:in|at|near|for)?\s*([^?!.]+)`),
		group: 1,
	},
	{
		name:  "city-state",
		re:    regexp.MustCompile(`\b([A-Z][A-Za-z]+(?: [A-Z][A-Za-z]+)?,\s*[A-Z]{2})\b`),
		group: 1,
	},
	{
		name:  "preposition-tail",
		re:    regexp.MustCompile(`(?i)\b(?:in|near|around)\s+([A-Za-z][A-Za-z ,.'-]*)`),
		group: 1,
	},
	{
		name:  "bare-place",
		re:    regexp.MustCompile(`^\s*([A-Za-z][A-Za-z ,]{3,})\s*$`),
		group: 1,
	},
}

// ExtractLocation pulls a place name or 5-digit ZIP out of a weather or
// pet style query. It returns false when the message carries crypto
// context: tickers such as SOL collide with place names, so financial
// wording vetoes location extraction entirely.
func ExtractLocation(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	if HasCryptoContext(text) {
		return "", false
	}

	// Day-count phrases are never part of a place name; stripping them
	// up front lets "Tokyo 14 days" resolve through the bare-place rule.
	text = strings.TrimSpace(dayPhrasePattern.ReplaceAllString(text, " "))

	loc, _, ok := firstAccepted(locationRules, text, acceptLocation)
	if !ok {
		return "", false
	}
	return cleanLocation(loc), true
}

// acceptLocation rejects candidates that are stopwords, question
// fragments, crypto tickers, or too short to name a place.
func acceptLocation(s string) bool {
	s = cleanLocation(s)
	if len(s) < 3 {
		return false
	}
	if IsCommonWord(s) || IsQuestionWord(s) || IsCryptoTicker(s) {
		return false
	}
	// A capture opening with "what is the ..." or similar is a
	// mis-capture of the question, not a place name.
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return false
	}
	if IsQuestionWord(fields[0]) || IsCommonWord(fields[0]) {
		return false
	}
	return true
}

// trailingNoisePattern strips temporal and politeness tails so
// "Tokyo next week" and "Denver please" resolve to the bare place.
var trailingNoisePattern = regexp.MustCompile(`(?i)\s+(?:today|tonight|tomorrow|now|please|thanks|next week|this week)\s*$`)

var dayPhrasePattern = regexp.MustCompile(`(?i)\b(?:for\s+)?\d{1,2}[ -]?days?\b`)

func cleanLocation(s string) string {
	s = strings.Trim(s, " \t,.?!'\"")
	for {
		trimmed := trailingNoisePattern.ReplaceAllString(s, "")
		if trimmed == s {
			return s
		}
		s = strings.Trim(trimmed, " \t,.?!'\"")
	}
}
