package extract

import (
	"regexp"
	"strconv"
)

var (
	// explicitDaysPattern matches "<N> day(s)" for the horizons the
	// forecast provider supports. Longer numbers come first so "14"
	// is not read as "1".
	explicitDaysPattern = regexp.MustCompile(`(?i)\b(14|10|[3-9])[ -]?days?\b`)
	nextWeekPattern     = regexp.MustCompile(`(?i)\bnext week\b`)
	extendedPattern     = regexp.MustCompile(`(?i)\b(?:extended|long[ -]term)\b`)
)

// ExtractForecastDays finds an explicit forecast horizon in the message.
// "next week" reads as 7 days and "extended"/"long-term" as 10. Returns
// false when no horizon is named, in which case callers apply their own
// default (DefaultForecastDays for general forecasts).
func ExtractForecastDays(text string) (int, bool) {
	if m := explicitDaysPattern.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return n, true
		}
	}
	if nextWeekPattern.MatchString(text) {
		return 7, true
	}
	if extendedPattern.MatchString(text) {
		return 10, true
	}
	return 0, false
}

// ClampDays bounds a day count to [1, max]. Out-of-range requests are
// clamped rather than rejected: asking for a 999-day forecast yields the
// longest one available, not an error.
func ClampDays(days, max int) int {
	if days < 1 {
		return 1
	}
	if days > max {
		return max
	}
	return days
}
