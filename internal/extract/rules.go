package extract

import (
	"regexp"
	"strings"
)

// rule is one step in an ordered extraction cascade. Rules are evaluated
// top to bottom and the first candidate that passes the accept filter
// wins, which keeps the priority policy explicit and testable per rule.
type rule struct {
	name string
	re   *regexp.Regexp
	// group is the submatch index holding the candidate value.
	group int
}

func (r rule) apply(text string) (string, bool) {
	m := r.re.FindStringSubmatch(text)
	if m == nil || r.group >= len(m) {
		return "", false
	}
	v := strings.TrimSpace(m[r.group])
	if v == "" {
		return "", false
	}
	return v, true
}

// firstAccepted runs the cascade and returns the first candidate the
// filter accepts, along with the name of the rule that produced it.
func firstAccepted(rules []rule, text string, accept func(string) bool) (value, ruleName string, ok bool) {
	for _, r := range rules {
		if v, matched := r.apply(text); matched && accept(v) {
			return v, r.name, true
		}
	}
	return "", "", false
}
