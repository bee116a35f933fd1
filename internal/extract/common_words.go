package extract

import "strings"

// commonWords are low-information words that must never stand alone as an
// extracted entity: articles, pronouns, filler, and the domain keywords
// themselves ("weather" is never a place).
var commonWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "if": {},
	"it": {}, "its": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"i": {}, "me": {}, "my": {}, "mine": {},
	"you": {}, "your": {}, "yours": {},
	"we": {}, "us": {}, "our": {}, "ours": {},
	"they": {}, "them": {}, "their": {},
	"he": {}, "she": {}, "him": {}, "her": {},
	"in": {}, "on": {}, "at": {}, "of": {}, "for": {}, "to": {}, "from": {},
	"with": {}, "about": {}, "as": {}, "by": {}, "near": {}, "around": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"have": {}, "has": {}, "had": {},
	"get": {}, "got": {}, "give": {}, "show": {}, "tell": {}, "find": {},
	"need": {}, "want": {}, "know": {}, "see": {}, "look": {}, "looking": {},
	"please": {}, "thanks": {}, "thank": {}, "hello": {}, "hi": {}, "hey": {},
	"today": {}, "now": {}, "here": {}, "there": {}, "tomorrow": {},
	"info": {}, "information": {}, "more": {}, "some": {}, "any": {}, "all": {},
	"good": {}, "best": {}, "great": {}, "like": {}, "just": {}, "really": {},
	"weather": {}, "forecast": {}, "temperature": {}, "current": {}, "currently": {},
}

// questionWords open interrogative sentences; a location candidate
// starting with one of these is a mis-capture, not a place.
var questionWords = map[string]struct{}{
	"what": {}, "whats": {}, "when": {}, "where": {}, "who": {}, "whom": {},
	"whose": {}, "why": {}, "which": {}, "how": {},
	"can": {}, "could": {}, "will": {}, "would": {}, "should": {},
	"do": {}, "does": {}, "did": {},
}

// IsCommonWord reports whether s (case-insensitive) is a stopword or
// domain-neutral filler word.
func IsCommonWord(s string) bool {
	_, ok := commonWords[normalizeWord(s)]
	return ok
}

// IsQuestionWord reports whether s (case-insensitive) is an
// interrogative or auxiliary question opener.
func IsQuestionWord(s string) bool {
	_, ok := questionWords[normalizeWord(s)]
	return ok
}

func normalizeWord(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	// "what's" / "what’s" count as their bare form
	s = strings.NewReplacer("'s", "", "’s", "").Replace(s)
	return s
}
