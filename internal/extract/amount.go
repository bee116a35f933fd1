package extract

import (
	"math"
	"regexp"
	"strconv"
)

var (
	// amountTokenPattern matches a signed decimal followed by a word
	// token symbol. The sign is captured so "-5 SOL" is rejected as an
	// invalid amount instead of silently reading as 5.
	amountTokenPattern = regexp.MustCompile(`(?i)(-?\d+(?:\.\d+)?)\s+\$?([A-Za-z][A-Za-z0-9]{1,9})\b`)

	swapPairPattern = regexp.MustCompile(`(?i)(-?\d+(?:\.\d+)?)\s+\$?([A-Za-z0-9]{2,})\s+to\s+\$?([A-Za-z0-9]{2,})\b`)
)

// ParseTokenAmount extracts an amount/token pair for buy, sell and quote
// commands. A missing pair yields ErrNoAmount (caller shows usage); an
// amount that is not finite and positive yields ErrInvalidAmount (caller
// shows a validation message, never a default).
func ParseTokenAmount(text string) (TokenAmount, error) {
	m := amountTokenPattern.FindStringSubmatch(text)
	if m == nil {
		return TokenAmount{}, ErrNoAmount
	}
	amount, err := strconv.ParseFloat(m[1], 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return TokenAmount{}, ErrInvalidAmount
	}
	return TokenAmount{
		Amount: amount,
		Token:  NormalizeToken(m[2]),
	}, nil
}

// ParseSwapPair extracts the two-sided "<amount> <from> to <to>" form
// used by the swap quote display command.
func ParseSwapPair(text string) (SwapPair, error) {
	m := swapPairPattern.FindStringSubmatch(text)
	if m == nil {
		return SwapPair{}, ErrNoAmount
	}
	amount, err := strconv.ParseFloat(m[1], 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return SwapPair{}, ErrInvalidAmount
	}
	return SwapPair{
		Amount:    amount,
		FromToken: NormalizeToken(m[2]),
		ToToken:   NormalizeToken(m[3]),
	}, nil
}
