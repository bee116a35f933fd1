package extract

import (
	"regexp"
	"strings"
)

var (
	// transferPattern: verb, decimal amount, token (ticker or mint
	// address), "to"/"toward(s)", then a recipient address of at least
	// 32 alphanumeric characters.
	transferPattern = regexp.MustCompile(`(?i)\b(?:send|transfer|pay)\s+(\d+(?:\.\d+)?)\s+\$?([A-Za-z0-9]{2,})\s+(?:to|towards?)\s+([A-Za-z0-9]{32,})`)

	// transferLoosePattern tolerates a missing "to" keyword.
	transferLoosePattern = regexp.MustCompile(`(?i)\b(?:send|transfer|pay)\s+(\d+(?:\.\d+)?)\s+\$?([A-Za-z0-9]{2,})\s+([A-Za-z0-9]{32,})`)

	swapPattern = regexp.MustCompile(`(?i)\b(?:swap|exchange|convert)\s+(\d+(?:\.\d+)?)\s+\$?([A-Za-z0-9]{2,})\s+(?:to|for|into)\s+\$?([A-Za-z0-9]{2,})\b`)
)

// ParseTransfer extracts a wallet transfer from free text or /send
// parameters. The result is all-or-nothing: on any miss it returns the
// zero value and false, and the caller shows usage help. Known mint
// addresses in the token position are rewritten to their ticker.
func ParseTransfer(text string) (TransferParams, bool) {
	m := transferPattern.FindStringSubmatch(text)
	if m == nil {
		m = transferLoosePattern.FindStringSubmatch(text)
		// The loose form can misread "send 2 to <addr>" as a transfer of
		// the token "to". That message has no token at all.
		if m != nil && isTransferKeyword(m[2]) {
			return TransferParams{}, false
		}
	}
	if m == nil {
		return TransferParams{}, false
	}
	return TransferParams{
		Amount:    m[1],
		Token:     NormalizeToken(m[2]),
		Recipient: m[3],
	}, true
}

func isTransferKeyword(word string) bool {
	switch strings.ToLower(word) {
	case "to", "toward", "towards":
		return true
	}
	return false
}

// ParseSwap extracts a token swap from free text or /swap parameters.
// Mint-address normalization applies to both sides independently.
func ParseSwap(text string) (SwapParams, bool) {
	m := swapPattern.FindStringSubmatch(text)
	if m == nil {
		return SwapParams{}, false
	}
	return SwapParams{
		Amount:    m[1],
		FromToken: NormalizeToken(m[2]),
		ToToken:   NormalizeToken(m[3]),
	}, true
}
