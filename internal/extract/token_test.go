package extract_test

import (
	"testing"

	"conversational-assistant/internal/extract"
)

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"Dollar Symbol", "$PEPE to the moon", "PEPE", true},
		{"Dollar Symbol Lowercase", "what about $wif", "WIF", true},
		{"Known Mint Address", "price of EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", "USDC", true},
		{"Unknown Mint Passthrough", "buy 9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin", "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin", true},
		{"Bare Ticker", "how is sol doing", "SOL", true},
		{"Bare Ticker Punctuation", "thoughts on wif?", "WIF", true},
		{"Dollar Wins Over Bare", "$BONK vs sol", "BONK", true},
		{"No Token", "weather in Tokyo", "", false},
		{"Empty", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := extract.ExtractToken(tc.input)
			if ok != tc.ok {
				t.Fatalf("ExtractToken(%q) ok = %v, want %v (got %q)", tc.input, ok, tc.ok, got)
			}
			if got != tc.want {
				t.Errorf("ExtractToken(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
