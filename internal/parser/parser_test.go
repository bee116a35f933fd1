package parser_test

import (
	"testing"

	"conversational-assistant/internal/parser"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantName   string
		wantParams string
	}{
		{"Plain Text", "what is the weather in Tokyo", "", ""},
		{"Empty Input", "", "", ""},
		{"Whitespace Only", "   ", "", ""},
		{"Bare Slash", "/", "", ""},
		{"Command No Args", "/help", "help", ""},
		{"Command With Args", "/foo a b c", "foo", "a b c"},
		{"Uppercase Command", "/WEATHER Tokyo", "weather", "Tokyo"},
		{"Mixed Case Command", "/SwAp 10 SOL to USDC", "swap", "10 SOL to USDC"},
		{"Extra Whitespace", "  /send   0.1   SOL  ", "send", "0.1 SOL"},
		{"Group Mention Suffix", "/weather@assistant_bot Tokyo", "weather", "Tokyo"},
		{"Slash Mid Sentence", "buy 1/2 of a token", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := parser.Parse(tc.input)
			if got.Name != tc.wantName {
				t.Errorf("Parse(%q).Name = %q, want %q", tc.input, got.Name, tc.wantName)
			}
			if got.Params != tc.wantParams {
				t.Errorf("Parse(%q).Params = %q, want %q", tc.input, got.Params, tc.wantParams)
			}
		})
	}
}

func TestIsCommand(t *testing.T) {
	if parser.Parse("hello").IsCommand() {
		t.Error("plain text should not be a command")
	}
	if !parser.Parse("/balance").IsCommand() {
		t.Error("/balance should be a command")
	}
}
