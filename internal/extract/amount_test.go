package extract_test

import (
	"errors"
	"testing"

	"conversational-assistant/internal/extract"
)

func TestParseTokenAmount(t *testing.T) {
	t.Run("Valid Pair", func(t *testing.T) {
		got, err := extract.ParseTokenAmount("buy 10.5 BONK")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Amount != 10.5 || got.Token != "BONK" {
			t.Errorf("got %+v, want {10.5 BONK}", got)
		}
	})

	t.Run("Dollar Prefixed Token", func(t *testing.T) {
		got, err := extract.ParseTokenAmount("sell 3 $wif")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Token != "WIF" {
			t.Errorf("token = %q, want WIF", got.Token)
		}
	})

	t.Run("Zero Amount Rejected", func(t *testing.T) {
		_, err := extract.ParseTokenAmount("buy 0 SOL")
		if !errors.Is(err, extract.ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("Negative Amount Rejected", func(t *testing.T) {
		_, err := extract.ParseTokenAmount("sell -5 SOL")
		if !errors.Is(err, extract.ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("No Pair", func(t *testing.T) {
		_, err := extract.ParseTokenAmount("buy some tokens")
		if !errors.Is(err, extract.ErrNoAmount) {
			t.Errorf("expected ErrNoAmount, got %v", err)
		}
	})
}

func TestParseSwapPair(t *testing.T) {
	t.Run("Valid Pair", func(t *testing.T) {
		got, err := extract.ParseSwapPair("quote 2 SOL to USDC")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Amount != 2 || got.FromToken != "SOL" || got.ToToken != "USDC" {
			t.Errorf("got %+v, want {2 SOL USDC}", got)
		}
	})

	t.Run("Missing To Separator", func(t *testing.T) {
		_, err := extract.ParseSwapPair("quote 2 SOL USDC")
		if !errors.Is(err, extract.ErrNoAmount) {
			t.Errorf("expected ErrNoAmount, got %v", err)
		}
	})

	t.Run("Non Positive Amount", func(t *testing.T) {
		_, err := extract.ParseSwapPair("quote 0 SOL to USDC")
		if !errors.Is(err, extract.ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
	})
}

func TestNormalizeToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sol", "SOL"},
		{"$bonk", "BONK"},
		{"$usdc", "USDC"},
		{"DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263", "BONK"},
		{"So11111111111111111111111111111111111111112", "SOL"},
		{"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", "USDC"},
		// Unknown addresses pass through untouched.
		{"Fake11111111111111111111111111111111111111", "Fake11111111111111111111111111111111111111"},
	}

	for _, tc := range tests {
		if got := extract.NormalizeToken(tc.in); got != tc.want {
			t.Errorf("NormalizeToken(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestHasCryptoContext(t *testing.T) {
	positives := []string{
		"best buying level for SOL",
		"$PEPE to the moon",
		"support and resistance levels",
		"check 5YNmS1R9nNSCDzb5a7mMJ1dwK9uHeAAF4CmPEwKgVWr8",
		"what's the price today",
	}
	for _, s := range positives {
		if !extract.HasCryptoContext(s) {
			t.Errorf("HasCryptoContext(%q) = false, want true", s)
		}
	}

	negatives := []string{
		"weather in Tokyo",
		"puppies near Seattle",
		"what a sunny day",
	}
	for _, s := range negatives {
		if extract.HasCryptoContext(s) {
			t.Errorf("HasCryptoContext(%q) = true, want false", s)
		}
	}
}
