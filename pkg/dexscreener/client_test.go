package dexscreener_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"conversational-assistant/pkg/dexscreener"
)

func TestClient_SearchPairs(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/search") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("q") == "NOPE" {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"schemaVersion": "1.0.0", "pairs": []}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"schemaVersion": "1.0.0",
			"pairs": [
				{
					"chainId": "solana",
					"dexId": "raydium",
					"pairAddress": "pair-addr-1",
					"baseToken": {"address": "So11111111111111111111111111111111111111112", "name": "Wrapped SOL", "symbol": "SOL"},
					"quoteToken": {"symbol": "USDC"},
					"priceUsd": "142.37",
					"volume": {"h24": 1234567.0},
					"priceChange": {"h24": -3.2},
					"liquidity": {"usd": 9876543.0},
					"marketCap": 66000000000
				}
			]
		}`))
	}))
	defer ts.Close()

	client := dexscreener.NewClient(600)
	client.SetAPIURL(ts.URL)

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.SearchPairs(context.Background(), "SOL")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Pairs) != 1 {
			t.Fatalf("expected 1 pair, got %d", len(resp.Pairs))
		}
		p := resp.Pairs[0]
		if p.BaseToken.Symbol != "SOL" {
			t.Errorf("symbol = %s, want SOL", p.BaseToken.Symbol)
		}
		if p.PriceUSD != "142.37" {
			t.Errorf("price = %s, want 142.37", p.PriceUSD)
		}
		if p.PriceChange.H24 != -3.2 {
			t.Errorf("price change = %v, want -3.2", p.PriceChange.H24)
		}
	})

	t.Run("No Results", func(t *testing.T) {
		resp, err := client.SearchPairs(context.Background(), "NOPE")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Pairs) != 0 {
			t.Errorf("expected no pairs, got %d", len(resp.Pairs))
		}
	})
}

func TestClient_TokenPairs(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/tokens/DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263") {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": "not found"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"schemaVersion": "1.0.0",
			"pairs": [{"chainId": "solana", "baseToken": {"symbol": "BONK"}, "priceUsd": "0.000031"}]
		}`))
	}))
	defer ts.Close()

	client := dexscreener.NewClient(600)
	client.SetAPIURL(ts.URL)

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.TokenPairs(context.Background(), "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Pairs) != 1 || resp.Pairs[0].BaseToken.Symbol != "BONK" {
			t.Errorf("unexpected pairs: %+v", resp.Pairs)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.TokenPairs(context.Background(), "unknown-mint")
		if err == nil {
			t.Fatal("expected error from 404 response")
		}
	})
}

func TestClient_RateLimiterHonorsContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"schemaVersion": "1.0.0", "pairs": []}`))
	}))
	defer ts.Close()

	// 1 request per minute with burst 1: the second call must wait, and
	// a cancelled context should abort that wait.
	client := dexscreener.NewClient(1)
	client.SetAPIURL(ts.URL)

	if _, err := client.SearchPairs(context.Background(), "SOL"); err != nil {
		t.Fatalf("first call should pass the limiter: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := client.SearchPairs(ctx, "SOL"); err == nil {
		t.Fatal("expected error when context is cancelled during limiter wait")
	}
}
