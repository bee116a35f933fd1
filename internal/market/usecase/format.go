package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"conversational-assistant/internal/extract"
	"conversational-assistant/pkg/dexscreener"
)

func formatPrice(pair *dexscreener.Pair) string {
	var b strings.Builder
	fmt.Fprintf(&b, "💰 *%s/%s* on %s (%s)\n", pair.BaseToken.Symbol, pair.QuoteToken.Symbol, pair.DexID, pair.ChainID)
	fmt.Fprintf(&b, "Price: $%s (%+.2f%% 24h)", pair.PriceUSD, pair.PriceChange.H24)
	return b.String()
}

func formatAnalysis(pair *dexscreener.Pair) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 *%s/%s* on %s (%s)\n", pair.BaseToken.Symbol, pair.QuoteToken.Symbol, pair.DexID, pair.ChainID)
	fmt.Fprintf(&b, "Price: $%s\n", pair.PriceUSD)
	fmt.Fprintf(&b, "Change: %+.2f%% 1h, %+.2f%% 24h\n", pair.PriceChange.H1, pair.PriceChange.H24)
	fmt.Fprintf(&b, "Volume 24h: $%s\n", compactUSD(pair.Volume.H24))
	fmt.Fprintf(&b, "Liquidity: $%s\n", compactUSD(pair.Liquidity.USD))
	if pair.MarketCap > 0 {
		fmt.Fprintf(&b, "Market cap: $%s\n", compactUSD(pair.MarketCap))
	}
	fmt.Fprintf(&b, "Txns 24h: %d buys / %d sells", pair.Txns.H24.Buys, pair.Txns.H24.Sells)
	return b.String()
}

func formatTradeQuote(side string, ta extract.TokenAmount, pair *dexscreener.Pair) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🧾 *%s quote* (simulated, nothing was executed)\n", side)
	fmt.Fprintf(&b, "%g %s at $%s", ta.Amount, ta.Token, pair.PriceUSD)
	if price, err := strconv.ParseFloat(pair.PriceUSD, 64); err == nil {
		fmt.Fprintf(&b, " ≈ $%.2f", ta.Amount*price)
	}
	return b.String()
}

func formatSwapQuote(sp extract.SwapPair, fromPrice, toPrice float64) string {
	out := sp.Amount * fromPrice / toPrice
	var b strings.Builder
	fmt.Fprintf(&b, "🔁 *Swap quote* (indicative, nothing was executed)\n")
	fmt.Fprintf(&b, "%g %s ≈ %.6g %s\n", sp.Amount, sp.FromToken, out, sp.ToToken)
	fmt.Fprintf(&b, "Rates: %s $%.6g, %s $%.6g", sp.FromToken, fromPrice, sp.ToToken, toPrice)
	return b.String()
}

func compactUSD(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.1fK", v/1e3)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
