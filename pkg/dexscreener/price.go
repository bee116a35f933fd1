package dexscreener

import (
	"context"
	"strconv"
	"strings"
)

// PriceUSD returns the USD price from the deepest-liquidity pair whose
// base symbol matches. The second return is false when no pair matches
// or the price field does not parse.
func (c *Client) PriceUSD(ctx context.Context, symbol string) (float64, bool, error) {
	resp, err := c.SearchPairs(ctx, symbol)
	if err != nil {
		return 0, false, err
	}

	var best *Pair
	for i := range resp.Pairs {
		p := &resp.Pairs[i]
		if !strings.EqualFold(p.BaseToken.Symbol, symbol) {
			continue
		}
		if best == nil || p.Liquidity.USD > best.Liquidity.USD {
			best = p
		}
	}
	if best == nil {
		return 0, false, nil
	}

	price, err := strconv.ParseFloat(best.PriceUSD, 64)
	if err != nil || price <= 0 {
		return 0, false, nil
	}
	return price, true, nil
}
