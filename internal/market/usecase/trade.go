package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"conversational-assistant/internal/extract"
	"conversational-assistant/internal/market"
	"conversational-assistant/internal/model"
)

// Buy quotes a simulated buy. A missing amount/token pair shows usage;
// a non-positive amount shows a validation message and nothing else.
func (uc *implUseCase) Buy(ctx context.Context, sc model.Scope, input market.QueryInput) (market.Reply, error) {
	return uc.quoteTrade(ctx, sc, input, "Buy", LogPrefixBuy, msgUsageBuy)
}

// Sell quotes a simulated sell with the same rules as Buy.
func (uc *implUseCase) Sell(ctx context.Context, sc model.Scope, input market.QueryInput) (market.Reply, error) {
	return uc.quoteTrade(ctx, sc, input, "Sell", LogPrefixSell, msgUsageSell)
}

func (uc *implUseCase) quoteTrade(ctx context.Context, sc model.Scope, input market.QueryInput, side, logPrefix, usage string) (market.Reply, error) {
	ta, err := extract.ParseTokenAmount(input.Text)
	if err != nil {
		if errors.Is(err, extract.ErrInvalidAmount) {
			return market.Reply{Text: msgInvalidAmount}, nil
		}
		return market.Reply{Text: usage}, nil
	}

	uc.l.Infof(ctx, "%s: user=%s amount=%v token=%s", logPrefix, sc.UserID, ta.Amount, ta.Token)

	pair, err := uc.topPair(ctx, ta.Token)
	if err != nil {
		uc.l.Errorf(ctx, "%s: provider call failed: %v", logPrefix, err)
		return market.Reply{}, err
	}
	if pair == nil {
		return market.Reply{Text: fmt.Sprintf(msgNoPairs, ta.Token)}, nil
	}

	uc.sessions.RememberToken(sc.UserID, ta.Token)
	return market.Reply{Text: formatTradeQuote(side, ta, pair)}, nil
}

// SwapInfo quotes an "<amount> <from> to <to>" conversion at current
// prices. Nothing is executed.
func (uc *implUseCase) SwapInfo(ctx context.Context, sc model.Scope, input market.QueryInput) (market.Reply, error) {
	sp, err := extract.ParseSwapPair(input.Text)
	if err != nil {
		if errors.Is(err, extract.ErrInvalidAmount) {
			return market.Reply{Text: msgInvalidAmount}, nil
		}
		return market.Reply{Text: msgUsageSwapInfo}, nil
	}

	uc.l.Infof(ctx, "%s: user=%s amount=%v from=%s to=%s", LogPrefixSwapInfo, sc.UserID, sp.Amount, sp.FromToken, sp.ToToken)

	fromPair, err := uc.topPair(ctx, sp.FromToken)
	if err != nil {
		uc.l.Errorf(ctx, "%s: provider call failed: %v", LogPrefixSwapInfo, err)
		return market.Reply{}, err
	}
	if fromPair == nil {
		return market.Reply{Text: fmt.Sprintf(msgNoPairs, sp.FromToken)}, nil
	}

	toPair, err := uc.topPair(ctx, sp.ToToken)
	if err != nil {
		uc.l.Errorf(ctx, "%s: provider call failed: %v", LogPrefixSwapInfo, err)
		return market.Reply{}, err
	}
	if toPair == nil {
		return market.Reply{Text: fmt.Sprintf(msgNoPairs, sp.ToToken)}, nil
	}

	fromPrice, err1 := strconv.ParseFloat(fromPair.PriceUSD, 64)
	toPrice, err2 := strconv.ParseFloat(toPair.PriceUSD, 64)
	if err1 != nil || err2 != nil || toPrice <= 0 {
		return market.Reply{Text: fmt.Sprintf("Could not price the %s/%s conversion right now.", sp.FromToken, sp.ToToken)}, nil
	}

	uc.sessions.RememberToken(sc.UserID, sp.FromToken)
	return market.Reply{Text: formatSwapQuote(sp, fromPrice, toPrice)}, nil
}
