package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"conversational-assistant/internal/extract"
	"conversational-assistant/internal/market"
	"conversational-assistant/internal/model"
	"conversational-assistant/pkg/dexscreener"
)

var bareSymbolPattern = regexp.MustCompile(`^\$?[A-Za-z0-9]{2,44}$`)

// Price quotes the current price for the resolved token.
func (uc *implUseCase) Price(ctx context.Context, sc model.Scope, input market.QueryInput) (market.Reply, error) {
	token, ok := uc.resolveToken(sc, input.Text)
	if !ok {
		return market.Reply{Text: msgAskToken}, nil
	}

	uc.l.Infof(ctx, "%s: user=%s token=%s", LogPrefixPrice, sc.UserID, token)

	pair, err := uc.topPair(ctx, token)
	if err != nil {
		uc.l.Errorf(ctx, "%s: provider call failed: %v", LogPrefixPrice, err)
		return market.Reply{}, err
	}
	if pair == nil {
		return market.Reply{Text: fmt.Sprintf(msgNoPairs, token)}, nil
	}

	uc.sessions.RememberToken(sc.UserID, token)
	return market.Reply{Text: formatPrice(pair)}, nil
}

// Analyze reports price action, volume, liquidity and transaction
// counts for the token's most liquid pair.
func (uc *implUseCase) Analyze(ctx context.Context, sc model.Scope, input market.QueryInput) (market.Reply, error) {
	token, ok := uc.resolveToken(sc, input.Text)
	if !ok {
		return market.Reply{Text: msgAskToken}, nil
	}

	uc.l.Infof(ctx, "%s: user=%s token=%s", LogPrefixAnalyze, sc.UserID, token)

	pair, err := uc.topPair(ctx, token)
	if err != nil {
		uc.l.Errorf(ctx, "%s: provider call failed: %v", LogPrefixAnalyze, err)
		return market.Reply{}, err
	}
	if pair == nil {
		return market.Reply{Text: fmt.Sprintf(msgNoPairs, token)}, nil
	}

	uc.sessions.RememberToken(sc.UserID, token)
	return market.Reply{Text: formatAnalysis(pair)}, nil
}

// FreeText handles routed crypto chatter and the generic fallback. A
// token mention gets a full analysis; anything else gets the capability
// summary.
func (uc *implUseCase) FreeText(ctx context.Context, sc model.Scope, input market.QueryInput) (market.Reply, error) {
	if _, ok := extract.ExtractToken(input.Text); ok {
		return uc.Analyze(ctx, sc, input)
	}
	if state, ok := uc.sessions.Get(sc.UserID); ok && state.LastToken != "" && extract.HasCryptoContext(input.Text) {
		return uc.Analyze(ctx, sc, market.QueryInput{Text: state.LastToken})
	}
	return market.Reply{Text: msgGenericHelp}, nil
}

// resolveToken tries the message, then a bare symbol argument, then the
// session's last token.
func (uc *implUseCase) resolveToken(sc model.Scope, text string) (string, bool) {
	if token, ok := extract.ExtractToken(text); ok {
		return token, true
	}
	if trimmed := strings.TrimSpace(text); bareSymbolPattern.MatchString(trimmed) {
		return extract.NormalizeToken(trimmed), true
	}
	if state, ok := uc.sessions.Get(sc.UserID); ok && state.LastToken != "" {
		return state.LastToken, true
	}
	return "", false
}

// topPair picks the pair with the deepest liquidity whose base symbol
// matches the token, falling back to the first result.
func (uc *implUseCase) topPair(ctx context.Context, token string) (*dexscreener.Pair, error) {
	resp, err := uc.client.SearchPairs(ctx, token)
	if err != nil {
		return nil, err
	}
	if len(resp.Pairs) == 0 {
		return nil, nil
	}

	var best *dexscreener.Pair
	for i := range resp.Pairs {
		p := &resp.Pairs[i]
		if !strings.EqualFold(p.BaseToken.Symbol, token) {
			continue
		}
		if best == nil || p.Liquidity.USD > best.Liquidity.USD {
			best = p
		}
	}
	if best == nil {
		best = &resp.Pairs[0]
	}
	return best, nil
}
