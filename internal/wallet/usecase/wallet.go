package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"conversational-assistant/internal/extract"
	"conversational-assistant/internal/model"
	"conversational-assistant/internal/wallet"
)

// Send executes a simulated transfer. The extraction is all-or-nothing,
// so a message missing the amount, token or recipient gets usage help
// and no ledger movement happens.
func (uc *implUseCase) Send(ctx context.Context, sc model.Scope, input wallet.QueryInput) (wallet.Reply, error) {
	params, ok := extract.ParseTransfer(input.Text)
	if !ok {
		return wallet.Reply{Text: msgUsageSend}, nil
	}

	amount, err := strconv.ParseFloat(params.Amount, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return wallet.Reply{Text: msgInvalidAmount}, nil
	}

	uc.l.Infof(ctx, "%s: user=%s amount=%v token=%s recipient=%s", LogPrefixSend, sc.UserID, amount, params.Token, params.Recipient)

	txID, err := uc.ledger.RecordTransfer(ctx, sc.UserID, params.Token, amount, params.Recipient)
	if err != nil {
		return uc.ledgerErrorReply(ctx, sc, params.Token, amount, err)
	}

	return wallet.Reply{Text: fmt.Sprintf(
		"✅ Sent %g %s to %s (simulated)\nTransaction: %s", amount, params.Token, shortAddress(params.Recipient), txID)}, nil
}

// Swap converts between tokens at the current market rate. Both legs
// move in one pass: the debit happens first, so a failed debit leaves
// the ledger untouched.
func (uc *implUseCase) Swap(ctx context.Context, sc model.Scope, input wallet.QueryInput) (wallet.Reply, error) {
	params, ok := extract.ParseSwap(input.Text)
	if !ok {
		return wallet.Reply{Text: msgUsageSwap}, nil
	}

	amount, err := strconv.ParseFloat(params.Amount, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return wallet.Reply{Text: msgInvalidAmount}, nil
	}

	uc.l.Infof(ctx, "%s: user=%s amount=%v from=%s to=%s", LogPrefixSwap, sc.UserID, amount, params.FromToken, params.ToToken)

	fromPrice, found, err := uc.market.PriceUSD(ctx, params.FromToken)
	if err != nil {
		uc.l.Errorf(ctx, "%s: pricing %s failed: %v", LogPrefixSwap, params.FromToken, err)
		return wallet.Reply{}, err
	}
	if !found {
		return wallet.Reply{Text: fmt.Sprintf(msgNoRate, params.FromToken)}, nil
	}

	toPrice, found, err := uc.market.PriceUSD(ctx, params.ToToken)
	if err != nil {
		uc.l.Errorf(ctx, "%s: pricing %s failed: %v", LogPrefixSwap, params.ToToken, err)
		return wallet.Reply{}, err
	}
	if !found {
		return wallet.Reply{Text: fmt.Sprintf(msgNoRate, params.ToToken)}, nil
	}

	if err := uc.ledger.Debit(ctx, sc.UserID, params.FromToken, amount); err != nil {
		return uc.ledgerErrorReply(ctx, sc, params.FromToken, amount, err)
	}

	received := amount * fromPrice / toPrice
	if err := uc.ledger.Credit(ctx, sc.UserID, params.ToToken, received); err != nil {
		uc.l.Errorf(ctx, "%s: credit failed after debit: %v", LogPrefixSwap, err)
		return wallet.Reply{}, err
	}

	return wallet.Reply{Text: fmt.Sprintf(
		"✅ Swapped %g %s for %.6g %s (simulated)", amount, params.FromToken, received, params.ToToken)}, nil
}

// Balance lists holdings with USD values where a price is available.
func (uc *implUseCase) Balance(ctx context.Context, sc model.Scope) (wallet.Reply, error) {
	balances, err := uc.ledger.Balances(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: ledger read failed: %v", LogPrefixBalance, err)
		return wallet.Reply{}, err
	}

	tokens := make([]string, 0, len(balances))
	for token := range balances {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	var b strings.Builder
	b.WriteString("👛 *Wallet balance* (simulated)\n")
	var totalUSD float64
	for _, token := range tokens {
		amount := balances[token]
		fmt.Fprintf(&b, "%s: %g", token, amount)
		if price, found, err := uc.market.PriceUSD(ctx, token); err == nil && found {
			value := amount * price
			totalUSD += value
			fmt.Fprintf(&b, " ($%.2f)", value)
		}
		b.WriteString("\n")
	}
	if totalUSD > 0 {
		fmt.Fprintf(&b, "Total ≈ $%.2f", totalUSD)
	}
	return wallet.Reply{Text: strings.TrimRight(b.String(), "\n")}, nil
}

// History lists executed transfers, newest first.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope) (wallet.Reply, error) {
	transfers, err := uc.ledger.History(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: ledger read failed: %v", LogPrefixHistory, err)
		return wallet.Reply{}, err
	}
	if len(transfers) == 0 {
		return wallet.Reply{Text: msgNoHistory}, nil
	}

	var b strings.Builder
	b.WriteString("📜 *Transfer history* (simulated)\n")
	for _, tx := range transfers {
		fmt.Fprintf(&b, "%g %s → %s (%s)\n", tx.Amount, tx.Token, shortAddress(tx.Recipient), tx.TxID)
	}
	return wallet.Reply{Text: strings.TrimRight(b.String(), "\n")}, nil
}

var historyTermsPattern = regexp.MustCompile(`(?i)\b(?:history|transactions?|transfers?)\b`)

// FreeText handles routed wallet chatter: transfer wording executes a
// send, swap wording a swap, history wording lists past transfers, and
// anything else balance-like shows holdings.
func (uc *implUseCase) FreeText(ctx context.Context, sc model.Scope, input wallet.QueryInput) (wallet.Reply, error) {
	if _, ok := extract.ParseTransfer(input.Text); ok {
		return uc.Send(ctx, sc, input)
	}
	if _, ok := extract.ParseSwap(input.Text); ok {
		return uc.Swap(ctx, sc, input)
	}
	if historyTermsPattern.MatchString(input.Text) {
		return uc.History(ctx, sc)
	}
	return uc.Balance(ctx, sc)
}

func (uc *implUseCase) ledgerErrorReply(ctx context.Context, sc model.Scope, token string, amount float64, err error) (wallet.Reply, error) {
	switch {
	case errors.Is(err, wallet.ErrInsufficientFunds):
		balances, berr := uc.ledger.Balances(ctx, sc.UserID)
		if berr != nil {
			return wallet.Reply{}, berr
		}
		return wallet.Reply{Text: fmt.Sprintf(msgInsufficientFunds, token, balances[token], amount)}, nil
	case errors.Is(err, wallet.ErrUnknownToken):
		return wallet.Reply{Text: fmt.Sprintf(msgUnknownToken, token)}, nil
	default:
		uc.l.Errorf(ctx, "%s: ledger operation failed: %v", LogPrefixSend, err)
		return wallet.Reply{}, err
	}
}

func shortAddress(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}
