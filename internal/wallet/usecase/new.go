package usecase

import (
	"conversational-assistant/internal/wallet/repository"
	"conversational-assistant/pkg/dexscreener"
	pkgLog "conversational-assistant/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	ledger repository.Ledger
	market *dexscreener.Client
}

// New creates a new wallet UseCase instance. The market client prices
// swaps and balance summaries; the ledger is the simulated store.
func New(l pkgLog.Logger, ledger repository.Ledger, market *dexscreener.Client) *implUseCase {
	return &implUseCase{
		l:      l,
		ledger: ledger,
		market: market,
	}
}
