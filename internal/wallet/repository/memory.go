package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"conversational-assistant/internal/wallet"
)

// seedBalances are the starter holdings every new user receives. The
// ledger is a simulation, so the numbers only need to be plausible.
var seedBalances = map[string]float64{
	"SOL":  10,
	"USDC": 1000,
	"BONK": 2000000,
}

type implMemory struct {
	mu        sync.Mutex
	balances  map[string]map[string]float64
	transfers map[string][]Transfer
}

// Ensure implMemory implements Ledger interface
var _ Ledger = (*implMemory)(nil)

// NewMemory creates an in-memory ledger.
func NewMemory() *implMemory {
	return &implMemory{
		balances:  make(map[string]map[string]float64),
		transfers: make(map[string][]Transfer),
	}
}

// account returns the user's balance map, seeding it on first touch.
// Caller must hold mu.
func (m *implMemory) account(userID string) map[string]float64 {
	acct, ok := m.balances[userID]
	if !ok {
		acct = make(map[string]float64, len(seedBalances))
		for token, amount := range seedBalances {
			acct[token] = amount
		}
		m.balances[userID] = acct
	}
	return acct
}

func (m *implMemory) Balances(ctx context.Context, userID string) (map[string]float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	acct := m.account(userID)
	out := make(map[string]float64, len(acct))
	for token, amount := range acct {
		out[token] = amount
	}
	return out, nil
}

func (m *implMemory) Debit(ctx context.Context, userID, token string, amount float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.debitLocked(userID, token, amount)
}

func (m *implMemory) debitLocked(userID, token string, amount float64) error {
	acct := m.account(userID)
	held, ok := acct[token]
	if !ok {
		return wallet.ErrUnknownToken
	}
	if held < amount {
		return wallet.ErrInsufficientFunds
	}
	acct[token] = held - amount
	return nil
}

func (m *implMemory) Credit(ctx context.Context, userID, token string, amount float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	acct := m.account(userID)
	acct[token] += amount
	return nil
}

func (m *implMemory) RecordTransfer(ctx context.Context, userID, token string, amount float64, recipient string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.debitLocked(userID, token, amount); err != nil {
		return "", err
	}

	tx := Transfer{
		TxID:      uuid.NewString(),
		Token:     token,
		Amount:    amount,
		Recipient: recipient,
	}
	m.transfers[userID] = append([]Transfer{tx}, m.transfers[userID]...)
	return tx.TxID, nil
}

func (m *implMemory) History(ctx context.Context, userID string) ([]Transfer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Transfer, len(m.transfers[userID]))
	copy(out, m.transfers[userID])
	return out, nil
}
