package usecase

import (
	"conversational-assistant/internal/session"
	"conversational-assistant/pkg/dexscreener"
	pkgLog "conversational-assistant/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	client   *dexscreener.Client
	sessions session.Store
}

// New creates a new market UseCase instance.
func New(l pkgLog.Logger, client *dexscreener.Client, sessions session.Store) *implUseCase {
	return &implUseCase{
		l:        l,
		client:   client,
		sessions: sessions,
	}
}
