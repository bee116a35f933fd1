package usecase

import (
	"conversational-assistant/internal/session"
	pkgLog "conversational-assistant/pkg/log"
	"conversational-assistant/pkg/weatherapi"
)

type implUseCase struct {
	l        pkgLog.Logger
	client   *weatherapi.Client
	sessions session.Store
}

// New creates a new weather UseCase instance.
func New(l pkgLog.Logger, client *weatherapi.Client, sessions session.Store) *implUseCase {
	return &implUseCase{
		l:        l,
		client:   client,
		sessions: sessions,
	}
}
