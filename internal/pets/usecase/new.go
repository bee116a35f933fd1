package usecase

import (
	"conversational-assistant/internal/session"
	pkgLog "conversational-assistant/pkg/log"
	"conversational-assistant/pkg/petfinder"
)

type implUseCase struct {
	l        pkgLog.Logger
	client   *petfinder.Client
	sessions session.Store
}

// New creates a new pet adoption UseCase instance.
func New(l pkgLog.Logger, client *petfinder.Client, sessions session.Store) *implUseCase {
	return &implUseCase{
		l:        l,
		client:   client,
		sessions: sessions,
	}
}
