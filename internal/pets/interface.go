package pets

import (
	"context"

	"conversational-assistant/internal/model"
)

// UseCase defines the business logic interface for the pet adoption
// domain.
type UseCase interface {
	// Search finds adoptable animals matching the query's species,
	// location and qualifiers, and formats them as a chat reply.
	Search(ctx context.Context, sc model.Scope, input SearchInput) (Reply, error)
}
