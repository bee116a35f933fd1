package session

import (
	"time"

	"github.com/google/uuid"
)

// State is what the assistant remembers about one chat between
// messages: the last location a weather question resolved to and the
// last token a market question was about. Follow-ups like "what about
// tomorrow" or "and the 7 day forecast" reuse these.
type State struct {
	SessionID    uuid.UUID
	LastLocation string
	LastToken    string
	UpdatedAt    time.Time
}

func newState() State {
	return State{
		SessionID: uuid.New(),
		UpdatedAt: time.Now(),
	}
}
