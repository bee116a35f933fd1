package router

import (
	"context"

	"conversational-assistant/pkg/log"
)

// Router is the interface for domain routing of free-text messages.
type Router interface {
	Route(ctx context.Context, message string) RouteResult
}

// PatternRouter classifies messages with ordered deterministic pattern
// sets, one per domain. No statistical model is involved: routing is a
// pure function of the message text.
type PatternRouter struct {
	l       log.Logger
	domains []domainMatcher
}

// Ensure PatternRouter implements Router interface
var _ Router = (*PatternRouter)(nil)

// New creates a new PatternRouter with the built-in domain pattern sets.
func New(l log.Logger) *PatternRouter {
	return &PatternRouter{
		l:       l,
		domains: domainMatchers,
	}
}
