package middleware

import (
	"conversational-assistant/pkg/log"
)

type Middleware struct {
	l             log.Logger
	webhookSecret string
}

func New(l log.Logger, webhookSecret string) Middleware {
	return Middleware{
		l:             l,
		webhookSecret: webhookSecret,
	}
}
