package telegram

import (
	"github.com/gin-gonic/gin"

	"conversational-assistant/internal/market"
	"conversational-assistant/internal/pets"
	"conversational-assistant/internal/router"
	"conversational-assistant/internal/wallet"
	"conversational-assistant/internal/weather"
	pkgLog "conversational-assistant/pkg/log"
	pkgTelegram "conversational-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l      pkgLog.Logger
	bot    *pkgTelegram.Bot
	router router.Router

	weatherUC weather.UseCase
	petsUC    pets.UseCase
	marketUC  market.UseCase
	walletUC  wallet.UseCase
}

// New creates a new Telegram delivery handler.
func New(
	l pkgLog.Logger,
	bot *pkgTelegram.Bot,
	r router.Router,
	weatherUC weather.UseCase,
	petsUC pets.UseCase,
	marketUC market.UseCase,
	walletUC wallet.UseCase,
) Handler {
	return &handler{
		l:         l,
		bot:       bot,
		router:    r,
		weatherUC: weatherUC,
		petsUC:    petsUC,
		marketUC:  marketUC,
		walletUC:  walletUC,
	}
}
