package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"conversational-assistant/internal/market"
	"conversational-assistant/internal/model"
	"conversational-assistant/internal/parser"
	"conversational-assistant/internal/pets"
	"conversational-assistant/internal/router"
	"conversational-assistant/internal/wallet"
	"conversational-assistant/internal/weather"
	pkgResponse "conversational-assistant/pkg/response"
	pkgTelegram "conversational-assistant/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine so slow upstream APIs never trip Telegram's
// webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			// Best-effort error notification to user
			_ = h.bot.SendMessage(msg.Chat.ID, msgProcessingError)
		}
	}()

	// Telegram acknowledged immediately
	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message: slash commands are
// dispatched directly, everything else goes through the domain router.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	sc := scopeFor(msg)

	if cmd := parser.Parse(msg.Text); cmd.IsCommand() {
		return h.dispatchCommand(ctx, sc, msg, cmd)
	}
	return h.dispatchFreeText(ctx, sc, msg)
}

func (h *handler) dispatchCommand(ctx context.Context, sc model.Scope, msg *pkgTelegram.Message, cmd parser.Command) error {
	var (
		reply string
		err   error
	)

	switch cmd.Name {
	case "start":
		return h.bot.SendMessage(msg.Chat.ID, msgStart)
	case "help":
		return h.bot.SendMessageWithMode(msg.Chat.ID, msgHelp, "Markdown")

	case "weather":
		reply, err = text(h.weatherUC.Current(ctx, sc, weather.QueryInput{Text: cmd.Params}))
	case "forecast":
		reply, err = text(h.weatherUC.Forecast(ctx, sc, weather.QueryInput{Text: cmd.Params}))
	case "astronomy":
		reply, err = text(h.weatherUC.Astronomy(ctx, sc, weather.QueryInput{Text: cmd.Params}))
	case "aqi":
		reply, err = text(h.weatherUC.AirQuality(ctx, sc, weather.QueryInput{Text: cmd.Params}))

	case "pets":
		r, perr := h.petsUC.Search(ctx, sc, pets.SearchInput{Text: cmd.Params})
		reply, err = r.Text, perr

	case "price":
		reply, err = mtext(h.marketUC.Price(ctx, sc, market.QueryInput{Text: cmd.Params}))
	case "analyze":
		reply, err = mtext(h.marketUC.Analyze(ctx, sc, market.QueryInput{Text: cmd.Params}))
	case "buy":
		reply, err = mtext(h.marketUC.Buy(ctx, sc, market.QueryInput{Text: cmd.Params}))
	case "sell":
		reply, err = mtext(h.marketUC.Sell(ctx, sc, market.QueryInput{Text: cmd.Params}))
	case "swapinfo":
		reply, err = mtext(h.marketUC.SwapInfo(ctx, sc, market.QueryInput{Text: cmd.Params}))

	// Send and swap get the whole message so the verb-anchored
	// extraction sees the command word itself.
	case "send":
		reply, err = wtext(h.walletUC.Send(ctx, sc, wallet.QueryInput{Text: msg.Text}))
	case "swap":
		reply, err = wtext(h.walletUC.Swap(ctx, sc, wallet.QueryInput{Text: msg.Text}))
	case "balance":
		reply, err = wtext(h.walletUC.Balance(ctx, sc))
	case "history":
		reply, err = wtext(h.walletUC.History(ctx, sc))

	default:
		h.l.Infof(ctx, "telegram handler: unknown command /%s", cmd.Name)
		return h.bot.SendMessageWithMode(msg.Chat.ID, msgHelp, "Markdown")
	}

	if err != nil {
		h.l.Errorf(ctx, "telegram handler: /%s failed: %v", cmd.Name, err)
		return err
	}
	return h.bot.SendMessageWithMode(msg.Chat.ID, reply, "Markdown")
}

func (h *handler) dispatchFreeText(ctx context.Context, sc model.Scope, msg *pkgTelegram.Message) error {
	result := h.router.Route(ctx, msg.Text)
	h.l.Debugf(ctx, "telegram handler: routed to %s via %s", result.Domain, result.Matched)

	var (
		reply string
		err   error
	)

	switch result.Domain {
	case router.DomainWallet:
		reply, err = wtext(h.walletUC.FreeText(ctx, sc, wallet.QueryInput{Text: msg.Text}))
	case router.DomainWeather:
		reply, err = text(h.weatherUC.FreeText(ctx, sc, weather.QueryInput{Text: msg.Text}))
	case router.DomainPets:
		r, perr := h.petsUC.Search(ctx, sc, pets.SearchInput{Text: msg.Text})
		reply, err = r.Text, perr
	default:
		// Token launch, crypto analysis and the generic fallback all land
		// on the market handler.
		reply, err = mtext(h.marketUC.FreeText(ctx, sc, market.QueryInput{Text: msg.Text}))
	}

	if err != nil {
		h.l.Errorf(ctx, "telegram handler: %s free text failed: %v", result.Domain, err)
		return err
	}
	return h.bot.SendMessageWithMode(msg.Chat.ID, reply, "Markdown")
}

func scopeFor(msg *pkgTelegram.Message) model.Scope {
	sc := model.Scope{UserID: fmt.Sprintf("telegram_%d", msg.Chat.ID)}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
		sc.Username = msg.From.Username
	}
	return sc
}

func text(r weather.Reply, err error) (string, error) { return r.Text, err }
func mtext(r market.Reply, err error) (string, error) { return r.Text, err }
func wtext(r wallet.Reply, err error) (string, error) { return r.Text, err }
