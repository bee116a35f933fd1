package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"conversational-assistant/config"
	_ "conversational-assistant/docs" // Swagger docs
	tgDelivery "conversational-assistant/internal/assistant/delivery/telegram"
	"conversational-assistant/internal/httpserver"
	marketUsecase "conversational-assistant/internal/market/usecase"
	petsUsecase "conversational-assistant/internal/pets/usecase"
	"conversational-assistant/internal/router"
	"conversational-assistant/internal/session"
	walletRepo "conversational-assistant/internal/wallet/repository"
	walletUsecase "conversational-assistant/internal/wallet/usecase"
	weatherUsecase "conversational-assistant/internal/weather/usecase"
	"conversational-assistant/pkg/dexscreener"
	"conversational-assistant/pkg/log"
	"conversational-assistant/pkg/petfinder"
	"conversational-assistant/pkg/telegram"
	"conversational-assistant/pkg/weatherapi"
)

// @title       Conversational Assistant API
// @description Telegram assistant for weather, pet adoption, token markets and a simulated wallet.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration (.env is optional, real env vars win)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Conversational Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Assistant domain
	var telegramHandler tgDelivery.Handler

	if cfg.Telegram.BotToken != "" {
		logger.Info(ctx, "Initializing assistant components...")

		// Telegram Bot client
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)

		// Upstream API clients
		weatherClient := weatherapi.NewClient(cfg.Weather.APIKey)
		if cfg.Weather.BaseURL != "" {
			weatherClient.SetAPIURL(cfg.Weather.BaseURL)
		}

		petfinderClient := petfinder.NewClient(cfg.Petfinder.ClientID, cfg.Petfinder.ClientSecret)
		if cfg.Petfinder.BaseURL != "" {
			petfinderClient.SetAPIURL(cfg.Petfinder.BaseURL)
		}

		marketClient := dexscreener.NewClient(cfg.Market.RequestsPerMinute)
		if cfg.Market.BaseURL != "" {
			marketClient.SetAPIURL(cfg.Market.BaseURL)
		}

		// Per-user conversation memory
		sessions := session.New(cfg.Session.Capacity, cfg.Session.TTL)

		// Simulated wallet ledger
		ledger := walletRepo.NewMemory()

		// UseCases
		weatherUC := weatherUsecase.New(logger, weatherClient, sessions)
		petsUC := petsUsecase.New(logger, petfinderClient, sessions)
		marketUC := marketUsecase.New(logger, marketClient, sessions)
		walletUC := walletUsecase.New(logger, ledger, marketClient)

		// Domain router
		domainRouter := router.New(logger)

		// Telegram Delivery handler
		telegramHandler = tgDelivery.New(logger, telegramBot, domainRouter, weatherUC, petsUC, marketUC, walletUC)

		// Register webhook: auto-detect ngrok or fallback to manual config
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := telegramBot.SetWebhookWithSecret(webhookURL, cfg.Telegram.WebhookSecret); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			}
		}

		logger.Info(ctx, "Assistant initialized successfully")
	} else {
		logger.Warn(ctx, "Assistant skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TelegramHandler: telegramHandler,
		WebhookSecret:   cfg.Telegram.WebhookSecret,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
