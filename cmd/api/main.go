package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"mcw-copilot/config"
	_ "mcw-copilot/docs" // Swagger docs
	"mcw-copilot/internal/httpserver"
	"mcw-copilot/internal/metrics"
	"mcw-copilot/internal/middleware"
	relayHTTP "mcw-copilot/internal/relay/delivery/http"
	tgDelivery "mcw-copilot/internal/relay/delivery/telegram"
	"mcw-copilot/internal/relay/usecase"
	"mcw-copilot/internal/router"
	"mcw-copilot/internal/test"
	"mcw-copilot/pkg/brain"
	"mcw-copilot/pkg/guard"
	"mcw-copilot/pkg/log"
	"mcw-copilot/pkg/telegram"
)

// @title       MCW Co-Pilot Relay API
// @description Conversational relay: canned intents answered locally, everything else forwarded to the answering service.
// @version     1
// @host        localhost:3978
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting MCW Co-Pilot relay...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Relay domain
	intentRouter := router.New(router.EmptyInputPolicy(cfg.Intent.EmptyInput))

	brainClient := brain.New(brain.Config{
		URL:     cfg.Brain.URL,
		Timeout: cfg.Brain.Timeout,
	}, logger)
	if brainClient.Configured() {
		logger.Infof(ctx, "Answering service configured (timeout %s)", cfg.Brain.Timeout)
	} else {
		logger.Warn(ctx, "N8N_URL is not set: delegated turns will get the not-configured reply")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.New(registry)

	relayUC := usecase.New(logger, intentRouter, brainClient, recorder)

	// 4. Telegram transport (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(
			logger,
			relayUC,
			bot,
			guard.NewRateLimiter(cfg.Guard.RateLimitPerMin),
			guard.NewDeduper(cfg.Guard.DedupeTTL),
		)

		webhookURL, whErr := newWebhookResolver().resolve(ctx, cfg.Telegram.WebhookURL, cfg.Telegram.NgrokAPIURL)
		switch {
		case whErr != nil:
			logger.Warnf(ctx, "Could not resolve Telegram webhook URL: %v", whErr)
		case webhookURL == "":
			logger.Info(ctx, "No Telegram webhook URL configured, assuming it is registered externally")
		default:
			if err := bot.SetWebhook(ctx, webhookURL, cfg.Telegram.SecretToken); err != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "TELEGRAM_BOT_TOKEN is missing: only the activity endpoint is served")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware:      middleware.New(logger, cfg.Telegram.SecretToken),
		Metrics:         recorder.Handler(),
		Brain:           brainClient,
		TelegramHandler: telegramHandler,
		ActivityHandler: relayHTTP.New(logger, relayUC, guard.NewRateLimiter(cfg.Guard.RateLimitPerMin)),
		TestHandler:     test.New(logger, intentRouter, brainClient),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
