package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"primering/config"
	_ "primering/docs" // Swagger docs
	"primering/internal/app"
	"primering/internal/httpserver"
	"primering/internal/middleware"
	"primering/internal/quickentry"
	tgDelivery "primering/internal/quickentry/delivery/telegram"
	"primering/pkg/log"
	"primering/pkg/telegram"
)

const ngrokAPIBase = "http://ngrok:4040"

// @title       PrimeRing API
// @description Calendar, diary and Korean quick-entry API with LLM diary analysis.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
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

	logger.Info(ctx, "Starting PrimeRing...")
	logger.Infof(ctx, "Environment: %s, timezone: %s", cfg.Environment.Name, cfg.Locale.Timezone)

	// 3. Domains
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize application: ", err)
		return
	}
	defer a.Close()

	// 4. Telegram quick entry (optional)
	telegramHandler := setupTelegram(ctx, cfg, logger, a.QuickEntry)

	// 5. HTTP Server
	mwCfg := middleware.Config{
		DefaultUserID:  cfg.Locale.UserID,
		TelegramSecret: cfg.Telegram.WebhookSecret,
	}
	if cfg.RateLimit.Enabled {
		mwCfg.RateLimitPerMin = cfg.RateLimit.PerMinute
		mwCfg.RateLimitBurst = cfg.RateLimit.Burst
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mwCfg,
		Dates:           a.Dates,
		CategoryUC:      a.Categories,
		EventUC:         a.Events,
		DiaryUC:         a.Diaries,
		QuickEntryUC:    a.QuickEntry,
		AnalysisUC:      a.Analysis,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// setupTelegram returns nil when no bot token is configured or the bot cannot start.
func setupTelegram(ctx context.Context, cfg *config.Config, logger log.Logger, uc quickentry.UseCase) tgDelivery.Handler {
	if cfg.Telegram.BotToken == "" {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
		return nil
	}

	bot, err := telegram.NewBot(cfg.Telegram.BotToken)
	if err != nil {
		logger.Warnf(ctx, "Telegram bot not available: %v", err)
		return nil
	}
	logger.Infof(ctx, "Telegram bot @%s ready", bot.Username())

	webhookURL := cfg.Telegram.WebhookURL
	if webhookURL == "" {
		ngrokURL, ngrokErr := detectNgrokURL(ctx, ngrokAPIBase)
		if ngrokErr != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
		} else {
			webhookURL = ngrokURL + "/webhook/telegram"
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}

	if webhookURL != "" {
		if whErr := bot.SetWebhook(webhookURL, cfg.Telegram.WebhookSecret); whErr != nil {
			logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
		} else {
			logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
		}
	}

	return tgDelivery.New(logger, uc, bot, cfg.Locale.UserID)
}
