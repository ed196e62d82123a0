package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"personal-assistant/config"
	_ "personal-assistant/docs" // Swagger docs
	assistantHTTP "personal-assistant/internal/assistant/delivery/http"
	tgDelivery "personal-assistant/internal/assistant/delivery/telegram"
	assistantUsecase "personal-assistant/internal/assistant/usecase"
	emailRepo "personal-assistant/internal/email/repository/sqlite"
	emailUsecase "personal-assistant/internal/email/usecase"
	"personal-assistant/internal/httpserver"
	messageRepo "personal-assistant/internal/message/repository/sqlite"
	messageUsecase "personal-assistant/internal/message/usecase"
	"personal-assistant/internal/router"
	"personal-assistant/internal/scheduler"
	schedulerHTTP "personal-assistant/internal/scheduler/delivery/http"
	taskRepo "personal-assistant/internal/task/repository/sqlite"
	taskUsecase "personal-assistant/internal/task/usecase"
	"personal-assistant/internal/webhook"
	"personal-assistant/pkg/gmail"
	"personal-assistant/pkg/llmprovider"
	"personal-assistant/pkg/log"
	"personal-assistant/pkg/quote"
	"personal-assistant/pkg/sqlite"
	"personal-assistant/pkg/telegram"
	"personal-assistant/pkg/weather"
	"personal-assistant/pkg/worldclock"
)

const telegramWebhookPath = "/webhook/telegram"

// @title       Personal Assistant API
// @description Telegram personal assistant with real-time lookups, mail, tasks and scheduled summaries.
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

	logger.Info(ctx, "Starting Personal Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlite.Open(ctx, cfg.Database.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database %s: %v", cfg.Database.Path, err)
	}
	defer db.Close()

	// 4. External collaborators
	bot := telegram.NewBot(cfg.Telegram.BotToken)
	if !bot.Configured() {
		logger.Warn(ctx, "TELEGRAM_BOT_TOKEN not set, replies will not be delivered")
	}

	mail := gmail.NewUnconfigured()
	if cfg.Gmail.Enabled {
		client, mailErr := gmail.NewClientFromFiles(ctx, cfg.Gmail.CredentialsPath, cfg.Gmail.TokenPath)
		if mailErr != nil {
			logger.Warnf(ctx, "Gmail disabled: %v", mailErr)
		} else {
			mail = client
			logger.Info(ctx, "Gmail client initialized")
		}
	}

	quotes := quote.New(quote.Config{
		StockURL:  cfg.Realtime.StockAPIURL,
		CryptoURL: cfg.Realtime.CryptoAPIURL,
		Timeout:   cfg.Realtime.Timeout,
	})
	weatherClient := weather.New(cfg.Realtime.WeatherAPIURL, cfg.Realtime.Timeout)
	clock, err := worldclock.New()
	if err != nil {
		logger.Fatalf(ctx, "Failed to load city timezones: %v", err)
	}

	loc, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Scheduler.Timezone, err)
		loc = time.UTC
	}

	// 5. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM, logger)
	if err != nil {
		logger.Warnf(ctx, "No LLM provider available, open questions get the apology text: %v", err)
	}
	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      cfg.LLM.RetryDelay,
		MaxTotalTimeout: cfg.LLM.MaxTotalTimeout,
	}, logger)
	answerer := llmprovider.NewAnswerer(llmManager, cfg.Assistant.QATemperature, cfg.Assistant.QAMaxTokens)

	var routerOpts []router.Option
	if cfg.Assistant.LLMClassifierEnabled && len(providers) > 0 {
		routerOpts = append(routerOpts, router.WithSecondary(router.NewLLMClassifier(llmManager, logger)))
		logger.Infof(ctx, "LLM classifier enabled, providers: %v", llmManager.Providers())
	}
	classifier := router.New(logger, routerOpts...)

	// 6. Domains
	responder := &lazyResponder{}
	taskUC := taskUsecase.New(logger, taskRepo.New(db), responder, bot, cfg.Telegram.DefaultChatID)
	emailUC := emailUsecase.New(logger, emailRepo.New(db), mail, answerer)
	assistantUC := assistantUsecase.New(
		logger, classifier, quotes, weatherClient, clock, mail, answerer, taskUC,
		assistantUsecase.Options{EmailPageSize: cfg.Assistant.EmailPageSize, Location: loc, Archive: emailUC},
	)
	responder.uc = assistantUC
	messageUC := messageUsecase.New(logger, messageRepo.New(db))

	limiter := webhook.NewChatLimiter(webhook.LimiterConfig{RateLimitPerMin: cfg.Webhook.RateLimitPerMin})
	telegramHandler := tgDelivery.New(logger, assistantUC, taskUC, messageUC, bot, limiter,
		tgDelivery.Config{ProcessTimeout: cfg.Telegram.ProcessTimeout})

	var (
		sched  *scheduler.Scheduler
		runner schedulerHTTP.Runner
	)
	if cfg.Scheduler.Enabled {
		sched, err = scheduler.New(logger, scheduler.Config{
			Location:           loc,
			MorningSummaryTime: cfg.Scheduler.MorningSummaryTime,
			EveningSummaryTime: cfg.Scheduler.EveningSummaryTime,
			EmailCheckInterval: cfg.Scheduler.EmailCheckInterval,
			TaskCheckInterval:  cfg.Scheduler.TaskCheckInterval,
			EmailEnabled:       mail.Configured(),
			MessageRetention:   cfg.Scheduler.MessageRetention,
			ChatID:             cfg.Telegram.DefaultChatID,
		}, scheduler.Deps{
			Assistant: assistantUC,
			Tasks:     taskUC,
			Messages:  messageUC,
			Notifier:  bot,
		})
		if err != nil {
			logger.Fatalf(ctx, "Failed to create scheduler: %v", err)
		}
		runner = sched
	}

	// 7. HTTP server
	server, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		Location:    loc,

		AssistantUC: assistantUC,
		TaskUC:      taskUC,
		MessageUC:   messageUC,
		EmailUC:     emailUC,
		Bot:         bot,
		Telegram: assistantHTTP.Config{
			WebhookURL:    cfg.Telegram.WebhookURL,
			DefaultChatID: cfg.Telegram.DefaultChatID,
		},
		Scheduler:       runner,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gctx)
	})
	if sched != nil {
		g.Go(func() error {
			if err := sched.Start(gctx); err != nil {
				return err
			}
			<-gctx.Done()
			sched.Stop()
			return nil
		})
	}
	if bot.Configured() {
		g.Go(func() error {
			registerWebhook(gctx, logger, bot, cfg.Telegram)
			return nil
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf(ctx, "Server stopped with error: %v", err)
	}
	telegramHandler.Wait()
	logger.Info(ctx, "Personal Assistant stopped")
}

// registerWebhook points Telegram at this service. A failure is logged only; the
// webhook can be set later through the REST API.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPIURL != "" {
		publicURL, err := detectNgrokURL(ctx, cfg.NgrokAPIURL, ngrokBackoff)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = strings.TrimRight(publicURL, "/") + telegramWebhookPath
	}
	if webhookURL == "" {
		logger.Info(ctx, "No webhook URL configured, skipping Telegram webhook setup")
		return
	}

	if err := bot.SetWebhook(ctx, webhookURL); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook to %s: %v", webhookURL, err)
		return
	}
	logger.Infof(ctx, "Telegram webhook set to %s", webhookURL)
}

// lazyResponder breaks the task <-> assistant construction cycle: tasks reply through
// the assistant while the assistant counts pending tasks.
type lazyResponder struct {
	uc interface {
		Respond(ctx context.Context, text string) string
	}
}

func (r *lazyResponder) Respond(ctx context.Context, text string) string {
	return r.uc.Respond(ctx, text)
}
