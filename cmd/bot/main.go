package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"

	"github.com/kaidigital/schedulekai_bot/internal/app"
	"github.com/kaidigital/schedulekai_bot/internal/config"
	"github.com/kaidigital/schedulekai_bot/internal/controller"
	"github.com/kaidigital/schedulekai_bot/internal/scheduleapi"
	"github.com/kaidigital/schedulekai_bot/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting schedule bot",
		"environment", cfg.Environment,
		"api_url", cfg.ScheduleAPIURL)

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Sugar().Fatalw("Failed to load timezone", "timezone", cfg.Timezone, "error", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Клиент API расписания
	apiClient := scheduleapi.New(cfg.ScheduleAPIURL, logger)
	defer apiClient.Close()

	// Сервисы
	groupService := service.NewGroupService(apiClient, logger)
	electiveService := service.NewElectiveService(apiClient, logger)
	scheduleService := service.NewScheduleService(apiClient, logger)
	alertService := service.NewAlertService(apiClient, logger)

	// Telegram bot
	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Sugar().Fatalw("Failed to create bot", "error", err)
	}

	botController := controller.NewBotController(
		b,
		groupService,
		electiveService,
		scheduleService,
		location,
		logger,
	)

	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Sugar().Fatalw("Failed to register handlers", "error", err)
	}

	// Фоновая доставка оповещений об изменениях расписания
	notifier := app.NewNotifier(alertService, b, logger)
	notifier.Start(ctx)
	defer notifier.Stop()

	logger.Info("🚀 Bot is running")
	if err := botController.Start(ctx); err != nil {
		logger.Sugar().Errorw("Bot stopped with error", "error", err)
	}

	logger.Info("Bot shut down")
}
