package app

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kaidigital/schedulekai_bot/internal/format"
	"github.com/kaidigital/schedulekai_bot/internal/model"
	"github.com/kaidigital/schedulekai_bot/internal/service"
)

const (
	alertPollInterval = 30 * time.Second
	alertBatchSize    = 100
)

// Notifier доставляет пользователям оповещения об изменениях расписания.
// Оповещения копятся на стороне API и забираются пачками по таймеру.
type Notifier struct {
	alertService *service.AlertService
	bot          *bot.Bot
	limiter      *rate.Limiter
	logger       *zap.Logger
	stopChan     chan struct{}
}

// NewNotifier создаёт новый доставщик оповещений.
func NewNotifier(alertService *service.AlertService, botInstance *bot.Bot, logger *zap.Logger) *Notifier {
	return &Notifier{
		alertService: alertService,
		bot:          botInstance,
		// Лимит Telegram на рассылку — до 30 сообщений в секунду.
		limiter:  rate.NewLimiter(rate.Limit(25), 5),
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start запускает фоновую доставку оповещений.
func (n *Notifier) Start(ctx context.Context) {
	n.logger.Info("Starting alert notifier")
	go n.run(ctx)
}

// Stop останавливает фоновую доставку.
func (n *Notifier) Stop() {
	n.logger.Info("Stopping alert notifier")
	close(n.stopChan)
}

func (n *Notifier) run(ctx context.Context) {
	// Первый запуск сразу при старте
	n.deliverBatch(ctx)

	ticker := time.NewTicker(alertPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			n.deliverBatch(ctx)
		case <-n.stopChan:
			n.logger.Info("Alert notifier stopped")
			return
		case <-ctx.Done():
			n.logger.Info("Alert notifier cancelled")
			return
		}
	}
}

// deliverBatch забирает пачку оповещений, рассылает их и подтверждает
// доставку. Оповещение без текста (неизвестный тип) тоже подтверждается,
// иначе оно будет возвращаться в каждой пачке.
func (n *Notifier) deliverBatch(ctx context.Context) {
	alerts, err := n.alertService.Fetch(ctx, alertBatchSize)
	if err != nil {
		n.logger.Error("Failed to fetch alerts", zap.Error(err))
		return
	}
	if len(alerts) == 0 {
		return
	}

	n.logger.Info("Delivering alerts", zap.Int("count", len(alerts)))

	delivered := make([]int64, 0, len(alerts))
	for _, alert := range alerts {
		text := alertText(alert)
		if text == "" {
			n.logger.Warn("Unknown alert type",
				zap.Int64("alert_id", alert.ID),
				zap.String("type", string(alert.AlertType)))
			delivered = append(delivered, alert.ID)
			continue
		}

		if err := n.limiter.Wait(ctx); err != nil {
			break
		}

		_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    alert.UserTelegramID,
			Text:      text,
			ParseMode: models.ParseModeHTML,
		})
		if err != nil {
			// Заблокировавшие бота пользователи тоже считаются
			// доставленными: повторять отправку бессмысленно.
			n.logger.Warn("Failed to deliver alert",
				zap.Int64("alert_id", alert.ID),
				zap.Int64("user_id", alert.UserTelegramID),
				zap.Error(err))
		}
		delivered = append(delivered, alert.ID)
	}

	if err := n.alertService.Acknowledge(ctx, delivered); err != nil {
		n.logger.Error("Failed to acknowledge alerts",
			zap.Int("count", len(delivered)),
			zap.Error(err))
	}
}

func alertText(alert model.UserAlert) string {
	switch alert.AlertType {
	case model.AlertGroupRemoved:
		return format.GroupRemovedMessage(alert)
	case model.AlertElectiveLessonRemoved:
		return format.ElectiveRemovedMessage(alert)
	default:
		return ""
	}
}
