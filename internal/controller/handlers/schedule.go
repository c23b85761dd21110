package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/kaidigital/schedulekai_bot/internal/controller/callbacks"
	"github.com/kaidigital/schedulekai_bot/internal/format"
	"github.com/kaidigital/schedulekai_bot/internal/scheduleapi"
)

const msgNoGroup = "Ви ще не обрали групу.\nВикористайте /change_group, щоб обрати її."

// HandleSchedule обрабатывает /schedule [ДД.ММ] — расписание на сегодня
// или на указанную дату текущего года.
func (h *Handlers) HandleSchedule(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !isPrivate(update) {
		return
	}

	chatID := update.Message.Chat.ID
	now := time.Now().In(h.location)
	date := now

	args := strings.Fields(update.Message.Text)
	if len(args) > 1 {
		parsed, err := time.ParseInLocation("02.01", args[1], h.location)
		if err != nil {
			h.sendHTML(ctx, b, chatID,
				"Не зрозумів дату 🤔\nФормат: /schedule 20.09")
			return
		}
		date = time.Date(now.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, h.location)
	}

	h.renderSchedule(ctx, b, chatID, update.Message.From.ID, date)
}

// HandleTomorrow обрабатывает /tomorrow — расписание на завтра.
func (h *Handlers) HandleTomorrow(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !isPrivate(update) {
		return
	}

	date := time.Now().In(h.location).AddDate(0, 0, 1)
	h.renderSchedule(ctx, b, update.Message.Chat.ID, update.Message.From.ID, date)
}

// renderSchedule отправляет расписание пользователя на день
// с кнопками перехода по дням.
func (h *Handlers) renderSchedule(ctx context.Context, b *bot.Bot, chatID, telegramID int64, date time.Time) {
	group, err := h.groupService.UserGroup(ctx, telegramID)
	if err != nil {
		h.logger.Error("Failed to get user group",
			zap.Int64("user_id", telegramID),
			zap.Error(err))
		h.sendHTML(ctx, b, chatID, "Помилка при зверненні до API. Спробуйте пізніше.")
		return
	}
	if group == nil {
		h.sendHTML(ctx, b, chatID, msgNoGroup)
		return
	}

	lessons, err := h.scheduleService.DaySchedule(ctx, telegramID, date)
	if err != nil {
		if rng, ok := scheduleapi.AsOutOfRange(err); ok {
			h.sendHTML(ctx, b, chatID, format.OutOfRangeMessage(rng))
			return
		}

		h.logger.Error("Failed to get schedule",
			zap.Int64("user_id", telegramID),
			zap.Time("date", date),
			zap.Error(err))
		h.sendHTML(ctx, b, chatID, "Не вдалося отримати розклад. Спробуйте пізніше.")
		return
	}

	week := format.WeekParity(date.Year(), date)
	h.sendHTMLWithKeyboard(ctx, b, chatID,
		format.ScheduleMessage(lessons, date, week), callbacks.ScheduleNavKeyboard(date))
}
