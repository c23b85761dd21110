package callbacks

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/kaidigital/schedulekai_bot/internal/controller/callbacks/common"
	"github.com/kaidigital/schedulekai_bot/internal/format"
	"github.com/kaidigital/schedulekai_bot/internal/scheduleapi"
)

// HandleScheduleNav листает расписание на день назад/вперёд.
func (h *Handler) HandleScheduleNav(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, args []string) {
	common.AnswerCallback(ctx, b, callback.ID, "")

	if len(args) != 2 {
		return
	}

	current, err := time.ParseInLocation("2006-01-02", args[0], h.Location)
	if err != nil {
		return
	}

	var target time.Time
	switch args[1] {
	case "PREV":
		target = current.AddDate(0, 0, -1)
	case "NEXT":
		target = current.AddDate(0, 0, 1)
	default:
		return
	}

	telegramID := callback.From.ID

	lessons, err := h.ScheduleService.DaySchedule(ctx, telegramID, target)
	if err != nil {
		if rng, ok := scheduleapi.AsOutOfRange(err); ok {
			// Дата вне диапазона расписания: показываем границы,
			// навигацию оставляем на текущей дате.
			common.EditText(ctx, b, callback,
				format.OutOfRangeMessage(rng), ScheduleNavKeyboard(current))
			return
		}

		h.Logger.Error("Failed to get schedule",
			zap.Int64("user_id", telegramID),
			zap.Time("date", target),
			zap.Error(err))
		common.EditText(ctx, b, callback, common.UserMessage(err), ScheduleNavKeyboard(current))
		return
	}

	week := format.WeekParity(target.Year(), target)
	common.EditText(ctx, b, callback,
		format.ScheduleMessage(lessons, target, week), ScheduleNavKeyboard(target))
}
