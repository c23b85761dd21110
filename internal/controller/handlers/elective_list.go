package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/kaidigital/schedulekai_bot/internal/controller/callbacks"
	"github.com/kaidigital/schedulekai_bot/internal/controller/callbacks/common/keyboard"
)

// HandleElectiveList показывает первую страницу списка выборочных дисциплин.
// Дальнейшая навигация идёт через callback-кнопки.
func (h *Handlers) HandleElectiveList(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !isPrivate(update) {
		return
	}

	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

	electives, err := h.electiveService.List(ctx, telegramID)
	if err != nil {
		h.logger.Error("Failed to list electives",
			zap.Int64("user_id", telegramID),
			zap.Error(err))
		h.sendHTML(ctx, b, chatID, "Помилка при зверненні до API. Спробуйте пізніше.")
		return
	}

	if len(electives) == 0 {
		h.sendHTML(ctx, b, chatID, "У вас ще немає доданих вибіркових пар.\nДодайте першу: /elective_add")
		return
	}

	pages := keyboard.PageCount(len(electives), callbacks.ElectivePageSize)
	text := fmt.Sprintf("<b>Ваші вибіркові (сторінка %d/%d):</b>", 1, pages)
	h.sendHTMLWithKeyboard(ctx, b, chatID, text,
		callbacks.ElectiveListKeyboard(electives, 0, pages))
}
