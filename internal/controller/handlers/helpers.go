package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// supportContact — контакт поддержки бота.
const supportContact = "@kaidigital_bot"

// isPrivate проверяет, что сообщение пришло из приватного чата.
// Бот работает только в личных сообщениях.
func isPrivate(update *models.Update) bool {
	return update.Message != nil && update.Message.Chat.Type == models.ChatTypePrivate
}

// sendHTML отправляет HTML-сообщение в чат.
func (h *Handlers) sendHTML(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	h.sendHTMLWithKeyboard(ctx, b, chatID, text, nil)
}

// sendHTMLWithKeyboard отправляет HTML-сообщение с inline клавиатурой.
func (h *Handlers) sendHTMLWithKeyboard(ctx context.Context, b *bot.Bot, chatID int64, text string, markup *models.InlineKeyboardMarkup) {
	params := &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	}
	if markup != nil {
		params.ReplyMarkup = markup
	}

	if _, err := b.SendMessage(ctx, params); err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}
