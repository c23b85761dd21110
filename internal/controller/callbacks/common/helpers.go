package common

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/kaidigital/schedulekai_bot/internal/controller/callbacks/common/keyboard"
)

// Helper functions для всех callback handlers

// AnswerCallback отвечает на callback query (без alert)
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// AnswerCallbackAlert отвечает на callback query с alert (всплывающее окно)
func AnswerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// GetMessageFromCallback извлекает сообщение из callback query
func GetMessageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

// EditText редактирует текст сообщения callback'а вместе с клавиатурой.
func EditText(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, text string, markup *models.InlineKeyboardMarkup) error {
	msg := GetMessageFromCallback(callback)
	if msg == nil {
		return nil
	}

	params := &bot.EditMessageTextParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	}
	if markup != nil {
		params.ReplyMarkup = markup
	}

	_, err := b.EditMessageText(ctx, params)
	return err
}

// StripKeyboard снимает inline клавиатуру с сообщения callback'а.
// Ошибка редактирования старого сообщения проглатывается: пользователю
// она не важна.
func StripKeyboard(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	msg := GetMessageFromCallback(callback)
	if msg == nil {
		return
	}

	b.EditMessageReplyMarkup(ctx, &bot.EditMessageReplyMarkupParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		ReplyMarkup: keyboard.Empty(),
	})
}
