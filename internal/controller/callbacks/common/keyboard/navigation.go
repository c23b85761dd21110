package keyboard

import "github.com/go-telegram/bot/models"

// BackButton создаёт кнопку "Назад"
func BackButton(callbackData string) models.InlineKeyboardButton {
	return Button("⬅️ Назад", callbackData)
}

// CancelButton создаёт кнопку отмены диалога
func CancelButton(callbackData string) models.InlineKeyboardButton {
	return Button("❌ Скасувати", callbackData)
}

// DeleteButton создаёт кнопку "Видалити"
func DeleteButton(callbackData string) models.InlineKeyboardButton {
	return Button("❌ Видалити", callbackData)
}

// AddCancelButton добавляет ряд с кнопкой отмены к builder
func (b *Builder) AddCancelButton(callbackData string) *Builder {
	return b.Row(CancelButton(callbackData))
}
