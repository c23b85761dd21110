package common

import (
	"github.com/kaidigital/schedulekai_bot/internal/format"
	"github.com/kaidigital/schedulekai_bot/internal/scheduleapi"
)

// Тексты, общие для обработчиков.
const (
	MsgSelectionExpired = "Вибір застарів. Розпочніть спочатку."
	MsgTryAgainLater    = "⚠️ Сервіс тимчасово недоступний. Спробуйте пізніше."
	MsgNotFound         = "❌ Нічого не знайдено."
	MsgTooManyMatches   = "Знайдено забагато збігів — введіть більш конкретну частину назви."
)

// UserMessage возвращает пользовательское сообщение для ошибки API.
// Диагностические детали (статус, тело) в чат не попадают — только в лог.
func UserMessage(err error) string {
	switch {
	case scheduleapi.IsNotFound(err):
		return MsgNotFound
	case scheduleapi.IsTooManyElements(err):
		return MsgTooManyMatches
	case scheduleapi.IsTransient(err):
		return MsgTryAgainLater
	default:
		if rng, ok := scheduleapi.AsOutOfRange(err); ok {
			return format.OutOfRangeMessage(rng)
		}
		return "❌ Сталася помилка. Спробуйте пізніше."
	}
}
