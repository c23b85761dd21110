package handlers

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/kaidigital/schedulekai_bot/internal/controller/state"
	"github.com/kaidigital/schedulekai_bot/internal/format"
)

const startMessage = `👋 Привіт! Я бот розкладу КАІ.

Я допоможу швидко дізнатися розклад пар вашої групи.

Спочатку оберіть групу командою /change_group, а потім використовуйте /schedule.

Повний список команд — /help.`

const helpMessage = `<b>Команди бота:</b>

/schedule — розклад на сьогодні (або /schedule 20.09 — на дату)
/tomorrow — розклад на завтра
/week — який зараз тиждень (чисельник/знаменник)
/change_group — обрати або змінити групу
/elective_add — додати вибіркову пару
/elective_list — ваші вибіркові пари
/cancel — скасувати поточну дію

З питань роботи бота: ` + supportContact

// HandleStart обрабатывает команду /start.
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !isPrivate(update) {
		return
	}
	h.sendHTML(ctx, b, update.Message.Chat.ID, startMessage)
}

// HandleHelp обрабатывает команду /help.
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !isPrivate(update) {
		return
	}
	h.sendHTML(ctx, b, update.Message.Chat.ID, helpMessage)
}

// HandleWeek сообщает чётность текущей учебной недели.
func (h *Handlers) HandleWeek(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !isPrivate(update) {
		return
	}

	now := time.Now().In(h.location)
	parity := format.WeekParity(now.Year(), now)
	h.sendHTML(ctx, b, update.Message.Chat.ID, format.WeekMessage(parity))
}

// HandleCancel отменяет активный диалог, если он есть.
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !isPrivate(update) {
		return
	}

	chatID := update.Message.Chat.ID
	if h.states.Kind(chatID) == state.WizardNone {
		h.sendHTML(ctx, b, chatID, "Немає активних дій для скасування.")
		return
	}

	h.states.Reset(chatID)
	h.sendHTML(ctx, b, chatID, "❌ Дію скасовано.")
}
