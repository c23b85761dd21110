package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/kaidigital/schedulekai_bot/internal/controller/state"
)

// HandleTextMessage маршрутизирует свободный текст в активный диалог.
// Текст вне диалога (и вне ожидающего ввода шага) игнорируется.
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !isPrivate(update) {
		return
	}
	// Команды обрабатываются своими хендлерами.
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	st, ok := h.states.Get(update.Message.Chat.ID)
	if !ok {
		return
	}

	switch {
	case st.Kind == state.WizardChangeGroup && st.Step == state.StepGroupName:
		h.handleGroupNameInput(ctx, b, update, st)
	case st.Kind == state.WizardElectiveAdd && st.Step == state.StepElectiveName:
		h.handleLessonNameInput(ctx, b, update, st)
	}
}
