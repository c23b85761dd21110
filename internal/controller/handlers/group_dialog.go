package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/kaidigital/schedulekai_bot/internal/controller/callbacks"
	"github.com/kaidigital/schedulekai_bot/internal/controller/state"
	"github.com/kaidigital/schedulekai_bot/internal/model"
	"github.com/kaidigital/schedulekai_bot/internal/scheduleapi"
)

// HandleChangeGroup начинает диалог выбора группы.
// Прежний активный диалог, если был, сносится.
func (h *Handlers) HandleChangeGroup(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !isPrivate(update) {
		return
	}

	chatID := update.Message.Chat.ID
	h.states.Begin(chatID, state.WizardChangeGroup, state.StepGroupName)

	h.sendHTML(ctx, b, chatID,
		"Введіть код вашої групи (наприклад: Ба-121-22-4-ПІ):")
}

// handleGroupNameInput обрабатывает введённое название группы.
// Название нормализуется (латинские двойники кириллицы заменяются),
// при неудаче диалог остаётся на этом же шаге.
func (h *Handlers) handleGroupNameInput(ctx context.Context, b *bot.Bot, update *models.Update, st state.WizardState) {
	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

	name, exists, err := h.groupService.CheckGroup(ctx, update.Message.Text)
	if err != nil {
		h.logger.Error("Failed to check group",
			zap.Int64("user_id", telegramID),
			zap.String("group", name),
			zap.Error(err))
		h.sendHTML(ctx, b, chatID, "Помилка при зверненні до API. Спробуйте пізніше.")
		return
	}
	if !exists {
		h.sendHTML(ctx, b, chatID, "Не вірна назва групи.\nСпробуйте ще раз або /cancel.")
		return
	}

	subgroups, err := h.groupService.Subgroups(ctx, name)
	if err != nil {
		h.logger.Error("Failed to get group subgroups",
			zap.Int64("user_id", telegramID),
			zap.String("group", name),
			zap.Error(err))
		h.sendHTML(ctx, b, chatID, "Помилка при зверненні до API. Спробуйте пізніше.")
		return
	}

	// Одна подгруппа или ни одной — выбирать нечего,
	// привязываем сразу ко всем подгруппам.
	if len(model.RealSubgroups(subgroups)) <= 1 {
		h.assignGroup(ctx, b, chatID, telegramID, name, model.NoSubgroup)
		return
	}

	st.GroupName = name
	st.Step = state.StepGroupSubgroup
	h.states.Put(chatID, st)

	h.sendHTMLWithKeyboard(ctx, b, chatID,
		"Оберіть підгрупу:", callbacks.GroupSubgroupKeyboard(subgroups))
}

// assignGroup завершает диалог привязкой группы.
func (h *Handlers) assignGroup(ctx context.Context, b *bot.Bot, chatID, telegramID int64, groupName string, subgroup int) {
	if err := h.groupService.AssignGroup(ctx, telegramID, groupName, subgroup); err != nil {
		h.logger.Error("Failed to assign group",
			zap.Int64("user_id", telegramID),
			zap.String("group", groupName),
			zap.Error(err))

		if scheduleapi.IsTransient(err) {
			// Шаг не сброшен: пользователь может повторить ввод.
			h.sendHTML(ctx, b, chatID, "Помилка при зверненні до API. Спробуйте пізніше.")
			return
		}

		h.states.Reset(chatID)
		h.sendHTML(ctx, b, chatID,
			"Не вдалося змінити групу.\nЗверніться у підтримку "+supportContact+".")
		return
	}

	h.states.Reset(chatID)
	h.sendHTML(ctx, b, chatID, fmt.Sprintf(
		"Група змінена на <b>%s</b>.\n\nВикористайте /schedule щоб отримати розклад.", groupName))
}
