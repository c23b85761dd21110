package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/kaidigital/schedulekai_bot/internal/controller/callbacks"
	"github.com/kaidigital/schedulekai_bot/internal/controller/state"
	"github.com/kaidigital/schedulekai_bot/internal/scheduleapi"
)

const msgEnterLessonName = "Введіть частину назви предмета (наприклад, 'матем'):"

// HandleElectiveAdd начинает диалог добавления выборочной дисциплины.
// Требует привязанной группы: её SourceId нужен для поиска по каталогу.
func (h *Handlers) HandleElectiveAdd(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !isPrivate(update) {
		return
	}

	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

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

	st := h.states.Begin(chatID, state.WizardElectiveAdd, state.StepElectiveLevel)
	st.SourceID = group.SourceID

	levels, err := h.electiveService.Levels(ctx)
	if err != nil || len(levels) == 0 {
		if err != nil {
			h.logger.Warn("Failed to get elective levels, skipping level step",
				zap.Int64("user_id", telegramID),
				zap.Error(err))
		}
		// Уровни недоступны — фильтр по уровню пропускается.
		st.Step = state.StepElectiveName
		h.states.Put(chatID, st)
		h.sendHTMLWithKeyboard(ctx, b, chatID, msgEnterLessonName, callbacks.CancelKeyboard())
		return
	}

	h.states.Put(chatID, st)
	h.sendHTMLWithKeyboard(ctx, b, chatID,
		"Оберіть рівень вищої освіти:", callbacks.LevelKeyboard(levels))
}

// handleLessonNameInput ищет дисциплины по введённой части названия.
// Неудачный поиск оставляет диалог на этом же шаге.
func (h *Handlers) handleLessonNameInput(ctx context.Context, b *bot.Bot, update *models.Update, st state.WizardState) {
	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

	query := strings.TrimSpace(update.Message.Text)
	if query == "" {
		h.sendHTMLWithKeyboard(ctx, b, chatID, msgEnterLessonName, callbacks.CancelKeyboard())
		return
	}

	lessons, err := h.electiveService.Search(ctx, query, st.SourceID, st.LevelID)
	if err != nil {
		if scheduleapi.IsTooManyElements(err) {
			h.sendHTMLWithKeyboard(ctx, b, chatID,
				"Забагато збігів 😅\nУточніть назву предмета:", callbacks.CancelKeyboard())
			return
		}
		if scheduleapi.IsNotFound(err) {
			h.sendHTMLWithKeyboard(ctx, b, chatID,
				"Нічого не знайдено 🤷\nСпробуйте іншу назву:", callbacks.CancelKeyboard())
			return
		}

		h.logger.Error("Failed to search electives",
			zap.Int64("user_id", telegramID),
			zap.String("query", query),
			zap.Error(err))
		h.sendHTML(ctx, b, chatID, "Помилка при зверненні до API. Спробуйте пізніше.")
		return
	}
	if len(lessons) == 0 {
		h.sendHTMLWithKeyboard(ctx, b, chatID,
			"Нічого не знайдено 🤷\nСпробуйте іншу назву:", callbacks.CancelKeyboard())
		return
	}

	st.Lessons = lessons
	st.LessonIdx = -1
	st.Step = state.StepElectiveLesson
	h.states.Put(chatID, st)

	h.sendHTMLWithKeyboard(ctx, b, chatID,
		"Оберіть предмет:", callbacks.LessonKeyboard(lessons))
}
