package callbacks

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/kaidigital/schedulekai_bot/internal/controller/callbacks/common"
)

// ========================
// Callback Data Tokens
// ========================
// Все callback данные кодируются токенами вида "ACTION|arg1|arg2|..."

const (
	// Добавление выборочной дисциплины
	ElectiveLevel    = "EL_LEVEL"    // EL_LEVEL|<levelId>, -1 — без фильтра по уровню
	ElectiveChoice   = "EL_CHOICE"   // EL_CHOICE|<lessonIdx>
	ElectiveType     = "EL_TYPE"     // EL_TYPE|<typeIdx>
	ElectiveSubgroup = "EL_SUB"      // EL_SUB|<subgroupNumber>
	ElectiveCancel   = "EL_CANCEL"   // отмена диалога на любом шаге

	// Просмотр и удаление выборочных
	ElectiveListPage = "EL_LISTPAGE" // EL_LISTPAGE|<page>
	ElectiveView     = "EL_VIEW"     // EL_VIEW|<lessonId>|<page>
	ElectiveRemove   = "EL_REMOVE"   // EL_REMOVE|<lessonId>|<page>

	// Выбор подгруппы при смене группы
	GroupSubgroup = "GR_SUB" // GR_SUB|<subgroupNumber>

	// Навигация по расписанию
	ScheduleNav = "SCH_NAV" // SCH_NAV|<YYYY-MM-DD>|PREV или NEXT
)

// tokenSep — разделитель аргументов в callback данных.
const tokenSep = "|"

// Token собирает callback данные из действия и аргументов.
func Token(action string, args ...string) string {
	if len(args) == 0 {
		return action
	}
	return action + tokenSep + strings.Join(args, tokenSep)
}

// HandleCallbackQuery - главный обработчик callback queries
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	callback := update.CallbackQuery
	data := callback.Data

	h.Logger.Info("Callback received",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID))

	parts := strings.Split(data, tokenSep)
	action, args := parts[0], parts[1:]

	switch action {
	case "noop":
		// Только подтверждаем callback
		common.AnswerCallback(ctx, b, callback.ID, "")

	// ===== Диалог добавления выборочной =====
	case ElectiveLevel:
		h.HandleLevelChosen(ctx, b, callback, args)
	case ElectiveChoice:
		h.HandleLessonChosen(ctx, b, callback, args)
	case ElectiveType:
		h.HandleTypeChosen(ctx, b, callback, args)
	case ElectiveSubgroup:
		h.HandleSubgroupChosen(ctx, b, callback, args)
	case ElectiveCancel:
		h.HandleWizardCancel(ctx, b, callback)

	// ===== Список выборочных =====
	case ElectiveListPage:
		h.HandleElectiveListPage(ctx, b, callback, args)
	case ElectiveView:
		h.HandleElectiveView(ctx, b, callback, args)
	case ElectiveRemove:
		h.HandleElectiveRemove(ctx, b, callback, args)

	// ===== Смена группы =====
	case GroupSubgroup:
		h.HandleGroupSubgroupChosen(ctx, b, callback, args)

	// ===== Навигация по расписанию =====
	case ScheduleNav:
		h.HandleScheduleNav(ctx, b, callback, args)

	default:
		h.Logger.Warn("Unknown callback action", zap.String("data", data))
		common.AnswerCallback(ctx, b, callback.ID, "")
	}
}
