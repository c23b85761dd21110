package callbacks

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/kaidigital/schedulekai_bot/internal/controller/callbacks/common"
	"github.com/kaidigital/schedulekai_bot/internal/controller/callbacks/common/keyboard"
	"github.com/kaidigital/schedulekai_bot/internal/model"
	"github.com/kaidigital/schedulekai_bot/internal/scheduleapi"
)

// renderElectivePage перерисовывает страницу списка выборочных.
// Список каждый раз запрашивается заново: между нажатиями он мог измениться.
func (h *Handler) renderElectivePage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, page int) {
	telegramID := callback.From.ID

	electives, err := h.ElectiveService.List(ctx, telegramID)
	if err != nil {
		h.Logger.Error("Failed to list electives",
			zap.Int64("user_id", telegramID),
			zap.Error(err))
		common.EditText(ctx, b, callback, common.UserMessage(err), nil)
		return
	}

	if len(electives) == 0 {
		common.EditText(ctx, b, callback, "У вас ще немає доданих вибіркових пар.", nil)
		return
	}

	pages := keyboard.PageCount(len(electives), ElectivePageSize)
	page = keyboard.ClampPage(page, pages)

	text := fmt.Sprintf("<b>Ваші вибіркові (сторінка %d/%d):</b>", page+1, pages)
	common.EditText(ctx, b, callback, text, ElectiveListKeyboard(electives, page, pages))
}

// HandleElectiveListPage листает страницы списка выборочных.
func (h *Handler) HandleElectiveListPage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, args []string) {
	if len(args) != 1 {
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}
	page, err := strconv.Atoi(args[0])
	if err != nil {
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "")
	h.renderElectivePage(ctx, b, callback, page)
}

// HandleElectiveView показывает карточку одной выборочной дисциплины.
// Список не кэшируется между шагами — дисциплина ищется по ID заново.
func (h *Handler) HandleElectiveView(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, args []string) {
	if len(args) != 2 {
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}
	electiveID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}
	page, err := strconv.Atoi(args[1])
	if err != nil {
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "")

	electives, err := h.ElectiveService.List(ctx, callback.From.ID)
	if err != nil {
		h.Logger.Error("Failed to list electives",
			zap.Int64("user_id", callback.From.ID),
			zap.Error(err))
		common.EditText(ctx, b, callback, common.UserMessage(err), nil)
		return
	}

	var chosen *model.SelectedElective
	for i := range electives {
		if electives[i].ID == electiveID {
			chosen = &electives[i]
			break
		}
	}

	backRow := []models.InlineKeyboardButton{
		keyboard.BackButton(Token(ElectiveListPage, strconv.Itoa(page))),
	}

	if chosen == nil {
		kb := keyboard.NewBuilder().AddRow(backRow).Build()
		common.EditText(ctx, b, callback, "Інформація про предмет не знайдена.", kb)
		return
	}

	lessonType := chosen.LessonType
	if lessonType == "" {
		lessonType = "-"
	}
	text := fmt.Sprintf(
		"<b>%s</b>\nВид: %s\nПідгрупа: %s",
		chosen.LessonName, lessonType, subgroupLabel(chosen.SubgroupNumber))

	kb := keyboard.NewBuilder().
		Row(keyboard.DeleteButton(Token(ElectiveRemove, strconv.FormatInt(electiveID, 10), strconv.Itoa(page)))).
		AddRow(backRow).
		Build()
	common.EditText(ctx, b, callback, text, kb)
}

// HandleElectiveRemove удаляет дисциплину и перерисовывает ту же страницу
// списка (с поджатием номера, если список сократился).
func (h *Handler) HandleElectiveRemove(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, args []string) {
	if len(args) != 2 {
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}
	electiveID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}
	page, err := strconv.Atoi(args[1])
	if err != nil {
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}

	telegramID := callback.From.ID

	if err := h.ElectiveService.Remove(ctx, telegramID, electiveID); err != nil {
		h.Logger.Error("Failed to remove elective",
			zap.Int64("user_id", telegramID),
			zap.Int64("elective_id", electiveID),
			zap.Error(err))

		if scheduleapi.IsNotFound(err) {
			// Уже удалена — просто показываем актуальную страницу.
			common.AnswerCallbackAlert(ctx, b, callback.ID, "Предмет вже видалено.")
			h.renderElectivePage(ctx, b, callback, page)
			return
		}
		common.AnswerCallbackAlert(ctx, b, callback.ID, "Не вдалося видалити. Спробуйте пізніше.")
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "✅ Предмет видалено")
	h.renderElectivePage(ctx, b, callback, page)
}
