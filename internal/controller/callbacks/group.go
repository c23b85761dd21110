package callbacks

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/kaidigital/schedulekai_bot/internal/controller/callbacks/common"
	"github.com/kaidigital/schedulekai_bot/internal/controller/state"
	"github.com/kaidigital/schedulekai_bot/internal/model"
	"github.com/kaidigital/schedulekai_bot/internal/scheduleapi"
)

// HandleGroupSubgroupChosen обрабатывает выбор подгруппы при смене группы —
// финальный шаг диалога.
func (h *Handler) HandleGroupSubgroupChosen(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, args []string) {
	st, ok := h.wizardState(ctx, b, callback, state.WizardChangeGroup, state.StepGroupSubgroup)
	if !ok {
		return
	}

	if len(args) != 1 {
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}
	subgroup, err := strconv.Atoi(args[0])
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.MsgSelectionExpired)
		return
	}

	telegramID := callback.From.ID

	if err := h.GroupService.AssignGroup(ctx, telegramID, st.GroupName, subgroup); err != nil {
		h.Logger.Error("Failed to assign group",
			zap.Int64("user_id", telegramID),
			zap.String("group", st.GroupName),
			zap.Error(err))

		if scheduleapi.IsTransient(err) {
			// Состояние сохраняем: пользователь может нажать кнопку ещё раз.
			common.AnswerCallbackAlert(ctx, b, callback.ID, common.MsgTryAgainLater)
			return
		}

		h.States.Reset(telegramID)
		common.AnswerCallback(ctx, b, callback.ID, "")
		common.EditText(ctx, b, callback,
			"Не вдалося змінити групу.\nЗверніться у підтримку @kaidigital_bot.", nil)
		return
	}

	h.States.Reset(telegramID)
	common.AnswerCallback(ctx, b, callback.ID, "")

	text := fmt.Sprintf("Група змінена на <b>%s</b>.", st.GroupName)
	if subgroup != model.NoSubgroup {
		text = fmt.Sprintf("Група змінена на <b>%s</b> (підгрупа %d).", st.GroupName, subgroup)
	}
	text += "\n\nВикористайте /schedule щоб отримати розклад."
	common.EditText(ctx, b, callback, text, nil)
}
