package callbacks

import (
	"context"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/kaidigital/schedulekai_bot/internal/controller/callbacks/common"
	"github.com/kaidigital/schedulekai_bot/internal/controller/state"
	"github.com/kaidigital/schedulekai_bot/internal/model"
	"github.com/kaidigital/schedulekai_bot/internal/scheduleapi"
)

// wizardState достаёт состояние диалога и проверяет, что callback
// относится к ожидаемому шагу. Устаревшие нажатия (состояние снесено
// новым диалогом или шаг уже пройден) получают уведомление и no-op.
func (h *Handler) wizardState(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, kind state.WizardKind, step state.Step) (state.WizardState, bool) {
	st, ok := h.States.Get(callback.From.ID)
	if !ok || st.Kind != kind || st.Step != step {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.MsgSelectionExpired)
		return state.WizardState{}, false
	}
	return st, true
}

// HandleLevelChosen обрабатывает выбор уровня выборочных (или его пропуск).
func (h *Handler) HandleLevelChosen(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, args []string) {
	st, ok := h.wizardState(ctx, b, callback, state.WizardElectiveAdd, state.StepElectiveLevel)
	if !ok {
		return
	}

	if len(args) != 1 {
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}
	levelID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}

	if levelID >= 0 {
		st.LevelID = &levelID
	} else {
		st.LevelID = nil
	}
	st.Step = state.StepElectiveName
	h.States.Put(callback.From.ID, st)

	common.AnswerCallback(ctx, b, callback.ID, "")
	common.EditText(ctx, b, callback,
		"Введіть частину назви предмета (наприклад, 'матем'):", CancelKeyboard())
}

// HandleLessonChosen обрабатывает выбор дисциплины из результатов поиска.
func (h *Handler) HandleLessonChosen(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, args []string) {
	st, ok := h.wizardState(ctx, b, callback, state.WizardElectiveAdd, state.StepElectiveLesson)
	if !ok {
		return
	}

	if len(args) != 1 {
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil || idx < 0 || idx >= len(st.Lessons) {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.MsgSelectionExpired)
		return
	}

	st.LessonIdx = idx
	lesson := st.Lessons[idx]

	types, err := h.ElectiveService.Types(ctx, lesson)
	if err != nil {
		h.Logger.Error("Failed to get elective types",
			zap.Int64("user_id", callback.From.ID),
			zap.String("lesson", lesson.Name),
			zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.UserMessage(err))
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "")

	// Ровно один вид занятий — шаг выбора пропускается.
	if len(types) <= 1 {
		if len(types) == 1 {
			st.LessonType = types[0]
		}
		h.States.Put(callback.From.ID, st)
		h.advanceToSubgroup(ctx, b, callback, st)
		return
	}

	st.Types = types
	st.Step = state.StepElectiveType
	h.States.Put(callback.From.ID, st)

	common.EditText(ctx, b, callback, "Оберіть вид занять:", TypeKeyboard(types))
}

// HandleTypeChosen обрабатывает выбор вида занятий.
func (h *Handler) HandleTypeChosen(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, args []string) {
	st, ok := h.wizardState(ctx, b, callback, state.WizardElectiveAdd, state.StepElectiveType)
	if !ok {
		return
	}

	if len(args) != 1 {
		common.AnswerCallback(ctx, b, callback.ID, "")
		return
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil || idx < 0 || idx >= len(st.Types) {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.MsgSelectionExpired)
		return
	}

	st.LessonType = st.Types[idx]
	h.States.Put(callback.From.ID, st)

	common.AnswerCallback(ctx, b, callback.ID, "")
	h.advanceToSubgroup(ctx, b, callback, st)
}

// advanceToSubgroup переводит диалог к выбору подгруппы. Если у дисциплины
// нет реальных подгрупп, запись оформляется сразу с сентинелом "для всех".
func (h *Handler) advanceToSubgroup(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, st state.WizardState) {
	lesson, ok := st.Lesson()
	if !ok {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.MsgSelectionExpired)
		return
	}

	subgroups, err := h.ElectiveService.Subgroups(ctx, lesson, st.LessonType)
	if err != nil {
		h.Logger.Error("Failed to get elective subgroups",
			zap.Int64("user_id", callback.From.ID),
			zap.String("lesson", lesson.Name),
			zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.UserMessage(err))
		return
	}

	if len(model.RealSubgroups(subgroups)) == 0 {
		h.submitEnrollment(ctx, b, callback, st, model.NoSubgroup)
		return
	}

	st.Step = state.StepElectiveSubgroup
	h.States.Put(callback.From.ID, st)

	common.EditText(ctx, b, callback, "Оберіть підгрупу:", SubgroupKeyboard(subgroups))
}

// HandleSubgroupChosen обрабатывает выбор подгруппы — финальный шаг диалога.
func (h *Handler) HandleSubgroupChosen(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, args []string) {
	st, ok := h.wizardState(ctx, b, callback, state.WizardElectiveAdd, state.StepElectiveSubgroup)
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

	common.AnswerCallback(ctx, b, callback.ID, "")
	h.submitEnrollment(ctx, b, callback, st, subgroup)
}

// submitEnrollment выполняет единственный мутирующий вызов диалога
// и завершает его в любом исходе.
func (h *Handler) submitEnrollment(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, st state.WizardState, subgroup int) {
	telegramID := callback.From.ID

	lesson, ok := st.Lesson()
	if !ok {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.MsgSelectionExpired)
		return
	}

	err := h.ElectiveService.Enroll(ctx, telegramID, lesson, st.LessonType, subgroup)
	h.States.Reset(telegramID)

	if err != nil {
		h.Logger.Error("Failed to enroll elective",
			zap.Int64("user_id", telegramID),
			zap.String("lesson", lesson.Name),
			zap.Error(err))

		text := "Не вдалося додати предмет. Спробуйте пізніше."
		if scheduleapi.IsNotFound(err) {
			text = "❌ Предмет не знайдено. Можливо, його вже видалили з каталогу."
		}
		common.EditText(ctx, b, callback, text, nil)
		return
	}

	common.EditText(ctx, b, callback, "✅ Предмет успішно додано до ваших вибіркових пар.", nil)
}

// HandleWizardCancel отменяет активный диалог на любом шаге.
func (h *Handler) HandleWizardCancel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	h.States.Reset(callback.From.ID)

	common.AnswerCallback(ctx, b, callback.ID, "Скасовано")
	// Снимаем клавиатуру со старого сообщения; неудача редактирования не важна.
	if err := common.EditText(ctx, b, callback, "❌ Дію скасовано.", nil); err != nil {
		common.StripKeyboard(ctx, b, callback)
	}
}
