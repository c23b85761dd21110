package callbacks

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-telegram/bot/models"

	"github.com/kaidigital/schedulekai_bot/internal/controller/callbacks/common/keyboard"
	"github.com/kaidigital/schedulekai_bot/internal/model"
)

// Максимальная длина подписи inline кнопки в Telegram.
const buttonLabelLimit = 64

// ElectivePageSize — размер страницы списка выборочных.
const ElectivePageSize = 9

func truncateLabel(label string) string {
	runes := []rune(label)
	if len(runes) <= buttonLabelLimit {
		return label
	}
	return string(runes[:buttonLabelLimit])
}

// LevelKeyboard — клавиатура выбора уровня выборочных дисциплин.
// Последняя кнопка позволяет пропустить фильтр по уровню.
func LevelKeyboard(levels []model.Level) *models.InlineKeyboardMarkup {
	b := keyboard.NewBuilder()
	for _, level := range levels {
		b.Row(keyboard.Button(
			truncateLabel(level.Name),
			Token(ElectiveLevel, strconv.FormatInt(level.ID, 10)),
		))
	}
	b.Row(keyboard.Button("Всі рівні", Token(ElectiveLevel, "-1")))
	b.AddCancelButton(ElectiveCancel)
	return b.Build()
}

// LessonKeyboard — клавиатура выбора дисциплины из результатов поиска.
// Кнопки адресуют дисциплину индексом в сохранённых результатах.
func LessonKeyboard(lessons []model.LessonDescriptor) *models.InlineKeyboardMarkup {
	b := keyboard.NewBuilder()
	for i, lesson := range lessons {
		b.Row(keyboard.Button(
			truncateLabel(lesson.Name),
			Token(ElectiveChoice, strconv.Itoa(i)),
		))
	}
	b.AddCancelButton(ElectiveCancel)
	return b.Build()
}

// TypeKeyboard — клавиатура выбора вида занятий.
func TypeKeyboard(types []string) *models.InlineKeyboardMarkup {
	b := keyboard.NewBuilder()
	for i, lessonType := range types {
		b.Row(keyboard.Button(
			truncateLabel(lessonType),
			Token(ElectiveType, strconv.Itoa(i)),
		))
	}
	b.AddCancelButton(ElectiveCancel)
	return b.Build()
}

// SubgroupKeyboard — клавиатура выбора подгруппы дисциплины.
func SubgroupKeyboard(subgroups []int) *models.InlineKeyboardMarkup {
	b := keyboard.NewBuilder()
	for _, row := range keyboard.SubgroupRows(ElectiveSubgroup+tokenSep, subgroups) {
		b.AddRow(row)
	}
	b.AddCancelButton(ElectiveCancel)
	return b.Build()
}

// GroupSubgroupKeyboard — клавиатура выбора подгруппы при смене группы.
func GroupSubgroupKeyboard(subgroups []int) *models.InlineKeyboardMarkup {
	b := keyboard.NewBuilder()
	for _, row := range keyboard.SubgroupRows(GroupSubgroup+tokenSep, subgroups) {
		b.AddRow(row)
	}
	return b.Build()
}

// ElectiveListKeyboard — страница списка выборочных с пагинацией.
func ElectiveListKeyboard(electives []model.SelectedElective, page, pages int) *models.InlineKeyboardMarkup {
	b := keyboard.NewBuilder()

	start := page * ElectivePageSize
	end := min(start+ElectivePageSize, len(electives))
	for _, elective := range electives[start:end] {
		b.Row(keyboard.Button(
			truncateLabel(electiveLabel(elective)),
			Token(ElectiveView, strconv.FormatInt(elective.ID, 10), strconv.Itoa(page)),
		))
	}

	b.AddPagination(ElectiveListPage+tokenSep, page, pages)
	return b.Build()
}

func electiveLabel(elective model.SelectedElective) string {
	lessonType := elective.LessonType
	if lessonType == "" {
		lessonType = "-"
	}
	return fmt.Sprintf("%s | %s | %s", elective.LessonName, lessonType, subgroupLabel(elective.SubgroupNumber))
}

func subgroupLabel(subgroup int) string {
	if subgroup == model.NoSubgroup {
		return "всі підгрупи"
	}
	return fmt.Sprintf("підгрупа %d", subgroup)
}

// ScheduleNavKeyboard — кнопки перехода на предыдущий/следующий день.
func ScheduleNavKeyboard(date time.Time) *models.InlineKeyboardMarkup {
	day := date.Format("2006-01-02")
	return keyboard.NewBuilder().
		Row(
			keyboard.Button("◀️ Попередній", Token(ScheduleNav, day, "PREV")),
			keyboard.Button("Наступний ▶️", Token(ScheduleNav, day, "NEXT")),
		).
		Build()
}

// CancelKeyboard — клавиатура с единственной кнопкой отмены диалога.
func CancelKeyboard() *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().AddCancelButton(ElectiveCancel).Build()
}
