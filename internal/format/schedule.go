package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/kaidigital/schedulekai_bot/internal/model"
)

// Украинские названия дней недели (time.Weekday: воскресенье = 0).
var dayNames = [...]string{
	"Неділя",
	"Понеділок",
	"Вівторок",
	"Середа",
	"Четвер",
	"П'ятниця",
	"Субота",
}

// ScheduleMessage рендерит HTML-сообщение с парами на дату.
func ScheduleMessage(lessons []model.Lesson, date time.Time, week int) string {
	if len(lessons) == 0 {
		return fmt.Sprintf("%s ніяких пар немає!", date.Format("02.01"))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<b>Пари на %s (%s %d):</b>\n\n",
		date.Format("02.01"), dayNames[date.Weekday()], week)

	lines := make([]string, 0, len(lessons))
	for _, lesson := range lessons {
		lines = append(lines, lessonLine(lesson))
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

func lessonLine(lesson model.Lesson) string {
	marker := "*️⃣"
	if lesson.Cancelled {
		marker = "❌"
	}

	timeRange := lesson.BeginTime
	if begin, err := lesson.Begin(); err == nil {
		timeRange = begin.Format("15:04")
		if end, err := lesson.End(); err == nil {
			timeRange += " - " + end.Format("15:04")
		}
	}

	teacher := "-"
	if len(lesson.Teacher) > 0 {
		teacher = strings.Join(lesson.Teacher, ", ")
	}

	lessonType := lesson.LessonType
	if lessonType == "" {
		lessonType = "-"
	}

	location := lesson.Location
	switch {
	case location == "":
		location = "-"
	case strings.HasPrefix(location, "https://"):
		location = fmt.Sprintf(`<a href="%s">Посилання</a>`, location)
	}

	line := fmt.Sprintf("%s | %s | %s | %s | %s | %s",
		marker, timeRange, lesson.Title, lessonType, teacher, location)
	if lesson.Cancelled {
		line += " (скасовано)"
	}
	return line
}

// OutOfRangeMessage — сообщение о дате вне диапазона расписания,
// с дословным указанием обеих границ.
func OutOfRangeMessage(rng model.OutOfRange) string {
	return fmt.Sprintf(
		"📅 Розклад доступний лише у межах з %s по %s.\nОберіть іншу дату.",
		rng.StartDate, rng.EndDate)
}
