package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kaidigital/schedulekai_bot/internal/model"
)

func TestScheduleMessage_EmptyDay(t *testing.T) {
	msg := ScheduleMessage(nil, date(2026, time.January, 2), 1)
	assert.Equal(t, "02.01 ніяких пар немає!", msg)
}

func TestScheduleMessage_Header(t *testing.T) {
	lessons := []model.Lesson{{Title: "Філософія", BeginTime: "08:00:00", Duration: "01:35:00"}}

	// 15 сентября 2025 — понедельник.
	msg := ScheduleMessage(lessons, date(2025, time.September, 15), 1)
	assert.Contains(t, msg, "<b>Пари на 15.09 (Понеділок 1):</b>")
}

func TestLessonLine_Regular(t *testing.T) {
	line := lessonLine(model.Lesson{
		Title:      "Філософія",
		LessonType: "Лекція",
		Teacher:    []string{"Іваненко І. І."},
		Location:   "ауд. 205",
		BeginTime:  "09:50:00",
		Duration:   "01:35:00",
	})

	assert.Contains(t, line, "*️⃣")
	assert.Contains(t, line, "09:50 - 11:25")
	assert.Contains(t, line, "Філософія")
	assert.Contains(t, line, "Лекція")
	assert.Contains(t, line, "Іваненко І. І.")
	assert.Contains(t, line, "ауд. 205")
	assert.NotContains(t, line, "скасовано")
}

func TestLessonLine_Cancelled(t *testing.T) {
	line := lessonLine(model.Lesson{
		Title:     "Філософія",
		Cancelled: true,
		BeginTime: "08:00:00",
		Duration:  "01:35:00",
	})

	assert.Contains(t, line, "❌")
	assert.Contains(t, line, "(скасовано)")
	assert.NotContains(t, line, "*️⃣")
}

func TestLessonLine_OnlineLocationBecomesLink(t *testing.T) {
	line := lessonLine(model.Lesson{
		Title:     "Англійська мова",
		Location:  "https://meet.example.com/room",
		BeginTime: "11:40:00",
		Duration:  "01:35:00",
	})

	assert.Contains(t, line, `<a href="https://meet.example.com/room">Посилання</a>`)
	assert.NotContains(t, line, "| https://meet.example.com/room")
}

func TestLessonLine_MissingFieldsRenderDash(t *testing.T) {
	line := lessonLine(model.Lesson{
		Title:     "Фізика",
		BeginTime: "08:00:00",
		Duration:  "01:35:00",
	})

	// Пустые вид, преподаватель и аудитория рендерятся прочерком.
	assert.Contains(t, line, "Фізика | - | - | -")
}

func TestLessonLine_UnparsableTimeFallsBackToRaw(t *testing.T) {
	line := lessonLine(model.Lesson{Title: "Фізика", BeginTime: "later"})
	assert.Contains(t, line, "later")
}

func TestOutOfRangeMessage_QuotesBothBounds(t *testing.T) {
	msg := OutOfRangeMessage(model.OutOfRange{StartDate: "01.09.2025", EndDate: "30.06.2026"})
	assert.Contains(t, msg, "01.09.2025")
	assert.Contains(t, msg, "30.06.2026")
}
