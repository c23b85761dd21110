package format

import (
	"fmt"
	"strconv"

	"github.com/kaidigital/schedulekai_bot/internal/model"
)

// Время начала пар по их номерам.
var lessonStartTimes = map[string]string{
	"1": "8:00",
	"2": "9:50",
	"3": "11:40",
	"4": "13:30",
	"5": "15:20",
	"6": "17:10",
	"7": "19:00",
}

// GroupRemovedMessage — оповещение об удалении группы из расписания.
func GroupRemovedMessage(alert model.UserAlert) string {
	result := fmt.Sprintf("⚠️ <b>Ваша група '%s' була видалена з розкладу.</b>\n", alert.Options["GroupName"])
	result += "Будь ласка, оберіть нову групу командою /change_group.\n"
	result += "Якщо вважаєте, що сталася помилка - зверніться у підтримку бота."
	return result
}

// ElectiveRemovedMessage — оповещение об удалении выборочной дисциплины.
func ElectiveRemovedMessage(alert model.UserAlert) string {
	startTime := alert.Options["LessonStartTime"]
	if t, ok := lessonStartTimes[startTime]; ok {
		startTime = t
	}

	result := "⚠️ <b>Ваша вибіркова пара була видалена з розкладу.</b>\n"
	result += fmt.Sprintf("<b>Предмет:</b> %s\n", alert.Options["LessonName"])
	result += fmt.Sprintf("<b>Вид:</b> %s\n", alert.Options["LessonType"])
	if day, err := strconv.Atoi(alert.Options["LessonDay"]); err == nil {
		result += fmt.Sprintf("<b>Тиждень:</b> %d\n", day/7+1)
		result += fmt.Sprintf("<b>День:</b> %s\n", dayNames[(day%7+1)%7])
	}
	result += fmt.Sprintf("<b>Час:</b> %s\n\n", startTime)
	result += "Аби додати іншу вибіркову скористайтесь /elective_add.\n"
	result += "Якщо вважаєте, що сталася помилка - зверніться у підтримку бота."
	return result
}
