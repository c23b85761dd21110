package format

import (
	"strconv"
	"time"
)

// WeekParity возвращает номер учебной недели (1 или 2), считая от
// 1 сентября опорного года.
func WeekParity(referenceYear int, day time.Time) int {
	sept1 := time.Date(referenceYear, time.September, 1, 0, 0, 0, 0, day.Location())
	days := int(day.Sub(sept1).Hours() / 24)

	weeks := days / 7
	if days < 0 && days%7 != 0 {
		weeks--
	}

	if weeks%2 == 0 {
		return 1
	}
	return 2
}

// WeekMessage — сообщение команды /week: текущая неделя и время пар.
func WeekMessage(parity int) string {
	msg := "📗 Триває " + strconv.Itoa(parity) + "-й тиждень.\n"
	msg += "\n⏰ Початок та кінець пар:"
	msg += "\n• 1 пара - 8.00 - 9.35"
	msg += "\n• 2 пара - 9.50 - 11.25"
	msg += "\n• 3 пара - 11.40 - 13.15"
	msg += "\n• 4 пара - 13.30 - 15.05"
	msg += "\n• 5 пара - 15.20 - 16.55"
	msg += "\n• 6 пара - 17.10 - 18.45"
	msg += "\n• 7 пара - 19.00 - 20.35"
	msg += "\n\n• • • • • • • • • • • • • • • • • • •\n🤖 Надіслано ботом @schedulekai_bot"
	return msg
}
