package model

import (
	"fmt"
	"time"
)

// Lesson — одно занятие в расписании на конкретную дату.
type Lesson struct {
	Title      string   `json:"title"`
	LessonType string   `json:"lessonType"`
	Teacher    []string `json:"teacher"`
	Location   string   `json:"location"`
	Cancelled  bool     `json:"cancelled"`
	BeginTime  string   `json:"beginTime"` // "HH:MM:SS"
	Duration   string   `json:"duration"`  // "HH:MM:SS"
	TimeZoneID string   `json:"timeZoneId"`
}

// Begin разбирает время начала занятия.
func (l Lesson) Begin() (time.Time, error) {
	t, err := time.Parse("15:04:05", l.BeginTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse beginTime %q: %w", l.BeginTime, err)
	}
	return t, nil
}

// End возвращает время окончания занятия (начало + длительность).
func (l Lesson) End() (time.Time, error) {
	begin, err := l.Begin()
	if err != nil {
		return time.Time{}, err
	}
	var h, m, s int
	if _, err := fmt.Sscanf(l.Duration, "%d:%d:%d", &h, &m, &s); err != nil {
		return time.Time{}, fmt.Errorf("parse duration %q: %w", l.Duration, err)
	}
	d := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second
	return begin.Add(d), nil
}
