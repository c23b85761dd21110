package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekParity(t *testing.T) {
	tests := []struct {
		name string
		day  time.Time
		want int
	}{
		{"first of september", date(2025, time.September, 1), 1},
		{"end of first week", date(2025, time.September, 7), 1},
		{"start of second week", date(2025, time.September, 8), 2},
		{"third week is odd again", date(2025, time.September, 15), 1},
		{"deep into semester", date(2025, time.November, 10), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekParity(2025, tt.day))
		})
	}
}

func TestWeekParity_BeforeSeptemberContinuesSequence(t *testing.T) {
	// Неделя перед 1 сентября — продолжение той же чередующейся
	// последовательности, а не сброс.
	assert.Equal(t, 2, WeekParity(2025, date(2025, time.August, 31)))
	assert.Equal(t, 2, WeekParity(2025, date(2025, time.August, 25)))
	assert.Equal(t, 1, WeekParity(2025, date(2025, time.August, 24)))
}

func TestWeekMessage(t *testing.T) {
	msg := WeekMessage(2)
	assert.Contains(t, msg, "2-й тиждень")
	assert.Contains(t, msg, "1 пара - 8.00 - 9.35")
	assert.Contains(t, msg, "@schedulekai_bot")
}
