package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/kaidigital/schedulekai_bot/internal/model"
	"github.com/kaidigital/schedulekai_bot/internal/scheduleapi"
)

// ScheduleService отвечает за получение расписания на дату.
type ScheduleService struct {
	api    *scheduleapi.Client
	logger *zap.Logger
}

func NewScheduleService(api *scheduleapi.Client, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{
		api:    api,
		logger: logger,
	}
}

// DaySchedule возвращает занятия на дату, отсортированные по времени начала.
func (s *ScheduleService) DaySchedule(ctx context.Context, telegramID int64, date time.Time) ([]model.Lesson, error) {
	lessons, err := s.api.GetSchedule(ctx, date, telegramID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(lessons, func(i, j int) bool {
		return lessons[i].BeginTime < lessons[j].BeginTime
	})
	return lessons, nil
}
