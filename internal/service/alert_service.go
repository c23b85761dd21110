package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/kaidigital/schedulekai_bot/internal/model"
	"github.com/kaidigital/schedulekai_bot/internal/scheduleapi"
)

// AlertService забирает и подтверждает оповещения пользователей.
type AlertService struct {
	api    *scheduleapi.Client
	logger *zap.Logger
}

func NewAlertService(api *scheduleapi.Client, logger *zap.Logger) *AlertService {
	return &AlertService{
		api:    api,
		logger: logger,
	}
}

// Fetch забирает пачку недоставленных оповещений.
func (s *AlertService) Fetch(ctx context.Context, batchSize int) ([]model.UserAlert, error) {
	return s.api.GetUserAlerts(ctx, batchSize)
}

// Acknowledge подтверждает доставку оповещений.
func (s *AlertService) Acknowledge(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	if err := s.api.DeleteUserAlerts(ctx, ids); err != nil {
		return err
	}

	s.logger.Debug("Alerts acknowledged", zap.Int("count", len(ids)))
	return nil
}
