package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kaidigital/schedulekai_bot/internal/format"
	"github.com/kaidigital/schedulekai_bot/internal/model"
	"github.com/kaidigital/schedulekai_bot/internal/scheduleapi"
)

// GroupService отвечает за привязку пользователя к учебной группе.
type GroupService struct {
	api    *scheduleapi.Client
	logger *zap.Logger
}

func NewGroupService(api *scheduleapi.Client, logger *zap.Logger) *GroupService {
	return &GroupService{
		api:    api,
		logger: logger,
	}
}

// UserGroup возвращает текущую привязку пользователя.
// nil без ошибки означает, что группа ещё не выбрана.
func (s *GroupService) UserGroup(ctx context.Context, telegramID int64) (*model.UserGroup, error) {
	groups, err := s.api.GetUserGroups(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("get user groups: %w", err)
	}
	if len(groups) == 0 {
		return nil, nil
	}
	return &groups[0], nil
}

// CheckGroup нормализует название группы и проверяет её существование.
// Возвращает нормализованное название.
func (s *GroupService) CheckGroup(ctx context.Context, rawName string) (string, bool, error) {
	name := format.NormalizeGroupName(rawName)

	exists, err := s.api.GroupExists(ctx, name)
	if err != nil {
		return name, false, fmt.Errorf("check group %q: %w", name, err)
	}
	return name, exists, nil
}

// Subgroups возвращает номера подгрупп группы как их отдаёт API,
// включая сентинел "для всех", если он есть.
func (s *GroupService) Subgroups(ctx context.Context, groupName string) ([]int, error) {
	subgroups, err := s.api.GetGroupSubgroups(ctx, groupName)
	if err != nil {
		return nil, fmt.Errorf("get subgroups of %q: %w", groupName, err)
	}
	return subgroups, nil
}

// AssignGroup привязывает пользователя к группе. Если пользователь ещё
// не зарегистрирован, регистрирует его и повторяет привязку один раз.
func (s *GroupService) AssignGroup(ctx context.Context, telegramID int64, groupName string, subgroup int) error {
	err := s.api.UpdateUserGroup(ctx, telegramID, groupName, subgroup)
	if err == nil {
		s.logger.Info("User group updated",
			zap.Int64("telegram_id", telegramID),
			zap.String("group", groupName),
			zap.Int("subgroup", subgroup))
		return nil
	}

	if !scheduleapi.IsNotFound(err) {
		return fmt.Errorf("update user group: %w", err)
	}

	// 404 может означать и незарегистрированного пользователя:
	// создаём его и пробуем ещё раз.
	if createErr := s.api.CreateUser(ctx, telegramID); createErr != nil {
		return fmt.Errorf("create user: %w", createErr)
	}

	s.logger.Info("New user registered", zap.Int64("telegram_id", telegramID))

	if err := s.api.UpdateUserGroup(ctx, telegramID, groupName, subgroup); err != nil {
		return fmt.Errorf("update user group after registration: %w", err)
	}

	s.logger.Info("User group set",
		zap.Int64("telegram_id", telegramID),
		zap.String("group", groupName),
		zap.Int("subgroup", subgroup))
	return nil
}
