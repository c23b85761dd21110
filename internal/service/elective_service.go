package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kaidigital/schedulekai_bot/internal/model"
	"github.com/kaidigital/schedulekai_bot/internal/scheduleapi"
)

// ElectiveService отвечает за каталог выборочных дисциплин
// и персональный набор пользователя.
type ElectiveService struct {
	api    *scheduleapi.Client
	logger *zap.Logger
}

func NewElectiveService(api *scheduleapi.Client, logger *zap.Logger) *ElectiveService {
	return &ElectiveService{
		api:    api,
		logger: logger,
	}
}

// Levels возвращает уровни выборочных дисциплин.
func (s *ElectiveService) Levels(ctx context.Context) ([]model.Level, error) {
	return s.api.GetElectiveLevels(ctx)
}

// Search ищет дисциплины по частичному названию.
func (s *ElectiveService) Search(ctx context.Context, lessonName string, sourceID int64, levelID *int64) ([]model.LessonDescriptor, error) {
	return s.api.SearchElectiveLessons(ctx, lessonName, sourceID, levelID)
}

// Types возвращает виды занятий дисциплины. Если дескриптор уже содержит
// список видов, лишний запрос к API не делается.
func (s *ElectiveService) Types(ctx context.Context, lesson model.LessonDescriptor) ([]string, error) {
	if len(lesson.AvailableTypes) > 0 {
		return lesson.AvailableTypes, nil
	}
	return s.api.GetElectiveTypes(ctx, lesson.Name, lesson.SourceID)
}

// Subgroups возвращает подгруппы дисциплины для выбранного вида занятий.
func (s *ElectiveService) Subgroups(ctx context.Context, lesson model.LessonDescriptor, lessonType string) ([]int, error) {
	if len(lesson.Subgroups) > 0 {
		return lesson.Subgroups, nil
	}
	return s.api.GetElectiveSubgroups(ctx, lesson.SourceID, lesson.Name, lessonType)
}

// Enroll записывает пользователя на дисциплину.
// В теле запроса ID — это SourceId дисциплины.
func (s *ElectiveService) Enroll(ctx context.Context, telegramID int64, lesson model.LessonDescriptor, lessonType string, subgroup int) error {
	elective := model.SelectedElective{
		ID:             lesson.SourceID,
		LessonName:     lesson.Name,
		LessonType:     lessonType,
		SubgroupNumber: subgroup,
	}

	if err := s.api.AddUserElective(ctx, telegramID, elective); err != nil {
		return fmt.Errorf("add elective %q: %w", lesson.Name, err)
	}

	s.logger.Info("Elective enrolled",
		zap.Int64("telegram_id", telegramID),
		zap.String("lesson", lesson.Name),
		zap.String("type", lessonType),
		zap.Int("subgroup", subgroup))
	return nil
}

// List возвращает выбранные пользователем дисциплины (ID — LessonId).
func (s *ElectiveService) List(ctx context.Context, telegramID int64) ([]model.SelectedElective, error) {
	return s.api.GetUserElectives(ctx, telegramID)
}

// Remove удаляет дисциплину из набора пользователя.
func (s *ElectiveService) Remove(ctx context.Context, telegramID, electiveID int64) error {
	if err := s.api.DeleteUserElective(ctx, telegramID, electiveID); err != nil {
		return fmt.Errorf("delete elective %d: %w", electiveID, err)
	}

	s.logger.Info("Elective removed",
		zap.Int64("telegram_id", telegramID),
		zap.Int64("elective_id", electiveID))
	return nil
}
