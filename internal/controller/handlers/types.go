package handlers

import (
	"time"

	"go.uber.org/zap"

	"github.com/kaidigital/schedulekai_bot/internal/controller/state"
	"github.com/kaidigital/schedulekai_bot/internal/service"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	groupService    *service.GroupService
	electiveService *service.ElectiveService
	scheduleService *service.ScheduleService
	states          *state.Manager
	location        *time.Location
	logger          *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	groupService *service.GroupService,
	electiveService *service.ElectiveService,
	scheduleService *service.ScheduleService,
	states *state.Manager,
	location *time.Location,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		groupService:    groupService,
		electiveService: electiveService,
		scheduleService: scheduleService,
		states:          states,
		location:        location,
		logger:          logger,
	}
}
