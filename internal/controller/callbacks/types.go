package callbacks

import (
	"time"

	"go.uber.org/zap"

	"github.com/kaidigital/schedulekai_bot/internal/controller/state"
	"github.com/kaidigital/schedulekai_bot/internal/service"
)

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	GroupService    *service.GroupService
	ElectiveService *service.ElectiveService
	ScheduleService *service.ScheduleService
	States          *state.Manager
	Location        *time.Location
	Logger          *zap.Logger
}

// NewHandler создаёт новый обработчик callbacks с зависимостями
func NewHandler(
	groupService *service.GroupService,
	electiveService *service.ElectiveService,
	scheduleService *service.ScheduleService,
	states *state.Manager,
	location *time.Location,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		GroupService:    groupService,
		ElectiveService: electiveService,
		ScheduleService: scheduleService,
		States:          states,
		Location:        location,
		Logger:          logger,
	}
}
