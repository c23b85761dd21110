package controller

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/kaidigital/schedulekai_bot/internal/controller/callbacks"
	"github.com/kaidigital/schedulekai_bot/internal/controller/handlers"
	"github.com/kaidigital/schedulekai_bot/internal/controller/state"
	"github.com/kaidigital/schedulekai_bot/internal/service"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	groupService *service.GroupService,
	electiveService *service.ElectiveService,
	scheduleService *service.ScheduleService,
	location *time.Location,
	logger *zap.Logger,
) *BotController {
	// Создаём менеджер состояний
	stateManager := state.NewManager()

	// Создаём обработчики команд
	cmdHandlers := handlers.NewHandlers(
		groupService,
		electiveService,
		scheduleService,
		stateManager,
		location,
		logger,
	)

	// Создаём callback handler с теми же зависимостями
	callbackHandler := callbacks.NewHandler(
		groupService,
		electiveService,
		scheduleService,
		stateManager,
		location,
		logger,
	)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	// Регистрируем команды
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/week", bot.MatchTypeExact, c.handlers.HandleWeek)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/tomorrow", bot.MatchTypeExact, c.handlers.HandleTomorrow)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/change_group", bot.MatchTypeExact, c.handlers.HandleChangeGroup)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/elective_add", bot.MatchTypeExact, c.handlers.HandleElectiveAdd)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/elective_list", bot.MatchTypeExact, c.handlers.HandleElectiveList)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// /schedule принимает необязательную дату, поэтому матчится по префиксу
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/schedule", bot.MatchTypePrefix, c.handlers.HandleSchedule)

	// Обработчик текстовых сообщений (для диалогов с состояниями)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "schedule", Description: "📅 Розклад на сьогодні або дату"},
		{Command: "tomorrow", Description: "🌅 Розклад на завтра"},
		{Command: "week", Description: "🗓 Який зараз тиждень"},
		{Command: "change_group", Description: "👥 Обрати або змінити групу"},
		{Command: "elective_add", Description: "➕ Додати вибіркову пару"},
		{Command: "elective_list", Description: "📚 Мої вибіркові пари"},
		{Command: "cancel", Description: "❌ Скасувати поточну дію"},
		{Command: "help", Description: "❓ Довідка по командах"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
