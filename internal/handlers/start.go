package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// StartHandler handles the /start command
type StartHandler struct {
	logger *logrus.Logger
}

// NewStartHandler creates a new StartHandler.
func NewStartHandler(logger *logrus.Logger) *StartHandler {
	return &StartHandler{logger: logger}
}

// Handle processes the /start command.
func (h *StartHandler) Handle(bot *tgbotapi.BotAPI, message *tgbotapi.Message, args []string) error {
	text := "👋 *Welcome to Erasmus Survival!*\n\n" +
		"I keep track of your expenses, pantry, shopping lists, class " +
		"schedule and reminders — everything you need to survive the semester.\n\n" +
		"Use /help to see what I can do."
	reply(bot, message, text)
	return nil
}
