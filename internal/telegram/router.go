package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/erasmus-survival/erasmusbot/internal/metrics"
)

// Router parses incoming messages and dispatches commands to their
// registered handlers.
type Router struct {
	chatID   int64
	logger   *logrus.Logger
	handlers map[string]CommandHandler
}

// CommandHandler defines the interface for command handlers
type CommandHandler interface {
	Handle(bot *tgbotapi.BotAPI, message *tgbotapi.Message, args []string) error
}

// NewRouter creates a router that only accepts messages from chatID.
func NewRouter(chatID int64, logger *logrus.Logger) *Router {
	return &Router{
		chatID:   chatID,
		logger:   logger,
		handlers: make(map[string]CommandHandler),
	}
}

// RegisterCommand registers a command handler
func (r *Router) RegisterCommand(command string, handler CommandHandler) {
	r.handlers[command] = handler
	r.logger.Debugf("Registered command: %s", command)
}

// HandleMessage handles one incoming message.
func (r *Router) HandleMessage(bot *tgbotapi.BotAPI, message *tgbotapi.Message) {
	if message.Chat.ID != r.chatID {
		r.logger.WithFields(logrus.Fields{
			"chat_id": message.Chat.ID,
			"user_id": message.From.ID,
		}).Warn("Ignoring message from unknown chat")
		return
	}

	if message.Text == "" || !message.IsCommand() {
		return
	}

	command := message.Command()
	args := strings.Fields(message.CommandArguments())

	r.logger.WithFields(logrus.Fields{
		"command": command,
		"args":    len(args),
	}).Info("Received command")

	handler, exists := r.handlers[command]
	if !exists {
		unknownMsg := tgbotapi.NewMessage(message.Chat.ID, "❓ Unknown command. Use /help to see available commands.")
		bot.Send(unknownMsg)
		return
	}

	metrics.CommandsHandled.WithLabelValues(command).Inc()

	if err := handler.Handle(bot, message, args); err != nil {
		r.logger.WithFields(logrus.Fields{
			"command": command,
			"error":   err,
		}).Error("Command handler failed")

		errorMsg := tgbotapi.NewMessage(message.Chat.ID, "❌ Something went wrong. Please try again.")
		bot.Send(errorMsg)
	}
}
