package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// reply sends a Markdown-formatted message back to the chat the command
// came from. Send errors are swallowed here; the router already logs
// handler failures and there is nothing useful to do about a lost reply.
func reply(bot *tgbotapi.BotAPI, message *tgbotapi.Message, text string) {
	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	bot.Send(msg)
}
