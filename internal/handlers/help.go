package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// HelpHandler handles the /help command
type HelpHandler struct {
	logger *logrus.Logger
}

// NewHelpHandler creates a new HelpHandler.
func NewHelpHandler(logger *logrus.Logger) *HelpHandler {
	return &HelpHandler{logger: logger}
}

// Handle processes the /help command.
func (h *HelpHandler) Handle(bot *tgbotapi.BotAPI, message *tgbotapi.Message, args []string) error {
	text := "*Erasmus Survival commands*\n\n" +
		"💶 *Expenses*\n" +
		"`/spent 12.50 groceries #Survival` — record an expense\n" +
		"`/expenses` — this month's expenses and totals\n" +
		"`/delexpense 2` — delete the n-th listed expense\n\n" +
		"🧺 *Pantry*\n" +
		"`/pantry` — stock levels\n" +
		"`/use Eggs 2` — consume some of an item\n" +
		"`/refill Milk` — back to full stock\n" +
		"`/addpantry Butter 1/2 pack` — track a new item\n\n" +
		"🛒 *Shopping*\n" +
		"`/lists` — all lists and their items\n" +
		"`/buy Milk x2` — add to the first list\n" +
		"`/buy Pharmacy/Cleaning: Soap` — add to a named list\n" +
		"`/check Milk` — tick an item off (restocks the pantry!)\n" +
		"`/clearbought` — drop everything already bought\n\n" +
		"🗓 *Schedule*\n" +
		"`/class Monday 09:00-11:00 Microeconomics @B12` — add a class\n" +
		"`/schedule` or `/schedule Monday` — view the week or a day\n" +
		"`/delclass Monday 1` — remove a class\n\n" +
		"⏰ *Reminders*\n" +
		"`/remind 2026-09-15 Renew residence card #ID Card`\n" +
		"`/reminders` — list, `/done 1` — mark done, `/delremind 1` — delete\n\n" +
		"💾 *Data*\n" +
		"`/export` — download a JSON backup\n" +
		"`/reset confirm` — wipe everything back to defaults"
	reply(bot, message, text)
	return nil
}
