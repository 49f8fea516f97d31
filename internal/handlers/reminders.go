package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/erasmus-survival/erasmusbot/internal/models"
	"github.com/erasmus-survival/erasmusbot/internal/service"
)

// ---------------------------------------------------------------------------
// RemindHandler – /remind <YYYY-MM-DD> <title> [#category]
// ---------------------------------------------------------------------------

// RemindHandler creates a one-off dated reminder. A trailing "#Name"
// argument picks one of the suggested categories; the default is Other.
type RemindHandler struct {
	svc    *service.Service
	logger *logrus.Logger
}

// NewRemindHandler creates a new RemindHandler.
func NewRemindHandler(svc *service.Service, logger *logrus.Logger) *RemindHandler {
	return &RemindHandler{svc: svc, logger: logger}
}

// Handle processes the /remind command.
func (h *RemindHandler) Handle(bot *tgbotapi.BotAPI, message *tgbotapi.Message, args []string) error {
	if len(args) < 2 {
		reply(bot, message,
			"*Usage:* `/remind 2026-09-15 Renew residence card #ID Card`\n"+
				"Categories: ID Card, Bank, Landlord, University, Health, Other")
		return nil
	}

	date, err := time.Parse("2006-01-02", args[0])
	if err != nil {
		reply(bot, message, "❌ The date must look like `2026-09-15`.")
		return nil
	}

	rest := args[1:]
	category := models.ReminderCategory{Label: "Other", Icon: "pin"}
	for i, a := range rest {
		if strings.HasPrefix(a, "#") {
			want := strings.TrimPrefix(strings.Join(rest[i:], " "), "#")
			for _, c := range models.ReminderCategories {
				if strings.EqualFold(c.Label, want) {
					category = c
					break
				}
			}
			rest = rest[:i]
			break
		}
	}

	title := strings.Join(rest, " ")
	if title == "" {
		reply(bot, message, "❌ Please provide a reminder title.")
		return nil
	}

	reminder, err := h.svc.AddReminder(context.Background(), models.Reminder{
		Title:    title,
		Date:     date,
		Category: category.Label,
		Icon:     category.Icon,
	})
	if err != nil {
		return fmt.Errorf("add reminder: %w", err)
	}

	reply(bot, message, fmt.Sprintf("⏰ %s Reminder set for *%s*: %s",
		emoji(reminder.Icon), reminder.Date.Format("Mon, 02 Jan 2006"), reminder.Title))
	return nil
}

// ---------------------------------------------------------------------------
// RemindersHandler – /reminders
// ---------------------------------------------------------------------------

// RemindersHandler lists every reminder, pending first.
type RemindersHandler struct {
	svc    *service.Service
	logger *logrus.Logger
}

// NewRemindersHandler creates a new RemindersHandler.
func NewRemindersHandler(svc *service.Service, logger *logrus.Logger) *RemindersHandler {
	return &RemindersHandler{svc: svc, logger: logger}
}

// Handle processes the /reminders command.
func (h *RemindersHandler) Handle(bot *tgbotapi.BotAPI, message *tgbotapi.Message, args []string) error {
	reminders := h.svc.Reminders()
	if len(reminders) == 0 {
		reply(bot, message, "⏰ No reminders. Add one with `/remind`.")
		return nil
	}

	now := time.Now()
	var b strings.Builder
	b.WriteString("⏰ *Reminders*\n\n")
	for i, r := range reminders {
		box := "⬜"
		if r.Done {
			box = "✅"
		}
		fmt.Fprintf(&b, "%d. %s %s %s — %s", i+1, box, emoji(r.Icon), r.Title, r.Date.Format("2 Jan"))
		if r.IsDue(now) {
			b.WriteString("  ‼️")
		}
		b.WriteString("\n")
	}

	reply(bot, message, b.String())
	return nil
}

// ---------------------------------------------------------------------------
// ReminderDoneHandler – /done <n>
// ---------------------------------------------------------------------------

// ReminderDoneHandler toggles a reminder's done flag by its position in
// the /reminders listing.
type ReminderDoneHandler struct {
	svc    *service.Service
	logger *logrus.Logger
}

// NewReminderDoneHandler creates a new ReminderDoneHandler.
func NewReminderDoneHandler(svc *service.Service, logger *logrus.Logger) *ReminderDoneHandler {
	return &ReminderDoneHandler{svc: svc, logger: logger}
}

// Handle processes the /done command.
func (h *ReminderDoneHandler) Handle(bot *tgbotapi.BotAPI, message *tgbotapi.Message, args []string) error {
	reminders := h.svc.Reminders()

	if len(args) != 1 {
		reply(bot, message, "*Usage:* `/done 1` — the number from `/reminders`")
		return nil
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil || idx < 1 || idx > len(reminders) {
		reply(bot, message, fmt.Sprintf("❌ Pick a number between 1 and %d.", len(reminders)))
		return nil
	}

	target := reminders[idx-1]
	if err := h.svc.ToggleReminder(context.Background(), target.ID); err != nil {
		return fmt.Errorf("toggle reminder: %w", err)
	}

	if target.Done {
		reply(bot, message, fmt.Sprintf("⬜ Reopened *%s*.", target.Title))
	} else {
		reply(bot, message, fmt.Sprintf("✅ Done: *%s*.", target.Title))
	}
	return nil
}

// ---------------------------------------------------------------------------
// ReminderDeleteHandler – /delremind <n>
// ---------------------------------------------------------------------------

// ReminderDeleteHandler deletes a reminder by its listing position.
type ReminderDeleteHandler struct {
	svc    *service.Service
	logger *logrus.Logger
}

// NewReminderDeleteHandler creates a new ReminderDeleteHandler.
func NewReminderDeleteHandler(svc *service.Service, logger *logrus.Logger) *ReminderDeleteHandler {
	return &ReminderDeleteHandler{svc: svc, logger: logger}
}

// Handle processes the /delremind command.
func (h *ReminderDeleteHandler) Handle(bot *tgbotapi.BotAPI, message *tgbotapi.Message, args []string) error {
	reminders := h.svc.Reminders()

	if len(args) != 1 {
		reply(bot, message, "*Usage:* `/delremind 1` — the number from `/reminders`")
		return nil
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil || idx < 1 || idx > len(reminders) {
		reply(bot, message, fmt.Sprintf("❌ Pick a number between 1 and %d.", len(reminders)))
		return nil
	}

	target := reminders[idx-1]
	if err := h.svc.DeleteReminder(context.Background(), target.ID); err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}

	reply(bot, message, fmt.Sprintf("🗑 Deleted reminder *%s*.", target.Title))
	return nil
}
