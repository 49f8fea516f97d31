package handlers

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/erasmus-survival/erasmusbot/internal/models"
	"github.com/erasmus-survival/erasmusbot/internal/service"
)

var timeRangeRegex = regexp.MustCompile(`^(\d{1,2}:\d{2})-(\d{1,2}:\d{2})$`)

// normalizeDay matches a user-typed day against the canonical weekday
// names, case-insensitively.
func normalizeDay(raw string) (string, bool) {
	for _, d := range models.Weekdays {
		if strings.EqualFold(d, raw) {
			return d, true
		}
	}
	return "", false
}

// ---------------------------------------------------------------------------
// ClassAddHandler – /class <day> <start>-<end> <title> [@location]
// ---------------------------------------------------------------------------

// ClassAddHandler adds a weekly class to the schedule. Colors rotate
// through the preset palette.
type ClassAddHandler struct {
	svc    *service.Service
	logger *logrus.Logger
}

// NewClassAddHandler creates a new ClassAddHandler.
func NewClassAddHandler(svc *service.Service, logger *logrus.Logger) *ClassAddHandler {
	return &ClassAddHandler{svc: svc, logger: logger}
}

// Handle processes the /class command.
func (h *ClassAddHandler) Handle(bot *tgbotapi.BotAPI, message *tgbotapi.Message, args []string) error {
	if len(args) < 3 {
		reply(bot, message,
			"*Usage:* `/class Monday 09:00-11:00 Microeconomics @B12`")
		return nil
	}

	day, ok := normalizeDay(args[0])
	if !ok {
		reply(bot, message, "❌ The first argument must be a weekday, e.g. `Monday`.")
		return nil
	}

	matches := timeRangeRegex.FindStringSubmatch(args[1])
	if matches == nil {
		reply(bot, message, "❌ Give the time as `HH:MM-HH:MM`, e.g. `09:00-11:00`.")
		return nil
	}
	startTime, endTime := matches[1], matches[2]

	rest := args[2:]
	location := ""
	for i, a := range rest {
		if strings.HasPrefix(a, "@") {
			location = strings.TrimPrefix(strings.Join(rest[i:], " "), "@")
			rest = rest[:i]
			break
		}
	}
	title := strings.Join(rest, " ")
	if title == "" {
		reply(bot, message, "❌ Please provide a class title.")
		return nil
	}

	color := service.EventColors[len(h.svc.ScheduleEvents())%len(service.EventColors)]

	event, err := h.svc.AddScheduleEvent(context.Background(), models.ScheduleEvent{
		Title:     title,
		Day:       day,
		StartTime: startTime,
		EndTime:   endTime,
		Location:  location,
		Color:     color,
	})
	if err != nil {
		return fmt.Errorf("add schedule event: %w", err)
	}

	text := fmt.Sprintf("🗓 Added *%s* on %s, %s–%s", event.Title, event.Day, event.StartTime, event.EndTime)
	if event.Location != "" {
		text += " @ " + event.Location
	}
	reply(bot, message, text)
	return nil
}

// ---------------------------------------------------------------------------
// ScheduleHandler – /schedule [day]
// ---------------------------------------------------------------------------

// ScheduleHandler shows the week, or one day, ordered by start time.
type ScheduleHandler struct {
	svc    *service.Service
	logger *logrus.Logger
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(svc *service.Service, logger *logrus.Logger) *ScheduleHandler {
	return &ScheduleHandler{svc: svc, logger: logger}
}

// Handle processes the /schedule command.
func (h *ScheduleHandler) Handle(bot *tgbotapi.BotAPI, message *tgbotapi.Message, args []string) error {
	days := models.Weekdays
	if len(args) > 0 {
		day, ok := normalizeDay(args[0])
		if !ok {
			reply(bot, message, "❌ Unknown day. Use a weekday name, e.g. `/schedule Monday`.")
			return nil
		}
		days = []string{day}
	}

	var b strings.Builder
	empty := true
	for _, day := range days {
		events := h.svc.EventsForDay(day)
		if len(events) == 0 {
			continue
		}
		empty = false
		fmt.Fprintf(&b, "*%s*\n", day)
		for i, e := range events {
			fmt.Fprintf(&b, "%d. %s–%s %s", i+1, e.StartTime, e.EndTime, e.Title)
			if e.Location != "" {
				fmt.Fprintf(&b, " @ %s", e.Location)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if empty {
		reply(bot, message, "🗓 Nothing scheduled. Add classes with `/class`.")
		return nil
	}
	reply(bot, message, strings.TrimSpace(b.String()))
	return nil
}

// ---------------------------------------------------------------------------
// ClassDeleteHandler – /delclass <day> <n>
// ---------------------------------------------------------------------------

// ClassDeleteHandler removes a class by its position in the day's listing.
type ClassDeleteHandler struct {
	svc    *service.Service
	logger *logrus.Logger
}

// NewClassDeleteHandler creates a new ClassDeleteHandler.
func NewClassDeleteHandler(svc *service.Service, logger *logrus.Logger) *ClassDeleteHandler {
	return &ClassDeleteHandler{svc: svc, logger: logger}
}

// Handle processes the /delclass command.
func (h *ClassDeleteHandler) Handle(bot *tgbotapi.BotAPI, message *tgbotapi.Message, args []string) error {
	if len(args) != 2 {
		reply(bot, message, "*Usage:* `/delclass Monday 1` — the number from `/schedule Monday`")
		return nil
	}

	day, ok := normalizeDay(args[0])
	if !ok {
		reply(bot, message, "❌ Unknown day.")
		return nil
	}

	events := h.svc.EventsForDay(day)
	idx, err := strconv.Atoi(args[1])
	if err != nil || idx < 1 || idx > len(events) {
		reply(bot, message, fmt.Sprintf("❌ Pick a number between 1 and %d.", len(events)))
		return nil
	}

	target := events[idx-1]
	if err := h.svc.DeleteScheduleEvent(context.Background(), target.ID); err != nil {
		return fmt.Errorf("delete schedule event: %w", err)
	}

	reply(bot, message, fmt.Sprintf("🗑 Removed *%s* (%s %s–%s).", target.Title, target.Day, target.StartTime, target.EndTime))
	return nil
}
