package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/erasmus-survival/erasmusbot/internal/models"
	"github.com/erasmus-survival/erasmusbot/internal/service"
)

// ---------------------------------------------------------------------------
// PantryHandler – /pantry
// ---------------------------------------------------------------------------

// PantryHandler lists the pantry with stock-level markers.
type PantryHandler struct {
	svc    *service.Service
	logger *logrus.Logger
}

// NewPantryHandler creates a new PantryHandler.
func NewPantryHandler(svc *service.Service, logger *logrus.Logger) *PantryHandler {
	return &PantryHandler{svc: svc, logger: logger}
}

// Handle processes the /pantry command.
func (h *PantryHandler) Handle(bot *tgbotapi.BotAPI, message *tgbotapi.Message, args []string) error {
	items := h.svc.PantryItems()
	if len(items) == 0 {
		reply(bot, message, "🧺 The pantry is empty. Add something with `/addpantry`.")
		return nil
	}

	var b strings.Builder
	b.WriteString("🧺 *Pantry*\n\n")
	for _, item := range items {
		level := item.StockLevel()
		fmt.Fprintf(&b, "%s %s %s — %.0f/%.0f %s",
			stockEmoji(string(level)), emoji(item.Icon), item.Name,
			item.CurrentQty, item.MaxQty, item.Unit)
		if level == models.StockEmpty {
			b.WriteString("  ← restock now")
		} else if level == models.StockLow {
			b.WriteString("  ← buy soon")
		}
		b.WriteString("\n")
	}

	reply(bot, message, b.String())
	return nil
}

// ---------------------------------------------------------------------------
// PantryUseHandler – /use <name> [amount]
// ---------------------------------------------------------------------------

// PantryUseHandler consumes some of a pantry item, addressed by name.
// The amount defaults to 1 and over-consumption clamps at zero.
type PantryUseHandler struct {
	svc    *service.Service
	logger *logrus.Logger
}

// NewPantryUseHandler creates a new PantryUseHandler.
func NewPantryUseHandler(svc *service.Service, logger *logrus.Logger) *PantryUseHandler {
	return &PantryUseHandler{svc: svc, logger: logger}
}

// Handle processes the /use command.
func (h *PantryUseHandler) Handle(bot *tgbotapi.BotAPI, message *tgbotapi.Message, args []string) error {
	if len(args) == 0 {
		reply(bot, message, "*Usage:* `/use Eggs 2` or `/use Milk`")
		return nil
	}

	amount := 1.0
	nameArgs := args
	if len(args) > 1 {
		if parsed, err := strconv.ParseFloat(args[len(args)-1], 64); err == nil {
			amount = parsed
			nameArgs = args[:len(args)-1]
		}
	}
	if amount <= 0 {
		reply(bot, message, "❌ The amount must be positive.")
		return nil
	}

	name := strings.Join(nameArgs, " ")
	item, ok := h.svc.PantryItemByName(name)
	if !ok {
		reply(bot, message, fmt.Sprintf("❌ No pantry item called %q. See `/pantry`.", name))
		return nil
	}

	if err := h.svc.ConsumePantryItem(context.Background(), item.ID, amount); err != nil {
		return fmt.Errorf("consume pantry item: %w", err)
	}

	item, _ = h.svc.PantryItemByName(name)
	text := fmt.Sprintf("%s %s: %.0f/%.0f %s left", emoji(item.Icon), item.Name, item.CurrentQty, item.MaxQty, item.Unit)
	switch item.StockLevel() {
	case models.StockEmpty:
		text += "\n🔴 All gone — put it on a shopping list!"
	case models.StockLow:
		text += "\n🟡 Running low."
	}
	reply(bot, message, text)
	return nil
}

// ---------------------------------------------------------------------------
// PantryRefillHandler – /refill <name>
// ---------------------------------------------------------------------------

// PantryRefillHandler sets an item back to full stock.
type PantryRefillHandler struct {
	svc    *service.Service
	logger *logrus.Logger
}

// NewPantryRefillHandler creates a new PantryRefillHandler.
func NewPantryRefillHandler(svc *service.Service, logger *logrus.Logger) *PantryRefillHandler {
	return &PantryRefillHandler{svc: svc, logger: logger}
}

// Handle processes the /refill command.
func (h *PantryRefillHandler) Handle(bot *tgbotapi.BotAPI, message *tgbotapi.Message, args []string) error {
	if len(args) == 0 {
		reply(bot, message, "*Usage:* `/refill Milk`")
		return nil
	}

	name := strings.Join(args, " ")
	item, ok := h.svc.PantryItemByName(name)
	if !ok {
		reply(bot, message, fmt.Sprintf("❌ No pantry item called %q. See `/pantry`.", name))
		return nil
	}

	if err := h.svc.RefillPantryItem(context.Background(), item.ID); err != nil {
		return fmt.Errorf("refill pantry item: %w", err)
	}

	reply(bot, message, fmt.Sprintf("✅ %s %s refilled to %.0f %s.", emoji(item.Icon), item.Name, item.MaxQty, item.Unit))
	return nil
}

// ---------------------------------------------------------------------------
// PantryAddHandler – /addpantry <name> <current>/<max> [unit]
// ---------------------------------------------------------------------------

// PantryAddHandler starts tracking a new pantry item.
type PantryAddHandler struct {
	svc    *service.Service
	logger *logrus.Logger
}

// NewPantryAddHandler creates a new PantryAddHandler.
func NewPantryAddHandler(svc *service.Service, logger *logrus.Logger) *PantryAddHandler {
	return &PantryAddHandler{svc: svc, logger: logger}
}

// Handle processes the /addpantry command.
func (h *PantryAddHandler) Handle(bot *tgbotapi.BotAPI, message *tgbotapi.Message, args []string) error {
	if len(args) < 2 {
		reply(bot, message,
			"*Usage:* `/addpantry Butter 1/2 pack`\n"+
				"The quantities are current/full-stock.")
		return nil
	}

	// The quantity argument is the first one shaped like "n/m"; everything
	// before it is the name, everything after is the unit.
	qtyIdx := -1
	var current, max float64
	for i, a := range args {
		parts := strings.SplitN(a, "/", 2)
		if len(parts) != 2 {
			continue
		}
		c, errC := strconv.ParseFloat(parts[0], 64)
		m, errM := strconv.ParseFloat(parts[1], 64)
		if errC == nil && errM == nil {
			qtyIdx, current, max = i, c, m
			break
		}
	}
	if qtyIdx < 1 || max <= 0 || current < 0 {
		reply(bot, message, "❌ Give quantities like `1/2` (current/full-stock, full-stock above zero).")
		return nil
	}

	name := strings.Join(args[:qtyIdx], " ")
	unit := strings.Join(args[qtyIdx+1:], " ")
	if unit == "" {
		unit = "units"
	}

	item, err := h.svc.AddPantryItem(context.Background(), models.PantryItem{
		Name:       name,
		Icon:       "package",
		CurrentQty: current,
		MaxQty:     max,
		Unit:       unit,
	})
	if err != nil {
		return fmt.Errorf("add pantry item: %w", err)
	}

	reply(bot, message, fmt.Sprintf("🧺 Now tracking *%s* — %.0f/%.0f %s.", item.Name, item.CurrentQty, item.MaxQty, item.Unit))
	return nil
}
