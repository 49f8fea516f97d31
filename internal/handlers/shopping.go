package handlers

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/erasmus-survival/erasmusbot/internal/models"
	"github.com/erasmus-survival/erasmusbot/internal/service"
)

var quantityRegex = regexp.MustCompile(`^x(\d+)$`)

// splitListPrefix peels an optional "List name:" prefix off the raw
// argument string and resolves it against the existing lists.
func splitListPrefix(svc *service.Service, raw string) (models.ShoppingList, string, bool) {
	if idx := strings.Index(raw, ":"); idx > 0 {
		if list, ok := svc.ShoppingListByName(strings.TrimSpace(raw[:idx])); ok {
			return list, strings.TrimSpace(raw[idx+1:]), true
		}
	}

	lists := svc.ShoppingLists()
	if len(lists) == 0 {
		return models.ShoppingList{}, raw, false
	}
	return lists[0], raw, true
}

// ---------------------------------------------------------------------------
// ListsHandler – /lists
// ---------------------------------------------------------------------------

// ListsHandler shows every shopping list with its items, unchecked first.
type ListsHandler struct {
	svc    *service.Service
	logger *logrus.Logger
}

// NewListsHandler creates a new ListsHandler.
func NewListsHandler(svc *service.Service, logger *logrus.Logger) *ListsHandler {
	return &ListsHandler{svc: svc, logger: logger}
}

// Handle processes the /lists command.
func (h *ListsHandler) Handle(bot *tgbotapi.BotAPI, message *tgbotapi.Message, args []string) error {
	lists := h.svc.ShoppingLists()
	if len(lists) == 0 {
		reply(bot, message, "🛒 No shopping lists yet.")
		return nil
	}

	var b strings.Builder
	for _, list := range lists {
		fmt.Fprintf(&b, "%s *%s* (%d to buy)\n", emoji(list.Icon), list.Name, list.Remaining())
		for _, item := range list.DisplayItems() {
			box := "⬜"
			if item.Checked {
				box = "✅"
			}
			fmt.Fprintf(&b, "%s %s", box, item.Name)
			if item.Quantity != "1" {
				fmt.Fprintf(&b, " (x%s)", item.Quantity)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	reply(bot, message, strings.TrimSpace(b.String()))
	return nil
}

// ---------------------------------------------------------------------------
// BuyHandler – /buy [list:] <item> [xN]
// ---------------------------------------------------------------------------

// BuyHandler adds an item to a shopping list. Without a "List name:"
// prefix the item goes on the first list. An optional quantity suffix
// like "x2" can be appended at the end.
type BuyHandler struct {
	svc    *service.Service
	logger *logrus.Logger
}

// NewBuyHandler creates a new BuyHandler.
func NewBuyHandler(svc *service.Service, logger *logrus.Logger) *BuyHandler {
	return &BuyHandler{svc: svc, logger: logger}
}

// Handle processes the /buy command.
func (h *BuyHandler) Handle(bot *tgbotapi.BotAPI, message *tgbotapi.Message, args []string) error {
	if len(args) == 0 {
		reply(bot, message,
			"❌ Please provide an item name.\n\n"+
				"*Usage:*\n"+
				"`/buy Milk x2`\n"+
				"`/buy Pharmacy/Cleaning: Soap`")
		return nil
	}

	list, rest, ok := splitListPrefix(h.svc, strings.Join(args, " "))
	if !ok {
		reply(bot, message, "🛒 No shopping lists exist yet.")
		return nil
	}

	parts := strings.Fields(rest)
	if len(parts) == 0 {
		reply(bot, message, "❌ Please provide an item name.")
		return nil
	}

	quantity := ""
	if matches := quantityRegex.FindStringSubmatch(parts[len(parts)-1]); matches != nil && len(parts) > 1 {
		quantity = matches[1]
		parts = parts[:len(parts)-1]
	}
	itemName := strings.Join(parts, " ")

	item, err := h.svc.AddShoppingItem(context.Background(), list.ID, itemName, quantity)
	if err != nil {
		return fmt.Errorf("add shopping item: %w", err)
	}
	if item == nil {
		reply(bot, message, "❌ That list no longer exists.")
		return nil
	}

	var quantityDisplay string
	if item.Quantity != "1" {
		quantityDisplay = fmt.Sprintf(" (x%s)", item.Quantity)
	}
	reply(bot, message, fmt.Sprintf("🛒 Added to *%s*:\n⬜ %s%s", list.Name, item.Name, quantityDisplay))
	return nil
}

// ---------------------------------------------------------------------------
// CheckHandler – /check [list:] <item>
// ---------------------------------------------------------------------------

// CheckHandler toggles a shopping item by name. Ticking an item off marks
// it bought, which also refills a pantry item of the same name — that is
// the point of checking things off here instead of in your head.
type CheckHandler struct {
	svc    *service.Service
	logger *logrus.Logger
}

// NewCheckHandler creates a new CheckHandler.
func NewCheckHandler(svc *service.Service, logger *logrus.Logger) *CheckHandler {
	return &CheckHandler{svc: svc, logger: logger}
}

// Handle processes the /check command.
func (h *CheckHandler) Handle(bot *tgbotapi.BotAPI, message *tgbotapi.Message, args []string) error {
	if len(args) == 0 {
		reply(bot, message, "*Usage:* `/check Milk` or `/check Pharmacy/Cleaning: Soap`")
		return nil
	}

	raw := strings.Join(args, " ")

	// With an explicit "List:" prefix only that list is searched;
	// otherwise the first list containing the item wins.
	var candidates []models.ShoppingList
	if list, rest, ok := splitListPrefixStrict(h.svc, raw); ok {
		candidates = []models.ShoppingList{list}
		raw = rest
	} else {
		candidates = h.svc.ShoppingLists()
	}

	for _, list := range candidates {
		for _, item := range list.Items {
			if !strings.EqualFold(item.Name, raw) {
				continue
			}
			if err := h.svc.ToggleShoppingItem(context.Background(), list.ID, item.ID); err != nil {
				return fmt.Errorf("toggle shopping item: %w", err)
			}

			if item.Checked {
				reply(bot, message, fmt.Sprintf("⬜ Unchecked *%s* on %s.", item.Name, list.Name))
				return nil
			}

			text := fmt.Sprintf("✅ Got *%s* (%s).", item.Name, list.Name)
			if pantryItem, ok := h.svc.PantryItemByName(item.Name); ok {
				text += fmt.Sprintf("\n🧺 Pantry restocked: %s back to %.0f %s.", pantryItem.Name, pantryItem.MaxQty, pantryItem.Unit)
			}
			reply(bot, message, text)
			return nil
		}
	}

	reply(bot, message, fmt.Sprintf("❌ Couldn't find %q on any list. See `/lists`.", raw))
	return nil
}

// splitListPrefixStrict resolves a "List name:" prefix without falling
// back to the first list.
func splitListPrefixStrict(svc *service.Service, raw string) (models.ShoppingList, string, bool) {
	idx := strings.Index(raw, ":")
	if idx <= 0 {
		return models.ShoppingList{}, raw, false
	}
	list, ok := svc.ShoppingListByName(strings.TrimSpace(raw[:idx]))
	if !ok {
		return models.ShoppingList{}, raw, false
	}
	return list, strings.TrimSpace(raw[idx+1:]), true
}

// ---------------------------------------------------------------------------
// ClearBoughtHandler – /clearbought [list]
// ---------------------------------------------------------------------------

// ClearBoughtHandler removes every checked item, from one list or all.
type ClearBoughtHandler struct {
	svc    *service.Service
	logger *logrus.Logger
}

// NewClearBoughtHandler creates a new ClearBoughtHandler.
func NewClearBoughtHandler(svc *service.Service, logger *logrus.Logger) *ClearBoughtHandler {
	return &ClearBoughtHandler{svc: svc, logger: logger}
}

// Handle processes the /clearbought command.
func (h *ClearBoughtHandler) Handle(bot *tgbotapi.BotAPI, message *tgbotapi.Message, args []string) error {
	ctx := context.Background()

	if len(args) > 0 {
		name := strings.Join(args, " ")
		list, ok := h.svc.ShoppingListByName(name)
		if !ok {
			reply(bot, message, fmt.Sprintf("❌ No list called %q.", name))
			return nil
		}
		if err := h.svc.ClearCheckedItems(ctx, list.ID); err != nil {
			return fmt.Errorf("clear checked items: %w", err)
		}
		reply(bot, message, fmt.Sprintf("🧹 Cleared bought items from *%s*.", list.Name))
		return nil
	}

	for _, list := range h.svc.ShoppingLists() {
		if err := h.svc.ClearCheckedItems(ctx, list.ID); err != nil {
			return fmt.Errorf("clear checked items: %w", err)
		}
	}
	reply(bot, message, "🧹 Cleared bought items from every list.")
	return nil
}
