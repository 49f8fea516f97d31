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
// SpentHandler – /spent <amount> [description] [#category]
// ---------------------------------------------------------------------------

// SpentHandler records a new expense. The amount must parse as a positive
// number or the command is rejected before anything reaches the store.
// A trailing "#Name" argument selects a category by name; without one the
// expense lands in the first category.
type SpentHandler struct {
	svc    *service.Service
	logger *logrus.Logger
}

// NewSpentHandler creates a new SpentHandler.
func NewSpentHandler(svc *service.Service, logger *logrus.Logger) *SpentHandler {
	return &SpentHandler{svc: svc, logger: logger}
}

// Handle processes the /spent command.
func (h *SpentHandler) Handle(bot *tgbotapi.BotAPI, message *tgbotapi.Message, args []string) error {
	if len(args) == 0 {
		reply(bot, message,
			"❌ Please provide an amount.\n\n"+
				"*Usage:*\n"+
				"`/spent 12.50 groceries`\n"+
				"`/spent 30 tapas night #Erasmus/Social`")
		return nil
	}

	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil || amount <= 0 {
		reply(bot, message, "❌ The amount must be a positive number, e.g. `/spent 12.50 groceries`.")
		return nil
	}

	rest := args[1:]
	categoryName := ""
	for i, a := range rest {
		if strings.HasPrefix(a, "#") {
			categoryName = strings.TrimPrefix(strings.Join(rest[i:], " "), "#")
			rest = rest[:i]
			break
		}
	}
	description := strings.Join(rest, " ")

	categories := h.svc.ExpenseCategories()
	if len(categories) == 0 {
		reply(bot, message, "❌ No expense categories exist. Add one first in the web UI or import a backup.")
		return nil
	}

	category := categories[0]
	if categoryName != "" {
		found := false
		for _, c := range categories {
			if strings.EqualFold(c.Name, categoryName) {
				category = c
				found = true
				break
			}
		}
		if !found {
			names := make([]string, len(categories))
			for i, c := range categories {
				names[i] = c.Name
			}
			reply(bot, message, fmt.Sprintf("❌ Unknown category %q. Available: %s", categoryName, strings.Join(names, ", ")))
			return nil
		}
	}

	expense, err := h.svc.AddExpense(context.Background(), models.Expense{
		Amount:      amount,
		Description: description,
		CategoryID:  category.ID,
		Date:        time.Now(),
	})
	if err != nil {
		return fmt.Errorf("add expense: %w", err)
	}

	now := time.Now()
	total := h.svc.MonthTotal(now.Year(), now.Month())

	text := fmt.Sprintf("💶 *Recorded!* €%.2f %s %s\n\nSpent this month: *€%.2f*",
		expense.Amount, emoji(category.Icon), category.Name, total)
	reply(bot, message, text)
	return nil
}

// ---------------------------------------------------------------------------
// ExpensesHandler – /expenses
// ---------------------------------------------------------------------------

// ExpensesHandler lists this month's expenses, newest first, with the
// month total and a per-category breakdown.
type ExpensesHandler struct {
	svc    *service.Service
	logger *logrus.Logger
}

// NewExpensesHandler creates a new ExpensesHandler.
func NewExpensesHandler(svc *service.Service, logger *logrus.Logger) *ExpensesHandler {
	return &ExpensesHandler{svc: svc, logger: logger}
}

// Handle processes the /expenses command.
func (h *ExpensesHandler) Handle(bot *tgbotapi.BotAPI, message *tgbotapi.Message, args []string) error {
	now := time.Now()

	var b strings.Builder
	fmt.Fprintf(&b, "💶 *Expenses — %s*\n\n", now.Format("January 2006"))

	n := 0
	for _, e := range h.svc.Expenses() {
		if !e.InMonth(now.Year(), now.Month()) {
			continue
		}
		n++
		label := "Other"
		icon := ""
		if c, ok := h.svc.CategoryByID(e.CategoryID); ok {
			label = c.Name
			icon = emoji(c.Icon) + " "
		}
		desc := e.Description
		if desc == "" {
			desc = label
		}
		fmt.Fprintf(&b, "%d. €%.2f — %s (%s%s, %s)\n", n, e.Amount, desc, icon, label, e.Date.Format("2 Jan"))
	}

	if n == 0 {
		reply(bot, message, "💶 No expenses recorded this month. Well done — or use `/spent` when reality catches up.")
		return nil
	}

	fmt.Fprintf(&b, "\n*Total: €%.2f*\n", h.svc.MonthTotal(now.Year(), now.Month()))

	totals := h.svc.TotalsByCategory(now.Year(), now.Month())
	for _, c := range h.svc.ExpenseCategories() {
		if amount, ok := totals[c.ID]; ok {
			fmt.Fprintf(&b, "%s %s: €%.2f\n", emoji(c.Icon), c.Name, amount)
		}
	}

	reply(bot, message, b.String())
	return nil
}

// ---------------------------------------------------------------------------
// ExpenseDeleteHandler – /delexpense <n>
// ---------------------------------------------------------------------------

// ExpenseDeleteHandler deletes an expense by its position in the
// newest-first listing shown by /expenses.
type ExpenseDeleteHandler struct {
	svc    *service.Service
	logger *logrus.Logger
}

// NewExpenseDeleteHandler creates a new ExpenseDeleteHandler.
func NewExpenseDeleteHandler(svc *service.Service, logger *logrus.Logger) *ExpenseDeleteHandler {
	return &ExpenseDeleteHandler{svc: svc, logger: logger}
}

// Handle processes the /delexpense command.
func (h *ExpenseDeleteHandler) Handle(bot *tgbotapi.BotAPI, message *tgbotapi.Message, args []string) error {
	if len(args) != 1 {
		reply(bot, message, "*Usage:* `/delexpense 2` — the number from `/expenses`")
		return nil
	}

	now := time.Now()
	var monthExpenses []models.Expense
	for _, e := range h.svc.Expenses() {
		if e.InMonth(now.Year(), now.Month()) {
			monthExpenses = append(monthExpenses, e)
		}
	}

	idx, err := strconv.Atoi(args[0])
	if err != nil || idx < 1 || idx > len(monthExpenses) {
		reply(bot, message, fmt.Sprintf("❌ Pick a number between 1 and %d (see `/expenses`).", len(monthExpenses)))
		return nil
	}

	target := monthExpenses[idx-1]
	if err := h.svc.DeleteExpense(context.Background(), target.ID); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}

	reply(bot, message, fmt.Sprintf("🗑 Deleted €%.2f (%s).", target.Amount, target.Description))
	return nil
}
