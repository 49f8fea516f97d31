package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erasmus-survival/erasmusbot/internal/models"
	"github.com/erasmus-survival/erasmusbot/internal/repository"
	"github.com/erasmus-survival/erasmusbot/internal/repository/memory"
)

func newTestService(t *testing.T) (*Service, repository.StateRepository) {
	t.Helper()

	repo := memory.NewStateRepository()
	l := logrus.New()
	l.SetOutput(io.Discard)

	svc := New(repo, l)
	require.NoError(t, svc.Load(context.Background()))
	return svc, repo
}

// ---------------------------------------------------------------------------
// Loading & seeds
// ---------------------------------------------------------------------------

func TestLoad_SeedsDefaultsOnFirstRun(t *testing.T) {
	svc, _ := newTestService(t)

	assert.Len(t, svc.ExpenseCategories(), 3)
	assert.Len(t, svc.PantryItems(), 8)
	assert.Len(t, svc.ShoppingLists(), 3)
	assert.Empty(t, svc.Expenses())
	assert.Empty(t, svc.ScheduleEvents())
	assert.Empty(t, svc.Reminders())
}

func TestLoad_ReloadsPersistedState(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	added, err := svc.AddExpense(ctx, models.Expense{
		Amount:     9.99,
		CategoryID: "cat-survival",
		Date:       time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	l := logrus.New()
	l.SetOutput(io.Discard)
	reloaded := New(repo, l)
	require.NoError(t, reloaded.Load(ctx))

	expenses := reloaded.Expenses()
	require.Len(t, expenses, 1)
	assert.Equal(t, added.ID, expenses[0].ID)
	assert.Equal(t, 9.99, expenses[0].Amount)
}

// ---------------------------------------------------------------------------
// Expenses
// ---------------------------------------------------------------------------

func TestAddExpense_PrependsNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	first, err := svc.AddExpense(ctx, models.Expense{Amount: 1})
	require.NoError(t, err)
	second, err := svc.AddExpense(ctx, models.Expense{Amount: 2})
	require.NoError(t, err)

	expenses := svc.Expenses()
	require.Len(t, expenses, 2)
	assert.Equal(t, second.ID, expenses[0].ID)
	assert.Equal(t, first.ID, expenses[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestDeleteExpense_MissingIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.AddExpense(ctx, models.Expense{Amount: 5})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteExpense(ctx, "no-such-id"))
	assert.Len(t, svc.Expenses(), 1)
}

func TestMonthTotals(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	aug := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	sep := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.AddExpense(ctx, models.Expense{Amount: 10, CategoryID: "cat-fixed", Date: aug})
	require.NoError(t, err)
	_, err = svc.AddExpense(ctx, models.Expense{Amount: 2.5, CategoryID: "cat-survival", Date: aug})
	require.NoError(t, err)
	_, err = svc.AddExpense(ctx, models.Expense{Amount: 99, CategoryID: "cat-fixed", Date: sep})
	require.NoError(t, err)

	assert.InDelta(t, 12.5, svc.MonthTotal(2026, time.August), 1e-9)

	totals := svc.TotalsByCategory(2026, time.August)
	assert.InDelta(t, 10, totals["cat-fixed"], 1e-9)
	assert.InDelta(t, 2.5, totals["cat-survival"], 1e-9)
}

func TestDeleteExpenseCategory_LeavesDanglingReference(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.AddExpense(ctx, models.Expense{Amount: 3, CategoryID: "cat-social"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteExpenseCategory(ctx, "cat-social"))

	_, found := svc.CategoryByID("cat-social")
	assert.False(t, found)

	expenses := svc.Expenses()
	require.Len(t, expenses, 1)
	assert.Equal(t, "cat-social", expenses[0].CategoryID, "expense should keep its dangling category id")
}

// ---------------------------------------------------------------------------
// Pantry
// ---------------------------------------------------------------------------

func pantryByID(t *testing.T, svc *Service, id string) models.PantryItem {
	t.Helper()
	for _, item := range svc.PantryItems() {
		if item.ID == id {
			return item
		}
	}
	t.Fatalf("pantry item %q not found", id)
	return models.PantryItem{}
}

func TestConsumePantryItem_ClampsAtZero(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	// Seed eggs: 6/12.
	require.NoError(t, svc.ConsumePantryItem(ctx, "pantry-1", 4))
	assert.Equal(t, 2.0, pantryByID(t, svc, "pantry-1").CurrentQty)

	// Over-consumption is not an error, it just bottoms out.
	require.NoError(t, svc.ConsumePantryItem(ctx, "pantry-1", 100))
	assert.Equal(t, 0.0, pantryByID(t, svc, "pantry-1").CurrentQty)
}

func TestConsumePantryItem_NonPositiveAmountIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	require.NoError(t, svc.ConsumePantryItem(ctx, "pantry-1", 0))
	require.NoError(t, svc.ConsumePantryItem(ctx, "pantry-1", -3))
	assert.Equal(t, 6.0, pantryByID(t, svc, "pantry-1").CurrentQty)
}

func TestConsumePantryItem_MissingIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	before := svc.PantryItems()
	require.NoError(t, svc.ConsumePantryItem(ctx, "no-such-id", 1))
	assert.Empty(t, cmp.Diff(before, svc.PantryItems()))
}

func TestRefillPantryItem_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	require.NoError(t, svc.ConsumePantryItem(ctx, "pantry-1", 5))

	require.NoError(t, svc.RefillPantryItem(ctx, "pantry-1"))
	assert.Equal(t, 12.0, pantryByID(t, svc, "pantry-1").CurrentQty)

	require.NoError(t, svc.RefillPantryItem(ctx, "pantry-1"))
	assert.Equal(t, 12.0, pantryByID(t, svc, "pantry-1").CurrentQty)
}

func TestLowStockItems(t *testing.T) {
	svc, _ := newTestService(t)

	// From the seeds: Eggs 6/12 ok, Chicken 0/1 empty, Tomatoes 3/6 ok,
	// Onions 2/4 ok.
	low := svc.LowStockItems()
	require.Len(t, low, 1)
	assert.Equal(t, "Chicken", low[0].Name)
}

// ---------------------------------------------------------------------------
// Shopping lists & the sync rule
// ---------------------------------------------------------------------------

func TestAddShoppingItem_DefaultsAndAppends(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	first, err := svc.AddShoppingItem(ctx, "list-super", "Milk", "")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "1", first.Quantity)
	assert.False(t, first.Checked)

	second, err := svc.AddShoppingItem(ctx, "list-super", "Eggs", "12")
	require.NoError(t, err)
	require.NotNil(t, second)

	list, ok := svc.ShoppingListByName("Supermarket")
	require.True(t, ok)
	require.Len(t, list.Items, 2)
	assert.Equal(t, first.ID, list.Items[0].ID)
	assert.Equal(t, second.ID, list.Items[1].ID)
}

func TestAddShoppingItem_MissingListReturnsNil(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	item, err := svc.AddShoppingItem(ctx, "no-such-list", "Milk", "")
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestToggleShoppingItem_RefillsMatchingPantryItem(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	// Pantry Milk at 1 of 2.
	require.NoError(t, svc.UpdatePantryItem(ctx, models.PantryItem{
		ID: "pantry-3", Name: "Milk", Icon: "milk", CurrentQty: 1, MaxQty: 2, Unit: "liter",
	}))

	// The match is case-insensitive: shopping "milk" vs pantry "Milk".
	item, err := svc.AddShoppingItem(ctx, "list-super", "milk", "")
	require.NoError(t, err)
	require.NotNil(t, item)

	require.NoError(t, svc.ToggleShoppingItem(ctx, "list-super", item.ID))

	list, _ := svc.ShoppingListByName("Supermarket")
	assert.True(t, list.Items[0].Checked)
	assert.Equal(t, 2.0, pantryByID(t, svc, "pantry-3").CurrentQty)
}

func TestToggleShoppingItem_NoMatchLeavesPantryUntouched(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	item, err := svc.AddShoppingItem(ctx, "list-super", "Unobtainium", "")
	require.NoError(t, err)
	require.NotNil(t, item)

	before := svc.PantryItems()
	require.NoError(t, svc.ToggleShoppingItem(ctx, "list-super", item.ID))

	list, _ := svc.ShoppingListByName("Supermarket")
	assert.True(t, list.Items[0].Checked)
	assert.Empty(t, cmp.Diff(before, svc.PantryItems()), "pantry must be byte-for-byte unchanged")
}

func TestToggleShoppingItem_UncheckDoesNotResync(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	item, err := svc.AddShoppingItem(ctx, "list-super", "Eggs", "")
	require.NoError(t, err)
	require.NotNil(t, item)

	// Check: eggs refill to 12.
	require.NoError(t, svc.ToggleShoppingItem(ctx, "list-super", item.ID))
	assert.Equal(t, 12.0, pantryByID(t, svc, "pantry-1").CurrentQty)

	// Eat some, then uncheck. The uncheck must not refill.
	require.NoError(t, svc.ConsumePantryItem(ctx, "pantry-1", 9))
	require.NoError(t, svc.ToggleShoppingItem(ctx, "list-super", item.ID))

	list, _ := svc.ShoppingListByName("Supermarket")
	assert.False(t, list.Items[0].Checked)
	assert.Equal(t, 3.0, pantryByID(t, svc, "pantry-1").CurrentQty)

	// Re-checking triggers the sync again.
	require.NoError(t, svc.ToggleShoppingItem(ctx, "list-super", item.ID))
	assert.Equal(t, 12.0, pantryByID(t, svc, "pantry-1").CurrentQty)
}

func TestToggleShoppingItem_MissingIDsAreNoOps(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	require.NoError(t, svc.ToggleShoppingItem(ctx, "no-such-list", "whatever"))
	require.NoError(t, svc.ToggleShoppingItem(ctx, "list-super", "no-such-item"))
}

func TestClearCheckedItems(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	keep, err := svc.AddShoppingItem(ctx, "list-super", "Unmatched thing", "")
	require.NoError(t, err)
	gone, err := svc.AddShoppingItem(ctx, "list-super", "Other thing", "")
	require.NoError(t, err)

	require.NoError(t, svc.ToggleShoppingItem(ctx, "list-super", gone.ID))
	require.NoError(t, svc.ClearCheckedItems(ctx, "list-super"))

	list, _ := svc.ShoppingListByName("Supermarket")
	require.Len(t, list.Items, 1)
	assert.Equal(t, keep.ID, list.Items[0].ID)
}

// ---------------------------------------------------------------------------
// Export / import / reset
// ---------------------------------------------------------------------------

func TestExportImport_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.AddExpense(ctx, models.Expense{
		Amount: 42, Description: "books", CategoryID: "cat-fixed",
		Date: time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	_, err = svc.AddShoppingItem(ctx, "list-super", "Milk", "2")
	require.NoError(t, err)
	_, err = svc.AddReminder(ctx, models.Reminder{
		Title: "Renew card", Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Category: "ID Card", Icon: "id-card",
	})
	require.NoError(t, err)

	before := svc.ExportSnapshot()
	require.NoError(t, svc.ImportSnapshot(ctx, before))
	after := svc.ExportSnapshot()

	assert.Empty(t, cmp.Diff(before, after))
}

func TestExportSnapshot_IsNotALiveView(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	snapshot := svc.ExportSnapshot()
	pantryBefore := len(snapshot.PantryItems)

	_, err := svc.AddPantryItem(ctx, models.PantryItem{Name: "Butter", MaxQty: 1, Unit: "pack"})
	require.NoError(t, err)
	require.NoError(t, svc.ConsumePantryItem(ctx, "pantry-1", 6))

	assert.Len(t, snapshot.PantryItems, pantryBefore)
	assert.Equal(t, 6.0, snapshot.PantryItems[0].CurrentQty, "snapshot must not see later mutations")
}

func TestImportSnapshot_PartialImportLeavesOtherDomains(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	pantryBefore := svc.PantryItems()
	listsBefore := svc.ShoppingLists()
	categoriesBefore := svc.ExpenseCategories()
	eventsBefore := svc.ScheduleEvents()
	remindersBefore := svc.Reminders()

	err := svc.ImportSnapshot(ctx, models.AppData{
		Expenses: []models.Expense{
			{ID: "x-1", Amount: 7, CategoryID: "cat-fixed", Date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
	})
	require.NoError(t, err)

	require.Len(t, svc.Expenses(), 1)
	assert.Empty(t, cmp.Diff(pantryBefore, svc.PantryItems()))
	assert.Empty(t, cmp.Diff(listsBefore, svc.ShoppingLists()))
	assert.Empty(t, cmp.Diff(categoriesBefore, svc.ExpenseCategories()))
	assert.Empty(t, cmp.Diff(eventsBefore, svc.ScheduleEvents()))
	assert.Empty(t, cmp.Diff(remindersBefore, svc.Reminders()))
}

func TestImportSnapshot_EmptySectionWipes(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	err := svc.ImportSnapshot(ctx, models.AppData{PantryItems: []models.PantryItem{}})
	require.NoError(t, err)
	assert.Empty(t, svc.PantryItems())
}

func TestResetAll_Deterministic(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	pristine := svc.ExportSnapshot()

	// Make a mess.
	_, err := svc.AddExpense(ctx, models.Expense{Amount: 100})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteShoppingList(ctx, "list-super"))
	require.NoError(t, svc.DeletePantryItem(ctx, "pantry-1"))
	_, err = svc.AddScheduleEvent(ctx, models.ScheduleEvent{Title: "Yoga", Day: "Monday", StartTime: "08:00", EndTime: "09:00"})
	require.NoError(t, err)

	require.NoError(t, svc.ResetAll(ctx))
	assert.Empty(t, cmp.Diff(pristine, svc.ExportSnapshot()))

	// Resetting twice lands in the same place.
	require.NoError(t, svc.ResetAll(ctx))
	assert.Empty(t, cmp.Diff(pristine, svc.ExportSnapshot()))
}

// ---------------------------------------------------------------------------
// Schedule & reminders
// ---------------------------------------------------------------------------

func TestEventsForDay_SortedByStartTime(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.AddScheduleEvent(ctx, models.ScheduleEvent{Title: "Late", Day: "Monday", StartTime: "15:00", EndTime: "16:00"})
	require.NoError(t, err)
	_, err = svc.AddScheduleEvent(ctx, models.ScheduleEvent{Title: "Early", Day: "Monday", StartTime: "09:00", EndTime: "10:00"})
	require.NoError(t, err)
	_, err = svc.AddScheduleEvent(ctx, models.ScheduleEvent{Title: "Elsewhere", Day: "Tuesday", StartTime: "08:00", EndTime: "09:00"})
	require.NoError(t, err)

	events := svc.EventsForDay("Monday")
	require.Len(t, events, 2)
	assert.Equal(t, "Early", events[0].Title)
	assert.Equal(t, "Late", events[1].Title)
}

func TestReminderLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	reminder, err := svc.AddReminder(ctx, models.Reminder{
		Title: "Pay landlord", Date: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Category: "Landlord", Icon: "house",
		Done: true, // ignored: new reminders always start open
	})
	require.NoError(t, err)
	assert.False(t, reminder.Done)

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	due := svc.DueReminders(now)
	require.Len(t, due, 1)

	require.NoError(t, svc.ToggleReminder(ctx, reminder.ID))
	assert.Empty(t, svc.DueReminders(now), "done reminders are not due")

	require.NoError(t, svc.DeleteReminder(ctx, reminder.ID))
	assert.Empty(t, svc.Reminders())
}
