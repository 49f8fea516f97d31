package models

// AppData is the snapshot aggregate used for export and import. It is a
// point-in-time copy, never a live view of the store.
//
// On import, a nil collection means "leave the current data for that
// section untouched"; only non-nil sections are applied. An empty non-nil
// slice is a legitimate value that wipes the section. The distinction is
// why imports must be decoded into a fresh zero AppData.
type AppData struct {
	Expenses          []Expense         `json:"expenses"`
	ExpenseCategories []ExpenseCategory `json:"expenseCategories"`
	PantryItems       []PantryItem      `json:"pantryItems"`
	ShoppingLists     []ShoppingList    `json:"shoppingLists"`
	ScheduleEvents    []ScheduleEvent   `json:"scheduleEvents"`
	Reminders         []Reminder        `json:"reminders"`
}
