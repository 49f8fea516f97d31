package models

import "time"

// ExpenseCategory is a user-editable bucket that expenses are filed under.
// Icon is an opaque tag; resolving it to a renderable symbol is the job of
// whatever surface displays it.
type ExpenseCategory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Expense is a single spent amount. Expenses are immutable after creation;
// the only lifecycle operations are add and delete.
//
// CategoryID is a soft reference: deleting a category leaves expenses that
// point at it untouched, and rendering falls back to a default label.
type Expense struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	CategoryID  string    `json:"categoryId"`
	Date        time.Time `json:"date"`
}

// InMonth reports whether the expense falls in the given month.
func (e *Expense) InMonth(year int, month time.Month) bool {
	return e.Date.Year() == year && e.Date.Month() == month
}
