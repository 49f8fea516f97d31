package models

import "time"

// ReminderCategory pairs a free-text label with an icon tag. The set is a
// suggestion for input surfaces, not a constraint on stored reminders.
type ReminderCategory struct {
	Label string
	Icon  string
}

// ReminderCategories are the suggested categories offered when creating a
// reminder.
var ReminderCategories = []ReminderCategory{
	{Label: "ID Card", Icon: "id-card"},
	{Label: "Bank", Icon: "bank"},
	{Label: "Landlord", Icon: "house"},
	{Label: "University", Icon: "graduation"},
	{Label: "Health", Icon: "hospital"},
	{Label: "Other", Icon: "pin"},
}

// Reminder is a one-off dated to-do (renew the transport card, pay the
// landlord). It stays in the collection until deleted; Done only flips
// when the user marks it.
type Reminder struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Date     time.Time `json:"date"`
	Category string    `json:"category"`
	Icon     string    `json:"icon"`
	Done     bool      `json:"done"`
}

// IsDue reports whether the reminder's date has arrived and it has not
// been marked done yet.
func (r *Reminder) IsDue(now time.Time) bool {
	if r.Done {
		return false
	}
	return !now.Before(r.Date)
}
