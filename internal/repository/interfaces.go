package repository

import (
	"context"
	"encoding/json"
)

// Storage keys for the six domain collections. Each collection is persisted
// independently as its own JSON document; there is no combined write.
const (
	KeyExpenses          = "erasmus-expenses"
	KeyExpenseCategories = "erasmus-expense-categories"
	KeyPantryItems       = "erasmus-pantry"
	KeyShoppingLists     = "erasmus-shopping-lists"
	KeyScheduleEvents    = "erasmus-schedule"
	KeyReminders         = "erasmus-reminders"
)

// StateRepository is the persisted key-value container backing the domain
// store. Values are opaque JSON documents; encoding and decoding belong to
// the caller.
type StateRepository interface {
	// Load returns the stored document for key, or (nil, nil) when the key
	// has never been written.
	Load(ctx context.Context, key string) (json.RawMessage, error)
	// Save stores the document under key, replacing any previous value.
	Save(ctx context.Context, key string, value json.RawMessage) error
}
