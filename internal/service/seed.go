package service

import "github.com/erasmus-survival/erasmusbot/internal/models"

// Seed data used on first run and by ResetAll. The functions return fresh
// slices so callers can never alias or mutate the defaults.

func defaultExpenseCategories() []models.ExpenseCategory {
	return []models.ExpenseCategory{
		{ID: "cat-fixed", Name: "Fixed", Icon: "home", Color: "#6366f1"},
		{ID: "cat-survival", Name: "Survival", Icon: "cart", Color: "#22c55e"},
		{ID: "cat-social", Name: "Erasmus/Social", Icon: "party", Color: "#f59e0b"},
	}
}

func defaultPantryItems() []models.PantryItem {
	return []models.PantryItem{
		{ID: "pantry-1", Name: "Eggs", Icon: "egg", CurrentQty: 6, MaxQty: 12, Unit: "units"},
		{ID: "pantry-2", Name: "Pasta", Icon: "pasta", CurrentQty: 1, MaxQty: 1, Unit: "pack"},
		{ID: "pantry-3", Name: "Milk", Icon: "milk", CurrentQty: 1, MaxQty: 1, Unit: "liter"},
		{ID: "pantry-4", Name: "Rice", Icon: "rice", CurrentQty: 1, MaxQty: 1, Unit: "pack"},
		{ID: "pantry-5", Name: "Bread", Icon: "bread", CurrentQty: 1, MaxQty: 1, Unit: "loaf"},
		{ID: "pantry-6", Name: "Chicken", Icon: "chicken", CurrentQty: 0, MaxQty: 1, Unit: "pack"},
		{ID: "pantry-7", Name: "Tomatoes", Icon: "tomato", CurrentQty: 3, MaxQty: 6, Unit: "units"},
		{ID: "pantry-8", Name: "Onions", Icon: "onion", CurrentQty: 2, MaxQty: 4, Unit: "units"},
	}
}

func defaultShoppingLists() []models.ShoppingList {
	return []models.ShoppingList{
		{ID: "list-super", Name: "Supermarket", Icon: "cart", Items: []models.ShoppingItem{}},
		{ID: "list-pharmacy", Name: "Pharmacy/Cleaning", Icon: "soap", Items: []models.ShoppingItem{}},
		{ID: "list-special", Name: "Special/Tech", Icon: "package", Items: []models.ShoppingItem{}},
	}
}

// EventColors are the preset palette offered when creating schedule events.
var EventColors = []string{
	"#6366f1", "#8b5cf6", "#ec4899", "#f43f5e",
	"#f59e0b", "#22c55e", "#06b6d4", "#3b82f6",
}
