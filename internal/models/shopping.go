package models

import "sort"

// ShoppingItem is an entry on a shopping list. Items have no identity
// outside their parent list.
type ShoppingItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Checked  bool   `json:"checked"`
}

// ShoppingList is a named, ordered collection of shopping items. New items
// append to the end; insertion order is preserved in storage.
type ShoppingList struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Icon  string         `json:"icon"`
	Items []ShoppingItem `json:"items"`
}

// FindItem returns the index of the item with the given id, or -1.
func (l *ShoppingList) FindItem(itemID string) int {
	for i := range l.Items {
		if l.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}

// Remaining counts the unchecked items on the list.
func (l *ShoppingList) Remaining() int {
	n := 0
	for i := range l.Items {
		if !l.Items[i].Checked {
			n++
		}
	}
	return n
}

// DisplayItems returns a copy of the items sorted for display: unchecked
// first, insertion order preserved within each group. The stored order is
// untouched.
func (l *ShoppingList) DisplayItems() []ShoppingItem {
	out := make([]ShoppingItem, len(l.Items))
	copy(out, l.Items)
	sort.SliceStable(out, func(i, j int) bool {
		return !out[i].Checked && out[j].Checked
	})
	return out
}
