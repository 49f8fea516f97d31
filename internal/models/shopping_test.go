package models

import "testing"

func testList() ShoppingList {
	return ShoppingList{
		ID:   "list-1",
		Name: "Supermarket",
		Items: []ShoppingItem{
			{ID: "a", Name: "Milk", Quantity: "1", Checked: true},
			{ID: "b", Name: "Eggs", Quantity: "12", Checked: false},
			{ID: "c", Name: "Bread", Quantity: "1", Checked: true},
			{ID: "d", Name: "Rice", Quantity: "1", Checked: false},
		},
	}
}

func TestDisplayItems_UncheckedFirstStable(t *testing.T) {
	list := testList()

	got := list.DisplayItems()
	wantOrder := []string{"b", "d", "a", "c"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("DisplayItems()[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}

	// The stored order must not change.
	if list.Items[0].ID != "a" {
		t.Error("DisplayItems mutated the stored item order")
	}
}

func TestFindItem(t *testing.T) {
	list := testList()

	if got := list.FindItem("c"); got != 2 {
		t.Errorf("FindItem(c) = %d, want 2", got)
	}
	if got := list.FindItem("nope"); got != -1 {
		t.Errorf("FindItem(nope) = %d, want -1", got)
	}
}

func TestRemaining(t *testing.T) {
	list := testList()
	if got := list.Remaining(); got != 2 {
		t.Errorf("Remaining() = %d, want 2", got)
	}
}
