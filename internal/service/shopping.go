package service

import (
	"context"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/erasmus-survival/erasmusbot/internal/metrics"
	"github.com/erasmus-survival/erasmusbot/internal/models"
	"github.com/erasmus-survival/erasmusbot/internal/repository"
	"github.com/erasmus-survival/erasmusbot/pkg/ids"
)

// ShoppingLists returns a deep copy of the shopping list collection,
// nested items included.
func (s *Service) ShoppingLists() []models.ShoppingList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyShoppingLists(s.lists)
}

// ShoppingListByName finds a list by case-insensitive name match.
func (s *Service) ShoppingListByName(name string) (models.ShoppingList, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.lists {
		if strings.EqualFold(s.lists[i].Name, name) {
			out := s.lists[i]
			out.Items = append([]models.ShoppingItem{}, s.lists[i].Items...)
			return out, true
		}
	}
	return models.ShoppingList{}, false
}

// AddShoppingList creates an empty list with a fresh id and appends it.
func (s *Service) AddShoppingList(ctx context.Context, name, icon string) (models.ShoppingList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := models.ShoppingList{
		ID:    ids.New(),
		Name:  name,
		Icon:  icon,
		Items: []models.ShoppingItem{},
	}
	s.lists = append(s.lists, list)
	return list, s.persist(ctx, repository.KeyShoppingLists, s.lists)
}

// UpdateShoppingList renames or re-icons a list, leaving its items alone.
// A missing id is a no-op.
func (s *Service) UpdateShoppingList(ctx context.Context, id, name, icon string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lists {
		if s.lists[i].ID == id {
			s.lists[i].Name = name
			s.lists[i].Icon = icon
			return s.persist(ctx, repository.KeyShoppingLists, s.lists)
		}
	}
	return nil
}

// DeleteShoppingList removes a list and everything on it. A missing id is
// a no-op.
func (s *Service) DeleteShoppingList(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lists {
		if s.lists[i].ID == id {
			s.lists = append(s.lists[:i], s.lists[i+1:]...)
			return s.persist(ctx, repository.KeyShoppingLists, s.lists)
		}
	}
	return nil
}

// AddShoppingItem appends a new unchecked item to the list. An empty
// quantity defaults to "1". Returns nil when the list does not exist.
func (s *Service) AddShoppingItem(ctx context.Context, listID, name, quantity string) (*models.ShoppingItem, error) {
	if quantity == "" {
		quantity = "1"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lists {
		if s.lists[i].ID == listID {
			item := models.ShoppingItem{
				ID:       ids.New(),
				Name:     name,
				Quantity: quantity,
				Checked:  false,
			}
			s.lists[i].Items = append(s.lists[i].Items, item)
			return &item, s.persist(ctx, repository.KeyShoppingLists, s.lists)
		}
	}
	return nil, nil
}

// ToggleShoppingItem flips the checked flag on one item. When the item
// transitions to checked — ticking it off means it was actually bought —
// the first pantry item whose name matches case-insensitively is refilled
// to its full stock. Unchecking never touches the pantry, and re-checking
// triggers the refill again.
//
// The shopping lists and the pantry are persisted as two independent
// writes with no transaction around them; errors from both are combined.
// A missing list or item id is a no-op.
func (s *Service) ToggleShoppingItem(ctx context.Context, listID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	li := -1
	for i := range s.lists {
		if s.lists[i].ID == listID {
			li = i
			break
		}
	}
	if li < 0 {
		return nil
	}

	ii := s.lists[li].FindItem(itemID)
	if ii < 0 {
		return nil
	}

	item := &s.lists[li].Items[ii]
	item.Checked = !item.Checked

	var result *multierror.Error
	result = multierror.Append(result, s.persist(ctx, repository.KeyShoppingLists, s.lists))

	if item.Checked {
		for i := range s.pantry {
			if strings.EqualFold(s.pantry[i].Name, item.Name) {
				s.pantry[i].CurrentQty = s.pantry[i].MaxQty
				metrics.SyncRefills.Inc()

				s.logger.WithFields(logrus.Fields{
					"shopping_item": item.Name,
					"pantry_item":   s.pantry[i].Name,
				}).Info("Pantry item refilled from shopping list")

				result = multierror.Append(result, s.persist(ctx, repository.KeyPantryItems, s.pantry))
				break
			}
		}
	}

	return result.ErrorOrNil()
}

// DeleteShoppingItem removes one item from a list. Missing list or item
// ids are no-ops.
func (s *Service) DeleteShoppingItem(ctx context.Context, listID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lists {
		if s.lists[i].ID == listID {
			idx := s.lists[i].FindItem(itemID)
			if idx < 0 {
				return nil
			}
			s.lists[i].Items = append(s.lists[i].Items[:idx], s.lists[i].Items[idx+1:]...)
			return s.persist(ctx, repository.KeyShoppingLists, s.lists)
		}
	}
	return nil
}

// ClearCheckedItems drops every checked item from the list. A missing
// list id is a no-op.
func (s *Service) ClearCheckedItems(ctx context.Context, listID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lists {
		if s.lists[i].ID == listID {
			kept := s.lists[i].Items[:0]
			for _, item := range s.lists[i].Items {
				if !item.Checked {
					kept = append(kept, item)
				}
			}
			s.lists[i].Items = kept
			return s.persist(ctx, repository.KeyShoppingLists, s.lists)
		}
	}
	return nil
}

func copyShoppingLists(lists []models.ShoppingList) []models.ShoppingList {
	out := make([]models.ShoppingList, len(lists))
	for i, l := range lists {
		out[i] = l
		out[i].Items = make([]models.ShoppingItem, len(l.Items))
		copy(out[i].Items, l.Items)
	}
	return out
}
