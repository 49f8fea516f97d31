package service

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/erasmus-survival/erasmusbot/internal/models"
	"github.com/erasmus-survival/erasmusbot/internal/repository"
	"github.com/erasmus-survival/erasmusbot/pkg/ids"
)

// PantryItems returns a copy of the pantry collection.
func (s *Service) PantryItems() []models.PantryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PantryItem, len(s.pantry))
	copy(out, s.pantry)
	return out
}

// LowStockItems returns the pantry items currently classified low or
// empty, in stored order.
func (s *Service) LowStockItems() []models.PantryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.PantryItem
	for i := range s.pantry {
		if s.pantry[i].StockLevel() != models.StockOK {
			out = append(out, s.pantry[i])
		}
	}
	return out
}

// PantryItemByName finds the first pantry item whose name equals name
// case-insensitively. This is the same best-effort match the shopping
// list sync uses.
func (s *Service) PantryItemByName(name string) (models.PantryItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.pantry {
		if strings.EqualFold(s.pantry[i].Name, name) {
			return s.pantry[i], true
		}
	}
	return models.PantryItem{}, false
}

// AddPantryItem assigns a fresh id and appends the item.
func (s *Service) AddPantryItem(ctx context.Context, item models.PantryItem) (models.PantryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = ids.New()
	s.pantry = append(s.pantry, item)
	return item, s.persist(ctx, repository.KeyPantryItems, s.pantry)
}

// UpdatePantryItem replaces the item with a matching id. A missing id is
// a no-op.
func (s *Service) UpdatePantryItem(ctx context.Context, item models.PantryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.pantry {
		if s.pantry[i].ID == item.ID {
			s.pantry[i] = item
			return s.persist(ctx, repository.KeyPantryItems, s.pantry)
		}
	}
	return nil
}

// DeletePantryItem removes the item with the given id. A missing id is a
// no-op.
func (s *Service) DeletePantryItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.pantry {
		if s.pantry[i].ID == id {
			s.pantry = append(s.pantry[:i], s.pantry[i+1:]...)
			return s.persist(ctx, repository.KeyPantryItems, s.pantry)
		}
	}
	return nil
}

// ConsumePantryItem subtracts amount from the item's current quantity,
// clamping at zero. Consuming more than is left is not an error; the
// quantity just bottoms out. A non-positive amount is treated as a no-op,
// and a missing id is a no-op.
func (s *Service) ConsumePantryItem(ctx context.Context, id string, amount float64) error {
	if amount <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.pantry {
		if s.pantry[i].ID == id {
			next := s.pantry[i].CurrentQty - amount
			if next < 0 {
				next = 0
			}
			s.pantry[i].CurrentQty = next

			s.logger.WithFields(logrus.Fields{
				"item":   s.pantry[i].Name,
				"amount": amount,
				"left":   next,
			}).Debug("Pantry item consumed")

			return s.persist(ctx, repository.KeyPantryItems, s.pantry)
		}
	}
	return nil
}

// RefillPantryItem sets the item's current quantity back to its full
// stock reference. There is no partial refill; the operation is
// idempotent. A missing id is a no-op.
func (s *Service) RefillPantryItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.pantry {
		if s.pantry[i].ID == id {
			s.pantry[i].CurrentQty = s.pantry[i].MaxQty
			return s.persist(ctx, repository.KeyPantryItems, s.pantry)
		}
	}
	return nil
}
