package service

import (
	"context"

	"github.com/hashicorp/go-multierror"

	"github.com/erasmus-survival/erasmusbot/internal/metrics"
	"github.com/erasmus-survival/erasmusbot/internal/models"
	"github.com/erasmus-survival/erasmusbot/internal/repository"
)

// ExportSnapshot returns a deep copy of all six collections. Mutations
// after the call never show up in a previously exported snapshot.
func (s *Service) ExportSnapshot() models.AppData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	metrics.SnapshotExports.Inc()

	return models.AppData{
		Expenses:          append([]models.Expense{}, s.expenses...),
		ExpenseCategories: append([]models.ExpenseCategory{}, s.categories...),
		PantryItems:       append([]models.PantryItem{}, s.pantry...),
		ShoppingLists:     copyShoppingLists(s.lists),
		ScheduleEvents:    append([]models.ScheduleEvent{}, s.events...),
		Reminders:         append([]models.Reminder{}, s.reminders...),
	}
}

// ImportSnapshot wholesale-replaces every collection that is present
// (non-nil) in the input. Absent sections leave the current data alone,
// so partial backups are legal. Each replaced collection is persisted
// under its own key; write errors are collected, not short-circuited.
//
// Shape validation ends at JSON decoding, which is the caller's boundary;
// by the time an AppData reaches here it is applied as-is.
func (s *Service) ImportSnapshot(ctx context.Context, data models.AppData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result *multierror.Error

	if data.Expenses != nil {
		s.expenses = append([]models.Expense{}, data.Expenses...)
		result = multierror.Append(result, s.persist(ctx, repository.KeyExpenses, s.expenses))
	}
	if data.ExpenseCategories != nil {
		s.categories = append([]models.ExpenseCategory{}, data.ExpenseCategories...)
		result = multierror.Append(result, s.persist(ctx, repository.KeyExpenseCategories, s.categories))
	}
	if data.PantryItems != nil {
		s.pantry = append([]models.PantryItem{}, data.PantryItems...)
		result = multierror.Append(result, s.persist(ctx, repository.KeyPantryItems, s.pantry))
	}
	if data.ShoppingLists != nil {
		s.lists = copyShoppingLists(data.ShoppingLists)
		result = multierror.Append(result, s.persist(ctx, repository.KeyShoppingLists, s.lists))
	}
	if data.ScheduleEvents != nil {
		s.events = append([]models.ScheduleEvent{}, data.ScheduleEvents...)
		result = multierror.Append(result, s.persist(ctx, repository.KeyScheduleEvents, s.events))
	}
	if data.Reminders != nil {
		s.reminders = append([]models.Reminder{}, data.Reminders...)
		result = multierror.Append(result, s.persist(ctx, repository.KeyReminders, s.reminders))
	}

	s.logger.Info("Snapshot imported")
	return result.ErrorOrNil()
}

// ResetAll replaces every collection with its seed default, regardless of
// what was there before: the three preset categories, the eight preset
// pantry items, the three preset empty shopping lists, and empty
// expenses, schedule and reminders.
func (s *Service) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expenses = []models.Expense{}
	s.categories = defaultExpenseCategories()
	s.pantry = defaultPantryItems()
	s.lists = defaultShoppingLists()
	s.events = []models.ScheduleEvent{}
	s.reminders = []models.Reminder{}

	var result *multierror.Error
	result = multierror.Append(result, s.persist(ctx, repository.KeyExpenses, s.expenses))
	result = multierror.Append(result, s.persist(ctx, repository.KeyExpenseCategories, s.categories))
	result = multierror.Append(result, s.persist(ctx, repository.KeyPantryItems, s.pantry))
	result = multierror.Append(result, s.persist(ctx, repository.KeyShoppingLists, s.lists))
	result = multierror.Append(result, s.persist(ctx, repository.KeyScheduleEvents, s.events))
	result = multierror.Append(result, s.persist(ctx, repository.KeyReminders, s.reminders))

	s.logger.Warn("All data reset to defaults")
	return result.ErrorOrNil()
}
