package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/erasmus-survival/erasmusbot/internal/models"
	"github.com/erasmus-survival/erasmusbot/internal/repository"
	"github.com/erasmus-survival/erasmusbot/pkg/ids"
)

// Expenses returns a copy of the expense collection, newest first.
func (s *Service) Expenses() []models.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// AddExpense assigns a fresh id and prepends the expense, so the
// collection stays newest-first. Amount validation happens at the input
// boundary, not here; expenses are immutable once stored.
func (s *Service) AddExpense(ctx context.Context, e models.Expense) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = ids.New()
	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	s.expenses = append([]models.Expense{e}, s.expenses...)

	s.logger.WithFields(logrus.Fields{
		"expense_id": e.ID,
		"amount":     e.Amount,
		"category":   e.CategoryID,
	}).Info("Expense added")

	return e, s.persist(ctx, repository.KeyExpenses, s.expenses)
}

// DeleteExpense removes the expense with the given id. A missing id is a
// no-op and nothing is written.
func (s *Service) DeleteExpense(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	s.expenses = append(s.expenses[:idx], s.expenses[idx+1:]...)
	return s.persist(ctx, repository.KeyExpenses, s.expenses)
}

// MonthTotal sums the expenses recorded in the given month.
func (s *Service) MonthTotal(year int, month time.Month) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0.0
	for i := range s.expenses {
		if s.expenses[i].InMonth(year, month) {
			total += s.expenses[i].Amount
		}
	}
	return total
}

// TotalsByCategory sums the month's expenses per category id. Expenses
// with a dangling category id are grouped under their stored id; mapping
// that to a fallback label is a display concern.
func (s *Service) TotalsByCategory(year int, month time.Month) map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make(map[string]float64)
	for i := range s.expenses {
		if s.expenses[i].InMonth(year, month) {
			totals[s.expenses[i].CategoryID] += s.expenses[i].Amount
		}
	}
	return totals
}

// ExpenseCategories returns a copy of the category collection.
func (s *Service) ExpenseCategories() []models.ExpenseCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ExpenseCategory, len(s.categories))
	copy(out, s.categories)
	return out
}

// CategoryByID looks up a category. The second result is false when the
// id is unknown, which callers should render with a default label.
func (s *Service) CategoryByID(id string) (models.ExpenseCategory, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			return s.categories[i], true
		}
	}
	return models.ExpenseCategory{}, false
}

// AddExpenseCategory assigns a fresh id and appends the category.
func (s *Service) AddExpenseCategory(ctx context.Context, c models.ExpenseCategory) (models.ExpenseCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = ids.New()
	s.categories = append(s.categories, c)
	return c, s.persist(ctx, repository.KeyExpenseCategories, s.categories)
}

// UpdateExpenseCategory replaces the category with a matching id. A
// missing id is a no-op.
func (s *Service) UpdateExpenseCategory(ctx context.Context, c models.ExpenseCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID == c.ID {
			s.categories[i] = c
			return s.persist(ctx, repository.KeyExpenseCategories, s.categories)
		}
	}
	return nil
}

// DeleteExpenseCategory removes a category. Expenses referencing it keep
// their category id; the reference is soft and dangling ids are tolerated.
func (s *Service) DeleteExpenseCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return s.persist(ctx, repository.KeyExpenseCategories, s.categories)
		}
	}
	return nil
}
