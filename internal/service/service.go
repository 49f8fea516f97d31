package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"github.com/erasmus-survival/erasmusbot/internal/metrics"
	"github.com/erasmus-survival/erasmusbot/internal/models"
	"github.com/erasmus-survival/erasmusbot/internal/repository"
)

// Service is the domain store. It owns the six record collections in
// memory and persists each one under its own key through the state
// repository after every mutation.
//
// Operations addressing a record by id are silent no-ops when the id does
// not exist; callers never see a not-found error. All mutations are
// serialized by the store mutex.
type Service struct {
	repo   repository.StateRepository
	logger *logrus.Logger

	mu         sync.RWMutex
	expenses   []models.Expense
	categories []models.ExpenseCategory
	pantry     []models.PantryItem
	lists      []models.ShoppingList
	events     []models.ScheduleEvent
	reminders  []models.Reminder

	mutations       atomic.Int64
	notifierStarted atomic.Bool
}

// New creates a Service. Call Load before using it.
func New(repo repository.StateRepository, logger *logrus.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Load hydrates all collections from the repository. A key that has never
// been written falls back to its seed default: preset categories, pantry
// items and shopping lists, empty everything else.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := loadCollection(ctx, s.repo, repository.KeyExpenses, &s.expenses, []models.Expense{}); err != nil {
		return err
	}
	if err := loadCollection(ctx, s.repo, repository.KeyExpenseCategories, &s.categories, defaultExpenseCategories()); err != nil {
		return err
	}
	if err := loadCollection(ctx, s.repo, repository.KeyPantryItems, &s.pantry, defaultPantryItems()); err != nil {
		return err
	}
	if err := loadCollection(ctx, s.repo, repository.KeyShoppingLists, &s.lists, defaultShoppingLists()); err != nil {
		return err
	}
	if err := loadCollection(ctx, s.repo, repository.KeyScheduleEvents, &s.events, []models.ScheduleEvent{}); err != nil {
		return err
	}
	if err := loadCollection(ctx, s.repo, repository.KeyReminders, &s.reminders, []models.Reminder{}); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"expenses":   len(s.expenses),
		"categories": len(s.categories),
		"pantry":     len(s.pantry),
		"lists":      len(s.lists),
		"events":     len(s.events),
		"reminders":  len(s.reminders),
	}).Info("Domain store loaded")

	return nil
}

func loadCollection[T any](ctx context.Context, repo repository.StateRepository, key string, dst *[]T, seed []T) error {
	raw, err := repo.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("load %q: %w", key, err)
	}
	if raw == nil {
		*dst = seed
		return nil
	}
	var loaded []T
	if err := json.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("decode %q: %w", key, err)
	}
	if loaded == nil {
		loaded = []T{}
	}
	*dst = loaded
	return nil
}

// persist writes one collection under its key. The in-memory state has
// already changed when this runs; a failed write leaves memory ahead of
// storage until the next successful write of the same key.
func (s *Service) persist(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := s.repo.Save(ctx, key, raw); err != nil {
		metrics.PersistFailures.WithLabelValues(key).Inc()
		s.logger.WithError(err).WithField("key", key).Error("Failed to persist collection")
		return err
	}
	s.mutations.Inc()
	return nil
}

// Mutations returns how many successful persistence writes have happened
// since the process started.
func (s *Service) Mutations() int64 {
	return s.mutations.Load()
}
