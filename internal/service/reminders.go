package service

import (
	"context"
	"time"

	"github.com/erasmus-survival/erasmusbot/internal/models"
	"github.com/erasmus-survival/erasmusbot/internal/repository"
	"github.com/erasmus-survival/erasmusbot/pkg/ids"
)

// Reminders returns a copy of the reminder collection.
func (s *Service) Reminders() []models.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out
}

// DueReminders returns reminders whose date has arrived and that are not
// marked done yet.
func (s *Service) DueReminders(now time.Time) []models.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Reminder
	for i := range s.reminders {
		if s.reminders[i].IsDue(now) {
			out = append(out, s.reminders[i])
		}
	}
	return out
}

// AddReminder assigns a fresh id and appends the reminder. New reminders
// always start not done.
func (s *Service) AddReminder(ctx context.Context, r models.Reminder) (models.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = ids.New()
	r.Done = false
	s.reminders = append(s.reminders, r)
	return r, s.persist(ctx, repository.KeyReminders, s.reminders)
}

// ToggleReminder flips the done flag on the reminder with the given id.
// A missing id is a no-op.
func (s *Service) ToggleReminder(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reminders {
		if s.reminders[i].ID == id {
			s.reminders[i].Done = !s.reminders[i].Done
			return s.persist(ctx, repository.KeyReminders, s.reminders)
		}
	}
	return nil
}

// DeleteReminder removes the reminder with the given id. A missing id is
// a no-op.
func (s *Service) DeleteReminder(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reminders {
		if s.reminders[i].ID == id {
			s.reminders = append(s.reminders[:i], s.reminders[i+1:]...)
			return s.persist(ctx, repository.KeyReminders, s.reminders)
		}
	}
	return nil
}
