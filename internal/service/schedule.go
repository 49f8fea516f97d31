package service

import (
	"context"
	"sort"

	"github.com/erasmus-survival/erasmusbot/internal/models"
	"github.com/erasmus-survival/erasmusbot/internal/repository"
	"github.com/erasmus-survival/erasmusbot/pkg/ids"
)

// ScheduleEvents returns a copy of the schedule collection.
func (s *Service) ScheduleEvents() []models.ScheduleEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ScheduleEvent, len(s.events))
	copy(out, s.events)
	return out
}

// EventsForDay returns the events on the given weekday sorted by start
// time. "HH:MM" strings sort correctly lexicographically.
func (s *Service) EventsForDay(day string) []models.ScheduleEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.ScheduleEvent
	for i := range s.events {
		if s.events[i].Day == day {
			out = append(out, s.events[i])
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

// AddScheduleEvent assigns a fresh id and appends the event.
func (s *Service) AddScheduleEvent(ctx context.Context, e models.ScheduleEvent) (models.ScheduleEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = ids.New()
	s.events = append(s.events, e)
	return e, s.persist(ctx, repository.KeyScheduleEvents, s.events)
}

// UpdateScheduleEvent replaces the event with a matching id. A missing id
// is a no-op.
func (s *Service) UpdateScheduleEvent(ctx context.Context, e models.ScheduleEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == e.ID {
			s.events[i] = e
			return s.persist(ctx, repository.KeyScheduleEvents, s.events)
		}
	}
	return nil
}

// DeleteScheduleEvent removes the event with the given id. A missing id
// is a no-op.
func (s *Service) DeleteScheduleEvent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return s.persist(ctx, repository.KeyScheduleEvents, s.events)
		}
	}
	return nil
}
