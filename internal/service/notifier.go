package service

import (
	"context"
	"fmt"
	"time"
)

// NotifyFunc sends a message to the user's chat.
type NotifyFunc func(text string)

// StartReminderNotifier runs a background loop that checks for due
// reminders on the given interval and notifies the user about each one
// once. It blocks until the context is cancelled, so launch it in its own
// goroutine. A second call while one loop is running is ignored.
//
// Reminders are not mutated here: a due reminder stays in the collection,
// and due, until the user marks it done or deletes it. The once-only
// delivery is tracked in memory, so a restart may notify again.
func (s *Service) StartReminderNotifier(ctx context.Context, interval time.Duration, notify NotifyFunc) {
	if !s.notifierStarted.CompareAndSwap(false, true) {
		s.logger.Warn("Reminder notifier already running")
		return
	}
	defer s.notifierStarted.Store(false)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("Reminder notifier started")

	notified := make(map[string]struct{})

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Reminder notifier stopped")
			return
		case <-ticker.C:
			for _, r := range s.DueReminders(time.Now()) {
				if _, seen := notified[r.ID]; seen {
					continue
				}
				notified[r.ID] = struct{}{}
				notify(fmt.Sprintf("⏰ *Reminder due*\n%s (%s)", r.Title, r.Category))
			}
		}
	}
}
