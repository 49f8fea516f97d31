package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Digest sends a scheduled morning summary of the day: classes, due
// reminders and pantry items that need restocking.
type Digest struct {
	cron   *cron.Cron
	svc    *Service
	notify NotifyFunc
	logger *logrus.Logger
}

// NewDigest creates a Digest that sends through notify.
func NewDigest(svc *Service, notify NotifyFunc, logger *logrus.Logger) *Digest {
	return &Digest{
		cron:   cron.New(),
		svc:    svc,
		notify: notify,
		logger: logger,
	}
}

// Start schedules the digest with a standard 5-field cron spec and starts
// the cron runner.
func (d *Digest) Start(spec string) error {
	if _, err := d.cron.AddFunc(spec, d.send); err != nil {
		return fmt.Errorf("failed to schedule daily digest: %w", err)
	}
	d.cron.Start()
	d.logger.WithField("spec", spec).Info("Daily digest scheduled")
	return nil
}

// Stop stops the cron runner.
func (d *Digest) Stop() {
	d.cron.Stop()
}

func (d *Digest) send() {
	text := d.Build(time.Now())
	if text == "" {
		return
	}
	d.notify(text)
}

// Build renders the digest for the given moment. It returns "" when there
// is nothing worth saying.
func (d *Digest) Build(now time.Time) string {
	var b strings.Builder

	day := now.Weekday().String()
	if events := d.svc.EventsForDay(day); len(events) > 0 {
		fmt.Fprintf(&b, "🗓 *Today (%s)*\n", day)
		for _, e := range events {
			fmt.Fprintf(&b, "• %s–%s %s", e.StartTime, e.EndTime, e.Title)
			if e.Location != "" {
				fmt.Fprintf(&b, " @ %s", e.Location)
			}
			b.WriteString("\n")
		}
	}

	if due := d.svc.DueReminders(now); len(due) > 0 {
		b.WriteString("\n⏰ *Due reminders*\n")
		for _, r := range due {
			fmt.Fprintf(&b, "• %s (%s)\n", r.Title, r.Category)
		}
	}

	if low := d.svc.LowStockItems(); len(low) > 0 {
		b.WriteString("\n🧺 *Running low*\n")
		for _, item := range low {
			fmt.Fprintf(&b, "• %s: %.0f/%.0f %s\n", item.Name, item.CurrentQty, item.MaxQty, item.Unit)
		}
	}

	return strings.TrimSpace(b.String())
}
