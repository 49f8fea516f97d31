package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erasmus-survival/erasmusbot/internal/models"
)

func newTestDigest(t *testing.T) (*Digest, *Service) {
	t.Helper()
	svc, _ := newTestService(t)
	l := logrus.New()
	l.SetOutput(io.Discard)
	return NewDigest(svc, func(string) {}, l), svc
}

func TestDigestBuild_EmptyWhenNothingToSay(t *testing.T) {
	ctx := context.Background()
	digest, svc := newTestDigest(t)

	// The seed pantry has Chicken at 0, which counts as worth mentioning,
	// so refill it first.
	require.NoError(t, svc.RefillPantryItem(ctx, "pantry-6"))

	// A Sunday with no classes, no due reminders and a stocked pantry.
	now := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "", digest.Build(now))
}

func TestDigestBuild_MentionsTodayOnly(t *testing.T) {
	ctx := context.Background()
	digest, svc := newTestDigest(t)

	require.NoError(t, svc.RefillPantryItem(ctx, "pantry-6"))

	_, err := svc.AddScheduleEvent(ctx, models.ScheduleEvent{
		Title: "Statistics", Day: "Monday", StartTime: "09:00", EndTime: "11:00", Location: "B204",
	})
	require.NoError(t, err)
	_, err = svc.AddScheduleEvent(ctx, models.ScheduleEvent{
		Title: "Spanish", Day: "Tuesday", StartTime: "14:00", EndTime: "15:30",
	})
	require.NoError(t, err)

	// Monday 2026-08-31.
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)
	text := digest.Build(now)

	assert.Contains(t, text, "Today (Monday)")
	assert.Contains(t, text, "09:00–11:00 Statistics @ B204")
	assert.NotContains(t, text, "Spanish")
}

func TestDigestBuild_DueRemindersAndLowStock(t *testing.T) {
	ctx := context.Background()
	digest, svc := newTestDigest(t)

	_, err := svc.AddReminder(ctx, models.Reminder{
		Title: "Pay rent", Date: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		Category: "Landlord", Icon: "house",
	})
	require.NoError(t, err)
	_, err = svc.AddReminder(ctx, models.Reminder{
		Title: "Enrolment", Date: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Category: "University", Icon: "graduation",
	})
	require.NoError(t, err)

	now := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)
	text := digest.Build(now)

	assert.Contains(t, text, "Pay rent (Landlord)")
	assert.NotContains(t, text, "Enrolment", "future reminders stay out of the digest")
	assert.Contains(t, text, "Chicken: 0/1 pack")
}
