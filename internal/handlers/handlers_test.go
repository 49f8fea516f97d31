package handlers

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erasmus-survival/erasmusbot/internal/repository/memory"
	"github.com/erasmus-survival/erasmusbot/internal/service"
)

func newTestStore(t *testing.T) *service.Service {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	svc := service.New(memory.NewStateRepository(), l)
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func TestNormalizeDay(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"monday", "Monday", true},
		{"MONDAY", "Monday", true},
		{"Friday", "Friday", true},
		{"fri", "", false},
		{"Someday", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := normalizeDay(tt.in)
		assert.Equal(t, tt.ok, ok, "normalizeDay(%q)", tt.in)
		assert.Equal(t, tt.want, got, "normalizeDay(%q)", tt.in)
	}
}

func TestTimeRangeRegex(t *testing.T) {
	matches := timeRangeRegex.FindStringSubmatch("9:00-10:30")
	require.NotNil(t, matches)
	assert.Equal(t, "9:00", matches[1])
	assert.Equal(t, "10:30", matches[2])

	assert.Nil(t, timeRangeRegex.FindStringSubmatch("9-10"))
	assert.Nil(t, timeRangeRegex.FindStringSubmatch("09:00"))
}

func TestQuantityRegex(t *testing.T) {
	matches := quantityRegex.FindStringSubmatch("x12")
	require.NotNil(t, matches)
	assert.Equal(t, "12", matches[1])

	assert.Nil(t, quantityRegex.FindStringSubmatch("x"))
	assert.Nil(t, quantityRegex.FindStringSubmatch("box"))
}

func TestEmojiFallback(t *testing.T) {
	assert.Equal(t, "🛒", emoji("cart"))
	assert.Equal(t, fallbackEmoji, emoji("no-such-icon"))
	assert.Equal(t, fallbackEmoji, emoji(""))
}

func TestSplitListPrefix(t *testing.T) {
	svc := newTestStore(t)

	// Explicit prefix resolves the named list.
	list, rest, ok := splitListPrefix(svc, "Pharmacy/Cleaning: soap x2")
	require.True(t, ok)
	assert.Equal(t, "list-pharmacy", list.ID)
	assert.Equal(t, "soap x2", rest)

	// No prefix falls back to the first list.
	list, rest, ok = splitListPrefix(svc, "milk")
	require.True(t, ok)
	assert.Equal(t, "list-super", list.ID)
	assert.Equal(t, "milk", rest)

	// An unknown prefix also falls back, keeping the raw text intact.
	list, rest, ok = splitListPrefix(svc, "Nowhere: milk")
	require.True(t, ok)
	assert.Equal(t, "list-super", list.ID)
	assert.Equal(t, "Nowhere: milk", rest)
}
