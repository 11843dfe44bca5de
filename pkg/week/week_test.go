package week_test

import (
	"testing"
	"time"

	"github.com/limbo/trackit/pkg/week"
	"github.com/stretchr/testify/assert"
)

func TestOfStartsOnMonday(t *testing.T) {
	// One reference date per weekday
	refs := []time.Time{
		time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC), // Mon
		time.Date(2026, time.August, 25, 10, 30, 0, 0, time.UTC),
		time.Date(2026, time.August, 26, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.August, 27, 23, 59, 59, 0, time.UTC),
		time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC), // Sun
	}
	for _, ref := range refs {
		w := week.Of(ref)
		assert.Equal(t, time.Monday, w.Start.Weekday())
		assert.Equal(t, "2026-08-24", w.Days[0].Key)
		assert.Equal(t, "2026-08-30", w.Days[6].Key)
	}
}

func TestOfSevenConsecutiveDays(t *testing.T) {
	w := week.Of(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	for i, d := range w.Days {
		expected := w.Start.AddDate(0, 0, i)
		assert.True(t, d.Date.Equal(expected))
		assert.Equal(t, expected.Format(week.DayKeyLayout), d.Key)
		assert.Equal(t, expected.Format("Mon"), d.Label)
	}
	assert.True(t, w.End.Equal(w.Start.AddDate(0, 0, 6)))
}

func TestOfRefWithinBounds(t *testing.T) {
	ref := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	w := week.Of(ref)
	assert.False(t, ref.Before(w.Start))
	assert.False(t, ref.After(w.End.AddDate(0, 0, 1)))
}

func TestOfYearBoundary(t *testing.T) {
	// 2026-01-01 is a Thursday; its week starts in the previous year
	w := week.Of(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2025-12-29", w.Days[0].Key)
	assert.Equal(t, "2026-01-04", w.Days[6].Key)
	assert.Equal(t, "Mon", w.Days[0].Label)
	assert.Equal(t, "Sun", w.Days[6].Label)
}

func TestNumber(t *testing.T) {
	assert.Equal(t, 1, week.Number(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 35, week.Number(time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)))
}
