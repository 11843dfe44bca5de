// Package week computes the 7-day ISO week (Monday start) containing a
// reference date. Pure calendar arithmetic, no I/O.
package week

import "time"

// DayKeyLayout is the wire format for calendar days everywhere in the app.
const DayKeyLayout = "2006-01-02"

type DayDescriptor struct {
	Date  time.Time
	Key   string
	Label string
}

type Week struct {
	Days  [7]DayDescriptor
	Start time.Time
	End   time.Time
}

// Of returns the ISO week containing ref. The week always starts on
// Monday regardless of ref's weekday; ref itself lies somewhere within
// [Start, End]. Dates are normalized to midnight in ref's location.
func Of(ref time.Time) Week {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	// time.Weekday has Sunday = 0; shift so Monday = 0.
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)

	var w Week
	w.Start = start
	w.End = start.AddDate(0, 0, 6)
	for i := range w.Days {
		d := start.AddDate(0, 0, i)
		w.Days[i] = DayDescriptor{
			Date:  d,
			Key:   d.Format(DayKeyLayout),
			Label: d.Format("Mon"),
		}
	}
	return w
}

// Number reports the ISO 8601 week number of the week containing ref.
func Number(ref time.Time) int {
	_, num := ref.ISOWeek()
	return num
}
