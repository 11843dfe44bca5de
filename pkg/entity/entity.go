package entity

import (
	"time"
)

type Habit struct {
	ID        int       `json:"id"`
	UserID    string    `json:"uid"`
	Name      string    `json:"name"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// Completion is a set-membership record: a row exists iff the habit was
// done on that day. Day is the calendar date as "YYYY-MM-DD".
type Completion struct {
	HabitID int    `json:"habit_id"`
	UserID  string `json:"uid"`
	Day     string `json:"day"`
}

type Board struct {
	WeekStart string                  `json:"week_start"`
	WeekEnd   string                  `json:"week_end"`
	WeekNum   int                     `json:"week_num"`
	Days      []BoardDay              `json:"days"`
	Habits    []*Habit                `json:"habits"`
	Matrix    map[int]map[string]bool `json:"matrix"`
	Series    []float64               `json:"series"`
}

type BoardDay struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}
