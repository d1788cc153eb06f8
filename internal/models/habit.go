package models

import "time"

// Habit represents a recurring practice to track.
// Dates holds the days the habit was completed, as YYYY-MM-DD strings;
// a day appears at most once (toggle enforces set semantics).
type Habit struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Dates     []string  `json:"dates"`
	CreatedAt time.Time `json:"createdAt"`
}

// CompletedOn reports whether the habit was completed on the given day.
func (h Habit) CompletedOn(day string) bool {
	for _, d := range h.Dates {
		if d == day {
			return true
		}
	}
	return false
}
