// Package recur decides on which calendar days a habit is due and answers
// completion lookups against a fetched completion log. Everything here is
// pure: no I/O, no clock reads.
package recur

import (
	"time"

	"dayflow/internal/models"
)

// OccursOn reports whether the habit has an occurrence on the given day.
// Unknown frequencies fail closed.
func OccursOn(h models.Habit, day time.Time) bool {
	switch h.Frequency {
	case models.FrequencyDaily:
		return true
	case models.FrequencyThreeTimes:
		switch day.Weekday() {
		case time.Monday, time.Wednesday, time.Friday:
			return true
		}
		return false
	case models.FrequencyCustom:
		wd := int(day.Weekday())
		for _, d := range h.CustomDays {
			if d == wd {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// CompletionSet indexes a completion log for O(1) membership tests, keyed
// by habit id and calendar-day key.
type CompletionSet map[string]struct{}

// NewCompletionSet builds the index from fetched completion rows.
func NewCompletionSet(completions []models.HabitCompletion) CompletionSet {
	set := make(CompletionSet, len(completions))
	for _, c := range completions {
		set[completionKey(c.HabitID, c.Day)] = struct{}{}
	}
	return set
}

// Done reports whether the habit was completed on the given day.
func (s CompletionSet) Done(habitID string, day time.Time) bool {
	_, ok := s[completionKey(habitID, models.DayKey(day))]
	return ok
}

func completionKey(habitID, dayKey string) string {
	return habitID + "/" + dayKey
}
