package recur

import (
	"testing"
	"time"

	"dayflow/internal/models"
)

func TestOccursOnDaily(t *testing.T) {
	h := models.Habit{ID: "h1", Frequency: models.FrequencyDaily}
	day := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 30; i++ {
		if !OccursOn(h, day.AddDate(0, 0, i)) {
			t.Errorf("daily habit should occur on %s", day.AddDate(0, 0, i).Format("2006-01-02"))
		}
	}
}

func TestOccursOnThreeTimesTwoYears(t *testing.T) {
	h := models.Habit{ID: "h1", Frequency: models.FrequencyThreeTimes}

	day := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := day.AddDate(2, 0, 0)
	for ; day.Before(end); day = day.AddDate(0, 0, 1) {
		want := false
		switch day.Weekday() {
		case time.Monday, time.Wednesday, time.Friday:
			want = true
		}
		if got := OccursOn(h, day); got != want {
			t.Fatalf("OccursOn(three_times, %s %s) = %v, want %v",
				day.Format("2006-01-02"), day.Weekday(), got, want)
		}
	}
}

func TestOccursOnCustomWeekend(t *testing.T) {
	h := models.Habit{
		ID:         "h1",
		Frequency:  models.FrequencyCustom,
		CustomDays: []int{0, 6}, // Sunday, Saturday
	}

	day := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := day.AddDate(0, 2, 0)
	for ; day.Before(end); day = day.AddDate(0, 0, 1) {
		want := day.Weekday() == time.Saturday || day.Weekday() == time.Sunday
		if got := OccursOn(h, day); got != want {
			t.Fatalf("OccursOn(custom{0,6}, %s %s) = %v, want %v",
				day.Format("2006-01-02"), day.Weekday(), got, want)
		}
	}
}

func TestOccursOnCustomEmptyDays(t *testing.T) {
	h := models.Habit{ID: "h1", Frequency: models.FrequencyCustom}
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		if OccursOn(h, day.AddDate(0, 0, i)) {
			t.Errorf("custom habit with no days should never occur")
		}
	}
}

func TestOccursOnUnknownFrequencyFailsClosed(t *testing.T) {
	for _, freq := range []models.Frequency{"", "weekly", "monthly"} {
		h := models.Habit{ID: "h1", Frequency: freq}
		day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 7; i++ {
			if OccursOn(h, day.AddDate(0, 0, i)) {
				t.Errorf("frequency %q should never produce an occurrence", freq)
			}
		}
	}
}

func TestCompletionSet(t *testing.T) {
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	set := NewCompletionSet([]models.HabitCompletion{
		{HabitID: "h1", Day: "2026-03-02"},
		{HabitID: "h2", Day: "2026-03-03"},
	})

	if !set.Done("h1", day) {
		t.Error("h1 should be done on 2026-03-02")
	}
	if set.Done("h1", day.AddDate(0, 0, 1)) {
		t.Error("h1 should not be done on 2026-03-03")
	}
	if set.Done("h2", day) {
		t.Error("h2 should not be done on 2026-03-02")
	}
	if !set.Done("h2", day.AddDate(0, 0, 1)) {
		t.Error("h2 should be done on 2026-03-03")
	}
	if set.Done("h3", day) {
		t.Error("unknown habit should never be done")
	}
}

func TestCompletionSetTimeOfDayIrrelevant(t *testing.T) {
	set := NewCompletionSet([]models.HabitCompletion{{HabitID: "h1", Day: "2026-03-02"}})
	evening := time.Date(2026, time.March, 2, 23, 30, 0, 0, time.UTC)
	if !set.Done("h1", evening) {
		t.Error("membership should depend on the calendar day only")
	}
}
