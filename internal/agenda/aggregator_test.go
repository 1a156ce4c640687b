package agenda_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"dayflow/internal/agenda"
	"dayflow/internal/models"
	"dayflow/internal/testutil"
)

const userID = "u1"

func newAggregator(f *testutil.FakeStore) *agenda.Aggregator {
	agg := agenda.NewAggregator(agenda.Sources{
		Priorities: f,
		Tasks:      f.TaskSource(),
		Notes:      f.NoteSource(),
		Reminders:  f,
		Habits:     f,
	})
	agg.SetLogger(nil)
	return agg
}

func seedDay() (time.Time, *testutil.FakeStore) {
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC) // a Monday
	due := day.Add(15 * time.Hour)

	f := testutil.NewFakeStore()
	f.Priorities = []models.Priority{
		{ID: "p1", UserID: userID, Title: "ship release", Date: day, CreatedAt: day.Add(1 * time.Hour)},
		{ID: "p2", UserID: userID, Title: "review budget", Date: day, CreatedAt: day.Add(2 * time.Hour)},
		{ID: "p3", UserID: userID, Title: "other day", Date: day.AddDate(0, 0, 1), CreatedAt: day},
	}
	f.Habits = []models.Habit{
		{ID: "h1", UserID: userID, Title: "run", Frequency: models.FrequencyThreeTimes, CreatedAt: day},
		{ID: "h2", UserID: userID, Title: "weekend yoga", Frequency: models.FrequencyCustom, CustomDays: []int{0, 6}, CreatedAt: day},
	}
	f.Reminders = []models.Reminder{
		{ID: "r1", UserID: userID, Title: "call bank", DueDate: &due, CreatedAt: day},
	}
	return day, f
}

func TestLoadDailyViewScenario(t *testing.T) {
	day, f := seedDay()
	agg := newAggregator(f)

	view, err := agg.LoadDailyView(context.Background(), userID, day)
	if err != nil {
		t.Fatalf("LoadDailyView: %v", err)
	}

	if len(view.Priorities) != 2 {
		t.Errorf("priorities = %d, want 2", len(view.Priorities))
	}
	if len(view.Notes) != 0 {
		t.Errorf("notes = %d, want 0", len(view.Notes))
	}
	if len(view.Reminders) != 1 {
		t.Errorf("reminders = %d, want 1", len(view.Reminders))
	}
	// Monday: the three_times habit occurs, the weekend one does not.
	if len(view.Habits) != 1 {
		t.Fatalf("habits = %d, want 1", len(view.Habits))
	}
	if view.Habits[0].Habit.ID != "h1" {
		t.Errorf("scheduled habit = %s, want h1", view.Habits[0].Habit.ID)
	}
	if view.Habits[0].IsCompleted {
		t.Error("habit with no completion row should not be completed")
	}
}

func TestLoadDailyViewDerivesCompletion(t *testing.T) {
	day, f := seedDay()
	f.Completions = []models.HabitCompletion{
		{ID: "c1", UserID: userID, HabitID: "h1", Day: "2026-03-02"},
	}
	agg := newAggregator(f)

	view, err := agg.LoadDailyView(context.Background(), userID, day)
	if err != nil {
		t.Fatalf("LoadDailyView: %v", err)
	}
	if len(view.Habits) != 1 || !view.Habits[0].IsCompleted {
		t.Error("habit with a completion row for the day should be completed")
	}
}

func TestLoadDailyViewOrdering(t *testing.T) {
	day, f := seedDay()
	agg := newAggregator(f)

	view, err := agg.LoadDailyView(context.Background(), userID, day)
	if err != nil {
		t.Fatalf("LoadDailyView: %v", err)
	}
	if view.Priorities[0].ID != "p2" || view.Priorities[1].ID != "p1" {
		t.Errorf("priorities not newest-first: %s, %s", view.Priorities[0].ID, view.Priorities[1].ID)
	}
}

func TestLoadDailyViewIdempotent(t *testing.T) {
	day, f := seedDay()
	agg := newAggregator(f)

	first, err := agg.LoadDailyView(context.Background(), userID, day)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	second, err := agg.LoadDailyView(context.Background(), userID, day)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two loads without mutation differ:\n%+v\n%+v", first, second)
	}
}

func TestLoadDailyViewDegradesFailedCategory(t *testing.T) {
	day, f := seedDay()
	f.PriorityErr = errors.New("store unreachable")

	var warnings int
	agg := newAggregator(f)
	agg.SetLogger(func(format string, args ...any) { warnings++ })

	view, err := agg.LoadDailyView(context.Background(), userID, day)
	if err != nil {
		t.Fatalf("a single failed category must not fail the view: %v", err)
	}
	if len(view.Priorities) != 0 {
		t.Errorf("failed category should be empty, got %d", len(view.Priorities))
	}
	if len(view.Reminders) != 1 || len(view.Habits) != 1 {
		t.Error("healthy categories should still be present")
	}
	if warnings != 1 {
		t.Errorf("warnings = %d, want 1", warnings)
	}
}

func TestLoadDailyViewCancelled(t *testing.T) {
	day, f := seedDay()
	agg := newAggregator(f)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := agg.LoadDailyView(ctx, userID, day)
	if err == nil {
		t.Skip("fetches completed before cancellation was observed")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
