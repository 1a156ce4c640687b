// Package agenda assembles the per-day view consumed by the planner and
// calendar screens. Each entity kind is fetched independently and merged
// into one DailyView snapshot.
package agenda

import (
	"context"
	"log"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"dayflow/internal/models"
	"dayflow/internal/recur"
)

// PrioritySource reads priorities by exact calendar day.
type PrioritySource interface {
	ListByDay(ctx context.Context, userID string, day time.Time) ([]models.Priority, error)
}

// TaskSource reads planner tasks by exact calendar day.
type TaskSource interface {
	ListByDay(ctx context.Context, userID string, day time.Time) ([]models.Task, error)
}

// NoteSource reads notes by exact calendar day.
type NoteSource interface {
	ListByDay(ctx context.Context, userID string, day time.Time) ([]models.Note, error)
}

// ReminderSource reads reminders by due-date range.
type ReminderSource interface {
	ListDueBetween(ctx context.Context, userID string, start, end time.Time) ([]models.Reminder, error)
}

// HabitSource reads a user's habits joined with their completion log.
type HabitSource interface {
	ListByUser(ctx context.Context, userID string) ([]models.Habit, error)
	ListCompletions(ctx context.Context, userID string) ([]models.HabitCompletion, error)
}

// Sources bundles the repositories the aggregator reads from.
type Sources struct {
	Priorities PrioritySource
	Tasks      TaskSource
	Notes      NoteSource
	Reminders  ReminderSource
	Habits     HabitSource
}

// HabitStatus pairs a habit scheduled on the viewed day with its derived
// done-state for that day.
type HabitStatus struct {
	Habit       models.Habit
	IsCompleted bool
}

// DailyView is the aggregated bundle for one calendar day. It is derived,
// never persisted, and replaced wholesale on re-aggregation.
type DailyView struct {
	Date       time.Time
	Priorities []models.Priority
	Tasks      []models.Task
	Notes      []models.Note
	Habits     []HabitStatus
	Reminders  []models.Reminder
}

// Aggregator builds DailyViews from independent per-collection fetches.
type Aggregator struct {
	src Sources

	// logf receives degraded-fetch warnings; defaults to log.Printf.
	logf func(format string, args ...any)
}

// NewAggregator creates an aggregator over the given sources.
func NewAggregator(src Sources) *Aggregator {
	return &Aggregator{src: src, logf: log.Printf}
}

// SetLogger overrides the warning sink. A nil logf silences warnings.
func (a *Aggregator) SetLogger(logf func(format string, args ...any)) {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	a.logf = logf
}

// LoadDailyView fetches every entity kind relevant to the day concurrently
// and merges them into one snapshot. A failed fetch degrades its own
// category to empty and is logged; the remaining categories still load.
// Cancellation of ctx aborts the whole view. Given unchanged stores, the
// result is identical across calls: each list is ordered newest first with
// id as tiebreaker.
func (a *Aggregator) LoadDailyView(ctx context.Context, userID string, day time.Time) (DailyView, error) {
	day = models.DayOf(day)
	view := DailyView{Date: day}

	var habits []models.Habit
	var completions []models.HabitCompletion

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := a.src.Priorities.ListByDay(gctx, userID, day)
		if err != nil {
			return a.degrade(gctx, "priorities", err)
		}
		view.Priorities = rows
		return nil
	})
	g.Go(func() error {
		rows, err := a.src.Tasks.ListByDay(gctx, userID, day)
		if err != nil {
			return a.degrade(gctx, "tasks", err)
		}
		view.Tasks = rows
		return nil
	})
	g.Go(func() error {
		rows, err := a.src.Notes.ListByDay(gctx, userID, day)
		if err != nil {
			return a.degrade(gctx, "notes", err)
		}
		view.Notes = rows
		return nil
	})
	g.Go(func() error {
		rows, err := a.src.Reminders.ListDueBetween(gctx, userID, models.StartOfDay(day), models.EndOfDay(day))
		if err != nil {
			return a.degrade(gctx, "reminders", err)
		}
		view.Reminders = rows
		return nil
	})
	g.Go(func() error {
		rows, err := a.src.Habits.ListByUser(gctx, userID)
		if err != nil {
			return a.degrade(gctx, "habits", err)
		}
		compRows, err := a.src.Habits.ListCompletions(gctx, userID)
		if err != nil {
			return a.degrade(gctx, "habit completions", err)
		}
		habits = rows
		completions = compRows
		return nil
	})
	if err := g.Wait(); err != nil {
		return DailyView{}, err
	}

	done := recur.NewCompletionSet(completions)
	for _, h := range habits {
		if !recur.OccursOn(h, day) {
			continue
		}
		view.Habits = append(view.Habits, HabitStatus{
			Habit:       h,
			IsCompleted: done.Done(h.ID, day),
		})
	}

	sortView(&view)
	return view, nil
}

// degrade logs a failed category fetch and swallows the error unless the
// whole load was cancelled, which must still fail the view.
func (a *Aggregator) degrade(ctx context.Context, category string, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	a.logf("agenda: %s fetch failed, showing empty list: %v", category, err)
	return nil
}

func sortView(v *DailyView) {
	sort.SliceStable(v.Priorities, func(i, j int) bool {
		return newer(v.Priorities[i].CreatedAt, v.Priorities[i].ID, v.Priorities[j].CreatedAt, v.Priorities[j].ID)
	})
	sort.SliceStable(v.Tasks, func(i, j int) bool {
		return newer(v.Tasks[i].CreatedAt, v.Tasks[i].ID, v.Tasks[j].CreatedAt, v.Tasks[j].ID)
	})
	sort.SliceStable(v.Notes, func(i, j int) bool {
		return newer(v.Notes[i].CreatedAt, v.Notes[i].ID, v.Notes[j].CreatedAt, v.Notes[j].ID)
	})
	sort.SliceStable(v.Reminders, func(i, j int) bool {
		return newer(v.Reminders[i].CreatedAt, v.Reminders[i].ID, v.Reminders[j].CreatedAt, v.Reminders[j].ID)
	})
	sort.SliceStable(v.Habits, func(i, j int) bool {
		return newer(v.Habits[i].Habit.CreatedAt, v.Habits[i].Habit.ID, v.Habits[j].Habit.CreatedAt, v.Habits[j].Habit.ID)
	})
}

func newer(at time.Time, aID string, bt time.Time, bID string) bool {
	if !at.Equal(bt) {
		return at.After(bt)
	}
	return aID < bID
}
