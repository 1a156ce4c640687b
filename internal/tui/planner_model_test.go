package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dayflow/internal/agenda"
	"dayflow/internal/models"
	"dayflow/internal/testutil"
)

func seededPlanner(f *testutil.FakeStore) PlannerModel {
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	agg := agenda.NewAggregator(agenda.Sources{
		Priorities: f,
		Tasks:      f.TaskSource(),
		Notes:      f.NoteSource(),
		Reminders:  f,
		Habits:     f,
	})
	agg.SetLogger(nil)
	loader := agenda.NewLoader(agg, "u1")

	m := NewPlannerModel(loader, f, "u1", day)
	m.loading = false
	m.view = agenda.DailyView{
		Date: day,
		Priorities: []models.Priority{
			{ID: "p1", UserID: "u1", Title: "ship release", Date: day},
		},
		Habits: []agenda.HabitStatus{
			{Habit: models.Habit{ID: "h1", UserID: "u1", Title: "run", Frequency: models.FrequencyDaily}},
		},
	}
	return m
}

func toggle(t *testing.T, m PlannerModel) (PlannerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if cmd == nil {
		t.Fatal("toggle should return a persistence command")
	}
	return next.(PlannerModel), cmd
}

func TestPlannerToggleHabitAppliesImmediately(t *testing.T) {
	f := testutil.NewFakeStore()
	m := seededPlanner(f)
	m.section = SectionHabits

	m, cmd := toggle(t, m)
	if !m.view.Habits[0].IsCompleted {
		t.Fatal("toggle should mark the habit before the write returns")
	}

	msg := cmd().(mutationDoneMsg)
	if msg.done.Err != nil {
		t.Fatalf("write: %v", msg.done.Err)
	}
	if f.CompletedCalls != 1 {
		t.Errorf("completion writes = %d, want 1", f.CompletedCalls)
	}

	// A successful write triggers re-aggregation for derived fields.
	next, reload := m.Update(msg)
	m = next.(PlannerModel)
	if reload == nil {
		t.Error("successful toggle should reload the view")
	}
	if !m.view.Habits[0].IsCompleted {
		t.Error("habit should stay completed until the reload lands")
	}
}

func TestPlannerToggleHabitOfflineRollsBack(t *testing.T) {
	f := testutil.NewFakeStore()
	f.SetCompletedErr = errors.New("store unreachable")
	m := seededPlanner(f)
	m.section = SectionHabits

	m, cmd := toggle(t, m)
	if !m.view.Habits[0].IsCompleted {
		t.Fatal("toggle should apply optimistically even when the store is down")
	}

	next, _ := m.Update(cmd())
	m = next.(PlannerModel)

	if m.view.Habits[0].IsCompleted {
		t.Error("failed write should revert the habit")
	}
	if m.toast != "Could not save habit — change undone" {
		t.Errorf("toast = %q", m.toast)
	}
	if f.CompletedCalls != 0 {
		t.Errorf("completion writes = %d, want 0", f.CompletedCalls)
	}
}

func TestPlannerTogglePriority(t *testing.T) {
	f := testutil.NewFakeStore()
	m := seededPlanner(f)
	m.section = SectionPriorities

	m, cmd := toggle(t, m)
	if !m.view.Priorities[0].IsDone {
		t.Fatal("priority should flip immediately")
	}
	if msg := cmd().(mutationDoneMsg); msg.done.Err != nil {
		t.Fatalf("write: %v", msg.done.Err)
	}
	if f.DoneCalls != 1 {
		t.Errorf("done writes = %d, want 1", f.DoneCalls)
	}
}

func TestPlannerToggleEmptySectionIsNoop(t *testing.T) {
	f := testutil.NewFakeStore()
	m := seededPlanner(f)
	m.section = SectionTasks // seeded view has no tasks

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(PlannerModel)
	if cmd != nil {
		t.Error("toggling in an empty section must not issue a write")
	}
}

func TestPlannerQuickAddRequiresTitle(t *testing.T) {
	f := testutil.NewFakeStore()
	m := seededPlanner(f)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m = next.(PlannerModel)
	if !m.adding {
		t.Fatal("'a' should open the quick-add input")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(PlannerModel)
	if m.toast != "Title is required" {
		t.Errorf("toast = %q, want validation message", m.toast)
	}
	if len(f.Inserted) != 0 {
		t.Error("empty title must not reach the store")
	}
}

func TestPlannerQuickAddInsertsTask(t *testing.T) {
	f := testutil.NewFakeStore()
	m := seededPlanner(f)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m = next.(PlannerModel)
	for _, r := range "buy milk" {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(PlannerModel)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(PlannerModel)
	if cmd == nil {
		t.Fatal("submitting a title should issue the insert")
	}
	if msg := cmd().(taskAddedMsg); msg.err != nil {
		t.Fatalf("insert: %v", msg.err)
	}

	if len(f.Inserted) != 1 || f.Inserted[0].Title != "buy milk" {
		t.Fatalf("inserted = %+v", f.Inserted)
	}
	if f.Inserted[0].Date == nil || !models.SameDay(*f.Inserted[0].Date, m.day) {
		t.Error("quick-added task should land on the viewed day")
	}
}

func TestPlannerStaleViewResultDropped(t *testing.T) {
	f := testutil.NewFakeStore()
	m := seededPlanner(f)

	// Two loads in a row: only the second one's result may land.
	first := m.loadCmd()
	m.day = m.day.AddDate(0, 0, 1)
	second := m.loadCmd()

	staleMsg := first().(viewMsg)
	freshMsg := second().(viewMsg)

	next, _ := m.Update(staleMsg)
	m = next.(PlannerModel)
	if len(m.view.Priorities) != 1 {
		t.Error("stale result must not replace the view")
	}

	next, _ = m.Update(freshMsg)
	m = next.(PlannerModel)
	if !m.view.Date.Equal(m.day) {
		t.Errorf("view date = %v, want %v", m.view.Date, m.day)
	}
}
