// Package testutil provides in-memory fakes for the persistence
// collaborator, with per-method error injection.
package testutil

import (
	"context"
	"sync"
	"time"

	"dayflow/internal/models"
)

// StatusCall records one SetStatus invocation.
type StatusCall struct {
	ID     string
	Status models.BoardStatus
}

// FakeStore is an in-memory stand-in for the entity repositories. Seed the
// exported slices directly; set the *Err fields to inject failures.
type FakeStore struct {
	mu sync.Mutex

	Priorities  []models.Priority
	Tasks       []models.Task
	Notes       []models.Note
	Reminders   []models.Reminder
	Habits      []models.Habit
	Completions []models.HabitCompletion
	BoardTasks  []models.BoardTask

	// Error injection per fetch.
	PriorityErr   error
	TaskErr       error
	NoteErr       error
	ReminderErr   error
	HabitErr      error
	CompletionErr error

	// Error injection per write.
	SetStatusErr    error
	SetDoneErr      error
	SetCompletedErr error
	InsertErr       error
	BoardListErr    error

	StatusCalls    []StatusCall
	DoneCalls      int
	CompletedCalls int
	Inserted       []models.Task
}

// NewFakeStore creates an empty fake store.
func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

// ListByDay implements agenda.PrioritySource.
func (f *FakeStore) ListByDay(ctx context.Context, userID string, day time.Time) ([]models.Priority, error) {
	if f.PriorityErr != nil {
		return nil, f.PriorityErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Priority
	for _, p := range f.Priorities {
		if p.UserID == userID && models.SameDay(p.Date, day) {
			out = append(out, p)
		}
	}
	return out, nil
}

// TaskSource returns a view implementing agenda.TaskSource.
func (f *FakeStore) TaskSource() *FakeTaskSource { return &FakeTaskSource{f} }

// NoteSource returns a view implementing agenda.NoteSource.
func (f *FakeStore) NoteSource() *FakeNoteSource { return &FakeNoteSource{f} }

// FakeTaskSource narrows FakeStore to task reads. A separate type is
// needed because ListByDay signatures collide across entity kinds.
type FakeTaskSource struct{ f *FakeStore }

func (s *FakeTaskSource) ListByDay(ctx context.Context, userID string, day time.Time) ([]models.Task, error) {
	if s.f.TaskErr != nil {
		return nil, s.f.TaskErr
	}
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	var out []models.Task
	for _, t := range s.f.Tasks {
		if t.UserID == userID && t.Date != nil && models.SameDay(*t.Date, day) {
			out = append(out, t)
		}
	}
	return out, nil
}

// FakeNoteSource narrows FakeStore to note reads.
type FakeNoteSource struct{ f *FakeStore }

func (s *FakeNoteSource) ListByDay(ctx context.Context, userID string, day time.Time) ([]models.Note, error) {
	if s.f.NoteErr != nil {
		return nil, s.f.NoteErr
	}
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	var out []models.Note
	for _, n := range s.f.Notes {
		if n.UserID == userID && n.Date != nil && models.SameDay(*n.Date, day) {
			out = append(out, n)
		}
	}
	return out, nil
}

// ListDueBetween implements agenda.ReminderSource.
func (f *FakeStore) ListDueBetween(ctx context.Context, userID string, start, end time.Time) ([]models.Reminder, error) {
	if f.ReminderErr != nil {
		return nil, f.ReminderErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Reminder
	for _, r := range f.Reminders {
		if r.UserID != userID || r.DueDate == nil {
			continue
		}
		if r.DueDate.Before(start) || r.DueDate.After(end) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// ListByUser implements agenda.HabitSource.
func (f *FakeStore) ListByUser(ctx context.Context, userID string) ([]models.Habit, error) {
	if f.HabitErr != nil {
		return nil, f.HabitErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Habit
	for _, h := range f.Habits {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	return out, nil
}

// ListCompletions implements agenda.HabitSource.
func (f *FakeStore) ListCompletions(ctx context.Context, userID string) ([]models.HabitCompletion, error) {
	if f.CompletionErr != nil {
		return nil, f.CompletionErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.HabitCompletion
	for _, c := range f.Completions {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

// SetStatus records a board status write, for drag-settle assertions.
func (f *FakeStore) SetStatus(ctx context.Context, id string, status models.BoardStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SetStatusErr != nil {
		return f.SetStatusErr
	}
	f.StatusCalls = append(f.StatusCalls, StatusCall{ID: id, Status: status})
	return nil
}

// SetDone records a done-flag write.
func (f *FakeStore) SetDone(ctx context.Context, id string, done bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SetDoneErr != nil {
		return f.SetDoneErr
	}
	f.DoneCalls++
	return nil
}

// SetPriorityDone implements tui.PlannerStore.
func (f *FakeStore) SetPriorityDone(ctx context.Context, id string, done bool) error {
	return f.SetDone(ctx, id, done)
}

// SetTaskDone implements tui.PlannerStore.
func (f *FakeStore) SetTaskDone(ctx context.Context, id string, done bool) error {
	return f.SetDone(ctx, id, done)
}

// SetReminderCompleted implements tui.PlannerStore.
func (f *FakeStore) SetReminderCompleted(ctx context.Context, id string, completed bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SetCompletedErr != nil {
		return f.SetCompletedErr
	}
	f.CompletedCalls++
	return nil
}

// InsertTask implements tui.PlannerStore.
func (f *FakeStore) InsertTask(ctx context.Context, t *models.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.InsertErr != nil {
		return f.InsertErr
	}
	f.Inserted = append(f.Inserted, *t)
	f.Tasks = append(f.Tasks, *t)
	return nil
}

// ListByProject implements tui.BoardStore.
func (f *FakeStore) ListByProject(ctx context.Context, projectID string) ([]models.BoardTask, error) {
	if f.BoardListErr != nil {
		return nil, f.BoardListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.BoardTask
	for _, t := range f.BoardTasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out, nil
}

// SetHabitCompleted records a habit completion toggle.
func (f *FakeStore) SetHabitCompleted(ctx context.Context, userID, habitID string, day time.Time, completed bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SetCompletedErr != nil {
		return f.SetCompletedErr
	}
	f.CompletedCalls++
	return nil
}
