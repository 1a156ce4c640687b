package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dayflow/internal/agenda"
	"dayflow/internal/models"
	"dayflow/internal/repo"
)

// StoreAdapter exposes a repo.Store through the narrow mutation surfaces
// the TUI models consume.
type StoreAdapter struct {
	Store *repo.Store
}

func (a StoreAdapter) SetPriorityDone(ctx context.Context, id string, done bool) error {
	return a.Store.Priorities.SetDone(ctx, id, done)
}

func (a StoreAdapter) SetTaskDone(ctx context.Context, id string, done bool) error {
	return a.Store.Tasks.SetDone(ctx, id, done)
}

func (a StoreAdapter) SetReminderCompleted(ctx context.Context, id string, completed bool) error {
	return a.Store.Reminders.SetCompleted(ctx, id, completed)
}

func (a StoreAdapter) SetHabitCompleted(ctx context.Context, userID, habitID string, day time.Time, completed bool) error {
	return a.Store.Habits.SetCompleted(ctx, userID, habitID, day, completed)
}

func (a StoreAdapter) InsertTask(ctx context.Context, t *models.Task) error {
	return a.Store.Tasks.Insert(ctx, t)
}

func (a StoreAdapter) ListByProject(ctx context.Context, projectID string) ([]models.BoardTask, error) {
	return a.Store.BoardTasks.ListByProject(ctx, projectID)
}

func (a StoreAdapter) SetStatus(ctx context.Context, id string, status models.BoardStatus) error {
	return a.Store.BoardTasks.SetStatus(ctx, id, status)
}

// RunPlanner starts the daily planner TUI on the given day.
func RunPlanner(store *repo.Store, userID string, day time.Time) error {
	agg := agenda.NewAggregator(agenda.Sources{
		Priorities: store.Priorities,
		Tasks:      store.Tasks,
		Notes:      store.Notes,
		Reminders:  store.Reminders,
		Habits:     store.Habits,
	})
	loader := agenda.NewLoader(agg, userID)

	model := NewPlannerModel(loader, StoreAdapter{Store: store}, userID, day)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunBoard starts the kanban board TUI for one project. Mouse reporting
// is enabled so drags arrive as motion events.
func RunBoard(store *repo.Store, project models.Project) error {
	model := NewBoardModel(StoreAdapter{Store: store}, project)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
