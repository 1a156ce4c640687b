package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dayflow/internal/agenda"
	"dayflow/internal/models"
	"dayflow/internal/optimistic"
)

// PlannerStore is the mutation surface the planner needs from the
// persistence collaborator.
type PlannerStore interface {
	SetPriorityDone(ctx context.Context, id string, done bool) error
	SetTaskDone(ctx context.Context, id string, done bool) error
	SetReminderCompleted(ctx context.Context, id string, completed bool) error
	SetHabitCompleted(ctx context.Context, userID, habitID string, day time.Time, completed bool) error
	InsertTask(ctx context.Context, t *models.Task) error
}

// Section identifies which entity list has focus
type Section int

const (
	SectionPriorities Section = iota
	SectionTasks
	SectionHabits
	SectionReminders
	SectionNotes
	sectionCount
)

func (s Section) title() string {
	switch s {
	case SectionPriorities:
		return "Priorities"
	case SectionTasks:
		return "Tasks"
	case SectionHabits:
		return "Habits"
	case SectionReminders:
		return "Reminders"
	case SectionNotes:
		return "Notes"
	}
	return ""
}

type viewMsg struct{ res agenda.Result }

type mutationDoneMsg struct {
	done optimistic.Done
}

type taskAddedMsg struct{ err error }

type toastClearMsg struct{ seq int }

// PlannerModel renders one day's aggregated view and drives optimistic
// toggles against it.
type PlannerModel struct {
	width  int
	height int

	userID string
	day    time.Time
	view   agenda.DailyView

	loader *agenda.Loader
	store  PlannerStore
	ctrl   optimistic.Controller

	loading bool
	section Section
	cursor  int

	toast    string
	toastSeq int

	adding bool
	input  textinput.Model

	quitting bool
}

// NewPlannerModel creates the planner for the given day.
func NewPlannerModel(loader *agenda.Loader, store PlannerStore, userID string, day time.Time) PlannerModel {
	input := textinput.New()
	input.Placeholder = "Task title"
	input.CharLimit = 120
	input.Prompt = "➕ "

	return PlannerModel{
		userID:  userID,
		day:     models.DayOf(day),
		loader:  loader,
		store:   store,
		loading: true,
		input:   input,
	}
}

// Init kicks off the first aggregation.
func (m PlannerModel) Init() tea.Cmd {
	return m.loadCmd()
}

// loadCmd begins a load for the currently selected day, superseding any
// in-flight load for a previous day.
func (m PlannerModel) loadCmd() tea.Cmd {
	fetch := m.loader.Begin(context.Background(), m.day)
	return func() tea.Msg {
		return viewMsg{res: fetch()}
	}
}

// Update handles messages
func (m PlannerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case viewMsg:
		// Results for a superseded day are dropped, never rendered.
		if !m.loader.Accept(msg.res) {
			return m, nil
		}
		m.loading = false
		if msg.res.Err != nil {
			if errors.Is(msg.res.Err, context.Canceled) {
				return m, nil
			}
			return m.showToast(fmt.Sprintf("Could not load %s", msg.res.Day.Format("Jan 2")))
		}
		m.view = msg.res.View
		m.clampCursor()
		return m, nil

	case mutationDoneMsg:
		if err := m.ctrl.Settle(msg.done); err != nil {
			return m.showToast(optimistic.FailureMessage(msg.done.Label))
		}
		// Local state is already correct; re-aggregate so derived
		// fields catch up.
		return m, m.loadCmd()

	case taskAddedMsg:
		if msg.err != nil {
			return m.showToast("Could not add task")
		}
		return m, m.loadCmd()

	case toastClearMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.handleAddKeys(msg)
		}
		return m.handleKeys(msg)
	}

	return m, nil
}

func (m PlannerModel) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		m.loader.Stop()
		return m, tea.Quit

	case "left", "h":
		m.day = m.day.AddDate(0, 0, -1)
		m.loading = true
		m.cursor = 0
		return m, m.loadCmd()

	case "right", "l":
		m.day = m.day.AddDate(0, 0, 1)
		m.loading = true
		m.cursor = 0
		return m, m.loadCmd()

	case "t":
		m.day = models.DayOf(time.Now())
		m.loading = true
		m.cursor = 0
		return m, m.loadCmd()

	case "tab":
		m.section = (m.section + 1) % sectionCount
		m.cursor = 0
		return m, nil

	case "shift+tab":
		m.section = (m.section + sectionCount - 1) % sectionCount
		m.cursor = 0
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < m.sectionLen(m.section)-1 {
			m.cursor++
		}
		return m, nil

	case "a":
		m.adding = true
		m.input.SetValue("")
		return m, m.input.Focus()

	case " ", "enter":
		return m.toggleSelected()
	}

	return m, nil
}

func (m PlannerModel) handleAddKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.input.Blur()
		return m, nil

	case "enter":
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			// Validation failure: rejected before anything optimistic.
			return m.showToast("Title is required")
		}
		m.adding = false
		m.input.Blur()
		day := m.day
		userID := m.userID
		store := m.store
		return m, func() tea.Msg {
			task := models.Task{UserID: userID, Title: title, Date: &day}
			return taskAddedMsg{err: store.InsertTask(context.Background(), &task)}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// toggleSelected flips the done-state of the focused item optimistically:
// the list updates immediately and rolls back if the write fails.
func (m PlannerModel) toggleSelected() (tea.Model, tea.Cmd) {
	i := m.cursor
	store := m.store

	var mut optimistic.Mutation
	switch m.section {
	case SectionPriorities:
		if i >= len(m.view.Priorities) {
			return m, nil
		}
		p := &m.view.Priorities[i]
		id := p.ID
		mut = optimistic.Toggle("priority", &p.IsDone, func(ctx context.Context, v bool) error {
			return store.SetPriorityDone(ctx, id, v)
		})

	case SectionTasks:
		if i >= len(m.view.Tasks) {
			return m, nil
		}
		t := &m.view.Tasks[i]
		id := t.ID
		mut = optimistic.Toggle("task", &t.IsDone, func(ctx context.Context, v bool) error {
			return store.SetTaskDone(ctx, id, v)
		})

	case SectionHabits:
		if i >= len(m.view.Habits) {
			return m, nil
		}
		h := &m.view.Habits[i]
		habitID := h.Habit.ID
		userID := m.userID
		day := m.day
		mut = optimistic.Toggle("habit", &h.IsCompleted, func(ctx context.Context, v bool) error {
			return store.SetHabitCompleted(ctx, userID, habitID, day, v)
		})

	case SectionReminders:
		if i >= len(m.view.Reminders) {
			return m, nil
		}
		r := &m.view.Reminders[i]
		id := r.ID
		mut = optimistic.Toggle("reminder", &r.IsCompleted, func(ctx context.Context, v bool) error {
			return store.SetReminderCompleted(ctx, id, v)
		})

	default:
		// Notes have no done-state.
		return m, nil
	}

	run := m.ctrl.Stage(context.Background(), mut)
	return m, func() tea.Msg {
		return mutationDoneMsg{done: run()}
	}
}

func (m PlannerModel) showToast(text string) (tea.Model, tea.Cmd) {
	m.toast = text
	m.toastSeq++
	seq := m.toastSeq
	return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return toastClearMsg{seq: seq}
	})
}

func (m PlannerModel) sectionLen(s Section) int {
	switch s {
	case SectionPriorities:
		return len(m.view.Priorities)
	case SectionTasks:
		return len(m.view.Tasks)
	case SectionHabits:
		return len(m.view.Habits)
	case SectionReminders:
		return len(m.view.Reminders)
	case SectionNotes:
		return len(m.view.Notes)
	}
	return 0
}

func (m *PlannerModel) clampCursor() {
	if max := m.sectionLen(m.section); m.cursor >= max {
		if max == 0 {
			m.cursor = 0
		} else {
			m.cursor = max - 1
		}
	}
}

// View renders the daily view
func (m PlannerModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	toastStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Bold(true)

	var b strings.Builder

	header := m.day.Format("Monday, January 2 2006")
	if models.SameDay(m.day, time.Now()) {
		header += " · today"
	}
	b.WriteString(titleStyle.Render("📅 "+header) + "\n")
	if m.loading {
		b.WriteString(dimStyle.Render("loading…") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderSection(SectionPriorities))
	b.WriteString(m.renderSection(SectionTasks))
	b.WriteString(m.renderSection(SectionHabits))
	b.WriteString(m.renderSection(SectionReminders))
	b.WriteString(m.renderSection(SectionNotes))

	if m.adding {
		b.WriteString("\n" + m.input.View() + "\n")
	}
	if m.toast != "" {
		b.WriteString("\n" + toastStyle.Render("⚠ "+m.toast) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("←/→ day · tab section · ↑/↓ move · space toggle · a add task · t today · q quit"))
	return b.String()
}

func (m PlannerModel) renderSection(s Section) string {
	sectionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Bold(true)
	if s == m.section {
		sectionStyle = sectionStyle.Foreground(lipgloss.Color(ColorAccentBright))
	}
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))

	var b strings.Builder
	b.WriteString(sectionStyle.Render(s.title()) + "\n")

	n := m.sectionLen(s)
	if n == 0 {
		b.WriteString(emptyStyle.Render("  — nothing here") + "\n\n")
		return b.String()
	}

	for i := 0; i < n; i++ {
		b.WriteString(m.renderItem(s, i) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (m PlannerModel) renderItem(s Section, i int) string {
	doneStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDisabledText)).
		Strikethrough(true)
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))

	cursor := "  "
	if s == m.section && i == m.cursor {
		cursor = "➤ "
	}

	var checked bool
	var hasBox bool = true
	var title, suffix string

	switch s {
	case SectionPriorities:
		p := m.view.Priorities[i]
		checked = p.IsDone
		title = p.Title
		if p.StartTime != nil {
			suffix = " · " + p.StartTime.Format("15:04")
		}
	case SectionTasks:
		t := m.view.Tasks[i]
		checked = t.IsDone
		title = t.Title
	case SectionHabits:
		h := m.view.Habits[i]
		checked = h.IsCompleted
		title = h.Habit.Title
		if h.Habit.DurationMinutes > 0 {
			suffix = fmt.Sprintf(" · %dm", h.Habit.DurationMinutes)
		}
	case SectionReminders:
		r := m.view.Reminders[i]
		checked = r.IsCompleted
		title = r.Title
		if r.DueDate != nil {
			suffix = " · " + r.DueDate.Format("15:04")
		}
	case SectionNotes:
		hasBox = false
		title = m.view.Notes[i].Title
	}

	box := ""
	if hasBox {
		if checked {
			box = "[x] "
		} else {
			box = "[ ] "
		}
	}

	line := cursor + box + title + suffix
	if checked {
		return doneStyle.Render(line)
	}
	return textStyle.Render(line)
}
