package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dayflow/internal/board"
	"dayflow/internal/models"
	"dayflow/internal/optimistic"
)

// BoardStore is the mutation surface the kanban board needs.
type BoardStore interface {
	ListByProject(ctx context.Context, projectID string) ([]models.BoardTask, error)
	SetStatus(ctx context.Context, id string, status models.BoardStatus) error
}

type boardTasksMsg struct {
	tasks []models.BoardTask
	err   error
}

// boardLayout fixes where columns and cards are drawn so pointer events
// can be mapped back to them. Cards are 3 rows tall (bordered); column
// content starts below the column label and a spacer.
const (
	boardTop       = 2 // rows above the column boxes (title + blank)
	columnHeaderH  = 2 // label + blank line inside the box
	cardHeight     = 3
	minColumnWidth = 20
)

// BoardModel renders a project's 3-column kanban board and turns mouse
// drags into status changes.
type BoardModel struct {
	width  int
	height int

	project models.Project
	tasks   []models.BoardTask

	store   BoardStore
	gesture *board.Gesture
	ctrl    optimistic.Controller

	loading bool
	detail  *models.BoardTask

	toast    string
	toastSeq int

	quitting bool
}

// NewBoardModel creates the board for one project. The drag activation
// threshold is 1 terminal cell; finer pointer resolution does not exist
// in a cell grid.
func NewBoardModel(store BoardStore, project models.Project) BoardModel {
	return BoardModel{
		project: project,
		store:   store,
		gesture: board.NewGesture(1),
		loading: true,
	}
}

// Init loads the project's cards.
func (m BoardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m BoardModel) loadCmd() tea.Cmd {
	store := m.store
	projectID := m.project.ID
	return func() tea.Msg {
		tasks, err := store.ListByProject(context.Background(), projectID)
		return boardTasksMsg{tasks: tasks, err: err}
	}
}

// Update handles messages
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case boardTasksMsg:
		m.loading = false
		if msg.err != nil {
			return m.showToast("Could not load board")
		}
		m.tasks = msg.tasks
		return m, nil

	case mutationDoneMsg:
		if err := m.ctrl.Settle(msg.done); err != nil {
			return m.showToast(optimistic.FailureMessage(msg.done.Label))
		}
		return m, nil

	case toastClearMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			if m.detail != nil {
				m.detail = nil
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m BoardModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if id, origin, ok := m.cardAt(msg.X, msg.Y); ok {
			m.gesture.PointerDown(id, origin, msg.X, msg.Y)
		}
		return m, nil

	case tea.MouseActionMotion:
		m.gesture.PointerMove(msg.X, msg.Y)
		return m, nil

	case tea.MouseActionRelease:
		intent, outcome := m.gesture.PointerUp(m.columnAt(msg.X, msg.Y))
		switch outcome {
		case board.OutcomeClick:
			if id, _, ok := m.cardAt(msg.X, msg.Y); ok {
				if t := m.taskByID(id); t != nil {
					copied := *t
					m.detail = &copied
				}
			}
			return m, nil
		case board.OutcomeDrop:
			if intent == nil {
				// Dropped back on its own column: no write.
				return m, nil
			}
			return m.applyMove(*intent)
		default:
			return m, nil
		}
	}
	return m, nil
}

// applyMove moves the card locally and issues exactly one status update;
// the move is rolled back if the write fails.
func (m BoardModel) applyMove(intent board.Intent) (tea.Model, tea.Cmd) {
	t := m.taskByID(intent.TaskID)
	if t == nil {
		return m, nil
	}
	prev := t.Status

	store := m.store
	id := intent.TaskID
	target := intent.To
	run := m.ctrl.Stage(context.Background(), optimistic.Mutation{
		Label:  "task",
		Apply:  func() { t.Status = target },
		Revert: func() { t.Status = prev },
		Call: func(ctx context.Context) error {
			return store.SetStatus(ctx, id, target)
		},
	})
	return m, func() tea.Msg {
		return mutationDoneMsg{done: run()}
	}
}

func (m *BoardModel) taskByID(id string) *models.BoardTask {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			return &m.tasks[i]
		}
	}
	return nil
}

func (m BoardModel) showToast(text string) (tea.Model, tea.Cmd) {
	m.toast = text
	m.toastSeq++
	seq := m.toastSeq
	return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return toastClearMsg{seq: seq}
	})
}

// columnWidth returns the rendered width of one column box.
func (m BoardModel) columnWidth() int {
	w := m.width / len(models.BoardColumns)
	if w < minColumnWidth {
		w = minColumnWidth
	}
	return w
}

// columnAt maps a pointer position to the column under it, or nil when
// the position is outside every drop target.
func (m BoardModel) columnAt(x, y int) *models.BoardStatus {
	if y < boardTop || y >= m.boardBottom() {
		return nil
	}
	idx := x / m.columnWidth()
	if x < 0 || idx >= len(models.BoardColumns) {
		return nil
	}
	status := models.BoardColumns[idx]
	return &status
}

// cardAt maps a pointer position to the card under it.
func (m BoardModel) cardAt(x, y int) (id string, origin models.BoardStatus, ok bool) {
	col := m.columnAt(x, y)
	if col == nil {
		return "", "", false
	}
	// Rows inside the column content: border(1) + header rows, then
	// 3-row cards.
	r := y - boardTop - 1 - columnHeaderH
	if r < 0 {
		return "", "", false
	}
	idx := r / cardHeight
	cards := m.columnTasks(*col)
	if idx >= len(cards) {
		return "", "", false
	}
	return cards[idx].ID, *col, true
}

func (m BoardModel) boardBottom() int {
	h := m.height - boardTop - 1
	if h < cardHeight+columnHeaderH+2 {
		h = cardHeight + columnHeaderH + 2
	}
	return boardTop + h
}

// columnTasks returns the cards in a column, the dragged card excluded
// while it floats.
func (m BoardModel) columnTasks(status models.BoardStatus) []models.BoardTask {
	dragged := ""
	if m.gesture.Dragging() {
		dragged = m.gesture.TaskID()
	}
	var out []models.BoardTask
	for _, t := range m.tasks {
		if t.Status == status && t.ID != dragged {
			out = append(out, t)
		}
	}
	return out
}

func statusColor(s models.BoardStatus) string {
	switch s {
	case models.StatusWillDo:
		return ColorWillDo
	case models.StatusInProgress:
		return ColorInProgress
	case models.StatusCompleted:
		return ColorCompleted
	}
	return ColorBorder
}

// View renders the board
func (m BoardModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	toastStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Bold(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("🗂  "+m.project.Name) + "\n\n")

	if m.detail != nil {
		b.WriteString(m.renderDetail())
		b.WriteString("\n" + helpStyle.Render("esc close"))
		return b.String()
	}

	hoverIdx := -1
	if m.gesture.Dragging() {
		x, y := m.gesture.Position()
		if col := m.columnAt(x, y); col != nil {
			for i, s := range models.BoardColumns {
				if s == *col {
					hoverIdx = i
				}
			}
		}
	}

	columns := make([]string, 0, len(models.BoardColumns))
	for i, status := range models.BoardColumns {
		columns = append(columns, m.renderColumn(status, i == hoverIdx))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	b.WriteString("\n")

	if m.gesture.Dragging() {
		if t := m.taskByID(m.gesture.TaskID()); t != nil {
			dragStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
			b.WriteString(dragStyle.Render("✥ moving: "+t.Title+" — release over a column") + "\n")
		}
	} else if m.toast != "" {
		b.WriteString(toastStyle.Render("⚠ "+m.toast) + "\n")
	} else if m.loading {
		b.WriteString(helpStyle.Render("loading…") + "\n")
	}

	b.WriteString(helpStyle.Render("drag cards between columns · click to open · r reload · q quit"))
	return b.String()
}

func (m BoardModel) renderColumn(status models.BoardStatus, hovered bool) string {
	colW := m.columnWidth()
	innerW := colW - 2

	borderColor := ColorBorder
	if hovered {
		borderColor = ColorAccentBright
	}
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Width(innerW).
		Height(m.boardBottom() - boardTop - 2)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(statusColor(status))).
		Bold(true)

	cards := m.columnTasks(status)
	var content strings.Builder
	content.WriteString(labelStyle.Render(fmt.Sprintf("%s (%d)", status.Label(), len(cards))) + "\n\n")
	for _, t := range cards {
		content.WriteString(m.renderCard(t, innerW))
	}

	return boxStyle.Render(content.String())
}

func (m BoardModel) renderCard(t models.BoardTask, width int) string {
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(width - 2)

	title := t.Title
	if maxLen := width - 4; maxLen > 3 && len(title) > maxLen {
		title = title[:maxLen-1] + "…"
	}
	return cardStyle.Render(title) + "\n"
}

func (m BoardModel) renderDetail() string {
	t := m.detail
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1, 2)
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	var b strings.Builder
	b.WriteString(titleStyle.Render(t.Title) + "\n")
	b.WriteString(dimStyle.Render("status: "+t.Status.Label()) + "\n")
	if t.Note != "" {
		b.WriteString("\n" + t.Note + "\n")
	}
	return boxStyle.Render(b.String())
}
