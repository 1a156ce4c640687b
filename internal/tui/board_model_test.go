package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"dayflow/internal/models"
	"dayflow/internal/testutil"
)

// Layout used by every board test: width 90 gives three 30-cell columns,
// so the first card of column 0 sits at (5,5) and column 1 starts at x=30.
func seededBoard(f *testutil.FakeStore) BoardModel {
	m := NewBoardModel(f, models.Project{ID: "pr1", Name: "Launch"})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	m = next.(BoardModel)
	next, _ = m.Update(boardTasksMsg{tasks: []models.BoardTask{
		{ID: "t1", ProjectID: "pr1", Title: "write docs", Status: models.StatusWillDo},
		{ID: "t2", ProjectID: "pr1", Title: "fix login", Status: models.StatusInProgress},
	}})
	return next.(BoardModel)
}

func mouse(a tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: a, Button: tea.MouseButtonLeft}
}

func TestBoardDragIssuesOneStatusWrite(t *testing.T) {
	f := testutil.NewFakeStore()
	m := seededBoard(f)

	next, _ := m.Update(mouse(tea.MouseActionPress, 5, 5))
	m = next.(BoardModel)
	next, _ = m.Update(mouse(tea.MouseActionMotion, 35, 5))
	m = next.(BoardModel)
	if !m.gesture.Dragging() {
		t.Fatal("cross-column motion should activate the drag")
	}

	next, cmd := m.Update(mouse(tea.MouseActionRelease, 35, 5))
	m = next.(BoardModel)

	if got := m.taskByID("t1").Status; got != models.StatusInProgress {
		t.Errorf("card status after drop = %q, want %q", got, models.StatusInProgress)
	}
	if cmd == nil {
		t.Fatal("drop onto another column should issue a write")
	}
	if msg, ok := cmd().(mutationDoneMsg); !ok || msg.done.Err != nil {
		t.Fatalf("write failed: %+v", msg)
	}

	if len(f.StatusCalls) != 1 {
		t.Fatalf("status writes = %d, want exactly 1", len(f.StatusCalls))
	}
	if f.StatusCalls[0] != (testutil.StatusCall{ID: "t1", Status: models.StatusInProgress}) {
		t.Errorf("status write = %+v", f.StatusCalls[0])
	}
}

func TestBoardSameColumnDropWritesNothing(t *testing.T) {
	f := testutil.NewFakeStore()
	m := seededBoard(f)

	next, _ := m.Update(mouse(tea.MouseActionPress, 5, 5))
	m = next.(BoardModel)
	next, _ = m.Update(mouse(tea.MouseActionMotion, 6, 5))
	m = next.(BoardModel)

	next, cmd := m.Update(mouse(tea.MouseActionRelease, 6, 5))
	m = next.(BoardModel)

	if cmd != nil {
		t.Error("same-column drop must not issue a command")
	}
	if len(f.StatusCalls) != 0 {
		t.Errorf("status writes = %d, want 0", len(f.StatusCalls))
	}
	if got := m.taskByID("t1").Status; got != models.StatusWillDo {
		t.Errorf("card status = %q, want unchanged", got)
	}
}

func TestBoardCancelledDragWritesNothing(t *testing.T) {
	f := testutil.NewFakeStore()
	m := seededBoard(f)

	next, _ := m.Update(mouse(tea.MouseActionPress, 5, 5))
	m = next.(BoardModel)
	next, _ = m.Update(mouse(tea.MouseActionMotion, 35, 1))
	m = next.(BoardModel)

	// Release above the board, outside every drop target.
	next, cmd := m.Update(mouse(tea.MouseActionRelease, 35, 1))
	m = next.(BoardModel)

	if cmd != nil || len(f.StatusCalls) != 0 {
		t.Error("cancelled drag must not write")
	}
	if got := m.taskByID("t1").Status; got != models.StatusWillDo {
		t.Errorf("card status = %q, want unchanged", got)
	}
}

func TestBoardClickOpensDetail(t *testing.T) {
	f := testutil.NewFakeStore()
	m := seededBoard(f)

	next, _ := m.Update(mouse(tea.MouseActionPress, 5, 5))
	m = next.(BoardModel)
	next, _ = m.Update(mouse(tea.MouseActionRelease, 5, 5))
	m = next.(BoardModel)

	if m.detail == nil || m.detail.ID != "t1" {
		t.Fatalf("click should open the card detail, got %+v", m.detail)
	}
	if len(f.StatusCalls) != 0 {
		t.Error("click must not write")
	}
}

func TestBoardFailedMoveRollsBack(t *testing.T) {
	f := testutil.NewFakeStore()
	f.SetStatusErr = errors.New("store unreachable")
	m := seededBoard(f)

	next, _ := m.Update(mouse(tea.MouseActionPress, 5, 5))
	m = next.(BoardModel)
	next, _ = m.Update(mouse(tea.MouseActionMotion, 35, 5))
	m = next.(BoardModel)
	next, cmd := m.Update(mouse(tea.MouseActionRelease, 35, 5))
	m = next.(BoardModel)

	if got := m.taskByID("t1").Status; got != models.StatusInProgress {
		t.Fatalf("move should apply optimistically, got %q", got)
	}

	next, _ = m.Update(cmd())
	m = next.(BoardModel)

	if got := m.taskByID("t1").Status; got != models.StatusWillDo {
		t.Errorf("failed write should roll the card back, got %q", got)
	}
	if m.toast != "Could not save task — change undone" {
		t.Errorf("toast = %q", m.toast)
	}
}
