// Package board interprets pointer gestures over a 3-column kanban board
// as status-change intents. The state machine is decoupled from any input
// library: callers feed it pointer-down/move/up events in whatever
// coordinate space they render in.
package board

import "dayflow/internal/models"

// DefaultThreshold is the activation distance before a press becomes a
// drag. Below it the gesture settles as a click.
const DefaultThreshold = 10

// State is the gesture machine's current phase.
type State int

const (
	StateIdle State = iota
	StateDragging
)

// Outcome reports how a pointer release settled.
type Outcome int

const (
	// OutcomeNone: release with no gesture in progress.
	OutcomeNone Outcome = iota
	// OutcomeClick: released below the activation threshold; the caller
	// should treat the press as an open-detail action.
	OutcomeClick
	// OutcomeDrop: released over a valid column. The intent is nil when
	// the target equals the origin column (no spurious write).
	OutcomeDrop
	// OutcomeCancel: released outside any drop target.
	OutcomeCancel
)

// Intent is a status-change request produced by a completed drag.
type Intent struct {
	TaskID string
	From   models.BoardStatus
	To     models.BoardStatus
}

// Gesture tracks a single in-flight drag. Pointer devices are serial, so
// at most one task can be dragging at a time; a PointerDown while a
// gesture is active is ignored.
type Gesture struct {
	threshold int

	state  State
	down   bool
	taskID string
	origin models.BoardStatus

	startX, startY int
	curX, curY     int
}

// NewGesture creates a gesture machine with the given activation
// threshold. A threshold below 1 falls back to DefaultThreshold.
func NewGesture(threshold int) *Gesture {
	if threshold < 1 {
		threshold = DefaultThreshold
	}
	return &Gesture{threshold: threshold}
}

// PointerDown begins tracking a press on a task card.
func (g *Gesture) PointerDown(taskID string, origin models.BoardStatus, x, y int) {
	if g.down {
		return
	}
	g.down = true
	g.taskID = taskID
	g.origin = origin
	g.startX, g.startY = x, y
	g.curX, g.curY = x, y
}

// PointerMove updates the pointer position, promoting the press to a drag
// once it travels past the activation threshold.
func (g *Gesture) PointerMove(x, y int) {
	if !g.down {
		return
	}
	g.curX, g.curY = x, y
	if g.state == StateIdle && g.pastThreshold() {
		g.state = StateDragging
	}
}

// PointerUp settles the gesture. target is the column under the pointer,
// or nil when released outside every drop target. The machine returns to
// idle regardless of outcome.
func (g *Gesture) PointerUp(target *models.BoardStatus) (*Intent, Outcome) {
	if !g.down {
		return nil, OutcomeNone
	}
	taskID, origin := g.taskID, g.origin
	dragging := g.state == StateDragging
	g.reset()

	if !dragging {
		return nil, OutcomeClick
	}
	if target == nil || !target.Valid() {
		return nil, OutcomeCancel
	}
	if *target == origin {
		return nil, OutcomeDrop
	}
	return &Intent{TaskID: taskID, From: origin, To: *target}, OutcomeDrop
}

// Dragging reports whether a drag is active (threshold passed, not yet
// released).
func (g *Gesture) Dragging() bool {
	return g.state == StateDragging
}

// TaskID returns the card being pressed or dragged, or "" when idle.
func (g *Gesture) TaskID() string {
	if !g.down {
		return ""
	}
	return g.taskID
}

// Position returns the current pointer position of an active gesture.
func (g *Gesture) Position() (x, y int) {
	return g.curX, g.curY
}

func (g *Gesture) pastThreshold() bool {
	dx := abs(g.curX - g.startX)
	dy := abs(g.curY - g.startY)
	return dx >= g.threshold || dy >= g.threshold
}

func (g *Gesture) reset() {
	g.state = StateIdle
	g.down = false
	g.taskID = ""
	g.origin = ""
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
