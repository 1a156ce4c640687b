package agenda

import (
	"context"
	"sync"
	"time"
)

// ViewLoader is the aggregation entry point the Loader drives.
type ViewLoader interface {
	LoadDailyView(ctx context.Context, userID string, day time.Time) (DailyView, error)
}

// Result carries one finished aggregation back to the caller, tagged so
// superseded loads can be recognized and discarded.
type Result struct {
	Day  time.Time
	View DailyView
	Err  error

	gen uint64
}

// Loader serializes view loads for a single selected-date context. Each
// Begin cancels the previous in-flight load; results from a superseded
// load fail the Accept check and must never be written into current state.
type Loader struct {
	agg    ViewLoader
	userID string

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// NewLoader creates a loader for one user's selected-date context.
func NewLoader(agg ViewLoader, userID string) *Loader {
	return &Loader{agg: agg, userID: userID}
}

// Begin registers a load for day, superseding any load still in flight,
// and returns the closure that performs the fetch. The closure is safe to
// run on another goroutine.
func (l *Loader) Begin(ctx context.Context, day time.Time) func() Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		l.cancel()
	}
	loadCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.gen++
	gen := l.gen

	return func() Result {
		view, err := l.agg.LoadDailyView(loadCtx, l.userID, day)
		return Result{Day: day, View: view, Err: err, gen: gen}
	}
}

// Accept reports whether r belongs to the most recent Begin. Stale results
// return false and should be dropped on the floor.
func (l *Loader) Accept(r Result) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return r.gen == l.gen
}

// Stop cancels any in-flight load.
func (l *Loader) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}
