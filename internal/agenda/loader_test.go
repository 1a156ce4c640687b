package agenda

import (
	"context"
	"errors"
	"testing"
	"time"

	"dayflow/internal/models"
)

// slowLoader blocks inside LoadDailyView until its context is cancelled or
// release is closed, so tests can hold a load in flight.
type slowLoader struct {
	release chan struct{}
}

func (s *slowLoader) LoadDailyView(ctx context.Context, userID string, day time.Time) (DailyView, error) {
	select {
	case <-ctx.Done():
		return DailyView{}, ctx.Err()
	case <-s.release:
		return DailyView{Date: models.DayOf(day)}, nil
	}
}

type instantLoader struct{}

func (instantLoader) LoadDailyView(ctx context.Context, userID string, day time.Time) (DailyView, error) {
	return DailyView{Date: models.DayOf(day)}, nil
}

func TestLoaderAcceptsCurrentResult(t *testing.T) {
	l := NewLoader(instantLoader{}, "u1")
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	fetch := l.Begin(context.Background(), day)
	r := fetch()
	if r.Err != nil {
		t.Fatalf("fetch: %v", r.Err)
	}
	if !l.Accept(r) {
		t.Error("result of the only load should be accepted")
	}
	if !r.Day.Equal(day) {
		t.Errorf("result day = %v, want %v", r.Day, day)
	}
}

func TestLoaderSupersedesInFlightLoad(t *testing.T) {
	slow := &slowLoader{release: make(chan struct{})}
	l := NewLoader(slow, "u1")

	day1 := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	first := l.Begin(context.Background(), day1)
	results := make(chan Result, 1)
	go func() { results <- first() }()

	// Navigating to the next day supersedes and cancels the first load.
	second := l.Begin(context.Background(), day2)

	r1 := <-results
	if r1.Err == nil {
		t.Fatal("superseded load should have been cancelled")
	}
	if !errors.Is(r1.Err, context.Canceled) {
		t.Errorf("superseded load err = %v, want context.Canceled", r1.Err)
	}
	if l.Accept(r1) {
		t.Error("superseded result must not be accepted")
	}

	close(slow.release)
	r2 := second()
	if r2.Err != nil {
		t.Fatalf("current load: %v", r2.Err)
	}
	if !l.Accept(r2) {
		t.Error("current result should be accepted")
	}
	if !r2.Day.Equal(day2) {
		t.Errorf("current result day = %v, want %v", r2.Day, day2)
	}
}

func TestLoaderStopCancelsInFlight(t *testing.T) {
	slow := &slowLoader{release: make(chan struct{})}
	l := NewLoader(slow, "u1")

	fetch := l.Begin(context.Background(), time.Now())
	results := make(chan Result, 1)
	go func() { results <- fetch() }()

	l.Stop()
	r := <-results
	if !errors.Is(r.Err, context.Canceled) {
		t.Errorf("stopped load err = %v, want context.Canceled", r.Err)
	}
}

func TestLoaderRejectsZeroResult(t *testing.T) {
	l := NewLoader(instantLoader{}, "u1")
	l.Begin(context.Background(), time.Now())
	if l.Accept(Result{}) {
		t.Error("a result from no Begin should never be accepted")
	}
}
