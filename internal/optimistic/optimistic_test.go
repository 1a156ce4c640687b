package optimistic

import (
	"context"
	"errors"
	"testing"
)

func TestSettleSuccessKeepsPatch(t *testing.T) {
	done := false
	var notified []string
	c := Controller{Notify: func(msg string) { notified = append(notified, msg) }}

	run := c.Stage(context.Background(), Mutation{
		Label:  "task",
		Apply:  func() { done = true },
		Revert: func() { done = false },
		Call:   func(ctx context.Context) error { return nil },
	})
	if !done {
		t.Fatal("patch must be applied at stage time, before the call runs")
	}
	if err := c.Settle(run()); err != nil {
		t.Fatalf("settle: %v", err)
	}
	if !done {
		t.Error("patch should survive a successful call")
	}
	if len(notified) != 0 {
		t.Errorf("success must not notify, got %v", notified)
	}
}

func TestSettleFailureRollsBack(t *testing.T) {
	done := false
	callErr := errors.New("store unreachable")
	var notified []string
	c := Controller{Notify: func(msg string) { notified = append(notified, msg) }}

	var seenAtCall bool
	run := c.Stage(context.Background(), Mutation{
		Label:  "habit",
		Apply:  func() { done = true },
		Revert: func() { done = false },
		Call: func(ctx context.Context) error {
			seenAtCall = done
			return callErr
		},
	})
	err := c.Settle(run())
	if !errors.Is(err, callErr) {
		t.Fatalf("err = %v, want %v", err, callErr)
	}
	if !seenAtCall {
		t.Error("patch must be applied before the remote call runs")
	}
	if done {
		t.Error("failed call must restore the pre-patch state")
	}
	if len(notified) != 1 {
		t.Fatalf("notifications = %d, want exactly 1", len(notified))
	}
	if notified[0] != "Could not save habit — change undone" {
		t.Errorf("message = %q", notified[0])
	}
}

func TestSettleZeroController(t *testing.T) {
	var c Controller
	run := c.Stage(context.Background(), Mutation{
		Call: func(ctx context.Context) error { return errors.New("boom") },
	})
	if err := c.Settle(run()); err == nil {
		t.Error("error should still surface without a Notify sink")
	}
}

func TestFailureMessage(t *testing.T) {
	if got := FailureMessage("reminder"); got != "Could not save reminder — change undone" {
		t.Errorf("message = %q", got)
	}
	if got := FailureMessage(""); got != "Could not save item — change undone" {
		t.Errorf("empty-label message = %q", got)
	}
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	field := false
	var callValues []bool
	m := Toggle("reminder", &field, func(ctx context.Context, v bool) error {
		callValues = append(callValues, v)
		return nil
	})

	m.Apply()
	if !field {
		t.Fatal("apply should flip false to true")
	}
	m.Revert()
	if field {
		t.Fatal("revert should restore the value read at build time")
	}

	m.Apply()
	if err := m.Call(context.Background()); err != nil {
		t.Fatalf("call: %v", err)
	}
	if len(callValues) != 1 || callValues[0] != true {
		t.Errorf("call values = %v, want [true]", callValues)
	}
}

func TestToggleFailureViaController(t *testing.T) {
	field := true
	var c Controller
	m := Toggle("priority", &field, func(ctx context.Context, v bool) error {
		return errors.New("offline")
	})
	run := c.Stage(context.Background(), m)
	if err := c.Settle(run()); err == nil {
		t.Fatal("expected error")
	}
	if !field {
		t.Error("field should be back to its original true after rollback")
	}
}
