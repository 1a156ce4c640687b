// Package optimistic implements the local-patch / remote-call / rollback
// protocol shared by every checkbox toggle and drag-and-drop settle. One
// generic controller replaces per-entity handlers: callers describe a
// mutation as an apply closure, its exact inverse, and the remote write.
package optimistic

import "context"

// Mutation is one optimistic state change. Apply and Revert must be exact
// inverses over the caller's in-memory state; Call is the persistence
// write and the only part that can fail.
type Mutation struct {
	// Label names the entity kind for user-facing error messages.
	Label  string
	Apply  func()
	Revert func()
	Call   func(ctx context.Context) error
}

// Done reports how a staged mutation's remote call finished. It carries
// what Settle needs to roll the local patch back.
type Done struct {
	Label string
	Err   error

	revert func()
}

// Controller runs mutations in two halves, matching UIs that patch state
// on the event loop and persist on a background command: Stage applies the
// local patch and hands back the remote call, Settle rolls back failures.
// The zero value is usable; failures are then only visible via the
// returned error and FailureMessage.
type Controller struct {
	// Notify receives one user-facing message per failed mutation. It is
	// never called on success.
	Notify func(msg string)
}

// Stage applies the local patch immediately and returns the remote half of
// the mutation. The returned func is safe to run on another goroutine;
// hand its Done back to Settle on the caller's loop.
func (c Controller) Stage(ctx context.Context, m Mutation) func() Done {
	if m.Apply != nil {
		m.Apply()
	}
	return func() Done {
		d := Done{Label: m.Label, revert: m.Revert}
		if m.Call != nil {
			d.Err = m.Call(ctx)
		}
		return d
	}
}

// Settle completes a staged mutation. On failure it restores the pre-patch
// state and reports before returning the error. The remote store is
// assumed unchanged when the call fails; no retry is attempted.
func (c Controller) Settle(d Done) error {
	if d.Err == nil {
		return nil
	}
	if d.revert != nil {
		d.revert()
	}
	if c.Notify != nil {
		c.Notify(FailureMessage(d.Label))
	}
	return d.Err
}

// FailureMessage is the user-facing rollback message for a failed mutation
// with the given label.
func FailureMessage(label string) string {
	if label == "" {
		label = "item"
	}
	return "Could not save " + label + " — change undone"
}

// Toggle builds a boolean flip over *field with the remote call receiving
// the new value. The revert restores the value read at build time.
func Toggle(label string, field *bool, call func(ctx context.Context, v bool) error) Mutation {
	prev := *field
	next := !prev
	return Mutation{
		Label:  label,
		Apply:  func() { *field = next },
		Revert: func() { *field = prev },
		Call:   func(ctx context.Context) error { return call(ctx, next) },
	}
}
