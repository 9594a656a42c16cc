// Package optimistic implements the update discipline the dashboards share:
// capture local state, apply the expected outcome immediately, issue the
// server call, and revert (or refetch) when the server disagrees.
package optimistic

import "context"

// Outcome reports what a server call produced, independent of transport.
type Outcome struct {
	OK      bool
	Message string
}

// Do enforces the capture -> apply -> call -> confirm-or-revert contract.
// apply runs before the call; revert runs only when the call fails and is
// expected to restore the state captured by the caller (for list removals
// that usually means refetching the authoritative list rather than
// reinserting one item).
func Do(ctx context.Context, apply func(), call func(context.Context) Outcome, revert func()) Outcome {
	apply()

	out := call(ctx)
	if !out.OK {
		revert()
	}
	return out
}
