package search

import "miniframe/model"

// Transition is a directed edge of the search graph: an origin world (owner,
// immutable), a destination world (nil handle means unexpanded), the
// model-supplied action payload, and a running per-actor forecast (§3).
type Transition[S model.Status[S, T], T any] struct {
	Payload T
	from    Handle
	to      Handle
	// childTerminal caches whether the destination world (once expanded)
	// is terminal, so siblings can implement the §4.3 forcing-terminal
	// shortcut without the World needing a back-reference to the Engine.
	childTerminal bool
	forecast      []float64
}

// From returns the handle of the world this transition originates from.
func (t *Transition[S, T]) From() Handle {
	return t.from
}

// To returns the destination handle and whether the transition has been
// expanded.
func (t *Transition[S, T]) To() (Handle, bool) {
	return t.to, !t.to.IsNil()
}

// Forecast returns the transition's current per-actor forecast vector.
func (t *Transition[S, T]) Forecast() []float64 {
	return t.forecast
}

// IsExpanded reports whether this transition has a destination world.
func (t *Transition[S, T]) IsExpanded() bool {
	return !t.to.IsNil()
}

// isExpandable reports whether this transition may still be expanded: it
// must not already have a destination, and no sibling transition from the
// same origin may already lead to a terminal world (§4.3). The sibling
// check is cheap because childTerminal is cached per-transition at
// expansion time; see World.hasTerminalChild.
func (t *Transition[S, T]) isExpandable(origin *World[S, T]) bool {
	if !t.to.IsNil() {
		return false
	}
	return !origin.hasTerminalChild()
}

// floatsWithinEpsilon reports whether a and b are equal within tolerance,
// the §4.6 "overwrite if different" propagation policy's notion of
// "different": two forecasts within floating-point noise of each other are
// treated as unchanged, so propagation halts instead of chasing epsilon-
// sized oscillations forever.
func floatsWithinEpsilon(a, b []float64, epsilon float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		d := a[i] - b[i]
		if d < -epsilon || d > epsilon {
			return false
		}
	}
	return true
}
