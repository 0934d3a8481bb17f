// Package model defines the contract the search engine requires from a
// caller-supplied simulation: an immutable-by-contract status snapshot, a
// transition payload describing one legal move, and the handful of pure
// operations the engine needs to traverse it. MiniFrame never looks inside
// S or T; it only calls the methods below.
package model

// Sente identifies which actor preempts at a status, or that every actor
// acts at once.
type Sente int

// Simultaneous is the sentinel sente value meaning no single actor
// preempts: every actor in the status acts concurrently.
const Simultaneous Sente = -1

// Status is the contract a world snapshot must satisfy. S is the concrete
// status type implementing this interface, T is the concrete transition
// payload type it produces. Implementations must treat a Status value as
// immutable once observed by the engine: Copy is the only sanctioned way to
// obtain a mutable working copy.
type Status[S any, T any] interface {
	// Copy returns a deep copy of the status.
	Copy() S

	// IsSame reports whether other is equivalent to this status for the
	// purposes of world reuse. It may compare a subset of fields; callers
	// that rely on IsSame to canonicalize externally supplied state (see
	// the engine's SetCurrentWorld) must not assume IsSame implies bit
	// equality.
	IsSame(other S) bool

	// GetSente returns the actor that preempts at this status, or
	// Simultaneous if every actor acts at once.
	GetSente() Sente

	// GetTransitions enumerates the legal actions from this status. The
	// engine calls this exactly once per world, at creation, and freezes
	// the result. Returning more than the model's fixed MaxTransitions is
	// a contract violation.
	GetTransitions() []T

	// GetValues returns this status's egocentric per-actor value, one
	// entry per actor. The engine calls this exactly once per world, at
	// creation, and freezes the result.
	GetValues() []float64

	// Step applies t to this status and returns the deterministic
	// successor. Step must be pure: no shared state may be mutated.
	Step(t T) S

	// IsEnd reports whether this status is terminal.
	IsEnd() bool

	// IsDisposable hints that this status is safe to free once current
	// becomes the engine's current world. It is a hint only: the engine
	// may also free worlds with no incoming transitions regardless of
	// this result, and may retain a world this reports disposable if it
	// still has incoming transitions.
	IsDisposable(current S) bool
}
