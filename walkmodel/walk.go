// Package walkmodel implements model.Status for a single-actor integer
// walk: a position chasing a target over a bounded number of steps. It is
// the simplest possible Model, used throughout search's own tests and as
// the demo's default scenario — the Go equivalent of the MFModelStatus
// fixture (step/pos/tgt) threaded through the original implementation's
// own test suite.
package walkmodel

import "miniframe/model"

const (
	minPos    = -5
	maxPos    = 5
	maxSteps  = 6
	numActors = 1
)

// Move is the payload of a Walk transition: the signed step applied to
// pos, one of -1, 0, or +1.
type Move int

// Walk is a single actor's position on the integer line [-5, 5], chasing
// Target, with a hard cutoff at Step == 6.
type Walk struct {
	Step   int
	Pos    int
	Target int
}

// NewWalk returns the step-0 walk toward target.
func NewWalk(target int) Walk {
	return Walk{Step: 0, Pos: 0, Target: target}
}

// Copy returns w itself: Walk holds no pointers or slices, so a plain
// value copy already satisfies the Status contract's "deep copy"
// requirement.
func (w Walk) Copy() Walk {
	return w
}

// IsSame reports whether other occupies the same point in (step, pos,
// target) space.
func (w Walk) IsSame(other Walk) bool {
	return w.Step == other.Step && w.Pos == other.Pos && w.Target == other.Target
}

// GetSente always returns actor 0: a Walk has exactly one actor.
func (w Walk) GetSente() model.Sente {
	return 0
}

// GetTransitions enumerates the three candidate steps. A move that would
// carry Pos outside [minPos, maxPos] is still offered — Step clamps it —
// so every Walk has exactly three transitions regardless of position,
// keeping MaxTransitions fixed.
func (w Walk) GetTransitions() []Move {
	return []Move{-1, 0, 1}
}

// GetValues returns the walk's egocentric value: the negative distance
// remaining to the target, 0 being best.
func (w Walk) GetValues() []float64 {
	return []float64{-float64(absInt(w.Pos - w.Target))}
}

// Step applies m to w: Pos moves by m, clamped to [minPos, maxPos], and
// Step advances by one.
func (w Walk) Step(m Move) Walk {
	next := w.Pos + int(m)
	if next < minPos {
		next = minPos
	}
	if next > maxPos {
		next = maxPos
	}
	return Walk{Step: w.Step + 1, Pos: next, Target: w.Target}
}

// IsEnd reports whether the walk has reached its target or run out of
// steps.
func (w Walk) IsEnd() bool {
	return w.Pos == w.Target || w.Step >= maxSteps
}

// IsDisposable hints that any walk is safe to free once current has
// advanced past it: walkmodel has no reason to keep a world alive beyond
// what the engine's own reachability already preserves.
func (w Walk) IsDisposable(current Walk) bool {
	return true
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
