package walkmodel

import "miniframe/model"

// PursuitMove is the simultaneous payload of a PursuitWalk transition: the
// step each of the two actors takes this turn.
type PursuitMove struct {
	Pursuer Move
	Evader  Move
}

// PursuitWalk is a two-actor variant of Walk: a pursuer and an evader each
// move simultaneously along the same integer line, bounded the same way
// Walk is bounded. The pursuer's value is the negative gap between the
// two (it wants to close the distance); the evader's is the positive gap
// (it wants to open it). Every transition moves both actors at once, so
// GetSente is always model.Simultaneous — this is the model that
// exercises search's simultaneous-sente propagation branch end to end,
// the Go analog of the original implementation's two-player Oware
// reference (§9 Open Question 2's worked example, carried through here
// rather than left purely abstract).
type PursuitWalk struct {
	Step    int
	Pursuer int
	Evader  int
}

// NewPursuitWalk returns the step-0 pursuit with the pursuer and the evader
// at the given starting positions.
func NewPursuitWalk(pursuerStart, evaderStart int) PursuitWalk {
	return PursuitWalk{Step: 0, Pursuer: pursuerStart, Evader: evaderStart}
}

// Copy returns p itself: PursuitWalk holds no pointers or slices.
func (p PursuitWalk) Copy() PursuitWalk {
	return p
}

// IsSame reports whether other occupies the same point in
// (step, pursuer, evader) space.
func (p PursuitWalk) IsSame(other PursuitWalk) bool {
	return p.Step == other.Step && p.Pursuer == other.Pursuer && p.Evader == other.Evader
}

// GetSente always returns model.Simultaneous: both actors move every
// turn, neither preempts the other.
func (p PursuitWalk) GetSente() model.Sente {
	return model.Simultaneous
}

// GetTransitions enumerates all nine combinations of the pursuer's and
// evader's candidate steps.
func (p PursuitWalk) GetTransitions() []PursuitMove {
	moves := []Move{-1, 0, 1}
	out := make([]PursuitMove, 0, len(moves)*len(moves))
	for _, pm := range moves {
		for _, em := range moves {
			out = append(out, PursuitMove{Pursuer: pm, Evader: em})
		}
	}
	return out
}

// GetValues returns {pursuer's value, evader's value}: the gap between
// the two, negated for the pursuer and as-is for the evader, so each
// actor's own forecast is maximized by acting in its own interest.
func (p PursuitWalk) GetValues() []float64 {
	gap := float64(absInt(p.Pursuer - p.Evader))
	return []float64{-gap, gap}
}

// Step applies both actors' moves simultaneously, clamping each to
// [minPos, maxPos], and advances Step by one.
func (p PursuitWalk) Step(m PursuitMove) PursuitWalk {
	return PursuitWalk{
		Step:    p.Step + 1,
		Pursuer: clampPos(p.Pursuer + int(m.Pursuer)),
		Evader:  clampPos(p.Evader + int(m.Evader)),
	}
}

// IsEnd reports whether the pursuer has caught the evader or the turn
// limit has been reached.
func (p PursuitWalk) IsEnd() bool {
	return p.Pursuer == p.Evader || p.Step >= maxSteps
}

// IsDisposable hints that any pursuit world is safe to free once superseded.
func (p PursuitWalk) IsDisposable(current PursuitWalk) bool {
	return true
}

func clampPos(pos int) int {
	if pos < minPos {
		return minPos
	}
	if pos > maxPos {
		return maxPos
	}
	return pos
}
