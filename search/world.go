package search

import "miniframe/model"

// World is a node of the search graph: a status snapshot, its precomputed
// outgoing transitions, its egocentric per-actor values, and the set of
// incoming transitions referencing it. See spec §3.
//
// Transitions are owned inline by their World (never separately allocated),
// per the Design Notes. sources holds weak references into other Worlds'
// transition slices.
type World[S model.Status[S, T], T any] struct {
	status      S
	values      []float64
	Transitions []Transition[S, T]
	sources     []edgeRef
	depth       int
	terminal    bool
}

// Status returns a copy of the world's status snapshot.
func (w *World[S, T]) Status() S {
	return w.status
}

// Depth returns the world's distance from the root of the expansion that
// created it (see spec §4.7).
func (w *World[S, T]) Depth() int {
	return w.depth
}

// IsEnd reports whether the world's status is terminal.
func (w *World[S, T]) IsEnd() bool {
	return w.terminal
}

// BestTransition returns the outgoing, already-expanded transition
// maximizing forecast[sente-or-actor], where sente-or-actor is this world's
// sente, substituted by actor when the sente is model.Simultaneous (§4.2).
// Ties favor earlier-created transitions (stable insertion order). It
// returns false if no outgoing transition has been expanded yet.
func (w *World[S, T]) BestTransition(actor int) (*Transition[S, T], bool) {
	idx := actor
	if sente := w.status.GetSente(); sente != model.Simultaneous {
		idx = int(sente)
	}
	return w.bestByIndex(idx)
}

func (w *World[S, T]) bestByIndex(valueIndex int) (*Transition[S, T], bool) {
	var best *Transition[S, T]
	bestVal := 0.0
	for i := range w.Transitions {
		t := &w.Transitions[i]
		if t.to.IsNil() {
			continue
		}
		v := t.forecast[valueIndex]
		if best == nil || v > bestVal {
			best = t
			bestVal = v
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// bestBySimultaneousSum selects the outgoing expanded transition maximizing
// the sum of all actors' forecasts. Used only by the propagator's internal
// backup step for simultaneous-sente worlds (see SPEC_FULL.md); never by the
// public BestTransition/ForecastValue query path.
func (w *World[S, T]) bestBySimultaneousSum() (*Transition[S, T], bool) {
	var best *Transition[S, T]
	bestSum := 0.0
	for i := range w.Transitions {
		t := &w.Transitions[i]
		if t.to.IsNil() {
			continue
		}
		sum := 0.0
		for _, v := range t.forecast {
			sum += v
		}
		if best == nil || sum > bestSum {
			best = t
			bestSum = sum
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// ForecastValue returns the forecast value of this world's best transition
// for actor, or the world's own egocentric value if no transition has been
// expanded yet (§4.2).
func (w *World[S, T]) ForecastValue(actor int) float64 {
	if best, ok := w.BestTransition(actor); ok {
		return best.forecast[actor]
	}
	return w.values[actor]
}

// NumExpandableTransitions counts outgoing transitions that are unexpanded
// and not blocked by a sibling forcing-terminal transition (§4.3).
func (w *World[S, T]) NumExpandableTransitions() int {
	if w.terminal {
		return 0
	}
	if w.hasTerminalChild() {
		return 0
	}
	n := 0
	for i := range w.Transitions {
		if w.Transitions[i].to.IsNil() {
			n++
		}
	}
	return n
}

// IsExpandable reports whether the world is non-terminal and has at least
// one unexpanded outgoing transition, with no sibling already leading to a
// terminal world (§4.2, §4.3).
func (w *World[S, T]) IsExpandable() bool {
	return w.NumExpandableTransitions() > 0
}

func (w *World[S, T]) hasTerminalChild() bool {
	for i := range w.Transitions {
		if w.Transitions[i].childTerminal {
			return true
		}
	}
	return false
}

// removeSource deletes the edgeRef {origin, index} from w.sources, if
// present. Used when origin is disposed so w does not retain a weak
// reference into a freed arena slot (§4.8).
func (w *World[S, T]) removeSource(origin Handle, index int) {
	for i, ref := range w.sources {
		if ref.world == origin && ref.index == index {
			last := len(w.sources) - 1
			w.sources[i] = w.sources[last]
			w.sources = w.sources[:last]
			return
		}
	}
}

// hasSources reports whether any predecessor still references w.
func (w *World[S, T]) hasSources() bool {
	return len(w.sources) > 0
}
