package search

// findExisting performs a linear scan of every live arena slot looking for
// a world whose status IsSame as status. The model contract offers no hash
// or equality key beyond IsSame, so reuse detection is necessarily O(graph
// size) per candidate; the Design Notes accept this as a correct, simple
// baseline rather than a premature index structure.
func (e *Engine[S, T]) findExisting(status S) (Handle, bool) {
	for i, slot := range e.arena {
		if slot == nil || slot.freed || slot.world == nil {
			continue
		}
		if slot.world.status.IsSame(status) {
			return Handle{index: int32(i), generation: slot.generation}, true
		}
	}
	return NilHandle, false
}

// rankValue is the scalar used to compare worlds for ByValue ordering and
// for pruning: the sum, across every actor, of the world's backed-up
// forecast. It matches the same per-world "one winning transition" value
// used by propagate, so a world's pop priority and its pruning margin both
// reflect the same notion of promise.
func (e *Engine[S, T]) rankValue(w *World[S, T]) float64 {
	sum := 0.0
	for _, v := range e.backupForecast(w) {
		sum += v
	}
	return sum
}

// classify places h into exactly one of computed/toExpand/onHold,
// reflecting its current expandability, depth relative to the configured
// bound, and — when originH names the transition that produced h — the
// §4.7.1 pruning rule: if h is dominated by a sibling of originH by more
// than pruningDelta, h is routed directly into computed even though it
// may still have unexpanded transitions of its own. originH may be
// NilHandle (no pruning check performed), used for the root world and for
// re-classifying a world already popped from to-expand.
func (e *Engine[S, T]) classify(originH, h Handle) {
	e.removeFromAllCollections(h)
	w, ok := e.resolve(h)
	if !ok {
		return
	}
	if e.isPruned(originH, h) {
		e.computed.Add(h)
		return
	}
	if !w.IsExpandable() {
		e.computed.Add(h)
		return
	}
	if e.maxDepthExp >= 0 && w.depth > e.maxDepthExp {
		e.onHold.Add(h)
		return
	}
	e.toExpand.Add(h)
}

// isPruned reports whether childH, newly reached via one of originH's
// transitions, is dominated by more than pruningDelta by a sibling
// transition of the same origin that has already been expanded. The
// current world is exempt: it must always remain expandable regardless of
// how it compares to its siblings.
func (e *Engine[S, T]) isPruned(originH, childH Handle) bool {
	if e.pruningDelta <= 0 || childH == e.current {
		return false
	}
	origin, ok := e.resolve(originH)
	if !ok {
		return false
	}
	child, ok := e.resolve(childH)
	if !ok {
		return false
	}
	childVal := e.rankValue(child)
	for i := range origin.Transitions {
		to, expanded := origin.Transitions[i].To()
		if !expanded || to == childH {
			continue
		}
		sib, ok := e.resolve(to)
		if !ok {
			continue
		}
		if e.rankValue(sib)-childVal > e.pruningDelta {
			return true
		}
	}
	return false
}

// selectTransitionsToExpand returns the indices of w's transitions to
// materialize this round: every still-expandable transition, or — when
// there are more of them than nbTransMontecarlo — a random subset of that
// size, sampled with the engine's injected RNG so the cap is deterministic
// under test (§4.7's MonteCarlo branch sampling).
func (e *Engine[S, T]) selectTransitionsToExpand(w *World[S, T]) []int {
	var candidates []int
	for i := range w.Transitions {
		if w.Transitions[i].isExpandable(w) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) <= e.nbTransMontecarlo {
		return candidates
	}
	shuffled := append([]int(nil), candidates...)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := int(e.rng.Float64() * float64(i+1))
		if j > i {
			j = i
		}
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled[:e.nbTransMontecarlo]
}

// materializeChild expands origin's transIndex'th transition: steps the
// model to produce a successor status, reuses an existing world for it if
// one matches and reuse is enabled, otherwise allocates a new one, then
// wires the edge and propagates. It reports whether an existing world was
// reused.
func (e *Engine[S, T]) materializeChild(originH Handle, transIndex int) (Handle, bool) {
	origin := e.mustResolve(originH)
	payload := origin.Transitions[transIndex].Payload
	status := origin.status.Step(payload)

	if e.reuse {
		if existing, ok := e.findExisting(status); ok {
			e.connectTransition(originH, transIndex, existing)
			e.classify(originH, existing)
			return existing, true
		}
	}
	child := e.newWorld(status, origin.depth+1)
	e.connectTransition(originH, transIndex, child)
	e.classify(originH, child)
	return child, false
}

// popNextToExpand removes and returns one handle from the to-expand
// collection, per the configured Order: ByWidth pops FIFO, ByValue pops
// the world with the highest rankValue, re-scanning the collection on
// every pop rather than maintaining a sorted structure (§4.4).
func (e *Engine[S, T]) popNextToExpand() (Handle, bool) {
	if e.toExpand.Len() == 0 {
		return NilHandle, false
	}
	if e.order == ByWidth {
		h := e.toExpand.Handles()[0]
		e.toExpand.Remove(h)
		return h, true
	}
	var best Handle
	bestVal := 0.0
	found := false
	for _, h := range e.toExpand.Handles() {
		w, ok := e.resolve(h)
		if !ok {
			continue
		}
		v := e.rankValue(w)
		if !found || v > bestVal {
			best, bestVal, found = h, v, true
		}
	}
	if !found {
		return NilHandle, false
	}
	e.toExpand.Remove(best)
	return best, true
}

// Expand runs one time-budgeted best-first expansion round (§4.7): it
// repeatedly pops the most promising expandable world, materializes a
// bounded number of its unexpanded transitions into child worlds,
// propagates the resulting value changes backward, and reclassifies every
// touched world among computed, to-expand, and on-hold. It returns once
// the time budget is exhausted or no expandable world remains; either way
// it drains the free queue before returning so Telemetry reflects a
// settled graph.
//
// Before anything else it drains on-hold back into to-expand and, if the
// current world is itself still in to-expand, moves it to the end, so a
// world depth-deferred by a previous call gets first refusal this round
// instead of losing forever to whatever already sits ahead of the current
// world (§4.4, §4.7 step 2).
func (e *Engine[S, T]) Expand() {
	e.onHold.drainInto(e.toExpand)
	if e.toExpand.Contains(e.current) {
		e.toExpand.MoveToEnd(e.current)
	}

	if !e.startExpandPinned {
		e.startExpand = e.clock.Now()
	}
	e.startExpandPinned = false

	reused, created, maxDepth := 0, 0, 0
	maxStepCostMs := 0.0

	for {
		elapsed := elapsedMs(e.startExpand, e.clock.Now())
		// A negative elapsed reading means the clock wrapped or the
		// caller pinned a start in the future; §5 treats this as time
		// already exhausted rather than an enormous remaining budget.
		if elapsed < 0 {
			break
		}
		// §4.7.2's conservative check: stop one step early rather than
		// risk a single expensive step blowing past the budget, using
		// the largest step cost observed so far this call as the margin.
		if elapsed+maxStepCostMs >= e.maxTimeMs {
			break
		}
		stepStart := e.clock.Now()

		h, ok := e.popNextToExpand()
		if !ok {
			break
		}
		w, ok := e.resolve(h)
		if !ok {
			continue
		}
		if w.depth > maxDepth {
			maxDepth = w.depth
		}

		for _, ti := range e.selectTransitionsToExpand(w) {
			_, wasReused := e.materializeChild(h, ti)
			if wasReused {
				reused++
			} else {
				created++
			}
		}

		e.classify(NilHandle, h)

		if stepCost := elapsedMs(stepStart, e.clock.Now()); stepCost > maxStepCostMs {
			maxStepCostMs = stepCost
		}
	}

	e.drainToFree()

	total := reused + created
	t := Telemetry{
		NumComputed:     e.computed.Len(),
		NumToExpand:     e.toExpand.Len(),
		NumOnHold:       e.onHold.Len(),
		NumToFree:       len(e.toFree),
		UnusedTimeMs:    e.maxTimeMs - elapsedMs(e.startExpand, e.clock.Now()),
		MaxDepthReached: maxDepth,
	}
	if total > 0 {
		t.ReuseRatio = float64(reused) / float64(total)
	}
	e.telemetry = t
}
