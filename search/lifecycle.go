package search

// drainToFree frees every world queued for disposal, unlinking both its
// incoming and outgoing edges first so no stale edgeRef or Transition.to
// survives the free. Draining happens once at the end of each public
// operation that might have queued disposals, so Telemetry observed
// mid-operation (not exposed today, but by a future caller) still sees an
// accurate to-free count (§4.8).
func (e *Engine[S, T]) drainToFree() {
	for len(e.toFree) > 0 {
		n := len(e.toFree) - 1
		h := e.toFree[n]
		e.toFree = e.toFree[:n]
		e.toFreeSet.Remove(h)
		e.disposeWorld(h)
	}
}

// disposeWorld unlinks h from the graph and releases its arena slot. Its
// outgoing transitions are unlinked from their destinations' sources
// first, then its incoming transitions are reverted to unexpanded, so
// nothing left in the graph points at the slot once release runs.
func (e *Engine[S, T]) disposeWorld(h Handle) {
	w, ok := e.resolve(h)
	if !ok {
		return
	}

	for i := range w.Transitions {
		to, expanded := w.Transitions[i].To()
		if !expanded {
			continue
		}
		if child, ok := e.resolve(to); ok {
			child.removeSource(h, i)
		}
	}

	for _, ref := range w.sources {
		if pred, ok := e.resolve(ref.world); ok {
			pred.Transitions[ref.index].to = NilHandle
			pred.Transitions[ref.index].childTerminal = false
		}
	}

	e.removeFromAllCollections(h)
	e.release(h)
}

// rebaseDepths resets root's depth to 0 and shifts every world reachable
// from it forward by the same amount, so Depth() stays relative to
// whichever world is current (§4.9) rather than frozen at the distance
// from the original Create root. Called by SetCurrentWorld when re-rooting
// onto a reused world; a no-op if root is already at depth 0.
func (e *Engine[S, T]) rebaseDepths(root Handle) {
	w, ok := e.resolve(root)
	if !ok || w.depth == 0 {
		return
	}
	delta := w.depth

	seen := make(map[Handle]bool)
	stack := []Handle{root}
	for len(stack) > 0 {
		n := len(stack) - 1
		h := stack[n]
		stack = stack[:n]
		if seen[h] {
			continue
		}
		seen[h] = true
		cur, ok := e.resolve(h)
		if !ok {
			continue
		}
		cur.depth -= delta
		for i := range cur.Transitions {
			if to, expanded := cur.Transitions[i].To(); expanded {
				stack = append(stack, to)
			}
		}
	}
}

// pruneUnreachableFrom queues for disposal every world no longer
// reachable from root by following expanded transitions forward. Called
// when SetCurrentWorld re-roots onto an existing world: everything not a
// descendant of the new root can never be reached again (§4.5, §4.9's
// disposal-on-re-root behavior). The model's IsDisposable hint is
// deliberately not consulted here: the contract documents that the engine
// may free an unreachable world regardless of the hint, and nothing
// upstream of the new root is reachable or useful once it becomes current.
func (e *Engine[S, T]) pruneUnreachableFrom(root Handle) {
	reachable := make(map[Handle]bool)
	stack := []Handle{root}
	for len(stack) > 0 {
		n := len(stack) - 1
		h := stack[n]
		stack = stack[:n]
		if reachable[h] {
			continue
		}
		reachable[h] = true
		w, ok := e.resolve(h)
		if !ok {
			continue
		}
		for i := range w.Transitions {
			if to, expanded := w.Transitions[i].To(); expanded {
				stack = append(stack, to)
			}
		}
	}

	for i, slot := range e.arena {
		if slot == nil || slot.freed || slot.world == nil {
			continue
		}
		h := Handle{index: int32(i), generation: slot.generation}
		if !reachable[h] {
			e.enqueueFree(h)
		}
	}

	if w, ok := e.resolve(root); ok {
		w.sources = nil
	}
}
