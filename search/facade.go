package search

// CurrentStatus returns a copy of the current world's status snapshot.
func (e *Engine[S, T]) CurrentStatus() S {
	return e.mustResolve(e.current).Status()
}

// CurrentDepth returns the current world's depth, always 0 immediately
// after Create or a SetCurrentWorld re-root (§4.9).
func (e *Engine[S, T]) CurrentDepth() int {
	return e.mustResolve(e.current).Depth()
}

// IsCurrentEnd reports whether the current world's status is terminal.
func (e *Engine[S, T]) IsCurrentEnd() bool {
	return e.mustResolve(e.current).IsEnd()
}

// NumActors returns the number of per-actor value slots the engine was
// constructed with.
func (e *Engine[S, T]) NumActors() int {
	return e.numActors
}

// BestTransition returns the current world's best outgoing transition
// payload for actor, as judged by its forecast so far (§4.2, §6.1). It
// reports false if the current world has no expanded outgoing transition
// yet; callers should Expand at least once before relying on this. It
// panics if actor is not in [0, NumActors()).
func (e *Engine[S, T]) BestTransition(actor int) (T, bool) {
	if actor < 0 || actor >= e.numActors {
		panic("search: BestTransition called with an out-of-range actor")
	}
	var zero T
	best, ok := e.mustResolve(e.current).BestTransition(actor)
	if !ok {
		return zero, false
	}
	return best.Payload, true
}

// ForecastValue returns the current world's forecast value for actor
// (§4.2, §6.1): the value of its best transition if one has been
// expanded, else its own egocentric value.
func (e *Engine[S, T]) ForecastValue(actor int) float64 {
	return e.mustResolve(e.current).ForecastValue(actor)
}

// Telemetry returns the metrics captured by the most recent Expand call,
// with the collection sizes refreshed to the engine's present state
// (§6.2).
func (e *Engine[S, T]) Telemetry() Telemetry {
	t := e.telemetry
	t.NumComputed = e.computed.Len()
	t.NumToExpand = e.toExpand.Len()
	t.NumOnHold = e.onHold.Len()
	t.NumToFree = len(e.toFree)
	return t
}

// SetCurrentWorld re-roots the engine at status (§4.5, §4.9). When reuse
// is enabled and a world matching status already exists in the graph
// (judged by IsSame), the engine overwrites that world's stored status with
// a copy of status, re-roots onto it, queues everything no longer
// reachable from the new root for disposal, and keeps the rest of the
// graph — including any value forecasts already computed on the subtree
// still rooted there. Otherwise, the graph is discarded and rebuilt from
// status as a fresh single-world root, exactly as Create does.
func (e *Engine[S, T]) SetCurrentWorld(status S) {
	if e.reuse {
		if existing, ok := e.findExisting(status); ok {
			e.mustResolve(existing).status = status.Copy()
			e.current = existing
			e.rebaseDepths(existing)
			e.pruneUnreachableFrom(existing)
			e.classify(NilHandle, existing)
			e.drainToFree()
			return
		}
	}
	e.resetGraph()
	root := e.newWorld(status, 0)
	e.current = root
	e.classify(NilHandle, root)
}
