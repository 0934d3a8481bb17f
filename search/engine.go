// Package search is the MiniFrame search engine: an incrementally built
// directed graph of reachable world states, a time-budgeted best-first
// expansion loop with backward value propagation, cycle-safe reuse of
// previously computed states, pruning and MonteCarlo sampling of branch
// sets, and the disposal/compaction protocol that keeps the graph bounded.
// See SPEC_FULL.md and spec.md for the full contract; this file holds the
// Engine type and its arena/collection bookkeeping. The facade operations
// callers actually use live in facade.go.
package search

import (
	"fmt"
	"time"

	"miniframe/model"
)

// Engine owns every World it creates and drives the search over a
// model.Status[S, T]. An Engine is not safe for concurrent use by multiple
// goroutines (§5); independent Engine instances may run on separate
// goroutines without coordination.
type Engine[S model.Status[S, T], T any] struct {
	arena   []*arenaSlot[S, T]
	current Handle

	computed  *handleSet
	toExpand  *handleSet
	onHold    *handleSet
	toFreeSet *handleSet
	toFree    []Handle

	numActors int

	maxTimeMs         float64
	maxDepthExp       int
	order             Order
	nbTransMontecarlo int
	pruningDelta      float64
	reuse             bool
	epsilon           float64

	startExpand       time.Time
	startExpandPinned bool
	clock             Clock
	rng               RNG

	telemetry Telemetry
}

// Create constructs an Engine whose sole world is initialStatus, made
// current and placed in to-expand if it is expandable, else in computed
// (§4.9).
func Create[S model.Status[S, T], T any](initialStatus S) *Engine[S, T] {
	e := &Engine[S, T]{
		computed:          newHandleSet(),
		toExpand:          newHandleSet(),
		onHold:            newHandleSet(),
		toFreeSet:         newHandleSet(),
		numActors:         len(initialStatus.GetValues()),
		maxTimeMs:         1000,
		maxDepthExp:       -1,
		order:             ByValue,
		nbTransMontecarlo: 1 << 30,
		pruningDelta:      0,
		reuse:             true,
		epsilon:           1e-6,
		clock:             SystemClock{},
		rng:               NewRNG(1),
	}
	root := e.newWorld(initialStatus, 0)
	e.current = root
	e.classify(NilHandle, root)
	return e
}

func (e *Engine[S, T]) newWorld(status S, depth int) Handle {
	copied := status.Copy()
	transitionPayloads := copied.GetTransitions()
	w := &World[S, T]{
		status:      copied,
		values:      copied.GetValues(),
		Transitions: make([]Transition[S, T], len(transitionPayloads)),
		depth:       depth,
		terminal:    copied.IsEnd(),
	}
	for i, payload := range transitionPayloads {
		w.Transitions[i] = Transition[S, T]{
			Payload:  payload,
			to:       NilHandle,
			forecast: make([]float64, e.numActors),
		}
	}
	return e.store(w)
}

func (e *Engine[S, T]) store(w *World[S, T]) Handle {
	h := Handle{index: int32(len(e.arena)), generation: 1}
	e.arena = append(e.arena, &arenaSlot[S, T]{world: w, generation: h.generation})
	for i := range w.Transitions {
		w.Transitions[i].from = h
	}
	return h
}

// resolve returns the World addressed by h, or ok=false if h is nil,
// out of range, stale (generation mismatch), or freed.
func (e *Engine[S, T]) resolve(h Handle) (*World[S, T], bool) {
	if h.IsNil() || int(h.index) >= len(e.arena) {
		return nil, false
	}
	slot := e.arena[h.index]
	if slot.freed || slot.generation != h.generation {
		return nil, false
	}
	return slot.world, true
}

// mustResolve panics on a handle the Engine itself is responsible for
// keeping valid; used internally where a stale handle indicates an engine
// bug, not a caller contract violation.
func (e *Engine[S, T]) mustResolve(h Handle) *World[S, T] {
	w, ok := e.resolve(h)
	if !ok {
		panic(fmt.Sprintf("search: internal invariant violated: handle %+v does not resolve", h))
	}
	return w
}

// release tombstones the arena slot for h: bumps its generation so any
// surviving Handle copies fail to resolve, and drops the World pointer so
// the garbage collector can reclaim it.
func (e *Engine[S, T]) release(h Handle) {
	if h.IsNil() || int(h.index) >= len(e.arena) {
		return
	}
	slot := e.arena[h.index]
	slot.freed = true
	slot.generation++
	slot.world = nil
}

// resetGraph discards every world and collection, used when reuse is
// disabled and SetCurrentWorld sees a novel status (§4.5).
func (e *Engine[S, T]) resetGraph() {
	e.arena = nil
	e.computed = newHandleSet()
	e.toExpand = newHandleSet()
	e.onHold = newHandleSet()
	e.toFreeSet = newHandleSet()
	e.toFree = nil
}

// removeFromAllCollections removes h from whichever of computed/toExpand/
// onHold it currently belongs to, if any.
func (e *Engine[S, T]) removeFromAllCollections(h Handle) {
	e.computed.Remove(h)
	e.toExpand.Remove(h)
	e.onHold.Remove(h)
}

// enqueueFree moves h from its current collection onto the free queue. It
// does not drain the free queue; callers drain once at the end of the
// enclosing public operation (Expand, SetCurrentWorld), so telemetry's
// to-free count can be observed mid-operation.
func (e *Engine[S, T]) enqueueFree(h Handle) {
	if e.toFreeSet.Contains(h) {
		return
	}
	e.removeFromAllCollections(h)
	e.toFreeSet.Add(h)
	e.toFree = append(e.toFree, h)
}
