package search

import "miniframe/model"

// Handle addresses a World living inside an Engine's arena. It carries a
// generation counter so a Handle captured before its World was freed
// resolves to "not found" instead of dereferencing a reused or dangling
// slot, per the Design Notes' arena-with-tombstoning strategy.
type Handle struct {
	index      int32
	generation uint32
}

// NilHandle is the sentinel for Transition.to meaning "unexpanded". It has
// index -1; the zero Handle is not nil.
var NilHandle = Handle{index: -1}

// IsNil reports whether h is the nil handle.
func (h Handle) IsNil() bool {
	return h.index < 0
}

// edgeRef is a weak back-reference to one outgoing Transition of some
// World: the owning World's handle plus the transition's index within it.
// World.sources is a set of these.
type edgeRef struct {
	world Handle
	index int
}

type arenaSlot[S model.Status[S, T], T any] struct {
	world      *World[S, T]
	generation uint32
	freed      bool
}
