package search

// handleSet is an insertion-ordered set of handles with O(1) membership
// test and order-preserving O(n) removal, backing the three disjoint world
// collections of the Expansion Frontier (§4.4). The Design Notes call this
// out as acceptable ("a clear implementation uses an unsorted vector and
// re-selects the max at each pop"); §8's tests do not depend on a fancier
// priority structure.
type handleSet struct {
	order []Handle
	index map[Handle]int
}

func newHandleSet() *handleSet {
	return &handleSet{index: make(map[Handle]int)}
}

func (s *handleSet) Len() int {
	return len(s.order)
}

func (s *handleSet) Contains(h Handle) bool {
	_, ok := s.index[h]
	return ok
}

// Add appends h if not already present. It is a no-op if h is already a
// member.
func (s *handleSet) Add(h Handle) {
	if _, ok := s.index[h]; ok {
		return
	}
	s.index[h] = len(s.order)
	s.order = append(s.order, h)
}

// Remove deletes h if present, shifting the later members down one slot
// so the remaining handles keep their insertion order.
func (s *handleSet) Remove(h Handle) bool {
	i, ok := s.index[h]
	if !ok {
		return false
	}
	copy(s.order[i:], s.order[i+1:])
	s.order = s.order[:len(s.order)-1]
	for j := i; j < len(s.order); j++ {
		s.index[s.order[j]] = j
	}
	delete(s.index, h)
	return true
}

// MoveToEnd makes h the last element of the set (so it is the last popped
// under ByWidth's FIFO order, behind anything reinstated ahead of it),
// appending it if not already present.
func (s *handleSet) MoveToEnd(h Handle) {
	s.Remove(h)
	s.Add(h)
}

// Handles returns the set's members in insertion order. The returned slice
// must not be mutated by the caller.
func (s *handleSet) Handles() []Handle {
	return s.order
}

// drainInto moves every member of s into dst, in order, and empties s.
func (s *handleSet) drainInto(dst *handleSet) {
	for _, h := range s.order {
		dst.Add(h)
	}
	s.order = s.order[:0]
	s.index = make(map[Handle]int)
}
