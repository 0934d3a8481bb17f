package search

// Order selects how the Expansion Frontier's to-expand collection picks its
// next world to expand (§4.4). Chosen once at construction; not changed
// mid-session.
type Order int

const (
	// ByValue pops the world whose rankValue is highest: its backed-up
	// forecast (or its own egocentric values, if unexpanded) summed across
	// every actor. With a single actor this is the sente's own forecast;
	// with several actors the other actors' values are part of the sum,
	// not only the sente's.
	ByValue Order = iota
	// ByWidth pops in FIFO order, ignoring value.
	ByWidth
)
