// Package fleet aggregates telemetry across a pool of independently
// running search.Engine instances (§5: "Multiple Engine instances may run
// on different threads without coordination"), the direct generalization
// of the teacher's nworkers RL-agent pool.
package fleet

import "miniframe/atomic_float"

// Telemetry accumulates worlds-examined and worlds-reused counts across a
// fleet of concurrently running engines without a mutex, the same
// motivation behind atomic_float's own package doc: many workers updating
// shared counters, one much smaller consumer reading them for display.
type Telemetry struct {
	worldsExamined *atomic_float.AtomicFloat64
	worldsReused   *atomic_float.AtomicFloat64
}

// NewTelemetry returns a zeroed fleet telemetry accumulator.
func NewTelemetry() *Telemetry {
	return &Telemetry{
		worldsExamined: atomic_float.NewAtomicFloat64(0),
		worldsReused:   atomic_float.NewAtomicFloat64(0),
	}
}

// AddExamined adds n to the fleet-wide worlds-examined counter, retrying
// the compare-and-swap until it succeeds. atomic_float's own AtomicAdd
// leaves that choice to the caller; here retrying is correct because a
// lost update would silently under-count a worker's contribution, and
// there is no cheaper alternative action to take instead.
func (t *Telemetry) AddExamined(n float64) {
	retryAdd(t.worldsExamined, n)
}

// AddReused adds n to the fleet-wide worlds-reused counter, with the same
// retry-until-success policy as AddExamined.
func (t *Telemetry) AddReused(n float64) {
	retryAdd(t.worldsReused, n)
}

// Snapshot returns the current fleet-wide totals.
func (t *Telemetry) Snapshot() (examined, reused float64) {
	return t.worldsExamined.AtomicRead(), t.worldsReused.AtomicRead()
}

func retryAdd(af *atomic_float.AtomicFloat64, addend float64) {
	for {
		if _, ok := af.AtomicAdd(addend); ok {
			return
		}
	}
}
