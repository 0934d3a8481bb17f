// Package metrics_views contains views derived from a search engine's
// telemetry snapshot. It replaces the teacher's cell_views for this
// domain: rather than a grid of cell values, the data being visualized is
// the Expansion Frontier's collection sizes and the Expander's last-round
// statistics.
package metrics_views

// Snapshot is the data model views in this package are built from: a
// plain copy of search.Telemetry plus the per-actor forecast of the
// engine's current world, decoupled from the search package itself so
// this package (and fastview generally) stays free of any dependency on
// the engine's internals, matching cell_views' relationship to
// grid_world.
type Snapshot struct {
	NumComputed     int
	NumToExpand     int
	NumOnHold       int
	NumToFree       int
	ReuseRatio      float64
	UnusedTimeMs    float64
	MaxDepthReached int
	ActorValues     []float64
}

// Bar is one labeled quantity to render as a horizontal bar: one of the
// Expansion Frontier's collection sizes, or an actor's forecast value.
type Bar struct {
	Label string
	Value float64
}

// Convert transforms a raw Snapshot into the Bar view-model consumed by
// the views below.
func Convert(snap Snapshot) []Bar {
	bars := []Bar{
		{Label: "computed", Value: float64(snap.NumComputed)},
		{Label: "to-expand", Value: float64(snap.NumToExpand)},
		{Label: "on-hold", Value: float64(snap.NumOnHold)},
		{Label: "to-free", Value: float64(snap.NumToFree)},
	}
	for i, v := range snap.ActorValues {
		bars = append(bars, Bar{Label: actorLabel(i), Value: v})
	}
	return bars
}

func actorLabel(actor int) string {
	switch actor {
	case 0:
		return "actor-0"
	case 1:
		return "actor-1"
	default:
		return "actor-n"
	}
}
