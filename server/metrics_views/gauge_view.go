package metrics_views

import (
	"fmt"
	"html/template"

	"miniframe/server/fastview"

	channerics "github.com/niceyeti/channerics/channels"
)

// ReuseGauge renders the graph size — the sum of the four frontier
// collection counts — as a plain text readout, the simplest possible view
// over a Snapshot. It does not show the reuse ratio or the unused time
// budget: Convert does not carry either into the Bar view-model.
type ReuseGauge struct {
	id      string
	updates <-chan []fastview.EleUpdate
}

// NewReuseGauge builds a ReuseGauge view driven off the same Bar
// view-model the other views in this package consume, reading only the
// collection-count entries and ignoring the per-actor forecast bars.
func NewReuseGauge(
	done <-chan struct{},
	bars <-chan []Bar,
) *ReuseGauge {
	rg := &ReuseGauge{id: "reusegauge"}
	rg.updates = channerics.Convert(done, bars, rg.onUpdate)
	return rg
}

// Updates returns the view's ele-update channel.
func (rg *ReuseGauge) Updates() <-chan []fastview.EleUpdate {
	return rg.updates
}

func (rg *ReuseGauge) onUpdate(bars []Bar) []fastview.EleUpdate {
	total := 0.0
	for _, b := range bars {
		switch b.Label {
		case "computed", "to-expand", "on-hold", "to-free":
			total += b.Value
		}
	}
	return []fastview.EleUpdate{
		{
			EleId: rg.id + "-total",
			Ops: []fastview.Op{
				{Key: "textContent", Value: fmt.Sprintf("graph size: %.0f", total)},
			},
		},
	}
}

// Parse returns a minimal placeholder element for the gauge's text.
func (rg *ReuseGauge) Parse(t *template.Template) (name string, err error) {
	name = rg.id
	_, err = t.Parse(`{{ define "` + name + `" }}
		<div style="padding:20px;font-family:monospace;">
			<span id="` + rg.id + `-total"></span>
		</div>
	{{ end }}`)
	return
}
