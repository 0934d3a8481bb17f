package metrics_views

import (
	"fmt"
	"html/template"
	"math"
	"strings"

	"miniframe/server/fastview"

	channerics "github.com/niceyeti/channerics/channels"
)

// FrontierBars renders the Expansion Frontier's collection sizes (and, if
// present, each actor's current forecast) as a row of horizontal svg
// bars, one per Bar in the view-model.
type FrontierBars struct {
	id      string
	updates <-chan []fastview.EleUpdate
}

// NewFrontierBars builds a FrontierBars view that redraws whenever bars
// arrives.
func NewFrontierBars(
	done <-chan struct{},
	bars <-chan []Bar,
) *FrontierBars {
	id := "frontierbars"
	if strings.Contains(id, "-") {
		fmt.Println("WARNING: hyphenated ids interfere with html/template's `template` directive")
	}
	fb := &FrontierBars{id: template.HTMLEscapeString(id)}
	fb.updates = channerics.Convert(done, bars, fb.onUpdate)
	return fb
}

// Updates returns the view's ele-update channel.
func (fb *FrontierBars) Updates() <-chan []fastview.EleUpdate {
	return fb.updates
}

const (
	barHeight  = 28
	barGap     = 8
	barMaxWide = 300
)

// onUpdate returns the ele-updates needed to redraw every bar's width and
// label for the latest snapshot.
func (fb *FrontierBars) onUpdate(bars []Bar) (ops []fastview.EleUpdate) {
	maxVal := 1.0
	for _, b := range bars {
		maxVal = math.Max(maxVal, math.Abs(b.Value))
	}

	for i, b := range bars {
		width := barMaxWide * math.Abs(b.Value) / maxVal
		fill := "steelblue"
		if b.Value < 0 {
			fill = "indianred"
		}
		rectID := fmt.Sprintf("%s-bar-%d", fb.id, i)
		labelID := fmt.Sprintf("%s-label-%d", fb.id, i)
		ops = append(ops,
			fastview.EleUpdate{
				EleId: rectID,
				Ops: []fastview.Op{
					{Key: "width", Value: fmt.Sprintf("%d", int(width))},
					{Key: "fill", Value: fill},
				},
			},
			fastview.EleUpdate{
				EleId: labelID,
				Ops: []fastview.Op{
					{Key: "textContent", Value: fmt.Sprintf("%s: %.2f", b.Label, b.Value)},
				},
			},
		)
	}
	return
}

// Parse returns an svg stack of bars, one per entry expected in the
// view-model; the view is seeded with a fixed-size placeholder set since
// the bar count (collection count + actor count) is stable across a
// single engine's lifetime.
func (fb *FrontierBars) Parse(t *template.Template) (name string, err error) {
	name = fb.id
	const maxBars = 8
	var rows strings.Builder
	for i := 0; i < maxBars; i++ {
		y := i * (barHeight + barGap)
		rows.WriteString(fmt.Sprintf(
			`<rect id="%s-bar-%d" x="120" y="%d" width="0" height="%d" fill="steelblue" />`+
				`<text id="%s-label-%d" x="0" y="%d" font-family="monospace" font-size="14"></text>`,
			fb.id, i, y, barHeight,
			fb.id, i, y+barHeight-8,
		))
	}
	_, err = t.Parse(`{{ define "` + name + `" }}
		<div style="padding:20px;">
			<svg id="` + fb.id + `" xmlns="http://www.w3.org/2000/svg" width="500" height="` +
		fmt.Sprintf("%d", maxBars*(barHeight+barGap)) + `">
				` + rows.String() + `
			</svg>
		</div>
	{{ end }}`)
	return
}
