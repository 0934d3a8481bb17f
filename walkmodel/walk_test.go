package walkmodel

import "testing"

func TestWalkStepClampsToBounds(t *testing.T) {
	cases := []struct {
		name string
		in   Walk
		move Move
		want Walk
	}{
		{"interior step", Walk{Step: 0, Pos: 0, Target: 1}, 1, Walk{Step: 1, Pos: 1, Target: 1}},
		{"clamp at max", Walk{Step: 0, Pos: 5, Target: 1}, 1, Walk{Step: 1, Pos: 5, Target: 1}},
		{"clamp at min", Walk{Step: 0, Pos: -5, Target: 1}, -1, Walk{Step: 1, Pos: -5, Target: 1}},
		{"hold", Walk{Step: 2, Pos: 3, Target: 1}, 0, Walk{Step: 3, Pos: 3, Target: 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.in.Step(c.move)
			if !got.IsSame(c.want) {
				t.Fatalf("Step(%v) on %+v = %+v, want %+v", c.move, c.in, got, c.want)
			}
		})
	}
}

func TestWalkIsEnd(t *testing.T) {
	cases := []struct {
		name string
		w    Walk
		want bool
	}{
		{"reached target", Walk{Step: 1, Pos: 1, Target: 1}, true},
		{"step cutoff", Walk{Step: 6, Pos: -2, Target: 1}, true},
		{"in progress", Walk{Step: 1, Pos: 0, Target: 1}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.w.IsEnd(); got != c.want {
				t.Fatalf("IsEnd() on %+v = %v, want %v", c.w, got, c.want)
			}
		})
	}
}

func TestWalkGetValuesIsNegativeDistance(t *testing.T) {
	w := Walk{Step: 0, Pos: -2, Target: 1}
	vals := w.GetValues()
	if len(vals) != numActors {
		t.Fatalf("GetValues returned %d values, want %d", len(vals), numActors)
	}
	if vals[0] != -3 {
		t.Fatalf("GetValues()[0] = %v, want -3", vals[0])
	}
}

func TestWalkGetTransitionsIsFixedSize(t *testing.T) {
	w := NewWalk(1)
	if got := len(w.GetTransitions()); got != 3 {
		t.Fatalf("GetTransitions returned %d moves, want 3", got)
	}
}

func TestWalkIsSameIgnoresCopyIdentity(t *testing.T) {
	a := Walk{Step: 1, Pos: 2, Target: 3}
	b := a.Copy()
	if !a.IsSame(b) {
		t.Fatalf("Copy() of a walk should be IsSame the original")
	}
}
