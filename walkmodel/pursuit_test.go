package walkmodel

import (
	"testing"

	"miniframe/model"
)

func TestPursuitWalkGetSenteIsAlwaysSimultaneous(t *testing.T) {
	p := NewPursuitWalk(0, 3)
	if p.GetSente() != model.Simultaneous {
		t.Fatalf("GetSente() = %v, want Simultaneous", p.GetSente())
	}
}

func TestPursuitWalkGetTransitionsIsNineMoves(t *testing.T) {
	p := NewPursuitWalk(0, 3)
	if got := len(p.GetTransitions()); got != 9 {
		t.Fatalf("GetTransitions returned %d, want 9", got)
	}
}

func TestPursuitWalkValuesAreOpposedAcrossActors(t *testing.T) {
	p := PursuitWalk{Step: 0, Pursuer: 0, Evader: 4}
	vals := p.GetValues()
	if vals[0] != -4 || vals[1] != 4 {
		t.Fatalf("GetValues() = %v, want [-4, 4]", vals)
	}
}

func TestPursuitWalkStepMovesBothActors(t *testing.T) {
	p := PursuitWalk{Step: 0, Pursuer: 0, Evader: 4}
	next := p.Step(PursuitMove{Pursuer: 1, Evader: -1})
	want := PursuitWalk{Step: 1, Pursuer: 1, Evader: 3}
	if !next.IsSame(want) {
		t.Fatalf("Step result = %+v, want %+v", next, want)
	}
}

func TestPursuitWalkIsEndOnCapture(t *testing.T) {
	p := PursuitWalk{Step: 1, Pursuer: 2, Evader: 2}
	if !p.IsEnd() {
		t.Fatalf("IsEnd() should be true once positions coincide")
	}
}
