package search

import (
	"testing"
	"time"

	"miniframe/walkmodel"
)

// stepClock is a Clock test double that advances by a fixed increment
// every time Now is called, giving deterministic elapsed-time behavior
// without sleeping (§4.7.2).
type stepClock struct {
	now time.Time
	inc time.Duration
}

func (c *stepClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.inc)
	return t
}

func newStepClock(inc time.Duration) *stepClock {
	return &stepClock{now: time.Unix(0, 0), inc: inc}
}

func TestCreateStartsWithOneComputedOrExpandableWorld(t *testing.T) {
	e := Create[walkmodel.Walk, walkmodel.Move](walkmodel.NewWalk(1))
	tel := e.Telemetry()
	if tel.NumComputed+tel.NumToExpand != 1 {
		t.Fatalf("expected exactly one world classified after Create, got computed=%d toExpand=%d",
			tel.NumComputed, tel.NumToExpand)
	}
	if e.CurrentDepth() != 0 {
		t.Fatalf("CurrentDepth() = %d, want 0", e.CurrentDepth())
	}
}

func TestExpandProducesABestTransitionTowardTarget(t *testing.T) {
	e := Create[walkmodel.Walk, walkmodel.Move](walkmodel.NewWalk(3))
	e.SetMaxTimeMs(1000)
	e.Expand()

	move, ok := e.BestTransition(0)
	if !ok {
		t.Fatalf("expected a best transition after Expand")
	}
	if move != 1 {
		t.Fatalf("BestTransition(0) = %v, want +1 (walk toward target 3 from 0)", move)
	}
}

func TestExpandRespectsTimeBudget(t *testing.T) {
	e := Create[walkmodel.Walk, walkmodel.Move](walkmodel.NewWalk(5))
	e.SetClock(newStepClock(10 * time.Millisecond))
	e.SetMaxTimeMs(25)
	e.Expand()

	tel := e.Telemetry()
	if tel.NumComputed+tel.NumToExpand+tel.NumOnHold == 0 {
		t.Fatalf("expected at least one world to exist after a budgeted Expand")
	}
	if tel.NumComputed != 1 {
		t.Fatalf("NumComputed = %d, want 1 (only one 10ms step fits the 25ms budget)", tel.NumComputed)
	}
}

func TestSetCurrentWorldReusesExistingSubtree(t *testing.T) {
	e := Create[walkmodel.Walk, walkmodel.Move](walkmodel.NewWalk(3))
	e.SetMaxTimeMs(1000)
	e.Expand()

	move, ok := e.BestTransition(0)
	if !ok {
		t.Fatalf("expected a best transition before re-rooting")
	}
	next := e.CurrentStatus().Step(move)
	e.SetCurrentWorld(next)

	if !e.CurrentStatus().IsSame(next) {
		t.Fatalf("CurrentStatus() after SetCurrentWorld = %+v, want %+v", e.CurrentStatus(), next)
	}
	if e.CurrentDepth() != 0 {
		t.Fatalf("CurrentDepth() after re-root = %d, want 0", e.CurrentDepth())
	}
	if _, ok := e.BestTransition(0); !ok {
		t.Fatalf("expected the reused world to keep its already-expanded transitions")
	}
}

func TestSetCurrentWorldWithReuseDisabledDiscardsGraph(t *testing.T) {
	e := Create[walkmodel.Walk, walkmodel.Move](walkmodel.NewWalk(3))
	e.SetReuse(false)
	e.SetMaxTimeMs(1000)
	e.Expand()

	e.SetCurrentWorld(walkmodel.Walk{Step: 1, Pos: 1, Target: 3})
	if _, ok := e.BestTransition(0); ok {
		t.Fatalf("expected a freshly rebuilt graph with no expanded transitions yet")
	}
}

func TestExpandDrainsOnHoldBackIntoToExpandEachCall(t *testing.T) {
	e := Create[walkmodel.Walk, walkmodel.Move](walkmodel.NewWalk(5))
	e.SetMaxTimeMs(1000)
	e.SetMaxDepthExp(0)

	e.Expand()
	afterFirst := e.Telemetry()
	if afterFirst.NumOnHold == 0 {
		t.Fatalf("expected depth-bounded children to be deferred onto on-hold after the first Expand")
	}
	firstComputed := afterFirst.NumComputed

	e.Expand()
	afterSecond := e.Telemetry()
	if afterSecond.NumComputed <= firstComputed {
		t.Fatalf("expected on-hold worlds to be drained back into to-expand and processed on a subsequent Expand call, but NumComputed stayed at %d", firstComputed)
	}
}

func TestSetMaxDepthExpClampsBelowUnbounded(t *testing.T) {
	e := Create[walkmodel.Walk, walkmodel.Move](walkmodel.NewWalk(1))
	e.SetMaxDepthExp(-5)
	if e.maxDepthExp != -1 {
		t.Fatalf("SetMaxDepthExp(-5): maxDepthExp = %d, want -1 (clamped)", e.maxDepthExp)
	}
}

func TestEngineReachesTerminalWalk(t *testing.T) {
	e := Create[walkmodel.Walk, walkmodel.Move](walkmodel.NewWalk(1))
	e.SetMaxTimeMs(1000)
	cur := e.CurrentStatus()
	for i := 0; i < maxStepsGuard && !cur.IsEnd(); i++ {
		e.Expand()
		move, ok := e.BestTransition(0)
		if !ok {
			t.Fatalf("expected a best transition at step %d", i)
		}
		cur = cur.Step(move)
		e.SetCurrentWorld(cur)
	}
	if !cur.IsEnd() {
		t.Fatalf("walk did not reach a terminal status within %d steps", maxStepsGuard)
	}
}

const maxStepsGuard = 10
