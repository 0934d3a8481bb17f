package search

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"miniframe/walkmodel"
)

func TestPropagateBacksUpSimultaneousSenteBySummedForecast(t *testing.T) {
	Convey("Given a simultaneous-sente pursuit world whose nine transitions are all sampled", t, func() {
		e := Create[walkmodel.PursuitWalk, walkmodel.PursuitMove](walkmodel.NewPursuitWalk(0, 2))
		e.SetMaxTimeMs(1000)
		e.SetNbTransMontecarlo(9)

		Convey("expanding once produces a best transition consistent for both actors", func() {
			e.Expand()
			_, ok := e.BestTransition(0)
			So(ok, ShouldBeTrue)

			root := e.mustResolve(e.current)
			best, ok := root.bestBySimultaneousSum()
			So(ok, ShouldBeTrue)

			Convey("the same winning transition backs up both actors' forecasts", func() {
				So(len(best.forecast), ShouldEqual, 2)
				So(e.backupForecast(root), ShouldResemble, best.forecast)
			})
		})
	})
}

func TestPropagateAppliesDelayPenaltyPreferringShorterPathToEqualValueTerminal(t *testing.T) {
	Convey("Given a root with two paths to equal-value terminals at different depths", t, func() {
		e := Create[walkmodel.Walk, walkmodel.Move](walkmodel.NewWalk(5))
		root := e.current
		rootWorld := e.mustResolve(root)

		direct := e.newWorld(walkmodel.Walk{Step: 1, Pos: 5, Target: 5}, 1)
		e.connectTransition(root, 0, direct)

		mid := e.newWorld(walkmodel.Walk{Step: 1, Pos: 3, Target: 5}, 1)
		e.connectTransition(root, 1, mid)
		far := e.newWorld(walkmodel.Walk{Step: 2, Pos: 5, Target: 5}, 2)
		e.connectTransition(mid, 0, far)

		Convey("the transition reaching its terminal in fewer hops wins the tie", func() {
			best, ok := rootWorld.BestTransition(0)
			So(ok, ShouldBeTrue)
			So(best.Payload, ShouldEqual, rootWorld.Transitions[0].Payload)
		})
	})
}

func TestPropagateStopsAtAnAlreadyVisitedAncestorOnTheSameBranch(t *testing.T) {
	Convey("Given a root whose only expanded child points back to a reused ancestor", t, func() {
		e := Create[walkmodel.Walk, walkmodel.Move](walkmodel.NewWalk(0))
		root := e.current
		rootWorld := e.mustResolve(root)

		child := e.newWorld(walkmodel.Walk{Step: 1, Pos: 0, Target: 0}, 1)
		e.connectTransition(root, 0, child)
		e.connectTransition(child, 0, root)

		Convey("propagate terminates instead of looping forever", func() {
			e.propagate(root, 1)
			So(rootWorld.Transitions[0].IsExpanded(), ShouldBeTrue)
		})
	})
}
