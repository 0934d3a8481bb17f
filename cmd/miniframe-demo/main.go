/*
miniframe-demo runs a fleet of independent search engines against the
walk model and serves a realtime dashboard of their progress (frontier
sizes and the current world's forecast, from whichever engine's snapshot
arrived most recently) — the direct
analog of the teacher's single-page RL training visualizer, generalized
from one training loop to an errgroup of engines advancing concurrently.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"runtime"

	"miniframe/fleet"
	"miniframe/search"
	"miniframe/server"
	"miniframe/server/metrics_views"
	"miniframe/walkmodel"

	"golang.org/x/sync/errgroup"
)

var (
	dbg      *bool
	nworkers *int
	host     *string
	port     *string
	addr     string
)

func init() {
	dbg = flag.Bool("debug", false, "debug mode")
	nworkers = flag.Int("nworkers", runtime.NumCPU(), "number of concurrent search engines")
	host = flag.String("host", "", "the host ip")
	port = flag.String("port", "8080", "the host port")
	flag.Parse()
	addr = *host + ":" + *port
}

func loadConfig() *search.EngineConfig {
	cfg, err := search.LoadConfig("./config.yaml")
	if err != nil {
		fmt.Println("no config.yaml found, using defaults:", err)
		return search.DefaultConfig()
	}
	return cfg
}

// runWorker advances one engine toward its walk's target, exporting a
// snapshot after every Expand, until the walk ends or ctx is cancelled.
func runWorker(
	ctx context.Context,
	cfg *search.EngineConfig,
	fleetTel *fleet.Telemetry,
	snapshots chan<- metrics_views.Snapshot,
	target int,
) error {
	engine := search.Create[walkmodel.Walk, walkmodel.Move](walkmodel.NewWalk(target))
	engine.ApplyTo(cfg)

	for !engine.IsCurrentEnd() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		before := engine.Telemetry()
		engine.Expand()
		after := engine.Telemetry()
		fleetTel.AddExamined(float64(after.NumComputed - before.NumComputed))
		fleetTel.AddReused(after.ReuseRatio * float64(after.NumComputed))

		snap := metrics_views.Snapshot{
			NumComputed:     after.NumComputed,
			NumToExpand:     after.NumToExpand,
			NumOnHold:       after.NumOnHold,
			NumToFree:       after.NumToFree,
			ReuseRatio:      after.ReuseRatio,
			UnusedTimeMs:    after.UnusedTimeMs,
			MaxDepthReached: after.MaxDepthReached,
			ActorValues:     []float64{engine.ForecastValue(0)},
		}
		select {
		case snapshots <- snap:
		case <-ctx.Done():
			return ctx.Err()
		}

		move, ok := engine.BestTransition(0)
		if !ok {
			break
		}
		engine.SetCurrentWorld(engine.CurrentStatus().Step(move))
	}
	return nil
}

func runFleet(ctx context.Context, snapshots chan<- metrics_views.Snapshot) error {
	cfg := loadConfig()
	fleetTel := fleet.NewTelemetry()

	group, gctx := errgroup.WithContext(ctx)
	for i := 0; i < *nworkers; i++ {
		target := (i % 5) - 2
		group.Go(func() error {
			return runWorker(gctx, cfg, fleetTel, snapshots, target)
		})
	}
	return group.Wait()
}

func runApp() error {
	appCtx, appCancel := context.WithCancel(context.TODO())
	defer appCancel()

	snapshots := make(chan metrics_views.Snapshot)

	go func() {
		if err := runFleet(appCtx, snapshots); err != nil && *dbg {
			fmt.Println("fleet stopped:", err)
		}
	}()

	srv, err := server.NewServer(appCtx, addr, metrics_views.Snapshot{}, snapshots)
	if err != nil {
		return err
	}
	return srv.Serve()
}

func main() {
	if err := runApp(); err != nil {
		fmt.Println(err)
	}
}
