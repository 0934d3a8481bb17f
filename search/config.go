package search

import (
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EngineOuterConfig is the top-level shape of an engine config file: a kind
// discriminator plus an opaque def block, mirroring the two-stage
// viper-then-yaml unmarshal used elsewhere in this codebase when a config's
// inner shape isn't known to the outer loader.
type EngineOuterConfig struct {
	Kind string      `mapstructure:"kind"`
	Def  interface{} `mapstructure:"def"`
}

// EngineConfig holds the tunable parameters of the Expander and the
// Expansion Frontier (§4.4, §4.7), loadable from a YAML file so a session's
// search behavior can be tuned without a rebuild.
type EngineConfig struct {
	// MaxTimeMs bounds a single Expand call's wall-clock budget (§4.7.2).
	MaxTimeMs float64 `mapstructure:"maxTimeMs" yaml:"maxTimeMs"`
	// MaxDepthExp is the deepest a world may be below the current world and
	// still be expandable this round; -1 means unbounded (§4.7).
	MaxDepthExp int `mapstructure:"maxDepthExp" yaml:"maxDepthExp"`
	// ExpansionOrder selects the to-expand pop policy: "by-value" or
	// "by-width" (§4.4).
	ExpansionOrder string `mapstructure:"expansionOrder" yaml:"expansionOrder"`
	// NbTransMontecarlo caps how many of a world's unexpanded transitions
	// are sampled per expansion round; 0 or absent means no cap (§4.7).
	NbTransMontecarlo int `mapstructure:"nbTransMontecarlo" yaml:"nbTransMontecarlo"`
	// PruningDelta is the margin by which a sibling must dominate a newly
	// expanded child's forecast for that child to be pruned directly into
	// computed (§4.7.1). 0 disables pruning.
	PruningDelta float64 `mapstructure:"pruningDelta" yaml:"pruningDelta"`
	// Reuse enables reusing the existing graph when SetCurrentWorld moves
	// to an already-known world, instead of discarding it (§4.5).
	Reuse bool `mapstructure:"reuse" yaml:"reuse"`
	// Epsilon is the floating-point tolerance the propagator uses in place
	// of exact equality when deciding whether a forecast actually changed
	// (§4.6).
	Epsilon float64 `mapstructure:"epsilon" yaml:"epsilon"`
	// RandomSeed seeds the MonteCarlo sampler deterministically; the zero
	// value is itself a deterministic seed, not time-based.
	RandomSeed int64 `mapstructure:"randomSeed" yaml:"randomSeed"`
}

// LoadConfig reads a YAML config file shaped like EngineOuterConfig and
// decodes its def block into an EngineConfig. It follows the same
// two-stage viper-then-yaml unmarshal the rest of this codebase's config
// loading uses: viper resolves the file, then the opaque def interface{}
// is round-tripped through yaml so its concrete fields land on
// EngineConfig without viper needing to know EngineConfig's shape up
// front.
func LoadConfig(path string) (*EngineConfig, error) {
	vp := viper.New()
	vp.SetConfigFile(filepath.Base(path))
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))
	if err := vp.ReadInConfig(); err != nil {
		return nil, err
	}

	outer := &EngineOuterConfig{}
	if err := vp.Unmarshal(outer); err != nil {
		return nil, err
	}

	marshaled, err := yaml.Marshal(outer.Def)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(marshaled, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the configuration a freshly Created Engine already
// runs with, before ApplyTo ever overrides anything.
func DefaultConfig() *EngineConfig {
	return &EngineConfig{
		MaxTimeMs:         1000,
		MaxDepthExp:       -1,
		ExpansionOrder:    "by-value",
		NbTransMontecarlo: 0,
		PruningDelta:      0,
		Reuse:             true,
		Epsilon:           1e-6,
		RandomSeed:        1,
	}
}

func orderFromString(s string) Order {
	if s == "by-width" {
		return ByWidth
	}
	return ByValue
}

// ApplyTo pushes every field of cfg onto e. MaxDepthExp goes through
// SetMaxDepthExp, so it is clamped the same way; the other fields are
// stored directly. A NbTransMontecarlo of 0 or below means "no cap" here
// and does not panic the way SetNbTransMontecarlo does. Typically called
// once, right after Create, before the first Expand.
func (e *Engine[S, T]) ApplyTo(cfg *EngineConfig) {
	e.maxTimeMs = cfg.MaxTimeMs
	e.SetMaxDepthExp(cfg.MaxDepthExp)
	e.order = orderFromString(cfg.ExpansionOrder)
	if cfg.NbTransMontecarlo > 0 {
		e.nbTransMontecarlo = cfg.NbTransMontecarlo
	} else {
		e.nbTransMontecarlo = 1 << 30
	}
	e.pruningDelta = cfg.PruningDelta
	e.reuse = cfg.Reuse
	e.epsilon = cfg.Epsilon
	e.rng = NewRNG(cfg.RandomSeed)
}

// SetMaxTimeMs overrides the per-Expand time budget.
func (e *Engine[S, T]) SetMaxTimeMs(ms float64) { e.maxTimeMs = ms }

// SetMaxDepthExp overrides the expansion depth bound; -1 means unbounded.
// Values below -1 are clamped to -1 (§6.1): there is no meaning below
// "unbounded" for this knob, so a caller passing e.g. -5 gets the same
// behavior as -1 rather than a silently-stored nonsense value.
func (e *Engine[S, T]) SetMaxDepthExp(d int) {
	if d < -1 {
		d = -1
	}
	e.maxDepthExp = d
}

// SetOrder overrides the to-expand pop policy.
func (e *Engine[S, T]) SetOrder(o Order) { e.order = o }

// SetNbTransMontecarlo overrides the per-round sampling cap on a world's
// unexpanded transitions. Panics on a non-positive value: a model with at
// least one transition must always have a positive cap, per §7's
// fail-fast contract for programming-error inputs with no error return.
func (e *Engine[S, T]) SetNbTransMontecarlo(n int) {
	if n <= 0 {
		panic("search: SetNbTransMontecarlo requires n > 0")
	}
	e.nbTransMontecarlo = n
}

// SetPruningDelta overrides the sibling-domination margin used by pruning.
func (e *Engine[S, T]) SetPruningDelta(delta float64) { e.pruningDelta = delta }

// SetReuse overrides whether SetCurrentWorld reuses the existing graph.
func (e *Engine[S, T]) SetReuse(reuse bool) { e.reuse = reuse }

// SetEpsilon overrides the floating-point tolerance used to decide whether
// a forecast has changed.
func (e *Engine[S, T]) SetEpsilon(epsilon float64) { e.epsilon = epsilon }

// SetRNG overrides the randomness source, typically to inject a
// deterministic fake under test.
func (e *Engine[S, T]) SetRNG(rng RNG) { e.rng = rng }

// SetClock overrides the wall-clock source, typically to inject a stepped
// fake under test.
func (e *Engine[S, T]) SetClock(clock Clock) { e.clock = clock }

// SetStartExpandClock pins the start timestamp the next Expand call
// measures its time budget from, instead of Expand calling Clock.Now() for
// itself when it begins (§6.1, §4.9). This lets a caller who incurs real
// overhead between turns — serializing a response, waiting on another
// engine in a fleet — charge that overhead against the same budget rather
// than handing the next Expand a fresh full allowance. The pin applies to
// exactly one following Expand call; after that, Expand resumes timing
// itself from its own Clock.Now() reading.
func (e *Engine[S, T]) SetStartExpandClock(start time.Time) {
	e.startExpand = start
	e.startExpandPinned = true
}
